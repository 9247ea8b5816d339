// Package server holds the HTTP server configuration.
//
// The cmd package starts the Fiber app from this Config: it listens on
// Port, mounts every feature under BasePath and enables API key checks
// when ApiKey is set.
package server
