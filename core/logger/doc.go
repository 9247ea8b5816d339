// Package logger builds the application's zap logger.
//
// Level "debug" selects zap's development config; any other level uses
// the production config at that level. Format "console" switches to the
// human readable encoder, anything else logs JSON.
//
// Request handlers tag their entries with the request's RayID through
// WithRayID, and session code tags them with the owner through WithOwner.
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	logger.WithRayID(log, c).Error("Handler failed", zap.Error(err))
package logger
