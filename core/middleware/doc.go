// Package middleware contains HTTP middleware for the Fiber application.
//
// It provides cross-cutting concerns that sit between the request and the handler.
//
// # Components
//
//   - Auth: Implements API key validation to protect endpoints.
//   - Owner: Requires the X-User-ID header and exposes the acting user to
//     handlers. Every collection is scoped to that user.
//   - RayID: Generates a unique Request ID (RayID) for every incoming request,
//     injecting it into the context and response headers for tracing.
//
// RayID is registered first so every later log line can carry it. The
// Swagger UI is mounted before Auth and stays public.
package middleware
