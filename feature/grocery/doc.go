// Package grocery exposes the purchase log, pantry and shopping list of
// each user over HTTP.
//
// Requests are served by the user's cached reconcile.Store. Every change
// is then mirrored to the configured persistence backend; a failed mirror
// write does not undo the change and is reported in the response's
// warnings field instead.
//
// # HTTP Endpoints
//
//   - GET /purchases, POST /purchases
//   - GET /pantry (supports ?today=YYYY-MM-DD), DELETE /pantry/:id
//   - GET /shopping-list, POST /shopping-list
//   - PATCH /shopping-list/:id/toggle, DELETE /shopping-list/:id
//   - DELETE /shopping-list/completed
//   - GET /dashboard (supports ?today=YYYY-MM-DD)
//
// All routes require the X-User-ID header.
package grocery
