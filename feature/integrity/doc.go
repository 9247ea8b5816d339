// Package integrity checks the persistence backends.
//
// # Checks Provided
//
//   - Database: the documents table exists with every expected column.
//   - Storage: the configured bucket exists.
//
// A backend that is not in use is reported as skipped. With fix=true the
// table is migrated and the bucket created.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks, 503 when something is wrong.
//   - GET /integrity/database : Runs the schema check (supports ?fix=true).
//   - GET /integrity/storage : Runs the bucket check (supports ?fix=true).
//
// These routes do not require the X-User-ID header.
package integrity
