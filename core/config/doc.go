// Package config loads the application configuration.
//
// Values come from the environment, optionally seeded from a .env file in
// the given directory. Every key is declared by a struct field carrying a
// mapstructure tag and a default tag, so SERVER_PORT maps to server.port
// and PERSISTENCE_BACKEND to persistence.backend.
//
// Load it with:
//
//	cfg, err := config.LoadConfig(".")
//
// Sections:
//   - Server: port, API key and base path of the HTTP API
//   - Log: level and format
//   - Database: MySQL or SQLite connection for the database backend
//   - Storage: MinIO endpoint and bucket for the object backend
//   - Persistence: backend choice, call timeout, session cache TTL
//   - Predictor: Gemini key, model and timeout
package config
