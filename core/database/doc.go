// Package database handles database connections and schema inspection.
//
// It wraps GORM to open MySQL or SQLite connections from the application's
// configuration. SQLite is mostly used for local runs and tests
// (":memory:" is supported).
//
// # Schema Inspection
//
// GetTableColumns and MissingColumns read the live table definition so the
// migrate command can report whether the documents table matches what the
// persistence layer expects.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	missing, err := database.MissingColumns(db, "documents", []string{"id", "data"})
package database
