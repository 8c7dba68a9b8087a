// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-shop-api/internal/config"
	"github.com/MKhiriev/go-shop-api/internal/logger"
)

// maxDSNLogLength bounds how much of a connection string or query text
// is written to the log. Connection strings carry credentials.
const maxDSNLogLength = 30

// QueryResult is the outcome of a simulated query. Status is always
// "success" and Rows is always zero; the type exists so that callers
// are written against the shape a real driver would return.
type QueryResult struct {
	Status string
	Rows   int
}

// Database simulates a relational database connection. It performs no
// network I/O; Connect records the connection steps and flips the
// connected flag that the health check reports.
type Database struct {
	dsn       string
	connected bool

	logger *logger.Logger
}

// NewDatabase creates a Database for the given connection settings.
// The DSN is only ever logged truncated; it is never parsed.
func NewDatabase(cfg config.DB, log *logger.Logger) *Database {
	log.Info().Str("dsn", truncate(cfg.DSN, maxDSNLogLength)).Msg("initializing database connection")

	return &Database{
		dsn:    cfg.DSN,
		logger: log,
	}
}

// Connect walks through the steps a real client would take to open a
// connection, logging each one, and marks the database as connected.
// It always succeeds.
func (db *Database) Connect() error {
	db.logger.Info().Msg("attempting to connect to database")
	db.logger.Info().Msg("parsing connection string")
	db.logger.Info().Msg("resolving database host")
	db.logger.Info().Msg("establishing TCP connection")
	db.logger.Info().Msg("authenticating with credentials")
	db.logger.Info().Msg("selecting database")
	db.logger.Info().Msg("database connection established")

	db.connected = true
	return nil
}

// Connected reports whether Connect has completed. Read-only after
// startup; the health check maps it to the "database" verdict.
func (db *Database) Connected() bool {
	return db.connected
}

// ExecuteQuery simulates running query against the database. The query
// text is logged truncated and the result is always an empty success.
func (db *Database) ExecuteQuery(ctx context.Context, query string) QueryResult {
	log := logger.FromContext(ctx)
	log.Debug().Str("query", truncate(query, 50)).Msg("executing query")

	return QueryResult{Status: "success", Rows: 0}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
