package repository

import (
	"context"
	"database/sql"
	"fmt"

	"multiservicios/internal/fetchlog"
)

const createTable = `
	CREATE TABLE IF NOT EXISTS FetchLog (
		id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		traceId VARCHAR(64) NOT NULL,
		method VARCHAR(10) NOT NULL,
		url VARCHAR(512) NOT NULL,
		status INT NOT NULL DEFAULT 0,
		durationMs BIGINT NOT NULL DEFAULT 0,
		requestBody TEXT,
		responseBody TEXT,
		error VARCHAR(512),
		createdAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		INDEX idx_trace (traceId),
		INDEX idx_created (createdAt)
	)`

type MySQLFetchLogRepository struct {
	db *sql.DB
}

func NewMySQLFetchLogRepository(db *sql.DB) *MySQLFetchLogRepository {
	return &MySQLFetchLogRepository{db: db}
}

// Migrate creates the FetchLog table when missing.
func (r *MySQLFetchLogRepository) Migrate(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createTable); err != nil {
		return fmt.Errorf("creating FetchLog table: %w", err)
	}
	return nil
}

func (r *MySQLFetchLogRepository) Insert(ctx context.Context, e fetchlog.Entry) (uint, error) {
	query := `
		INSERT INTO FetchLog (traceId, method, url, status, durationMs, requestBody, responseBody, error, createdAt)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		e.TraceID, e.Method, e.URL, e.Status, e.DurationMs,
		e.RequestBody, e.ResponseBody, e.Error, e.CreatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting fetch log entry: %w", err)
	}

	lastInsertID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting last insert id: %w", err)
	}

	return uint(lastInsertID), nil
}

func (r *MySQLFetchLogRepository) FindRecent(ctx context.Context, limit int) ([]fetchlog.Entry, error) {
	query := `
		SELECT id, traceId, method, url, status, durationMs,
		       COALESCE(requestBody, ''), COALESCE(responseBody, ''), COALESCE(error, ''), createdAt
		FROM FetchLog
		ORDER BY id DESC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("querying fetch log: %w", err)
	}
	defer rows.Close()

	var entries []fetchlog.Entry
	for rows.Next() {
		var e fetchlog.Entry
		err := rows.Scan(
			&e.ID, &e.TraceID, &e.Method, &e.URL, &e.Status, &e.DurationMs,
			&e.RequestBody, &e.ResponseBody, &e.Error, &e.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning fetch log row: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating fetch log rows: %w", err)
	}

	return entries, nil
}
