package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"multiservicios/internal/fetchlog"
	"multiservicios/internal/testutil"
)

// Unit Tests

func TestNewMySQLFetchLogRepository(t *testing.T) {
	db := &sql.DB{}
	repo := NewMySQLFetchLogRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

// Integration Tests

func TestFetchLogRepository_InsertAndFindRecent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLFetchLogRepository(db)
	require.NoError(t, repo.Migrate(context.Background()))

	now := time.Now().UTC().Truncate(time.Second)
	for i, url := range []string{"http://a/api/clientes", "http://a/api/pedidos"} {
		id, err := repo.Insert(context.Background(), fetchlog.Entry{
			TraceID:      "trace-1",
			Method:       "GET",
			URL:          url,
			Status:       200,
			DurationMs:   int64(10 + i),
			ResponseBody: "[]",
			CreatedAt:    now,
		})
		require.NoError(t, err)
		assert.NotZero(t, id)
	}

	entries, err := repo.FindRecent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "http://a/api/pedidos", entries[0].URL)
	assert.Equal(t, "http://a/api/clientes", entries[1].URL)
	assert.Equal(t, "trace-1", entries[0].TraceID)
	assert.Equal(t, "", entries[0].Error)
}

func TestFetchLogRepository_FindRecent_Limit(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLFetchLogRepository(db)
	require.NoError(t, repo.Migrate(context.Background()))

	for i := 0; i < 3; i++ {
		_, err := repo.Insert(context.Background(), fetchlog.Entry{
			TraceID:   "trace-2",
			Method:    "DELETE",
			URL:       "http://b/api/facturas/1",
			Status:    500,
			Error:     "API Error: 500",
			CreatedAt: time.Now(),
		})
		require.NoError(t, err)
	}

	entries, err := repo.FindRecent(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, "API Error: 500", entries[0].Error)
}
