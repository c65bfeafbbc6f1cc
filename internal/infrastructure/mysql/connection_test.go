package mysql

import (
	"testing"

	driver "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"multiservicios/internal/config"
)

func TestDSN(t *testing.T) {
	dsn := DSN(config.DatabaseConfig{
		Host:     "db.local",
		Port:     3307,
		User:     "dash",
		Password: "p@ss",
		Name:     "dashboard",
	})

	parsed, err := driver.ParseDSN(dsn)
	require.NoError(t, err)

	assert.Equal(t, "dash", parsed.User)
	assert.Equal(t, "p@ss", parsed.Passwd)
	assert.Equal(t, "db.local:3307", parsed.Addr)
	assert.Equal(t, "dashboard", parsed.DBName)
	assert.True(t, parsed.ParseTime)
}
