package database

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/sma-schedule-api/pkg/config"
)

func TestDSN(t *testing.T) {
	dsn := DSN(config.DatabaseConfig{Host: "db", Port: 5432, User: "u", Password: "p", Name: "sched"})
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=sched sslmode=disable", dsn)

	dsn = DSN(config.DatabaseConfig{Host: "db", Port: 5432, SSLMode: "require"})
	assert.Contains(t, dsn, "sslmode=require")
}

func TestConfigurePool(t *testing.T) {
	raw, _, err := sqlmock.New()
	require.NoError(t, err)
	db := sqlx.NewDb(raw, "sqlmock")
	defer db.Close()

	Configure(db, config.DatabaseConfig{MaxOpenConns: 7, MaxIdleConns: 3})
	assert.Equal(t, 7, db.Stats().MaxOpenConnections)
}
