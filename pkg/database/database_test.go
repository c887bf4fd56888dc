package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyPoolDefaults(t *testing.T) {
	url := "postgres://u:p@localhost:5432/books?pool_max_conns=25"
	poolCfg, err := pgxpool.ParseConfig(url)
	require.NoError(t, err)

	applyPoolDefaults(poolCfg, url)

	assert.EqualValues(t, 25, poolCfg.MaxConns)
	assert.EqualValues(t, pgMinConns, poolCfg.MinConns)
	assert.Equal(t, pgMaxConnIdleTime, poolCfg.MaxConnIdleTime)
	assert.Equal(t, pgHealthCheckPeriod, poolCfg.HealthCheckPeriod)
}

func TestNewPgxPool_EmptyURL(t *testing.T) {
	_, err := NewPgxPool(context.Background(), nil, "")
	assert.Error(t, err)
}

func TestOpenBolt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "books.db")

	db, err := OpenBolt(path)
	require.NoError(t, err)
	assert.Equal(t, path, db.Path())
	CloseBolt(db)

	_, err = OpenBolt("")
	assert.Error(t, err)
}

func TestNewRedisClient(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := NewRedisClient(ctx, "redis://"+mr.Addr()+"/0")
	require.NoError(t, err)
	defer client.Close()
	assert.NoError(t, client.Set(ctx, "k", "v", 0).Err())

	_, err = NewRedisClient(ctx, "not a url")
	assert.Error(t, err)
}
