package database

import (
	"fmt"
	"log/slog"
	"time"

	bolt "go.etcd.io/bbolt"
)

// boltOpenTimeout bounds the wait for the file lock held by another process.
const boltOpenTimeout = 5 * time.Second

// OpenBolt opens (creating if needed) the embedded database file at path.
func OpenBolt(path string) (*bolt.DB, error) {
	if path == "" {
		return nil, fmt.Errorf("bolt path cannot be empty")
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: boltOpenTimeout})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt database %s: %w", path, err)
	}
	slog.Info("Opened embedded database.", slog.String("path", path))
	return db, nil
}

// CloseBolt closes db, logging any failure.
func CloseBolt(db *bolt.DB) {
	if db == nil {
		return
	}
	if err := db.Close(); err != nil {
		slog.Error("Error closing embedded database", slog.String("error", err.Error()))
		return
	}
	slog.Info("Embedded database closed.")
}
