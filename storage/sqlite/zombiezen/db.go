package zombiezen

import (
	"context"
	"fmt"
	"runtime"

	"zombiezen.com/go/sqlite/sqlitex"
)

// NewPool creates a Zombiezen SQLite connection pool (WAL mode) and makes
// sure the docs and rows tables exist.
func NewPool(dbPath string) (*sqlitex.Pool, error) {
	initString := fmt.Sprintf("file:%s", dbPath)

	// default flags: sqlite.OpenReadWrite | sqlite.OpenCreate | sqlite.OpenWAL | sqlite.OpenURI
	pool, err := sqlitex.NewPool(initString, sqlitex.PoolOptions{
		PoolSize: runtime.NumCPU(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create zombiezen pool at %s: %w", dbPath, err)
	}

	if err := CreateSchemas(context.Background(), pool, DocsSchema, RowsSchema); err != nil {
		pool.Close()
		return nil, err
	}

	return pool, nil
}
