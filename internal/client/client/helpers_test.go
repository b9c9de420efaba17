package client

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/attendmark/attendmark/internal/client/repositories/credentials"
	"github.com/attendmark/attendmark/internal/client/session"
	"github.com/attendmark/attendmark/internal/logging"

	_ "modernc.org/sqlite"
)

func newTestStore(t *testing.T) *session.TokenStore {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE credentials (
  key   TEXT PRIMARY KEY,
  value TEXT NOT NULL
);`)
	require.NoError(t, err)

	return session.NewTokenStore(credentials.NewSQLiteRepository(db))
}

// recordingLogger counts entries per level so tests can assert on logging
// behavior without parsing output.
type recordingLogger struct {
	mu      sync.Mutex
	debugs  int
	infos   int
	warns   int
	errors  int
	lastMsg string
}

func (r *recordingLogger) Debug(ctx context.Context, msg string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.debugs++
	r.lastMsg = msg
}

func (r *recordingLogger) Info(ctx context.Context, msg string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.infos++
	r.lastMsg = msg
}

func (r *recordingLogger) Warn(ctx context.Context, msg string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.warns++
	r.lastMsg = msg
}

func (r *recordingLogger) Error(ctx context.Context, msg string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errors++
	r.lastMsg = msg
}

func (r *recordingLogger) With(args ...any) logging.Logger { return r }

func (r *recordingLogger) errorCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.errors
}
