// Package credentials persists the client's session credential in the
// local database. A single key/value table is enough: the store holds
// exactly one secret under a fixed key.
package credentials

import "context"

// Repository is the durable key/value surface behind the session store.
// Get reports absence via the second return value, not an error.
type Repository interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
