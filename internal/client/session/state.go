package session

import "context"

// State is the startup routing state. It leaves Unknown exactly once,
// when the store's first emission arrives.
type State int

const (
	StateUnknown State = iota
	StateUnauthenticated
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateAuthenticated:
		return "authenticated"
	case StateUnauthenticated:
		return "unauthenticated"
	default:
		return "unknown"
	}
}

// InitialState blocks until the store's first emission and maps it to a
// routing state. It returns StateUnknown only on error or cancellation.
func InitialState(ctx context.Context, store *TokenStore) (State, error) {
	ch, err := store.Watch(ctx)
	if err != nil {
		return StateUnknown, err
	}

	select {
	case t, ok := <-ch:
		if !ok {
			return StateUnknown, ctx.Err()
		}
		if t.Present && t.Value != "" {
			return StateAuthenticated, nil
		}
		return StateUnauthenticated, nil
	case <-ctx.Done():
		return StateUnknown, ctx.Err()
	}
}
