// Package session owns the device session token: one durable source of
// truth, observable by any number of independent consumers. Writes go
// through Save/Clear; readers either take a point-in-time snapshot
// (Current) or subscribe to every change (Watch).
package session

import (
	"context"
	"sync"

	"github.com/attendmark/attendmark/internal/client/repositories/credentials"
)

// TokenKey is the fixed key the session token is stored under.
const TokenKey = "auth_token"

// Token is a stored credential snapshot. Present is false when no token
// has been saved (first launch, or after logout).
type Token struct {
	Value   string
	Present bool
}

// TokenStore persists the session token through a credentials.Repository
// and fans out every change to active watchers. Last writer wins; only the
// auth flow is expected to write.
type TokenStore struct {
	repo credentials.Repository

	mu       sync.Mutex
	watchers map[chan Token]struct{}
}

func NewTokenStore(repo credentials.Repository) *TokenStore {
	return &TokenStore{
		repo:     repo,
		watchers: make(map[chan Token]struct{}),
	}
}

// Current reads the stored token synchronously. Used by the HTTP transport
// at dispatch time.
func (s *TokenStore) Current(ctx context.Context) (Token, error) {
	v, ok, err := s.repo.Get(ctx, TokenKey)
	if err != nil {
		return Token{}, err
	}
	return Token{Value: v, Present: ok}, nil
}

// Save persists the token and notifies watchers. Overwrites any prior
// value; the token shape is not validated here.
func (s *TokenStore) Save(ctx context.Context, token string) error {
	if err := s.repo.Set(ctx, TokenKey, token); err != nil {
		return err
	}
	s.broadcast(Token{Value: token, Present: true})
	return nil
}

// Clear removes the token; watchers observe the absence.
func (s *TokenStore) Clear(ctx context.Context) error {
	if err := s.repo.Delete(ctx, TokenKey); err != nil {
		return err
	}
	s.broadcast(Token{})
	return nil
}

// Watch returns a channel that emits the current token immediately and
// again after every Save/Clear. The subscription ends when ctx is done;
// the channel is closed on unsubscribe.
func (s *TokenStore) Watch(ctx context.Context) (<-chan Token, error) {
	ch := make(chan Token, 16)

	// snapshot and registration happen under the same lock as broadcast,
	// so a write racing with subscription is either visible in the
	// snapshot or delivered through the broadcast, never lost
	s.mu.Lock()
	current, err := s.Current(ctx)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	s.watchers[ch] = struct{}{}
	ch <- current
	s.mu.Unlock()

	go func() {
		<-ctx.Done()
		s.mu.Lock()
		delete(s.watchers, ch)
		s.mu.Unlock()
		close(ch)
	}()

	return ch, nil
}

func (s *TokenStore) broadcast(t Token) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for ch := range s.watchers {
	send:
		for {
			select {
			case ch <- t:
				break send
			default:
				// slow watcher: evict its oldest buffered value so the
				// newest write always lands
				select {
				case <-ch:
				default:
				}
			}
		}
	}
}
