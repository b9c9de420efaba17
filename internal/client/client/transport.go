package client

import (
	"context"
	"net/http"
	"net/http/httputil"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/attendmark/attendmark/internal/client/session"
	"github.com/attendmark/attendmark/internal/logging"
)

// TokenSource yields the current session token at dispatch time.
// *session.TokenStore satisfies it.
type TokenSource interface {
	Current(ctx context.Context) (session.Token, error)
}

// authTransport decorates a base RoundTripper with the client's standing
// request policy: a default Accept header, a correlation id, full wire
// dumps, and bearer-token attachment.
//
// Attachment is a deny-list: every request carries the stored token unless
// its path contains a segment equal (case-insensitively) to one of the
// public markers. A missing token on a non-public path is not an error
// here; the request goes out bare and the server answers 401.
type authTransport struct {
	base          http.RoundTripper
	tokens        TokenSource
	publicMarkers []string
	log           logging.Logger
}

func newAuthTransport(base http.RoundTripper, tokens TokenSource, publicMarkers []string, log logging.Logger) *authTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &authTransport{base: base, tokens: tokens, publicMarkers: publicMarkers, log: log}
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()

	// RoundTrippers must not mutate the caller's request
	r := req.Clone(ctx)

	if r.Header.Get("Accept") == "" {
		r.Header.Set("Accept", "application/json")
	}

	requestID := uuid.NewString()
	r.Header.Set("X-Request-Id", requestID)
	log := t.log.With("request_id", requestID)

	if !t.isPublicPath(r.URL.Path) {
		tok, err := t.tokens.Current(ctx)
		if err != nil {
			return nil, err
		}
		if tok.Present && tok.Value != "" {
			r.Header.Set("Authorization", "Bearer "+tok.Value)
		}
	}

	if dump, err := httputil.DumpRequestOut(r, true); err == nil {
		log.Debug(ctx, "request", "dump", string(dump))
	}

	start := time.Now()
	resp, err := t.base.RoundTrip(r)
	if err != nil {
		log.Debug(ctx, "request failed",
			"method", r.Method, "url", r.URL.String(), "error", err)
		return nil, err
	}

	if dump, err := httputil.DumpResponse(resp, true); err == nil {
		log.Debug(ctx, "response",
			"status", resp.StatusCode,
			"duration", time.Since(start),
			"dump", string(dump))
	}

	return resp, nil
}

// isPublicPath reports whether any path segment equals one of the public
// markers. Whole-segment comparison keeps unrelated paths that merely
// contain a marker as a substring (e.g. /republic/x) authenticated.
func (t *authTransport) isPublicPath(path string) bool {
	for _, seg := range strings.Split(path, "/") {
		if seg == "" {
			continue
		}
		for _, marker := range t.publicMarkers {
			if strings.EqualFold(seg, marker) {
				return true
			}
		}
	}
	return false
}
