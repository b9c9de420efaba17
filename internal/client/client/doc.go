// Package client talks to the attendance service over HTTP.
//
// It provides the typed API surface (Client), the concrete HTTP
// implementation, and the transport that decides per request whether to
// attach the stored bearer token. Endpoints are authenticated by default;
// only paths containing a configured public marker segment go out bare.
package client
