// Package cli implements the interactive front end of the attendance
// client: a REPL over the auth, event and attendance services, plus the
// startup routing decision driven by the stored session token.
package cli
