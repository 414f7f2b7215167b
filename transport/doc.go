// Package transport provides in-process implementations of the paginator's
// message sink and event source capabilities.
//
// Sink records every operation instead of talking to a chat backend, which
// makes it the simulation side of the transport split: tests and local
// demos run sessions against it and assert on what was displayed. Events is
// a channel-fed event source that host plumbing pushes gateway traffic
// into; the session's bounded waits are built here on plain select
// statements.
//
// The discord package provides the real-network counterparts.
package transport
