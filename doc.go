// Package paginator implements an interactive, reaction-driven pagination
// session for pre-rendered page documents displayed inside a single,
// continuously edited chat message.
//
// A Session owns an ordered page buffer, a cursor, and a fixed table of
// control glyphs. The invoking user steers through the pages by reacting
// with one of the control glyphs; the session edits the same message in
// place rather than sending new ones, and self-terminates on explicit close
// or on user inactivity.
//
// # Getting Started
//
// Create a session with a message sink and an event source, add pages, and
// run it:
//
//	sink := transport.NewSink()
//	events := transport.NewEvents(16)
//
//	session := paginator.New(sink, events, channelID, userID, nil)
//
//	doc := page.NewDocument()
//	doc.Title = "Results"
//	doc.Description = "First page of results."
//	if err := session.AddPage(doc); err != nil {
//	    log.Fatal(err)
//	}
//
//	// Blocks until the user closes the session or goes quiet.
//	if err := session.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// # Core Types
//
//   - [Session]: the pagination state machine and event loop
//   - [Options]: configuration for creating a session
//   - [MessageSink]: capability for creating and mutating displayed content
//   - [EventSource]: capability for awaiting filtered user actions
//
// # Controls
//
// The control table is fixed at construction. In order: ⏮ first page,
// ◀ previous page, ⏹ close, ▶ next page, ⏭ last page, 🔢 jump to a typed
// page number, 🤔 help. When a session has exactly two pages the first/last
// glyphs are omitted from the displayed message since they duplicate
// previous/next.
//
// Concrete sink and event source implementations live in the transport
// subpackage (in-process, suitable for tests and demos) and the discord
// subpackage (live Discord connection).
package paginator
