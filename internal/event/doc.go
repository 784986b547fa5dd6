// Package event provides the synchronous change notification bus that ties
// the editing engine to its dependents.
//
// Every stateful field of the engine publishes on its own topic when, and
// only when, its value actually changes:
//
//	lines       the line sequence was replaced or spliced
//	text        the document text changed (payload is the full text)
//	cursor      the cursor moved
//	scroll      the viewport scroll offset moved
//	selection   the selection anchor changed, or the cursor moved while an anchor is set
//	insertMode  insert/overwrite mode toggled
//
// Delivery is synchronous and ordered by subscription. The bus is owned by a
// single goroutine and is not safe for concurrent use. Handlers may publish
// further events; those are delivered before Publish returns.
package event
