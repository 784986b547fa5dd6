// Package renderer turns the editor state into markup lines for a render
// surface.
//
// For every visible row the renderer strips the line terminator, expands
// tabs, pads the row with spaces to the right edge of the viewport, slices
// it to the horizontal scroll window and escapes literal braces. When the
// selection covers the row, the selection style tag and a full reset are
// spliced in at markup offsets computed by markup.Layout, so escaped braces
// before the selection do not shift the highlight.
//
// Usage:
//
//	r := renderer.New(eng, surface, renderer.DefaultOptions())
//	defer r.Close()
//	r.Render()
//
// After New the renderer redraws by itself whenever the lines, the scroll
// offset or the selection change.
package renderer
