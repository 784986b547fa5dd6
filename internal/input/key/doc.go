// Package key describes keyboard input independent of the terminal library.
//
// An Event carries the key, the rune for character keys, the modifier mask
// and a sequence number assigned by the host. Hosts that deliver the same
// physical key press twice (some terminals report Enter as both CR and LF)
// give both deliveries the same sequence number so the handler can drop the
// duplicate.
//
// Key specifications use the short form "C-a", "S-Left", "C-S-End" or a
// bare key name such as "Enter" or "x".
package key
