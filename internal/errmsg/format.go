// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Catalog operations
	OpCatalogOpen   Op = "open catalog"
	OpCatalogQuery  Op = "query catalog"
	OpCatalogDelete Op = "delete from catalog"
	OpTrackLoad     Op = "load track"

	// Import operations
	OpImportDiscover Op = "find music files"
	OpImportFile     Op = "import file"

	// Queue operations
	OpQueueToggle Op = "toggle queue entry"
	OpQueueEdit   Op = "edit queue"

	// Playback operations
	OpPlaybackStart    Op = "start playback"
	OpPlaybackPause    Op = "pause playback"
	OpPlaybackStop     Op = "stop playback"
	OpPlaybackAdvance  Op = "play next track"
	OpPlaybackPrevious Op = "play previous track"
	OpSelect           Op = "select"

	// Session operations
	OpSessionLoad Op = "load session"
	OpSessionSave Op = "save session"

	// Initialization
	OpConfigLoad Op = "load configuration"
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
