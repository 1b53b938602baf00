package playback

// State represents the sequencer state.
type State int

const (
	StateStopped State = iota
	StatePlaying
	StatePaused
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateStopped:
		return "Stopped"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// IsActive returns true if playback is active (playing or paused).
func (s State) IsActive() bool {
	return s == StatePlaying || s == StatePaused
}

// ParseState is the inverse of String; unknown names map to StateStopped.
func ParseState(name string) State {
	switch name {
	case "Playing":
		return StatePlaying
	case "Paused":
		return StatePaused
	default:
		return StateStopped
	}
}

// Level is the browser list a delete applies to.
type Level int

const (
	LevelAll Level = iota
	LevelArtist
	LevelAlbum
	LevelTitle
)

// String returns the level name.
func (l Level) String() string {
	switch l {
	case LevelAll:
		return "All"
	case LevelArtist:
		return "Artist"
	case LevelAlbum:
		return "Album"
	case LevelTitle:
		return "Title"
	default:
		return "Unknown"
	}
}

// EditOp is a queue editor action.
type EditOp int

const (
	EditTop EditOp = iota
	EditUp
	EditDown
	EditBottom
	EditRemove
)
