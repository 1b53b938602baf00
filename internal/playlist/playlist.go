// Package playlist holds the two id sequences that sit beside the browser:
// the play-next queue and the bounded history of played positions.
package playlist

// Playlist holds an ordered collection of track ids.
type Playlist struct {
	ids []int64
}

// NewPlaylist creates a new empty playlist.
func NewPlaylist() *Playlist {
	return &Playlist{
		ids: make([]int64, 0),
	}
}

// Add appends ids to the playlist.
func (p *Playlist) Add(ids ...int64) {
	p.ids = append(p.ids, ids...)
}

// Remove removes the id at the given index.
// Returns false if index is out of bounds.
func (p *Playlist) Remove(index int) bool {
	if index < 0 || index >= len(p.ids) {
		return false
	}
	p.ids = append(p.ids[:index], p.ids[index+1:]...)
	return true
}

// Clear removes all ids from the playlist.
func (p *Playlist) Clear() {
	p.ids = p.ids[:0]
}

// IDs returns a copy of all ids.
func (p *Playlist) IDs() []int64 {
	result := make([]int64, len(p.ids))
	copy(result, p.ids)
	return result
}

// At returns the id at the given index, or 0 if out of bounds.
func (p *Playlist) At(index int) int64 {
	if index < 0 || index >= len(p.ids) {
		return 0
	}
	return p.ids[index]
}

// IndexOf returns the index of id, or -1.
func (p *Playlist) IndexOf(id int64) int {
	for i, v := range p.ids {
		if v == id {
			return i
		}
	}
	return -1
}

// Len returns the number of ids.
func (p *Playlist) Len() int {
	return len(p.ids)
}

// Move moves the id at fromIndex to toIndex.
// Returns false if either index is out of bounds.
func (p *Playlist) Move(fromIndex, toIndex int) bool {
	if fromIndex < 0 || fromIndex >= len(p.ids) {
		return false
	}
	if toIndex < 0 || toIndex >= len(p.ids) {
		return false
	}
	if fromIndex == toIndex {
		return true
	}

	id := p.ids[fromIndex]
	p.ids = append(p.ids[:fromIndex], p.ids[fromIndex+1:]...)
	p.ids = append(p.ids[:toIndex], append([]int64{id}, p.ids[toIndex:]...)...)
	return true
}
