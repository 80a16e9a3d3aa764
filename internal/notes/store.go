package notes

import (
	"sort"
	"strings"
	"sync"
)

// MemoryStore keeps notes in process memory in insertion order.
// A single mutex guards both the slice and the id sequence.
type MemoryStore struct {
	mu     sync.Mutex
	nextID int64
	notes  []Note
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{nextID: 1}
}

// Create trims title and content and stores them under the next id.
// It does not reject blank fields; callers decide that.
func (s *MemoryStore) Create(title, content string) Note {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := Note{
		ID:      s.nextID,
		Title:   strings.TrimSpace(title),
		Content: strings.TrimSpace(content),
	}
	s.nextID++
	s.notes = append(s.notes, n)
	return n
}

// List returns every note, most recently created first.
func (s *MemoryStore) List() []Note {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Note, 0, len(s.notes))
	for i := len(s.notes) - 1; i >= 0; i-- {
		out = append(out, s.notes[i])
	}
	return out
}

func (s *MemoryStore) Get(id int64) (Note, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(id); i >= 0 {
		return s.notes[i], true
	}
	return Note{}, false
}

// Delete removes the note with id. Unknown ids are ignored.
func (s *MemoryStore) Delete(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return
	}
	s.notes = append(s.notes[:i], s.notes[i+1:]...)
}

func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.notes)
}

// indexOf must be called with mu held. Ids are appended in increasing
// order, so the slice stays sorted by id.
func (s *MemoryStore) indexOf(id int64) int {
	i := sort.Search(len(s.notes), func(i int) bool { return s.notes[i].ID >= id })
	if i < len(s.notes) && s.notes[i].ID == id {
		return i
	}
	return -1
}
