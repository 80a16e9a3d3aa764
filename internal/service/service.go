package service

import (
	"errors"
	"strings"

	"example.com/notes-web/internal/notes"
	"example.com/notes-web/internal/stringsx"
)

var ErrEmptyField = errors.New("title and content required")

// NoteStore is the storage dependency; stubbed in unit tests.
type NoteStore interface {
	Create(title, content string) notes.Note
	List() []notes.Note
	Get(id int64) (notes.Note, bool)
	Delete(id int64)
}

// Notes applies the creation policy on top of a NoteStore.
type Notes struct {
	store NoteStore
}

func New(store NoteStore) *Notes {
	return &Notes{store: store}
}

// Create trims both fields and stores the note. Blank input returns
// ErrEmptyField and never reaches the store, so it consumes no id.
func (s *Notes) Create(title, content string) (notes.Note, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if stringsx.IsEmpty(title) || stringsx.IsEmpty(content) {
		return notes.Note{}, ErrEmptyField
	}
	return s.store.Create(title, content), nil
}

func (s *Notes) List() []notes.Note {
	return s.store.List()
}

func (s *Notes) Get(id int64) (notes.Note, bool) {
	return s.store.Get(id)
}

func (s *Notes) Delete(id int64) {
	s.store.Delete(id)
}
