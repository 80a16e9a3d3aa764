package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"example.com/notes-web/internal/notes"
)

type stubStore struct {
	createFn func(title, content string) notes.Note
	listFn   func() []notes.Note
	getFn    func(id int64) (notes.Note, bool)
	deleteFn func(id int64)
}

func (s stubStore) Create(title, content string) notes.Note { return s.createFn(title, content) }
func (s stubStore) List() []notes.Note                      { return s.listFn() }
func (s stubStore) Get(id int64) (notes.Note, bool)         { return s.getFn(id) }
func (s stubStore) Delete(id int64)                         { s.deleteFn(id) }

func TestNotes_Create(t *testing.T) {
	t.Run("blank fields are rejected before the store", func(t *testing.T) {
		svc := New(stubStore{
			createFn: func(string, string) notes.Note {
				t.Fatal("store must not be called")
				return notes.Note{}
			},
		})

		for _, in := range [][2]string{{"", "x"}, {"x", ""}, {"  ", "x"}, {"x", "\n\t"}, {"", ""}} {
			_, err := svc.Create(in[0], in[1])
			require.ErrorIs(t, err, ErrEmptyField)
		}
	})

	t.Run("trimmed fields reach the store", func(t *testing.T) {
		svc := New(stubStore{
			createFn: func(title, content string) notes.Note {
				require.Equal(t, "t", title)
				require.Equal(t, "c", content)
				return notes.Note{ID: 7, Title: title, Content: content}
			},
		})

		n, err := svc.Create("  t ", "\tc\n")
		require.NoError(t, err)
		require.Equal(t, notes.Note{ID: 7, Title: "t", Content: "c"}, n)
	})
}

func TestNotes_PassThrough(t *testing.T) {
	var deleted int64
	svc := New(stubStore{
		listFn: func() []notes.Note { return []notes.Note{{ID: 2}, {ID: 1}} },
		getFn: func(id int64) (notes.Note, bool) {
			return notes.Note{ID: id}, id == 1
		},
		deleteFn: func(id int64) { deleted = id },
	})

	require.Len(t, svc.List(), 2)

	n, ok := svc.Get(1)
	require.True(t, ok)
	require.Equal(t, int64(1), n.ID)

	_, ok = svc.Get(5)
	require.False(t, ok)

	svc.Delete(3)
	require.Equal(t, int64(3), deleted)
}

func TestNotes_WithMemoryStore(t *testing.T) {
	svc := New(notes.NewMemoryStore())

	_, err := svc.Create(" ", "ignored")
	require.ErrorIs(t, err, ErrEmptyField)

	first, err := svc.Create("a", "b")
	require.NoError(t, err)
	require.Equal(t, int64(1), first.ID, "rejected input must not consume an id")

	second, err := svc.Create("c", "d")
	require.NoError(t, err)
	require.Equal(t, int64(2), second.ID)
}
