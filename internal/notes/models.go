package notes

// Note is a single stored note. Values are copies; mutating one never
// touches the store.
type Note struct {
	ID      int64
	Title   string
	Content string
}

// card is the list page view of a note.
type card struct {
	ID      int64
	Title   string
	Preview string
}

type indexPage struct {
	Notes []card
}

type detailPage struct {
	Note Note
}
