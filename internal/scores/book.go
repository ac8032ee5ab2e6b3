package scores

// Book is the in-memory score list, kept in the order records were won.
// It holds at most one record per level.
type Book struct {
	path    string
	records []Record
}

// NewBook wraps records loaded from path. Later duplicates of a level are
// dropped.
func NewBook(path string, records []Record) *Book {
	b := &Book{path: path}
	for _, r := range records {
		b.Add(r)
	}
	return b
}

// Open loads the score file at path into a Book.
func Open(path string) (*Book, error) {
	records, err := Load(path)
	if err != nil {
		return nil, err
	}
	return NewBook(path, records), nil
}

// Path returns the file the book persists to. Empty means in-memory only.
func (b *Book) Path() string {
	return b.path
}

// Add stores r unless its level already has a record. The first win wins.
func (b *Book) Add(r Record) bool {
	if b.Has(int(r.Level)) {
		return false
	}
	b.records = append(b.records, r)
	return true
}

// Has reports whether level (0-based) has a record.
func (b *Book) Has(level int) bool {
	_, ok := b.Get(level)
	return ok
}

// Get returns the record for level (0-based).
func (b *Book) Get(level int) (Record, bool) {
	for _, r := range b.records {
		if int(r.Level) == level {
			return r, true
		}
	}
	return Record{}, false
}

// Records returns a copy of the records in insertion order.
func (b *Book) Records() []Record {
	out := make([]Record, len(b.records))
	copy(out, b.records)
	return out
}

// Len returns the number of records.
func (b *Book) Len() int {
	return len(b.records)
}

// FirstUnsolved returns the lowest level index below n without a record,
// or n when every level has one.
func (b *Book) FirstUnsolved(n int) int {
	for i := 0; i < n; i++ {
		if !b.Has(i) {
			return i
		}
	}
	return n
}

// Save writes the book to its path. Books without a path are not persisted.
func (b *Book) Save() error {
	if b.path == "" {
		return nil
	}
	return Save(b.path, b.records)
}
