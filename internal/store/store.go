// Package store holds the read-only book catalog.
package store

import (
	"strings"

	"github.com/go-faster/errors"

	"github.com/fairyhunter13/bookshop-service/internal/model"
)

// ErrNotFound is returned when a requested book does not exist.
var ErrNotFound = errors.New("book not found")

// Store is an immutable catalog indexed by book id. It is safe for
// concurrent use because nothing mutates it after New returns.
type Store struct {
	books []model.Book
	byID  map[int]int
}

// New builds a Store from books, keeping their order for listings.
func New(books []model.Book) (*Store, error) {
	s := &Store{
		books: make([]model.Book, 0, len(books)),
		byID:  make(map[int]int, len(books)),
	}
	for _, b := range books {
		if b.ID <= 0 {
			return nil, errors.Errorf("book %q: id must be positive, got %d", b.Title, b.ID)
		}
		if _, dup := s.byID[b.ID]; dup {
			return nil, errors.Errorf("duplicate book id %d", b.ID)
		}
		s.byID[b.ID] = len(s.books)
		s.books = append(s.books, b)
	}
	return s, nil
}

// NewSeeded returns a Store holding the built-in catalog.
func NewSeeded() *Store {
	s, err := New(Seed())
	if err != nil {
		panic(err)
	}
	return s
}

// Len returns the number of books in the catalog.
func (s *Store) Len() int { return len(s.books) }

// List returns the books matching f in catalog order. The result is a
// fresh slice and may be empty.
func (s *Store) List(f model.Filter) []model.Book {
	author := strings.ToLower(f.Author)
	out := make([]model.Book, 0, len(s.books))
	for _, b := range s.books {
		if author != "" && !strings.Contains(strings.ToLower(b.Author), author) {
			continue
		}
		if f.MinPrice != nil && b.Price.LessThan(*f.MinPrice) {
			continue
		}
		out = append(out, b)
	}
	return out
}

// Get returns the book with the given id or an error wrapping ErrNotFound.
func (s *Store) Get(id int) (model.Book, error) {
	i, ok := s.byID[id]
	if !ok {
		return model.Book{}, errors.Wrapf(ErrNotFound, "id %d", id)
	}
	return s.books[i], nil
}
