package templates

import "github.com/toyz/tracewrap/internal/models"

// ImportSet is an ordered, deduplicated collection of import directives.
// The first occurrence of a directive wins and later duplicates are dropped;
// identity is the exact rendered text, so two spellings of the same package
// stay distinct.
type ImportSet struct {
	seen  map[string]struct{}
	order []models.ImportDirective
}

// NewImportSet creates an empty import set
func NewImportSet() *ImportSet {
	return &ImportSet{
		seen: make(map[string]struct{}),
	}
}

// Add inserts a directive unless an identical one was already added.
// It reports whether the directive was inserted.
func (s *ImportSet) Add(directive models.ImportDirective) bool {
	key := directive.Render()
	if _, exists := s.seen[key]; exists {
		return false
	}
	s.seen[key] = struct{}{}
	s.order = append(s.order, directive)
	return true
}

// AddAll inserts directives in order, keeping first occurrences
func (s *ImportSet) AddAll(directives []models.ImportDirective) {
	for _, directive := range directives {
		s.Add(directive)
	}
}

// Contains reports whether an identical directive was already added
func (s *ImportSet) Contains(directive models.ImportDirective) bool {
	_, exists := s.seen[directive.Render()]
	return exists
}

// Len returns the number of distinct directives
func (s *ImportSet) Len() int {
	return len(s.order)
}

// Directives returns the directives in first-seen order
func (s *ImportSet) Directives() []models.ImportDirective {
	out := make([]models.ImportDirective, len(s.order))
	copy(out, s.order)
	return out
}
