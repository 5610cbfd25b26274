package models

import (
	"errors"

	"github.com/google/uuid"

	"github.com/pluqqy/microcomp/pkg/microcomp"
)

// ErrFilterNotFound is returned when no filter has the requested ID
var ErrFilterNotFound = errors.New("filter not found")

// Filter is a committed search token that can be edited or removed on its own
type Filter struct {
	ID    string          `json:"id" yaml:"id"`
	Index int             `json:"index" yaml:"index"`
	Kind  microcomp.Kind  `json:"kind" yaml:"kind"`
	Token microcomp.Token `json:"token" yaml:"token"`
}

// FilterSet holds the committed filters of one search bar in display order.
// It is not safe for concurrent use; each search bar owns its own set.
type FilterSet struct {
	filters []Filter
}

// NewFilterSet creates an empty filter set
func NewFilterSet() *FilterSet {
	return &FilterSet{filters: []Filter{}}
}

// Add appends a filter for token and returns it
func (s *FilterSet) Add(token microcomp.Token) Filter {
	f := Filter{
		ID:    uuid.New().String(),
		Index: len(s.filters),
		Kind:  token.Kind(),
		Token: token,
	}
	s.filters = append(s.filters, f)
	return f
}

// Update replaces the token of the filter with the given ID, keeping its position
func (s *FilterSet) Update(id string, token microcomp.Token) (Filter, error) {
	for i := range s.filters {
		if s.filters[i].ID == id {
			s.filters[i].Token = token
			s.filters[i].Kind = token.Kind()
			return s.filters[i], nil
		}
	}
	return Filter{}, ErrFilterNotFound
}

// Remove deletes the filter with the given ID
func (s *FilterSet) Remove(id string) error {
	for i := range s.filters {
		if s.filters[i].ID == id {
			s.filters = append(s.filters[:i], s.filters[i+1:]...)
			s.reindex()
			return nil
		}
	}
	return ErrFilterNotFound
}

// RemoveLast deletes and returns the last filter
func (s *FilterSet) RemoveLast() (Filter, bool) {
	if len(s.filters) == 0 {
		return Filter{}, false
	}
	last := s.filters[len(s.filters)-1]
	s.filters = s.filters[:len(s.filters)-1]
	return last, true
}

// Clear removes every filter
func (s *FilterSet) Clear() {
	s.filters = []Filter{}
}

// Len returns the number of filters
func (s *FilterSet) Len() int {
	return len(s.filters)
}

// Filters returns a copy of the filters in display order
func (s *FilterSet) Filters() []Filter {
	filters := make([]Filter, len(s.filters))
	copy(filters, s.filters)
	return filters
}

// Tokens returns the tokens of all filters in display order
func (s *FilterSet) Tokens() []microcomp.Token {
	tokens := make([]microcomp.Token, 0, len(s.filters))
	for _, f := range s.filters {
		tokens = append(tokens, f.Token)
	}
	return tokens
}

func (s *FilterSet) reindex() {
	for i := range s.filters {
		s.filters[i].Index = i
	}
}
