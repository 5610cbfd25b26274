package microcomp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueItems(t *testing.T) {
	tests := []struct {
		name    string
		tail    string
		filter  string
		exclude []string
	}{
		{
			name:    "value in progress",
			tail:    "forget,me,not",
			filter:  "not",
			exclude: []string{"forget", "me"},
		},
		{
			name:    "trailing comma commits last value",
			tail:    "forget,me,not,",
			filter:  "",
			exclude: []string{"forget", "me", "not"},
		},
		{
			name:    "quoted value with spaces",
			tail:    "invoice, 'blue sky', deleted",
			filter:  "deleted",
			exclude: []string{"invoice", "blue sky"},
		},
		{
			name:    "comma after quote",
			tail:    `invoice,"blue sky",`,
			filter:  "",
			exclude: []string{"invoice", "blue sky"},
		},
		{
			name:    "comma followed by whitespace",
			tail:    "invoice, ",
			filter:  "",
			exclude: []string{"invoice"},
		},
		{
			name:    "comma inside open quote",
			tail:    "invoice, 'blue,",
			filter:  "blue,",
			exclude: []string{"invoice"},
		},
		{
			name:    "single value",
			tail:    " inv ",
			filter:  "inv",
			exclude: []string{},
		},
		{
			name:    "empty tail",
			tail:    "",
			filter:  "",
			exclude: []string{},
		},
		{
			name:    "empty items are skipped",
			tail:    "a,,b,",
			filter:  "",
			exclude: []string{"a", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.filter, GetTokenValueItemsFilter(tt.tail))
			assert.Equal(t, tt.exclude, GetTokenValueItemsToExclude(tt.tail))
		})
	}
}
