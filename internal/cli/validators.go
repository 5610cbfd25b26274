package cli

import (
	"fmt"
	"strings"

	"github.com/pluqqy/microcomp/pkg/microcomp"
)

// ValidateOutputFormat validates the output format flag
func ValidateOutputFormat(format string) error {
	validFormats := []string{"text", "json", "yaml"}
	if Contains(validFormats, format) {
		return nil
	}
	return fmt.Errorf("invalid output format: %s (must be: text, json, or yaml)", format)
}

// ParseVocabularyKind converts a kind argument to a token kind that the
// vocabulary can hold
func ParseVocabularyKind(s string) (microcomp.Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "tag", "tags":
		return microcomp.KindTag, nil
	case "cat", "category", "categories":
		return microcomp.KindCategory, nil
	case "cf", "field", "fields", "custom_field", "custom-field":
		return microcomp.KindCustomField, nil
	}
	return "", fmt.Errorf("invalid kind: %s (must be: tag, category, or cf)", s)
}

// ValidateTypeHandler validates a custom field type flag
func ValidateTypeHandler(s string) (microcomp.TypeHandler, error) {
	handler, ok := microcomp.ParseTypeHandler(s)
	if !ok {
		names := make([]string, 0, len(microcomp.TypeHandlers))
		for _, h := range microcomp.TypeHandlers {
			names = append(names, string(h))
		}
		return "", fmt.Errorf("invalid field type: %s (must be one of: %s)", s, strings.Join(names, ", "))
	}
	return handler, nil
}

// ValidatePagination validates page number and page size flags
func ValidatePagination(page, size int) error {
	if page < 1 {
		return fmt.Errorf("page must be at least 1, got %d", page)
	}
	if size < 1 {
		return fmt.Errorf("page size must be at least 1, got %d", size)
	}
	return nil
}

// Contains checks if a string is in a slice
func Contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
