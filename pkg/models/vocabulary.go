package models

import (
	"errors"
	"hash/fnv"
	"strings"
	"unicode"

	"github.com/pluqqy/microcomp/pkg/microcomp"
)

// Vocabulary-related errors
var (
	ErrEmptyName        = errors.New("name cannot be empty")
	ErrNameTooLong      = errors.New("name cannot exceed 100 characters")
	ErrInvalidCharacter = errors.New("name contains invalid characters")
)

// Tag represents a tag with metadata
type Tag struct {
	Name        string `yaml:"name" json:"name"`
	Color       string `yaml:"color,omitempty" json:"color,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// Category represents a document category (document type)
type Category struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// CustomField represents a typed custom field that documents can carry
type CustomField struct {
	Name string                `yaml:"name" json:"name"`
	Type microcomp.TypeHandler `yaml:"type" json:"type"`
}

// Vocabulary holds the known names offered as search suggestions
type Vocabulary struct {
	Tags         []Tag         `yaml:"tags" json:"tags"`
	Categories   []Category    `yaml:"categories" json:"categories"`
	CustomFields []CustomField `yaml:"custom_fields" json:"custom_fields"`
}

// DefaultColorPalette provides a curated set of colors for tags
// These colors are chosen for good contrast and accessibility
var DefaultColorPalette = []string{
	"#e74c3c", // red
	"#3498db", // blue
	"#2ecc71", // green
	"#f39c12", // orange
	"#9b59b6", // purple
	"#1abc9c", // turquoise
	"#34495e", // dark gray
	"#e67e22", // dark orange
	"#16a085", // dark turquoise
	"#8e44ad", // dark purple
	"#f1c40f", // yellow
	"#d35400", // pumpkin
	"#27ae60", // nephritis
	"#2980b9", // belize hole
	"#c0392b", // pomegranate
}

// GetTagColor returns the registry color for a tag when set, otherwise a color
// derived from the tag name so the same tag always renders the same way
func GetTagColor(tagName string, registryColor string) string {
	if registryColor != "" {
		return registryColor
	}

	h := fnv.New32a()
	h.Write([]byte(NormalizeName(tagName)))
	hash := h.Sum32()

	return DefaultColorPalette[int(hash%uint32(len(DefaultColorPalette)))]
}

// NormalizeName lowercases a name and collapses whitespace so names can be
// compared regardless of how they were typed
func NormalizeName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// ValidateName checks that a vocabulary name can be typed into the search box.
// Quoting allows spaces, commas and colons, but a name holding both quote
// characters cannot be quoted at all.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}

	if len(name) > 100 {
		return ErrNameTooLong
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return ErrInvalidCharacter
		}
	}

	if strings.Contains(name, `"`) && strings.Contains(name, "'") {
		return ErrInvalidCharacter
	}

	return nil
}

// CustomFieldTypes maps custom field names to their types for the token parser
func (v *Vocabulary) CustomFieldTypes() map[string]microcomp.TypeHandler {
	types := make(map[string]microcomp.TypeHandler, len(v.CustomFields))
	for _, cf := range v.CustomFields {
		types[cf.Name] = cf.Type
	}
	return types
}
