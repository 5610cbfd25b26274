package vocab

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/pluqqy/microcomp/pkg/microcomp"
	"github.com/pluqqy/microcomp/pkg/models"
)

// Registry errors
var (
	ErrUnknownKind = errors.New("unknown vocabulary kind")
	ErrNotFound    = errors.New("name not found in vocabulary")
)

// Registry manages the vocabulary file of known tags, categories and custom fields
type Registry struct {
	mu    sync.RWMutex
	vocab *models.Vocabulary
	path  string
}

// NewRegistry creates a registry backed by the YAML file at path. A missing file
// yields an empty vocabulary that is created on the first Save.
func NewRegistry(path string) (*Registry, error) {
	r := &Registry{
		path: path,
	}

	if err := r.Load(); err != nil {
		if os.IsNotExist(err) {
			r.vocab = &models.Vocabulary{}
			return r, nil
		}
		return nil, fmt.Errorf("failed to load vocabulary: %w", err)
	}

	return r, nil
}

// NewMemoryRegistry creates a registry that is not backed by a file
func NewMemoryRegistry(v models.Vocabulary) *Registry {
	return &Registry{vocab: &v}
}

// Path returns the file the registry is saved to
func (r *Registry) Path() string {
	return r.path
}

// Load reads the vocabulary from disk
func (r *Registry) Load() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := os.ReadFile(r.path)
	if err != nil {
		return err
	}

	var vocab models.Vocabulary
	if err := yaml.Unmarshal(data, &vocab); err != nil {
		return fmt.Errorf("failed to parse vocabulary: %w", err)
	}

	r.vocab = &vocab
	return nil
}

// Save writes the vocabulary to disk
func (r *Registry) Save() error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.path == "" {
		return fmt.Errorf("vocabulary has no file path")
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create vocabulary directory: %w", err)
	}

	data, err := yaml.Marshal(r.vocab)
	if err != nil {
		return fmt.Errorf("failed to marshal vocabulary: %w", err)
	}

	// Write atomically
	tmpFile := r.path + ".tmp"
	if err := os.WriteFile(tmpFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write vocabulary: %w", err)
	}

	if err := os.Rename(tmpFile, r.path); err != nil {
		os.Remove(tmpFile)
		return fmt.Errorf("failed to save vocabulary: %w", err)
	}

	return nil
}

// AddTag adds or updates a tag
func (r *Registry) AddTag(tag models.Tag) error {
	if err := models.ValidateName(tag.Name); err != nil {
		return fmt.Errorf("invalid tag name: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.vocab.Tags {
		if models.NormalizeName(existing.Name) == models.NormalizeName(tag.Name) {
			r.vocab.Tags[i] = tag
			return nil
		}
	}

	r.vocab.Tags = append(r.vocab.Tags, tag)
	return nil
}

// AddCategory adds or updates a category
func (r *Registry) AddCategory(category models.Category) error {
	if err := models.ValidateName(category.Name); err != nil {
		return fmt.Errorf("invalid category name: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.vocab.Categories {
		if models.NormalizeName(existing.Name) == models.NormalizeName(category.Name) {
			r.vocab.Categories[i] = category
			return nil
		}
	}

	r.vocab.Categories = append(r.vocab.Categories, category)
	return nil
}

// AddCustomField adds or updates a custom field
func (r *Registry) AddCustomField(field models.CustomField) error {
	if err := models.ValidateName(field.Name); err != nil {
		return fmt.Errorf("invalid custom field name: %w", err)
	}
	if _, ok := microcomp.ParseTypeHandler(string(field.Type)); !ok {
		return fmt.Errorf("invalid custom field type %q", field.Type)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.vocab.CustomFields {
		if models.NormalizeName(existing.Name) == models.NormalizeName(field.Name) {
			r.vocab.CustomFields[i] = field
			return nil
		}
	}

	r.vocab.CustomFields = append(r.vocab.CustomFields, field)
	return nil
}

// Remove deletes a name of the given kind
func (r *Registry) Remove(kind microcomp.Kind, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	normalized := models.NormalizeName(name)
	found := false

	switch kind {
	case microcomp.KindTag:
		r.vocab.Tags = removeWhere(r.vocab.Tags, func(t models.Tag) bool {
			return models.NormalizeName(t.Name) == normalized
		}, &found)
	case microcomp.KindCategory:
		r.vocab.Categories = removeWhere(r.vocab.Categories, func(c models.Category) bool {
			return models.NormalizeName(c.Name) == normalized
		}, &found)
	case microcomp.KindCustomField:
		r.vocab.CustomFields = removeWhere(r.vocab.CustomFields, func(f models.CustomField) bool {
			return models.NormalizeName(f.Name) == normalized
		}, &found)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}

	if !found {
		return fmt.Errorf("%w: %s '%s'", ErrNotFound, kind, name)
	}
	return nil
}

func removeWhere[T any](items []T, match func(T) bool, found *bool) []T {
	kept := make([]T, 0, len(items))
	for _, item := range items {
		if match(item) {
			*found = true
			continue
		}
		kept = append(kept, item)
	}
	return kept
}

// GetTag retrieves tag metadata by name
func (r *Registry) GetTag(name string) (models.Tag, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	normalized := models.NormalizeName(name)
	for _, tag := range r.vocab.Tags {
		if models.NormalizeName(tag.Name) == normalized {
			return tag, true
		}
	}
	return models.Tag{}, false
}

// TagColor returns the display color for a tag, known or not
func (r *Registry) TagColor(name string) string {
	tag, _ := r.GetTag(name)
	return models.GetTagColor(name, tag.Color)
}

// Vocabulary returns a copy of the whole vocabulary
func (r *Registry) Vocabulary() models.Vocabulary {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return models.Vocabulary{
		Tags:         append([]models.Tag(nil), r.vocab.Tags...),
		Categories:   append([]models.Category(nil), r.vocab.Categories...),
		CustomFields: append([]models.CustomField(nil), r.vocab.CustomFields...),
	}
}

// Names returns the names of the given kind in file order
func (r *Registry) Names(kind microcomp.Kind) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var names []string
	switch kind {
	case microcomp.KindTag:
		for _, t := range r.vocab.Tags {
			names = append(names, t.Name)
		}
	case microcomp.KindCategory:
		for _, c := range r.vocab.Categories {
			names = append(names, c.Name)
		}
	case microcomp.KindCustomField:
		for _, f := range r.vocab.CustomFields {
			names = append(names, f.Name)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
	return names, nil
}

// Parser returns a token parser that knows the registered custom fields
func (r *Registry) Parser() *microcomp.Parser {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return microcomp.NewParser(microcomp.WithCustomFields(r.vocab.CustomFieldTypes()))
}
