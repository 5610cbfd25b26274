package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/pluqqy/microcomp/internal/cli"
	"github.com/pluqqy/microcomp/pkg/microcomp"
	"github.com/pluqqy/microcomp/pkg/models"
)

var (
	vocabType        string
	vocabColor       string
	vocabDescription string
)

// VocabularyListResult represents the output structure for vocab list
type VocabularyListResult struct {
	Tags         []models.Tag         `json:"tags,omitempty" yaml:"tags,omitempty"`
	Categories   []models.Category    `json:"categories,omitempty" yaml:"categories,omitempty"`
	CustomFields []models.CustomField `json:"custom_fields,omitempty" yaml:"custom_fields,omitempty"`
}

// RenderText prints the vocabulary as a table
func (r VocabularyListResult) RenderText(w io.Writer) error {
	if len(r.Tags)+len(r.Categories)+len(r.CustomFields) == 0 {
		_, err := fmt.Fprintln(w, "Vocabulary is empty")
		return err
	}

	table := cli.NewTableFormatter(w)
	table.Header("KIND", "NAME", "DETAILS")
	for _, t := range r.Tags {
		table.Row("tag", t.Name, cli.TruncateString(joinDetails(t.Color, t.Description), 40))
	}
	for _, c := range r.Categories {
		table.Row("category", c.Name, cli.TruncateString(c.Description, 40))
	}
	for _, f := range r.CustomFields {
		table.Row("cf", f.Name, string(f.Type))
	}
	return table.Flush()
}

func joinDetails(color, description string) string {
	switch {
	case color == "":
		return description
	case description == "":
		return color
	}
	return color + " " + description
}

// NewVocabCommand creates the vocab command with its subcommands
func NewVocabCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vocab",
		Short: "Manage known tags, categories and custom fields",
		Long: `Manage the vocabulary offered as search suggestions.

Custom fields in the vocabulary can also be used directly as keywords,
for example "total:>:100" for a monetary field named total.`,
	}

	cmd.AddCommand(newVocabListCommand())
	cmd.AddCommand(newVocabAddCommand())
	cmd.AddCommand(newVocabRemoveCommand())
	cmd.AddCommand(newVocabEditCommand())

	return cmd
}

func newVocabListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [kind]",
		Short: "List vocabulary entries",
		Long: `List vocabulary entries, optionally only those of one kind.

Examples:
  microcomp vocab list
  microcomp vocab list tag
  microcomp vocab list cf -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: runVocabList,
	}

	addOutputFlag(cmd)

	return cmd
}

func runVocabList(cmd *cobra.Command, args []string) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	registry, err := commandContext(cmd).Registry()
	if err != nil {
		return err
	}
	v := registry.Vocabulary()

	result := VocabularyListResult{
		Tags:         v.Tags,
		Categories:   v.Categories,
		CustomFields: v.CustomFields,
	}

	if len(args) == 1 {
		kind, err := cli.ParseVocabularyKind(args[0])
		if err != nil {
			return err
		}
		switch kind {
		case microcomp.KindTag:
			result = VocabularyListResult{Tags: v.Tags}
		case microcomp.KindCategory:
			result = VocabularyListResult{Categories: v.Categories}
		case microcomp.KindCustomField:
			result = VocabularyListResult{CustomFields: v.CustomFields}
		}
	}

	return cliOutput(cmd, format, result)
}

func newVocabAddCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <kind> <name>",
		Short: "Add or update a vocabulary entry",
		Long: `Add a tag, category or custom field. Adding an existing name updates it.

Examples:
  microcomp vocab add tag invoice --color "#3498db"
  microcomp vocab add category receipt --description "Shop receipts"
  microcomp vocab add cf total --type monetary`,
		Args: cobra.ExactArgs(2),
		RunE: runVocabAdd,
	}

	cmd.Flags().StringVar(&vocabType, "type", string(microcomp.TypeText), "Custom field type")
	cmd.Flags().StringVar(&vocabColor, "color", "", "Tag color (hex); generated when empty")
	cmd.Flags().StringVar(&vocabDescription, "description", "", "Description")

	return cmd
}

func runVocabAdd(cmd *cobra.Command, args []string) error {
	kind, err := cli.ParseVocabularyKind(args[0])
	if err != nil {
		return err
	}
	name := args[1]

	registry, err := commandContext(cmd).Registry()
	if err != nil {
		return err
	}

	switch kind {
	case microcomp.KindTag:
		err = registry.AddTag(models.Tag{Name: name, Color: vocabColor, Description: vocabDescription})
	case microcomp.KindCategory:
		err = registry.AddCategory(models.Category{Name: name, Description: vocabDescription})
	case microcomp.KindCustomField:
		handler, verr := cli.ValidateTypeHandler(vocabType)
		if verr != nil {
			return verr
		}
		err = registry.AddCustomField(models.CustomField{Name: name, Type: handler})
	}
	if err != nil {
		return fmt.Errorf("failed to add %s: %w", kind, err)
	}

	if err := registry.Save(); err != nil {
		return fmt.Errorf("failed to save vocabulary: %w", err)
	}

	cli.PrintSuccess("Added %s '%s'", kind, name)
	return nil
}

func newVocabRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <kind> <name>",
		Short: "Remove a vocabulary entry",
		Long: `Remove a tag, category or custom field from the vocabulary.

Examples:
  microcomp vocab remove tag invoice
  microcomp vocab remove cf total --yes`,
		Args: cobra.ExactArgs(2),
		RunE: runVocabRemove,
	}
}

func runVocabRemove(cmd *cobra.Command, args []string) error {
	kind, err := cli.ParseVocabularyKind(args[0])
	if err != nil {
		return err
	}
	name := args[1]

	confirmed, err := cli.Confirm(fmt.Sprintf("Remove %s '%s'?", kind, name), false)
	if err != nil {
		return err
	}
	if !confirmed {
		cli.PrintInfo("Cancelled")
		return nil
	}

	registry, err := commandContext(cmd).Registry()
	if err != nil {
		return err
	}

	if err := registry.Remove(kind, name); err != nil {
		return fmt.Errorf("failed to remove %s '%s': %w", kind, name, err)
	}

	if err := registry.Save(); err != nil {
		return fmt.Errorf("failed to save vocabulary: %w", err)
	}

	cli.PrintSuccess("Removed %s '%s'", kind, name)
	return nil
}

func newVocabEditCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Open the vocabulary file in $EDITOR",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := commandContext(cmd).Registry()
			if err != nil {
				return err
			}
			if err := registry.Save(); err != nil {
				return fmt.Errorf("failed to create vocabulary file: %w", err)
			}
			if err := cli.NewEditorLauncher().OpenFile(registry.Path()); err != nil {
				return err
			}
			return registry.Load()
		},
	}
}
