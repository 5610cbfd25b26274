package cli

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pluqqy/microcomp/pkg/config"
	"github.com/pluqqy/microcomp/pkg/models"
	"github.com/pluqqy/microcomp/pkg/vocab"
)

// CommandContext loads settings, the logger and the vocabulary once per command
type CommandContext struct {
	ConfigPath string
	LogLevel   string
	Settings   *models.Settings
	registry   *vocab.Registry
	logger     *zerolog.Logger
}

// NewCommandContext creates a new command context. An empty configPath uses the
// project config file; an empty logLevel uses the configured level.
func NewCommandContext(configPath, logLevel string) *CommandContext {
	return &CommandContext{
		ConfigPath: configPath,
		LogLevel:   logLevel,
	}
}

// LoadSettings loads the settings on first use
func (c *CommandContext) LoadSettings() (*models.Settings, error) {
	if c.Settings != nil {
		return c.Settings, nil
	}

	settings, err := config.Load(c.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	c.Settings = settings
	return settings, nil
}

// LoadSettingsWithDefault loads settings or returns defaults on error
func (c *CommandContext) LoadSettingsWithDefault() *models.Settings {
	settings, err := c.LoadSettings()
	if err != nil {
		PrintWarning("Using default settings: %v", err)
		c.Settings = models.DefaultSettings()
		return c.Settings
	}
	return settings
}

// Logger returns the diagnostic logger, writing to stderr
func (c *CommandContext) Logger() zerolog.Logger {
	if c.logger != nil {
		return *c.logger
	}

	level := c.LogLevel
	if level == "" {
		level = c.LoadSettingsWithDefault().Log.Level
	}

	logger := NewLogger(level, stderr)
	c.logger = &logger
	return logger
}

// Registry opens the vocabulary file named in the settings
func (c *CommandContext) Registry() (*vocab.Registry, error) {
	if c.registry != nil {
		return c.registry, nil
	}

	settings := c.LoadSettingsWithDefault()
	registry, err := vocab.NewRegistry(settings.Vocabulary.Path)
	if err != nil {
		return nil, err
	}

	c.registry = registry
	return registry, nil
}

// EditorLauncher opens files in the user's editor
type EditorLauncher struct {
	DefaultEditor string
}

// NewEditorLauncher creates a new editor launcher
func NewEditorLauncher() *EditorLauncher {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "vi"
	}
	return &EditorLauncher{
		DefaultEditor: editor,
	}
}

// Command builds the editor invocation for path. Extra words in $EDITOR are
// passed as arguments.
func (e *EditorLauncher) Command(path string) *exec.Cmd {
	parts := strings.Fields(e.DefaultEditor)
	if len(parts) == 0 {
		parts = []string{"vi"}
	}
	return exec.Command(parts[0], append(parts[1:], path)...)
}

// OpenFile opens a file in the configured editor
func (e *EditorLauncher) OpenFile(path string) error {
	editorCmd := e.Command(path)
	editorCmd.Stdin = os.Stdin
	editorCmd.Stdout = os.Stdout
	editorCmd.Stderr = os.Stderr

	if err := editorCmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}

	return nil
}
