package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/pluqqy/microcomp/pkg/models"
)

const (
	Dir            = ".microcomp"
	ConfigName     = "config"
	ConfigFile     = "config.yaml"
	VocabularyFile = "vocabulary.yaml"
	EnvPrefix      = "MICROCOMP"
	EnvFile        = ".env"
)

// ErrAlreadyInitialized is returned by Init when the config file exists
var ErrAlreadyInitialized = errors.New("microcomp is already initialized")

// Load reads settings from path, or from .microcomp/config.yaml when path is
// empty. Values come from defaults, then the file, then MICROCOMP_* variables;
// a .env file in the working directory is loaded first when present.
func Load(path string) (*models.Settings, error) {
	if err := godotenv.Load(EnvFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error loading %s: %w", EnvFile, err)
	}

	v := viper.New()
	setDefaults(v, models.DefaultSettings())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config %s: %w", path, err)
		}
	} else {
		v.SetConfigName(ConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(Dir)

		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("error reading config: %w", err)
			}
		}
	}

	var settings models.Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &settings, nil
}

func setDefaults(v *viper.Viper, d *models.Settings) {
	v.SetDefault("search.page_size", d.Search.PageSize)
	v.SetDefault("search.sort_by", d.Search.SortBy)
	v.SetDefault("search.sort_direction", d.Search.SortDirection)
	v.SetDefault("backend.url", d.Backend.URL)
	v.SetDefault("backend.retry_max", d.Backend.RetryMax)
	v.SetDefault("backend.timeout_seconds", d.Backend.TimeoutSeconds)
	v.SetDefault("server.addr", d.Server.Addr)
	v.SetDefault("ui.max_suggestions", d.UI.MaxSuggestions)
	v.SetDefault("ui.placeholder", d.UI.Placeholder)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("vocabulary.path", d.Vocabulary.Path)
}

// Save writes settings to path as YAML
func Save(path string, settings *models.Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}

	return nil
}

// DefaultPath returns the config file location inside root
func DefaultPath(root string) string {
	return filepath.Join(root, Dir, ConfigFile)
}

// Init creates the .microcomp directory under root with a default config file
// and an empty vocabulary. It returns the config path.
func Init(root string, force bool) (string, error) {
	path := DefaultPath(root)
	if _, err := os.Stat(path); err == nil && !force {
		return path, ErrAlreadyInitialized
	}

	settings := models.DefaultSettings()
	if err := Save(path, settings); err != nil {
		return "", err
	}

	vocabPath := filepath.Join(root, Dir, VocabularyFile)
	if _, err := os.Stat(vocabPath); os.IsNotExist(err) {
		data, err := yaml.Marshal(&models.Vocabulary{})
		if err != nil {
			return "", fmt.Errorf("failed to marshal vocabulary: %w", err)
		}
		if err := os.WriteFile(vocabPath, data, 0644); err != nil {
			return "", fmt.Errorf("failed to write vocabulary: %w", err)
		}
	}

	return path, nil
}
