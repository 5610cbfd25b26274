package models

// Settings represents the application configuration
type Settings struct {
	Search     SearchSettings     `yaml:"search" mapstructure:"search"`
	Backend    BackendSettings    `yaml:"backend" mapstructure:"backend"`
	Server     ServerSettings     `yaml:"server" mapstructure:"server"`
	UI         UISettings         `yaml:"ui" mapstructure:"ui"`
	Log        LogSettings        `yaml:"log" mapstructure:"log"`
	Vocabulary VocabularySettings `yaml:"vocabulary" mapstructure:"vocabulary"`
}

// SearchSettings controls pagination and sorting of built queries
type SearchSettings struct {
	PageSize      int    `yaml:"page_size" mapstructure:"page_size"`
	SortBy        string `yaml:"sort_by" mapstructure:"sort_by"`
	SortDirection string `yaml:"sort_direction" mapstructure:"sort_direction"` // "asc" or "desc"
}

// BackendSettings points at the document search endpoint
type BackendSettings struct {
	URL            string `yaml:"url" mapstructure:"url"`
	RetryMax       int    `yaml:"retry_max" mapstructure:"retry_max"`
	TimeoutSeconds int    `yaml:"timeout_seconds" mapstructure:"timeout_seconds"`
}

// ServerSettings controls the HTTP API
type ServerSettings struct {
	Addr string `yaml:"addr" mapstructure:"addr"`
}

// UISettings controls the interactive search bar
type UISettings struct {
	MaxSuggestions int    `yaml:"max_suggestions" mapstructure:"max_suggestions"`
	Placeholder    string `yaml:"placeholder" mapstructure:"placeholder"`
}

// LogSettings controls diagnostic logging
type LogSettings struct {
	Level string `yaml:"level" mapstructure:"level"`
}

// VocabularySettings locates the known tags, categories and custom fields
type VocabularySettings struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		Search: SearchSettings{
			PageSize:      15,
			SortBy:        "",
			SortDirection: "",
		},
		Backend: BackendSettings{
			URL:            "http://localhost:8000",
			RetryMax:       3,
			TimeoutSeconds: 30,
		},
		Server: ServerSettings{
			Addr: ":8080",
		},
		UI: UISettings{
			MaxSuggestions: 6,
			Placeholder:    "Search... (tag:, cat:, cf:)",
		},
		Log: LogSettings{
			Level: "warn",
		},
		Vocabulary: VocabularySettings{
			Path: ".microcomp/vocabulary.yaml",
		},
	}
}
