package tui

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/rs/zerolog"

	"github.com/pluqqy/microcomp/pkg/microcomp"
	"github.com/pluqqy/microcomp/pkg/models"
	"github.com/pluqqy/microcomp/pkg/query"
	"github.com/pluqqy/microcomp/pkg/suggest"
	"github.com/pluqqy/microcomp/pkg/vocab"
)

const statusDuration = 3 * time.Second

// writeClipboard is replaced in tests
var writeClipboard = clipboard.WriteAll

// Messages for communication between the app and its commands
type StatusMsg string

type clearStatusMsg struct{}

// App is the interactive search box. Typed segments are committed as filters
// on enter; the remaining text keeps driving suggestions.
type App struct {
	settings    models.Settings
	registry    *vocab.Registry
	suggester   *suggest.Suggester
	builder     *query.Builder
	log         zerolog.Logger
	filters     *models.FilterSet
	searchBar   *SearchBar
	suggestions SuggestionList
	parseErrors []*microcomp.ParseError
	width       int
	height      int
	statusMsg   string
}

// NewApp creates the search box model
func NewApp(settings models.Settings, registry *vocab.Registry, log zerolog.Logger) *App {
	a := &App{
		settings:  settings,
		registry:  registry,
		suggester: suggest.New(registry, settings.UI.MaxSuggestions),
		builder:   query.NewBuilder(log),
		log:       log,
		filters:   models.NewFilterSet(),
		searchBar: NewSearchBar(settings.UI.Placeholder),
	}
	a.searchBar.SetActive(true)
	return a
}

// Run starts the search box in the terminal and blocks until it exits
func Run(settings models.Settings, registry *vocab.Registry, log zerolog.Logger) error {
	p := tea.NewProgram(NewApp(settings, registry, log), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (a *App) Init() tea.Cmd {
	return a.searchBar.Focus()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.searchBar.SetWidth(msg.Width)
		return a, nil

	case StatusMsg:
		a.statusMsg = string(msg)
		return a, tea.Tick(statusDuration, func(time.Time) tea.Msg {
			return clearStatusMsg{}
		})

	case clearStatusMsg:
		a.statusMsg = ""
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	var cmd tea.Cmd
	a.searchBar, cmd = a.searchBar.Update(msg)
	return a, cmd
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return a, tea.Quit

	case "esc":
		if a.suggestions.Visible() {
			a.suggestions.Clear()
			return a, nil
		}
		return a, tea.Quit

	case "up":
		if a.suggestions.Visible() {
			a.suggestions.MoveUp()
		}
		return a, nil

	case "down":
		if a.suggestions.Visible() {
			a.suggestions.MoveDown()
		}
		return a, nil

	case "tab":
		a.applySuggestion()
		return a, nil

	case "enter":
		if a.suggestions.Visible() && a.suggestions.Navigated {
			a.applySuggestion()
			return a, nil
		}
		a.commit()
		return a, nil

	case "backspace":
		if a.searchBar.Value() == "" {
			if removed, ok := a.filters.RemoveLast(); ok {
				a.searchBar.SetValue(microcomp.Format(removed.Token))
				a.refreshSuggestions()
			}
			return a, nil
		}

	case "ctrl+l":
		a.filters.Clear()
		return a, func() tea.Msg { return StatusMsg("Filters cleared") }

	case "ctrl+y":
		return a, a.copyQuery()
	}

	var cmd tea.Cmd
	a.searchBar, cmd = a.searchBar.Update(msg)
	a.parseErrors = nil
	a.searchBar.SetError(false)
	a.refreshSuggestions()
	return a, cmd
}

// refreshSuggestions recomputes suggestions for the text in the search bar
func (a *App) refreshSuggestions() {
	items, err := a.suggester.Suggest(a.searchBar.Value())
	if err != nil {
		a.log.Warn().Err(err).Msg("failed to compute suggestions")
		a.suggestions.Clear()
		return
	}
	a.suggestions.Set(items)
}

// applySuggestion merges the selected suggestion into the search text
func (a *App) applySuggestion() {
	selected, ok := a.suggestions.Selected()
	if !ok {
		return
	}
	a.searchBar.SetValue(suggest.Apply(a.searchBar.Value(), selected))
	a.refreshSuggestions()
}

// commit parses the search text. Complete tokens become filters; segments that
// fail to parse stay in the search bar with their errors.
func (a *App) commit() {
	line := a.searchBar.Value()
	if strings.TrimSpace(line) == "" {
		return
	}

	segments := microcomp.SplitSegments(line)
	results := a.registry.Parser().ParseLine(line)

	var failed []string
	a.parseErrors = nil
	for i, result := range results {
		if result.OK() {
			a.filters.Add(result.Token)
			continue
		}
		failed = append(failed, segments[i])
		a.parseErrors = append(a.parseErrors, result.Error)
	}

	a.searchBar.SetValue(strings.Join(failed, " "))
	a.searchBar.SetError(len(a.parseErrors) > 0)
	a.suggestions.Clear()
}

// QueryParams builds the backend parameters for the committed filters
func (a *App) QueryParams() query.QueryParams {
	direction, err := query.ParseSortDirection(a.settings.Search.SortDirection)
	if err != nil {
		a.log.Warn().Err(err).Msg("ignoring configured sort direction")
	}
	return a.builder.Build(query.SearchInput{
		Tokens:        a.filters.Tokens(),
		PageNumber:    1,
		PageSize:      a.settings.Search.PageSize,
		SortBy:        a.settings.Search.SortBy,
		SortDirection: direction,
	})
}

func (a *App) copyQuery() tea.Cmd {
	params := a.QueryParams()
	return func() tea.Msg {
		data, err := json.MarshalIndent(params, "", "  ")
		if err != nil {
			return StatusMsg("Failed to encode query: " + err.Error())
		}
		if err := writeClipboard(string(data)); err != nil {
			return StatusMsg("Failed to copy to clipboard: " + err.Error())
		}
		return StatusMsg("Query copied to clipboard")
	}
}

// Filters returns the committed filters
func (a *App) Filters() []models.Filter {
	return a.filters.Filters()
}

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	contentWidth := max(a.width-4, 10)
	sections := []string{
		renderHeader(a.width, "microcomp", a.headerInfo()),
		a.searchBar.View(),
	}

	if a.suggestions.Visible() {
		sections = append(sections, a.suggestions.View(contentWidth))
	}

	if a.filters.Len() > 0 {
		pills := renderPills(a.filters.Filters(), a.registry.TagColor, contentWidth)
		sections = append(sections, ContentPaddingStyle.Render(pills))
	} else {
		sections = append(sections, ContentPaddingStyle.Render(DimStyle.Render("No filters")))
	}

	if len(a.parseErrors) > 0 {
		var msgs []string
		for _, e := range a.parseErrors {
			msgs = append(msgs, e.Error())
		}
		text := wordwrap.String(strings.Join(msgs, "; "), contentWidth)
		sections = append(sections, ContentPaddingStyle.Render(ErrorStyle.Render(text)))
	}

	help := "enter commit • tab complete • ↑/↓ select • backspace edit last filter • ctrl+y copy query • ctrl+l clear • esc quit"
	sections = append(sections, ContentPaddingStyle.Render(DimStyle.Render(wordwrap.String(help, contentWidth))))

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)

	if a.statusMsg != "" {
		content = lipgloss.JoinVertical(lipgloss.Left, content, StatusStyle.Render(a.statusMsg))
	}

	return content
}

func (a *App) headerInfo() string {
	switch n := a.filters.Len(); n {
	case 0:
		return ""
	case 1:
		return "1 filter"
	default:
		return fmt.Sprintf("%d filters", n)
	}
}

// String renders the committed filters without styling
func (a *App) String() string {
	return fmt.Sprintf("%d filters: %s", a.filters.Len(), renderPillsPlain(a.filters.Filters()))
}
