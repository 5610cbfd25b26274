package server

import (
	"net/http"

	"github.com/pluqqy/microcomp/pkg/microcomp"
	"github.com/pluqqy/microcomp/pkg/models"
	"github.com/pluqqy/microcomp/pkg/query"
	"github.com/pluqqy/microcomp/pkg/suggest"
)

type splitRequest struct {
	Text      string `json:"text"`
	Separator string `json:"separator"`
}

type splitResponse struct {
	Parts []string `json:"parts"`
}

type parseRequest struct {
	Token string `json:"token"`
	Line  string `json:"line"`
}

type parseResponse struct {
	Results models.ResultViews `json:"results"`
}

type autocompleteRequest struct {
	Text       string `json:"text"`
	Suggestion string `json:"suggestion"`
}

type autocompleteResponse struct {
	Text  string `json:"text"`
	Index int    `json:"index"`
}

type valuesRequest struct {
	Tail string `json:"tail"`
}

type valuesResponse struct {
	Filter  string   `json:"filter"`
	Exclude []string `json:"exclude"`
}

type queryRequest struct {
	Line          string `json:"line"`
	PageNumber    int    `json:"page_number"`
	PageSize      int    `json:"page_size"`
	SortBy        string `json:"sort_by"`
	SortDirection string `json:"sort_direction"`
}

type queryResponse struct {
	Params query.QueryParams       `json:"params"`
	Errors []*microcomp.ParseError `json:"errors"`
}

type suggestResponse struct {
	Suggestions []suggest.Suggestion `json:"suggestions"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleSplit(w http.ResponseWriter, r *http.Request) {
	var req splitRequest
	if !decode(w, r, &req) {
		return
	}

	switch req.Separator {
	case "", "colon", ":":
		writeJSON(w, http.StatusOK, splitResponse{Parts: microcomp.SplitByColon(req.Text)})
	case "comma", ",":
		writeJSON(w, http.StatusOK, splitResponse{Parts: microcomp.SplitByComma(req.Text)})
	case "segment", "line":
		writeJSON(w, http.StatusOK, splitResponse{Parts: microcomp.SplitSegments(req.Text)})
	default:
		writeError(w, http.StatusBadRequest, "unknown separator: "+req.Separator)
	}
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	var req parseRequest
	if !decode(w, r, &req) {
		return
	}

	parser := s.registry.Parser()
	resp := parseResponse{Results: models.ResultViews{}}

	if req.Line != "" {
		segments := microcomp.SplitSegments(req.Line)
		for i, result := range parser.ParseLine(req.Line) {
			resp.Results = append(resp.Results, models.NewResultView(segments[i], result))
		}
	} else {
		resp.Results = append(resp.Results, models.NewResultView(req.Token, parser.Parse(req.Token)))
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAutocomplete(w http.ResponseWriter, r *http.Request) {
	var req autocompleteRequest
	if !decode(w, r, &req) {
		return
	}

	writeJSON(w, http.StatusOK, autocompleteResponse{
		Text:  microcomp.AutocompleteText(req.Text, req.Suggestion),
		Index: microcomp.FindLongestMatchingIndex(req.Text, req.Suggestion),
	})
}

func (s *Server) handleValues(w http.ResponseWriter, r *http.Request) {
	var req valuesRequest
	if !decode(w, r, &req) {
		return
	}

	writeJSON(w, http.StatusOK, valuesResponse{
		Filter:  microcomp.GetTokenValueItemsFilter(req.Tail),
		Exclude: microcomp.GetTokenValueItemsToExclude(req.Tail),
	})
}

func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	var req queryRequest
	if !decode(w, r, &req) {
		return
	}

	direction, err := query.ParseSortDirection(req.SortDirection)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	in := query.SearchInput{
		PageNumber:    req.PageNumber,
		PageSize:      req.PageSize,
		SortBy:        req.SortBy,
		SortDirection: direction,
	}
	if in.PageNumber < 1 {
		in.PageNumber = 1
	}
	if in.PageSize < 1 {
		in.PageSize = s.settings.Search.PageSize
	}

	resp := queryResponse{Errors: []*microcomp.ParseError{}}
	for _, result := range s.registry.Parser().ParseLine(req.Line) {
		if result.OK() {
			in.Tokens = append(in.Tokens, result.Token)
			continue
		}
		resp.Errors = append(resp.Errors, result.Error)
	}
	resp.Params = s.builder.Build(in)

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	suggestions, err := s.suggester.Suggest(r.URL.Query().Get("q"))
	if err != nil {
		s.log.Error().Err(err).Msg("suggest failed")
		writeError(w, http.StatusInternalServerError, "failed to compute suggestions")
		return
	}
	if suggestions == nil {
		suggestions = []suggest.Suggestion{}
	}

	writeJSON(w, http.StatusOK, suggestResponse{Suggestions: suggestions})
}
