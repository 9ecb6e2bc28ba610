// Package symbols provides fuzzy company-name search over a CSV-loaded table
// of NSE listings. The table is read once at startup and never reloaded.
package symbols

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

const (
	scoreThreshold = 70
	maxResults     = 10
)

type Match struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

type Index struct {
	names   []string
	symbols map[string]string
}

// Load reads a headerless CSV whose first two columns are (symbol, name).
// Both columns are trimmed and upper-cased for matching.
func Load(path string) (*Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open symbol table: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse symbol table: %w", err)
	}

	ix := &Index{symbols: make(map[string]string, len(records))}
	for _, rec := range records {
		if len(rec) < 2 {
			continue
		}
		symbol := strings.ToUpper(strings.TrimSpace(rec[0]))
		name := strings.ToUpper(strings.TrimSpace(rec[1]))
		if symbol == "" || name == "" {
			continue
		}
		if _, seen := ix.symbols[name]; !seen {
			ix.names = append(ix.names, name)
		}
		ix.symbols[name] = symbol
	}

	if len(ix.names) == 0 {
		return nil, fmt.Errorf("symbol table %s is empty", path)
	}

	return ix, nil
}

// Len returns the number of distinct company names loaded.
func (ix *Index) Len() int {
	return len(ix.names)
}

// Search ranks company names against the query by partial ratio and returns
// matches scoring at least scoreThreshold, best first, capped at maxResults.
func (ix *Index) Search(query string) []Match {
	query = strings.ToUpper(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	type scored struct {
		name  string
		score int
	}

	candidates := make([]scored, 0, len(ix.names))
	for _, name := range ix.names {
		if score := fuzzy.PartialRatio(query, name); score >= scoreThreshold {
			candidates = append(candidates, scored{name: name, score: score})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	if len(candidates) > maxResults {
		candidates = candidates[:maxResults]
	}

	matches := make([]Match, len(candidates))
	for i, c := range candidates {
		matches[i] = Match{Name: c.name, Symbol: ix.symbols[c.name]}
	}

	return matches
}
