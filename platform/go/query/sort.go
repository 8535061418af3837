package query

import (
	"fmt"
	"strings"
)

// Direction is a sort direction.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// ParseDirection returns Desc only for the exact token "desc".
func ParseDirection(raw string) Direction {
	if raw == string(Desc) {
		return Desc
	}
	return Asc
}

// SQL returns the ORDER BY keyword for the direction.
func (d Direction) SQL() string {
	if d == Desc {
		return "DESC"
	}
	return "ASC"
}

// Sort is the caller's requested ordering: keys in priority order plus one direction.
type Sort struct {
	Keys      []string
	Direction Direction
}

// ParseSort splits every raw value on "," and "&", trims the pieces and drops
// blanks. Keys are not checked against an allow-list here; see SortSet.Build.
func ParseSort(rawKeys []string, rawDirection string) Sort {
	keys := make([]string, 0, len(rawKeys))
	for _, raw := range rawKeys {
		for _, piece := range strings.FieldsFunc(raw, isSortSeparator) {
			if key := strings.TrimSpace(piece); key != "" {
				keys = append(keys, key)
			}
		}
	}

	return Sort{Keys: keys, Direction: ParseDirection(rawDirection)}
}

func isSortSeparator(r rune) bool {
	return r == ',' || r == '&'
}

// SortField maps a public sort key to a column.
type SortField struct {
	Key    string
	Column string
}

// SortSet is the sort allow-list of a resource together with its default
// ordering and the unique column used to break ties.
type SortSet struct {
	Fields   []SortField
	Default  []string
	TieBreak string
}

// Term is one ORDER BY element.
type Term struct {
	Column    string
	Direction Direction
}

func (t Term) String() string {
	return fmt.Sprintf("%s %s", t.Column, t.Direction.SQL())
}

// Build resolves the requested sort into ORDER BY terms. Allowed keys keep the
// caller's order and unknown keys are dropped. The default columns are used
// only when no requested key survives. The tie-break column always comes last.
func (s SortSet) Build(sort Sort) []Term {
	dir := sort.Direction
	if dir != Desc {
		dir = Asc
	}

	terms := make([]Term, 0, len(sort.Keys)+len(s.Default)+1)
	seen := make(map[string]struct{}, len(sort.Keys)+1)

	add := func(column string) {
		if _, dup := seen[column]; dup {
			return
		}
		seen[column] = struct{}{}
		terms = append(terms, Term{Column: column, Direction: dir})
	}

	for _, key := range sort.Keys {
		if column, ok := s.column(key); ok {
			add(column)
		}
	}

	if len(terms) == 0 {
		for _, column := range s.Default {
			add(column)
		}
	}

	if s.TieBreak != "" {
		add(s.TieBreak)
	}

	return terms
}

func (s SortSet) column(key string) (string, bool) {
	for _, field := range s.Fields {
		if field.Key == key {
			return field.Column, true
		}
	}
	return "", false
}

// OrderBy renders terms as a comma separated list suitable for ORDER BY.
func OrderBy(terms []Term) string {
	parts := make([]string, 0, len(terms))
	for _, term := range terms {
		parts = append(parts, term.String())
	}
	return strings.Join(parts, ", ")
}
