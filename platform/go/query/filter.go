package query

import (
	"fmt"
	"strings"
)

// Match selects how a filter field compares its column with the criterion value.
type Match int

const (
	// MatchContains is a case-insensitive substring match for text columns.
	MatchContains Match = iota
	// MatchEquals is an exact equality match, used for boolean flags.
	MatchEquals
)

// FilterField declares one filterable field of a resource.
type FilterField struct {
	Key    string
	Column string
	Match  Match
}

// FilterSet is the allow-list of filterable fields for a resource.
type FilterSet []FilterField

// Criteria maps filter keys to optional values. Text fields take string or
// *string, boolean fields take bool or *bool. Keys not declared by the
// FilterSet and values of the wrong type are ignored.
type Criteria map[string]any

// Predicate is a conjunction of parameterised column conditions.
// Placeholders are numbered from $1 in the order of Args.
type Predicate struct {
	clauses []string
	args    []any
}

// SQL renders the predicate for a WHERE clause. An empty predicate matches every row.
func (p Predicate) SQL() string {
	if len(p.clauses) == 0 {
		return "TRUE"
	}
	return strings.Join(p.clauses, " AND ")
}

// Args returns a copy of the positional arguments referenced by SQL.
func (p Predicate) Args() []any {
	return append([]any(nil), p.args...)
}

// Empty reports whether the predicate imposes no constraint.
func (p Predicate) Empty() bool {
	return len(p.clauses) == 0
}

// Build turns criteria into a predicate. Fields are visited in declaration
// order so the generated SQL is deterministic.
func (s FilterSet) Build(criteria Criteria) Predicate {
	var pred Predicate

	for _, field := range s {
		raw, ok := criteria[field.Key]
		if !ok {
			continue
		}

		switch field.Match {
		case MatchContains:
			text, ok := textValue(raw)
			if !ok {
				continue
			}
			pred.args = append(pred.args, "%"+escapeLike(text)+"%")
			pred.clauses = append(pred.clauses, fmt.Sprintf("%s ILIKE $%d", field.Column, len(pred.args)))
		case MatchEquals:
			flag, ok := boolValue(raw)
			if !ok {
				continue
			}
			pred.args = append(pred.args, flag)
			pred.clauses = append(pred.clauses, fmt.Sprintf("%s = $%d", field.Column, len(pred.args)))
		}
	}

	return pred
}

func textValue(raw any) (string, bool) {
	var text string
	switch v := raw.(type) {
	case string:
		text = v
	case *string:
		if v == nil {
			return "", false
		}
		text = *v
	default:
		return "", false
	}

	return text, text != ""
}

func boolValue(raw any) (bool, bool) {
	switch v := raw.(type) {
	case bool:
		return v, true
	case *bool:
		if v == nil {
			return false, false
		}
		return *v, true
	default:
		return false, false
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes LIKE wildcards in user input literal. Backslash is the
// default ILIKE escape character in Postgres.
func escapeLike(value string) string {
	return likeEscaper.Replace(value)
}
