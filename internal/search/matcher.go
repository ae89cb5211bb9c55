package search

import (
	"strings"

	"talentscope/internal/model"
)

// Tokenize lower-cases a query and splits it on whitespace.
func Tokenize(query string) []string {
	return strings.Fields(strings.ToLower(query))
}

// Match returns the candidates any of whose searchable fields contain any
// query token, preserving the input order. It is a stable filter, not a
// ranked search. An empty query means no filter and returns the full list.
//
// Matching is substring-based on purpose: recall over precision for a
// small library, false positives accepted.
func Match(query string, candidates []*model.Candidate) []*model.Candidate {
	tokens := Tokenize(query)
	if len(tokens) == 0 {
		return candidates
	}

	matched := []*model.Candidate{}
	for _, c := range candidates {
		if matchesAny(c, tokens) {
			matched = append(matched, c)
		}
	}
	return matched
}

// matchesAny checks fields in priority order and short-circuits on the
// first hit for the candidate.
func matchesAny(c *model.Candidate, tokens []string) bool {
	for _, token := range tokens {
		if contains(c.RawContent, token) || contains(c.Summary, token) {
			return true
		}
		if contains(strings.Join(c.Skills, " "), token) {
			return true
		}
		if contains(c.Name, token) {
			return true
		}
		for _, edu := range c.Education {
			if contains(edu.School, token) || contains(edu.Degree, token) {
				return true
			}
		}
		if contains(strings.Join(c.Companies, " "), token) {
			return true
		}
		for _, exp := range c.Experience {
			if contains(exp.Company, token) || contains(exp.Position, token) || contains(exp.Description, token) {
				return true
			}
		}
		if contains(c.Role, token) {
			return true
		}
	}
	return false
}

func contains(field, token string) bool {
	return field != "" && strings.Contains(strings.ToLower(field), token)
}
