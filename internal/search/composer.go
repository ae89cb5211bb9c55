package search

import (
	"fmt"
	"strings"

	"talentscope/internal/model"
)

// Composed is the locally generated answer used when no language model is
// reachable, plus the follow-up suggestions for the chat UI chips.
type Composed struct {
	Text        string
	Suggestions []string
}

// Intent keyword sets, checked in order; first hit picks the framing.
var (
	backendKeywords   = keywordSet("python", "backend", "django", "flask")
	frontendKeywords  = keywordSet("react", "javascript", "frontend", "js")
	seniorityKeywords = keywordSet("senior", "lead", "manager", "experience")
	educationKeywords = keywordSet("master", "phd", "degree")
)

var (
	backendSuggestions = []string{
		"Who has Django experience?",
		"Show me senior Python developers",
		"Which backend candidates know AWS?",
		"Who has worked with microservices?",
	}
	frontendSuggestions = []string{
		"Who knows React?",
		"Show me TypeScript developers",
		"Which candidates have UX skills?",
	}
	senioritySuggestions = []string{
		"Who has more than 5 years of experience?",
		"Show me tech leads",
		"Which candidates are engineering managers?",
	}
	educationSuggestions = []string{
		"Who has a PhD?",
		"Which candidates have a Master's degree?",
		"Who graduated from UPC?",
	}
	genericSuggestions = []string{
		"Who has Python experience?",
		"Which candidates have a Master's degree?",
		"Show me candidates with more than 5 years of experience",
		"Who worked at Glovo?",
	}
)

// Compose turns the matched set and the original query into renderable
// text. It never fails: zero matches and an empty library both produce a
// usable reply.
func Compose(query string, matched []*model.Candidate, total int) Composed {
	tokens := Tokenize(query)

	switch {
	case intersects(tokens, backendKeywords):
		return composeBackend(matched, total)
	case intersects(tokens, frontendKeywords):
		return composeFrontend(matched, total)
	case intersects(tokens, seniorityKeywords):
		return composeSeniority(matched, total)
	case intersects(tokens, educationKeywords):
		return composeEducation(matched, total)
	default:
		return composeGeneric(matched, total)
	}
}

func composeBackend(matched []*model.Candidate, total int) Composed {
	if len(matched) == 0 {
		return noMatch(backendSuggestions)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "I found %d candidate(s) with backend/Python experience out of %d in the library:\n\n", len(matched), total)
	for _, c := range headCandidates(matched, 3) {
		fmt.Fprintf(&b, "• %s — %s (%s)\n", c.Name, orDefault(c.Role, "Professional"), highlight(c.Companies, "no listed employers"))
	}
	return Composed{Text: b.String(), Suggestions: backendSuggestions}
}

func composeFrontend(matched []*model.Candidate, total int) Composed {
	if len(matched) == 0 {
		return noMatch(frontendSuggestions)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "I found %d frontend candidate(s) out of %d in the library:\n\n", len(matched), total)
	for _, c := range headCandidates(matched, 3) {
		fmt.Fprintf(&b, "• %s — %s, skills: %s\n", c.Name, orDefault(c.Role, "Professional"), highlight(c.Skills, "not listed"))
	}
	return Composed{Text: b.String(), Suggestions: frontendSuggestions}
}

func composeSeniority(matched []*model.Candidate, total int) Composed {
	senior := []*model.Candidate{}
	for _, c := range matched {
		role := strings.ToLower(c.Role)
		if strings.Contains(role, "senior") || strings.Contains(role, "lead") || c.ExperienceYears >= 5 {
			senior = append(senior, c)
		}
	}
	if len(senior) == 0 {
		return noMatch(senioritySuggestions)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "I found %d senior candidate(s) out of %d in the library:\n\n", len(senior), total)
	for _, c := range headCandidates(senior, 3) {
		years := "experience not specified"
		if c.ExperienceYears > 0 {
			years = fmt.Sprintf("%d years of experience", c.ExperienceYears)
		}
		fmt.Fprintf(&b, "• %s — %s, %s (%s)\n", c.Name, orDefault(c.Role, "Professional"), years, sourceLabel(c.Source))
	}
	return Composed{Text: b.String(), Suggestions: senioritySuggestions}
}

func composeEducation(matched []*model.Candidate, total int) Composed {
	educated := []*model.Candidate{}
	for _, c := range matched {
		if hasAdvancedDegree(c) {
			educated = append(educated, c)
		}
	}
	if len(educated) == 0 {
		return noMatch(educationSuggestions)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "I found %d candidate(s) with advanced degrees out of %d in the library:\n\n", len(educated), total)
	for _, c := range headCandidates(educated, 3) {
		degree := "Advanced degree"
		if len(c.Education) > 0 {
			degree = orDefault(c.Education[0].Degree, c.Education[0].School)
		}
		fmt.Fprintf(&b, "• %s — %s (%s)\n", c.Name, degree, sourceLabel(c.Source))
	}
	return Composed{Text: b.String(), Suggestions: educationSuggestions}
}

func composeGeneric(matched []*model.Candidate, total int) Composed {
	if len(matched) == 0 {
		return noMatch(genericSuggestions)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "I found %d relevant candidate(s) out of %d in the library:\n\n", len(matched), total)
	for _, c := range headCandidates(matched, 3) {
		fmt.Fprintf(&b, "• %s — %s, %s, skills: %s\n",
			c.Name, orDefault(c.Role, "Professional"), orDefault(c.Location, "location not specified"), highlight(c.Skills, "not listed"))
	}
	return Composed{Text: b.String(), Suggestions: genericSuggestions}
}

func noMatch(suggestions []string) Composed {
	return Composed{
		Text:        "I don't have information about that in the current CV library. Try asking about skills like Python or React, or companies like Glovo or Typeform.",
		Suggestions: suggestions,
	}
}

func hasAdvancedDegree(c *model.Candidate) bool {
	for _, edu := range c.Education {
		degree := strings.ToLower(edu.Degree)
		if strings.Contains(degree, "master") || strings.Contains(degree, "phd") || strings.Contains(degree, "mba") {
			return true
		}
	}
	return false
}

func sourceLabel(source string) string {
	switch source {
	case model.SourceUploaded:
		return "uploaded CV"
	case model.SourceGenerated:
		return "generated profile"
	default:
		return "library entry"
	}
}

func headCandidates(cands []*model.Candidate, n int) []*model.Candidate {
	if len(cands) < n {
		return cands
	}
	return cands[:n]
}

func highlight(items []string, fallback string) string {
	if len(items) == 0 {
		return fallback
	}
	if len(items) > 3 {
		items = items[:3]
	}
	return strings.Join(items, ", ")
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func keywordSet(words ...string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}

func intersects(tokens []string, set map[string]bool) bool {
	for _, t := range tokens {
		if set[t] {
			return true
		}
	}
	return false
}
