package cv

import (
	"path/filepath"
	"regexp"
	"strings"

	"talentscope/internal/model"
	"talentscope/internal/util"
)

// Extract turns a blob of document text into a Candidate. It is total:
// any input, including the empty string and the extraction error
// placeholder, yields a fully defaulted record. Each field degrades
// independently, so a missing section never blocks the others.
func Extract(text, filename string) *model.Candidate {
	c := model.NewCandidate(model.SourceUploaded)
	c.RawContent = text

	if strings.Contains(text, util.ErrorPlaceholderPrefix) {
		c.Name = nameFromFilename(filename)
		c.Role = "Professional"
		c.Location = "Location not specified"
		c.Summary = "PDF processing failed. Please try uploading a different file."
		c.ExtractionError = true
		return c
	}

	c.Name = extractName(text, filename)
	c.Role = extractRole(text)
	c.Email = extractEmail(text)
	c.Phone = extractPhone(text)
	c.Location = extractLocation(text)
	c.LinkedIn = extractLinkedIn(text)
	c.GitHub = extractGitHub(text)
	c.Portfolio = extractPortfolio(text)
	c.Summary = extractSummary(text)
	c.Skills = extractSkills(text)
	c.Experience = extractExperience(text)
	c.Education = extractEducation(text)
	c.Languages = extractLanguages(text)
	c.Certifications = extractCertifications(text)

	for _, exp := range c.Experience {
		c.Companies = append(c.Companies, exp.Company)
	}
	return c
}

var (
	nameShapeRe  = regexp.MustCompile(`^[A-Z][a-z]+(?:\s+[A-Z][a-z]+){1,3}$`)
	headerLineRe = regexp.MustCompile(`^(?i:CV|RESUME|CURRICULUM|CONTACT)`)
	emailRe      = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	phoneRes     = []*regexp.Regexp{
		regexp.MustCompile(`\+\d{1,3}[\s.-]?\d{1,4}[\s.-]?\d{1,4}[\s.-]?\d{1,9}`),
		regexp.MustCompile(`\d{3}[\s.-]?\d{3}[\s.-]?\d{4}`),
	}
	roleRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:Senior|Lead|Principal)\s+(?:Software|Frontend|Backend|Full[- ]?Stack)\s+(?:Developer|Engineer)`),
		regexp.MustCompile(`(?i)(?:Software|Frontend|Backend|Full[- ]?Stack)\s+(?:Developer|Engineer)`),
		regexp.MustCompile(`(?i)Product\s+Manager`),
		regexp.MustCompile(`(?i)(?:UX|UI)\s+Designer`),
		regexp.MustCompile(`(?i)DevOps\s+Engineer`),
		regexp.MustCompile(`(?i)Data\s+(?:Scientist|Analyst)`),
	}
	locationRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:Location|Address):\s*([^\n]+)`),
		regexp.MustCompile(`(?i)Barcelona[^,\n]*`),
		regexp.MustCompile(`(?i)Madrid[^,\n]*`),
		regexp.MustCompile(`(?i)Spain[^,\n]*`),
	}
	linkedinRe  = regexp.MustCompile(`(?i)linkedin\.com/in/([\w-]+)`)
	githubRe    = regexp.MustCompile(`(?i)github\.com/([\w-]+)`)
	portfolioRe = regexp.MustCompile(`(?i)https?://[\w.-]+\.(?:dev|com|io|net)`)
	bulletRe    = regexp.MustCompile(`^[•*-]\s*`)
	tripleRe    = regexp.MustCompile(`^(.{1,80}?)\s*\|\s*(.{1,80}?)\s*\|\s*(.{1,80})$`)
	degreeRe    = regexp.MustCompile(`(?i)Master|Bachelor|Degree`)
	schoolRe    = regexp.MustCompile(`(?i)University|Universitat|Universidad|Institut`)
	parenTailRe = regexp.MustCompile(`\s*\([^)]*\)\s*$`)
	wsRe        = regexp.MustCompile(`\s+`)
)

// isSectionHeading reports whether a line looks like an all-caps CV
// section heading (SKILLS, PROFESSIONAL EXPERIENCE, ...).
func isSectionHeading(line string) bool {
	line = strings.TrimSpace(line)
	if len(line) < 2 || len(line) > 40 {
		return false
	}
	hasLetter := false
	for _, r := range line {
		switch {
		case r >= 'A' && r <= 'Z':
			hasLetter = true
		case r == ' ' || r == '&' || r == '/' || (r >= '0' && r <= '9'):
		default:
			return false
		}
	}
	return hasLetter
}

// section returns the lines between the first heading matching one of the
// given names and the next section heading. Empty result when absent.
func section(text string, names ...string) []string {
	lines := strings.Split(text, "\n")
	start := -1
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if !isSectionHeading(trimmed) {
			continue
		}
		for _, name := range names {
			if strings.Contains(trimmed, name) {
				start = i + 1
				break
			}
		}
		if start >= 0 {
			break
		}
	}
	if start < 0 {
		return nil
	}
	var body []string
	for _, line := range lines[start:] {
		trimmed := strings.TrimSpace(line)
		if isSectionHeading(trimmed) {
			break
		}
		body = append(body, trimmed)
	}
	return body
}

func extractName(text, filename string) string {
	seen := 0
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		seen++
		if seen > 3 {
			break
		}
		if headerLineRe.MatchString(line) {
			continue
		}
		if strings.Contains(line, "@") || strings.Contains(line, "http") {
			continue
		}
		if len(line) < 50 && nameShapeRe.MatchString(line) {
			return line
		}
	}
	return nameFromFilename(filename)
}

func nameFromFilename(filename string) string {
	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	base = strings.NewReplacer("_", " ", "-", " ").Replace(base)
	words := strings.Fields(base)
	if len(words) == 0 {
		return "Unknown Candidate"
	}
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}

func extractRole(text string) string {
	for _, re := range roleRes {
		if m := re.FindString(text); m != "" {
			return m
		}
	}
	return "Software Professional"
}

func extractEmail(text string) string {
	return emailRe.FindString(text)
}

func extractPhone(text string) string {
	for _, re := range phoneRes {
		if m := re.FindString(text); m != "" {
			return m
		}
	}
	return ""
}

func extractLocation(text string) string {
	for _, re := range locationRes {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if len(m) > 1 && m[1] != "" {
			return strings.TrimSpace(m[1])
		}
		return strings.TrimSpace(m[0])
	}
	return ""
}

func extractLinkedIn(text string) string {
	if m := linkedinRe.FindStringSubmatch(text); m != nil {
		return "linkedin.com/in/" + m[1]
	}
	return ""
}

func extractGitHub(text string) string {
	if m := githubRe.FindStringSubmatch(text); m != nil {
		return "github.com/" + m[1]
	}
	return ""
}

func extractPortfolio(text string) string {
	return portfolioRe.FindString(text)
}

func extractSummary(text string) string {
	body := section(text, "SUMMARY", "PROFILE")
	summary := wsRe.ReplaceAllString(strings.TrimSpace(strings.Join(body, " ")), " ")
	if len(summary) < 50 {
		return "Professional summary not available."
	}
	if len(summary) > 500 {
		summary = summary[:500]
	}
	return summary
}

func extractSkills(text string) []string {
	skills := []string{}
	seen := make(map[string]bool)
	for _, line := range section(text, "SKILLS") {
		if !bulletRe.MatchString(line) {
			continue
		}
		line = bulletRe.ReplaceAllString(line, "")
		for _, part := range strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || r == ';' || r == ':'
		}) {
			skill := strings.TrimSpace(part)
			if len(skill) < 2 || len(skill) > 29 || seen[skill] {
				continue
			}
			seen[skill] = true
			skills = append(skills, skill)
			if len(skills) == 15 {
				return skills
			}
		}
	}
	return skills
}

func extractExperience(text string) []model.Experience {
	entries := []model.Experience{}
	body := section(text, "EXPERIENCE")

	var current *model.Experience
	var descLines []string
	flush := func() {
		if current == nil {
			return
		}
		current.Description = strings.Join(descLines, ". ")
		if current.Description == "" {
			current.Description = "Professional responsibilities and achievements."
		}
		entries = append(entries, *current)
		current = nil
		descLines = nil
	}

	for _, line := range body {
		if m := tripleRe.FindStringSubmatch(line); m != nil {
			flush()
			if len(entries) == 5 {
				return entries
			}
			current = &model.Experience{
				Position: strings.TrimSpace(m[1]),
				Company:  strings.TrimSpace(m[2]),
				Duration: strings.TrimSpace(m[3]),
				Location: "Barcelona, Spain",
			}
			continue
		}
		if current != nil && bulletRe.MatchString(line) && len(descLines) < 4 {
			descLines = append(descLines, bulletRe.ReplaceAllString(line, ""))
		}
	}
	flush()
	if len(entries) > 5 {
		entries = entries[:5]
	}
	return entries
}

func extractEducation(text string) []model.Education {
	entries := []model.Education{}
	var current *model.Education
	for _, line := range section(text, "EDUCATION") {
		if line == "" {
			continue
		}
		switch {
		case degreeRe.MatchString(line) && !schoolRe.MatchString(line):
			if current != nil {
				entries = append(entries, *current)
			}
			current = &model.Education{Degree: line}
		case current != nil && schoolRe.MatchString(line):
			parts := strings.SplitN(line, "|", 2)
			current.School = strings.TrimSpace(parts[0])
			if len(parts) > 1 {
				current.Year = strings.TrimSpace(parts[1])
			}
		case current != nil && bulletRe.MatchString(line):
			current.Details = bulletRe.ReplaceAllString(line, "")
		}
	}
	if current != nil {
		entries = append(entries, *current)
	}
	return entries
}

func bulletItems(body []string) []string {
	items := []string{}
	for _, line := range body {
		if !bulletRe.MatchString(line) {
			continue
		}
		item := parenTailRe.ReplaceAllString(bulletRe.ReplaceAllString(line, ""), "")
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func extractLanguages(text string) []string {
	body := section(text, "LANGUAGES")
	if body == nil {
		return []string{"Spanish", "English"}
	}
	return bulletItems(body)
}

func extractCertifications(text string) []string {
	return bulletItems(section(text, "CERTIFICATIONS"))
}
