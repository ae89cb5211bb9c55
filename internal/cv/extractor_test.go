package cv

import (
	"errors"
	"strings"
	"testing"

	"talentscope/internal/util"
)

const sampleCV = `Ana Garcia
Senior Backend Developer
ana.garcia@example.com | +34 612 345 678
Barcelona, Spain
linkedin.com/in/ana-garcia | github.com/anagarcia

PROFESSIONAL SUMMARY
Backend engineer with eight years of experience building payment and logistics platforms across Barcelona startups.

SKILLS
• Python, Django, PostgreSQL
• Docker; Kubernetes

PROFESSIONAL EXPERIENCE
Senior Backend Developer | Glovo | 2021 - Present
• Led the payments team
• Scaled the order pipeline

Backend Developer | Typeform | 2018 - 2021

EDUCATION
Master in Computer Science
Universitat Politecnica de Catalunya | 2018
• Thesis on distributed task queues

LANGUAGES
• Spanish (Native)
• English (Fluent)

CERTIFICATIONS
• AWS Certified Developer
`

func TestExtractFullDocument(t *testing.T) {
	c := Extract(sampleCV, "ana_garcia.pdf")

	if c.Name != "Ana Garcia" {
		t.Errorf("Name = %q, want Ana Garcia", c.Name)
	}
	if c.Role != "Senior Backend Developer" {
		t.Errorf("Role = %q", c.Role)
	}
	if c.Email != "ana.garcia@example.com" {
		t.Errorf("Email = %q", c.Email)
	}
	if c.Phone != "+34 612 345 678" {
		t.Errorf("Phone = %q", c.Phone)
	}
	if c.Location != "Barcelona" {
		t.Errorf("Location = %q", c.Location)
	}
	if c.LinkedIn != "linkedin.com/in/ana-garcia" {
		t.Errorf("LinkedIn = %q", c.LinkedIn)
	}
	if c.GitHub != "github.com/anagarcia" {
		t.Errorf("GitHub = %q", c.GitHub)
	}
	if !strings.HasPrefix(c.Summary, "Backend engineer with eight years") {
		t.Errorf("Summary = %q", c.Summary)
	}

	wantSkills := []string{"Python", "Django", "PostgreSQL", "Docker", "Kubernetes"}
	if len(c.Skills) != len(wantSkills) {
		t.Fatalf("Skills = %v, want %v", c.Skills, wantSkills)
	}
	for i, s := range wantSkills {
		if c.Skills[i] != s {
			t.Errorf("Skills[%d] = %q, want %q", i, c.Skills[i], s)
		}
	}

	if len(c.Experience) != 2 {
		t.Fatalf("Experience has %d entries, want 2: %+v", len(c.Experience), c.Experience)
	}
	first := c.Experience[0]
	if first.Position != "Senior Backend Developer" || first.Company != "Glovo" || first.Duration != "2021 - Present" {
		t.Errorf("Experience[0] = %+v", first)
	}
	if first.Description != "Led the payments team. Scaled the order pipeline" {
		t.Errorf("Experience[0].Description = %q", first.Description)
	}
	if c.Experience[1].Description != "Professional responsibilities and achievements." {
		t.Errorf("Experience[1].Description = %q", c.Experience[1].Description)
	}
	if len(c.Companies) != 2 || c.Companies[0] != "Glovo" || c.Companies[1] != "Typeform" {
		t.Errorf("Companies = %v", c.Companies)
	}

	if len(c.Education) != 1 {
		t.Fatalf("Education has %d entries, want 1: %+v", len(c.Education), c.Education)
	}
	edu := c.Education[0]
	if edu.Degree != "Master in Computer Science" {
		t.Errorf("Education[0].Degree = %q", edu.Degree)
	}
	if edu.School != "Universitat Politecnica de Catalunya" || edu.Year != "2018" {
		t.Errorf("Education[0] school/year = %q / %q", edu.School, edu.Year)
	}
	if edu.Details != "Thesis on distributed task queues" {
		t.Errorf("Education[0].Details = %q", edu.Details)
	}

	if len(c.Languages) != 2 || c.Languages[0] != "Spanish" || c.Languages[1] != "English" {
		t.Errorf("Languages = %v", c.Languages)
	}
	if len(c.Certifications) != 1 || c.Certifications[0] != "AWS Certified Developer" {
		t.Errorf("Certifications = %v", c.Certifications)
	}
	if c.ExtractionError {
		t.Error("ExtractionError set on a clean document")
	}
	if c.RawContent != sampleCV {
		t.Error("RawContent not preserved")
	}
}

func TestExtractEmptyText(t *testing.T) {
	c := Extract("", "john_smith.pdf")

	if c.Name != "John Smith" {
		t.Errorf("Name = %q, want John Smith from filename", c.Name)
	}
	if c.Role != "Software Professional" {
		t.Errorf("Role = %q", c.Role)
	}
	if c.Summary != "Professional summary not available." {
		t.Errorf("Summary = %q", c.Summary)
	}
	if len(c.Skills) != 0 {
		t.Errorf("Skills = %v, want empty", c.Skills)
	}
	if len(c.Languages) != 2 {
		t.Errorf("Languages = %v, want defaults", c.Languages)
	}
	if c.ExtractionError {
		t.Error("empty text is not an extraction error")
	}
}

func TestExtractErrorPlaceholder(t *testing.T) {
	text := util.ErrorPlaceholder("broken-file.pdf", errors.New("damaged xref table"))
	c := Extract(text, "broken-file.pdf")

	if !c.ExtractionError {
		t.Fatal("ExtractionError not set")
	}
	if c.Name != "Broken File" {
		t.Errorf("Name = %q, want Broken File", c.Name)
	}
	if c.Role != "Professional" {
		t.Errorf("Role = %q", c.Role)
	}
	if !strings.Contains(c.Summary, "failed") {
		t.Errorf("Summary = %q", c.Summary)
	}
}

func TestExtractMissingSkillsSection(t *testing.T) {
	c := Extract("Jane Doe\nSoftware Engineer\n\nEXPERIENCE\nEngineer | Acme | 2020 - 2022\n", "jane.pdf")
	if len(c.Skills) != 0 {
		t.Errorf("Skills = %v, want empty without a SKILLS section", c.Skills)
	}
	if len(c.Experience) != 1 || c.Experience[0].Company != "Acme" {
		t.Errorf("Experience = %+v", c.Experience)
	}
}

func TestNameFromFilename(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"maria-lopez.pdf", "Maria Lopez"},
		{"CV_David_LEE.pdf", "Cv David Lee"},
		{".pdf", "Unknown Candidate"},
	}
	for _, tt := range tests {
		if got := nameFromFilename(tt.filename); got != tt.want {
			t.Errorf("nameFromFilename(%q) = %q, want %q", tt.filename, got, tt.want)
		}
	}
}
