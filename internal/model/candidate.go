package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	SourceGenerated = "generated"
	SourceUploaded  = "uploaded"
)

type Experience struct {
	Position    string `json:"position"`
	Company     string `json:"company"`
	Duration    string `json:"duration"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

type Education struct {
	Degree  string `json:"degree"`
	School  string `json:"school"`
	Year    string `json:"year"`
	Details string `json:"details"`
}

// Candidate is the central entity of the CV library. Every sequence field
// is always non-nil and every scalar defaults to its zero value, so
// consumers never need presence checks.
type Candidate struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	Role            string       `json:"role"`
	Email           string       `json:"email"`
	Phone           string       `json:"phone"`
	Location        string       `json:"location"`
	Summary         string       `json:"summary"`
	Skills          []string     `json:"skills"`
	Companies       []string     `json:"companies"`
	Experience      []Experience `json:"experience"`
	Education       []Education  `json:"education"`
	Languages       []string     `json:"languages"`
	Certifications  []string     `json:"certifications"`
	LinkedIn        string       `json:"linkedin"`
	GitHub          string       `json:"github"`
	Portfolio       string       `json:"portfolio"`
	ExperienceYears int          `json:"experience_years"`
	Source          string       `json:"source"` // "generated" or "uploaded", immutable after creation
	RawContent      string       `json:"raw_content"`
	ExtractionError bool         `json:"extraction_error"`
	CreatedAt       time.Time    `json:"created_at"`
	AddedAt         time.Time    `json:"added_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

// NewCandidate returns a fully defaulted record so downstream matching
// logic stays branch-free.
func NewCandidate(source string) *Candidate {
	now := time.Now()
	return &Candidate{
		ID:             uuid.NewString(),
		Skills:         []string{},
		Companies:      []string{},
		Experience:     []Experience{},
		Education:      []Education{},
		Languages:      []string{},
		Certifications: []string{},
		Source:         source,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
