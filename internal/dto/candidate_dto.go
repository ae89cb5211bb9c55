package dto

import (
	"time"

	"talentscope/internal/model"
)

// CandidateDTO is the listing shape: the full record minus the raw text
// blob, which only the detail endpoint returns.
type CandidateDTO struct {
	ID              string             `json:"id"`
	Name            string             `json:"name"`
	Role            string             `json:"role"`
	Email           string             `json:"email"`
	Phone           string             `json:"phone"`
	Location        string             `json:"location"`
	Summary         string             `json:"summary"`
	Skills          []string           `json:"skills"`
	Companies       []string           `json:"companies"`
	Experience      []model.Experience `json:"experience"`
	Education       []model.Education  `json:"education"`
	Languages       []string           `json:"languages"`
	Certifications  []string           `json:"certifications"`
	LinkedIn        string             `json:"linkedin"`
	GitHub          string             `json:"github"`
	Portfolio       string             `json:"portfolio"`
	ExperienceYears int                `json:"experience_years"`
	Source          string             `json:"source"`
	ExtractionError bool               `json:"extraction_error"`
	CreatedAt       time.Time          `json:"created_at"`
	AddedAt         time.Time          `json:"added_at"`
}

func FromCandidate(c *model.Candidate) CandidateDTO {
	return CandidateDTO{
		ID:              c.ID,
		Name:            c.Name,
		Role:            c.Role,
		Email:           c.Email,
		Phone:           c.Phone,
		Location:        c.Location,
		Summary:         c.Summary,
		Skills:          c.Skills,
		Companies:       c.Companies,
		Experience:      c.Experience,
		Education:       c.Education,
		Languages:       c.Languages,
		Certifications:  c.Certifications,
		LinkedIn:        c.LinkedIn,
		GitHub:          c.GitHub,
		Portfolio:       c.Portfolio,
		ExperienceYears: c.ExperienceYears,
		Source:          c.Source,
		ExtractionError: c.ExtractionError,
		CreatedAt:       c.CreatedAt,
		AddedAt:         c.AddedAt,
	}
}

func FromCandidates(cands []*model.Candidate) []CandidateDTO {
	out := make([]CandidateDTO, 0, len(cands))
	for _, c := range cands {
		out = append(out, FromCandidate(c))
	}
	return out
}
