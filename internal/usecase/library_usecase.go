package usecase

import (
	"talentscope/internal/dto"
	"talentscope/internal/model"
	"talentscope/internal/repository"
	"talentscope/internal/response"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type LibraryUsecase struct {
	repo *repository.CandidateRepository
	log  *logrus.Logger
}

func NewLibraryUsecase(repo *repository.CandidateRepository, log *logrus.Logger) *LibraryUsecase {
	return &LibraryUsecase{repo: repo, log: log}
}

// List returns a page of the library, most recently added first.
func (uc *LibraryUsecase) List(page, pageSize int) ([]dto.CandidateDTO, *response.Pagination) {
	all := uc.repo.List()
	offset, limit, pagination := response.Paginate(page, pageSize, len(all))
	return dto.FromCandidates(all[offset : offset+limit]), pagination
}

func (uc *LibraryUsecase) Get(id string) (*model.Candidate, bool) {
	return uc.repo.Get(id)
}

func (uc *LibraryUsecase) Delete(id string) bool {
	deleted := uc.repo.Remove(id)
	if deleted {
		uc.log.WithField("candidate_id", id).Info("candidate deleted from library")
	}
	return deleted
}

// Add normalizes a caller-supplied candidate and upserts it. Sequence
// fields are never left nil so the matcher stays branch-free.
func (uc *LibraryUsecase) Add(c *model.Candidate) *model.Candidate {
	defaults := model.NewCandidate(c.Source)
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.Source == "" {
		c.Source = model.SourceGenerated
	}
	if c.Skills == nil {
		c.Skills = defaults.Skills
	}
	if c.Companies == nil {
		c.Companies = defaults.Companies
	}
	if c.Experience == nil {
		c.Experience = defaults.Experience
	}
	if c.Education == nil {
		c.Education = defaults.Education
	}
	if c.Languages == nil {
		c.Languages = defaults.Languages
	}
	if c.Certifications == nil {
		c.Certifications = defaults.Certifications
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = defaults.CreatedAt
	}
	c.UpdatedAt = defaults.UpdatedAt

	uc.repo.Insert(c)
	uc.log.WithFields(logrus.Fields{"candidate_id": c.ID, "name": c.Name}).Info("candidate added to library")
	return c
}

// Counts feeds the status surface.
func (uc *LibraryUsecase) Counts() (int, map[string]int) {
	return uc.repo.Count(), uc.repo.CountBySource()
}
