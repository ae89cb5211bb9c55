package usecase

import (
	"talentscope/internal/cv"
	"talentscope/internal/model"
	"talentscope/internal/repository"
	"talentscope/internal/util"

	"github.com/sirupsen/logrus"
)

// IngestUsecase covers the two ways candidates enter the library:
// uploaded documents and synthetic generation.
type IngestUsecase struct {
	repo *repository.CandidateRepository
	log  *logrus.Logger
}

func NewIngestUsecase(repo *repository.CandidateRepository, log *logrus.Logger) *IngestUsecase {
	return &IngestUsecase{repo: repo, log: log}
}

// ProcessUpload extracts text from a saved document, derives structured
// fields and inserts the result. Unreadable documents still produce a
// record, flagged with extraction_error, so they stay visible and
// deletable in the library.
func (uc *IngestUsecase) ProcessUpload(filename, savedPath string) *model.Candidate {
	text, err := util.ExtractPDFText(savedPath)
	if err != nil {
		uc.log.WithError(err).WithField("filename", filename).Warn("text extraction failed, storing flagged record")
		text = util.ErrorPlaceholder(filename, err)
	}

	candidate := cv.Extract(text, filename)
	uc.repo.Insert(candidate)

	uc.log.WithFields(logrus.Fields{
		"candidate_id":     candidate.ID,
		"name":             candidate.Name,
		"text_length":      len(text),
		"extraction_error": candidate.ExtractionError,
	}).Info("uploaded CV processed")

	return candidate
}

// GenerateBatch creates count synthetic profiles and inserts them.
func (uc *IngestUsecase) GenerateBatch(count int) []*model.Candidate {
	generated := make([]*model.Candidate, 0, count)
	for i := 0; i < count; i++ {
		c := cv.Generate()
		uc.repo.Insert(c)
		generated = append(generated, c)
	}
	uc.log.WithField("count", len(generated)).Info("generated candidate profiles")
	return generated
}
