package repository

import (
	"sync"
	"time"

	"talentscope/internal/model"
)

// CandidateRepository is the authoritative in-memory candidate store for
// the lifetime of the process. Fiber runs handlers concurrently, so every
// operation takes the lock.
type CandidateRepository struct {
	mu    sync.RWMutex
	byID  map[string]*model.Candidate
	order []string // insertion order of IDs, oldest first
}

func NewCandidateRepository() *CandidateRepository {
	return &CandidateRepository{
		byID: make(map[string]*model.Candidate),
	}
}

// Insert adds a candidate, or replaces it when the ID already exists
// (last write wins, ordering position kept).
func (r *CandidateRepository) Insert(c *model.Candidate) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c.AddedAt.IsZero() {
		c.AddedAt = time.Now()
	}
	if _, exists := r.byID[c.ID]; !exists {
		r.order = append(r.order, c.ID)
	}
	r.byID[c.ID] = c
}

func (r *CandidateRepository) Get(id string) (*model.Candidate, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byID[id]
	return c, ok
}

// List returns all candidates, most recently added first, so fresh
// uploads and generated profiles surface at the top of listings.
func (r *CandidateRepository) List() []*model.Candidate {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.Candidate, 0, len(r.order))
	for i := len(r.order) - 1; i >= 0; i-- {
		out = append(out, r.byID[r.order[i]])
	}
	return out
}

// Remove deletes by ID and reports whether a record existed.
func (r *CandidateRepository) Remove(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return false
	}
	delete(r.byID, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

// Patch merges the non-zero scalar fields and non-nil sequence fields of
// upd into the stored record. Source stays immutable.
func (r *CandidateRepository) Patch(id string, upd *model.Candidate) (*model.Candidate, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.byID[id]
	if !ok {
		return nil, false
	}
	if upd.Name != "" {
		c.Name = upd.Name
	}
	if upd.Role != "" {
		c.Role = upd.Role
	}
	if upd.Email != "" {
		c.Email = upd.Email
	}
	if upd.Phone != "" {
		c.Phone = upd.Phone
	}
	if upd.Location != "" {
		c.Location = upd.Location
	}
	if upd.Summary != "" {
		c.Summary = upd.Summary
	}
	if upd.Skills != nil {
		c.Skills = upd.Skills
	}
	if upd.Companies != nil {
		c.Companies = upd.Companies
	}
	if upd.Experience != nil {
		c.Experience = upd.Experience
	}
	if upd.Education != nil {
		c.Education = upd.Education
	}
	if upd.Languages != nil {
		c.Languages = upd.Languages
	}
	if upd.Certifications != nil {
		c.Certifications = upd.Certifications
	}
	if upd.ExperienceYears != 0 {
		c.ExperienceYears = upd.ExperienceYears
	}
	c.UpdatedAt = time.Now()
	return c, true
}

func (r *CandidateRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.byID)
}

// CountBySource returns per-provenance totals for the status surface.
func (r *CandidateRepository) CountBySource() map[string]int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[string]int)
	for _, c := range r.byID {
		counts[c.Source]++
	}
	return counts
}
