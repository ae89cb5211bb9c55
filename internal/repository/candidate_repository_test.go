package repository

import (
	"testing"

	"talentscope/internal/model"
)

func newCandidate(id, name string) *model.Candidate {
	c := model.NewCandidate(model.SourceGenerated)
	c.ID = id
	c.Name = name
	return c
}

func TestInsertAndGet(t *testing.T) {
	repo := NewCandidateRepository()
	repo.Insert(newCandidate("a", "Ana Garcia"))

	got, ok := repo.Get("a")
	if !ok || got.Name != "Ana Garcia" {
		t.Fatalf("Get(a) = %+v, %v", got, ok)
	}
	if got.AddedAt.IsZero() {
		t.Error("Insert did not stamp AddedAt")
	}
	if _, ok := repo.Get("missing"); ok {
		t.Error("Get(missing) reported a record")
	}
}

func TestInsertReplacesKeepingOrder(t *testing.T) {
	repo := NewCandidateRepository()
	repo.Insert(newCandidate("a", "Ana Garcia"))
	repo.Insert(newCandidate("b", "David Lee"))
	repo.Insert(newCandidate("a", "Ana Garcia Updated"))

	if repo.Count() != 2 {
		t.Fatalf("Count = %d after re-insert, want 2", repo.Count())
	}
	got, _ := repo.Get("a")
	if got.Name != "Ana Garcia Updated" {
		t.Errorf("re-insert did not replace: Name = %q", got.Name)
	}

	list := repo.List()
	if list[0].ID != "b" || list[1].ID != "a" {
		t.Errorf("re-insert changed ordering: got %s, %s", list[0].ID, list[1].ID)
	}
}

func TestListMostRecentFirst(t *testing.T) {
	repo := NewCandidateRepository()
	repo.Insert(newCandidate("a", "First"))
	repo.Insert(newCandidate("b", "Second"))
	repo.Insert(newCandidate("c", "Third"))

	list := repo.List()
	want := []string{"c", "b", "a"}
	for i, id := range want {
		if list[i].ID != id {
			t.Fatalf("List()[%d].ID = %q, want %q", i, list[i].ID, id)
		}
	}
}

func TestRemove(t *testing.T) {
	repo := NewCandidateRepository()
	repo.Insert(newCandidate("a", "Ana Garcia"))
	repo.Insert(newCandidate("b", "David Lee"))

	if !repo.Remove("a") {
		t.Fatal("Remove(a) = false for existing record")
	}
	if repo.Remove("a") {
		t.Error("Remove(a) = true for already removed record")
	}
	if repo.Count() != 1 {
		t.Errorf("Count = %d after removal, want 1", repo.Count())
	}
	list := repo.List()
	if len(list) != 1 || list[0].ID != "b" {
		t.Errorf("List after removal = %v", list)
	}
}

func TestRemoveMissingLeavesStoreIntact(t *testing.T) {
	repo := NewCandidateRepository()
	repo.Insert(newCandidate("a", "Ana Garcia"))

	if repo.Remove("missing") {
		t.Fatal("Remove(missing) = true")
	}
	if repo.Count() != 1 {
		t.Errorf("Count = %d, want 1", repo.Count())
	}
}

func TestPatch(t *testing.T) {
	repo := NewCandidateRepository()
	c := newCandidate("a", "Ana Garcia")
	c.Role = "Backend Developer"
	c.Source = model.SourceUploaded
	repo.Insert(c)

	upd := &model.Candidate{Role: "Senior Backend Developer", Skills: []string{"Python"}, Source: model.SourceGenerated}
	got, ok := repo.Patch("a", upd)
	if !ok {
		t.Fatal("Patch(a) = false")
	}
	if got.Role != "Senior Backend Developer" {
		t.Errorf("Role = %q", got.Role)
	}
	if got.Name != "Ana Garcia" {
		t.Errorf("Patch cleared untouched field Name = %q", got.Name)
	}
	if len(got.Skills) != 1 || got.Skills[0] != "Python" {
		t.Errorf("Skills = %v", got.Skills)
	}
	if got.Source != model.SourceUploaded {
		t.Errorf("Patch changed Source to %q", got.Source)
	}
	if got.UpdatedAt.IsZero() {
		t.Error("Patch did not bump UpdatedAt")
	}

	if _, ok := repo.Patch("missing", upd); ok {
		t.Error("Patch(missing) = true")
	}
}

func TestCountBySource(t *testing.T) {
	repo := NewCandidateRepository()
	a := newCandidate("a", "Ana Garcia")
	a.Source = model.SourceUploaded
	repo.Insert(a)
	repo.Insert(newCandidate("b", "David Lee"))
	repo.Insert(newCandidate("c", "Maria Santos"))

	counts := repo.CountBySource()
	if counts[model.SourceUploaded] != 1 || counts[model.SourceGenerated] != 2 {
		t.Errorf("CountBySource = %v", counts)
	}
}
