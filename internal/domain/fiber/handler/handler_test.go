package handler

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"talentscope/internal/model"
	"talentscope/internal/repository"
	"talentscope/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

func testApp(t *testing.T, seed ...*model.Candidate) *fiber.App {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	repo := repository.NewCandidateRepository()
	for _, c := range seed {
		repo.Insert(c)
	}

	chatUC := usecase.NewChatUsecase(repo, nil, log)
	libraryUC := usecase.NewLibraryUsecase(repo, log)
	ingestUC := usecase.NewIngestUsecase(repo, log)

	app := fiber.New()
	NewChatHandler(chatUC).RegisterRoutes(app)
	NewLibraryHandler(libraryUC, chatUC).RegisterRoutes(app)
	NewUploadHandler(ingestUC).RegisterRoutes(app)
	return app
}

func seedCandidate(id, name, source string) *model.Candidate {
	c := model.NewCandidate(source)
	c.ID = id
	c.Name = name
	return c
}

func TestListLibrary(t *testing.T) {
	app := testApp(t,
		seedCandidate("a", "Ana Garcia", model.SourceUploaded),
		seedCandidate("b", "David Lee", model.SourceGenerated),
	)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/cv-library", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var body struct {
		Success bool `json:"success"`
		Meta    struct {
			UploadedCount  int `json:"uploaded_count"`
			GeneratedCount int `json:"generated_count"`
		} `json:"meta"`
		Pagination struct {
			TotalItems int `json:"total_items"`
		} `json:"pagination"`
		Data []struct {
			Name string `json:"name"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if !body.Success {
		t.Error("success = false")
	}
	if body.Pagination.TotalItems != 2 || len(body.Data) != 2 {
		t.Errorf("total = %d, data length = %d", body.Pagination.TotalItems, len(body.Data))
	}
	if body.Data[0].Name != "David Lee" {
		t.Errorf("most recent candidate first, got %q", body.Data[0].Name)
	}
	if body.Meta.UploadedCount != 1 || body.Meta.GeneratedCount != 1 {
		t.Errorf("meta counts = %+v", body.Meta)
	}
}

func TestGetCandidateNotFound(t *testing.T) {
	app := testApp(t)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/cv-library/missing", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}

func TestDeleteCandidate(t *testing.T) {
	app := testApp(t, seedCandidate("a", "Ana Garcia", model.SourceUploaded))

	resp, err := app.Test(httptest.NewRequest(fiber.MethodDelete, "/api/cv-library/a", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	resp, err = app.Test(httptest.NewRequest(fiber.MethodDelete, "/api/cv-library/a", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("second delete status = %d, want 404", resp.StatusCode)
	}
}

func TestAddCandidateValidation(t *testing.T) {
	app := testApp(t)

	req := httptest.NewRequest(fiber.MethodPost, "/api/cv-library", strings.NewReader(`{"role":"Developer"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400 for missing name", resp.StatusCode)
	}

	req = httptest.NewRequest(fiber.MethodPost, "/api/cv-library", strings.NewReader(`{"name":"Ana Garcia"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}
}

func TestChatValidation(t *testing.T) {
	app := testApp(t)

	req := httptest.NewRequest(fiber.MethodPost, "/api/chat", strings.NewReader(`{"message":"  "}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400 for blank message", resp.StatusCode)
	}
}

func TestChatDemoResponse(t *testing.T) {
	seed := seedCandidate("a", "Ana Garcia", model.SourceUploaded)
	seed.Skills = []string{"Python"}
	app := testApp(t, seed)

	req := httptest.NewRequest(fiber.MethodPost, "/api/chat", strings.NewReader(`{"message":"who knows python"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var body struct {
		Data struct {
			Response   string   `json:"response"`
			Sources    []string `json:"sources"`
			MatchCount int      `json:"match_count"`
			IsDemo     bool     `json:"is_demo"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if !body.Data.IsDemo {
		t.Error("is_demo = false without an assistant")
	}
	if body.Data.MatchCount != 1 || len(body.Data.Sources) != 1 {
		t.Errorf("match_count = %d, sources = %v", body.Data.MatchCount, body.Data.Sources)
	}
	if body.Data.Response == "" {
		t.Error("empty chat response")
	}
}

func TestGenerateValidation(t *testing.T) {
	app := testApp(t)

	for _, payload := range []string{`{"count":0}`, `{"count":51}`} {
		req := httptest.NewRequest(fiber.MethodPost, "/api/generate-cvs", strings.NewReader(payload))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != fiber.StatusBadRequest {
			t.Errorf("payload %s: status = %d, want 400", payload, resp.StatusCode)
		}
	}
}

func TestGenerateCandidates(t *testing.T) {
	app := testApp(t)

	req := httptest.NewRequest(fiber.MethodPost, "/api/generate-cvs", strings.NewReader(`{"count":3}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}

	var body struct {
		Data []struct {
			ID     string `json:"id"`
			Source string `json:"source"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if len(body.Data) != 3 {
		t.Fatalf("generated %d candidates, want 3", len(body.Data))
	}
	for _, c := range body.Data {
		if c.Source != model.SourceGenerated {
			t.Errorf("source = %q", c.Source)
		}
	}
}

func TestStatus(t *testing.T) {
	app := testApp(t, seedCandidate("a", "Ana Garcia", model.SourceUploaded))

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/status", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var body struct {
		Data struct {
			Library struct {
				Total    int `json:"total"`
				Uploaded int `json:"uploaded"`
			} `json:"library"`
			AI struct {
				Status string `json:"status"`
				Model  string `json:"model"`
			} `json:"ai"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body.Data.Library.Total != 1 || body.Data.Library.Uploaded != 1 {
		t.Errorf("library counts = %+v", body.Data.Library)
	}
	if body.Data.AI.Status != "unavailable" || body.Data.AI.Model != "demo-mode" {
		t.Errorf("ai block = %+v", body.Data.AI)
	}
}
