package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"talentscope/internal/dto"
	"talentscope/internal/model"
	"talentscope/internal/repository"
	"talentscope/internal/search"
	"talentscope/internal/service"

	"github.com/sirupsen/logrus"
)

// assistantTimeout bounds the one external network call per chat request.
const assistantTimeout = 60 * time.Second

const demoNote = "\n\n⚠️ Note: This is a demo response. Configure an LLM provider for full AI answers."

type ChatUsecase struct {
	repo      *repository.CandidateRepository
	assistant service.Assistant
	log       *logrus.Logger
}

func NewChatUsecase(repo *repository.CandidateRepository, assistant service.Assistant, log *logrus.Logger) *ChatUsecase {
	return &ChatUsecase{repo: repo, assistant: assistant, log: log}
}

// Answer runs the query through the matcher and either the language-model
// collaborator or the local composer. It always produces renderable text;
// assistant failures downgrade to the composed reply marked as demo.
func (uc *ChatUsecase) Answer(ctx context.Context, message string) *dto.ChatResponse {
	candidates := uc.repo.List()
	matched := search.Match(message, candidates)
	composed := search.Compose(message, matched, len(candidates))

	sources := make([]string, 0, len(matched))
	for _, c := range matched {
		sources = append(sources, c.Name)
	}

	resp := &dto.ChatResponse{
		Sources:         sources,
		MatchCount:      len(matched),
		TotalCandidates: len(candidates),
		Suggestions:     composed.Suggestions,
	}

	if uc.assistant != nil {
		askCtx, cancel := context.WithTimeout(ctx, assistantTimeout)
		defer cancel()

		text, err := uc.assistant.Ask(askCtx, buildSystemPrompt(matched), message)
		if err == nil {
			resp.Response = text
			return resp
		}
		uc.log.WithError(err).Warn("assistant call failed, falling back to demo response")
	}

	resp.Response = composed.Text + demoNote
	resp.IsDemo = true
	return resp
}

// AssistantModel reports the model name for the status surface.
func (uc *ChatUsecase) AssistantModel() string {
	if uc.assistant == nil {
		return "demo-mode"
	}
	return uc.assistant.Model()
}

func (uc *ChatUsecase) AssistantAvailable() bool {
	return uc.assistant != nil
}

// buildSystemPrompt serializes the matched candidates as context for the
// language model, labelled by provenance.
func buildSystemPrompt(matched []*model.Candidate) string {
	var ctx strings.Builder
	for _, c := range matched {
		label := "(Generated Profile)"
		if c.Source == model.SourceUploaded {
			label = "(Uploaded CV)"
		}
		content := c.RawContent
		if content == "" {
			content = c.Summary
		}
		if content == "" {
			content = "No content available"
		}
		fmt.Fprintf(&ctx, "Name: %s %s\nContent: %s\n\n", c.Name, label, content)
	}

	return fmt.Sprintf(`You are an AI HR assistant specialized in screening CVs and answering questions about candidates.

Your role is to:
1. Answer questions strictly based on the provided CV information
2. Be helpful and informative while staying factual
3. If you don't have information about something, clearly state that
4. Provide specific examples and details when available
5. Distinguish between uploaded CVs and generated profiles when relevant

Available CV Information:
%s
If no relevant CVs are found for a query, politely explain that you don't have information about that topic in the current CV library.`, ctx.String())
}
