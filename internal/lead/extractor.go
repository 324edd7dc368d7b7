package lead

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/vibes-run/leadchat/internal/domain"
	"go.uber.org/zap"
)

// Completer issues a single standalone prompt to the completion API
type Completer interface {
	Prompt(ctx context.Context, prompt string) (string, error)
}

// Extractor pulls structured lead fields out of a completed conversation
type Extractor struct {
	completer Completer
	logger    *zap.Logger
}

// NewExtractor creates a lead extractor
func NewExtractor(completer Completer, logger *zap.Logger) *Extractor {
	return &Extractor{completer: completer, logger: logger}
}

const extractionTemplate = `Analyze this conversation and extract the following information. Return a JSON object with these fields (use null if not mentioned):

{
  "name": "visitor's name",
  "email": "visitor's email",
  "company": "visitor's company",
  "projectSummary": "1-2 sentence summary of what they want to build",
  "problem": "the challenge or pain point they're trying to solve",
  "vision": "what success looks like for them",
  "users": "who will use the solution",
  "capabilities": "key features or capabilities needed",
  "constraints": "timeline, budget, technical requirements, or integrations mentioned"
}

CONVERSATION:
%s

Return ONLY the JSON object, no other text.`

// Extract runs one extraction call over the full transcript. An upstream
// error propagates; a malformed extraction degrades to an all-null record so
// a bad parse never loses the lead entirely.
func (e *Extractor) Extract(ctx context.Context, history []*domain.Message) (domain.ExtractedLead, error) {
	var sb strings.Builder
	for i, m := range history {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(strings.ToUpper(m.Role))
		sb.WriteString(": ")
		sb.WriteString(m.Content)
	}

	text, err := e.completer.Prompt(ctx, fmt.Sprintf(extractionTemplate, sb.String()))
	if err != nil {
		return domain.ExtractedLead{}, fmt.Errorf("lead extraction call failed: %w", err)
	}

	var extracted domain.ExtractedLead
	if err := json.Unmarshal([]byte(text), &extracted); err != nil {
		e.logger.Error("failed to parse lead extraction, degrading to empty lead",
			zap.Error(err), zap.String("response", text))
		return domain.ExtractedLead{}, nil
	}

	return extracted, nil
}
