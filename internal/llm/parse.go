package llm

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/centradial/centradial/internal/common"
	"github.com/centradial/centradial/internal/model"
)

// cleanMarkdownWrapper strips a ```json fence the model sometimes wraps
// around its output despite instructions.
func cleanMarkdownWrapper(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	return strings.TrimSpace(content)
}

// parseSentences decodes the extraction output. Malformed output degrades to
// an empty list: a bad extraction only prompts a re-upload, it must never
// crash the review flow.
func parseSentences(content string) []string {
	content = cleanMarkdownWrapper(content)

	var sentences []string
	if err := json.Unmarshal([]byte(content), &sentences); err != nil {
		slog.Warn("discarding malformed extraction output", "error", err)
		return []string{}
	}

	out := make([]string, 0, len(sentences))
	for _, s := range sentences {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// parseRiskRecord decodes the assessment output. Unlike extraction, a
// malformed record is a hard failure: a risk assessment with missing fields
// could mislead the user.
func parseRiskRecord(content string) (model.RiskRecord, error) {
	content = cleanMarkdownWrapper(content)

	var record model.RiskRecord
	if err := json.Unmarshal([]byte(content), &record); err != nil {
		return model.RiskRecord{}, fmt.Errorf("%w: %v", common.ErrAssessmentMalformed, err)
	}

	if err := record.Validate(); err != nil {
		return model.RiskRecord{}, fmt.Errorf("%w: %v", common.ErrAssessmentMalformed, err)
	}

	return record, nil
}
