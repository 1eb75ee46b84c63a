// Package llm talks to hosted language models for the two intelligence
// operations the app delegates: pulling the counterparty's messages out of an
// uploaded file, and assessing a single sentence for manipulation risk.
package llm

import (
	"context"
	"time"

	"github.com/centradial/centradial/internal/model"
)

// Client defines the interface for LLM providers.
type Client interface {
	// ExtractMessages isolates the counterparty's messages from the file and
	// returns them in order. A response the model mangles into non-JSON
	// degrades to an empty slice; only transport and API failures are errors.
	ExtractMessages(ctx context.Context, data []byte, mimeType string) ([]string, error)

	// AssessSentence produces a structured risk record for one sentence. Any
	// missing required field or unknown pressure level fails the request;
	// a partial record is never returned.
	AssessSentence(ctx context.Context, sentence string) (model.RiskRecord, error)
}

// Config holds configuration for the LLM clients.
type Config struct {
	Provider    string
	APIKey      string
	Model       string
	BaseURL     string
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
}

// extractionPrompt instructs the model to isolate only the suspected
// manipulator's side of the conversation.
const extractionPrompt = `Extract the conversation text from this file. Focus specifically on identifying messages spoken by the "other person" (the suspected scammer or manipulator). Return the extracted conversation as a JSON array of strings, where each string is a single sentence or logical message chunk from that person. Do not include your own commentary in the JSON. Output ONLY valid JSON.`

// assessmentPrompt frames the risk analysis. The tone instruction matters:
// results are shown to someone who may already be under pressure.
const assessmentPrompt = `Analyze this sentence for emotional manipulation and scam risk. Be calm, therapist-like, and gentle.

Respond with ONLY a JSON object containing exactly these fields:
"sentence" (string), "pressureLevel" ("Low", "Medium" or "High"),
"urgencyScore" (number), "manipulationPattern" (string),
"riskExplanation" (string), "protectiveAction" (string), "scamType" (string).

Sentence: %q`
