package review

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/centradial/centradial/internal/model"
)

func record(sentence string) model.RiskRecord {
	return model.RiskRecord{
		Sentence:            sentence,
		PressureLevel:       model.PressureHigh,
		UrgencyScore:        8,
		ManipulationPattern: "Urgency",
		RiskExplanation:     "Pushes you to act without thinking.",
		ProtectiveAction:    "Pause before responding.",
		ScamType:            "Pressure scam",
	}
}

func selectAndExtract(t *testing.T, w *Workflow, sentences []string) {
	t.Helper()
	require.NoError(t, w.SelectFile("chat.png", "image/png", []byte("bytes")))
	token, err := w.BeginExtraction()
	require.NoError(t, err)
	require.True(t, w.CompleteExtraction(token, sentences, nil))
}

func TestHappyPath(t *testing.T) {
	w := New()
	assert.Equal(t, StateIdle, w.State())

	require.NoError(t, w.SelectFile("chat.png", "image/png", []byte("bytes")))
	assert.Equal(t, StateFileSelected, w.State())
	assert.Equal(t, "chat.png", w.FileName())

	token, err := w.BeginExtraction()
	require.NoError(t, err)
	assert.Equal(t, StateExtracting, w.State())

	require.True(t, w.CompleteExtraction(token, []string{"a", "b"}, nil))
	assert.Equal(t, StateSentencesReady, w.State())
	assert.Equal(t, []string{"a", "b"}, w.Sentences())

	token, err = w.BeginAssessment("a")
	require.NoError(t, err)
	assert.Equal(t, StateAssessing, w.State())
	assert.Equal(t, "a", w.Assessing())

	require.True(t, w.CompleteAssessment(token, record("a"), nil))
	assert.Equal(t, StateResultReady, w.State())
	require.NotNil(t, w.Selected())
	assert.Equal(t, "a", w.Selected().Sentence)
}

func TestLastClickWins(t *testing.T) {
	w := New()
	selectAndExtract(t, w, []string{"a", "b"})

	tokenA, err := w.BeginAssessment("a")
	require.NoError(t, err)

	// The user clicks sentence B before A's response arrives.
	tokenB, err := w.BeginAssessment("b")
	require.NoError(t, err)

	// B's response lands first and is applied.
	require.True(t, w.CompleteAssessment(tokenB, record("b"), nil))
	assert.Equal(t, StateResultReady, w.State())
	assert.Equal(t, "b", w.Selected().Sentence)

	// A's late response is stale and must not clobber B.
	assert.False(t, w.CompleteAssessment(tokenA, record("a"), nil))
	assert.Equal(t, "b", w.Selected().Sentence)
	assert.Equal(t, StateResultReady, w.State())
}

func TestExtractionFailureRetainsFile(t *testing.T) {
	w := New()
	require.NoError(t, w.SelectFile("chat.pdf", "application/pdf", []byte("pdf")))

	token, err := w.BeginExtraction()
	require.NoError(t, err)

	require.True(t, w.CompleteExtraction(token, nil, errors.New("boom")))
	assert.Equal(t, StateFileSelected, w.State())
	assert.Equal(t, "chat.pdf", w.FileName())

	// Retry is permitted.
	_, err = w.BeginExtraction()
	assert.NoError(t, err)
}

func TestEmptyExtractionIsNotAnError(t *testing.T) {
	w := New()
	selectAndExtract(t, w, []string{})

	assert.Equal(t, StateSentencesReady, w.State())
	assert.Empty(t, w.Sentences())
}

func TestAssessmentFailureKeepsPriorSelection(t *testing.T) {
	w := New()
	selectAndExtract(t, w, []string{"a", "b"})

	token, err := w.BeginAssessment("a")
	require.NoError(t, err)
	require.True(t, w.CompleteAssessment(token, record("a"), nil))

	// A later assessment of B fails; A's record stays displayed.
	token, err = w.BeginAssessment("b")
	require.NoError(t, err)
	require.True(t, w.CompleteAssessment(token, model.RiskRecord{}, errors.New("malformed")))

	assert.Equal(t, StateResultReady, w.State())
	assert.Equal(t, "a", w.Selected().Sentence)
}

func TestAssessmentFailureWithoutPriorSelection(t *testing.T) {
	w := New()
	selectAndExtract(t, w, []string{"a"})

	token, err := w.BeginAssessment("a")
	require.NoError(t, err)
	require.True(t, w.CompleteAssessment(token, model.RiskRecord{}, errors.New("malformed")))

	assert.Equal(t, StateSentencesReady, w.State())
	assert.Nil(t, w.Selected())
}

func TestSelectFileClearsPriorRun(t *testing.T) {
	w := New()
	selectAndExtract(t, w, []string{"a"})

	token, err := w.BeginAssessment("a")
	require.NoError(t, err)
	require.True(t, w.CompleteAssessment(token, record("a"), nil))

	require.NoError(t, w.SelectFile("other.txt", "text/plain", []byte("t")))
	assert.Equal(t, StateFileSelected, w.State())
	assert.Empty(t, w.Sentences())
	assert.Nil(t, w.Selected())
}

func TestRemoveFileDiscardsInFlightResponse(t *testing.T) {
	w := New()
	require.NoError(t, w.SelectFile("chat.png", "image/png", []byte("bytes")))

	token, err := w.BeginExtraction()
	require.NoError(t, err)

	// User removes the file before the response arrives.
	w.RemoveFile()
	assert.Equal(t, StateIdle, w.State())

	// The late response is discarded, not applied.
	assert.False(t, w.CompleteExtraction(token, []string{"a"}, nil))
	assert.Equal(t, StateIdle, w.State())
	assert.Empty(t, w.Sentences())
}

func TestSelectFileRejectedWhileInFlight(t *testing.T) {
	w := New()
	require.NoError(t, w.SelectFile("chat.png", "image/png", []byte("bytes")))
	_, err := w.BeginExtraction()
	require.NoError(t, err)

	err = w.SelectFile("other.png", "image/png", []byte("x"))
	assert.Error(t, err)
}

func TestBeginExtractionRequiresFile(t *testing.T) {
	w := New()
	_, err := w.BeginExtraction()
	assert.Error(t, err)
}

func TestBeginAssessmentRequiresSentences(t *testing.T) {
	w := New()
	_, err := w.BeginAssessment("a")
	assert.Error(t, err)
}

func TestReselectingFromResultReady(t *testing.T) {
	w := New()
	selectAndExtract(t, w, []string{"a", "b"})

	token, err := w.BeginAssessment("a")
	require.NoError(t, err)
	require.True(t, w.CompleteAssessment(token, record("a"), nil))

	// Re-selecting a different sentence from ResultReady is always allowed.
	token, err = w.BeginAssessment("b")
	require.NoError(t, err)
	require.True(t, w.CompleteAssessment(token, record("b"), nil))
	assert.Equal(t, "b", w.Selected().Sentence)
}
