// Package review models the upload → extract → assess flow as an explicit
// state machine, independent of any UI toolkit so its ordering rules can be
// tested directly.
package review

import (
	"fmt"

	"github.com/centradial/centradial/internal/model"
)

// State is the workflow's position in the review flow.
type State int

const (
	// StateIdle: no file chosen.
	StateIdle State = iota
	// StateFileSelected: a file is chosen but not yet sent for extraction.
	StateFileSelected
	// StateExtracting: extraction request in flight.
	StateExtracting
	// StateSentencesReady: extraction finished, zero or more sentences shown.
	StateSentencesReady
	// StateAssessing: an assessment request in flight for one sentence.
	StateAssessing
	// StateResultReady: one risk record is selected and displayed.
	StateResultReady
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateFileSelected:
		return "file-selected"
	case StateExtracting:
		return "extracting"
	case StateSentencesReady:
		return "sentences-ready"
	case StateAssessing:
		return "assessing"
	case StateResultReady:
		return "result-ready"
	}
	return "unknown"
}

// Workflow holds the transient review state. At most one risk record is
// selected at a time and nothing here is persisted.
//
// Every in-flight network operation carries a token minted at Begin time.
// Completions presenting a stale token are discarded, which gives the
// last-click-wins guarantee: a slow response for an earlier click can never
// overwrite the result of a later one.
type Workflow struct {
	selected  *model.RiskRecord
	fileName  string
	mimeType  string
	assessing string
	fileData  []byte
	sentences []string
	token     uint64
	state     State
}

// New returns a workflow in the idle state.
func New() *Workflow {
	return &Workflow{state: StateIdle}
}

// State returns the current state.
func (w *Workflow) State() State { return w.state }

// FileName returns the selected file's name, if any.
func (w *Workflow) FileName() string { return w.fileName }

// FileData returns the selected file's bytes.
func (w *Workflow) FileData() []byte { return w.fileData }

// MimeType returns the selected file's MIME type.
func (w *Workflow) MimeType() string { return w.mimeType }

// Sentences returns the extracted sentences in order.
func (w *Workflow) Sentences() []string { return w.sentences }

// Selected returns the currently selected risk record, or nil.
func (w *Workflow) Selected() *model.RiskRecord { return w.selected }

// Assessing returns the sentence whose assessment is in flight.
func (w *Workflow) Assessing() string { return w.assessing }

// next invalidates any in-flight completion and mints a fresh token.
func (w *Workflow) next() uint64 {
	w.token++
	return w.token
}

// SelectFile chooses a file for review, clearing any prior sentence list and
// selected result. It is rejected while a network call is in flight.
func (w *Workflow) SelectFile(name, mimeType string, data []byte) error {
	switch w.state {
	case StateExtracting, StateAssessing:
		return fmt.Errorf("cannot select a file while %s", w.state)
	}

	w.fileName = name
	w.mimeType = mimeType
	w.fileData = data
	w.sentences = nil
	w.selected = nil
	w.assessing = ""
	w.next()
	w.state = StateFileSelected
	return nil
}

// RemoveFile discards the file and everything derived from it, returning to
// idle. A response still in flight for the removed file is discarded when it
// arrives.
func (w *Workflow) RemoveFile() {
	w.fileName = ""
	w.mimeType = ""
	w.fileData = nil
	w.sentences = nil
	w.selected = nil
	w.assessing = ""
	w.next()
	w.state = StateIdle
}

// BeginExtraction moves into the extracting state and returns the token the
// completion must present.
func (w *Workflow) BeginExtraction() (uint64, error) {
	if w.state != StateFileSelected {
		return 0, fmt.Errorf("no file awaiting extraction (state %s)", w.state)
	}
	w.state = StateExtracting
	return w.next(), nil
}

// CompleteExtraction applies an extraction result. It reports whether the
// result was current; stale completions leave the workflow untouched.
// On failure the file is retained so the user can retry.
func (w *Workflow) CompleteExtraction(token uint64, sentences []string, err error) bool {
	if token != w.token {
		return false
	}

	if err != nil {
		w.state = StateFileSelected
		return true
	}

	if sentences == nil {
		sentences = []string{}
	}
	w.sentences = sentences
	w.selected = nil
	w.state = StateSentencesReady
	return true
}

// BeginAssessment starts assessing one sentence. Clicking another sentence
// while an assessment is already in flight supersedes it: the earlier
// response becomes stale.
func (w *Workflow) BeginAssessment(sentence string) (uint64, error) {
	switch w.state {
	case StateSentencesReady, StateResultReady, StateAssessing:
	default:
		return 0, fmt.Errorf("no sentences to assess (state %s)", w.state)
	}

	w.assessing = sentence
	w.state = StateAssessing
	return w.next(), nil
}

// CompleteAssessment applies an assessment result, reporting whether it was
// current. On success the new record replaces any previous selection. On
// failure the previously selected record, if any, remains displayed.
func (w *Workflow) CompleteAssessment(token uint64, record model.RiskRecord, err error) bool {
	if token != w.token {
		return false
	}

	w.assessing = ""

	if err != nil {
		if w.selected != nil {
			w.state = StateResultReady
		} else {
			w.state = StateSentencesReady
		}
		return true
	}

	w.selected = &record
	w.state = StateResultReady
	return true
}

// Reset returns the workflow to idle, discarding all transient state.
func (w *Workflow) Reset() {
	w.RemoveFile()
}
