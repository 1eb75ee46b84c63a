// Package handoff composes WhatsApp deep links so a user can forward a
// worrying conversation to a trusted contact with one action.
package handoff

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
	"strings"
)

// Template is a prewritten message the user can send without composing under
// pressure.
type Template struct {
	ID      string
	Label   string
	Message string
}

// Templates returns the fixed set of hand-off messages, in display order.
func Templates() []Template {
	return []Template{
		{
			ID:      "concern",
			Label:   "Concern / Need Help",
			Message: "Hey, I just received this message and I feel unsure. Can you please check and give me your opinion before I respond?",
		},
		{
			ID:      "scam",
			Label:   "Possible Scam Warning",
			Message: "I think I might be dealing with a scam. Could you look at this message for me and see if it looks suspicious?",
		},
		{
			ID:      "verify",
			Label:   "Request to Verify Situation",
			Message: "I'm feeling a bit pressured by a conversation. Can we talk? I need a second opinion on what was said.",
		},
	}
}

// TemplateByID returns the template with the given id, or false when no such
// template exists.
func TemplateByID(id string) (Template, bool) {
	for _, t := range Templates() {
		if t.ID == id {
			return t, true
		}
	}
	return Template{}, false
}

// NormalizePhone strips everything but digits from a phone number, the form
// wa.me expects.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Compose builds a wa.me link that opens a chat with the given phone number
// and the message prefilled.
func Compose(phone, message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", NormalizePhone(phone), url.QueryEscape(message))
}

// Open launches the URL in the user's default browser. The TUI calls this
// after the cooldown gate fires; failures are surfaced to the caller rather
// than swallowed.
func Open(rawURL string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", rawURL)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", rawURL)
	default:
		cmd = exec.Command("xdg-open", rawURL)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("opening %s: %w", rawURL, err)
	}
	return nil
}
