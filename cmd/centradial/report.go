package main

import (
	"fmt"
	"log/slog"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/centradial/centradial/internal/model"
)

func reportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report <file>",
		Short: "Scan a conversation file and print a risk report",
		Long: `Runs the message check without the interactive session: extracts the
other person's sentences from the file, assesses each one and prints the
full risk report. One failed sentence does not stop the rest.`,
		Args: cobra.ExactArgs(1),
		RunE: runReport,
	}
}

func runReport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	path := args[0]

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	mimeType := mime.TypeByExtension(filepath.Ext(path))
	if mimeType == "" {
		mimeType = "text/plain"
	}
	if base, _, found := strings.Cut(mimeType, ";"); found {
		mimeType = strings.TrimSpace(base)
	}

	client, err := newLLMClient()
	if err != nil {
		return err
	}

	sentences, err := client.ExtractMessages(ctx, data, mimeType)
	if err != nil {
		return fmt.Errorf("failed to extract the conversation: %w", err)
	}
	if len(sentences) == 0 {
		fmt.Println("No messages were found in this file.")
		return nil
	}

	bar := progressbar.NewOptions(len(sentences),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan][bold]Checking sentences...[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(os.Stderr)
		}),
	)

	records := make([]*model.RiskRecord, len(sentences))
	failures := 0
	for i, sentence := range sentences {
		record, assessErr := client.AssessSentence(ctx, sentence)
		if assessErr != nil {
			// Keep going; the remaining sentences are still worth checking.
			slog.Warn("sentence assessment failed", "index", i, "error", assessErr)
			failures++
		} else {
			records[i] = &record
		}
		_ = bar.Add(1)
	}

	printReport(path, sentences, records)

	if failures > 0 {
		fmt.Printf("\n%d of %d sentences could not be checked.\n", failures, len(sentences))
	}
	return nil
}

var (
	reportTitleStyle = lipgloss.NewStyle().Bold(true)
	highStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#c98286")).Bold(true)
	mediumStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#d9b26f")).Bold(true)
	lowStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("#8fbc8f")).Bold(true)
	mutedStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#778877"))
)

var reportBoxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	Padding(0, 1).
	MarginBottom(1)

func pressureStyle(level model.PressureLevel) lipgloss.Style {
	switch level {
	case model.PressureHigh:
		return highStyle
	case model.PressureMedium:
		return mediumStyle
	default:
		return lowStyle
	}
}

func printReport(path string, sentences []string, records []*model.RiskRecord) {
	fmt.Println(reportTitleStyle.Render(fmt.Sprintf("Risk report for %s", filepath.Base(path))))
	fmt.Println()

	for i, sentence := range sentences {
		record := records[i]
		if record == nil {
			fmt.Println(reportBoxStyle.Render(
				mutedStyle.Render("“"+sentence+"”") + "\n" +
					mutedStyle.Render("This sentence could not be checked."),
			))
			continue
		}

		badge := pressureStyle(record.PressureLevel).Render(
			fmt.Sprintf("%s pressure · urgency %.0f/10", record.PressureLevel, record.UrgencyScore))

		body := strings.Join([]string{
			"“" + sentence + "”",
			badge,
			"",
			"Pattern:     " + record.ManipulationPattern,
			"Scam type:   " + record.ScamType,
			"Why:         " + record.RiskExplanation,
			"What to do:  " + record.ProtectiveAction,
		}, "\n")

		fmt.Println(reportBoxStyle.Render(body))
	}
}
