// Package report renders a fetched transcript as a human-readable text
// report: metadata banner, summary sections, then the speaker-grouped
// timestamped transcript body.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/johnquangdev/fireflies-dl/internal/fireflies"
)

const bannerWidth = 80

// Render produces the full text report for a transcript. Sentence order
// is preserved as received; contiguous sentences from the same speaker
// are grouped under one speaker header.
func Render(t *fireflies.Transcript) string {
	lines := headerLines(t)
	if t.Summary != nil {
		lines = append(lines, summaryLines(t.Summary)...)
	}
	lines = append(lines, sentenceLines(t.Sentences)...)
	return strings.Join(lines, "\n")
}

func headerLines(t *fireflies.Transcript) []string {
	banner := strings.Repeat("=", bannerWidth)
	lines := []string{
		banner,
		"TITLE: " + t.Title,
		"ID: " + t.ID,
		"DURATION: " + FormatDuration(t.Duration),
	}
	if t.Date != 0 {
		// Date is epoch milliseconds
		lines = append(lines, "DATE: "+time.UnixMilli(t.Date).Format("2006-01-02 15:04:05"))
	}
	if len(t.Participants) > 0 {
		lines = append(lines, "PARTICIPANTS: "+strings.Join(t.Participants, ", "))
	}
	return append(lines, banner, "")
}

func summaryLines(s *fireflies.Summary) []string {
	lines := []string{"--- SUMMARY ---", s.Overview, ""}
	if len(s.Keywords) > 0 {
		lines = append(lines, "--- KEYWORDS ---", strings.Join(s.Keywords, ", "), "")
	}
	if len(s.ActionItems) > 0 {
		lines = append(lines, "--- ACTION ITEMS ---")
		for _, item := range s.ActionItems {
			lines = append(lines, "  - "+item)
		}
		lines = append(lines, "")
	}
	return lines
}

func sentenceLines(sentences []fireflies.Sentence) []string {
	if len(sentences) == 0 {
		return nil
	}
	banner := strings.Repeat("=", bannerWidth)
	lines := []string{banner, "FULL TRANSCRIPT", banner, ""}

	var current string
	for _, s := range sentences {
		if speaker := s.Speaker(); speaker != current {
			lines = append(lines, "", "--- "+speaker+" ---")
			current = speaker
		}
		lines = append(lines, FormatTimestamp(s.StartTime)+" "+s.Text)
	}
	return lines
}

// FormatTimestamp renders a start offset in seconds as [MM:SS].
func FormatTimestamp(seconds float64) string {
	total := int(seconds)
	return fmt.Sprintf("[%02d:%02d]", total/60, total%60)
}

// FormatDuration renders a duration in seconds as "1h 2m 3s", "2m 3s"
// or "3s" depending on magnitude.
func FormatDuration(seconds float64) string {
	total := int(seconds)
	h, m, s := total/3600, total%3600/60, total%60
	switch {
	case h > 0:
		return fmt.Sprintf("%dh %dm %ds", h, m, s)
	case m > 0:
		return fmt.Sprintf("%dm %ds", m, s)
	default:
		return fmt.Sprintf("%ds", s)
	}
}
