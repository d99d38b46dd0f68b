package fireflies

import (
	"encoding/json"
	"strings"
)

// Transcript is the typed shape of one Fireflies meeting transcript.
type Transcript struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	TranscriptURL string     `json:"transcript_url"`
	Duration      float64    `json:"duration"`
	Date          int64      `json:"date"`
	Participants  []string   `json:"participants"`
	Sentences     []Sentence `json:"sentences"`
	Summary       *Summary   `json:"summary"`
}

// Sentence is a single utterance with speaker and time offsets in seconds.
type Sentence struct {
	Text        string  `json:"text"`
	SpeakerID   string  `json:"speaker_id"`
	SpeakerName string  `json:"speaker_name"`
	StartTime   float64 `json:"start_time"`
	EndTime     float64 `json:"end_time"`
}

// Speaker returns the display name for the sentence speaker, falling back
// to the speaker ID when no name was resolved.
func (s Sentence) Speaker() string {
	if s.SpeakerName != "" {
		return s.SpeakerName
	}
	if s.SpeakerID != "" {
		return s.SpeakerID
	}
	return "Unknown"
}

// Summary holds the AI-generated meeting summary. Nil on transcripts
// where no summary was produced.
type Summary struct {
	Keywords        StringList `json:"keywords"`
	ActionItems     StringList `json:"action_items"`
	Overview        string     `json:"overview"`
	ShorthandBullet string     `json:"shorthand_bullet"`
}

// StringList is a []string that also accepts a single JSON string.
// The API returns summary fields in either shape; the string form is
// split on newlines.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*l = nil
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*l = list
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	var out []string
	for _, line := range strings.Split(single, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	*l = out
	return nil
}
