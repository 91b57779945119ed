package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Player:
		o.printPlayer(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Player response type (matches API)
type Player struct {
	Username string `json:"username"`
	Scores   []any  `json:"scores"`
	ID       string `json:"id,omitempty"`
}

// HealthResult response type
type HealthResult struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

func (o *Output) printPlayer(p Player) {
	if p.ID != "" {
		_, _ = fmt.Fprintf(o.w, "Player: %s (%s)\n", p.Username, p.ID)
	} else {
		_, _ = fmt.Fprintf(o.w, "Player: %s\n", p.Username)
	}

	if len(p.Scores) == 0 {
		_, _ = fmt.Fprintln(o.w, "Scores: none")
		return
	}

	scores := make([]string, 0, len(p.Scores))
	for _, s := range p.Scores {
		scores = append(scores, formatScore(s))
	}
	_, _ = fmt.Fprintf(o.w, "Scores (%d): %s\n", len(p.Scores), strings.Join(scores, ", "))
}

func (o *Output) printHealthResult(h HealthResult) {
	_, _ = fmt.Fprintf(o.w, "Status: %s\n", h.Status)
	if h.Latency != "" {
		_, _ = fmt.Fprintf(o.w, "Latency: %s\n", h.Latency)
	}
}

// formatScore renders a score compactly; non-scalar scores are shown as JSON
func formatScore(score any) string {
	switch v := score.(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case float64, bool:
		return fmt.Sprint(v)
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(data)
	}
}
