package response

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/mcoot/gobang/internal/model"
)

// JSON writes a JSON response. The body is encoded before the status is sent,
// so a value that cannot be encoded produces a 500 instead of a truncated body.
func JSON(w http.ResponseWriter, status int, data any) {
	var buf bytes.Buffer
	if data != nil {
		if err := json.NewEncoder(&buf).Encode(data); err != nil {
			buf.Reset()
			buf.WriteString(`{"error":{"code":"INTERNAL_ERROR","message":"Internal server error"}}`)
			status = http.StatusInternalServerError
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

// WritePlayer writes a player record in its API shape
func WritePlayer(w http.ResponseWriter, status int, p *model.Player) {
	JSON(w, status, PlayerFromModel(p))
}
