package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
)

// NormalizeScore replaces json.Number values, at any depth, with int64 when the
// literal is an integer that fits and float64 otherwise. Scores decoded with
// UseNumber keep integers exact through every store.
func NormalizeScore(v any) any {
	switch val := v.(type) {
	case json.Number:
		return normalizeNumber(val)
	case []any:
		out := make([]any, len(val))
		for i, elem := range val {
			out[i] = NormalizeScore(elem)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, elem := range val {
			out[k] = NormalizeScore(elem)
		}
		return out
	default:
		return v
	}
}

func normalizeNumber(n json.Number) any {
	if i, err := n.Int64(); err == nil {
		return i
	}
	if f, err := n.Float64(); err == nil {
		return f
	}
	return n.String()
}

// DecodeScore unmarshals one JSON score with integers kept exact
func DecodeScore(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after score")
	}
	return NormalizeScore(v), nil
}
