package display

import (
	"encoding/json"
	"io"

	"github.com/stellarview/apod/internal/apod"
)

// OutputJSON writes pretty-printed JSON to the given writer.
func OutputJSON(w io.Writer, data any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// EntryJSON is the JSON shape for a successful fetch.
type EntryJSON struct {
	Entry  apod.Entry `json:"entry"`
	Cached bool       `json:"already_cached"`
	Rows   int        `json:"cache_rows"`
}

// FetchErrorJSON is the JSON shape for a failed fetch.
type FetchErrorJSON struct {
	Error FetchErrorDetailJSON `json:"error"`
}

type FetchErrorDetailJSON struct {
	Kind    string `json:"kind"`
	Date    string `json:"date"`
	Message string `json:"message"`
}

// ActionResultJSON is the JSON shape for cache/key management actions.
type ActionResultJSON struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
