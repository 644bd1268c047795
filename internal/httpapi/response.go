package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"
)

const (
	allowHeaders = "authorization, origin, referer"
	allowMethods = "*"
)

// encodeJSON serializes data the way browsers' JSON.stringify does: no HTML
// escaping, no trailing newline. nil becomes the empty JSON string.
func encodeJSON(data any) ([]byte, error) {
	if data == nil {
		data = ""
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(data); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// writeJSON sends status and data with the permissive CORS headers every
// response carries.
func writeJSON(w http.ResponseWriter, origin string, status int, data any) error {
	body, err := encodeJSON(data)
	if err != nil {
		status = http.StatusInternalServerError
		body, _ = encodeJSON(nil)
	}

	h := w.Header()
	h.Set("Access-Control-Allow-Origin", origin)
	h.Set("Access-Control-Allow-Credentials", "true")
	h.Set("Access-Control-Allow-Headers", allowHeaders)
	h.Set("Access-Control-Allow-Methods", allowMethods)
	h.Set("Content-Type", "application/json")
	h.Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(status)
	_, _ = w.Write(body)
	return err
}
