package api

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/bnema/devconnect-cli/internal/domain"
)

// statusError maps a non-2xx response to an APIError. It returns nil for success.
func statusError(resp Response) error {
	if resp.ok() {
		return nil
	}
	return &domain.APIError{StatusCode: resp.StatusCode, Detail: errorDetail(resp.Body)}
}

// errorDetail extracts a human message from a DRF-style error body: a detail or
// message string, or per-field lists of messages.
func errorDetail(body []byte) string {
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}

	for _, key := range []string{"detail", "message", "error"} {
		if raw, ok := payload[key]; ok {
			var text string
			if err := json.Unmarshal(raw, &text); err == nil && text != "" {
				return text
			}
		}
	}

	keys := make([]string, 0, len(payload))
	for key := range payload {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		var messages []string
		if err := json.Unmarshal(payload[key], &messages); err != nil || len(messages) == 0 {
			continue
		}
		if key == "non_field_errors" {
			parts = append(parts, strings.Join(messages, " "))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", key, strings.Join(messages, " ")))
	}
	return strings.Join(parts, "; ")
}
