package extraction

import "strings"

const (
	jsonFence    = "```json"
	genericFence = "```"
)

// stripCodeFence recovers the JSON payload from engine output that is often
// wrapped in a fenced code block. A json-labelled fence wins over a generic
// one; the payload is the text between the opening fence and the next fence.
// Output without a fence is returned trimmed.
func stripCodeFence(raw string) string {
	if _, after, ok := strings.Cut(raw, jsonFence); ok {
		body, _, _ := strings.Cut(after, genericFence)
		return strings.TrimSpace(body)
	}

	if _, after, ok := strings.Cut(raw, genericFence); ok {
		body, _, _ := strings.Cut(after, genericFence)
		return strings.TrimSpace(dropLanguageTag(body))
	}

	return strings.TrimSpace(raw)
}

// dropLanguageTag removes a fence label such as "JSON" or "javascript" left
// on the first line after a generic fence.
func dropLanguageTag(body string) string {
	first, rest, ok := strings.Cut(body, "\n")
	if !ok {
		return body
	}
	tag := strings.TrimSpace(first)
	if tag == "" {
		return body
	}
	for _, r := range tag {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z') {
			return body
		}
	}
	return rest
}
