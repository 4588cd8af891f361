package ai

import (
	"fmt"
	"strings"
)

// ExtractJSON locates the first well-formed JSON object inside a model
// response. Models regularly wrap the object in markdown fences or
// explanatory prose ("Here is the analysis:\n{...}\nLet me know if...")
// even when told not to, so we strip fences first and then scan for a
// balanced {...} span, respecting string literals and escapes.
func ExtractJSON(raw string) (string, error) {
	s := strings.TrimSpace(raw)

	// Remove markdown code blocks if present: prefer the fenced content.
	if i := strings.Index(s, "```"); i >= 0 {
		rest := s[i+3:]
		// Drop an optional language tag like "json"
		if j := strings.IndexAny(rest, "\n{"); j >= 0 {
			rest = rest[j:]
		}
		if k := strings.Index(rest, "```"); k >= 0 {
			rest = rest[:k]
		}
		s = strings.TrimSpace(rest)
	}

	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", fmt.Errorf("no JSON object found in response")
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], nil
			}
		}
	}
	return "", fmt.Errorf("unbalanced JSON object in response")
}
