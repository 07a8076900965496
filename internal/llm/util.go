package llm

import "strings"

// CleanJSONBlock strips markdown code fences and conversational preamble from
// model output. Models wrap JSON in ```json blocks or prepend prose even when
// instructed not to.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		// Skip a language identifier on the first line.
		if idx := strings.Index(text, "\n"); idx >= 0 {
			first := text[:idx]
			if len(first) < 20 && !strings.Contains(first, " ") && !strings.Contains(first, "{") {
				text = text[idx+1:]
			}
		}
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		return strings.TrimSpace(text)
	}

	// Preamble before the JSON payload: extract the first balanced object or
	// array.
	if !strings.HasPrefix(text, "{") && !strings.HasPrefix(text, "[") {
		objStart := strings.Index(text, "{")
		arrStart := strings.Index(text, "[")
		start := objStart
		if start < 0 || (arrStart >= 0 && arrStart < start) {
			start = arrStart
		}
		if start >= 0 {
			if extracted := extractBalanced(text[start:]); extracted != "" {
				return extracted
			}
		}
		return text
	}

	// Trailing prose after the payload.
	if extracted := extractBalanced(text); extracted != "" {
		return extracted
	}
	return text
}

// extractBalanced returns the leading balanced JSON object or array in text,
// tracking string literals and escapes, or "" when text does not start with a
// brace/bracket or never balances.
func extractBalanced(text string) string {
	if text == "" {
		return ""
	}

	var open, close byte
	switch text[0] {
	case '{':
		open, close = '{', '}'
	case '[':
		open, close = '[', ']'
	default:
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := 0; i < len(text); i++ {
		ch := text[i]
		if escaped {
			escaped = false
			continue
		}
		switch {
		case ch == '\\' && inString:
			escaped = true
		case ch == '"':
			inString = !inString
		case !inString && ch == open:
			depth++
		case !inString && ch == close:
			depth--
			if depth == 0 {
				return text[:i+1]
			}
		}
	}
	return ""
}
