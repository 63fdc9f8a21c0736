package listing

import "strings"

// ExtractObject pulls a JSON object candidate out of a raw model response.
// Models occasionally wrap the object in a markdown code fence or surround it
// with prose despite the prompt forbidding both. The fence is stripped
// line-wise, then the text is sliced to the first '{' .. last '}' span when
// one exists. The result is only a candidate; the caller decides whether it
// actually parses.
func ExtractObject(raw string) string {
	text := strings.TrimSpace(raw)

	if strings.HasPrefix(text, "```") {
		lines := strings.Split(text, "\n")
		// Drop the opening fence line (``` or ```json)
		lines = lines[1:]
		if len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "```" {
			lines = lines[:len(lines)-1]
		}
		text = strings.Join(lines, "\n")
	}

	text = strings.TrimSpace(text)

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start != -1 && end != -1 && end > start {
		text = text[start : end+1]
	}

	return text
}
