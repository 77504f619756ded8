package article

import "strings"

// Separator divides a bulk line's title from its optional details.
const Separator = "|"

// ParseBulk turns free-form bulk input into generation requests, one per
// non-blank line, in input order. Only the first separator splits a line;
// anything after it, further separators included, is details.
func ParseBulk(raw string) ([]GenerationRequest, error) {
	var reqs []GenerationRequest
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		title, details, _ := strings.Cut(line, Separator)
		reqs = append(reqs, GenerationRequest{
			Title:   strings.TrimSpace(title),
			Details: strings.TrimSpace(details),
		})
	}
	if len(reqs) == 0 {
		return nil, &EmptyInputError{Input: InputTitles}
	}
	return reqs, nil
}

// ParsePrompt rejects a blank single-article prompt. The prompt is returned
// as typed; the backend receives it untrimmed.
func ParsePrompt(prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", &EmptyInputError{Input: InputPrompt}
	}
	return prompt, nil
}

// FormatBulk is the inverse of ParseBulk for display and file export.
func FormatBulk(reqs []GenerationRequest) string {
	var sb strings.Builder
	for _, r := range reqs {
		sb.WriteString(r.Title)
		if r.Details != "" {
			sb.WriteString(" " + Separator + " ")
			sb.WriteString(r.Details)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
