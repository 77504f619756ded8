package article

import (
	"fmt"
	"strings"
)

// Inputs that can be submitted empty.
const (
	InputPrompt = "prompt"
	InputTitles = "titles"
)

// EmptyInputError means the user submitted nothing usable. No request is
// sent when it is returned.
type EmptyInputError struct {
	Input string
}

func (e *EmptyInputError) Error() string {
	switch e.Input {
	case InputPrompt:
		return "Please enter an AI prompt"
	case InputTitles:
		return "Please enter titles"
	default:
		return fmt.Sprintf("empty %s", e.Input)
	}
}

// Problem is a single rejected field of a generation request.
type Problem struct {
	Position int // 1-based, in submission order
	Field    string
	Message  string
}

// ValidationError lists the requests that would be rejected before sending.
type ValidationError struct {
	Problems []Problem
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Problems))
	for i, p := range e.Problems {
		parts[i] = fmt.Sprintf("line %d: %s", p.Position, p.Message)
	}
	return "invalid titles: " + strings.Join(parts, "; ")
}
