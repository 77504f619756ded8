package article

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBulkScenarios(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []GenerationRequest
	}{
		{
			name:  "title with details",
			input: "Docker for Beginners | Step-by-step tutorial",
			want:  []GenerationRequest{{Title: "Docker for Beginners", Details: "Step-by-step tutorial"}},
		},
		{
			name:  "title only",
			input: "Python vs JavaScript: Key Differences",
			want:  []GenerationRequest{{Title: "Python vs JavaScript: Key Differences", Details: ""}},
		},
		{
			name:  "mixed lines keep order",
			input: "Advanced React Patterns | Cover hooks and context API\nNode.js Performance Optimization",
			want: []GenerationRequest{
				{Title: "Advanced React Patterns", Details: "Cover hooks and context API"},
				{Title: "Node.js Performance Optimization", Details: ""},
			},
		},
		{
			name:  "blank lines and padding are dropped",
			input: "\n  GraphQL vs REST API  \n\n\t\nTypeScript Best Practices|\n",
			want: []GenerationRequest{
				{Title: "GraphQL vs REST API", Details: ""},
				{Title: "TypeScript Best Practices", Details: ""},
			},
		},
		{
			name:  "only the first separator splits",
			input: "CI/CD | GitHub Actions | matrix builds",
			want:  []GenerationRequest{{Title: "CI/CD", Details: "GitHub Actions | matrix builds"}},
		},
		{
			name:  "empty title is retained",
			input: "| some detail",
			want:  []GenerationRequest{{Title: "", Details: "some detail"}},
		},
		{
			name:  "windows line endings",
			input: "MongoDB Aggregation Pipeline\r\nMicroservices Architecture Patterns\r\n",
			want: []GenerationRequest{
				{Title: "MongoDB Aggregation Pipeline"},
				{Title: "Microservices Architecture Patterns"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBulk(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseBulkEmptyInput(t *testing.T) {
	for _, input := range []string{"", "\n\n   \n", "\t", " \r\n "} {
		got, err := ParseBulk(input)
		assert.Nil(t, got, "input %q", input)

		var empty *EmptyInputError
		require.True(t, errors.As(err, &empty), "input %q: expected EmptyInputError, got %v", input, err)
		assert.Equal(t, InputTitles, empty.Input)
	}
}

func TestParseBulkIdempotent(t *testing.T) {
	input := "Understanding JavaScript Closures | Include examples with setTimeout\n\nDocker for Beginners"
	first, err := ParseBulk(input)
	require.NoError(t, err)
	second, err := ParseBulk(input)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestParseBulkPreservesOrder(t *testing.T) {
	input := "c\nb | 2\na\nd | 4"
	got, err := ParseBulk(input)
	require.NoError(t, err)

	titles := make([]string, len(got))
	for i, r := range got {
		titles[i] = r.Title
	}
	assert.Equal(t, []string{"c", "b", "a", "d"}, titles)
}

func TestFormatBulkRoundTrip(t *testing.T) {
	reqs := []GenerationRequest{
		{Title: "Docker for Beginners", Details: "Step-by-step tutorial"},
		{Title: "GraphQL vs REST API"},
	}
	got, err := ParseBulk(FormatBulk(reqs))
	require.NoError(t, err)
	assert.Equal(t, reqs, got)
}

func TestParsePrompt(t *testing.T) {
	got, err := ParsePrompt("  Write an article about React hooks ")
	require.NoError(t, err)
	assert.Equal(t, "  Write an article about React hooks ", got)

	_, err = ParsePrompt(" \n ")
	var empty *EmptyInputError
	require.ErrorAs(t, err, &empty)
	assert.Equal(t, InputPrompt, empty.Input)
	assert.Equal(t, "Please enter an AI prompt", err.Error())
}
