package article

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAcceptsParsedInput(t *testing.T) {
	reqs, err := ParseBulk("Docker for Beginners | Step-by-step tutorial\nGraphQL vs REST API")
	require.NoError(t, err)
	assert.NoError(t, Validate(reqs))
}

func TestValidateRejectsEmptyTitle(t *testing.T) {
	reqs, err := ParseBulk("Docker for Beginners\n| some detail\nGraphQL vs REST API")
	require.NoError(t, err)

	err = Validate(reqs)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Problems, 1)
	assert.Equal(t, 2, verr.Problems[0].Position)
	assert.Equal(t, "title", verr.Problems[0].Field)
	assert.Contains(t, err.Error(), "line 2: title is required")
}

func TestValidateLengthLimits(t *testing.T) {
	reqs := []GenerationRequest{
		{Title: strings.Repeat("t", 301)},
		{Title: "ok", Details: strings.Repeat("d", 2001)},
		{Title: strings.Repeat("日", 300)},
	}
	err := Validate(reqs)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Problems, 2)
	assert.Equal(t, 1, verr.Problems[0].Position)
	assert.Equal(t, "title must be at most 300 characters", verr.Problems[0].Message)
	assert.Equal(t, 2, verr.Problems[1].Position)
	assert.Equal(t, "details", verr.Problems[1].Field)
}

func TestFind(t *testing.T) {
	articles := []Article{{ID: "a", Title: "A"}, {ID: "b", Title: "B"}}
	got := Find(articles, "b")
	require.NotNil(t, got)
	assert.Equal(t, "B", got.Title)

	got.Title = "changed"
	assert.Equal(t, "B", articles[1].Title, "Find must return a copy")

	assert.Nil(t, Find(articles, "zzz"))
}
