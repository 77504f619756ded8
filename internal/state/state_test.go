package state

import (
	"errors"
	"testing"
	"time"

	"github.com/partyapatil/Ai-blog-frontend/internal/api"
	"github.com/partyapatil/Ai-blog-frontend/internal/article"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() []article.Article {
	return []article.Article{
		{ID: "1", Title: "Docker for Beginners", Content: "# Docker"},
		{ID: "2", Title: "GraphQL vs REST API", Content: "body"},
	}
}

func run(s State, actions ...Action) State {
	for _, a := range actions {
		s = Reduce(s, a)
	}
	return s
}

func TestInitial(t *testing.T) {
	s := Initial()
	assert.Equal(t, TabGenerate, s.Tab)
	assert.False(t, s.Loading)
	assert.Equal(t, "Blog (0)", s.TabLabel(TabBlog))
	assert.Equal(t, "Generate Articles", s.TabLabel(TabGenerate))
}

func TestSubmitEmptyPromptIsRejectedLocally(t *testing.T) {
	s := run(Initial(), EditPrompt{Text: "   "}, Submit{Op: OpGenerateSingle})
	assert.False(t, s.Loading)
	assert.Equal(t, OpNone, s.Pending)
	require.NotNil(t, s.Notice)
	assert.Equal(t, NoticeError, s.Notice.Kind)
	assert.Equal(t, "Please enter an AI prompt", s.Notice.Text)
}

func TestSubmitEmptyBulkIsRejectedLocally(t *testing.T) {
	s := run(Initial(), EditBulk{Text: "\n\n   \n"}, Submit{Op: OpGenerateBulk})
	assert.False(t, s.Loading)
	require.NotNil(t, s.Notice)
	assert.Equal(t, "Please enter titles", s.Notice.Text)
}

func TestSubmitBulkWithEmptyTitleIsRejected(t *testing.T) {
	s := run(Initial(), EditBulk{Text: "Docker\n| some detail"}, Submit{Op: OpGenerateBulk})
	assert.False(t, s.Loading)
	require.NotNil(t, s.Notice)
	assert.Contains(t, s.Notice.Text, "line 2")
}

func TestSubmitSetsLoadingAndGatesDuplicates(t *testing.T) {
	s := run(Initial(), EditPrompt{Text: "React hooks"}, Submit{Op: OpGenerateSingle})
	assert.True(t, s.Loading)
	assert.Equal(t, OpGenerateSingle, s.Pending)

	s2 := run(s, EditBulk{Text: "Docker"}, Submit{Op: OpGenerateBulk})
	assert.True(t, s2.Loading)
	assert.Equal(t, OpGenerateSingle, s2.Pending, "second submit must not replace the running one")
}

func TestGeneratedSingle(t *testing.T) {
	s := run(Initial(),
		Dismiss{},
		EditPrompt{Text: "React hooks"},
		EditBulk{Text: "kept"},
		Submit{Op: OpGenerateSingle},
		Generated{Op: OpGenerateSingle},
	)
	assert.False(t, s.Loading)
	assert.Equal(t, "", s.Prompt)
	assert.Equal(t, "kept", s.Bulk)
	assert.Equal(t, TabBlog, s.Tab)
	require.NotNil(t, s.Notice)
	assert.Equal(t, NoticeSuccess, s.Notice.Kind)
	assert.Equal(t, "Article generated successfully!", s.Notice.Text)
}

func TestGeneratedBulk(t *testing.T) {
	s := run(Initial(),
		EditBulk{Text: "Docker for Beginners | Step-by-step tutorial\nGraphQL vs REST API"},
		Submit{Op: OpGenerateBulk},
		Generated{Op: OpGenerateBulk, Count: 2},
	)
	assert.False(t, s.Loading)
	assert.Equal(t, "", s.Bulk)
	assert.Equal(t, TabBlog, s.Tab)
	require.NotNil(t, s.Notice)
	assert.Equal(t, "2 articles generated successfully!", s.Notice.Text)
}

func TestGeneratedIgnoredWhenNotPending(t *testing.T) {
	before := Initial()
	after := Reduce(before, Generated{Op: OpGenerateBulk, Count: 3})
	assert.Equal(t, before, after)
}

func TestFailedKeepsInputAndShowsServerMessage(t *testing.T) {
	err := &api.RequestError{Op: api.OpGenerateBulk, StatusCode: 500, Message: "Gemini quota exceeded"}
	s := run(Initial(),
		EditBulk{Text: "Docker"},
		Submit{Op: OpGenerateBulk},
		Failed{Op: OpGenerateBulk, Err: err},
	)
	assert.False(t, s.Loading)
	assert.Equal(t, "Docker", s.Bulk)
	assert.Equal(t, TabGenerate, s.Tab)
	require.NotNil(t, s.Notice)
	assert.Equal(t, NoticeError, s.Notice.Kind)
	assert.Equal(t, "Error: Gemini quota exceeded", s.Notice.Text)
}

func TestFailedWithoutServerMessage(t *testing.T) {
	s := run(Initial(),
		EditPrompt{Text: "x"},
		Submit{Op: OpGenerateSingle},
		Failed{Op: OpGenerateSingle, Err: errors.New("dial tcp: connection refused")},
	)
	require.NotNil(t, s.Notice)
	assert.Equal(t, "Error: dial tcp: connection refused", s.Notice.Text)
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	s := run(Initial(), ArticlesLoaded{Articles: sample()}, Submit{Op: OpDeleteAll})
	assert.False(t, s.Loading, "delete without confirmation must not start")

	s = run(s, AskDelete{})
	assert.True(t, s.Confirming)

	s = run(s, CancelDelete{})
	assert.False(t, s.Confirming)
	assert.False(t, s.Loading)
}

func TestAskDeleteNeedsArticles(t *testing.T) {
	s := run(Initial(), AskDelete{})
	assert.False(t, s.Confirming)
}

func TestDeleted(t *testing.T) {
	s := run(Initial(),
		ArticlesLoaded{Articles: sample()},
		Select{ID: "2"},
		AskDelete{},
		Submit{Op: OpDeleteAll},
	)
	assert.True(t, s.Loading)
	assert.False(t, s.Confirming)

	s = Reduce(s, Deleted{})
	assert.False(t, s.Loading)
	assert.Empty(t, s.Articles)
	assert.Nil(t, s.Selected)
	assert.Equal(t, "Blog (0)", s.TabLabel(TabBlog))
	require.NotNil(t, s.Notice)
	assert.Equal(t, "All articles deleted", s.Notice.Text)
}

func TestDeleteFailedUsesGenericMessage(t *testing.T) {
	err := &api.RequestError{Op: api.OpDeleteAll, StatusCode: 500, Message: "db locked"}
	s := run(Initial(),
		ArticlesLoaded{Articles: sample()},
		AskDelete{},
		Submit{Op: OpDeleteAll},
		Failed{Op: OpDeleteAll, Err: err},
	)
	assert.False(t, s.Loading)
	assert.Len(t, s.Articles, 2)
	require.NotNil(t, s.Notice)
	assert.Equal(t, "Error deleting articles", s.Notice.Text)
}

func TestArticlesLoadedReplacesWholesale(t *testing.T) {
	synced := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	s := run(Initial(), ArticlesLoaded{Articles: sample(), SyncedAt: synced})
	assert.Len(t, s.Articles, 2)
	assert.Equal(t, "Blog (2)", s.TabLabel(TabBlog))
	assert.Equal(t, synced, s.SyncedAt)

	s = run(s, ArticlesLoaded{Articles: sample()[:1], Stale: true})
	assert.Len(t, s.Articles, 1)
	assert.True(t, s.Stale)
	assert.Equal(t, synced, s.SyncedAt, "a zero sync time keeps the previous one")
}

func TestEmptyStaleListKeepsArticles(t *testing.T) {
	synced := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	s := run(Initial(), ArticlesLoaded{Articles: sample(), SyncedAt: synced})
	s = Reduce(s, ArticlesLoaded{Stale: true})
	assert.Len(t, s.Articles, 2)
	assert.True(t, s.Stale)
	assert.Equal(t, synced, s.SyncedAt)
}

func TestArticlesLoadedDoesNotAliasInput(t *testing.T) {
	in := sample()
	s := Reduce(Initial(), ArticlesLoaded{Articles: in})
	in[0].Title = "mutated"
	assert.Equal(t, "Docker for Beginners", s.Articles[0].Title)
}

func TestReduceDoesNotModifyPrevious(t *testing.T) {
	prev := run(Initial(), ArticlesLoaded{Articles: sample()}, Select{ID: "1"})
	snapshot := prev
	_ = run(prev, Back{}, SwitchTab{Tab: TabGenerate}, ArticlesLoaded{Articles: nil}, Dismiss{})
	assert.Equal(t, snapshot, prev)
	assert.Len(t, prev.Articles, 2)
	require.NotNil(t, prev.Selected)
}

func TestSelectAndBack(t *testing.T) {
	s := run(Initial(), ArticlesLoaded{Articles: sample()}, Select{ID: "2"})
	require.NotNil(t, s.Selected)
	assert.Equal(t, "GraphQL vs REST API", s.Selected.Title)
	assert.Equal(t, TabBlog, s.Tab)

	s = Reduce(s, Back{})
	assert.Nil(t, s.Selected)

	s = Reduce(s, Select{ID: "missing"})
	assert.Nil(t, s.Selected)
}

func TestSelectionClearedWhenArticleDisappears(t *testing.T) {
	s := run(Initial(), ArticlesLoaded{Articles: sample()}, Select{ID: "2"})
	s = Reduce(s, ArticlesLoaded{Articles: sample()[:1]})
	assert.Nil(t, s.Selected)
}

func TestSwitchTabCancelsConfirmation(t *testing.T) {
	s := run(Initial(), ArticlesLoaded{Articles: sample()}, AskDelete{}, SwitchTab{Tab: TabGenerate})
	assert.False(t, s.Confirming)
	assert.Equal(t, TabGenerate, s.Tab)
}

func TestDismiss(t *testing.T) {
	s := run(Initial(), Submit{Op: OpGenerateSingle})
	require.NotNil(t, s.Notice)
	s = Reduce(s, Dismiss{})
	assert.Nil(t, s.Notice)
}

func TestNotify(t *testing.T) {
	s := Reduce(Initial(), Notify{Notice: Notice{Kind: NoticeSuccess, Text: "Exported to /tmp/a.html"}})
	require.NotNil(t, s.Notice)
	assert.Equal(t, "Exported to /tmp/a.html", s.Notice.Text)
	assert.False(t, s.Loading)
}

func TestOpString(t *testing.T) {
	assert.Equal(t, "generate-bulk", OpGenerateBulk.String())
	assert.Equal(t, "none", OpNone.String())
}
