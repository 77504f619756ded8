package tui

import (
	"github.com/partyapatil/Ai-blog-frontend/internal/blog"
	"github.com/partyapatil/Ai-blog-frontend/internal/state"
)

// articlesLoadedMsg carries a list from the snapshot (cached) or the backend.
type articlesLoadedMsg struct {
	listing blog.Listing
	cached  bool
	err     error
}

type generatedMsg struct {
	op    state.Op
	count int
}

type failedMsg struct {
	op  state.Op
	err error
}

type deletedMsg struct{}

type exportedMsg struct {
	path string
	err  error
}
