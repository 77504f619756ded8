// Package state holds the client's view state as a plain value. Every user
// action or finished request is an Action, and Reduce computes the next
// State from the previous one without side effects.
package state

import (
	"fmt"
	"time"

	"github.com/partyapatil/Ai-blog-frontend/internal/api"
	"github.com/partyapatil/Ai-blog-frontend/internal/article"
)

type Tab int

const (
	TabGenerate Tab = iota
	TabBlog
)

// Op is a request that holds the loading flag while it runs.
type Op int

const (
	OpNone Op = iota
	OpGenerateSingle
	OpGenerateBulk
	OpDeleteAll
)

func (o Op) String() string {
	switch o {
	case OpGenerateSingle:
		return "generate-single"
	case OpGenerateBulk:
		return "generate-bulk"
	case OpDeleteAll:
		return "delete-all"
	default:
		return "none"
	}
}

type NoticeKind int

const (
	NoticeSuccess NoticeKind = iota
	NoticeError
)

// Notice is a message for the user. How it is shown is up to the view.
type Notice struct {
	Kind NoticeKind
	Text string
}

type State struct {
	Tab     Tab
	Loading bool
	Pending Op

	Prompt string
	Bulk   string

	Articles []article.Article
	Selected *article.Article
	Stale    bool
	SyncedAt time.Time

	Confirming bool
	Notice     *Notice
}

// Initial is the state before anything is loaded.
func Initial() State {
	return State{Tab: TabGenerate, Articles: []article.Article{}}
}

func (s State) TabLabel(t Tab) string {
	if t == TabBlog {
		return fmt.Sprintf("Blog (%d)", len(s.Articles))
	}
	return "Generate Articles"
}

// Action is anything that changes State.
type Action interface {
	isAction()
}

type (
	SwitchTab  struct{ Tab Tab }
	EditPrompt struct{ Text string }
	EditBulk   struct{ Text string }

	// Submit starts Op if the input is usable and nothing else is running.
	Submit struct{ Op Op }

	// Generated reports a finished generation. Count is the backend's
	// total for a bulk request.
	Generated struct {
		Op    Op
		Count int
	}

	Failed struct {
		Op  Op
		Err error
	}

	Deleted struct{}

	// ArticlesLoaded replaces the list. Stale lists are the last good list
	// after a failed fetch.
	ArticlesLoaded struct {
		Articles []article.Article
		Stale    bool
		SyncedAt time.Time
	}

	Select       struct{ ID string }
	Back         struct{}
	AskDelete    struct{}
	CancelDelete struct{}
	Dismiss      struct{}

	// Notify shows a notice that no request produced, such as the
	// outcome of an export.
	Notify struct{ Notice Notice }
)

func (SwitchTab) isAction()      {}
func (EditPrompt) isAction()     {}
func (EditBulk) isAction()       {}
func (Submit) isAction()         {}
func (Generated) isAction()      {}
func (Failed) isAction()         {}
func (Deleted) isAction()        {}
func (ArticlesLoaded) isAction() {}
func (Select) isAction()         {}
func (Back) isAction()           {}
func (AskDelete) isAction()      {}
func (CancelDelete) isAction()   {}
func (Dismiss) isAction()        {}
func (Notify) isAction()         {}

// Reduce returns the state after a. s is never modified; slices held by
// the result are never written in place.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case SwitchTab:
		s.Tab = a.Tab
		s.Confirming = false

	case EditPrompt:
		s.Prompt = a.Text

	case EditBulk:
		s.Bulk = a.Text

	case Submit:
		return submit(s, a.Op)

	case Generated:
		if !s.Loading || s.Pending != a.Op {
			return s
		}
		s = settle(s)
		switch a.Op {
		case OpGenerateSingle:
			s.Prompt = ""
			s.Notice = &Notice{Kind: NoticeSuccess, Text: "Article generated successfully!"}
		case OpGenerateBulk:
			s.Bulk = ""
			s.Notice = &Notice{Kind: NoticeSuccess, Text: fmt.Sprintf("%d articles generated successfully!", a.Count)}
		}
		s.Tab = TabBlog

	case Failed:
		if !s.Loading || s.Pending != a.Op {
			return s
		}
		s = settle(s)
		if a.Op == OpDeleteAll {
			s.Notice = &Notice{Kind: NoticeError, Text: "Error deleting articles"}
		} else {
			s.Notice = &Notice{Kind: NoticeError, Text: "Error: " + api.UserMessage(a.Err, "")}
		}

	case Deleted:
		if !s.Loading || s.Pending != OpDeleteAll {
			return s
		}
		s = settle(s)
		s.Articles = []article.Article{}
		s.Selected = nil
		s.Notice = &Notice{Kind: NoticeSuccess, Text: "All articles deleted"}

	case ArticlesLoaded:
		// A stale list that was never synced carries nothing; the list on
		// screen is still the last good one
		if a.Stale && a.SyncedAt.IsZero() && len(a.Articles) == 0 {
			s.Stale = true
			return s
		}
		articles := make([]article.Article, len(a.Articles))
		copy(articles, a.Articles)
		s.Articles = articles
		s.Stale = a.Stale
		if !a.SyncedAt.IsZero() {
			s.SyncedAt = a.SyncedAt
		}
		if s.Selected != nil {
			s.Selected = article.Find(articles, s.Selected.ID)
		}

	case Select:
		if sel := article.Find(s.Articles, a.ID); sel != nil {
			s.Selected = sel
			s.Tab = TabBlog
		}

	case Back:
		s.Selected = nil

	case AskDelete:
		if !s.Loading && len(s.Articles) > 0 {
			s.Confirming = true
		}

	case CancelDelete:
		s.Confirming = false

	case Dismiss:
		s.Notice = nil

	case Notify:
		n := a.Notice
		s.Notice = &n
	}
	return s
}

func submit(s State, op Op) State {
	// A second submit while a request runs is ignored, not queued
	if s.Loading {
		return s
	}

	switch op {
	case OpGenerateSingle:
		if _, err := article.ParsePrompt(s.Prompt); err != nil {
			s.Notice = &Notice{Kind: NoticeError, Text: err.Error()}
			return s
		}
	case OpGenerateBulk:
		reqs, err := article.ParseBulk(s.Bulk)
		if err == nil {
			err = article.Validate(reqs)
		}
		if err != nil {
			s.Notice = &Notice{Kind: NoticeError, Text: err.Error()}
			return s
		}
	case OpDeleteAll:
		if !s.Confirming {
			return s
		}
		s.Confirming = false
	default:
		return s
	}

	s.Loading = true
	s.Pending = op
	s.Notice = nil
	return s
}

func settle(s State) State {
	s.Loading = false
	s.Pending = OpNone
	return s
}
