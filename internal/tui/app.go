package tui

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/partyapatil/Ai-blog-frontend/internal/article"
	"github.com/partyapatil/Ai-blog-frontend/internal/blog"
	"github.com/partyapatil/Ai-blog-frontend/internal/browser"
	"github.com/partyapatil/Ai-blog-frontend/internal/render"
	"github.com/partyapatil/Ai-blog-frontend/internal/state"
)

// Service is what the TUI needs from the blog service.
type Service interface {
	Refresh(ctx context.Context) (blog.Listing, error)
	Cached() (blog.Listing, error)
	Generate(ctx context.Context, prompt string) error
	GenerateBulk(ctx context.Context, raw string) (int, error)
	DeleteAll(ctx context.Context) error
}

// RunOpts holds all parameters for launching the TUI.
type RunOpts struct {
	Service       Service
	APIURL        string
	MarkdownStyle string
	ExportDir     string
	// OpenFile opens exported files. Defaults to the system browser.
	OpenFile func(path string) error
	Logger   *slog.Logger
}

type App struct {
	svc       Service
	apiURL    string
	exportDir string
	openFile  func(string) error
	logger    *slog.Logger

	st     state.State
	cursor int
	help   bool

	width  int
	height int

	form    generateForm
	reader  reader
	spinner spinner.Model
}

func NewApp(opts RunOpts) *App {
	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = spinnerStyle

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	open := opts.OpenFile
	if open == nil {
		open = browser.OpenFile
	}

	return &App{
		svc:       opts.Service,
		apiURL:    opts.APIURL,
		exportDir: opts.ExportDir,
		openFile:  open,
		logger:    logger,
		st:        state.Initial(),
		form:      newGenerateForm(),
		reader:    newReader(opts.MarkdownStyle),
		spinner:   sp,
	}
}

// State exposes the current view state.
func (a *App) State() state.State { return a.st }

func (a *App) Init() tea.Cmd {
	// The snapshot paints immediately; the fetch replaces it when it lands
	return tea.Sequence(a.loadCachedCmd(), a.refreshCmd())
}

func (a *App) loadCachedCmd() tea.Cmd {
	svc := a.svc
	return func() tea.Msg {
		listing, err := svc.Cached()
		return articlesLoadedMsg{listing: listing, cached: true, err: err}
	}
}

func (a *App) refreshCmd() tea.Cmd {
	svc := a.svc
	return func() tea.Msg {
		listing, err := svc.Refresh(context.Background())
		return articlesLoadedMsg{listing: listing, err: err}
	}
}

// opCmd runs the request the reducer just started. Inputs are captured now
// so later edits cannot change what is sent.
func (a *App) opCmd(op state.Op) tea.Cmd {
	svc := a.svc
	switch op {
	case state.OpGenerateSingle:
		prompt := a.st.Prompt
		return func() tea.Msg {
			if err := svc.Generate(context.Background(), prompt); err != nil {
				return failedMsg{op: op, err: err}
			}
			return generatedMsg{op: op, count: 1}
		}
	case state.OpGenerateBulk:
		raw := a.st.Bulk
		return func() tea.Msg {
			n, err := svc.GenerateBulk(context.Background(), raw)
			if err != nil {
				return failedMsg{op: op, err: err}
			}
			return generatedMsg{op: op, count: n}
		}
	case state.OpDeleteAll:
		return func() tea.Msg {
			if err := svc.DeleteAll(context.Background()); err != nil {
				return failedMsg{op: op, err: err}
			}
			return deletedMsg{}
		}
	}
	return nil
}

func (a *App) exportCmd(art article.Article) tea.Cmd {
	dir := a.exportDir
	open := a.openFile
	return func() tea.Msg {
		path, err := render.WriteHTML(art, dir)
		if err != nil {
			return exportedMsg{err: err}
		}
		if err := open(path); err != nil {
			return exportedMsg{path: path, err: err}
		}
		return exportedMsg{path: path}
	}
}

// dispatch runs act through the reducer and starts whatever the transition
// calls for.
func (a *App) dispatch(act state.Action) tea.Cmd {
	prev := a.st
	a.st = state.Reduce(a.st, act)
	a.form.sync(a.st)

	if a.cursor >= len(a.st.Articles) {
		a.cursor = max(0, len(a.st.Articles)-1)
	}
	if a.st.Selected != nil {
		a.reader.show(a.st.Selected, a.logger)
	}

	var cmds []tea.Cmd
	if !prev.Loading && a.st.Loading {
		a.logger.Debug("request started", "op", a.st.Pending.String())
		cmds = append(cmds, a.opCmd(a.st.Pending), a.spinner.Tick)
	}
	if prev.Tab != a.st.Tab {
		if a.st.Tab == state.TabGenerate {
			cmds = append(cmds, a.form.refocus())
		} else {
			a.form.blur()
		}
	}
	return tea.Batch(cmds...)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.layout()
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case articlesLoadedMsg:
		if msg.err != nil && msg.cached {
			a.logger.Warn("loading article snapshot", "err", msg.err)
		}
		// A failed fetch is already logged by the service and comes with
		// the snapshot marked stale
		if msg.cached && a.st.SyncedAt.After(msg.listing.SyncedAt) {
			return a, nil
		}
		return a, a.dispatch(state.ArticlesLoaded{
			Articles: msg.listing.Articles,
			Stale:    msg.listing.Stale,
			SyncedAt: msg.listing.SyncedAt,
		})

	case generatedMsg:
		cmd := a.dispatch(state.Generated{Op: msg.op, Count: msg.count})
		a.cursor = 0
		return a, tea.Batch(cmd, a.refreshCmd())

	case failedMsg:
		a.logger.Error("request failed", "op", msg.op.String(), "err", msg.err)
		return a, a.dispatch(state.Failed{Op: msg.op, Err: msg.err})

	case deletedMsg:
		return a, a.dispatch(state.Deleted{})

	case exportedMsg:
		if msg.err != nil {
			a.logger.Warn("exporting article", "path", msg.path, "err", msg.err)
			return a, a.dispatch(state.Notify{Notice: state.Notice{Kind: state.NoticeError, Text: "Export failed: " + msg.err.Error()}})
		}
		return a, a.dispatch(state.Notify{Notice: state.Notice{Kind: state.NoticeSuccess, Text: "Exported to " + msg.path}})

	case spinner.TickMsg:
		if a.st.Loading {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	// Cursor blink and other widget messages
	if a.st.Tab == state.TabGenerate {
		_, cmd := a.form.update(msg)
		return a, cmd
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	if a.help {
		switch msg.String() {
		case "?", "esc", "q":
			a.help = false
		}
		return a, nil
	}

	if a.st.Confirming {
		switch msg.String() {
		case "y", "Y", "enter":
			return a, a.dispatch(state.Submit{Op: state.OpDeleteAll})
		case "n", "N", "esc", "q":
			return a, a.dispatch(state.CancelDelete{})
		}
		return a, nil
	}

	if msg.String() == "shift+tab" {
		return a, a.dispatch(state.SwitchTab{Tab: nextTab(a.st.Tab)})
	}

	if a.st.Tab == state.TabGenerate {
		return a.handleGenerateKey(msg)
	}
	if a.st.Selected != nil {
		return a.handleReaderKey(msg)
	}
	return a.handleBlogKey(msg)
}

func (a *App) handleGenerateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		return a, a.dispatch(state.Submit{Op: a.form.op()})
	case "tab":
		return a, a.form.cycleFocus()
	case "esc":
		return a, a.dispatch(state.Dismiss{})
	}

	// Inputs stay editable while a request runs; the request already
	// captured what it sends
	act, cmd := a.form.update(msg)
	if act == nil {
		return a, cmd
	}
	return a, tea.Batch(cmd, a.dispatch(act))
}

func (a *App) handleBlogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "j", "down":
		if a.cursor < len(a.st.Articles)-1 {
			a.cursor++
		}
		return a, nil
	case "k", "up":
		if a.cursor > 0 {
			a.cursor--
		}
		return a, nil
	case "g", "home":
		a.cursor = 0
		return a, nil
	case "G", "end":
		a.cursor = max(0, len(a.st.Articles)-1)
		return a, nil
	case "enter":
		if a.cursor < len(a.st.Articles) {
			return a, a.dispatch(state.Select{ID: a.st.Articles[a.cursor].ID})
		}
		return a, nil
	case "r":
		return a, a.refreshCmd()
	case "D":
		return a, a.dispatch(state.AskDelete{})
	case "tab":
		return a, a.dispatch(state.SwitchTab{Tab: state.TabGenerate})
	case "esc":
		return a, a.dispatch(state.Dismiss{})
	case "?":
		a.help = true
		return a, nil
	}
	return a, nil
}

func (a *App) handleReaderKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "backspace", "q":
		return a, a.dispatch(state.Back{})
	case "x":
		return a, a.exportCmd(*a.st.Selected)
	case "?":
		a.help = true
		return a, nil
	}
	return a, a.reader.update(msg)
}

// chrome is the number of rows taken by header, tabs, notice and status bar.
const chrome = 4

func (a *App) layout() {
	contentHeight := a.height - chrome
	if contentHeight < 3 {
		contentHeight = 3
	}
	a.form.resize(a.width, contentHeight)
	// Title and meta lines sit above the viewport
	a.reader.resize(a.width, contentHeight-2)
	if a.st.Selected != nil {
		a.reader.show(a.st.Selected, a.logger)
	}
}

func (a *App) View() string {
	if a.width == 0 {
		return lipgloss.NewStyle().Foreground(colorAccent).Render("  blogdeck")
	}
	if a.help {
		return a.renderHelp()
	}

	contentHeight := a.height - chrome
	if contentHeight < 3 {
		contentHeight = 3
	}

	var body, hints string
	switch {
	case a.st.Confirming:
		body = a.renderConfirm(contentHeight)
		hints = "y delete  n cancel"
	case a.st.Tab == state.TabGenerate && a.st.Loading:
		body = a.renderLoading(contentHeight)
		hints = "ctrl+c quit"
	case a.st.Tab == state.TabGenerate:
		body = a.form.view(a.width)
		hints = "tab field  ctrl+s generate  shift+tab blog  ctrl+c quit"
	case a.st.Selected != nil:
		body = a.reader.view(a.st.Selected)
		hints = "↑/↓ scroll  x export  esc back"
	default:
		body = renderList(a.st.Articles, a.cursor, contentHeight, a.width-2)
		hints = "enter read  r refresh  D delete all  tab generate  ? help  q quit"
		if a.st.Loading {
			hints = a.spinner.View() + " " + loadingText(a.st.Pending)
		}
	}

	body = fitHeight(body, contentHeight)
	return lipgloss.JoinVertical(lipgloss.Left,
		renderHeader(a.apiURL, a.width),
		renderTabs(a.st, a.width),
		body,
		renderNotice(a.st.Notice),
		renderStatusBar(a.st, hints, a.width),
	)
}

func loadingText(op state.Op) string {
	if op == state.OpDeleteAll {
		return "Deleting articles..."
	}
	return "Generating articles... This may take a minute..."
}

func (a *App) renderLoading(height int) string {
	line := a.spinner.View() + " " + loadingText(a.st.Pending)
	return lipgloss.Place(a.width, height, lipgloss.Center, lipgloss.Center, line)
}

func (a *App) renderConfirm(height int) string {
	text := labelStyle.Render("Delete all articles?") + "\n\n" +
		hintStyle.Render("This removes every article on the server.") + "\n\n" +
		"[y] delete   [n] cancel"
	return lipgloss.Place(a.width, height, lipgloss.Center, lipgloss.Center, confirmStyle.Render(text))
}

func (a *App) renderHelp() string {
	title := lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Render("blogdeck")
	dim := helpDimStyle

	help := title + dim.Render(" keyboard shortcuts") + "\n\n" +
		dim.Render("Generate tab") + "\n" +
		"  tab           Switch between prompt and bulk input\n" +
		"  ctrl+s        Generate from the focused input\n" +
		"  esc           Dismiss message\n\n" +
		dim.Render("Blog tab") + "\n" +
		"  j/k, ↑/↓     Navigate articles\n" +
		"  enter         Read article\n" +
		"  x             Export open article to HTML\n" +
		"  r             Refresh list\n" +
		"  D             Delete all articles\n\n" +
		dim.Render("General") + "\n" +
		"  shift+tab     Switch tab\n" +
		"  ?             Toggle this help\n" +
		"  q, ctrl+c    Quit"

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, helpCardStyle.Render(help))
}

func fitHeight(s string, height int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// Run starts the TUI application.
func Run(opts RunOpts) error {
	app := NewApp(opts)
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
