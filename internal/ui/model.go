package ui

import (
	"reflect"
	"time"

	"github.com/atomicstack/pathtree/internal/data/dispatcher"
	"github.com/atomicstack/pathtree/internal/source"
	"github.com/atomicstack/pathtree/internal/theme"
	"github.com/atomicstack/pathtree/internal/tree"
	"github.com/atomicstack/pathtree/internal/ui/command"
	uistate "github.com/atomicstack/pathtree/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a Model.
type Options struct {
	// Root is the tree to display. A nil Root starts from an empty tree that
	// Stream fills in.
	Root *tree.Node
	// Collapsed seeds the collapse state. The model works on its own copy.
	Collapsed *tree.CollapseState
	Separator string
	// SourceName labels the header. It defaults to the stream name.
	SourceName    string
	Width         int
	Height        int
	ShowFooter    bool
	CollapseDepth int
	Stream        *source.Stream
}

// Model implements the Bubble Tea model for the tree browser.
type Model struct {
	root       *tree.Node
	collapsed  *tree.CollapseState
	separator  string
	sourceName string
	view       *uistate.Viewport

	// visible and total are cached counts for the current collapse state.
	visible int
	total   int

	stream        *source.Stream
	dispatcher    *dispatcher.Dispatcher
	collapseDepth int
	seeded        map[string]struct{}

	loading    bool
	searching  bool
	showHelp   bool
	errMsg     string
	infoMsg    string
	infoExpire time.Time

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool

	searchCursor      cursor.Model
	searchCursorDirty bool

	handlers map[reflect.Type]msgHandler
	bus      *command.Bus
}

// NewModel initialises the UI state from opts.
func NewModel(opts Options) *Model {
	root := opts.Root
	if root == nil {
		root = tree.New()
	}
	collapsed := opts.Collapsed.Clone()
	separator := opts.Separator
	if separator == "" {
		separator = tree.DefaultSeparator
	}
	m := &Model{
		root:          root,
		collapsed:     collapsed,
		separator:     separator,
		sourceName:    opts.SourceName,
		view:          uistate.NewViewport(),
		stream:        opts.Stream,
		dispatcher:    dispatcher.New(root, separator),
		collapseDepth: opts.CollapseDepth,
		seeded:        map[string]struct{}{},
		showFooter:    opts.ShowFooter,
		bus:           command.New(),
	}
	if m.stream != nil {
		m.loading = true
		if m.sourceName == "" {
			m.sourceName = m.stream.Name()
		}
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Search != nil {
		c.TextStyle = styles.Search.Copy()
	}
	c.SetChar(" ")
	m.searchCursor = c
	m.seedCollapsed()
	m.refresh()
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if m.stream != nil {
		cmds = append(cmds, waitForSourceEvent(m.stream))
	}
	if cmd := m.searchCursor.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if m.searching {
		if cmd := m.updateSearchCursorModel(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(sourceEventMsg{}):    m.handleSourceEventMsg,
		reflect.TypeOf(sourceDoneMsg{}):     m.handleSourceDoneMsg,
		reflect.TypeOf(actionResult{}):      m.handleActionResultMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.searchCursorDirty {
		m.searchCursorDirty = false
		m.searchCursor.Blink = false
		if cmd := m.searchCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// refresh recomputes the cached counts after the tree or the collapse state
// changed and keeps the cursor in range.
func (m *Model) refresh() {
	m.visible = tree.CountVisible(m.root, m.collapsed)
	m.total = m.dispatcher.Nodes()
	m.view.SetTotal(m.visible)
	m.syncViewport()
}

// seedCollapsed applies the initial collapse depth to nodes that gained
// children since the last call. A node is seeded once, so nodes the user
// expanded stay expanded while input keeps arriving.
func (m *Model) seedCollapsed() {
	if m.collapseDepth < 1 {
		return
	}
	tree.Walk(m.root, func(n *tree.Node, coord tree.Coordinate) bool {
		if coord.Depth() < m.collapseDepth {
			return true
		}
		if !n.HasChildren() {
			return false
		}
		key := coord.Key()
		if _, ok := m.seeded[key]; !ok {
			m.seeded[key] = struct{}{}
			m.collapsed.Collapse(coord)
		}
		return false
	})
}

// Cursor returns the visible line index under the cursor.
func (m *Model) Cursor() int {
	return m.view.Cursor
}
