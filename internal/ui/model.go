package ui

import (
	"context"
	"reflect"

	"github.com/atomicstack/tokencalc/internal/data/dispatcher"
	"github.com/atomicstack/tokencalc/internal/source"
	"github.com/atomicstack/tokencalc/internal/store"
	"github.com/atomicstack/tokencalc/internal/theme"
	"github.com/atomicstack/tokencalc/internal/ui/command"
	uistate "github.com/atomicstack/tokencalc/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const appTitle = "tokencalc"

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures the model. Zero Width/Height follow the terminal size.
type Options struct {
	Width      int
	Height     int
	ShowFooter bool
	Blink      bool
	Mouse      bool
	Context    context.Context
}

// Model implements the Bubble Tea model for the expression input.
type Model struct {
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	mouse       bool
	blink       bool
	ctx         context.Context
	errMsg      string

	input      store.InputStore
	adapter    *source.Adapter
	dispatcher *dispatcher.Dispatcher
	bus        *command.Bus

	caret     uistate.Caret
	highlight uistate.Highlight

	cursor      cursor.Model
	cursorDirty bool
	spinner     spinner.Model

	handlers map[reflect.Type]msgHandler
}

// NewModel wires the model to the suggestion adapter and the input store.
func NewModel(opts Options, adapter *source.Adapter, input store.InputStore) *Model {
	if input == nil {
		input = store.NewInputStore(nil)
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	m := &Model{
		showFooter: opts.ShowFooter,
		mouse:      opts.Mouse,
		blink:      opts.Blink,
		ctx:        ctx,
		input:      input,
		adapter:    adapter,
		dispatcher: dispatcher.New(adapter, input),
		bus:        command.New(),
		caret:      uistate.At(len([]rune(input.Text()))),
		highlight:  uistate.NewHighlight(),
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
	if styles.Input != nil {
		c.TextStyle = styles.Input.Copy()
	}
	c.SetChar(" ")
	if !m.blink {
		c.SetMode(cursor.CursorStatic)
	}
	m.cursor = c
	m.spinner = spinner.New(spinner.WithSpinner(spinner.MiniDot))
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface. It starts the one-shot fetch of
// the suggestion list.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if cmd := m.startFetch(); cmd != nil {
		cmds = append(cmds, cmd, m.spinner.Tick)
	}
	if cmd := m.cursor.Focus(); cmd != nil {
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
	if cmd := m.updateCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
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
		reflect.TypeOf(tea.KeyMsg{}):           m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):         m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}):    m.handleWindowSizeMsg,
		reflect.TypeOf(spinner.TickMsg{}):      m.handleSpinnerTickMsg,
		reflect.TypeOf(suggestionsLoadedMsg{}): m.handleSuggestionsLoadedMsg,
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
	if m.cursorDirty {
		m.cursorDirty = false
		m.cursor.Blink = false
		if cmd := m.cursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Text returns the current input text.
func (m *Model) Text() string {
	return m.input.Text()
}

// Caret returns the caret and selection of the input.
func (m *Model) Caret() uistate.Caret {
	return m.caret
}
