package ui

import (
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"multiselect/internal/config"
	"multiselect/internal/domain"
	"multiselect/internal/eventbus"
	"multiselect/internal/ui/coordinator"
	"multiselect/internal/ui/dropdown"
	"multiselect/internal/ui/handlers"
	"multiselect/internal/ui/services/refs"
	"multiselect/internal/ui/views"
)

// Model is the terminal host: a row of selected-item tokens followed by a
// dropdown trigger. It owns the element that has terminal focus and lets the
// engine move it through registered refs.
type Model struct {
	bus       eventbus.EventBus
	config    *config.Config
	configSvc config.ConfigService

	engine   *coordinator.Coordinator[dropdown.Item]
	dropdown *dropdown.Model

	// UI-specific state
	width       int
	height      int
	help        help.Model
	keys        keyMap
	showHelp    bool
	showLog     bool
	inPagerMode bool
	focused     domain.Role // element holding terminal focus
	focusCmds   []tea.Cmd   // commands from focus changes made inside refs

	// Handlers
	renderer     *views.Renderer
	eventHandler *handlers.EventHandler
	helpRender   *HelpRenderer
	helpOps      *HelpOps

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config, configSvc config.ConfigService) *Model {
	if bus == nil {
		bus = eventbus.New()
	}
	kind, err := cfg.TriggerKind()
	if err != nil {
		log.Printf("Invalid trigger kind, using input: %v", err)
		kind = domain.TriggerInput
	}

	candidates := make([]dropdown.Item, 0, len(cfg.Items))
	byLabel := make(map[string]dropdown.Item, len(cfg.Items))
	for _, label := range cfg.Items {
		it := dropdown.Item{ID: strings.ToLower(label), Label: label}
		candidates = append(candidates, it)
		byLabel[label] = it
	}
	initial := make([]dropdown.Item, 0, len(cfg.Selected))
	for _, label := range cfg.Selected {
		it, ok := byLabel[label]
		if !ok {
			it = dropdown.Item{ID: strings.ToLower(label), Label: label}
		}
		initial = append(initial, it)
	}

	m := &Model{
		bus:          bus,
		config:       cfg,
		configSvc:    configSvc,
		dropdown:     dropdown.New(kind, candidates),
		help:         help.New(),
		keys:         newKeyMap(cfg.Keys()),
		showHelp:     cfg.UISettings.ShowHelp,
		renderer:     views.NewRenderer(),
		eventHandler: handlers.NewEventHandler(cfg.UISettings.EventLogLimit, cfg.Debug),
		helpRender:   NewHelpRenderer(),
	}
	m.eventHandler.Attach(bus)

	m.engine = coordinator.New(
		coordinator.WithBus[dropdown.Item](bus),
		coordinator.WithInitialItems[dropdown.Item](initial),
		coordinator.WithEqual[dropdown.Item](func(a, b dropdown.Item) bool { return a.ID == b.ID }),
		coordinator.WithKeymap[dropdown.Item](cfg.Keys()),
		coordinator.WithAllowDuplicates[dropdown.Item](cfg.AllowDuplicates),
		coordinator.WithTriggerKind[dropdown.Item](kind),
		coordinator.WithDebug[dropdown.Item](cfg.Debug),
		coordinator.WithOnChange[dropdown.Item](m.onSelectionChange),
	)

	if !cfg.AllowDuplicates {
		m.dropdown.SetExclude(m.engine.Selection.Contains)
	}

	m.focusElement(domain.TriggerRole())
	m.focusCmds = nil // Init starts the blink
	m.mountRefs()
	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)
}

// Engine exposes the interaction controller
func (m *Model) Engine() *coordinator.Coordinator[dropdown.Item] {
	return m.engine
}

// Focused returns the element holding terminal focus
func (m *Model) Focused() domain.Role {
	return m.focused
}

// Init starts the caret blink on the initially focused trigger
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := m.update(msg)
	// Refs are re-registered after every update, like a render pass
	m.mountRefs()
	if focusCmd := m.drainFocusCmds(); focusCmd != nil {
		cmd = tea.Batch(cmd, focusCmd)
	}
	return model, cmd
}

func (m *Model) drainFocusCmds() tea.Cmd {
	if len(m.focusCmds) == 0 {
		return nil
	}
	cmds := m.focusCmds
	m.focusCmds = nil
	return tea.Batch(cmds...)
}

func (m *Model) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case pagerMsg:
		if msg.err != nil {
			// Pager failed: log only; do not surface in status bar
			log.Printf("Pager failed: %v", msg.err)
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	case quitMsg:
		if msg.saveConfig {
			m.saveSelection()
		}
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, func() tea.Msg {
			return quitMsg{saveConfig: m.config.UISettings.AutosaveOnExit}
		}
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil
	case key.Matches(msg, m.keys.Log):
		m.showLog = !m.showLog
		return m, nil
	case key.Matches(msg, m.keys.Pager):
		return m, m.fetchPager()
	}

	if m.showLog {
		if msg.String() == "esc" {
			m.showLog = false
		}
		return m, nil
	}

	if m.focused.IsTrigger() {
		return m.handleTriggerKey(msg)
	}
	return m.handleTokenKey(msg)
}

// handleTriggerKey offers the key to the engine first and hands what it does
// not consume to the dropdown.
func (m *Model) handleTriggerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	props := m.engine.TriggerProps()
	if props.OnKeyDown(msg, m.dropdown.IsOpen(), m.dropdown.CaretAtStart()) {
		return m, nil
	}

	res, cmd := m.dropdown.HandleKey(msg)
	if res.Action == dropdown.ActionConfirmed {
		m.bus.Publish(domain.ItemConfirmedEvent{Label: res.Item.Label})
		m.engine.AddSelectedItem(res.Item)
		m.dropdown.ClearSelection()
	}
	return m, cmd
}

func (m *Model) handleTokenKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	index := m.focused.Index()
	props := m.engine.ItemProps(index)
	if props.OnKeyDown(msg, m.dropdown.IsOpen()) {
		return m, nil
	}

	if key.Matches(msg, m.keys.Tab) {
		m.focusElement(domain.TriggerRole())
		m.engine.HandleTriggerClick()
	}
	return m, nil
}

// focusElement is what a registered ref does when the engine focuses it
func (m *Model) focusElement(role domain.Role) {
	m.focused = role
	if role.IsTrigger() {
		if cmd := m.dropdown.Focus(); cmd != nil {
			m.focusCmds = append(m.focusCmds, cmd)
		}
	} else {
		m.dropdown.Blur()
	}
}

// mountRefs registers one ref per rendered element
func (m *Model) mountRefs() {
	m.engine.RegisterElementRef(domain.TriggerRole(), refs.RefFunc(func() {
		m.focusElement(domain.TriggerRole())
	}))
	for i := 0; i < m.engine.Selection.Len(); i++ {
		role := domain.ItemRole(i)
		m.engine.RegisterElementRef(role, refs.RefFunc(func() {
			m.focusElement(role)
		}))
	}

	// Terminal focus cannot stay on a token that no longer exists
	if !m.focused.IsTrigger() && m.focused.Index() >= m.engine.Selection.Len() {
		m.focusElement(domain.TriggerRole())
	}
}

func (m *Model) onSelectionChange(e coordinator.ChangeEvent[dropdown.Item]) {
	m.dropdown.Refresh()
	if m.config.Debug {
		log.Printf("selection %s: %d items, focus %s", e.Type, len(e.Items), e.Focus)
	}
}

// fetchPager returns a command that shows help and the event log in ov
func (m *Model) fetchPager() tea.Cmd {
	if m.helpOps == nil {
		return nil
	}
	content := m.helpRender.RenderHelpContent(m.keys) + "\nEvent log\n\n" + m.eventHandler.String()
	return func() tea.Msg {
		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := m.helpOps.ShowInPager(content)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return pagerMsg{err: err}
	}
}

// saveSelection writes the current selection back to the config file
func (m *Model) saveSelection() {
	if m.configSvc == nil {
		return
	}
	snap := m.engine.GetSnapshot()
	m.config.Selected = make([]string, 0, len(snap.Items))
	for _, it := range snap.Items {
		m.config.Selected = append(m.config.Selected, it.Label)
	}
	if err := m.configSvc.Save(m.config); err != nil {
		log.Printf("Failed to save config: %v", err)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}

	snap := m.engine.GetSnapshot()
	labels := make([]string, len(snap.Items))
	for i, it := range snap.Items {
		labels[i] = it.Label
	}
	options := m.dropdown.Items()
	optionLabels := make([]string, len(options))
	for i, it := range options {
		optionLabels[i] = it.Label
	}

	// Highlight the element that really has terminal focus
	focus := domain.TriggerFocus()
	if !m.focused.IsTrigger() {
		focus = domain.ItemFocus(m.focused.Index())
	}

	return m.renderer.Render(views.ViewState{
		Width:         m.width,
		Height:        m.height,
		Items:         labels,
		Focus:         focus,
		TriggerKind:   m.dropdown.Kind(),
		InputView:     m.dropdown.InputView(),
		DropdownOpen:  m.dropdown.IsOpen(),
		Options:       optionLabels,
		Highlight:     m.dropdown.Cursor(),
		MenuRows:      8,
		StatusMessage: m.eventHandler.Last(),
		ShowHelp:      m.showHelp,
		HelpModel:     m.help,
		HelpKeys:      m.keys,
		ShowLog:       m.showLog,
		LogContent:    m.eventHandler.String(),
	})
}
