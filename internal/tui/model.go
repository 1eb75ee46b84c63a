package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/centradial/centradial/internal/auth"
	"github.com/centradial/centradial/internal/common"
	"github.com/centradial/centradial/internal/contacts"
	"github.com/centradial/centradial/internal/cooldown"
	"github.com/centradial/centradial/internal/handoff"
	"github.com/centradial/centradial/internal/llm"
	"github.com/centradial/centradial/internal/model"
	"github.com/centradial/centradial/internal/review"
	"github.com/centradial/centradial/internal/tui/components"
	"github.com/centradial/centradial/internal/tui/themes"
)

// View is the current screen.
type View int

const (
	ViewLogin View = iota
	ViewHome
	ViewAnalyzer
	ViewDashboard
)

// Modal is the overlay on top of the current view. At most one is visible.
type Modal int

const (
	ModalNone Modal = iota
	ModalWhatsApp
	ModalTimer
)

// Model holds the main TUI state.
type Model struct {
	theme     themes.Theme
	auth      *auth.Gate
	client    llm.Client
	contacts  *contacts.Manager
	user      *model.UserRecord
	workflow  *review.Workflow
	countdown *cooldown.Gate
	login     components.LoginModel
	analyzer  components.AnalyzerModel
	dashboard components.DashboardModel
	timer     components.TimerModel
	whatsapp  components.WhatsAppModel
	keymap    KeyMap
	ticks     int
	width     int
	height    int
	view      View
	modal     Modal
	showHelp  bool
	quitting  bool
}

// newModel creates a model from the given configuration.
func newModel(cfg Config) Model {
	ticks := cfg.CooldownTicks
	if ticks < 1 {
		ticks = cooldown.DefaultTicks
	}

	m := Model{
		theme:     cfg.Theme,
		auth:      cfg.Auth,
		client:    cfg.Client,
		contacts:  cfg.Contacts,
		user:      cfg.User,
		workflow:  review.New(),
		countdown: cooldown.New(ticks),
		login:     components.NewLoginModel(cfg.Theme),
		analyzer:  components.NewAnalyzerModel(cfg.Theme),
		dashboard: components.NewDashboardModel(cfg.Theme),
		keymap:    DefaultKeyMap(),
		ticks:     ticks,
		view:      ViewLogin,
	}

	if cfg.User != nil {
		m.view = ViewHome
		m.dashboard.SetScores(cfg.User.Scores)
		m.dashboard.SetContacts(cfg.User.TrustedContacts)
	}
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.EnterAltScreen
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.handleResize()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.analyzer, cmd = m.analyzer.Update(msg)
		return m, cmd

	case components.LoginSubmittedMsg:
		return m, m.submitLogin(msg.Username, msg.Password)

	case loginResultMsg:
		if msg.err != nil {
			m.login.SetError(common.UserMessage(msg.err, "Could not sign in. Please try again."))
			return m, nil
		}
		m.user = msg.user
		m.view = ViewHome
		m.dashboard.SetScores(msg.user.Scores)
		m.dashboard.SetContacts(msg.user.TrustedContacts)
		return m, nil

	case logoutDoneMsg:
		if msg.err != nil {
			common.LogError(msg.err, "logging out", nil)
		}
		m.user = nil
		m.view = ViewLogin
		m.modal = ModalNone
		m.countdown.Cancel()
		m.workflow.Reset()
		m.login.Reset()
		m.analyzer.Reset()
		return m, nil

	case components.FileChosenMsg:
		return m, loadFile(msg.Path)

	case fileLoadedMsg:
		return m.handleFileLoaded(msg)

	case extractionResultMsg:
		return m.handleExtractionResult(msg)

	case components.SentenceChosenMsg:
		token, err := m.workflow.BeginAssessment(msg.Sentence)
		if err != nil {
			return m, nil
		}
		busy := m.analyzer.SetBusy("Checking this sentence...")
		return m, tea.Batch(busy, m.assess(token, msg.Sentence))

	case assessmentResultMsg:
		return m.handleAssessmentResult(msg)

	case components.FileRemovedMsg:
		m.workflow.RemoveFile()
		m.analyzer.Reset()
		return m, nil

	case components.HandoffRequestedMsg:
		return m.handleHandoffRequest()

	case components.HandoffComposedMsg:
		return m.handleHandoffComposed(msg)

	case components.HandoffDismissedMsg:
		m.modal = ModalNone
		return m, nil

	case components.TimerCancelledMsg:
		m.countdown.Cancel()
		m.modal = ModalNone
		return m, nil

	case cooldownTickMsg:
		return m.handleCooldownTick()

	case components.AddContactMsg:
		return m, m.addContact(msg.Name, msg.Phone)

	case components.RemoveContactMsg:
		return m, m.removeContact(msg.ID)

	case contactsUpdatedMsg:
		if msg.err != nil {
			m.dashboard.SetError(common.UserMessage(msg.err, "Could not update your contacts."))
			return m, nil
		}
		m.dashboard.SetError("")
		m.dashboard.SetNotice("")
		m.dashboard.SetContacts(msg.contacts)
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keymap.ForceQuit) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.modal != ModalNone {
		return m.handleModalKey(msg)
	}

	switch m.view {
	case ViewLogin:
		var cmd tea.Cmd
		m.login, cmd = m.login.Update(msg)
		return m, cmd

	case ViewHome:
		return m.handleHomeKey(msg)

	case ViewAnalyzer:
		if key.Matches(msg, m.keymap.Back) {
			m.view = ViewHome
			return m, nil
		}
		var cmd tea.Cmd
		m.analyzer, cmd = m.analyzer.Update(msg)
		return m, cmd

	case ViewDashboard:
		if key.Matches(msg, m.keymap.Back) && !m.dashboard.Adding() {
			m.view = ViewHome
			return m, nil
		}
		var cmd tea.Cmd
		m.dashboard, cmd = m.dashboard.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleHomeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keymap.Help):
		m.showHelp = !m.showHelp
	case key.Matches(msg, m.keymap.Analyzer):
		m.view = ViewAnalyzer
	case key.Matches(msg, m.keymap.Dashboard):
		m.view = ViewDashboard
	case key.Matches(msg, m.keymap.Logout):
		return m, m.logout()
	}
	return m, nil
}

func (m Model) handleModalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.modal {
	case ModalWhatsApp:
		m.whatsapp, cmd = m.whatsapp.Update(msg)
	case ModalTimer:
		m.timer, cmd = m.timer.Update(msg)
	}
	return m, cmd
}

func (m Model) handleFileLoaded(msg fileLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.analyzer.SetError("Could not read that file. Please check the path.")
		return m, nil
	}

	if err := m.workflow.SelectFile(msg.name, msg.mimeType, msg.data); err != nil {
		return m, nil
	}
	m.analyzer.SetFile(msg.name)
	m.analyzer.SetSentences(nil)
	m.analyzer.SetResult(nil)

	token, err := m.workflow.BeginExtraction()
	if err != nil {
		return m, nil
	}
	busy := m.analyzer.SetBusy("Reading the conversation...")
	return m, tea.Batch(busy, m.extract(token, msg.data, msg.mimeType))
}

func (m Model) handleExtractionResult(msg extractionResultMsg) (tea.Model, tea.Cmd) {
	if !m.workflow.CompleteExtraction(msg.token, msg.sentences, msg.err) {
		return m, nil
	}
	m.analyzer.ClearBusy()

	if msg.err != nil {
		m.analyzer.SetError(common.UserMessage(msg.err, "The conversation could not be read. You can try again."))
		return m, nil
	}
	m.analyzer.SetSentences(m.workflow.Sentences())
	m.analyzer.SetResult(nil)
	return m, nil
}

func (m Model) handleAssessmentResult(msg assessmentResultMsg) (tea.Model, tea.Cmd) {
	if !m.workflow.CompleteAssessment(msg.token, msg.record, msg.err) {
		return m, nil
	}
	m.analyzer.ClearBusy()

	if msg.err != nil {
		m.analyzer.SetError(common.UserMessage(msg.err, "This sentence could not be checked right now."))
	}
	m.analyzer.SetResult(m.workflow.Selected())
	return m, nil
}

func (m Model) handleHandoffRequest() (tea.Model, tea.Cmd) {
	if m.user == nil {
		return m, nil
	}

	// Without a trusted contact there is nobody to hand off to; send the
	// user to the dashboard to add one.
	if len(m.user.TrustedContacts) == 0 {
		m.view = ViewDashboard
		m.dashboard.SetNotice("Add a trusted contact first, then you can share from a message check.")
		return m, nil
	}

	m.whatsapp = components.NewWhatsAppModel(m.theme, m.user.TrustedContacts)
	m.modal = ModalWhatsApp
	return m, nil
}

func (m Model) handleHandoffComposed(msg components.HandoffComposedMsg) (tea.Model, tea.Cmd) {
	link := handoff.Compose(msg.Contact.Phone, msg.Template.Message)
	m.countdown.Start(func() {
		if err := handoff.Open(link); err != nil {
			common.LogError(err, "opening hand-off link", common.Fields{"contact": msg.Contact.Name})
		}
	})

	m.timer = components.NewTimerModel(m.theme, msg.Contact.Name, m.ticks)
	m.modal = ModalTimer
	return m, tick()
}

func (m Model) handleCooldownTick() (tea.Model, tea.Cmd) {
	if m.modal != ModalTimer || !m.countdown.Active() {
		return m, nil
	}

	remaining, fired := m.countdown.Tick()
	if fired {
		m.modal = ModalNone
		return m, nil
	}
	m.timer.SetRemaining(remaining)
	return m, tick()
}

// handleResize adjusts component sizes when the terminal resizes.
func (m *Model) handleResize() {
	m.login.Resize(m.width, m.height)
	m.analyzer.Resize(m.width, m.height)
	m.dashboard.Resize(m.width, m.height)
}
