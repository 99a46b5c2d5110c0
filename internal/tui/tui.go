// Package tui renders the blackjack table in the terminal. It is a pure
// presentation layer: every game mutation goes through the engine's
// command methods and every render reads back published snapshots, so the
// engine stays synchronous and the pacing lives here.
package tui

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/store"
)

// clearFlashMsg expires the transient warning line
type clearFlashMsg struct{}

// cueCollector subscribes to the engine bus and gathers sound cues
// emitted during a command so the UI can ring the bell afterwards.
type cueCollector struct {
	cues []game.SoundCue
}

func (c *cueCollector) OnEvent(event game.Event) {
	if cue, ok := event.(game.SoundCueEvent); ok {
		c.cues = append(c.cues, cue.Cue)
	}
}

func (c *cueCollector) drain() []game.SoundCue {
	cues := c.cues
	c.cues = nil
	return cues
}

// Model is the Bubble Tea model for the table
type Model struct {
	table  *game.Table
	store  *store.Store
	logger *log.Logger
	cfg    *Config

	theme   Theme
	avatar  string
	soundOn bool

	betInput    textinput.Model
	historyView viewport.Model
	showHistory bool

	cues  *cueCollector
	flash string

	width, height int
	quitting      bool
}

// New creates the table UI bound to an engine and its save store
func New(table *game.Table, st *store.Store, cfg *Config, logger *log.Logger) *Model {
	ti := textinput.New()
	ti.Placeholder = strconv.Itoa(cfg.DefaultBet)
	ti.Prompt = "Bet $ "
	ti.CharLimit = 7
	ti.Width = 12
	ti.Focus()

	vp := viewport.New(60, 12)

	prefs := st.Data().Prefs
	avatar := prefs.Avatar
	if avatar == "" {
		avatar = cfg.Avatar
	}
	theme := prefs.Theme
	if theme == "" {
		theme = cfg.Theme
	}

	m := &Model{
		table:       table,
		store:       st,
		logger:      logger.WithPrefix("tui"),
		cfg:         cfg,
		theme:       themeFor(theme),
		avatar:      avatar,
		soundOn:     !cfg.NoSound,
		betInput:    ti,
		historyView: vp,
		cues:        &cueCollector{},
	}
	table.EventBus().Subscribe(m.cues)
	return m
}

// Run starts the program in the alternate screen
func Run(m *Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.historyView.Width = min(msg.Width-4, 76)
		m.historyView.Height = max(msg.Height-8, 4)
		return m, nil

	case clearFlashMsg:
		m.flash = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.betInput, cmd = m.betInput.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" || msg.String() == "esc" {
		m.quitting = true
		return m, tea.Quit
	}

	if m.showHistory {
		switch msg.String() {
		case "v", "q":
			m.showHistory = false
			return m, nil
		}
		var cmd tea.Cmd
		m.historyView, cmd = m.historyView.Update(msg)
		return m, cmd
	}

	betting := m.table.Phase() == game.PhaseBetting || m.table.Phase() == game.PhaseRoundOver

	switch msg.String() {
	case "t":
		return m, m.toggleTheme()
	case "a":
		return m, m.cycleAvatar()
	case "v":
		m.historyView.SetContent(m.historyContent())
		m.historyView.GotoTop()
		m.showHistory = true
		return m, nil
	case "q":
		m.quitting = true
		return m, tea.Quit
	}

	if betting {
		switch msg.String() {
		case "enter":
			return m, m.startRound()
		case "r":
			return m, m.command(m.table.ResetBalance)
		}
		var cmd tea.Cmd
		m.betInput, cmd = m.betInput.Update(msg)
		return m, cmd
	}

	if m.table.Phase() == game.PhasePlayerTurn {
		switch msg.String() {
		case "h":
			return m, m.command(m.table.Hit)
		case "s":
			return m, m.command(m.table.Stand)
		case "d":
			return m, m.command(m.table.DoubleDown)
		case "p":
			return m, m.command(m.table.Split)
		}
	}
	return m, nil
}

// startRound places the bet and, if accepted, sequences the deal
func (m *Model) startRound() tea.Cmd {
	raw := strings.TrimSpace(m.betInput.Value())
	if raw == "" {
		raw = strconv.Itoa(m.cfg.DefaultBet)
	}
	amount, err := strconv.Atoi(raw)
	if err != nil {
		return m.warn("Bet must be a number")
	}
	if err := m.table.PlaceBet(amount); err != nil {
		return m.rejected(err)
	}
	if err := m.table.Deal(); err != nil {
		return m.rejected(err)
	}
	return m.afterCommand()
}

// command runs an engine command and reports rejections without mutating
// anything on the UI side.
func (m *Model) command(fn func() error) tea.Cmd {
	if err := fn(); err != nil {
		return m.rejected(err)
	}
	return m.afterCommand()
}

func (m *Model) rejected(err error) tea.Cmd {
	switch {
	case errors.Is(err, game.ErrInsufficientFunds):
		return m.warn("Not enough balance for that")
	case errors.Is(err, game.ErrInvalidCommand):
		return m.warn("You can't do that right now")
	default:
		m.logger.Error("command failed", "error", err)
		return m.warn(err.Error())
	}
}

func (m *Model) warn(text string) tea.Cmd {
	m.flash = text
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg { return clearFlashMsg{} })
}

// afterCommand drains collected sound cues and rings the bell once if
// anything audible happened.
func (m *Model) afterCommand() tea.Cmd {
	cues := m.cues.drain()
	if !m.soundOn || len(cues) == 0 {
		return nil
	}
	return func() tea.Msg {
		fmt.Fprint(os.Stderr, "\a")
		return nil
	}
}

func (m *Model) toggleTheme() tea.Cmd {
	if m.theme.Name == "dark" {
		m.theme = LightTheme()
	} else {
		m.theme = DarkTheme()
	}
	return m.savePrefs()
}

func (m *Model) cycleAvatar() tea.Cmd {
	for i, a := range Avatars {
		if a == m.avatar {
			m.avatar = Avatars[(i+1)%len(Avatars)]
			return m.savePrefs()
		}
	}
	m.avatar = Avatars[0]
	return m.savePrefs()
}

func (m *Model) savePrefs() tea.Cmd {
	err := m.store.SavePrefs(store.Preferences{Theme: m.theme.Name, Avatar: m.avatar})
	if err != nil {
		m.logger.Warn("failed to save preferences", "error", err)
		return m.warn("Couldn't save your preferences")
	}
	return nil
}

// View renders the table
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showHistory {
		return m.renderHistory()
	}

	state := m.table.State()
	var b strings.Builder

	header := fmt.Sprintf(" BLACKJACK %s ", m.avatar)
	balance := m.theme.Balance.Render(fmt.Sprintf("Balance $%d", state.Balance))
	b.WriteString(m.theme.Header.Render(header) + "  " + balance + "\n\n")

	b.WriteString(m.renderDealer(state) + "\n")
	b.WriteString(m.renderHands(state) + "\n")

	if state.Message != "" {
		b.WriteString(m.theme.Message.Render(state.Message) + "\n")
	}
	if m.flash != "" {
		b.WriteString(m.theme.Lose.Render(m.flash) + "\n")
	}
	b.WriteString("\n" + m.renderControls(state))
	return b.String()
}

func (m *Model) renderDealer(state game.TableState) string {
	score := "?"
	if len(state.Dealer.Cards) > 0 && !state.Dealer.HoleDown {
		score = strconv.Itoa(state.Dealer.Score)
	}
	label := m.theme.Felt.Render(fmt.Sprintf("Dealer (%s)", score))
	if len(state.Dealer.Cards) == 0 {
		return label + "\n" + m.theme.Dim.Render("  waiting for a bet") + "\n"
	}
	return label + "\n" + m.renderCards(state.Dealer.Cards) + "\n"
}

func (m *Model) renderHands(state game.TableState) string {
	if len(state.Hands) == 0 {
		return ""
	}
	var b strings.Builder
	for i, h := range state.Hands {
		marker := "  "
		if i == state.CurrentHand && h.Status == game.StatusActive && state.Phase == game.PhasePlayerTurn {
			marker = m.theme.Active.Render("▶ ")
		}
		label := fmt.Sprintf("Hand %d — %d", i+1, h.Score)
		if h.Status != game.StatusActive {
			label += fmt.Sprintf(" (%s)", h.Status)
		}
		bet := m.theme.Bet.Render(fmt.Sprintf("$%d", h.Bet))
		b.WriteString(marker + m.theme.Felt.Render(label) + " " + bet + "\n")
		b.WriteString(m.renderCards(h.Cards) + "\n")
	}
	return b.String()
}

func (m *Model) renderCards(cards []deck.Card) string {
	rendered := make([]string, len(cards))
	for i, c := range cards {
		rendered[i] = m.renderCard(c)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m *Model) renderCard(c deck.Card) string {
	if !c.FaceUp {
		return m.theme.FaceDown.Render("? ?")
	}
	if c.IsRed() {
		return m.theme.RedCard.Render(c.String())
	}
	return m.theme.BlackCard.Render(c.String())
}

func (m *Model) renderControls(state game.TableState) string {
	switch state.Phase {
	case game.PhaseBetting, game.PhaseRoundOver:
		return m.betInput.View() + "\n" +
			m.theme.Help.Render("enter deal · r reset balance · t theme · a avatar · v history · q quit")
	case game.PhasePlayerTurn:
		return m.theme.Help.Render("h hit · s stand · d double · p split · v history · q quit")
	default:
		return m.theme.Help.Render("v history · q quit")
	}
}

func (m *Model) renderHistory() string {
	title := m.theme.Header.Render(" ROUND HISTORY ")
	help := m.theme.Help.Render("v close · ↑/↓ scroll")
	return title + "\n\n" + m.historyView.View() + "\n" + help
}

func (m *Model) historyContent() string {
	entries := m.table.History()
	if len(entries) == 0 {
		return m.theme.Dim.Render("No rounds played yet.")
	}
	var b strings.Builder
	for _, e := range entries {
		b.WriteString(m.theme.Balance.Render(e.Timestamp.Format("2006-01-02 15:04:05")) + "\n")
		for i, h := range e.PlayerHands {
			b.WriteString(fmt.Sprintf("  Hand %d: %s (score %d, bet $%d, %s)\n",
				i+1, strings.Join(h.Cards, " "), h.Score, h.Bet, h.Outcome))
		}
		b.WriteString(fmt.Sprintf("  Dealer: %s (score %d)\n",
			strings.Join(e.Dealer.Cards, " "), e.Dealer.Score))
		b.WriteString("  " + m.theme.Message.Render(e.Result) + "\n\n")
	}
	return b.String()
}
