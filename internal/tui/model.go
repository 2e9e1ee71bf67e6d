// Package tui provides the Bubble Tea drill interface.
package tui

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/kmori/sightswipe/internal/drill"
	"github.com/kmori/sightswipe/internal/model"
	"github.com/kmori/sightswipe/internal/ranking"
	"github.com/kmori/sightswipe/internal/speech"
	"github.com/kmori/sightswipe/internal/translate"
)

const (
	modeHome = iota
	modeRanking
	modeSession
	modeFatal
)

// reviewSetSize is how many weak words a review set drills.
const reviewSetSize = 20

// ListSource is a selectable word list on the home screen.
type ListSource struct {
	ID    string
	Words []string
}

// Model implements the Bubble Tea drill UI.
type Model struct {
	cfg     model.DrillConfig
	ctrl    *drill.Controller
	speaker *speech.Speaker
	lists   []ListSource

	mode      int
	listIndex int
	width     int
	height    int

	prog        progress.Model
	rankTable   table.Model
	rankEntries []model.RankEntry

	showTranslation bool
	autoSpeak       bool
	notice          string

	rnd      *rand.Rand
	burst    *sparkBurst
	burstSeq int

	fatalErr error
}

// NewModel constructs the drill TUI model.
func NewModel(cfg model.DrillConfig, ctrl *drill.Controller, speaker *speech.Speaker, lists []ListSource) *Model {
	m := &Model{
		cfg:             cfg,
		ctrl:            ctrl,
		speaker:         speaker,
		lists:           lists,
		showTranslation: cfg.ShowTranslation,
		autoSpeak:       cfg.AutoSpeak,
		prog:            progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		rnd:             rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for i, list := range lists {
		if list.ID == cfg.List {
			m.listIndex = i
			break
		}
	}
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.prog.Width = min(40, max(10, m.width-30))
		return m, nil
	case sparkTickMsg:
		if m.burst != nil && m.burst.seed == msg.seed {
			if m.burst.advance() {
				return m, m.burst.tick()
			}
			m.burst = nil
		}
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.mode == modeFatal {
			return m, tea.Quit
		}
		m.notice = ""
		switch m.mode {
		case modeHome:
			return m.updateHome(msg)
		case modeRanking:
			return m.updateRanking(msg)
		case modeSession:
			return m.updateSession(msg)
		}
	}
	return m, nil
}

func (m *Model) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.listIndex > 0 {
			m.listIndex--
		}
		return m, nil
	case "down", "j":
		if m.listIndex < len(m.lists)-1 {
			m.listIndex++
		}
		return m, nil
	case "enter", " ":
		list := m.lists[m.listIndex]
		if err := m.ctrl.StartNormal(list.ID, list.Words); err != nil {
			return m.fatal(err)
		}
		m.mode = modeSession
		m.speakCurrent(true)
		return m, nil
	case "r":
		m.openRanking()
		return m, nil
	case "R":
		if err := m.ctrl.ResetHistory(); err != nil {
			return m.fatal(err)
		}
		m.notice = "History cleared."
		return m, nil
	}
	return m, nil
}

func (m *Model) updateRanking(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.mode = modeHome
		return m, nil
	case "enter":
		if len(m.rankEntries) == 0 {
			return m, nil
		}
		row := m.rankTable.Cursor()
		if row < 0 || row >= len(m.rankEntries) {
			return m, nil
		}
		started, err := m.ctrl.StartReviewWord(m.rankEntries[row].Word)
		if err != nil {
			return m.fatal(err)
		}
		if started {
			m.mode = modeSession
			m.speakCurrent(true)
		}
		return m, nil
	case "s":
		words := m.reviewSetWords()
		started, err := m.ctrl.StartReviewSet(words)
		if err != nil {
			return m.fatal(err)
		}
		if started {
			m.mode = modeSession
			m.speakCurrent(true)
		} else {
			m.notice = "No ranking data yet."
		}
		return m, nil
	default:
		var cmd tea.Cmd
		m.rankTable, cmd = m.rankTable.Update(msg)
		return m, cmd
	}
}

func (m *Model) updateSession(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	sess := m.ctrl.Session()
	if sess == nil {
		m.mode = modeHome
		return m, nil
	}

	if sess.Complete() {
		switch msg.String() {
		case "n", "enter":
			if err := m.ctrl.NextSet(); err != nil {
				return m.fatal(err)
			}
			m.speakCurrent(true)
			return m, nil
		case "esc", "q", "h":
			return m.goHome()
		}
		return m, nil
	}

	switch msg.String() {
	case "left", "h":
		return m.handleAnswer(model.AnswerUnknown)
	case "right", "l":
		return m.handleAnswer(model.AnswerKnown)
	case "a":
		m.ctrl.AddMore()
		return m, nil
	case "p":
		m.speakCurrent(false)
		return m, nil
	case "t":
		m.showTranslation = !m.showTranslation
		return m, nil
	case "v":
		m.autoSpeak = !m.autoSpeak
		if m.autoSpeak {
			m.speakCurrent(true)
		}
		return m, nil
	case "esc", "q":
		return m.goHome()
	}
	return m, nil
}

// handleAnswer maps both swipe directions and their key equivalents onto
// the same transition.
func (m *Model) handleAnswer(kind model.Answer) (tea.Model, tea.Cmd) {
	_, ok, err := m.ctrl.Answer(kind)
	if err != nil {
		return m.fatal(err)
	}
	if !ok {
		return m, nil
	}
	var cmd tea.Cmd
	if kind == model.AnswerKnown {
		m.burstSeq++
		m.burst = newSparkBurst(m.rnd, m.burstSeq, m.cardWidth())
		cmd = m.burst.tick()
	}
	m.speakCurrent(true)
	return m, cmd
}

func (m *Model) goHome() (tea.Model, tea.Cmd) {
	m.speaker.Stop()
	m.burst = nil
	m.mode = modeHome
	return m, nil
}

func (m *Model) fatal(err error) (tea.Model, tea.Cmd) {
	m.fatalErr = err
	m.mode = modeFatal
	return m, nil
}

// speakCurrent speaks the word under the cursor. auto restricts the call
// to auto-speak mode; manual requests ignore the toggle.
func (m *Model) speakCurrent(auto bool) {
	if !m.cfg.Speech {
		return
	}
	if auto && !m.autoSpeak {
		return
	}
	sess := m.ctrl.Session()
	if sess == nil {
		return
	}
	if word, ok := sess.Current(); ok {
		m.speaker.Speak(word, m.cfg.SpeechLang)
	}
}

func (m *Model) openRanking() {
	record := m.ctrl.History()
	m.rankEntries = ranking.Rank(record.WordStats, m.cfg.TopN, translate.Lookup)
	m.rankTable = buildRankTable(m.rankEntries)
	m.mode = modeRanking
}

func (m *Model) reviewSetWords() []string {
	record := m.ctrl.History()
	entries := ranking.Rank(record.WordStats, reviewSetSize, nil)
	words := make([]string, 0, len(entries))
	for _, entry := range entries {
		words = append(words, entry.Word)
	}
	return words
}

func buildRankTable(entries []model.RankEntry) table.Model {
	wordWidth := runewidth.StringWidth("Word")
	glossWidth := runewidth.StringWidth("Translation")
	for _, entry := range entries {
		if w := runewidth.StringWidth(entry.Word); w > wordWidth {
			wordWidth = w
		}
		if w := runewidth.StringWidth(entry.Translation); w > glossWidth {
			glossWidth = w
		}
	}
	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Word", Width: wordWidth},
		{Title: "Translation", Width: glossWidth},
		{Title: "Miss", Width: 5},
		{Title: "Unknown", Width: 7},
		{Title: "Known", Width: 5},
		{Title: "Total", Width: 5},
	}
	rows := make([]table.Row, 0, len(entries))
	for i, entry := range entries {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			entry.Word,
			entry.Translation,
			fmt.Sprintf("%d%%", int(entry.UnknownRate*100+0.5)),
			fmt.Sprintf("%d", entry.Unknown),
			fmt.Sprintf("%d", entry.Known),
			fmt.Sprintf("%d", entry.Total),
		})
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(min(len(rows)+1, 12)),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).Foreground(lipgloss.Color("#F0F0F0"))
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("#121212")).Background(lipgloss.Color("#FF7AB6")).Bold(true)
	t.SetStyles(styles)
	return t
}

// cardWidth sizes the word card and the spark area to the current word.
func (m *Model) cardWidth() int {
	width := 24
	if sess := m.ctrl.Session(); sess != nil {
		if word, ok := sess.Current(); ok {
			if w := runewidth.StringWidth(word) + 12; w > width {
				width = w
			}
		}
	}
	if m.width > 0 && width > m.width-4 {
		width = m.width - 4
	}
	return width
}

// View implements tea.Model.
func (m *Model) View() string {
	var content string
	switch m.mode {
	case modeHome:
		content = m.viewHome()
	case modeRanking:
		content = m.viewRanking()
	case modeSession:
		content = m.viewSession()
	case modeFatal:
		content = m.viewFatal()
	}
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m *Model) viewHome() string {
	record := m.ctrl.History()
	var b strings.Builder
	b.WriteString(titleStyle.Render("Sight Words Swipe"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("swipe right (→) = known · swipe left (←) = unknown"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Sessions started: %d\n", record.Sessions))
	b.WriteString(fmt.Sprintf("Last studied:     %s\n\n", formatStudiedAt(record.LastStudiedAt)))

	for i, list := range m.lists {
		label := fmt.Sprintf("%s (%d words)", strings.ToUpper(list.ID), len(list.Words))
		if i == m.listIndex {
			b.WriteString(selectedStyle.Render("▸ " + label))
		} else {
			b.WriteString(unselectedStyle.Render("  " + label))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(footerStyle.Render("enter start · r ranking · R reset history · q quit"))
	if m.notice != "" {
		b.WriteString("\n" + noticeStyle.Render(m.notice))
	}
	return b.String()
}

func (m *Model) viewRanking() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Weak Word Ranking"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("highest unknown rate first (words with 2+ answers preferred)"))
	b.WriteString("\n\n")
	if len(m.rankEntries) == 0 {
		b.WriteString("No data yet. Answers from drills feed the ranking.\n")
	} else {
		b.WriteString(m.rankTable.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(footerStyle.Render("enter review word · s review TOP20 set · esc home"))
	if m.notice != "" {
		b.WriteString("\n" + noticeStyle.Render(m.notice))
	}
	return b.String()
}

func (m *Model) viewSession() string {
	sess := m.ctrl.Session()
	if sess == nil {
		return ""
	}
	if sess.Complete() {
		return m.viewSummary()
	}

	word, _ := sess.Current()
	var b strings.Builder
	b.WriteString(chipStyle.Render(m.ctrl.Label()))
	b.WriteString("  ")
	b.WriteString(knownStyle.Render(fmt.Sprintf("💖 %d", sess.KnownCount())))
	b.WriteString("  ")
	b.WriteString(unknownStyle.Render(fmt.Sprintf("💧 %d", sess.UnknownCount())))
	b.WriteString("\n\n")

	pct := sess.ProgressPercent()
	b.WriteString(fmt.Sprintf("%d / %d  %s %d%%\n\n", sess.Position(), sess.Length(), m.prog.ViewAs(float64(pct)/100), pct))

	if m.burst != nil {
		b.WriteString(m.burst.View())
		b.WriteString("\n")
	} else {
		b.WriteString(strings.Repeat("\n", sparkRows))
	}

	card := wordTextStyle.Render(word)
	if m.showTranslation {
		card += "\n" + translationStyle.Render(translate.Lookup(word))
	}
	b.WriteString(wordCardStyle.Width(m.cardWidth()).Align(lipgloss.Center).Render(card))
	b.WriteString("\n\n")
	b.WriteString(unknownStyle.Render("💧 ← unknown"))
	b.WriteString("      ")
	b.WriteString(knownStyle.Render("known → 💖"))
	b.WriteString("\n\n")

	help := []string{"a add 20", "t translation"}
	if m.cfg.Speech && m.speaker.Available() {
		help = append(help, "p speak", "v auto-speak")
	}
	help = append(help, "esc home")
	b.WriteString(footerStyle.Render(strings.Join(help, " · ")))
	return b.String()
}

func (m *Model) viewSummary() string {
	sess := m.ctrl.Session()
	var b strings.Builder
	b.WriteString(titleStyle.Render("Session complete! 🎉"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render(m.ctrl.Label()))
	b.WriteString("\n\n")
	b.WriteString(knownStyle.Render(fmt.Sprintf("💖 known: %d", sess.KnownCount())))
	b.WriteString("   ")
	b.WriteString(unknownStyle.Render(fmt.Sprintf("💧 unknown: %d", sess.UnknownCount())))
	b.WriteString("\n\n")
	b.WriteString(footerStyle.Render("n another set · esc home"))
	return b.String()
}

func (m *Model) viewFatal() string {
	return errorStyle.Render("fatal: "+m.fatalErr.Error()) + "\n\n" +
		footerStyle.Render("press any key to exit")
}

func formatStudiedAt(t *time.Time) string {
	if t == nil {
		return "none"
	}
	return t.Local().Format("2006-01-02 15:04")
}
