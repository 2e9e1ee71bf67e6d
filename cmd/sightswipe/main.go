// Package main provides the CLI entrypoint for sightswipe.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/kmori/sightswipe/internal/config"
	"github.com/kmori/sightswipe/internal/drill"
	"github.com/kmori/sightswipe/internal/model"
	"github.com/kmori/sightswipe/internal/picker"
	"github.com/kmori/sightswipe/internal/ranking"
	"github.com/kmori/sightswipe/internal/speech"
	"github.com/kmori/sightswipe/internal/store"
	"github.com/kmori/sightswipe/internal/translate"
	"github.com/kmori/sightswipe/internal/tui"
	"github.com/kmori/sightswipe/internal/wordlist"
)

const (
	defaultList       = wordlist.ListDolch
	defaultWords      = 20
	defaultTopN       = 10
	defaultSpeechLang = "en-US"
)

var (
	drillList            string
	drillWords           int
	drillTopN            int
	drillSpeech          bool
	drillSpeechLang      string
	drillAutoSpeak       bool
	drillShowTranslation bool

	rankTop int

	resetYes bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "sightswipe",
		Short:         "TUI sight-word flashcard drill",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runDrillCmd,
	}

	rootCmd.Flags().StringVar(&drillList, "list", defaultList, "word list: dolch, fry, or a file path")
	rootCmd.Flags().IntVar(&drillWords, "words", defaultWords, "words per drill set")
	rootCmd.Flags().IntVar(&drillTopN, "top", defaultTopN, "ranking rows shown in the TUI")
	rootCmd.Flags().BoolVar(&drillSpeech, "speech", true, "speak words through a system TTS engine when available")
	rootCmd.Flags().StringVar(&drillSpeechLang, "speech-lang", defaultSpeechLang, "language tag for speech")
	rootCmd.Flags().BoolVar(&drillAutoSpeak, "auto-speak", false, "speak each word as it is shown")
	rootCmd.Flags().BoolVar(&drillShowTranslation, "show-translation", false, "show the Japanese gloss under each word")

	rootCmd.AddCommand(newRankCmd())
	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newResetCmd())
	rootCmd.AddCommand(newListsCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func runDrillCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "list", &drillList, fileCfg.Drill.List)
	applyIntConfig(cmd, "words", &drillWords, fileCfg.Drill.Words)
	applyIntConfig(cmd, "top", &drillTopN, fileCfg.Drill.TopN)
	applyBoolConfig(cmd, "speech", &drillSpeech, fileCfg.Drill.Speech)
	applyStringConfig(cmd, "speech-lang", &drillSpeechLang, fileCfg.Drill.SpeechLang)
	applyBoolConfig(cmd, "auto-speak", &drillAutoSpeak, fileCfg.Drill.AutoSpeak)
	applyBoolConfig(cmd, "show-translation", &drillShowTranslation, fileCfg.Drill.ShowTranslation)

	cfg := model.DrillConfig{
		List:            drillList,
		Words:           drillWords,
		TopN:            drillTopN,
		Speech:          drillSpeech,
		SpeechLang:      drillSpeechLang,
		AutoSpeak:       drillAutoSpeak,
		ShowTranslation: drillShowTranslation,
	}

	if err := validateConfig(cfg); err != nil {
		return err
	}

	sources, selected, err := resolveListSources(cfg.List)
	if err != nil {
		return err
	}
	cfg.List = selected

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	ctrl := drill.New(st, picker.New(), cfg.Words)
	speaker := speech.New()
	if cfg.Speech && !speaker.Available() {
		logErrln("no TTS engine found; speech disabled")
	}

	appModel := tui.NewModel(cfg, ctrl, speaker, sources)
	program := tea.NewProgram(appModel, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newRankCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Print the weak-word ranking",
		Args:  cobra.NoArgs,
		RunE:  runRankCmd,
	}
	cmd.Flags().IntVar(&rankTop, "top", defaultTopN, "number of rows")
	return cmd
}

func runRankCmd(cmd *cobra.Command, _ []string) error {
	if rankTop <= 0 {
		return fmt.Errorf("--top must be > 0")
	}
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	record := st.LoadHistory(cmd.Context())
	entries := ranking.Rank(record.WordStats, rankTop, translate.Lookup)

	width := 0
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
	}
	return ranking.RenderRanking(cmd.OutOrStdout(), entries, width)
}

func newHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Print the learning-history summary",
		Args:  cobra.NoArgs,
		RunE:  runHistoryCmd,
	}
}

func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	record := st.LoadHistory(cmd.Context())
	known, unknown := 0, 0
	for _, stat := range record.WordStats {
		known += stat.Known
		unknown += stat.Unknown
	}

	out := cmd.OutOrStdout()
	lastStudied := "none"
	if record.LastStudiedAt != nil {
		lastStudied = record.LastStudiedAt.Local().Format("2006-01-02 15:04")
	}
	if _, err := fmt.Fprintf(out, "Sessions started: %d\n", record.Sessions); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(out, "Last studied:     %s\n", lastStudied); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(out, "Tracked words:    %d\n", len(record.WordStats)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(out, "Answers logged:   %d (known %d / unknown %d)\n", known+unknown, known, unknown); err != nil {
		return err
	}
	return nil
}

func newResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Wipe the learning history",
		Args:  cobra.NoArgs,
		RunE:  runResetCmd,
	}
	cmd.Flags().BoolVar(&resetYes, "yes", false, "confirm the reset")
	return cmd
}

func runResetCmd(cmd *cobra.Command, _ []string) error {
	if !resetYes {
		return fmt.Errorf("reset wipes all history; pass --yes to confirm")
	}
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	if _, err := st.ResetHistory(cmd.Context()); err != nil {
		return fmt.Errorf("failed to reset history: %w", err)
	}
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), "History cleared."); err != nil {
		return err
	}
	return nil
}

func newListsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lists",
		Short: "List built-in word lists",
		Args:  cobra.NoArgs,
		RunE:  runListsCmd,
	}
}

func runListsCmd(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	for _, id := range wordlist.BuiltinIDs() {
		words, _ := wordlist.Builtin(id)
		if _, err := fmt.Fprintf(out, "%s (%d words)\n", id, len(words)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(out, "Custom lists: pass --list <path> with one word per line."); err != nil {
		return err
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

// resolveListSources returns the selectable lists for the home screen. A
// non-builtin list id is treated as a file path and loaded in addition to
// the built-ins.
func resolveListSources(listID string) ([]tui.ListSource, string, error) {
	sources := make([]tui.ListSource, 0, 3)
	for _, id := range wordlist.BuiltinIDs() {
		words, _ := wordlist.Builtin(id)
		sources = append(sources, tui.ListSource{ID: id, Words: words})
	}
	if _, ok := wordlist.Builtin(listID); ok {
		return sources, listID, nil
	}

	words, err := wordlist.LoadWords(listID)
	if err != nil {
		lines := []string{
			fmt.Sprintf("failed to load word list: %v", err),
			fmt.Sprintf("--list accepts %s, or a file path with one word per line", strings.Join(wordlist.BuiltinIDs(), ", ")),
		}
		return nil, "", fmt.Errorf("%s", strings.Join(lines, "\n"))
	}
	id := strings.TrimSuffix(filepath.Base(listID), filepath.Ext(listID))
	if id == "" {
		id = "custom"
	}
	sources = append(sources, tui.ListSource{ID: id, Words: words})
	return sources, id, nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# sightswipe configuration
# Uncomment a value to enable it. CLI flags override config values.

[drill]
# list = %q                # Word list: dolch, fry, or a file path
# words = %d               # Words per drill set
# top = %d                 # Ranking rows shown in the TUI
# speech = true            # Speak words through a system TTS engine
# speech-lang = %q         # Language tag for speech
# auto-speak = false       # Speak each word as it is shown
# show-translation = false # Show the Japanese gloss under each word
`,
		defaultList,
		defaultWords,
		defaultTopN,
		defaultSpeechLang,
	)
}

func validateConfig(cfg model.DrillConfig) error {
	if cfg.List == "" {
		return fmt.Errorf("--list must not be empty")
	}
	if cfg.Words <= 0 {
		return fmt.Errorf("--words must be > 0")
	}
	if cfg.TopN <= 0 {
		return fmt.Errorf("--top must be > 0")
	}
	if cfg.SpeechLang == "" {
		return fmt.Errorf("--speech-lang must not be empty")
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
