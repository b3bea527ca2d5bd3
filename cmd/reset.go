package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	huh "charm.land/huh/v2"
	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"
	"github.com/zhubert/healthchat/internal/locale"
	"github.com/zhubert/healthchat/internal/logger"
	"github.com/zhubert/healthchat/internal/session"
	"github.com/zhubert/healthchat/internal/storage"
)

var skipConfirm bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget the chosen language and show the welcome screen again",
	Long: `Clears the device state Health Chat remembers between runs: whether a chat
has been started and which language was chosen. Log files are removed too.

It will prompt for confirmation before proceeding unless the --yes flag is used.`,
	RunE: runReset,
}

func init() {
	resetCmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "Skip confirmation prompt")
	rootCmd.AddCommand(resetCmd)
}

func runReset(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	kv, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer kv.Close()

	ask := func(prompt string) bool { return confirm(os.Stdin, prompt) }
	if term.IsTerminal(os.Stdin.Fd()) {
		ask = confirmForm
	}
	return runResetWith(kv, cmd.OutOrStdout(), ask, cfg.LogPath(), logFileFlag)
}

// runResetWith allows injecting the store and the confirmation for testing
func runResetWith(kv storage.Store, out io.Writer, ask func(prompt string) bool, logPaths ...string) error {
	lang, hasLang, err := kv.Get(storage.KeyLanguage)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: error reading stored language: %v\n", err)
	}
	flags := session.NewFlags(kv)
	started := flags.HasStarted()

	if !hasLang && !started {
		fmt.Fprintln(out, "Nothing to reset.")
		return nil
	}

	// Print summary of what will be reset
	fmt.Fprintln(out, "This will reset:")
	if started {
		fmt.Fprintln(out, "  - the started-chat flag (the welcome screen will show again)")
	}
	if hasLang {
		fmt.Fprintf(out, "  - the stored language (%s)\n", storedCode(lang))
	}
	fmt.Fprintln(out, "  - all log files")

	// Confirm unless --yes flag is set
	if !skipConfirm && !ask("Continue?") {
		fmt.Fprintln(out, "Aborted.")
		return nil
	}

	if err := flags.Reset(); err != nil {
		return fmt.Errorf("error resetting device state: %w", err)
	}

	logsCleared, err := logger.ClearLogs(logPaths...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: error clearing logs: %v\n", err)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Reset complete.")
	if logsCleared > 0 {
		fmt.Fprintf(out, "  - %d log file(s) removed\n", logsCleared)
	}
	return nil
}

// storedCode extracts the language code from the persisted record. A value
// that does not decode is shown as is.
func storedCode(raw string) string {
	var lang locale.Language
	if err := json.Unmarshal([]byte(raw), &lang); err != nil || lang.Code == "" {
		return raw
	}
	return lang.Code
}

// confirmForm asks with an interactive yes/no form
func confirmForm(prompt string) bool {
	var ok bool
	err := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(prompt).
			Affirmative("Yes").
			Negative("No").
			Value(&ok),
	)).Run()
	if err != nil {
		return false
	}
	return ok
}

// confirm prompts the user for y/n confirmation
func confirm(input io.Reader, prompt string) bool {
	reader := bufio.NewReader(input)
	fmt.Printf("%s [y/N]: ", prompt)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}
