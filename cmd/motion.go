package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/zhubert/healthchat/internal/prefs"
)

var motionCmd = &cobra.Command{
	Use:       "motion [on|off]",
	Short:     "Show or set the reduced-motion preference",
	ValidArgs: []string{"on", "off"},
	Long: `Reduced motion freezes the typing animation. Without an argument the current
preference is printed. "on" or "off" writes the preference file; a running
Health Chat picks the change up immediately.`,
	Args: cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if len(args) == 0 {
			return showMotion(cmd.OutOrStdout(), cfg.GetPrefsPath(), os.Getenv)
		}
		return setMotion(cmd.OutOrStdout(), cfg.GetPrefsPath(), args[0] == "on")
	},
}

func init() {
	rootCmd.AddCommand(motionCmd)
}

func showMotion(out io.Writer, path string, getenv func(string) string) error {
	f, err := prefs.Load(path)
	switch {
	case err == nil:
		fmt.Fprintf(out, "reduced motion: %s (%s)\n", onOff(f.ReducedMotion), path)
	case os.IsNotExist(err):
		v, _ := prefs.FromEnv(getenv)
		fmt.Fprintf(out, "reduced motion: %s (from %s)\n", onOff(v), prefs.EnvReducedMotion)
	default:
		return fmt.Errorf("error reading preferences: %w", err)
	}
	return nil
}

func setMotion(out io.Writer, path string, on bool) error {
	if err := prefs.Save(path, prefs.File{ReducedMotion: on}); err != nil {
		return fmt.Errorf("error saving preferences: %w", err)
	}
	fmt.Fprintf(out, "reduced motion: %s\n", onOff(on))
	return nil
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
