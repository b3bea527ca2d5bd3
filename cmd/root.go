package cmd

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"
	"github.com/zhubert/healthchat/internal/app"
	"github.com/zhubert/healthchat/internal/clipboard"
	"github.com/zhubert/healthchat/internal/config"
	"github.com/zhubert/healthchat/internal/locale"
	"github.com/zhubert/healthchat/internal/logger"
	"github.com/zhubert/healthchat/internal/prefs"
	"github.com/zhubert/healthchat/internal/storage"
)

var (
	debugMode             bool
	quietMode             bool
	langFlag              string
	storeFlag             string
	logFileFlag           string
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "healthchat",
	Short: "Multilingual health symptom chat in the terminal",
	Long: `Health Chat is a terminal chat for describing symptoms in your own language.
Pick a language on the welcome screen, then describe how you feel. Replies are
simulated; Health Chat is not a medical diagnosis.`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", true, "Enable debug logging (on by default)")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Reduce logging to info level only")
	rootCmd.PersistentFlags().StringVar(&storeFlag, "store", "", "Storage backend: file, sqlite or memory (overrides config)")
	rootCmd.PersistentFlags().StringVar(&logFileFlag, "log-file", "", "Write logs to this file instead of ~/.healthchat/logs")
	rootCmd.Flags().StringVar(&langFlag, "lang", "", "Start in this language (catalog code, e.g. es)")
}

func initConfig() {
	if quietMode {
		logger.SetDebug(false)
	} else if debugMode {
		logger.SetDebug(true)
	}
}

// Execute runs the root command
func Execute() error {
	// Set version dynamically
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("healthchat %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("healthchat %s\n", version)
}

// loadConfig loads .env and the config file, then applies flag overrides
func loadConfig() (*config.Config, error) {
	config.LoadDotEnv()
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	if storeFlag != "" {
		cfg.SetStoreBackend(storeFlag)
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// openStore opens the configured backend under the data directory
func openStore(cfg *config.Config) (storage.Store, error) {
	kv, err := storage.Open(cfg.GetStoreBackend(), cfg.DataDir())
	if err != nil {
		return nil, fmt.Errorf("error opening storage: %w", err)
	}
	return kv, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logPath := logFileFlag
	if logPath == "" {
		logPath = cfg.LogPath()
	}
	if err := logger.Init(logPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	// Ensure logger is closed on exit
	defer logger.Close()

	catalog := locale.DefaultCatalog()
	if langFlag != "" {
		if _, err := catalog.MustLookup(langFlag); err != nil {
			return err
		}
	}

	kv, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer kv.Close()

	if err := clipboard.Init(); err != nil {
		logger.Warn("Clipboard unavailable: %v", err)
	}

	// Reduced motion: the environment is the default, the preference file wins
	fallback, _ := prefs.FromEnv(os.Getenv)
	motion := prefs.NewSignal(fallback)
	watcher, err := prefs.NewWatcher(cfg.GetPrefsPath(), fallback, motion)
	if err != nil {
		logger.Warn("Preference watcher unavailable: %v", err)
	} else {
		if err := watcher.Start(); err != nil {
			logger.Warn("Preference watcher failed to start: %v", err)
		}
		defer watcher.Stop()
	}

	m := app.New(cfg, app.Options{
		Store:    kv,
		Catalog:  catalog,
		Motion:   motion,
		Language: langFlag,
		Version:  version,
	})
	defer m.Close()
	p := tea.NewProgram(m)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
