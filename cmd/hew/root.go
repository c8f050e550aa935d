package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/iw2rmb/hew"
	"github.com/iw2rmb/hew/editor"
	"github.com/iw2rmb/hew/internal/config"
	"github.com/iw2rmb/hew/internal/log"
	"github.com/iw2rmb/hew/internal/watcher"
)

func init() {
	// Query the background colour before the program owns stdin, or the
	// terminal's reply shows up as typed input.
	_ = lipgloss.HasDarkBackground()
}

var errNotTerminal = errors.New("hew needs an interactive terminal")

const localConfigPath = ".hew/config.yaml"

func newRootCmd() *cobra.Command {
	var cfgFile string
	v := viper.New()

	cmd := &cobra.Command{
		Use:          "hew [file]",
		Short:        "A small terminal text editor",
		Version:      hew.Version(),
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			home, _ := os.UserHomeDir()
			cfg, err := loadConfig(v, afero.NewOsFs(), cfgFile, home)
			if err != nil {
				return err
			}
			var path string
			if len(args) == 1 {
				path = args[0]
			}
			return run(cfg, path)
		},
	}

	cmd.Flags().StringVarP(&cfgFile, "config", "c", "", "config file (default ./.hew/config.yaml or ~/.config/hew/config.yaml)")
	cmd.Flags().BoolP("line-numbers", "n", false, "show line numbers")
	cmd.Flags().Bool("debug", false, "write a debug log")
	bindFlags(v, cmd)
	return cmd
}

func bindFlags(v *viper.Viper, cmd *cobra.Command) {
	_ = v.BindPFlag("show_line_numbers", cmd.Flags().Lookup("line-numbers"))
	_ = v.BindPFlag("debug", cmd.Flags().Lookup("debug"))
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}

// loadConfig reads the first config file found, layered over the defaults
// and under HEW_* environment variables and bound flags.
func loadConfig(v *viper.Viper, fs afero.Fs, explicit, home string) (config.Config, error) {
	v.SetFs(fs)

	d := config.Defaults()
	v.SetDefault("show_line_numbers", d.ShowLineNumbers)
	v.SetDefault("quit_times", d.QuitTimes)
	v.SetDefault("watch_file", d.WatchFile)
	v.SetDefault("debug", d.Debug)
	v.SetDefault("log_file", d.LogFile)
	v.SetDefault("theme.gutter", d.Theme.Gutter)
	v.SetDefault("theme.tilde", d.Theme.Tilde)
	v.SetDefault("theme.status_fg", d.Theme.StatusFg)
	v.SetDefault("theme.status_bg", d.Theme.StatusBg)

	v.SetEnvPrefix("HEW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path := resolveConfigPath(fs, explicit, home); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return config.Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
		log.Debug(log.CatConfig, "Loaded config", "path", path)
	}

	var cfg config.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return config.Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// resolveConfigPath picks --config, then ./.hew/config.yaml, then the user
// config, writing a default user config on first run. Returns "" when no
// file should be read.
func resolveConfigPath(fs afero.Fs, explicit, home string) string {
	if explicit != "" {
		return explicit
	}
	if ok, _ := afero.Exists(fs, localConfigPath); ok {
		return localConfigPath
	}
	if home == "" {
		return ""
	}
	userPath := filepath.Join(home, ".config", "hew", "config.yaml")
	if ok, _ := afero.Exists(fs, userPath); ok {
		return userPath
	}
	if err := config.WriteDefaultConfig(fs, userPath); err != nil {
		log.Warn(log.CatConfig, "Could not write default config", "path", userPath, "error", err)
		return ""
	}
	return userPath
}

// styleFromTheme applies theme colour overrides to the default style.
func styleFromTheme(t config.ThemeConfig) editor.Style {
	s := editor.DefaultStyle()
	if t.Gutter != "" {
		s.Gutter = s.Gutter.Foreground(lipgloss.Color(t.Gutter))
	}
	if t.Tilde != "" {
		s.Tilde = s.Tilde.Foreground(lipgloss.Color(t.Tilde))
	}
	if t.StatusFg != "" || t.StatusBg != "" {
		s.StatusBar = s.StatusBar.Reverse(false)
		if t.StatusFg != "" {
			s.StatusBar = s.StatusBar.Foreground(lipgloss.Color(t.StatusFg))
		}
		if t.StatusBg != "" {
			s.StatusBar = s.StatusBar.Background(lipgloss.Color(t.StatusBg))
		}
	}
	return s
}

func editorConfig(cfg config.Config, fs afero.Fs) editor.Config {
	return editor.Config{
		ShowLineNumbers: cfg.ShowLineNumbers,
		Style:           styleFromTheme(cfg.Theme),
		QuitTimes:       cfg.QuitTimes,
		Fs:              fs,
	}
}

func run(cfg config.Config, path string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNotTerminal
	}

	if cfg.Debug || log.EnabledFromEnv() {
		cleanup, err := log.Init(cfg.LogFile)
		if err != nil {
			return err
		}
		defer cleanup()
	}

	ecfg := editorConfig(cfg, afero.NewOsFs())
	if path != "" && cfg.WatchFile {
		if w, err := watcher.New(watcher.DefaultConfig(path)); err != nil {
			log.ErrorErr(log.CatWatcher, "Failed to create watcher", err, "path", path)
		} else if events, err := w.Start(); err != nil {
			log.ErrorErr(log.CatWatcher, "Failed to start watcher", err, "path", path)
		} else {
			ecfg.FileEvents = events
			defer func() { _ = w.Stop() }()
		}
	}

	m := editor.New(ecfg)
	if path != "" {
		// The error is already on the message bar.
		m, _ = m.Open(path)
	}

	log.Info(log.CatUI, "Starting editor", "file", path)
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run(); err != nil {
		return fmt.Errorf("running editor: %w", err)
	}
	return nil
}
