package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/wortschatz/foundation/core/config"
	"github.com/msto63/wortschatz/foundation/core/log"
	"github.com/msto63/wortschatz/foundation/utils/stringx"
	"github.com/msto63/wortschatz/internal/collation"
	"github.com/msto63/wortschatz/internal/pipeline"
	"github.com/msto63/wortschatz/internal/registry"
	"github.com/msto63/wortschatz/internal/store"
)

var (
	cfgFile  string
	dataRoot string
	verbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "wortschatz",
	Short: "WortSchatz - Verwaltung sprachspezifischer Wortlisten",
	Long: `WortSchatz verwaltet sprachspezifische Wortlisten als einfache
Textdateien. Eine Registry (languages.json) ordnet Sprachcodes den
Wortlisten zu.

Befehle:
  sort      - Wortliste einer Sprache normalisieren und sortieren
  sort-all  - Alle registrierten Wortlisten sortieren
  merge     - Externe Wortlisten in eine Sprache einpflegen
  langs     - Registrierte Sprachen anzeigen`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config-Datei (TOML oder YAML, z.B. ./configs/config.toml)")
	rootCmd.PersistentFlags().StringVar(&dataRoot, "root", "", "Datenverzeichnis mit languages.json (default: .)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose Output")
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Fehler: %s: %v\n", msg, err)
}

// settings holds the resolved runtime options for one invocation.
type settings struct {
	root      string
	logLevel  string
	logFormat string
}

// setup resolves configuration and builds the pipeline shared by the
// sort, sort-all, and merge commands.
func setup() (*pipeline.Pipeline, *registry.Registry, error) {
	s, err := resolveSettings()
	if err != nil {
		return nil, nil, err
	}

	logger := buildLogger(s.logLevel, s.logFormat)

	reg, err := registry.Load(s.root)
	if err != nil {
		return nil, nil, err
	}

	st := store.New(reg)
	so := collation.New(collation.NewCLDR())
	return pipeline.New(st, so, logger), reg, nil
}

// resolveSettings determines the data root and log options. Flags take
// precedence over the config file, the config file over defaults.
func resolveSettings() (settings, error) {
	s := settings{logLevel: "info", logFormat: "text"}
	cfgRoot := ""

	if cfgFile != "" {
		cfg, err := config.LoadWithOptions(cfgFile, config.LoadOptions{EnvPrefix: "WORTSCHATZ"})
		if err != nil {
			return settings{}, err
		}
		cfgRoot = cfg.GetString("general.data_dir", "")
		s.logLevel = cfg.GetString("general.log_level", s.logLevel)
		s.logFormat = cfg.GetString("general.log_format", s.logFormat)
	}
	s.root = stringx.FirstNonBlank(dataRoot, cfgRoot, ".")
	return s, nil
}

func buildLogger(levelName, formatName string) *log.Logger {
	level := log.DefaultLevel()
	if parsed, err := log.ParseLevel(levelName); err == nil {
		level = parsed
	}
	if verbose {
		level = log.LevelDebug
	}
	format := log.FormatText
	if parsed, err := log.ParseFormat(formatName); err == nil {
		format = parsed
	}
	return log.New().WithLevel(level).WithFormat(format).WithName("wortschatz")
}
