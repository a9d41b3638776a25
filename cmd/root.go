package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/byond/leadquiz/internal/analysis"
	"github.com/byond/leadquiz/internal/config"
	"github.com/byond/leadquiz/internal/i18n"
	"github.com/byond/leadquiz/internal/logging"
	"github.com/byond/leadquiz/internal/screen"
)

// cli holds what the persistent pre-run prepares for every command.
type cli struct {
	cfg *config.Config
	reg *i18n.Registry
	log *zap.Logger
}

// env assembles the shared screen state from the loaded settings.
func (c *cli) env() *screen.Env {
	return screen.NewEnv(c.cfg, c.reg, c.log)
}

// Execute runs the leadquiz command tree.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "leadquiz",
		Short: "Byond Intelligence potential check",
		Long: `leadquiz runs the Byond Intelligence potential check in the terminal:
a six-question quiz that ends in a short automation analysis, plus the
solutions catalog and the booking link.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logging.Sync(c.log)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd, c, false)
		},
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "Path to the config file (default: user config dir)")
	pf.String("locale", "", "Locale, e.g. de or en (overrides LEADQUIZ_LOCALE)")
	pf.String("theme", "", "Color theme: dark or light")
	pf.String("locales", "", "Directory with extra content packs")
	pf.String("log-file", "", "Write JSON logs to this file")
	pf.Bool("verbose", false, "Log debug output to stderr (not for the TUI)")
	pf.Bool("no-welcome", false, "Skip the welcome splash")

	root.AddCommand(newQuizCmd(c))
	root.AddCommand(newAnalyzeCmd(c))
	root.AddCommand(newValidateCmd(c))
	root.AddCommand(newVersionCmd())
	return root
}

// setup loads the config file, applies environment and flag overrides, and
// builds the logger and the locale registry.
func (c *cli) setup(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.ApplyEnv(); err != nil {
		return fmt.Errorf("apply environment: %w", err)
	}
	applyFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// The TUI owns the terminal, so only subcommands may log to stderr.
	verbose, _ := cmd.Flags().GetBool("verbose")
	logger, err := logging.New(logging.Options{
		Level:  cfg.Log.Level,
		File:   cfg.Log.File,
		Stderr: verbose && cmd.HasParent() && !usesTUI(cmd),
	})
	if err != nil {
		return err
	}

	reg, err := i18n.Default(cfg.LocalesDir)
	if err != nil {
		return fmt.Errorf("load content packs: %w", err)
	}

	c.cfg, c.reg, c.log = cfg, reg, logger
	if cmd.Name() != "validate" {
		warnPackProblems(logger, reg, analysis.DefaultConfig().WithPoolSize(cfg.Analysis.PoolSize))
	}
	logger.Debug("settings loaded",
		zap.String("config", path),
		zap.Strings("locales", reg.Locales()),
		zap.String("command", cmd.Name()))
	return nil
}

// warnPackProblems logs what `validate` would report, so a pool size the
// packs cannot serve shows up in the log before keys show up on screen.
func warnPackProblems(log *zap.Logger, reg *i18n.Registry, cfg analysis.Config) int {
	problems := reg.Check(cfg)
	for _, p := range problems {
		log.Warn("content pack problem", zap.Stringer("problem", p))
	}
	return len(problems)
}

// applyFlags copies explicitly set flags over cfg.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("locale") {
		cfg.Locale, _ = flags.GetString("locale")
	}
	if flags.Changed("theme") {
		cfg.Theme, _ = flags.GetString("theme")
	}
	if flags.Changed("locales") {
		cfg.LocalesDir, _ = flags.GetString("locales")
	}
	if flags.Changed("log-file") {
		cfg.Log.File, _ = flags.GetString("log-file")
	}
	if noWelcome, _ := flags.GetBool("no-welcome"); noWelcome {
		cfg.Welcome = false
	}
}

// usesTUI reports whether cmd will start the full-screen program.
func usesTUI(cmd *cobra.Command) bool {
	if cmd.Name() != "quiz" {
		return false
	}
	plain, _ := cmd.Flags().GetBool("plain")
	return !plain
}
