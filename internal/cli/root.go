package cli

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/meetfocus/internal/calendar"
	"github.com/idilsaglam/meetfocus/internal/config"
	"github.com/idilsaglam/meetfocus/internal/form"
	"github.com/idilsaglam/meetfocus/internal/logger"
	"github.com/idilsaglam/meetfocus/internal/model"
	"github.com/idilsaglam/meetfocus/internal/resolver"
	"github.com/idilsaglam/meetfocus/internal/session"
	"github.com/idilsaglam/meetfocus/internal/store"
	"github.com/idilsaglam/meetfocus/internal/store/jsonstore"
	"github.com/idilsaglam/meetfocus/internal/ui"
	"github.com/idilsaglam/meetfocus/internal/version"
)

// Dependencies are filled in by the root command before any subcommand runs.
type Dependencies struct {
	Config *config.Config
	Log    zerolog.Logger
	Clock  session.Clock
}

// Root flags (apply to every subcommand)
type rootFlags struct {
	config   string
	theme    string
	calendar string
	seed     string
	tieBreak string
	noColor  bool
}

func NewRootCmd(deps *Dependencies) *cobra.Command {
	var f rootFlags

	rootCmd := &cobra.Command{
		Use:   "meetfocus",
		Short: "Track focus modes around your meetings",
		Long: "meetfocus keeps a list of today's meetings, lets you mark the one you are in,\n" +
			"and shows which notification profile should be on right now.\n\n" +
			"Nothing is saved: every run starts from an empty list, or from --seed/--calendar.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return deps.load(cmd, f)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(deps)
		},
	}

	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(version.Full() + "\n")

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&f.config, "config", "", "config file (default $XDG_CONFIG_HOME/meetfocus/config.toml)")
	pf.StringVar(&f.theme, "theme", "", "color theme: classic, neon or mono")
	pf.StringVar(&f.calendar, "calendar", "", "iCalendar file to import meetings from")
	pf.StringVar(&f.seed, "seed", "", "JSON snapshot to start the session from")
	pf.StringVar(&f.tieBreak, "tie-break", "", "overlapping active meetings: first or latest-start")
	pf.BoolVar(&f.noColor, "no-color", false, "disable colors")

	rootCmd.AddCommand(NewRunCmd(deps))
	rootCmd.AddCommand(NewListCmd(deps))
	rootCmd.AddCommand(NewNowCmd(deps))
	rootCmd.AddCommand(NewModesCmd(deps))
	rootCmd.AddCommand(NewSetupCmd(deps))

	return rootCmd
}

func (d *Dependencies) load(cmd *cobra.Command, f rootFlags) error {
	cfg, err := config.Load(f.config)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("theme") {
		cfg.Theme = f.theme
	}
	if flags.Changed("calendar") {
		cfg.Calendar = f.calendar
	}
	if flags.Changed("seed") {
		cfg.Seed = f.seed
	}
	if flags.Changed("tie-break") {
		cfg.TieBreak = f.tieBreak
	}
	if flags.Changed("no-color") {
		cfg.NoColor = f.noColor
	}

	ui.SetTheme(cfg.Theme)
	if cfg.NoColor {
		ui.SetColor(false)
	}

	d.Config = cfg
	d.Log = logger.Console(cmd.ErrOrStderr(), cfg.LogLevel)
	if d.Clock == nil {
		d.Clock = session.ClockFunc(time.Now)
	}
	return nil
}

// newSession builds the session every command works on: an empty store,
// then the JSON seed, then the calendar import.
func (d *Dependencies) newSession(log zerolog.Logger) (*session.Session, error) {
	cfg := d.Config

	policy, err := resolver.ParsePolicy(cfg.TieBreak)
	if err != nil {
		return nil, err
	}
	opts := []session.Option{
		session.WithClock(d.Clock),
		session.WithPolicy(policy),
		session.WithAutoReply(cfg.AutoReply),
		session.WithLogger(log),
	}
	if cfg.DefaultMode != "" {
		m, err := model.ParseMode(cfg.DefaultMode)
		if err != nil {
			return nil, fmt.Errorf("default_mode: %w", err)
		}
		opts = append(opts, session.WithMode(m))
	}
	sess := session.New(store.New(store.WithLogger(log)), opts...)

	if cfg.Seed != "" {
		meetings, err := jsonstore.Load(cfg.Seed)
		if err != nil {
			return nil, fmt.Errorf("seed %s: %w", cfg.Seed, err)
		}
		if err := sess.Seed(meetings); err != nil {
			return nil, fmt.Errorf("seed %s: %w", cfg.Seed, err)
		}
	}

	if cfg.Calendar != "" {
		opt := calendar.Window(d.Clock.Now(), cfg.ImportDays)
		opt.Log = log
		if cfg.ImportMode != "" {
			m, err := model.ParseMode(cfg.ImportMode)
			if err != nil {
				return nil, fmt.Errorf("import_mode: %w", err)
			}
			opt.DefaultMode = m
		}
		entries, err := calendar.ReadFile(cfg.Calendar, opt)
		if err != nil {
			return nil, err
		}
		inputs := make([]form.Input, 0, len(entries))
		for _, e := range entries {
			inputs = append(inputs, e.Input())
		}
		if _, err := sess.Import(inputs); err != nil {
			return nil, err
		}
	}
	return sess, nil
}
