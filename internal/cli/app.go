package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/gwastro/pygrb-results-page/internal/config"
)

// AppName is the command name shown in usage output.
const AppName = "pygrb-results-page"

// NewApp builds the command-line application. Settings may come from a YAML
// run-config file, from flags, or both; flags win.
func NewApp(logger *logrus.Logger) *cli.App {
	return &cli.App{
		Name:  AppName,
		Usage: "Assemble and publish the results page for one PyGRB analysis run",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "run-config", Usage: "YAML file holding the run settings (flags override it)"},
			&cli.StringFlag{Name: "grb-name", Usage: "GRB identifier, e.g. 170817"},
			&cli.StringFlag{Name: "config-file", Usage: "Analysis configuration file used by the run (required)"},
			&cli.StringFlag{Name: "ifo-tag", Usage: "Interferometer combination tag, e.g. H1L1V1 (required)"},
			&cli.Int64Flag{Name: "start-time", Usage: "Trigger GPS time"},
			&cli.Float64Flag{Name: "ra", Usage: "Right ascension of the trigger, degrees"},
			&cli.Float64Flag{Name: "dec", Usage: "Declination of the trigger, degrees"},
			&cli.StringFlag{Name: "output-path", Usage: "Directory holding the analysis outputs (default: current directory)"},
			&cli.StringFlag{Name: "html-path", Usage: "Web directory the finished page is published under (required)"},
			&cli.StringFlag{Name: "seg-plot", Usage: "Path to the segment availability plot"},
			&cli.StringFlag{Name: "injection-tags", Usage: "Comma-separated detection injection set names"},
			&cli.StringFlag{Name: "tuning-injection-tags", Usage: "Comma-separated tuning injection set names"},
			&cli.BoolFlag{Name: "open-box", Usage: "Include the on-source (open box) results"},
			&cli.BoolFlag{Name: "time-slides", Usage: "Background was estimated with time slides"},
			&cli.Float64Flag{Name: "sky-error", Usage: "Sky grid error radius in degrees (sky-grid runs only)"},
			&cli.StringFlag{Name: "mass-bins", Usage: "Mass bin boundaries as low-high,low-high,..."},
			&cli.BoolFlag{Name: "ipn", Usage: "GRB was localized by the Interplanetary Network"},
			&cli.Float64Flag{Name: "ipn-error", Usage: "IPN error box size in square degrees"},
			&cli.BoolFlag{Name: "verbose", Usage: "Enable verbose (debug) logging"},
		},
		Before: func(ctx *cli.Context) error {
			if ctx.Bool("verbose") {
				logger.SetLevel(logrus.DebugLevel)
			}

			return nil
		},
		Action: func(ctx *cli.Context) error {
			cfg, err := resolveConfig(ctx)
			if err != nil {
				return err
			}

			return NewHandler(logger).Run(cfg)
		},
	}
}

// resolveConfig merges the optional run-config file with the flags that
// were explicitly set, then finalizes the result.
func resolveConfig(ctx *cli.Context) (*config.RunConfig, error) {
	cfg := &config.RunConfig{}

	if path := ctx.String("run-config"); path != "" {
		if err := config.LoadFile(path, cfg); err != nil {
			return nil, err
		}
	}

	applyFlags(ctx, cfg)

	if err := cfg.Finalize(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyFlags(ctx *cli.Context, cfg *config.RunConfig) {
	if ctx.IsSet("grb-name") {
		cfg.GRBName = ctx.String("grb-name")
	}

	if ctx.IsSet("config-file") {
		cfg.ConfigFile = ctx.String("config-file")
	}

	if ctx.IsSet("ifo-tag") {
		cfg.IfoTag = ctx.String("ifo-tag")
	}

	if ctx.IsSet("start-time") {
		cfg.StartTime = ctx.Int64("start-time")
	}

	if ctx.IsSet("ra") {
		ra := ctx.Float64("ra")
		cfg.RA = &ra
	}

	if ctx.IsSet("dec") {
		dec := ctx.Float64("dec")
		cfg.Dec = &dec
	}

	if ctx.IsSet("output-path") {
		cfg.OutputPath = ctx.String("output-path")
	}

	if ctx.IsSet("html-path") {
		cfg.HTMLPath = ctx.String("html-path")
	}

	if ctx.IsSet("seg-plot") {
		cfg.SegPlot = ctx.String("seg-plot")
	}

	if ctx.IsSet("injection-tags") {
		cfg.InjectionTags = ctx.String("injection-tags")
	}

	if ctx.IsSet("tuning-injection-tags") {
		cfg.TuningTags = ctx.String("tuning-injection-tags")
	}

	if ctx.IsSet("open-box") {
		cfg.OpenBox = ctx.Bool("open-box")
	}

	if ctx.IsSet("time-slides") {
		cfg.TimeSlides = ctx.Bool("time-slides")
	}

	if ctx.IsSet("sky-error") {
		skyError := ctx.Float64("sky-error")
		cfg.SkyError = &skyError
	}

	if ctx.IsSet("mass-bins") {
		cfg.MassBinSpec = ctx.String("mass-bins")
	}

	if ctx.IsSet("ipn") {
		cfg.IPN = ctx.Bool("ipn")
	}

	if ctx.IsSet("ipn-error") {
		cfg.IPNError = ctx.Float64("ipn-error")
	}
}
