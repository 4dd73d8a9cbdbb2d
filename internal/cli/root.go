package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"trip-route-cli/internal/adapters/issnow"
	"trip-route-cli/internal/adapters/routing"
	"trip-route-cli/internal/config"
	"trip-route-cli/internal/platform/obs"
	"trip-route-cli/internal/ports"
	"trip-route-cli/internal/services"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries state shared by all commands. The constructors are swapped in
// tests to keep the network out.
type app struct {
	cfg config.Config
	log *zap.Logger

	fuelRate     float64
	language     string
	profile      string
	logLevel     string
	showPolyline bool

	newRouting   func(cfg config.Config, log *zap.Logger) (ports.Geocoder, ports.RouteProvider, error)
	newPositions func(cfg config.Config, log *zap.Logger) ports.PositionProvider
}

func newApp() *app {
	return &app{
		newRouting: func(cfg config.Config, log *zap.Logger) (ports.Geocoder, ports.RouteProvider, error) {
			p, err := routing.NewORSProvider(cfg.ORSKey, routing.ORSOptions{
				BaseURL:           cfg.ORSBaseURL,
				Profile:           cfg.Profile,
				Language:          cfg.Language,
				GeocodeTimeout:    cfg.GeocodeTimeout,
				DirectionsTimeout: cfg.DirectionsTimeout,
				Logger:            log,
			})
			if err != nil {
				return nil, nil, err
			}
			return p, p, nil
		},
		newPositions: func(cfg config.Config, log *zap.Logger) ports.PositionProvider {
			return issnow.NewClient(cfg.ISSURL, cfg.GeocodeTimeout, log)
		},
	}
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}

func NewRootCmd() *cobra.Command {
	return newRootCmd(newApp())
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "trip",
		Short: "Evaluate driving trips with OpenRouteService",
		Long: `trip asks for an origin and a destination, resolves both with the
OpenRouteService geocoder, requests a driving route and prints distance,
duration, estimated fuel and the turn-by-turn narrative.

Enter 'q' at any prompt to quit. The API key is read from ORS_KEY
(environment or .env file).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInteractive(cmd)
		},
	}

	f := root.PersistentFlags()
	f.Float64Var(&a.fuelRate, "fuel-rate", 0, "fuel consumption in liters per km (default from FUEL_RATE_L_PER_KM or 0.08)")
	f.StringVar(&a.language, "language", "", "narrative language, e.g. en, es (default from ORS_LANGUAGE)")
	f.StringVar(&a.profile, "profile", "", "ORS routing profile (default from ORS_PROFILE or driving-car)")
	f.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error (default from LOG_LEVEL)")
	f.BoolVar(&a.showPolyline, "polyline", false, "print the route geometry as an encoded polyline")

	root.AddCommand(newRouteCmd(a), newISSCmd(a), newTokenCmd(a))
	return root
}

// setup loads configuration, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	dotenv := config.LoadDotEnv()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("fuel-rate") {
		cfg.FuelRate = a.fuelRate
	}
	if flags.Changed("language") {
		cfg.Language = a.language
	}
	if flags.Changed("profile") {
		cfg.Profile = a.profile
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = strings.ToLower(a.logLevel)
	}

	log, err := obs.NewLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("setup: %w", err)
	}
	if !dotenv {
		log.Debug("no .env file found (using environment variables)")
	}

	a.cfg = cfg
	a.log = log
	return nil
}

func (a *app) evaluator(p *Presenter) (*services.TripEvaluator, error) {
	if err := a.cfg.RequireORS(); err != nil {
		return nil, err
	}

	geocoder, router, err := a.newRouting(a.cfg, a.log)
	if err != nil {
		return nil, fmt.Errorf("routing provider: %w", err)
	}

	return &services.TripEvaluator{
		Geocoder: geocoder,
		Router:   router,
		FuelRate: a.cfg.FuelRate,
		Log:      a.log,
		Progress: p.Progress,
	}, nil
}

func (a *app) runInteractive(cmd *cobra.Command) error {
	presenter := NewPresenter(cmd.OutOrStdout(), a.showPolyline)

	ev, err := a.evaluator(presenter)
	if err != nil {
		return err
	}

	return NewSession(cmd.InOrStdin(), presenter, ev, a.log).Run(cmd.Context())
}
