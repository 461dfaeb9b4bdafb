package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/Seednode/duelbox/games/minigame"
)

type Config struct {
	bind          string
	fallingSpeed  float64
	port          int
	prefix        string
	profile       bool
	seed          int64
	simonMaxSteps int
	tickRate      int
	tlsCert       string
	tlsKey        string
	verbose       bool
	version       bool
}

func (c *Config) validate() error {
	if (c.tlsCert == "") != (c.tlsKey == "") {
		return errors.New("both --tls-cert and --tls-key must be provided together")
	}
	if c.port < 1 || c.port > 65535 {
		return fmt.Errorf("invalid port (must be between 1-65535 inclusive): %d", c.port)
	}
	if c.tickRate < 1 || c.tickRate > 1000 {
		return fmt.Errorf("invalid tick rate (must be between 1-1000 inclusive): %d", c.tickRate)
	}
	if c.fallingSpeed <= 0 {
		return fmt.Errorf("invalid falling speed (must be positive): %v", c.fallingSpeed)
	}
	if c.simonMaxSteps < 0 {
		return fmt.Errorf("invalid simon says step limit (must be 0 or more): %d", c.simonMaxSteps)
	}
	return nil
}

func (c *Config) scheme() string {
	if c.tlsCert != "" && c.tlsKey != "" {
		return "https"
	}
	return "http"
}

// options turns the game flags into session options.
func (c *Config) options() minigame.Options {
	opts := minigame.DefaultOptions()
	opts.FallingSpeed = c.fallingSpeed
	opts.SimonMaxSteps = c.simonMaxSteps
	return opts
}

func newCmd(cfg *Config) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("DUELBOX")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "duelbox",
		Short:         "A two-player, one-keyboard minigame duel served to your browser.",
		Args:          cobra.ExactArgs(0),
		SilenceErrors: true,
		Version:       releaseVersion,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.validate(); err != nil {
				return err
			}
			return ServePage(cmd.Context(), cfg)
		},
	}

	fs := cmd.Flags()

	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	fs.StringVarP(&cfg.bind, "bind", "b", "127.0.0.1", "address to bind to (env: DUELBOX_BIND)")
	fs.Float64Var(&cfg.fallingSpeed, "falling-speed", minigame.DefaultFallingSpeed, "just in time descent speed, in units per second (env: DUELBOX_FALLING_SPEED)")
	fs.IntVarP(&cfg.port, "port", "p", 8080, "port to listen on (env: DUELBOX_PORT)")
	fs.StringVar(&cfg.prefix, "prefix", "", "path to prepend to all URLs, for use behind reverse proxy (env: DUELBOX_PREFIX)")
	fs.BoolVar(&cfg.profile, "profile", false, "register net/http/pprof handlers (env: DUELBOX_PROFILE)")
	fs.Int64Var(&cfg.seed, "seed", 0, "random seed for minigame selection and timings, 0 for a random seed (env: DUELBOX_SEED)")
	fs.IntVar(&cfg.simonMaxSteps, "simon-max-steps", minigame.DefaultSimonMaxSteps, "passed simon says steps before the round is called a tie, 0 for no limit (env: DUELBOX_SIMON_MAX_STEPS)")
	fs.IntVar(&cfg.tickRate, "tick-rate", 60, "game ticks per second (env: DUELBOX_TICK_RATE)")
	fs.StringVar(&cfg.tlsCert, "tls-cert", "", "path to tls certificate (env: DUELBOX_TLS_CERT)")
	fs.StringVar(&cfg.tlsKey, "tls-key", "", "path to tls keyfile (env: DUELBOX_TLS_KEY)")
	fs.BoolVarP(&cfg.verbose, "verbose", "v", false, "display additional output (env: DUELBOX_VERBOSE)")
	fs.BoolVarP(&cfg.version, "version", "V", false, "display version and exit (env: DUELBOX_VERSION)")

	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.SetVersionTemplate("duelbox v{{.Version}}\n")

	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	return cmd
}
