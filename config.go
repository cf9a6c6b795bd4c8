/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package main

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/Seednode/hangman/hangman"
)

const envPrefix = "HANGMAN"

type Config struct {
	bind        string
	configFile  string
	guesses     int
	logFile     string
	placeholder string
	port        int
	prefix      string
	profile     bool
	rooms       []string
	secret      string
	tlsCert     string
	tlsKey      string
	utcOffset   float64
	verbose     bool
	version     bool
}

func (c *Config) validate() error {
	if (c.tlsCert == "") != (c.tlsKey == "") {
		return errors.New("both --tls-cert and --tls-key must be provided together")
	}
	if c.port < 1 || c.port > 65535 {
		return fmt.Errorf("invalid port (must be between 1-65535 inclusive): %d", c.port)
	}
	if c.utcOffset < -14 || c.utcOffset > 14 {
		return fmt.Errorf("invalid utc offset (must be between -14 and 14 hours): %g", c.utcOffset)
	}
	if c.guesses < 1 {
		return fmt.Errorf("invalid guess allowance (must be at least 1): %d", c.guesses)
	}
	if utf8.RuneCountInString(c.placeholder) != 1 {
		return fmt.Errorf("invalid placeholder (must be exactly one character): %q", c.placeholder)
	}
	if r, _ := utf8.DecodeRuneInString(c.placeholder); unicode.IsLetter(r) {
		return fmt.Errorf("invalid placeholder (must not be a letter): %q", c.placeholder)
	}
	if len(c.rooms) == 0 {
		return errors.New("at least one room name must be provided")
	}

	seen := make(map[string]bool, len(c.rooms))
	for _, room := range c.rooms {
		if err := hangman.CheckName(room); err != nil {
			return fmt.Errorf("invalid room name %q (letters, numbers and underscores only)", room)
		}
		if seen[room] {
			return fmt.Errorf("duplicate room name: %q", room)
		}
		seen[room] = true
	}

	return nil
}

func (c *Config) scheme() string {
	if c.tlsCert != "" && c.tlsKey != "" {
		return "https"
	}
	return "http"
}

// location is the display timezone for log timestamps.
func (c *Config) location() *time.Location {
	return time.FixedZone(fmt.Sprintf("UTC%+g", c.utcOffset), int(c.utcOffset*3600))
}

func (c *Config) settings() hangman.Settings {
	r, _ := utf8.DecodeRuneInString(c.placeholder)

	return hangman.Settings{
		Placeholder:    r,
		InitialGuesses: c.guesses,
		Logf: func(format string, args ...any) {
			logf(c, format, args...)
		},
	}
}

// ensureSecret generates an ephemeral signing key when none was configured.
func (c *Config) ensureSecret() error {
	if c.secret != "" {
		return nil
	}

	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return fmt.Errorf("generating secret: %w", err)
	}
	c.secret = hex.EncodeToString(buf)

	logf(c, "START: No --secret provided, generated an ephemeral key")

	return nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v
}

// applyConfig fills every flag not set on the command line from the
// environment, then the config file.
func applyConfig(v *viper.Viper, cfg *Config, fs *pflag.FlagSet) error {
	if cfg.configFile != "" {
		v.SetConfigFile(cfg.configFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file: %w", err)
		}
	}

	var err error

	fs.VisitAll(func(f *pflag.Flag) {
		if err != nil || f.Changed || f.Name == "config" {
			return
		}

		_ = v.BindEnv(f.Name)
		if !v.IsSet(f.Name) {
			return
		}

		value := fmt.Sprintf("%v", v.Get(f.Name))
		if f.Value.Type() == "stringSlice" {
			value = strings.Join(v.GetStringSlice(f.Name), ",")
		}

		if setErr := fs.Set(f.Name, value); setErr != nil {
			err = fmt.Errorf("invalid value for --%s: %w", f.Name, setErr)
		}
	})

	return err
}

func newCmd(cfg *Config) *cobra.Command {
	v := newViper()

	cmd := &cobra.Command{
		Use:           "hangman",
		Short:         "Two-player hangman rooms with chat, served over WebSockets.",
		Args:          cobra.ExactArgs(0),
		SilenceErrors: true,
		Version:       releaseVersion,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return applyConfig(v, cfg, cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.validate(); err != nil {
				return err
			}

			closeLog, err := setupLogging(cfg)
			if err != nil {
				return err
			}
			defer closeLog()

			if err := cfg.ensureSecret(); err != nil {
				return err
			}

			return ServePage(cmd.Context(), cfg)
		},
	}

	fs := cmd.Flags()

	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	fs.StringVarP(&cfg.bind, "bind", "b", "0.0.0.0", "address to bind to (env: HANGMAN_BIND)")
	fs.StringVarP(&cfg.configFile, "config", "c", "", "path to a json, yaml or toml config file")
	fs.IntVar(&cfg.guesses, "guesses", 6, "incorrect guesses allowed per round (env: HANGMAN_GUESSES)")
	fs.StringVar(&cfg.logFile, "log-file", "", "also append log output to this file (env: HANGMAN_LOG_FILE)")
	fs.StringVar(&cfg.placeholder, "placeholder", "-", "character shown for unrevealed letters (env: HANGMAN_PLACEHOLDER)")
	fs.IntVarP(&cfg.port, "port", "p", 8080, "port to listen on (env: HANGMAN_PORT)")
	fs.StringVar(&cfg.prefix, "prefix", "", "path to prepend to all URLs, for use behind reverse proxy (env: HANGMAN_PREFIX)")
	fs.BoolVar(&cfg.profile, "profile", false, "register net/http/pprof handlers (env: HANGMAN_PROFILE)")
	fs.StringSliceVar(&cfg.rooms, "rooms", []string{"Alpha", "Bravo", "Charlie", "Delta"}, "names of the game rooms (env: HANGMAN_ROOMS)")
	fs.StringVar(&cfg.secret, "secret", "", "key used to sign lobby notices, random if unset (env: HANGMAN_SECRET)")
	fs.StringVar(&cfg.tlsCert, "tls-cert", "", "path to tls certificate (env: HANGMAN_TLS_CERT)")
	fs.StringVar(&cfg.tlsKey, "tls-key", "", "path to tls keyfile (env: HANGMAN_TLS_KEY)")
	fs.Float64Var(&cfg.utcOffset, "utc-offset", 0, "timezone offset in hours for log timestamps (env: HANGMAN_UTC_OFFSET)")
	fs.BoolVarP(&cfg.verbose, "verbose", "v", false, "display additional output (env: HANGMAN_VERBOSE)")
	fs.BoolVarP(&cfg.version, "version", "V", false, "display version and exit (env: HANGMAN_VERSION)")

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.SetVersionTemplate("hangman v{{.Version}}\n")

	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	return cmd
}
