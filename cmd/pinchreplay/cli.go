package main

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/pinch/replay"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type option struct {
	name, usage string
	defaultVal  interface{}
}

var options = []option{
	{"config", "configuration file (yaml, json or toml)", ""},
	{"log-level", "log level: trace, debug, info, warn or error", "info"},
	{"color", "colourise the replay output", false},
	{"draw", "save the gesture trace to this PNG file", ""},
	{"draw-scale", "pixels per touch coordinate unit in the trace", 1.0},
	{"imgcat", "print the gesture trace inline (iTerm only)", false},
}

// Options are bound to cfg, so each can be set by flag, by a PINCH_
// environment variable (PINCH_LOG_LEVEL, ...) or in the configuration file, in
// that order of precedence.
func newRootCmd(cfg *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pinchreplay [frame log]",
		Short: "Replay a recorded touch frame log through a pinch tracker",
		Long: `pinchreplay feeds a frame log, one frame of touches per line, through a
pinch tracker and prints the manipulation derived after every frame. The log
is read from standard input when no file is given.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return readConfig(cfg)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(cfg.GetString("log-level"), cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			in := cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return errors.Wrap(err, "opening frame log")
				}
				defer f.Close()
				in = f
				logger.WithField("file", args[0]).Debug("reading frame log")
			}

			steps, err := replay.RunReader(in, replay.Options{
				Logger:    logger,
				DrawPath:  cfg.GetString("draw"),
				DrawScale: cfg.GetFloat64("draw-scale"),
				Imgcat:    cfg.GetBool("imgcat"),
			})
			if err != nil {
				return err
			}
			return replay.Print(cmd.OutOrStdout(), steps, aurora.NewAurora(cfg.GetBool("color")))
		},
	}

	cfg.SetEnvPrefix("PINCH")
	cfg.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	cfg.AutomaticEnv()

	flags := cmd.PersistentFlags()
	for _, o := range options {
		switch v := o.defaultVal.(type) {
		case string:
			flags.String(o.name, v, o.usage)
		case bool:
			flags.Bool(o.name, v, o.usage)
		case float64:
			flags.Float64(o.name, v, o.usage)
		default:
			panic(errors.Errorf("unsupported default %T for option %s", v, o.name))
		}
		cfg.SetDefault(o.name, o.defaultVal)
		if err := cfg.BindPFlag(o.name, flags.Lookup(o.name)); err != nil {
			panic(err)
		}
	}
	return cmd
}

func readConfig(cfg *viper.Viper) error {
	path := cfg.GetString("config")
	if path == "" {
		return nil
	}
	cfg.SetConfigFile(path)
	if err := cfg.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "reading configuration file %s", path)
	}
	return nil
}

func newLogger(level string, out io.Writer) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrap(err, "parsing log level")
	}
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(lvl)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339Nano,
	})
	return logger, nil
}
