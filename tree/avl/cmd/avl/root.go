package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// The prefix for configuration keys inside environment.
	envPrefix = "AVL"

	keyConfig    = "config"
	keyLogLevel  = "log-level"
	keyLogFormat = "log-format"

	logFormatConsole = "console"
	logFormatJSON    = "json"
)

// baseConfiguration is shared by all commands.
type baseConfiguration struct {
	// Configuration file, any format viper understands. Optional.
	CfgFile   string
	LogLevel  string
	LogFormat string

	log zerolog.Logger
}

func newRootCmd() *cobra.Command {
	config := &baseConfiguration{log: zerolog.Nop()}

	var rootCmd = &cobra.Command{
		Use:           "avl",
		Short:         "Build, print and torture AVL trees",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.initialize(cmd); err != nil {
				return fmt.Errorf("failed to initialize configuration: %w", err)
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&config.CfgFile, keyConfig, "", "config file, flags not given on the command line are read from it")
	rootCmd.PersistentFlags().StringVar(&config.LogLevel, keyLogLevel, "info", "log level: trace, debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&config.LogFormat, keyLogFormat, logFormatConsole, "log format: console or json")

	rootCmd.AddCommand(
		newDemoCmd(config),
		newRandomCmd(config),
		newStressCmd(config),
	)

	return rootCmd
}

func (config *baseConfiguration) initialize(cmd *cobra.Command) error {
	var errs []error

	if err := config.initializeConfig(cmd); err != nil {
		errs = append(errs, fmt.Errorf("reading configuration: %w", err))
	}
	if err := config.initLogger(cmd.ErrOrStderr()); err != nil {
		errs = append(errs, fmt.Errorf("initializing logger: %w", err))
	}

	return errors.Join(errs...)
}

// initializeConfig reads the config file and AVL_* environment
// variables into every flag that was not set on the command line.
func (config *baseConfiguration) initializeConfig(cmd *cobra.Command) error {
	v := viper.New()

	if config.CfgFile != "" {
		v.SetConfigFile(config.CfgFile)
		if err := v.ReadInConfig(); err != nil {
			return err
		}
	}

	// a flag like --log-level binds to AVL_LOG_LEVEL
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if err := bindFlags(cmd, v); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}
	return nil
}

// Bind each cobra flag to its associated viper configuration (config file and environment variable)
func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	var bindFlagErr []error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Name == keyConfig {
			return
		}

		// Environment variables can't have dashes in them, so bind them to their equivalent
		// keys with underscores, e.g. --log-level to AVL_LOG_LEVEL
		if strings.Contains(f.Name, "-") {
			envVarSuffix := strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
			if err := v.BindEnv(f.Name, fmt.Sprintf("%s_%s", envPrefix, envVarSuffix)); err != nil {
				bindFlagErr = append(bindFlagErr, fmt.Errorf("binding env to flag %q: %w", f.Name, err))
				return
			}
		}

		// Apply the viper config value to the flag when the flag is not set and viper has a value
		if !f.Changed && v.IsSet(f.Name) {
			val := fmt.Sprintf("%v", v.Get(f.Name))
			if strings.HasSuffix(f.Value.Type(), "Slice") {
				// lists come from yaml as []any and from the environment as "1,2,3"
				val = strings.Join(v.GetStringSlice(f.Name), ",")
			}
			if err := cmd.Flags().Set(f.Name, val); err != nil {
				bindFlagErr = append(bindFlagErr, fmt.Errorf("setting flag %q value: %w", f.Name, err))
				return
			}
		}
	})

	return errors.Join(bindFlagErr...)
}

func (config *baseConfiguration) initLogger(w io.Writer) error {
	level, err := zerolog.ParseLevel(config.LogLevel)
	if err != nil {
		return err
	}

	switch config.LogFormat {
	case logFormatConsole:
		config.log = zerolog.New(zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.Kitchen,
		}).With().Timestamp().Logger()
	case logFormatJSON:
		config.log = zerolog.New(w).With().Timestamp().Logger()
	default:
		return fmt.Errorf("unknown log format %q", config.LogFormat)
	}

	config.log = config.log.Level(level)
	return nil
}
