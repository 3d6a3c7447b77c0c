package main

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const (
	formatTable = "table"
	formatJSON  = "json"

	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"
)

// Config holds the settings shared by every command. Values come from the
// defaults, then the TOML file, then environment variables and flags.
type Config struct {
	Format    string `toml:"format"`
	Color     string `toml:"color"`
	Verbosity int    `toml:"verbosity"`
	Platform  int    `toml:"platform"`
	Device    int    `toml:"device"`
	Options   string `toml:"options"`
}

func defaultConfig() Config {
	return Config{
		Format:    formatTable,
		Color:     colorAuto,
		Verbosity: 3,
	}
}

const (
	configFlag    = "config"
	formatFlag    = "format"
	colorFlag     = "color"
	verbosityFlag = "verbosity"
	sourceFlag    = "source"
	optionsFlag   = "options"
	platformFlag  = "platform"
	deviceFlag    = "device"
)

// globalFlags returns the app-level flags. urfave/cli stores parsed values
// in the flag structs, so every app needs its own set.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    configFlag,
			Usage:   "TOML configuration file",
			EnvVars: []string{"CLINFO_CONFIG"},
		},
		&cli.StringFlag{
			Name:    formatFlag,
			Usage:   "output format (table, json)",
			Value:   formatTable,
			EnvVars: []string{"CLINFO_FORMAT"},
		},
		&cli.StringFlag{
			Name:    colorFlag,
			Usage:   "colorize output (auto, always, never)",
			Value:   colorAuto,
			EnvVars: []string{"CLINFO_COLOR"},
		},
		&cli.IntFlag{
			Name:    verbosityFlag,
			Usage:   "log level: 0=silent, 1=error, 2=warn, 3=info, 4=debug, 5=detail",
			Value:   3,
			EnvVars: []string{"CLINFO_VERBOSITY"},
		},
	}
}

// buildFlags returns the flags that select where and how a program is built.
func buildFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    optionsFlag,
			Usage:   "program build options",
			EnvVars: []string{"CLINFO_OPTIONS"},
		},
		&cli.IntFlag{
			Name:    platformFlag,
			Usage:   "platform index",
			EnvVars: []string{"CLINFO_PLATFORM"},
		},
		&cli.IntFlag{
			Name:    deviceFlag,
			Usage:   "device index within the platform",
			EnvVars: []string{"CLINFO_DEVICE"},
		},
	}
}

// kernelFlags returns the flags of the kernels command.
func kernelFlags() []cli.Flag {
	source := &cli.StringFlag{
		Name:     sourceFlag,
		Usage:    "OpenCL C source file",
		Required: true,
		EnvVars:  []string{"CLINFO_SOURCE"},
	}
	return append([]cli.Flag{source}, buildFlags()...)
}

// loadConfigFile overlays the file at path onto cfg. Unknown keys are an
// error so typos do not pass silently.
func loadConfigFile(path string, cfg *Config) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Wrapf(err, "config file %s", path)
		}
		return errors.Wrapf(err, "parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return errors.Errorf("%s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	return nil
}

// resolveConfig builds the effective configuration for a command. Flags the
// command does not define are left alone.
func resolveConfig(ctx *cli.Context) (Config, error) {
	cfg := defaultConfig()
	if path := ctx.String(configFlag); path != "" {
		if err := loadConfigFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if ctx.IsSet(formatFlag) {
		cfg.Format = ctx.String(formatFlag)
	}
	if ctx.IsSet(colorFlag) {
		cfg.Color = ctx.String(colorFlag)
	}
	if ctx.IsSet(verbosityFlag) {
		cfg.Verbosity = ctx.Int(verbosityFlag)
	}
	if ctx.IsSet(optionsFlag) {
		cfg.Options = ctx.String(optionsFlag)
	}
	if ctx.IsSet(platformFlag) {
		cfg.Platform = ctx.Int(platformFlag)
	}
	if ctx.IsSet(deviceFlag) {
		cfg.Device = ctx.Int(deviceFlag)
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	switch c.Format {
	case formatTable, formatJSON:
	default:
		return errors.Errorf("invalid format %q (want table or json)", c.Format)
	}
	switch c.Color {
	case colorAuto, colorAlways, colorNever:
	default:
		return errors.Errorf("invalid color mode %q (want auto, always or never)", c.Color)
	}
	if c.Verbosity < 0 || c.Verbosity > 5 {
		return errors.Errorf("verbosity %d out of range 0-5", c.Verbosity)
	}
	if c.Platform < 0 || c.Device < 0 {
		return errors.New("negative platform or device index")
	}
	return nil
}
