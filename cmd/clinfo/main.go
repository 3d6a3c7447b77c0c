// Command clinfo lists OpenCL platforms and reports on the kernels of an
// OpenCL C program, using the cl3 binding.
//
// Build with -tags opencl to link the native driver.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/cwbudde/cl3"
	"github.com/ethereum/go-ethereum/log"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp(nativeBackend{}, os.Stdout).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp(b backend, stdout io.Writer) *cli.App {
	return &cli.App{
		Name:  "clinfo",
		Usage: "inspect OpenCL platforms and kernels",
		Flags: globalFlags(),
		Before: func(ctx *cli.Context) error {
			cfg, err := resolveConfig(ctx)
			if err != nil {
				return err
			}
			setupLogger(os.Stderr, cfg.Verbosity, cfg.Color)
			if !cl3.Linked() {
				log.Warn("Binary built without the opencl tag, no driver linked")
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "platforms",
				Usage: "list platforms, their properties and devices",
				Action: func(ctx *cli.Context) error {
					cfg, err := resolveConfig(ctx)
					if err != nil {
						return err
					}
					reports, err := collectPlatforms(b)
					if err != nil {
						return err
					}
					return newRenderer(stdout, cfg.Format, useColor(cfg.Color, stdout)).platforms(reports)
				},
			},
			{
				Name:      "kernels",
				Usage:     "build a program and report on its kernels",
				ArgsUsage: " ",
				Flags:     kernelFlags(),
				Action: func(ctx *cli.Context) error {
					cfg, err := resolveConfig(ctx)
					if err != nil {
						return err
					}
					source, err := os.ReadFile(ctx.String(sourceFlag))
					if err != nil {
						return errors.Wrap(err, "read source")
					}
					r := newRenderer(stdout, cfg.Format, useColor(cfg.Color, stdout))
					reports, err := collectKernels(b, string(source), cfg)
					var buildErr *BuildError
					if errors.As(err, &buildErr) {
						r.buildLog(buildErr)
						return buildErr
					}
					if err != nil {
						return err
					}
					return r.kernels(reports)
				},
			},
		},
	}
}

// setupLogger installs the terminal handler on w at the legacy geth
// verbosity level, colored according to the color mode.
func setupLogger(w io.Writer, verbosity int, color string) {
	glogger := log.NewGlogHandler(log.NewTerminalHandler(w, useColor(color, w)))
	glogger.Verbosity(log.FromLegacyLevel(verbosity))
	log.SetDefault(log.NewLogger(glogger))
}

func useColor(mode string, w io.Writer) bool {
	switch mode {
	case colorAlways:
		return true
	case colorNever:
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
