package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	_ "github.com/joho/godotenv/autoload"

	"github.com/carlmjohnson/versioninfo"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newApp(out, errOut io.Writer) *cli.App {
	app := &cli.App{
		Name:      "bstdemo",
		Usage:     "build binary search trees and print what the tree operations do to them",
		Version:   versioninfo.Short(),
		Writer:    out,
		ErrWriter: errOut,
	}
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "log verbosity level (error, warn, info, debug)",
			Value:   "warn",
			EnvVars: []string{"BSTDEMO_LOG_LEVEL", "LOG_LEVEL"},
		},
	}
	app.Before = func(cctx *cli.Context) error {
		configLogger(cctx, errOut)
		return nil
	}
	app.Commands = []*cli.Command{
		cmdDemo,
		cmdSorted,
		cmdLevels,
		cmdShow,
		cmdRotate,
	}
	return app
}

func configLogger(cctx *cli.Context, writer io.Writer) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cctx.String("log-level")) {
	case "error":
		level = slog.LevelError
	case "warn":
		level = slog.LevelWarn
	case "info":
		level = slog.LevelInfo
	case "debug":
		level = slog.LevelDebug
	default:
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(writer, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	return logger
}
