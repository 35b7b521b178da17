package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"canvasedit/internal/app"
	"canvasedit/internal/config"
	"canvasedit/internal/logger"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "canvasedit failed: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flags := config.NewFlags("canvasedit", os.Stderr)
	if err := flags.Parse(args); err != nil {
		return err
	}

	cfg, closer, err := setup(flags, os.Stderr)
	if err != nil {
		return err
	}
	defer closer.Close()

	docPath := flags.DocPath
	if docPath == "" && len(flags.Args()) > 0 {
		docPath = flags.Args()[0]
	}
	application, err := app.New(cfg, docPath)
	if err != nil {
		return err
	}
	return application.Run()
}

// setup logs to early until the configured logger replaces it, so
// warnings raised while reading the config file are kept.
func setup(flags *config.Flags, early io.Writer) (*config.Config, io.Closer, error) {
	logger.Init(logger.NewConfig(), early)

	cfg, loadErr := config.Load(flags.ConfigPath())
	flags.ApplyOverrides(cfg)

	closer, err := logger.Setup(cfg.Logger)
	if err != nil {
		return nil, nil, fmt.Errorf("set up logging: %w", err)
	}
	if loadErr != nil {
		logger.Warnf("using default configuration: %v", loadErr)
	}
	return cfg, closer, nil
}
