package config

import (
	"flag"
	"fmt"
	"io"
)

// Flags holds values parsed from command-line flags.
type Flags struct {
	ConfigFilePath string
	DocPath        string
	Width          float64
	LogLevel       string
	LogFilePath    string

	fs *flag.FlagSet
}

// NewFlags defines the flags on a fresh set named name.
func NewFlags(name string, output io.Writer) *Flags {
	f := &Flags{fs: flag.NewFlagSet(name, flag.ContinueOnError)}
	f.fs.SetOutput(output)
	f.fs.StringVar(&f.ConfigFilePath, "config", "", fmt.Sprintf("Path to TOML configuration file (default %s)", DefaultPath()))
	f.fs.StringVar(&f.DocPath, "doc", "", "Path to a JSON document to open")
	f.fs.Float64Var(&f.Width, "width", 0, "Wrap width in pixels - Overrides config file")
	f.fs.StringVar(&f.LogLevel, "log-level", "", "Log level (debug, info, warn, error) - Overrides config file")
	f.fs.StringVar(&f.LogFilePath, "log-file", "", "Path to write log file (use '-' for stderr) - Overrides config file")
	return f
}

func (f *Flags) Parse(args []string) error {
	return f.fs.Parse(args)
}

// Args returns the non-flag arguments.
func (f *Flags) Args() []string {
	return f.fs.Args()
}

// ConfigPath is the -config value, or the default location.
func (f *Flags) ConfigPath() string {
	if f.ConfigFilePath != "" {
		return f.ConfigFilePath
	}
	return DefaultPath()
}

// ApplyOverrides copies flags that were set on the command line into cfg.
func (f *Flags) ApplyOverrides(cfg *Config) {
	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "width":
			if f.Width > 0 {
				cfg.Editor.Width = f.Width
			}
		case "log-level":
			if f.LogLevel != "" {
				cfg.Logger.LogLevel = f.LogLevel
			}
		case "log-file":
			cfg.Logger.LogFilePath = f.LogFilePath
		}
	})
}
