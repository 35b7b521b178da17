package config

const (
	AppName               = "canvasedit"
	DefaultConfigFileName = "config.toml"

	DefaultWidth        = 500.0
	DefaultHistoryLimit = 0
	SystemClipboard     = true
)
