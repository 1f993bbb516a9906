package main

import (
	"github.com/BurntSushi/toml"

	"github.com/JohnPeel/mediatype/internal/errorutil"
)

const errLoadConfig errorutil.Error = "load config"

type config struct {
	DevLog     bool
	Sort       bool
	ShowParams bool
}

func defaultConfig() config { return config{} }

// fileConfig maps config.toml keys to runtime settings.
type fileConfig struct {
	DevLog     bool `toml:"dev_log"`
	Sort       bool `toml:"sort"`
	ShowParams bool `toml:"show_params"`
}

// loadConfig overlays the keys present in the file over the defaults.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return config{}, errorutil.NewWrapperError(errLoadConfig, err)
	}

	if meta.IsDefined("dev_log") {
		cfg.DevLog = raw.DevLog
	}
	if meta.IsDefined("sort") {
		cfg.Sort = raw.Sort
	}
	if meta.IsDefined("show_params") {
		cfg.ShowParams = raw.ShowParams
	}
	return cfg, nil
}
