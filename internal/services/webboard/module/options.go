package module

import "hirehub/internal/platform/config"

// Options holds configuration settings for the webboard module
type Options struct {
	DefaultPageSize int
	MaxPageSize     int
}

// FromConfig reads configuration settings from the config.Conf
func FromConfig(cfg config.Conf) Options {
	wf := cfg.Prefix("CORE_WEBBOARD_")
	return Options{
		DefaultPageSize: wf.MayInt("DEFAULT_PAGE_SIZE", 20),
		MaxPageSize:     wf.MayInt("MAX_PAGE_SIZE", 50),
	}
}
