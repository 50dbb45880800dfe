package module

import "hirehub/internal/platform/config"

// Options holds configuration settings for the listings module
type Options struct {
	DefaultPageSize int
	MaxPageSize     int
}

// FromConfig reads configuration settings from the config.Conf
func FromConfig(cfg config.Conf) Options {
	lf := cfg.Prefix("CORE_LISTINGS_")
	return Options{
		DefaultPageSize: lf.MayInt("DEFAULT_PAGE_SIZE", 24),
		MaxPageSize:     lf.MayInt("MAX_PAGE_SIZE", 50),
	}
}
