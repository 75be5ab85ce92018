package config

const maxPageSize = 100

func (cfg *StructuredConfig) validate() error {
	return nil
}

func validLimit(n int) bool {
	return n >= 1 && n <= maxPageSize
}

func (cfg *ClientConfig) validate() error {
	if cfg.App.DataDir == "" {
		return ErrInvalidAppConfigs
	}

	if !validServiceURL(cfg.Adapter.ServiceURL) || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Adapter.RateLimit <= 0 || cfg.Adapter.RateBurst < 1 {
		return ErrInvalidAdapterConfigs
	}

	if !validLimit(cfg.Feed.TimelineLimit) || !validLimit(cfg.Feed.SearchLimit) || !validLimit(cfg.Feed.AuthorLimit) {
		return ErrInvalidFeedConfigs
	}

	if cfg.Bridge.HTTPAddress == "" || cfg.Bridge.ShutdownTimeout <= 0 {
		return ErrInvalidBridgeConfigs
	}

	return nil
}
