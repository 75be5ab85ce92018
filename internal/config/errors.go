package config

import "errors"

var (
	ErrInvalidAppConfigs     = errors.New("invalid app configuration")
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	ErrInvalidFeedConfigs    = errors.New("invalid feed configuration")
	ErrInvalidBridgeConfigs  = errors.New("invalid bridge configuration")
	ErrUnsupportedConfigFile = errors.New("unsupported config file extension")
)
