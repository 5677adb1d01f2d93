package config

import "errors"

var (
	ErrInvalidConfig       = errors.New("invalid configuration")
	ErrConfigParseError    = errors.New("configuration parse error")
	ErrEnvironmentVarError = errors.New("environment variable error")
)
