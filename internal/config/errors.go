package config

import "fmt"

// ConfigError reports a missing, unreadable or invalid configuration value.
// Key is empty when the problem concerns the file as a whole.
type ConfigError struct {
	Key string
	Msg string
	Err error
}

func (e *ConfigError) Error() string {
	msg := e.Msg
	if e.Key != "" {
		msg = fmt.Sprintf("%s: %s", e.Key, e.Msg)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return "config: " + msg
}

func (e *ConfigError) Unwrap() error { return e.Err }

func missingKey(key string) error {
	return &ConfigError{Key: key, Msg: "missing required key"}
}
