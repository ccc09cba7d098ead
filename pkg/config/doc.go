// Package config provides configuration loading, defaults, validation, and
// hot reloading for the gateway.
//
// # Loading
//
// Configuration is loaded from a YAML file with [Load], or with
// [LoadWithEnvOverrides] to additionally honor NORDICS_* environment
// variables. Loading always follows the same sequence:
//
//  1. Start from [DefaultConfig]
//  2. Unmarshal the YAML file over the defaults
//  3. Apply environment variable overrides (LoadWithEnvOverrides only)
//  4. Validate the final configuration
//
// Starting from the defaults rather than a zero value means boolean fields
// that default to true (security headers, rate limiting) keep their defaults
// when the file omits them.
//
// # Hot reload
//
// [Watcher] watches the configuration file with fsnotify and invokes a
// reload callback after a debounce interval. Only settings that are safe to
// swap at runtime (header policy, rate-limit thresholds, log level) should
// be applied from a reload; listen addresses and storage backends require a
// restart.
package config
