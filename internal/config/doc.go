// Package config loads, normalizes, and validates Shuttle's TOML
// configuration: the two watched folder paths and labels, the log and
// database locations, logging options, and the default audit actor.
package config
