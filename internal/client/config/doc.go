// Package config loads runtime settings for the attendance CLI.
//
// Sources are applied in order, later ones overriding earlier ones:
// built-in defaults, then a JSON file (path via -c/-config), then
// command-line flags.
package config
