// Package config loads application settings from BATCHPLOT_* environment
// variables with sensible defaults, following the 12-factor convention.
package config
