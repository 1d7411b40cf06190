// Package config loads and validates the mdwx configuration.
//
// A configuration file is TOML (.toml) or YAML (.yaml, .yml):
//
//	[general]
//	log_level = "debug"
//
//	[io]
//	chunk_size = 8192
//
//	[execution]
//	parallelism = 8
//	timeout = "30s"
//
// Load looks for a file in the MDWX_CONFIG environment variable and then in
// ./mdwx.toml, ./mdwx.yaml, ./configs/mdwx.toml and ~/.config/mdwx/config.toml.
// Settings not present in the file keep their defaults.
package config
