// Package config loads the storefront's TOML configuration file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/chased/config.toml (default)
//  3. If the config file doesn't exist, fall back to defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - Config file: ~/.config/chased/config.toml
//   - Currency symbol: £
//   - Catalog: the embedded default catalog
//   - Log file: ~/.local/share/chased/chased.log
//   - Log level: info
//
// # TOML Format
//
//	currency = "£"
//	catalog = "catalog.yaml"
//	log_file = "~/.local/share/chased/chased.log"
//	log_level = "debug"
//
// Every field is optional. Tilde expansion is performed for catalog and
// log_file; a relative catalog path is resolved against the directory that
// holds the config file. An unknown log_level is a parse error.
//
// Missing config files are NOT an error. The storefront runs out of the box
// on the embedded catalog.
package config
