// Package config loads runtime configuration for the textfix client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the correction server
//	-d string   data directory (database, log file)
//	-x string   export directory
//	-t int      request timeout (seconds)
//	-i int      online status check interval (seconds)
//	-u string   user interface: repl or tui
//	-l string   log level
//
// # JSON schema
//
// Durations use timex.Duration, so they can be strings like "3s" or integer
// nanoseconds. Keys that are absent keep their current value:
//
//	{
//	  "server_url": "http://127.0.0.1:8000",
//	  "data_dir": "~/.textfix",
//	  "export_dir": "exports",
//	  "request_timeout": "30s",
//	  "online_check_interval": "3s",
//	  "ui": "tui",
//	  "log_level": "debug"
//	}
package config
