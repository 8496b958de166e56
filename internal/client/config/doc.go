// Package config loads runtime configuration for the StreamTube client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config (see parseJson).
//  3. Optional .env file in the working directory, then process environment
//     variables prefixed with STREAMTUBE_ (see parseEnv).
//  4. Command-line flags (see parseFlags), which override everything else.
//
// Supported flags
//
//	-a string   base URL of the backend REST API
//	-t int      request timeout (seconds)
//	-s string   storage backend: sqlite, secure or memory
//	-d string   data directory for the local stores
//	-l string   log level: debug, info, warn, error
//
// # JSON schema
//
// Durations accept strings like "30s" or integer nanoseconds:
//
//	{
//	  "server_base_url": "https://backend-youtube-lubk.onrender.com/api/v1",
//	  "request_timeout": "30s",
//	  "storage_backend": "sqlite",
//	  "data_dir": ".streamtube",
//	  "log_level": "info",
//	  "requests_per_second": 5
//	}
package config
