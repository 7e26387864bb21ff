// Package config loads runtime configuration for the filedrop CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via flags: -c or -config.
//  3. Environment variables, with .env support: FILEDROP_API_URL,
//     FILEDROP_DOWNLOAD_DIR.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the file-sharing API
//	-t int      request timeout (seconds)
//	-d string   download directory
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so values can be
// either strings like "60s" or integer nanoseconds:
//
//	{
//	  "base_url": "http://localhost:8000",
//	  "request_timeout": "60s",
//	  "download_dir": "~/Downloads"
//	}
package config
