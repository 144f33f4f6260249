// Package config provides configuration loading, merging, and validation
// facilities for the task keeper server.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. .env file
//  2. Environment variables
//  3. Command-line flags
//  4. JSON (comments and trailing commas allowed) or YAML config file
//
// Fields left empty by every source receive defaults, then the result is
// validated. The main entry point is [GetStructuredConfig].
package config
