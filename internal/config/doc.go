// Package config provides configuration loading, merging, and validation
// for the bot.
//
// Configuration is assembled from several sources. For each field the first
// source that sets a non-zero value wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON or YAML config file
//  4. Legacy environment variables
//  5. Built-in defaults
//
// The entry point is [GetStructuredConfig].
package config
