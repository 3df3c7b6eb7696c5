// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for fields they set):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry point is [GetStructuredConfig]. No operational value is
// hard-coded: the listen address, database connection, session secret,
// rate-limit budget, and allowed origins all come from configuration.
package config
