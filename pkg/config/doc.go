// Package config defines and loads the critic tool configuration.
//
// Configuration comes from a YAML file, with defaults applied for anything
// unset and CRITIC_* environment variables taking precedence over the file.
// A missing config file is not an error: the tool runs with defaults.
//
// # Loading sequence
//
//  1. Load YAML from file (if present)
//  2. Apply default values
//  3. Apply environment variable overrides
//  4. Validate the final configuration
package config
