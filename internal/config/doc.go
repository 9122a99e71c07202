// Package config provides configuration loading, merging, and validation
// facilities for the SecurNote server and CLI client.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults ([Defaults])
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the CLI client.
package config
