// Package config provides configuration loading, merging, and validation
// for the Bluedog client and bridge.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON or YAML config file
//
// Fields still unset afterwards take the values of [Defaults]. The main
// entry point is [GetClientConfig].
package config
