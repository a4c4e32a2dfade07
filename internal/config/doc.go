// Package config provides configuration loading, merging, and validation
// facilities for the CoreAPI client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. dotenv file (./config/.env by default)
//  2. JSON config file
//  3. Process environment variables
//  4. Command-line flag overrides
//
// The main entry point is [GetConfig]. The resulting [Config] is constructed
// once at startup and passed by pointer to every component that needs it;
// there are no package-level settings.
package config
