// Package config manages gup configuration.
//
// It handles:
//   - Environment settings (token, logging, prompting, polling)
//   - Repository-specific configuration read from .gup.yaml
package config
