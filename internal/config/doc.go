// Package config manages user-level settings stored at ~/.oopdocs/config.yaml
// and OOPDOCS_* environment variables, such as the default scaffold target
// directory.
package config
