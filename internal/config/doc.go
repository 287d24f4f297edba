// Package config manages user-level settings stored at ~/.semi/config.yaml.
// Values can be overridden with SEMI_* environment variables; keys cover the
// preferred package manager, the log level and the default answers of the
// module prompts shown by "create".
package config
