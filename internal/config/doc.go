// Package config manages user-level settings stored at ~/.mlcookiecutter/config.yaml.
// Values can be overridden with MLCC_-prefixed environment variables. Keys cover the
// license lookup service (base URL, token, timeout) and generation defaults such as
// the Python version baked into generated workflows.
package config
