// Package cli defines the Cobra command tree for the mlcookiecutter CLI. Each file
// in this package registers one top-level command (create, licenses, config, version)
// with the root command. Command implementations delegate to internal packages
// for business logic and only handle flag parsing, prompting, and output.
package cli
