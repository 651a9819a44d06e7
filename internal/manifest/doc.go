// Package manifest defines the generation manifest: the ordered list of
// directories and files that make up a scaffolded project, with the template
// source each file is rendered from. Manifests are YAML, validated against an
// embedded JSON Schema, and every path must stay inside the project root.
package manifest
