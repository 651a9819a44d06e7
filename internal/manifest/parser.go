package manifest

import (
	"fmt"
	"strings"

	"go.yaml.in/yaml/v3"
)

// Parse decodes manifest YAML without validating it.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	return &m, nil
}

// Load validates manifest YAML and decodes it. An invalid manifest yields an
// error listing every issue.
func Load(data []byte) (*Manifest, error) {
	result, err := Validate(data)
	if err != nil {
		return nil, err
	}
	if !result.Valid {
		msgs := make([]string, 0, len(result.Issues))
		for _, issue := range result.Issues {
			msg := issue.Message
			if issue.Path != "" {
				msg = issue.Path + ": " + msg
			}
			msgs = append(msgs, msg)
		}
		return nil, fmt.Errorf("invalid manifest:\n  %s", strings.Join(msgs, "\n  "))
	}
	return Parse(data)
}
