package reference

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

type skeletonNote struct {
	Text    string `yaml:"Text"`
	Comment string `yaml:"Comment"`
}

type skeletonItem struct {
	Name  string         `yaml:"Name"`
	Notes []skeletonNote `yaml:"Notes"`
}

type skeletonReference struct {
	Description string         `yaml:"Description"`
	Items       []skeletonItem `yaml:"Items"`
}

// Skeleton returns the YAML of a new reference titled title, holding one
// example item so the file loads as is.
func Skeleton(title string) ([]byte, error) {
	out, err := yaml.Marshal(skeletonReference{
		Description: fmt.Sprintf("# %s\n\nDescribe what this reference covers.\n", title),
		Items: []skeletonItem{{
			Name: "Examples",
			Notes: []skeletonNote{{
				Text:    "echo <MESSAGE>",
				Comment: "replace with your first note",
			}},
		}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build reference skeleton: %w", err)
	}
	return out, nil
}
