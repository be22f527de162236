package config

import (
	"bytes"
	"os"

	"github.com/rileyhilliard/rammon/internal/errors"
	"gopkg.in/yaml.v3"
)

// settings is the subset of Config written on save. Helper fields are
// edited by hand and never rewritten.
type settings struct {
	AutoThreshold float64 `yaml:"auto_threshold"`
	AutoAction    string  `yaml:"auto_action"`
}

// renderSettings produces the bytes to write for cfg. When path already
// holds a YAML mapping, only the owned keys are replaced so comments and
// unrelated keys survive; otherwise a fresh document is produced.
func renderSettings(path string, cfg *Config) ([]byte, error) {
	s := settings{AutoThreshold: cfg.AutoThreshold, AutoAction: cfg.AutoAction}

	data, err := os.ReadFile(path)
	if err != nil || len(bytes.TrimSpace(data)) == 0 {
		return marshalSettings(s)
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		// An unparseable file was already reported on load; replace it.
		return marshalSettings(s)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 || root.Content[0].Kind != yaml.MappingNode {
		return marshalSettings(s)
	}

	doc := root.Content[0]
	if err := setMapValue(doc, "auto_threshold", s.AutoThreshold); err != nil {
		return nil, err
	}
	if err := setMapValue(doc, "auto_action", s.AutoAction); err != nil {
		return nil, err
	}

	return encodeNode(&root)
}

func marshalSettings(s settings) ([]byte, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to encode config",
			"")
	}
	return data, nil
}

func encodeNode(root *yaml.Node) ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(root); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to encode config",
			"")
	}
	encoder.Close()
	return buf.Bytes(), nil
}

// setMapValue replaces the value for key in a mapping node, appending the
// pair when the key is absent. Comments on an existing value are kept.
func setMapValue(node *yaml.Node, key string, value any) error {
	var replacement yaml.Node
	if err := replacement.Encode(value); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to encode config value "+key,
			"")
	}

	if existing := findMapValue(node, key); existing != nil {
		replacement.HeadComment = existing.HeadComment
		replacement.LineComment = existing.LineComment
		replacement.FootComment = existing.FootComment
		*existing = replacement
		return nil
	}

	keyNode := &yaml.Node{
		Kind:  yaml.ScalarNode,
		Tag:   "!!str",
		Value: key,
	}
	node.Content = append(node.Content, keyNode, &replacement)
	return nil
}

// findMapValue finds a value in a mapping node by key name.
func findMapValue(node *yaml.Node, key string) *yaml.Node {
	if node.Kind != yaml.MappingNode {
		return nil
	}

	for i := 0; i < len(node.Content)-1; i += 2 {
		keyNode := node.Content[i]
		valueNode := node.Content[i+1]

		if keyNode.Kind == yaml.ScalarNode && keyNode.Value == key {
			return valueNode
		}
	}

	return nil
}
