package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnknownKey is returned by Get and Set for keys outside the schema.
var ErrUnknownKey = errors.New("unknown configuration key")

// settableKeys lists the dotted keys accepted by Get and Set.
//
//nolint:gochecknoglobals // Lookup table for config get/set.
var settableKeys = map[string]bool{
	"api.workspace":        true,
	"api.domain":           true,
	"api.port":             true,
	"api.base_url":         true,
	"api.timeout":          true,
	"api.follow_pages":     true,
	"api.max_pages":        true,
	"api.page_rate":        true,
	"display.locale":       true,
	"display.output":       true,
	"display.plain":        true,
	"display.no_color":     true,
	"logging.level":        true,
	"logging.format":       true,
	"logging.file":         true,
	"tracing.endpoint":     true,
	"tracing.service_name": true,
	"tracing.insecure":     true,
}

// Keys returns all settable keys in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(settableKeys))
	for k := range settableKeys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Get returns the value of a dotted key such as "api.port" rendered as a string.
func (c *Config) Get(key string) (string, error) {
	section, field, err := splitKey(key)
	if err != nil {
		return "", err
	}

	sections, err := c.sections()
	if err != nil {
		return "", err
	}
	value, ok := sections[section][field]
	if !ok || value == nil {
		return "", nil
	}
	return fmt.Sprint(value), nil
}

// Set assigns value to a dotted key. The value is decoded with YAML scalar
// rules into the field's type, so "8080" sets an int and "true" a bool.
func (c *Config) Set(key, value string) error {
	section, field, err := splitKey(key)
	if err != nil {
		return err
	}

	doc := &yaml.Node{
		Kind: yaml.MappingNode,
		Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Value: section},
			{
				Kind: yaml.MappingNode,
				Content: []*yaml.Node{
					{Kind: yaml.ScalarNode, Value: field},
					{Kind: yaml.ScalarNode, Value: value},
				},
			},
		},
	}
	if err = doc.Decode(c); err != nil {
		return fmt.Errorf("setting %s: %w", key, err)
	}
	return nil
}

// List returns every settable key with its current value.
func (c *Config) List() (map[string]string, error) {
	out := make(map[string]string, len(settableKeys))
	for key := range settableKeys {
		v, err := c.Get(key)
		if err != nil {
			return nil, err
		}
		out[key] = v
	}
	return out, nil
}

func (c *Config) sections() (map[string]map[string]any, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshalling config: %w", err)
	}
	var sections map[string]map[string]any
	if err = yaml.Unmarshal(data, &sections); err != nil {
		return nil, fmt.Errorf("reading config sections: %w", err)
	}
	return sections, nil
}

func splitKey(key string) (string, string, error) {
	key = strings.ToLower(strings.TrimSpace(key))
	if !settableKeys[key] {
		return "", "", fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	section, field, _ := strings.Cut(key, ".")
	return section, field, nil
}
