package config

import "gopkg.in/yaml.v3"

// YAMLParser adapts gopkg.in/yaml.v3 to the koanf.Parser interface.
type YAMLParser struct{}

// YAML returns a YAMLParser.
func YAML() *YAMLParser {
	return &YAMLParser{}
}

// Unmarshal parses YAML bytes into a nested map.
func (p *YAMLParser) Unmarshal(b []byte) (map[string]interface{}, error) {
	var out map[string]interface{}
	if err := yaml.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = map[string]interface{}{}
	}
	return out, nil
}

// Marshal encodes a map as YAML.
func (p *YAMLParser) Marshal(o map[string]interface{}) ([]byte, error) {
	return yaml.Marshal(o)
}
