package config

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/invopop/jsonschema"
	"gopkg.in/yaml.v3"
)

// GenerateSchema generates a JSON schema for the Config struct
func GenerateSchema() *jsonschema.Schema {
	r := &jsonschema.Reflector{ExpandedStruct: true, DoNotReference: true}
	return r.Reflect(&Config{})
}

// UnknownKeys returns dotted paths of YAML keys not defined by the config schema
func UnknownKeys(data []byte) ([]string, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if doc == nil {
		return nil, nil
	}
	var res []string
	collectUnknown(GenerateSchema(), doc, "", &res)
	return res, nil
}

func collectUnknown(schema *jsonschema.Schema, node any, path string, res *[]string) {
	if schema == nil {
		return
	}
	switch v := node.(type) {
	case map[string]any:
		if schema.Properties == nil {
			return
		}
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			prop, ok := schema.Properties.Get(k)
			if !ok {
				*res = append(*res, path+k)
				continue
			}
			collectUnknown(prop, v[k], path+k+".", res)
		}
	case []any:
		for i, item := range v {
			collectUnknown(schema.Items, item, path[:max(len(path)-1, 0)]+"["+strconv.Itoa(i)+"].", res)
		}
	}
}
