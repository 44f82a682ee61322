package cli

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadParams turns a --params argument into request parameters. The
// argument is either a raw query string ("fo_title=0&fv_title=ab") or a
// path to a YAML file mapping parameter names to a value or a list of
// values:
//
//	fo_title: "0"
//	fv_title: "ab"
//	fr_author-fo_name: ["0", "0"]
//	fr_author-fv_name: ["Alice", "Bob"]
func LoadParams(arg string) (url.Values, error) {
	if arg == "" {
		return url.Values{}, nil
	}

	ext := filepath.Ext(arg)
	if ext == ".yaml" || ext == ".yml" {
		return loadParamsFile(arg)
	}

	values, err := url.ParseQuery(arg)
	if err != nil {
		return nil, fmt.Errorf("parsing query string: %w", err)
	}
	return values, nil
}

func loadParamsFile(path string) (url.Values, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading params file: %w", err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing params file: %w", err)
	}

	values := url.Values{}
	for name, v := range raw {
		switch val := v.(type) {
		case []any:
			for _, item := range val {
				values.Add(name, scalarString(item))
			}
		default:
			values.Add(name, scalarString(val))
		}
	}
	return values, nil
}

func scalarString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
