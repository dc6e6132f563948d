package manifest

import (
	"fmt"
	"sort"

	"github.com/arthur-debert/linkdot/pkg/types"
)

// convertTarget resolves the decoded target value into Unified or Platform.
// Both the TOML and the YAML decoder produce string, []interface{} and
// map[string]interface{} for the three shapes.
func convertTarget(value interface{}) (Target, error) {
	switch v := value.(type) {
	case map[string]interface{}:
		return convertPlatform(v)
	default:
		dest, err := convertDestination(value)
		if err != nil {
			return nil, err
		}
		return Unified{Destination: dest}, nil
	}
}

func convertPlatform(table map[string]interface{}) (Target, error) {
	if len(table) == 0 {
		return nil, fmt.Errorf("platform table is empty")
	}

	// Sorted so the first reported error does not depend on map order
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	platform := Platform{Destinations: make(map[types.Environment]Destination, len(table))}
	for _, key := range keys {
		env, err := types.ParseEnvironment(key)
		if err != nil {
			return nil, fmt.Errorf("unknown platform %q (expected unix or windows)", key)
		}
		dest, err := convertDestination(table[key])
		if err != nil {
			return nil, fmt.Errorf("platform %s: %w", key, err)
		}
		platform.Destinations[env] = dest
	}
	return platform, nil
}

func convertDestination(value interface{}) (Destination, error) {
	switch v := value.(type) {
	case string:
		if v == "" {
			return nil, fmt.Errorf("destination is empty")
		}
		return Single{Path: v}, nil
	case []interface{}:
		if len(v) == 0 {
			return nil, fmt.Errorf("destination list is empty")
		}
		list := make([]string, 0, len(v))
		for i, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("destination %d is a %T, expected a string", i, item)
			}
			if s == "" {
				return nil, fmt.Errorf("destination %d is empty", i)
			}
			list = append(list, s)
		}
		return Multi{List: list}, nil
	default:
		return nil, fmt.Errorf("destination is a %T, expected a string or a list of strings", value)
	}
}
