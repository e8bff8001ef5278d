package config

import (
	"reflect"
	"strings"
)

// GetSettingsExample uses reflection to generate example settings.
// It stays in sync when new fields are added to Settings.
func GetSettingsExample() map[string]any {
	var s Settings
	t := reflect.TypeOf(s)
	example := make(map[string]any)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		jsonTag := field.Tag.Get("json")
		if jsonTag == "" {
			continue
		}

		jsonName := strings.Split(jsonTag, ",")[0]
		example[jsonName] = generateExampleValue(field.Type, jsonName)
	}

	return example
}

// generateExampleValue creates example values based on type and field name
func generateExampleValue(t reflect.Type, fieldName string) any {
	if t.Name() == "KeyBindingsConfig" {
		return map[string]any{
			"open": "o",
			"help": []string{"h", "?"},
		}
	}

	if t.Kind() == reflect.Ptr {
		switch t.Elem().Kind() {
		case reflect.Bool:
			return fieldName == "debug" || fieldName == "grid_visible"
		case reflect.Int:
			switch fieldName {
			case "error_clear_delay":
				return DefaultErrorClearDelay
			case "grid_size":
				return 50
			case "max_log_files":
				return 1000
			case "recent_limit":
				return DefaultRecentLimit
			}
			return 10
		}
	}

	switch t.Kind() {
	case reflect.String:
		switch fieldName {
		case "blob_base_url":
			return "http://127.0.0.1:8085"
		case "metrics_addr":
			return "localhost:9090"
		case "serve_addr":
			return DefaultServeAddr
		default:
			return "example"
		}
	case reflect.Slice:
		if fieldName == "backend" {
			return []string{"xrf-backend", "--stdio"}
		}
		return []string{"example1", "example2"}
	}

	return nil
}
