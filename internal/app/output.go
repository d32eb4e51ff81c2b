package app

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"

	"gopkg.in/yaml.v3"

	"github.com/oshokin/applemusic-client/internal/config"
	"github.com/oshokin/applemusic-client/internal/constants"
)

// indentWidth is used by both renderers.
const indentWidth = 2

// WriteResult renders value in the configured format to cfg.OutputPath, or to out when no path is set.
func WriteResult(cfg *config.Config, out io.Writer, value any) error {
	if cfg.OutputPath == "" {
		return RenderResult(out, cfg.OutputFormat, value)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.OutputPath), constants.DefaultFolderPermissions); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	file, err := os.OpenFile(cfg.OutputPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, constants.DefaultFilePermissions)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if err = RenderResult(file, cfg.OutputFormat, value); err != nil {
		_ = file.Close()

		return err
	}

	if err = file.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}

	return nil
}

// RenderResult writes value to w as indented JSON or YAML.
func RenderResult(w io.Writer, format string, value any) error {
	switch format {
	case constants.OutputFormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(indentWidth)

		if err := encoder.Encode(yamlValue(value)); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}

		if err := encoder.Close(); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
	case constants.OutputFormatJSON, "":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		encoder.SetEscapeHTML(false)

		if err := encoder.Encode(value); err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
	default:
		return fmt.Errorf("%w: '%s'", config.ErrInvalidOutputFormat, format)
	}

	return nil
}

// yamlValue converts decoded JSON into plain YAML-friendly values.
// json.Number becomes int64 or float64; yaml.v3 would otherwise quote it as a string.
// Maps with string keys, named ones included, become map[string]any.
func yamlValue(value any) any {
	switch typed := value.(type) {
	case json.Number:
		if number, err := typed.Int64(); err == nil {
			return number
		}

		if number, err := typed.Float64(); err == nil {
			return number
		}

		return typed.String()
	case map[string]any:
		result := make(map[string]any, len(typed))
		for key, item := range typed {
			result[key] = yamlValue(item)
		}

		return result
	case []any:
		result := make([]any, len(typed))
		for i, item := range typed {
			result[i] = yamlValue(item)
		}

		return result
	}

	reflected := reflect.ValueOf(value)
	if reflected.Kind() == reflect.Map &&
		reflected.Type().Key().Kind() == reflect.String &&
		reflected.Type().Elem().Kind() == reflect.Interface {
		result := make(map[string]any, reflected.Len())

		iterator := reflected.MapRange()
		for iterator.Next() {
			result[iterator.Key().String()] = yamlValue(iterator.Value().Interface())
		}

		return result
	}

	return value
}
