/*
Copyright © 2025 RecurLib Authors
SPDX-License-Identifier: Apache-2.0
*/
package serializer

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FromFile reads and deserializes a document from a local file path or an
// HTTP(S) URL into type T. The format is decided by the path extension:
// .json is JSON, everything else is parsed as YAML (which also accepts
// JSON).
func FromFile[T any](path string) (*T, error) {
	data, err := readAll(path)
	if err != nil {
		return nil, err
	}

	var out T
	if strings.EqualFold(filepath.Ext(strings.TrimSpace(path)), ".json") {
		if err := json.Unmarshal(data, &out); err != nil {
			return nil, fmt.Errorf("failed to parse JSON from %s: %w", path, err)
		}
		return &out, nil
	}
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to parse YAML from %s: %w", path, err)
	}
	return &out, nil
}

func readAll(path string) ([]byte, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return nil, fmt.Errorf("path is required")
	}

	if strings.HasPrefix(trimmed, "http://") || strings.HasPrefix(trimmed, "https://") {
		resp, err := http.Get(trimmed)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch %s: %w", trimmed, err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("failed to fetch %s: status %d", trimmed, resp.StatusCode)
		}
		return io.ReadAll(resp.Body)
	}

	data, err := os.ReadFile(trimmed)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", trimmed, err)
	}
	return data, nil
}
