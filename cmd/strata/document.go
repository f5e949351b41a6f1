package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aretw0/strata/pkg/codec"
	"github.com/aretw0/strata/pkg/model"
)

// loadDocument reads a document file, picking the codec by extension.
func loadDocument(path string) (*model.ObjectValue, codec.Codec, error) {
	c, err := codec.ForExtension(filepath.Ext(path))
	if err != nil {
		return nil, nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}

	ov, err := c.Decode(data)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return ov, c, nil
}

// saveDocument rewrites a document file with the given codec.
func saveDocument(path string, c codec.Codec, ov *model.ObjectValue) error {
	data, err := c.Encode(ov)
	if err != nil {
		return fmt.Errorf("failed to serialize document: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
