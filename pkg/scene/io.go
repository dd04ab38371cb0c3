package scene

import (
	"encoding/json"
	"fmt"
	"os"
)

// Load reads a Scene from a JSON file. A scene file without a board gets
// the reference checkerboard.
func Load(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scene: %w", err)
	}
	defer f.Close()

	s := NewScene()
	if err := json.NewDecoder(f).Decode(s); err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	return s, nil
}

// Save writes a Scene to a JSON file
func Save(path string, s *Scene) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create scene: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encode scene: %w", err)
	}
	return nil
}
