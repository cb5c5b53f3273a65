package game

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// KingdomFile represents the top-level YAML structure.
type KingdomFile struct {
	Kingdoms []KingdomEntry `yaml:"kingdoms"`
}

// KingdomEntry represents a single kingdom setup in the YAML file.
type KingdomEntry struct {
	Name     string   `yaml:"name"`
	Cards    []string `yaml:"cards"`
	Colonies bool     `yaml:"colonies"`
}

// ParseKingdoms decodes a kingdom YAML document and checks every card name.
func ParseKingdoms(data []byte) (*KingdomFile, error) {
	var kf KingdomFile
	if err := yaml.Unmarshal(data, &kf); err != nil {
		return nil, fmt.Errorf("parse kingdom YAML: %w", err)
	}
	for _, k := range kf.Kingdoms {
		for _, name := range k.Cards {
			if _, err := Lookup(name); err != nil {
				return nil, fmt.Errorf("kingdom %q: %w", k.Name, err)
			}
		}
	}
	return &kf, nil
}

// ParseKingdomFile reads and parses a kingdom YAML file.
func ParseKingdomFile(path string) (*KingdomFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseKingdoms(data)
}

// Find returns the kingdom with the given name.
func (kf *KingdomFile) Find(name string) (KingdomEntry, error) {
	for _, k := range kf.Kingdoms {
		if k.Name == name {
			return k, nil
		}
	}
	return KingdomEntry{}, fmt.Errorf("kingdom %q not found (have %d kingdoms)", name, len(kf.Kingdoms))
}

// ByNumber returns the Nth kingdom (1-indexed).
func (kf *KingdomFile) ByNumber(n int) (KingdomEntry, error) {
	if n < 1 || n > len(kf.Kingdoms) {
		return KingdomEntry{}, fmt.Errorf("kingdom %d not found (have %d kingdoms)", n, len(kf.Kingdoms))
	}
	return kf.Kingdoms[n-1], nil
}

// Resolve looks a kingdom up by 1-based number or by name. An empty ref
// selects the first kingdom.
func (kf *KingdomFile) Resolve(ref string) (KingdomEntry, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		ref = "1"
	}
	if n, err := strconv.Atoi(ref); err == nil {
		return kf.ByNumber(n)
	}
	return kf.Find(ref)
}
