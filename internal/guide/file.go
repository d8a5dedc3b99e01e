package guide

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pkordes/smart-travel-planner/internal/domain"
)

// fileDocument is the YAML layout read by LoadFile:
//
//	default:
//	  language: Local Language
//	  phrases: [...]
//	entries:
//	  - key: france
//	    language: French
//	    phrases: [...]
//	    etiquette: [...]
//	    food: [...]
type fileDocument struct {
	Default domain.GuideEntry   `yaml:"default"`
	Entries []domain.GuideEntry `yaml:"entries"`
}

// LoadFile reads a YAML guide document and returns a Table over it.
// Entries are matched in file order.
func LoadFile(path string) (*Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("guide.LoadFile: %w", err)
	}
	return Parse(raw)
}

// Parse decodes a YAML guide document.
func Parse(raw []byte) (*Table, error) {
	var doc fileDocument
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("guide.Parse: %w", err)
	}
	t, err := NewTable(doc.Entries, doc.Default)
	if err != nil {
		return nil, fmt.Errorf("guide.Parse: %w", err)
	}
	return t, nil
}

// Marshal encodes a Table in the LoadFile layout, e.g. to bootstrap a
// custom guide file from the bundled data.
func (t *Table) Marshal() ([]byte, error) {
	doc := fileDocument{Default: t.def, Entries: t.entries}
	doc.Default.Key = ""
	out, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("guide.Table.Marshal: %w", err)
	}
	return out, nil
}
