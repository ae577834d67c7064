// Package dataset loads the items shown in the reorderable list.
package dataset

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	ErrEmptyID     = errors.New("item id is empty")
	ErrDuplicateID = errors.New("duplicate item id")
	ErrNoItems     = errors.New("no items")
)

// Item is one row of the list. ID is the render key and must be unique;
// the remaining fields are display only.
type Item struct {
	ID       string `yaml:"id" json:"id"`
	Title    string `yaml:"title" json:"title"`
	Location string `yaml:"location,omitempty" json:"location,omitempty"`
	Image    string `yaml:"image,omitempty" json:"image,omitempty"`
}

// File is the on-disk layout of a dataset.
type File struct {
	Items []Item `yaml:"items"`
}

// Default returns the built-in demo list.
func Default() []Item {
	return []Item{
		{ID: "1", Title: "Scotland Island", Location: "Sydney, Australia", Image: "images/image1.png"},
		{ID: "2", Title: "The Charles Grand Brasserie & Bar", Location: "Lorem ipsum, Dolor", Image: "images/image2.png"},
		{ID: "3", Title: "Bridge Climb", Location: "Dolor, Sit amet", Image: "images/image3.png"},
		{ID: "4", Title: "Scotland Island", Location: "Sydney, Australia", Image: "images/image4.png"},
		{ID: "5", Title: "Clam Bar", Location: "Etcetera veni, Vidi vici", Image: "images/image5.png"},
		{ID: "6", Title: "Vivid Festival", Location: "Sydney, Australia", Image: "images/image6.png"},
	}
}

// Load reads and validates a YAML dataset.
func Load(path string) ([]Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML dataset.
func Parse(data []byte) ([]Item, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse dataset: %w", err)
	}
	for i := range f.Items {
		f.Items[i].ID = strings.TrimSpace(f.Items[i].ID)
	}
	if err := Validate(f.Items); err != nil {
		return nil, err
	}
	return f.Items, nil
}

// Validate checks that every item has a unique, non-empty ID.
func Validate(items []Item) error {
	if len(items) == 0 {
		return ErrNoItems
	}
	seen := make(map[string]int, len(items))
	for i, it := range items {
		if it.ID == "" {
			return fmt.Errorf("item %d: %w", i, ErrEmptyID)
		}
		if prev, ok := seen[it.ID]; ok {
			return fmt.Errorf("items %d and %d: %w %q", prev, i, ErrDuplicateID, it.ID)
		}
		seen[it.ID] = i
	}
	return nil
}

// IDs returns the item IDs in list order.
func IDs(items []Item) []string {
	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	return ids
}
