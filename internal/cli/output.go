package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/rileylov/dragsort/internal/dataset"
	"github.com/rileylov/dragsort/internal/ui"
)

// writeOrder prints items in the requested format. The yaml form is a
// valid --items file.
func writeOrder(w io.Writer, format string, items []dataset.Item) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(items); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(dataset.File{Items: items}); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return nil
	default:
		_, err := io.WriteString(w, ui.FormatOrder(items))
		return err
	}
}
