package output

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
)

// WriteJSON writes v as pretty-printed JSON to the writer.
func WriteJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling configuration to JSON: %w", err)
	}
	_, err = w.Write(data)
	if err != nil {
		return fmt.Errorf("writing JSON output: %w", err)
	}
	_, err = w.Write([]byte("\n"))
	return err
}

// WriteValue writes a single flattened configuration value to the writer.
func WriteValue(w io.Writer, values map[string]string, key string) error {
	val, ok := values[key]
	if !ok {
		return fmt.Errorf("unknown configuration key %q", key)
	}
	_, err := fmt.Fprintln(w, val)
	return err
}

// WriteFlat writes all flattened values as key=value pairs to the writer,
// sorted by key.
func WriteFlat(w io.Writer, values map[string]string) error {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if _, err := fmt.Fprintf(w, "%s=%s\n", k, values[k]); err != nil {
			return err
		}
	}
	return nil
}
