package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// readInputFile reads one input file, mapping os.ErrNotExist to the
// CLI's sentinel so main can assign the validation exit code.
func readInputFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", path, ErrFileNotFound)
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}

// writeResult writes v as indented JSON to the output path, or to w
// when the path is empty.
func writeResult(w io.Writer, outputPath string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	data = append(data, '\n')

	if outputPath == "" {
		_, err = w.Write(data)
		return err
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outputPath, err)
	}
	return nil
}
