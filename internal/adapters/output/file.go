package output

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteFile saves a rendered report to path, creating parent directories as
// needed. Reports may contain attacker-derived text, so the file is written
// owner read/write only.
func WriteFile(path, content string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create report directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
