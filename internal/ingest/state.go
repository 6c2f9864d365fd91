package ingest

import (
	"fmt"
	"os"
	"strings"

	"github.com/khorevkp/KK-Tools/internal/fileutils"
	"github.com/khorevkp/KK-Tools/internal/models"
)

// LoadIdentityFile reads a previously persisted identity set, one statement
// id per line. A missing file yields an empty set: the first run of a new
// folder has no history.
func LoadIdentityFile(path string) (models.IdentitySet, error) {
	if !fileutils.FileExists(path) {
		return models.IdentitySet{}, nil
	}
	raw, err := fileutils.ReadFileText(path)
	if err != nil {
		return nil, err
	}
	set := models.IdentitySet{}
	for _, line := range strings.Split(raw, "\n") {
		if id := strings.TrimSpace(line); id != "" {
			set.Add(id)
		}
	}
	return set, nil
}

// SaveIdentityFile persists the identity set for the next invocation, one
// statement id per line in sorted order.
func SaveIdentityFile(path string, set models.IdentitySet) error {
	content := strings.Join(set.List(), "\n")
	if content != "" {
		content += "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write identity file: %w", err)
	}
	return nil
}
