package mailer

import (
	"fmt"
	"os"
	"strings"
)

// Templates lists the plain-text email body templates (*.txt) in dir.
// A missing folder reads as empty.
func Templates(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("list templates %s: %w", dir, err)
	}

	var result []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".txt") {
			continue
		}
		result = append(result, e.Name())
	}
	return result, nil
}

// RenderTemplate loads a template file and substitutes the {name}
// placeholder with the client's name.
func RenderTemplate(path, clientName string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read template %s: %w", path, err)
	}
	return strings.ReplaceAll(string(data), "{name}", clientName), nil
}
