package seed

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"sigs.k8s.io/yaml"

	"github.com/five82/vantage/internal/alerts"
)

// Load reads alerts from path. The format follows the file extension:
// .json, .yaml and .yml hold an array, .jsonl holds one record per line.
// At most limit records are returned; a non-positive limit keeps everything.
func Load(path string, limit int) ([]alerts.Alert, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".jsonl", ".ndjson":
		return loadLines(path, limit)
	case ".json", ".yaml", ".yml":
		return loadArray(path, limit)
	default:
		return nil, fmt.Errorf("seed %s: unsupported extension %q", path, ext)
	}
}

func loadArray(path string, limit int) ([]alerts.Alert, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed: %w", err)
	}
	var records []alerts.Alert
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse seed %s: %w", path, err)
	}
	for i, a := range records {
		if err := a.Validate(); err != nil {
			return nil, fmt.Errorf("seed %s: record %d: %w", path, i, err)
		}
	}
	if limit > 0 && len(records) > limit {
		alerts.SortNewestFirst(records)
		records = records[:limit]
	}
	return records, nil
}

func loadLines(path string, limit int) ([]alerts.Alert, error) {
	lines, err := tail(path, limit)
	if err != nil {
		return nil, err
	}
	records := make([]alerts.Alert, 0, len(lines))
	for _, l := range lines {
		var a alerts.Alert
		if err := yaml.Unmarshal([]byte(l.text), &a); err != nil {
			return nil, fmt.Errorf("seed %s: line %d: %w", path, l.number, err)
		}
		if err := a.Validate(); err != nil {
			return nil, fmt.Errorf("seed %s: line %d: %w", path, l.number, err)
		}
		records = append(records, a)
	}
	return records, nil
}

type line struct {
	number int
	text   string
}

// tail returns at most maxLines non-blank lines from the end of the file at
// path. A non-positive maxLines returns every non-blank line. Line numbers
// count blank lines too.
func tail(path string, maxLines int) ([]line, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if maxLines <= 0 {
		var all []line
		for n := 1; scanner.Scan(); n++ {
			if strings.TrimSpace(scanner.Text()) == "" {
				continue
			}
			all = append(all, line{number: n, text: scanner.Text()})
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read seed: %w", err)
		}
		return all, nil
	}

	ring := make([]line, maxLines)
	count := 0
	idx := 0
	for n := 1; scanner.Scan(); n++ {
		if strings.TrimSpace(scanner.Text()) == "" {
			continue
		}
		ring[idx] = line{number: n, text: scanner.Text()}
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read seed: %w", err)
	}

	out := make([]line, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			out[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(out, ring[:count])
	}
	return out, nil
}
