// Package storage keeps rendered admin reports on local disk.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// ReportArchive stores report files flat under a base directory.
type ReportArchive struct {
	baseDir string
	now     func() time.Time
}

// StoredReport describes one archived file.
type StoredReport struct {
	Name    string
	Size    int64
	ModTime time.Time
}

// NewReportArchive creates the base directory when missing.
func NewReportArchive(baseDir string) (*ReportArchive, error) {
	if baseDir == "" {
		baseDir = "./exports"
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create reports directory: %w", err)
	}
	return &ReportArchive{baseDir: baseDir, now: time.Now}, nil
}

// Save writes data under name and returns the full path.
func (a *ReportArchive) Save(name string, data []byte) (string, error) {
	path, err := a.resolve(name)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}

// Read returns the stored bytes for name.
func (a *ReportArchive) Read(name string) ([]byte, error) {
	path, err := a.resolve(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read report: %w", err)
	}
	return data, nil
}

// List returns archived reports sorted by name.
func (a *ReportArchive) List() ([]StoredReport, error) {
	entries, err := os.ReadDir(a.baseDir)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	reports := make([]StoredReport, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("stat report: %w", err)
		}
		reports = append(reports, StoredReport{Name: entry.Name(), Size: info.Size(), ModTime: info.ModTime()})
	}
	sort.Slice(reports, func(i, j int) bool { return reports[i].Name < reports[j].Name })
	return reports, nil
}

// Prune deletes reports last modified before now minus ttl and returns their names.
// A non-positive ttl keeps everything.
func (a *ReportArchive) Prune(ttl time.Duration) ([]string, error) {
	if ttl <= 0 {
		return nil, nil
	}
	reports, err := a.List()
	if err != nil {
		return nil, err
	}
	cutoff := a.now().Add(-ttl)
	var pruned []string
	for _, r := range reports {
		if r.ModTime.After(cutoff) {
			continue
		}
		if err := os.Remove(filepath.Join(a.baseDir, r.Name)); err != nil && !os.IsNotExist(err) {
			return pruned, fmt.Errorf("prune report %s: %w", r.Name, err)
		}
		pruned = append(pruned, r.Name)
	}
	return pruned, nil
}

// Dir returns the base directory.
func (a *ReportArchive) Dir() string {
	return a.baseDir
}

// resolve keeps every report directly under baseDir.
func (a *ReportArchive) resolve(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return "", fmt.Errorf("invalid report name %q", name)
	}
	return filepath.Join(a.baseDir, name), nil
}
