// Package scan indexes a directory tree of DLS documents: every XML file is
// collected and classified by detected schema generation. The index is the
// interface the file-browsing surface consumes; no browsing state lives here.
package scan

import (
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"

	"github.com/astranger1k/DLSTool/internal/model"
	"github.com/astranger1k/DLSTool/internal/version"
)

// Entry is one indexed document file.
type Entry struct {
	RelPath string
	AbsPath string
	Version model.Version
}

// Result is the index of one directory walk.
type Result struct {
	Root    string
	Entries []Entry
	Dirs    []string
}

// Directory walks root and classifies every .xml file found. Unreadable or
// unclassifiable files index as unknown; only a failed walk itself errors.
func Directory(root string, logger *slog.Logger) (*Result, error) {
	result := &Result{Root: root}
	dirs := map[string]struct{}{}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}
		rel = filepath.ToSlash(rel)
		if d.IsDir() {
			if rel != "." {
				dirs[rel] = struct{}{}
			}
			return nil
		}
		if !strings.EqualFold(filepath.Ext(d.Name()), ".xml") {
			return nil
		}
		result.Entries = append(result.Entries, Entry{
			RelPath: rel,
			AbsPath: path,
			Version: version.DetectDocumentFile(path),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", root, err)
	}

	sort.Slice(result.Entries, func(i, j int) bool {
		return strings.ToLower(result.Entries[i].RelPath) < strings.ToLower(result.Entries[j].RelPath)
	})

	for dir := range dirs {
		result.Dirs = append(result.Dirs, dir)
	}
	sort.Slice(result.Dirs, func(i, j int) bool {
		return strings.ToLower(result.Dirs[i]) < strings.ToLower(result.Dirs[j])
	})

	logger.Debug("Indexed folder", "root", root, "files", len(result.Entries), "dirs", len(result.Dirs))
	return result, nil
}
