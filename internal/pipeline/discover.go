package pipeline

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Discover walks srcRoot, collects files whose extension matches srcExt
// (case-insensitive), and returns WorkItems sorted lexicographically by
// source path for deterministic processing order. Each item's destination
// mirrors the file's path relative to srcRoot under destRoot, with the
// extension rewritten to destExt. Fails if srcRoot does not exist or is
// not a directory.
func Discover(srcRoot, destRoot, srcExt, destExt string) ([]WorkItem, error) {
	fi, err := os.Stat(srcRoot)
	if err != nil {
		return nil, fmt.Errorf("input directory %s: %w", srcRoot, err)
	}
	if !fi.IsDir() {
		return nil, fmt.Errorf("input path %s is not a directory", srcRoot)
	}

	srcExt = normalizeExt(srcExt)
	destExt = normalizeExt(destExt)

	var items []WorkItem
	err = filepath.WalkDir(srcRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := filepath.Ext(path)
		if !strings.EqualFold(ext, srcExt) {
			return nil
		}
		rel, err := filepath.Rel(srcRoot, path)
		if err != nil {
			return err
		}
		dest := filepath.Join(destRoot, strings.TrimSuffix(rel, ext)+destExt)
		items = append(items, WorkItem{Source: path, Dest: dest})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(items, func(i, j int) bool { return items[i].Source < items[j].Source })
	return items, nil
}

// normalizeExt lowercases ext and ensures a leading dot, so "m4a", ".m4a"
// and "M4A" all configure the same filter.
func normalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
