package foam

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// CaseFile identifies one dictionary file inside a case directory.
// Immutable and comparable; used as the key for caches and check
// results.
type CaseFile struct {
	Root string // case directory
	Rel  string // path within the case, slash-separated
}

// Path returns the full filesystem path.
func (f CaseFile) Path() string {
	return filepath.Join(f.Root, filepath.FromSlash(f.Rel))
}

// Name returns the file name without directories.
func (f CaseFile) Name() string {
	return filepath.Base(filepath.FromSlash(f.Rel))
}

func (f CaseFile) String() string { return f.Rel }

// Section groups the files of one top-level case directory, in the
// deterministic order the verification sweep and the menus both use.
type Section struct {
	Name  string
	Files []CaseFile
}

// sectionOrder lists the case directories worth browsing, in display
// order. Time directories other than 0 hold solver output, not
// configuration, and are skipped.
var sectionOrder = []string{"0", "constant", "system"}

// DiscoverCaseFiles walks the standard case directories and returns
// the dictionary files grouped by section. Sections keep the fixed
// 0/constant/system order; files within a section are sorted by
// relative path, so repeated discovery over an unchanged case yields
// an identical sequence.
func DiscoverCaseFiles(root string) ([]Section, error) {
	if fi, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf("case directory %s: %w", root, err)
	} else if !fi.IsDir() {
		return nil, fmt.Errorf("case path %s is not a directory", root)
	}

	var sections []Section
	for _, name := range sectionOrder {
		dir := filepath.Join(root, name)
		if fi, err := os.Stat(dir); err != nil || !fi.IsDir() {
			continue
		}

		var files []CaseFile
		err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return nil // unreadable subtree, skip
			}
			if info.IsDir() {
				if info.Name() == "polyMesh" {
					return filepath.SkipDir
				}
				return nil
			}
			if !looksLikeDictionary(info.Name()) {
				return nil
			}
			rel, err := filepath.Rel(root, path)
			if err != nil {
				return nil
			}
			files = append(files, CaseFile{Root: root, Rel: filepath.ToSlash(rel)})
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("discover %s: %w", dir, err)
		}

		sort.Slice(files, func(i, j int) bool { return files[i].Rel < files[j].Rel })
		if len(files) > 0 {
			sections = append(sections, Section{Name: name, Files: files})
		}
	}
	return sections, nil
}

// FlattenSections returns every discovered file in sweep order.
func FlattenSections(sections []Section) []CaseFile {
	var files []CaseFile
	for _, s := range sections {
		files = append(files, s.Files...)
	}
	return files
}

func looksLikeDictionary(name string) bool {
	if strings.HasPrefix(name, ".") {
		return false
	}
	switch {
	case strings.HasSuffix(name, ".orig"),
		strings.HasSuffix(name, "~"),
		strings.HasSuffix(name, ".bak"),
		strings.HasSuffix(name, ".swp"),
		strings.HasSuffix(name, ".gz"):
		return false
	}
	return true
}
