// Package scan enumerates directory entries as typed values. Symbolic links
// are resolved, so a link to a directory reads as a directory and a link to a
// regular file reads as a file. Broken links read as KindOther.
package scan

import (
	"errors"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"strings"
)

// Kind classifies a directory entry.
type Kind int

const (
	KindOther Kind = iota
	KindFile
	KindDir
)

// Entry is one item found in a directory.
type Entry struct {
	Path string // joined with the directory that was read
	Name string // base name, case as found on disk
	Kind Kind
}

// IsDir reports whether the entry is, or links to, a directory.
func (e Entry) IsDir() bool { return e.Kind == KindDir }

// IsFile reports whether the entry is, or links to, a regular file.
func (e Entry) IsFile() bool { return e.Kind == KindFile }

// Suffix returns the entry's file name suffix, see Suffix.
func (e Entry) Suffix() string { return Suffix(e.Name) }

// Suffix returns the final dot-suffix of name including the dot. A name
// whose only dot is the leading one (".jpg") or that ends with a dot has no
// suffix.
func Suffix(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 || i == len(name)-1 {
		return ""
	}
	return name[i:]
}

// WithSuffix replaces the suffix of path with ext, appending ext when path
// has no suffix.
func WithSuffix(path, ext string) string {
	return strings.TrimSuffix(path, Suffix(filepath.Base(path))) + ext
}

// CompareFold orders names case-insensitively. Names equal under case
// folding fall back to byte order so the result is deterministic.
func CompareFold(a, b string) int {
	if c := strings.Compare(strings.ToLower(a), strings.ToLower(b)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

// Exists reports whether anything is present at path, following links.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ReadDir lists the direct children of dir. A missing dir returns an error
// satisfying errors.Is(err, fs.ErrNotExist).
func ReadDir(dir string) ([]Entry, error) {
	des, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(des))
	for _, de := range des {
		path := filepath.Join(dir, de.Name())
		entries = append(entries, Entry{
			Path: path,
			Name: de.Name(),
			Kind: kindOf(path, de),
		})
	}
	return entries, nil
}

// Walk yields every entry below root in lexical order, depth first. A linked
// root is followed; linked directories below it are reported but not
// descended into. Paths are joined onto root as given. The first error ends
// the sequence.
func Walk(root string) iter.Seq2[Entry, error] {
	return func(yield func(Entry, error) bool) {
		start := walkRoot(root)
		err := filepath.WalkDir(start, func(path string, de fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if path == start {
				return nil
			}
			e := Entry{Path: path, Name: de.Name(), Kind: kindOf(path, de)}
			if !yield(e, nil) {
				return errStop
			}
			return nil
		})
		if err != nil && !errors.Is(err, errStop) {
			yield(Entry{}, err)
		}
	}
}

var errStop = errors.New("scan: stop")

// walkRoot returns root with a trailing separator when it is a link to a
// directory, so WalkDir resolves it instead of reporting the link itself.
func walkRoot(root string) string {
	li, err := os.Lstat(root)
	if err != nil || li.Mode()&fs.ModeSymlink == 0 {
		return root
	}
	if fi, err := os.Stat(root); err != nil || !fi.IsDir() {
		return root
	}
	return root + string(os.PathSeparator)
}

func kindOf(path string, de fs.DirEntry) Kind {
	mode := de.Type()
	if mode&fs.ModeSymlink != 0 {
		info, err := os.Stat(path)
		if err != nil {
			return KindOther
		}
		mode = info.Mode().Type()
	}
	switch {
	case mode.IsDir():
		return KindDir
	case mode.IsRegular():
		return KindFile
	default:
		return KindOther
	}
}
