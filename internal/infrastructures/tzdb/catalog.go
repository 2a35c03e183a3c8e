// Package tzdb enumerates IANA timezone identifiers from a zoneinfo tree.
package tzdb

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
	_ "time/tzdata"
	"unicode"
	"unicode/utf8"

	"github.com/spf13/afero"
)

var systemRoots = []string{
	"/usr/share/zoneinfo",
	"/usr/share/lib/zoneinfo",
	"/usr/lib/locale/TZ",
	"/etc/zoneinfo",
}

var tzifMagic = []byte("TZif")

// Files in a zoneinfo tree that are valid TZif data but not zone identifiers.
var ignoredNames = map[string]struct{}{
	"Factory":    {},
	"localtime":  {},
	"posixrules": {},
}

// Mirrors of the whole tree with different leap second handling.
var ignoredDirs = map[string]struct{}{
	"posix": {},
	"right": {},
}

type Catalog struct {
	zones []string
}

// NewFromSystem walks the first zoneinfo tree found on the host, trying dir
// first when it is set. With no tree on disk it falls back to a built-in list.
func NewFromSystem(dir string) (*Catalog, error) {
	fs := afero.NewOsFs()

	roots := systemRoots
	if env := os.Getenv("ZONEINFO"); env != "" {
		roots = append([]string{env}, roots...)
	}
	if dir != "" {
		roots = append([]string{dir}, roots...)
	}

	for _, root := range roots {
		info, err := fs.Stat(root)
		if err != nil || !info.IsDir() {
			continue
		}
		c, err := New(fs, root)
		if err != nil {
			return nil, err
		}
		if len(c.zones) > 0 {
			return c, nil
		}
	}

	return NewFromList(fallbackZones), nil
}

func New(fs afero.Fs, root string) (*Catalog, error) {
	var zones []string

	err := afero.Walk(fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		name := filepath.ToSlash(rel)

		if info.IsDir() {
			if _, ok := ignoredDirs[name]; ok {
				return filepath.SkipDir
			}
			return nil
		}

		if !isZoneName(name) {
			return nil
		}

		ok, err := hasTZifMagic(fs, path)
		if err != nil {
			return err
		}
		if ok {
			zones = append(zones, name)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk zoneinfo %s: %w", root, err)
	}

	return &Catalog{zones: zones}, nil
}

func NewFromList(zones []string) *Catalog {
	cp := make([]string, len(zones))
	copy(cp, zones)
	return &Catalog{zones: cp}
}

func (c *Catalog) ListContinents() []string {
	seen := make(map[string]struct{}, 16)
	continents := make([]string, 0, 16)
	for _, z := range c.zones {
		prefix, _, _ := strings.Cut(z, "/")
		if _, ok := seen[prefix]; ok {
			continue
		}
		seen[prefix] = struct{}{}
		continents = append(continents, prefix)
	}

	sort.Strings(continents)
	return continents
}

// ListZones keeps catalog order.
func (c *Catalog) ListZones(continent string) []string {
	prefix := continent + "/"
	zones := make([]string, 0)
	for _, z := range c.zones {
		if strings.HasPrefix(z, prefix) {
			zones = append(zones, z)
		}
	}
	return zones
}

func (c *Catalog) Location(name string) (*time.Location, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("load location %q: %w", name, err)
	}
	return loc, nil
}

func isZoneName(name string) bool {
	base := filepath.Base(name)
	if _, ok := ignoredNames[base]; ok {
		return false
	}
	if strings.Contains(base, ".") {
		return false
	}
	r, _ := utf8.DecodeRuneInString(name)
	return unicode.IsUpper(r)
}

func hasTZifMagic(fs afero.Fs, path string) (bool, error) {
	f, err := fs.Open(path)
	if err != nil {
		return false, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	head := make([]byte, len(tzifMagic))
	if _, err := io.ReadFull(f, head); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return false, nil
		}
		return false, fmt.Errorf("read %s: %w", path, err)
	}
	return bytes.Equal(head, tzifMagic), nil
}
