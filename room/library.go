package room

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/jinzhu/copier"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/actcore/logger"
)

// Library loads room files from a directory on first use and caches the templates
// Every Instance call works on a deep copy, so door state and later edits never leak into the cache
type Library struct {
	dir string

	mu   sync.Mutex
	defs map[string]*Definition

	log *logrus.Entry
}

func NewLibrary(dir string) (*Library, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidLibrary, "%s: %v", dir, err)
	}
	if !info.IsDir() {
		return nil, errors.Wrapf(ErrInvalidLibrary, "%s is not a directory", dir)
	}
	return &Library{
		dir:  dir,
		defs: make(map[string]*Definition),
		log:  logger.Component("room"),
	}, nil
}

// Add caches a definition directly, replacing any file-backed template of the same name
func (l *Library) Add(d *Definition) error {
	if err := d.Validate(); err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.defs[d.Name] = d
	return nil
}

// Get returns the cached template for name, loading it from disk on first use
func (l *Library) Get(name string) (*Definition, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if d, ok := l.defs[name]; ok {
		return d, nil
	}

	for _, ext := range Extensions {
		path := filepath.Join(l.dir, name+ext)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		d, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		d.Name = name
		l.defs[name] = d
		l.log.WithField("room", name).WithField("path", path).Debug("Room loaded")
		return d, nil
	}
	return nil, errors.Wrapf(ErrRoomNotFound, "%q in %s", name, l.dir)
}

// Instance returns a fresh visit of room name
func (l *Library) Instance(name string) (*Instance, error) {
	tmpl, err := l.Get(name)
	if err != nil {
		return nil, err
	}
	var def Definition
	if err := copier.CopyWithOption(&def, tmpl, copier.Option{DeepCopy: true}); err != nil {
		return nil, errors.Wrapf(err, "copy room %q", name)
	}
	return newInstance(&def), nil
}

// Names lists the room files available in the directory, sorted
func (l *Library) Names() ([]string, error) {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return nil, errors.Wrapf(err, "list %s", l.dir)
	}
	seen := make(map[string]bool)
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := filepath.Ext(e.Name())
		for _, known := range Extensions {
			if strings.EqualFold(ext, known) {
				n := strings.TrimSuffix(e.Name(), ext)
				if !seen[n] {
					seen[n] = true
					names = append(names, n)
				}
				break
			}
		}
	}
	sort.Strings(names)
	return names, nil
}
