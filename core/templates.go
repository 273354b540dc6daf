package core

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cbroglie/mustache"
)

const TemplateExt = ".mustache"

// Template is a parsed template file, named after its file name without the
// extension.
type Template struct {
	Name   string
	Path   string
	Source string

	compiled *mustache.Template
}

// TemplateStore holds every template found under a directory. It is built
// once by LoadTemplates and only read afterwards, so it is safe to share
// between requests.
type TemplateStore struct {
	templates map[string]*Template
	logger    *slog.Logger
}

func LoadTemplates(dir string, logger *slog.Logger) (*TemplateStore, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDirectoryNotFound, dir)
		}
		return nil, fmt.Errorf("stat template dir %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrDirectoryNotFound, dir)
	}

	s := &TemplateStore{
		templates: make(map[string]*Template),
		logger:    logger,
	}

	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), TemplateExt) {
			return nil
		}

		src, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read template %s: %w", path, err)
		}

		compiled, err := mustache.ParseStringPartials(string(src), s)
		if err != nil {
			return fmt.Errorf("parse template %s: %w", path, err)
		}

		name := strings.TrimSuffix(d.Name(), TemplateExt)
		if prev, ok := s.templates[name]; ok {
			logger.Warn("duplicate template name, later file wins",
				"name", name, "previous", prev.Path, "path", path)
		}

		s.templates[name] = &Template{
			Name:     name,
			Path:     path,
			Source:   string(src),
			compiled: compiled,
		}
		logger.Log(context.Background(), LevelTrace, "template loaded", "name", name, "path", path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Debug("templates loaded", "dir", dir, "count", len(s.templates))
	return s, nil
}

func (s *TemplateStore) Lookup(name string) (*Template, bool) {
	if s == nil {
		return nil, false
	}
	t, ok := s.templates[name]
	return t, ok
}

func (s *TemplateStore) Has(name string) bool {
	_, ok := s.Lookup(name)
	return ok
}

// Get returns the source of a template so the store can serve {{>partial}}
// includes.
func (s *TemplateStore) Get(name string) (string, error) {
	t, ok := s.Lookup(name)
	if !ok {
		return "", fmt.Errorf("%w: partial %q", ErrTemplateNotFound, name)
	}
	return t.Source, nil
}

func (s *TemplateStore) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.templates))
	for name := range s.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s *TemplateStore) Len() int {
	if s == nil {
		return 0
	}
	return len(s.templates)
}
