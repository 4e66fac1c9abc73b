// Copyright (c) The bundlekit Authors
// SPDX-License-Identifier: MPL-2.0

package pkgfs

import (
	"io"
	"log"
	"os"
	"path"

	"github.com/spf13/afero"
)

// Store is the read surface the resolution engine uses to probe
// installed packages. All paths are canonical POSIX paths with a single
// leading slash.
type Store interface {
	// Exists reports whether path denotes an existing file (not a
	// directory).
	Exists(path string) bool

	// ReadFile returns the UTF-8 contents of the file at path.
	ReadFile(path string) (string, error)

	// IsPackageDir reports whether path denotes an installed package
	// directory.
	IsPackageDir(path string) bool
}

// AferoStore implements Store over an afero filesystem. The zero
// backend for tools running fully client-side is afero's in-memory
// filesystem; any afero.Fs works.
type AferoStore struct {
	fs     afero.Fs
	logger *log.Logger
}

var _ Store = (*AferoStore)(nil)

// NewMemStore returns a store over a fresh in-memory filesystem.
func NewMemStore() *AferoStore {
	return NewStore(afero.NewMemMapFs())
}

func NewStore(fs afero.Fs) *AferoStore {
	return &AferoStore{
		fs:     fs,
		logger: log.New(io.Discard, "", 0),
	}
}

func (s *AferoStore) SetLogger(logger *log.Logger) {
	s.logger = logger
}

func (s *AferoStore) Exists(p string) bool {
	fi, err := s.fs.Stat(p)
	if err != nil {
		return false
	}
	return !fi.IsDir()
}

func (s *AferoStore) ReadFile(p string) (string, error) {
	b, err := afero.ReadFile(s.fs, p)
	if err != nil {
		if os.IsNotExist(err) {
			return "", &FileNotFoundError{Path: p}
		}
		return "", err
	}
	return string(b), nil
}

func (s *AferoStore) IsPackageDir(p string) bool {
	fi, err := s.fs.Stat(p)
	if err != nil {
		return false
	}
	return fi.IsDir()
}

// WriteFile is the seeding boundary for the package manager
// collaborator. Parent directories are created as needed.
func (s *AferoStore) WriteFile(p, contents string) error {
	err := s.fs.MkdirAll(path.Dir(p), 0o755)
	if err != nil {
		return err
	}
	return afero.WriteFile(s.fs, p, []byte(contents), 0o644)
}
