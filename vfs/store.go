// Copyright (c) The bundlekit Authors
// SPDX-License-Identifier: MPL-2.0

package vfs

import (
	"io"
	"log"

	"github.com/hashicorp/go-memdb"
)

const filesTableName = "files"

var dbSchema = &memdb.DBSchema{
	Tables: map[string]*memdb.TableSchema{
		filesTableName: {
			Name: filesTableName,
			Indexes: map[string]*memdb.IndexSchema{
				"id": {
					Name:    "id",
					Unique:  true,
					Indexer: &memdb.StringFieldIndex{Field: "Path"},
				},
			},
		},
	},
}

// File is a single project source file. Path is canonical (leading
// slash); Code is the full source text. Files are registered before a
// build and treated as immutable while the build runs.
type File struct {
	Path string
	Code string
}

// Store holds the project's virtual files, indexed by canonical path.
type Store struct {
	db     *memdb.MemDB
	logger *log.Logger
}

func NewStore() (*Store, error) {
	db, err := memdb.NewMemDB(dbSchema)
	if err != nil {
		return nil, err
	}

	return &Store{
		db:     db,
		logger: log.New(io.Discard, "", 0),
	}, nil
}

func (s *Store) SetLogger(logger *log.Logger) {
	s.logger = logger
}

// WriteFile registers (or replaces) a file under the canonical form of
// path. Registration accepts both "index.ts" and "/index.ts".
func (s *Store) WriteFile(path, code string) error {
	txn := s.db.Txn(true)
	defer txn.Abort()

	f := &File{
		Path: Normalize(path),
		Code: code,
	}

	err := txn.Insert(filesTableName, f)
	if err != nil {
		return err
	}

	txn.Commit()
	return nil
}

// ReadFile returns the source text registered under the canonical form
// of path.
func (s *Store) ReadFile(path string) (string, error) {
	txn := s.db.Txn(false)

	obj, err := txn.First(filesTableName, "id", Normalize(path))
	if err != nil {
		return "", err
	}
	if obj == nil {
		return "", &FileNotFoundError{Path: Normalize(path)}
	}

	return obj.(*File).Code, nil
}

// Exists reports whether a file is registered under the canonical form
// of path. It is a pure in-memory read and never blocks.
func (s *Store) Exists(path string) bool {
	txn := s.db.Txn(false)

	obj, err := txn.First(filesTableName, "id", Normalize(path))
	if err != nil {
		s.logger.Printf("vfs: lookup failed for %q: %s", path, err)
		return false
	}

	return obj != nil
}

// Paths returns the canonical paths of all registered files.
func (s *Store) Paths() ([]string, error) {
	txn := s.db.Txn(false)

	it, err := txn.Get(filesTableName, "id")
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0)
	for obj := it.Next(); obj != nil; obj = it.Next() {
		paths = append(paths, obj.(*File).Path)
	}

	return paths, nil
}
