// Copyright 2026 The Ingot Authors
// SPDX-License-Identifier: Apache-2.0

package gitobject

import (
	"bufio"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zlib"
)

// Type is a git object type.
type Type string

const (
	TypeBlob   Type = "blob"
	TypeTree   Type = "tree"
	TypeCommit Type = "commit"
)

// parseType maps a header type token to a Type.
func parseType(token string) (Type, error) {
	switch Type(token) {
	case TypeBlob, TypeTree, TypeCommit:
		return Type(token), nil
	default:
		return "", fmt.Errorf("unknown object type %q", token)
	}
}

// Object is an open loose object: its parsed header plus a streaming
// reader over the decompressed content. Callers must Close it to
// release the underlying file.
type Object struct {
	// Name is the 40-character hex object name the object was
	// opened by.
	Name string

	// Type is blob, tree, or commit.
	Type Type

	// Size is the content length from the object header.
	Size int64

	content io.Reader
	file    *os.File
	zlib    io.ReadCloser
}

// Read streams the decompressed object content.
func (o *Object) Read(p []byte) (int, error) {
	return o.content.Read(p)
}

// Close releases the zlib stream and the underlying file.
func (o *Object) Close() error {
	zlibErr := o.zlib.Close()
	fileErr := o.file.Close()
	if zlibErr != nil {
		return zlibErr
	}
	return fileErr
}

// Open opens a loose object by name and parses its header. The
// returned Object reads content only (the header is consumed).
// A missing object surfaces the underlying fs.ErrNotExist so callers
// can map it to their "not a valid object name" handling.
func (s *Store) Open(name string) (*Object, error) {
	if !ValidName(name) {
		return nil, fmt.Errorf("invalid object name %q", name)
	}

	file, err := os.Open(s.objectPath(name))
	if err != nil {
		return nil, err
	}

	zlibReader, err := zlib.NewReader(file)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("object %s: zlib: %w", name, err)
	}

	buffered := bufio.NewReader(zlibReader)
	objectType, size, err := readHeader(buffered)
	if err != nil {
		zlibReader.Close()
		file.Close()
		return nil, fmt.Errorf("object %s: %w", name, err)
	}

	return &Object{
		Name:    name,
		Type:    objectType,
		Size:    size,
		content: io.LimitReader(buffered, size),
		file:    file,
		zlib:    zlibReader,
	}, nil
}

// readHeader parses the loose-object header "<type> <size>\0" from
// the decompressed stream.
func readHeader(r *bufio.Reader) (Type, int64, error) {
	header, err := r.ReadString(0)
	if err != nil {
		return "", 0, fmt.Errorf("reading object header: %w", err)
	}
	header = header[:len(header)-1] // strip the terminating NUL

	typeToken, sizeToken, found := strings.Cut(header, " ")
	if !found {
		return "", 0, fmt.Errorf("malformed object header %q", header)
	}

	objectType, err := parseType(typeToken)
	if err != nil {
		return "", 0, err
	}

	size, err := strconv.ParseInt(sizeToken, 10, 64)
	if err != nil || size < 0 {
		return "", 0, fmt.Errorf("malformed object size %q", sizeToken)
	}

	return objectType, size, nil
}

// HashBlob computes the object name of a blob without storing it:
// SHA-1 over "blob <size>\0" followed by exactly size bytes of
// content, streamed with constant memory.
func HashBlob(content io.Reader, size int64) (string, error) {
	hasher := sha1.New()
	fmt.Fprintf(hasher, "blob %d", size)
	hasher.Write([]byte{0})

	copied, err := io.Copy(hasher, content)
	if err != nil {
		return "", fmt.Errorf("hashing blob content: %w", err)
	}
	if copied != size {
		return "", fmt.Errorf("blob content is %d bytes, expected %d", copied, size)
	}

	return hex.EncodeToString(hasher.Sum(nil)), nil
}

// HashBlobFile computes the object name of a file's content.
func HashBlobFile(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", path, err)
	}

	return HashBlob(file, info.Size())
}

// WriteBlobFile stores a file's content as a loose blob object and
// returns its object name. The object is compressed into a temporary
// file and renamed into place, so a crash never leaves a truncated
// object in the database. Writing an object that already exists is a
// no-op (content addressing makes the bytes identical).
func (s *Store) WriteBlobFile(path string) (string, error) {
	name, err := HashBlobFile(path)
	if err != nil {
		return "", err
	}

	objectPath := s.objectPath(name)
	if _, err := os.Stat(objectPath); err == nil {
		return name, nil
	}

	if err := os.MkdirAll(filepath.Dir(objectPath), 0o755); err != nil {
		return "", fmt.Errorf("creating object directory: %w", err)
	}

	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", path, err)
	}

	temp, err := os.CreateTemp(filepath.Dir(objectPath), "tmp-object-*")
	if err != nil {
		return "", fmt.Errorf("creating temporary object: %w", err)
	}
	defer os.Remove(temp.Name())

	compressor := zlib.NewWriter(temp)
	fmt.Fprintf(compressor, "blob %d", info.Size())
	compressor.Write([]byte{0})
	if _, err := io.Copy(compressor, file); err != nil {
		temp.Close()
		return "", fmt.Errorf("compressing blob: %w", err)
	}
	if err := compressor.Close(); err != nil {
		temp.Close()
		return "", fmt.Errorf("compressing blob: %w", err)
	}
	if err := temp.Close(); err != nil {
		return "", fmt.Errorf("writing object: %w", err)
	}

	// Loose objects are immutable once written; git keeps them
	// read-only.
	if err := os.Chmod(temp.Name(), 0o444); err != nil {
		return "", fmt.Errorf("setting object permissions: %w", err)
	}
	if err := os.Rename(temp.Name(), objectPath); err != nil {
		return "", fmt.Errorf("storing object: %w", err)
	}
	return name, nil
}
