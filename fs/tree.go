// Package fs provides the filesystem tree operations used to produce build
// outputs.
package fs

import (
	"io"
	"os"
	"path/filepath"
)

// CopyTree copies src onto dst, replacing dst wholesale if it already
// exists. It works for both files and directories; directory copies are
// recursive. The delete-then-recreate replacement guarantees no stale
// entries from a previous run survive under dst.
func CopyTree(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	if err := os.RemoveAll(dst); err != nil {
		return err
	}
	if info.IsDir() {
		return copyDir(src, dst, info)
	}
	return CopyFile(src, dst)
}

func copyDir(src, dst string, info os.FileInfo) error {
	if err := os.MkdirAll(dst, info.Mode().Perm()); err != nil {
		return err
	}
	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		s := filepath.Join(src, entry.Name())
		d := filepath.Join(dst, entry.Name())
		if entry.IsDir() {
			sub, err := entry.Info()
			if err != nil {
				return err
			}
			if err := copyDir(s, d, sub); err != nil {
				return err
			}
			continue
		}
		if err := CopyFile(s, d); err != nil {
			return err
		}
	}
	return nil
}

// CopyFile copies a single file byte-for-byte, creating parent directories
// as needed. An existing destination file is overwritten.
func CopyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// WriteFile writes content to path, creating parent directories as needed.
func WriteFile(path string, content []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, content, 0644)
}
