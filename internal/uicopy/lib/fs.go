package lib

import (
	"fmt"
	"io"
	"os"

	"github.com/efficientgo/core/errcapture"
)

// EnsureDir creates dir and any missing parents. It is a no-op if dir already exists.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}

// IsRegularFile reports whether path exists and is a regular file.
// Stat errors other than "not exist" are treated as absence too.
func IsRegularFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// SameFile reports whether a and b both exist and name the same file.
func SameFile(a, b string) bool {
	infoA, err := os.Stat(a)
	if err != nil {
		return false
	}
	infoB, err := os.Stat(b)
	if err != nil {
		return false
	}
	return os.SameFile(infoA, infoB)
}

// RemoveFileIfExists deletes the file at path. A missing path is not an error,
// a directory is.
func RemoveFileIfExists(path string) error {
	info, err := os.Lstat(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}
	return os.Remove(path)
}

// CopyFile copies a file from src to dst. If dst does not exist, it is created.
// If it does exist, it is overwritten. The permission bits of src are applied to dst.
func CopyFile(src, dst string) (err error) {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer errcapture.Do(&err, sourceFile.Close, "close source")

	info, err := sourceFile.Stat()
	if err != nil {
		return err
	}

	destFile, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	defer errcapture.Do(&err, destFile.Close, "close destination")

	if _, err = io.Copy(destFile, sourceFile); err != nil {
		return err
	}

	// OpenFile is subject to the umask.
	if err = destFile.Chmod(info.Mode().Perm()); err != nil {
		return err
	}

	// Ensure the data is written to stable storage.
	return destFile.Sync()
}
