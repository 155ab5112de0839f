// Package commands contains the operations behind the uicopy command line.
package commands

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/gingerrexayers/uicopy-go/internal/uicopy/lib"
	"github.com/gingerrexayers/uicopy-go/internal/uicopy/types"
)

// Copy places source inside destination under its original base name.
// The destination directory is created if needed and a same-named file already
// there is replaced. The caller is expected to have checked that source exists.
func Copy(source, destination string) types.Result {
	// 1. Make sure the destination directory exists.
	if err := lib.EnsureDir(destination); err != nil {
		return failed(fmt.Errorf("failed to create destination directory %s: %w", destination, err))
	}

	destinationFile := filepath.Join(destination, filepath.Base(source))

	// Copying a file onto itself would delete the only copy.
	if lib.SameFile(source, destinationFile) {
		return types.Result{Status: types.StatusCopied, Path: destinationFile}
	}

	// 2. Drop the previous copy, if any.
	if err := lib.RemoveFileIfExists(destinationFile); err != nil {
		return failed(fmt.Errorf("failed to remove existing file %s: %w", destinationFile, err))
	}

	// 3. Copy content and permission bits.
	if err := lib.CopyFile(source, destinationFile); err != nil {
		return failed(fmt.Errorf("failed to copy %s to %s: %w", source, destinationFile, err))
	}

	return types.Result{Status: types.StatusCopied, Path: destinationFile}
}

func failed(err error) types.Result {
	return types.Result{Status: types.StatusFailed, Err: err}
}

// Run is the main function for the uicopy command. It checks the source,
// copies it and writes one line describing the outcome to out.
func Run(cfg lib.Config, out io.Writer) types.Result {
	if !lib.IsRegularFile(cfg.Source) {
		fmt.Fprintf(out, "The source file %s does not exist\n", cfg.Source)
		return types.Result{Status: types.StatusSourceMissing, Path: cfg.Source}
	}

	result := Copy(cfg.Source, cfg.Destination)
	if result.OK() {
		fmt.Fprintf(out, "The file has been successfully copied to %s\n", result.Path)
	} else {
		fmt.Fprintf(out, "An error occurred while copying the file: %v\n", result.Err)
	}
	return result
}
