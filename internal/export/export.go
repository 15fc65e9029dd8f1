// Package export builds the source-tree zip archive served by the download
// endpoint. This is a convenience feature for handing the project to another
// developer, not part of the site's core behavior.
package export

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Directories and file patterns excluded from the archive.
var skipDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	"dist":         true,
}

func skipFile(name string) bool {
	switch filepath.Ext(name) {
	case ".db", ".sqlite", ".zip", ".log":
		return true
	}
	return strings.HasPrefix(name, ".env")
}

// WriteZip streams a zip archive of the tree rooted at root to w.
func WriteZip(w io.Writer, root string) error {
	zipWriter := zip.NewWriter(w)

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if relPath == "." {
			return nil
		}
		if info.IsDir() {
			if skipDirs[info.Name()] {
				return filepath.SkipDir
			}
			_, err = zipWriter.Create(relPath + "/")
			return err
		}
		if skipFile(info.Name()) {
			return nil
		}
		writer, err := zipWriter.Create(relPath)
		if err != nil {
			return err
		}
		fileToZip, err := os.Open(path)
		if err != nil {
			return err
		}
		defer fileToZip.Close()
		_, err = io.Copy(writer, fileToZip)
		return err
	})
	if err != nil {
		zipWriter.Close()
		return err
	}
	return zipWriter.Close()
}
