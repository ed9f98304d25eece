package filesystem

import (
	"os"
	"path/filepath"
)

// WriteFileAtomic writes data next to path and renames it into place,
// so readers never observe a partially written file.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	if err := API().MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := API().WriteFile(tmp, data, perm); err != nil {
		return err
	}

	if err := API().Rename(tmp, path); err != nil {
		_ = API().Remove(tmp)
		return err
	}
	return nil
}
