package gitcore

import (
	"os"
	"path/filepath"
)

// dir returns the absolute directory path gitdir/p1/.../pn. If the path
// exists and is not a directory, it fails with NotADirectory. If it does not
// exist and mkdir is false, it returns ("", false, nil) — "absent" is not an
// error. If mkdir is true, all missing ancestors are created.
func (r *Repository) dir(parts []string, mkdir bool) (string, bool, error) {
	full := filepath.Join(append([]string{r.gitdir}, parts...)...)

	info, err := os.Stat(full)
	switch {
	case err == nil:
		if !info.IsDir() {
			return "", false, newErr(NotADirectory, "%s", full)
		}
		return full, true, nil
	case os.IsNotExist(err):
		if !mkdir {
			return "", false, nil
		}
		if err := os.MkdirAll(full, 0o755); err != nil {
			return "", false, wrapErr(IoFailure, err, "creating directory %s", full)
		}
		return full, true, nil
	default:
		return "", false, wrapErr(IoFailure, err, "stat %s", full)
	}
}

// file is like dir, but for a file: it ensures the parent directory exists
// under the same rules, then returns the absolute file path whether or not
// the file itself exists yet.
func (r *Repository) file(parts []string, mkdir bool) (string, error) {
	if len(parts) == 0 {
		return r.gitdir, nil
	}
	parentParts := parts[:len(parts)-1]
	if _, _, err := r.dir(parentParts, mkdir); err != nil {
		return "", err
	}
	return filepath.Join(append([]string{r.gitdir}, parts...)...), nil
}
