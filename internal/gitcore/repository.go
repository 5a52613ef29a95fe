package gitcore

import (
	"os"
	"path/filepath"
)

// Repository binds a working-tree path, a metadata directory path
// (worktree/.git), and a parsed configuration with the single required
// invariant core.repositoryformatversion == 0.
type Repository struct {
	worktree string
	gitdir   string
	cfg      *config
}

// Worktree returns the repository's working-tree path.
func (r *Repository) Worktree() string { return r.worktree }

// Gitdir returns the repository's metadata directory path.
func (r *Repository) Gitdir() string { return r.gitdir }

// Open opens a repository rooted at path. Unless force is true: gitdir must
// exist and be a directory (else NotARepository); gitdir/config must exist
// (else ConfigurationMissing); core.repositoryformatversion must be 0 (else
// UnsupportedFormat).
func Open(path string, force bool) (*Repository, error) {
	r := &Repository{
		worktree: path,
		gitdir:   filepath.Join(path, ".git"),
	}

	if !force {
		info, err := os.Stat(r.gitdir)
		if err != nil || !info.IsDir() {
			return nil, newErr(NotARepository, "%s", r.gitdir)
		}
	}

	configPath := filepath.Join(r.gitdir, "config")
	f, err := os.Open(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			if !force {
				return nil, newErr(ConfigurationMissing, "%s", configPath)
			}
			r.cfg = newConfig()
		} else {
			return nil, wrapErr(IoFailure, err, "opening config %s", configPath)
		}
	} else {
		defer f.Close()
		cfg, err := parseConfig(f)
		if err != nil {
			return nil, err
		}
		r.cfg = cfg
	}

	if !force {
		version, err := r.cfg.repositoryFormatVersion()
		if err != nil || version != 0 {
			return nil, newErr(UnsupportedFormat, "core.repositoryformatversion")
		}
	}

	return r, nil
}

// Create initializes a new repository at path: the worktree must be absent
// (it is created) or a directory, and the gitdir (if present) must be
// empty. It creates the standard directory layout, a default description,
// a HEAD pointing at refs/heads/master, and a default config.
func Create(path string) (*Repository, error) {
	r, err := Open(path, true)
	if err != nil {
		return nil, err
	}

	if info, err := os.Stat(r.worktree); err == nil {
		if !info.IsDir() {
			return nil, newErr(NotEmpty, "%s exists and is not a directory", r.worktree)
		}
		if entries, err := os.ReadDir(r.gitdir); err == nil && len(entries) > 0 {
			return nil, newErr(NotEmpty, "%s is not empty", r.gitdir)
		} else if err != nil && !os.IsNotExist(err) {
			return nil, wrapErr(IoFailure, err, "reading %s", r.gitdir)
		}
	} else if os.IsNotExist(err) {
		if err := os.MkdirAll(r.worktree, 0o755); err != nil {
			return nil, wrapErr(IoFailure, err, "creating worktree %s", r.worktree)
		}
	} else {
		return nil, wrapErr(IoFailure, err, "stat %s", r.worktree)
	}

	for _, d := range [][]string{{"branches"}, {"objects"}, {"refs", "tags"}, {"refs", "heads"}} {
		if _, _, err := r.dir(d, true); err != nil {
			return nil, err
		}
	}

	descPath, err := r.file([]string{"description"}, true)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(descPath, []byte("Unnamed repository; edit this file 'description' to name the repository.\n"), 0o644); err != nil {
		return nil, wrapErr(IoFailure, err, "writing description")
	}

	headPath, err := r.file([]string{"HEAD"}, true)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(headPath, []byte("ref: refs/heads/master\n"), 0o644); err != nil {
		return nil, wrapErr(IoFailure, err, "writing HEAD")
	}

	configPath, err := r.file([]string{"config"}, true)
	if err != nil {
		return nil, err
	}
	if err := writeDefaultConfig(configPath); err != nil {
		return nil, err
	}

	r.cfg = newConfig()
	r.cfg.set("core", "repositoryformatversion", "0")
	r.cfg.set("core", "filemode", "false")
	r.cfg.set("core", "bare", "false")

	return r, nil
}

// Find walks upward from start through real paths until a directory
// containing .git/ is found. If the filesystem root is reached without
// success, it returns ("", false, nil) when required is false, or
// NoRepository when required is true.
func Find(start string, required bool) (string, bool, error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", false, wrapErr(IoFailure, err, "resolving %s", start)
	}
	abs, err = filepath.EvalSymlinks(abs)
	if err != nil {
		if os.IsNotExist(err) {
			abs, err = filepath.Abs(start)
			if err != nil {
				return "", false, wrapErr(IoFailure, err, "resolving %s", start)
			}
		} else {
			return "", false, wrapErr(IoFailure, err, "resolving %s", start)
		}
	}

	current := abs
	for {
		candidate := filepath.Join(current, ".git")
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return current, true, nil
		}

		parent := filepath.Dir(current)
		if parent == current {
			if required {
				return "", false, newErr(NoRepository, "%s", start)
			}
			return "", false, nil
		}
		current = parent
	}
}
