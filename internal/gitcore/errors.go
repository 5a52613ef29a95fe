package gitcore

import "fmt"

// Kind is one of the closed set of error conditions the core can raise.
type Kind int

const (
	_ Kind = iota
	// NotARepository means the gitdir does not exist where one was required.
	NotARepository
	// ConfigurationMissing means gitdir/config does not exist.
	ConfigurationMissing
	// UnsupportedFormat means core.repositoryformatversion is not 0.
	UnsupportedFormat
	// NotEmpty means a repository cannot be created because the target is occupied.
	NotEmpty
	// NoRepository means no ancestor directory contains a .git directory.
	NoRepository
	// NotADirectory means a path exists but is not a directory where one was required.
	NotADirectory
	// Malformed means an object's framed form failed a structural check.
	Malformed
	// UnknownKind means an object's framed kind is outside {blob, commit, tree, tag},
	// or that a resolved object is not of (and does not lead to) the requested kind.
	UnknownKind
	// UnknownMode means a tree leaf's mode is outside the known mode→kind mapping.
	UnknownMode
	// MalformedIndex means the staging index failed a structural assertion.
	MalformedIndex
	// UnknownRef means name resolution produced zero candidates.
	UnknownRef
	// AmbiguousRef means name resolution produced more than one candidate.
	AmbiguousRef
	// IoFailure wraps an underlying filesystem failure.
	IoFailure
	// DirectoryNotEmpty means checkout's target directory precondition failed.
	DirectoryNotEmpty
)

func (k Kind) String() string {
	switch k {
	case NotARepository:
		return "NotARepository"
	case ConfigurationMissing:
		return "ConfigurationMissing"
	case UnsupportedFormat:
		return "UnsupportedFormat"
	case NotEmpty:
		return "NotEmpty"
	case NoRepository:
		return "NoRepository"
	case NotADirectory:
		return "NotADirectory"
	case Malformed:
		return "Malformed"
	case UnknownKind:
		return "UnknownKind"
	case UnknownMode:
		return "UnknownMode"
	case MalformedIndex:
		return "MalformedIndex"
	case UnknownRef:
		return "UnknownRef"
	case AmbiguousRef:
		return "AmbiguousRef"
	case IoFailure:
		return "IoFailure"
	case DirectoryNotEmpty:
		return "DirectoryNotEmpty"
	default:
		return "Unknown"
	}
}

// Error is a gitcore error carrying its closed-set kind, context, and an
// optional wrapped cause. Candidates is populated only for AmbiguousRef.
type Error struct {
	Kind       Kind
	Context    string
	Cause      error
	Candidates []Hash
}

func (e *Error) Error() string {
	if len(e.Candidates) > 0 {
		return fmt.Sprintf("%s: %s: candidates=%v", e.Kind, e.Context, e.Candidates)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Context, e.Cause)
	}
	if e.Context != "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Context)
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error { return e.Cause }

// Is allows errors.Is(err, gitcore.ErrNotARepository) style checks: two
// Errors match when their Kinds are equal.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// newErr constructs an *Error of the given kind with a formatted context.
func newErr(k Kind, format string, args ...any) *Error {
	return &Error{Kind: k, Context: fmt.Sprintf(format, args...)}
}

// wrapErr constructs an *Error of the given kind wrapping cause.
func wrapErr(k Kind, cause error, format string, args ...any) *Error {
	return &Error{Kind: k, Context: fmt.Sprintf(format, args...), Cause: cause}
}

// Sentinel values for errors.Is comparisons against a specific kind, e.g.
// errors.Is(err, gitcore.ErrUnknownRef).
var (
	ErrNotARepository     = &Error{Kind: NotARepository}
	ErrConfigurationMiss  = &Error{Kind: ConfigurationMissing}
	ErrUnsupportedFormat  = &Error{Kind: UnsupportedFormat}
	ErrNotEmpty           = &Error{Kind: NotEmpty}
	ErrNoRepository       = &Error{Kind: NoRepository}
	ErrNotADirectory      = &Error{Kind: NotADirectory}
	ErrMalformed          = &Error{Kind: Malformed}
	ErrUnknownKind        = &Error{Kind: UnknownKind}
	ErrUnknownMode        = &Error{Kind: UnknownMode}
	ErrMalformedIndex     = &Error{Kind: MalformedIndex}
	ErrUnknownRef         = &Error{Kind: UnknownRef}
	ErrAmbiguousRef       = &Error{Kind: AmbiguousRef}
	ErrIoFailure          = &Error{Kind: IoFailure}
	ErrDirectoryNotEmpty  = &Error{Kind: DirectoryNotEmpty}
)
