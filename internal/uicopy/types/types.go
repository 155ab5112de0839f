package types

// Status is the outcome category of a single copy run.
type Status int

const (
	// StatusCopied means the file now sits in the destination directory.
	StatusCopied Status = iota
	// StatusSourceMissing means the source was not a regular file at check time.
	StatusSourceMissing
	// StatusFailed means directory creation, removal of the old file, or the copy failed.
	StatusFailed
)

// String returns a short human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusCopied:
		return "copied"
	case StatusSourceMissing:
		return "source missing"
	case StatusFailed:
		return "failed"
	}
	return "unknown"
}

// Result is what a run produced. Path is the resolved destination file for
// StatusCopied and the checked source for StatusSourceMissing.
type Result struct {
	Status Status
	Path   string
	Err    error
}

// OK reports whether the file was copied.
func (r Result) OK() bool {
	return r.Status == StatusCopied
}
