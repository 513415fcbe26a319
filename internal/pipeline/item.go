package pipeline

// WorkItem identifies one unit of batch work: a source file and the
// destination artifact derived from it. Items are value objects created by
// discovery and consumed exactly once by a Transform.
type WorkItem struct {
	Source string
	Dest   string
}

// Status classifies the outcome of a single transform.
type Status int

const (
	StatusOK Status = iota
	StatusFailed
	StatusSkipped
)

// Result is the typed outcome of applying a Transform to one WorkItem.
// Subprocess failures additionally carry the exit code, the full command
// line, and the captured stdout/stderr for the failure report.
type Result struct {
	Item   WorkItem
	Status Status
	Err    error

	ExitCode int
	Command  string
	Stdout   string
	Stderr   string

	InBytes  int64
	OutBytes int64
}

// Ok reports whether the transform succeeded.
func (r Result) Ok() bool { return r.Status == StatusOK }

// Success returns a successful Result for item.
func Success(item WorkItem) Result {
	return Result{Item: item, Status: StatusOK}
}

// Skip returns a skipped Result for item (e.g. destination already exists).
func Skip(item WorkItem) Result {
	return Result{Item: item, Status: StatusSkipped}
}

// Failure returns a failed Result for item carrying err.
func Failure(item WorkItem, err error) Result {
	return Result{Item: item, Status: StatusFailed, Err: err}
}
