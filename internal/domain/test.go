package domain

// MappingRecord is one parsed line of a name-mapping file. The harness
// writes sub-test output under a generated (randomized) directory name and
// records the original human-readable name next to it.
type MappingRecord struct {
	GeneratedName string // generated output sub-directory name
	OriginalLabel string // remaining columns, joined verbatim
	Raw           string // the full line as read, without the trailing newline
}

// JobStatus is the lifecycle state of a dispatched farm job
type JobStatus int

const (
	JobNotStarted JobStatus = iota
	JobRunning
	JobDone
	JobFailed
)

// String returns a short state word for log lines
func (s JobStatus) String() string {
	switch s {
	case JobNotStarted:
		return "not-started"
	case JobRunning:
		return "running"
	case JobDone:
		return "done"
	case JobFailed:
		return "failed"
	}
	return "unknown"
}

// DispatchJob tracks one test dispatched to the farm scheduler
type DispatchJob struct {
	TestDir string    // test directory the job was submitted from
	ID      string    // farm job identifier returned by the submit tool
	Status  JobStatus // current state as last polled
	Index   int       // position in the dispatch order
}
