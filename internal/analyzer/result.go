package analyzer

import "time"

// Status classifies the outcome of analyzing one file.
type Status string

const (
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusSkipped   Status = "skipped"
)

// Result is the immutable outcome of analyzing one file. Exactly one Result
// is produced per discovered file. The three statuses are mutually
// exclusive; Analysis is populated only when the status is completed.
type Result struct {
	File      string
	Status    Status
	Analysis  string    // present iff Status == StatusCompleted
	Error     string    // present iff Status == StatusFailed
	Reason    string    // present iff Status == StatusSkipped
	Timestamp time.Time // set only for completed results
}

// Counts summarizes a result sequence by status.
type Counts struct {
	Total     int
	Completed int
	Failed    int
	Skipped   int
}

// Summarize counts results by status.
func Summarize(results []Result) Counts {
	c := Counts{Total: len(results)}
	for _, r := range results {
		switch r.Status {
		case StatusCompleted:
			c.Completed++
		case StatusFailed:
			c.Failed++
		case StatusSkipped:
			c.Skipped++
		}
	}
	return c
}
