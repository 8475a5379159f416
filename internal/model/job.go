package model

// Job describes one pipeline invocation. Jobs are created by the API layer per
// request, consumed once and never reused.
type Job struct {
	RecordingID string
	AudioPath   string // path to the uploaded audio file; empty means nothing was uploaded
	DisplayName string // original filename, for the report
	Translate   bool
}

// Outcome is what a finished run hands back to the caller: the three output
// slots of the form. On a fatal failure Transcript carries the error message,
// Translation is empty and ReportPath is absent.
type Outcome struct {
	Transcript  string
	Translation string
	ReportPath  string
	Failed      bool
}
