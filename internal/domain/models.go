package domain

// AttendanceRecord is a worker entry that survived validation.
type AttendanceRecord struct {
	ID      *int    `json:"id"`
	Name    string  `json:"name"`
	TimeIn  *string `json:"time_in"`
	TimeOut *string `json:"time_out"`
	Page    int     `json:"page"`
}

// HasTimeIn reports whether a clock-in time is present.
func (r *AttendanceRecord) HasTimeIn() bool { return r.TimeIn != nil && *r.TimeIn != "" }

// HasTimeOut reports whether a clock-out time is present.
func (r *AttendanceRecord) HasTimeOut() bool { return r.TimeOut != nil && *r.TimeOut != "" }

// Status computes the display completeness status of the record.
func (r *AttendanceRecord) Status() RecordStatus {
	switch {
	case !r.HasTimeIn() && !r.HasTimeOut():
		return RecordStatusMissingTimeData
	case !r.HasTimeIn():
		return RecordStatusMissingTimeIn
	case !r.HasTimeOut():
		return RecordStatusMissingTimeOut
	default:
		return RecordStatusComplete
	}
}

// ParseResult is the outcome of parsing one sign-in sheet (or a merged batch of pages).
type ParseResult struct {
	Date     string             `json:"date"`
	Records  []AttendanceRecord `json:"records"`
	Warnings []string           `json:"warnings"`
	Error    *ResultError       `json:"error,omitempty"`
}

// ResultError is the wire form of a hard parse failure.
type ResultError struct {
	Kind   ErrorKind `json:"kind"`
	Detail string    `json:"detail"`
}

// FailedResult builds the wire result for a hard failure. Records are always empty.
func FailedResult(err *ParseError) *ParseResult {
	warnings := err.Warnings
	if warnings == nil {
		warnings = []string{}
	}
	return &ParseResult{
		Date:     err.Date,
		Records:  []AttendanceRecord{},
		Warnings: warnings,
		Error:    &ResultError{Kind: err.Kind, Detail: err.Error()},
	}
}

// DisplayRecord is an AttendanceRecord annotated with its completeness status.
type DisplayRecord struct {
	AttendanceRecord
	Status RecordStatus `json:"status"`
}

// DisplayDocument is the review-screen projection of a ParseResult.
type DisplayDocument struct {
	Date                string          `json:"date"`
	TotalWorkers        int             `json:"total_workers"`
	WorkersWithTimeData int             `json:"workers_with_time_data"`
	Workers             []DisplayRecord `json:"workers"`
}

// Review is the pre-submission check of a parsed document.
type Review struct {
	IsValid bool     `json:"is_valid"`
	Errors  []string `json:"errors"`
}
