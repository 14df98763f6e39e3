package domain

// ErrorKind identifies a hard parse failure.
type ErrorKind string

const (
	ErrorKindEmptyInput         ErrorKind = "EmptyInput"
	ErrorKindNoHeaderRecognized ErrorKind = "NoHeaderRecognized"
	ErrorKindNoNamesMarker      ErrorKind = "NoNamesMarker"
	ErrorKindNoneFound          ErrorKind = "NoneFound"
	ErrorKindMismatched         ErrorKind = "Mismatched"
	ErrorKindNoRecordsFound     ErrorKind = "NoRecordsFound"
)

// DateFormat selects the canonical layout of the document date.
type DateFormat string

const (
	DateFormatUS  DateFormat = "us"
	DateFormatISO DateFormat = "iso"
)

// ValidDateFormats is the set of accepted DateFormat values.
var ValidDateFormats = map[DateFormat]bool{
	DateFormatUS:  true,
	DateFormatISO: true,
}

// Layout returns the time layout for the format. Unknown values fall back to US.
func (f DateFormat) Layout() string {
	if f == DateFormatISO {
		return "2006-01-02"
	}
	return "01/02/2006"
}

// RecordStatus describes how complete a record's time data is.
type RecordStatus string

const (
	RecordStatusMissingTimeData RecordStatus = "Missing Time Data"
	RecordStatusMissingTimeIn   RecordStatus = "Missing Time In"
	RecordStatusMissingTimeOut  RecordStatus = "Missing Time Out"
	RecordStatusComplete        RecordStatus = "Complete"
)
