package port

import "signsheet/internal/domain"

// SheetParser parses the OCR text of one sign-in sheet page.
type SheetParser interface {
	ParseWithFormat(raw string, startPage int, format domain.DateFormat) (*domain.ParseResult, error)
}
