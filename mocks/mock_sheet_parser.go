package mocks

import (
	"github.com/stretchr/testify/mock"

	"signsheet/internal/domain"
)

// MockSheetParser is a mock implementation of port.SheetParser.
type MockSheetParser struct {
	mock.Mock
}

func (m *MockSheetParser) ParseWithFormat(raw string, startPage int, format domain.DateFormat) (*domain.ParseResult, error) {
	args := m.Called(raw, startPage, format)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ParseResult), args.Error(1)
}
