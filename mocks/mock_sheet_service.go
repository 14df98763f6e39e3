package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"signsheet/internal/domain"
	"signsheet/internal/service"
)

// MockSheetService is a mock implementation of service.SheetService.
type MockSheetService struct {
	mock.Mock
}

func (m *MockSheetService) Parse(ctx context.Context, input service.ParseInput) (*domain.ParseResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ParseResult), args.Error(1)
}

func (m *MockSheetService) ParsePages(ctx context.Context, input service.ParsePagesInput) (*domain.ParseResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ParseResult), args.Error(1)
}

func (m *MockSheetService) Review(input service.ReviewInput) *service.ReviewOutput {
	args := m.Called(input)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*service.ReviewOutput)
}

func (m *MockSheetService) AdjustTimes(input service.AdjustTimesInput) (*service.AdjustTimesOutput, error) {
	args := m.Called(input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AdjustTimesOutput), args.Error(1)
}

func (m *MockSheetService) CheckSelectedDate(scanned, selected string) error {
	args := m.Called(scanned, selected)
	return args.Error(0)
}
