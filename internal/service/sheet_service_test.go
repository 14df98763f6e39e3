package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"signsheet/internal/domain"
	"signsheet/internal/service"
	"signsheet/internal/sheet"
	"signsheet/mocks"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const pageHeader = "SIGN IN SHEET 05/06/2024\nNAMES\nTIME IN\nTIME OUT\n"

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func newSheetService(p *mocks.MockSheetParser) service.SheetService {
	return service.NewSheetService(p, service.SheetServiceConfig{
		DateFormat:  domain.DateFormatUS,
		MaxPages:    3,
		Concurrency: 2,
	})
}

func newEngineService() service.SheetService {
	return service.NewSheetService(sheet.NewEngine(sheet.Options{}), service.SheetServiceConfig{
		DateFormat:  domain.DateFormatUS,
		MaxPages:    10,
		Concurrency: 4,
	})
}

// --- Parse ---

func TestSheetService_Parse_Success(t *testing.T) {
	p := new(mocks.MockSheetParser)
	svc := newSheetService(p)

	expected := &domain.ParseResult{Date: "05/06/2024", Records: []domain.AttendanceRecord{{Name: "Ann"}}, Warnings: []string{}}
	p.On("ParseWithFormat", "text", 1, domain.DateFormatUS).Return(expected, nil)

	result, err := svc.Parse(context.Background(), service.ParseInput{Text: "text"})

	assert.NoError(t, err)
	assert.Equal(t, expected, result)
	p.AssertExpectations(t)
}

func TestSheetService_Parse_FormatOverride(t *testing.T) {
	p := new(mocks.MockSheetParser)
	svc := newSheetService(p)

	p.On("ParseWithFormat", "text", 1, domain.DateFormatISO).Return(&domain.ParseResult{Date: "2024-05-06"}, nil)

	result, err := svc.Parse(context.Background(), service.ParseInput{Text: "text", DateFormat: domain.DateFormatISO})

	require.NoError(t, err)
	assert.Equal(t, "2024-05-06", result.Date)
}

func TestSheetService_Parse_InvalidFormat(t *testing.T) {
	p := new(mocks.MockSheetParser)
	svc := newSheetService(p)

	result, err := svc.Parse(context.Background(), service.ParseInput{Text: "text", DateFormat: "eu"})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrInvalidDateFormat)
	p.AssertNotCalled(t, "ParseWithFormat", mock.Anything, mock.Anything, mock.Anything)
}

func TestSheetService_Parse_Error(t *testing.T) {
	p := new(mocks.MockSheetParser)
	svc := newSheetService(p)

	p.On("ParseWithFormat", "", 1, domain.DateFormatUS).Return(nil, domain.NewParseError(domain.ErrorKindEmptyInput))

	result, err := svc.Parse(context.Background(), service.ParseInput{})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrEmptyInput)
}

func TestSheetService_Parse_Canceled(t *testing.T) {
	p := new(mocks.MockSheetParser)
	svc := newSheetService(p)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Parse(ctx, service.ParseInput{Text: "text"})

	assert.ErrorIs(t, err, context.Canceled)
}

// --- ParsePages ---

func TestSheetService_ParsePages_PageNumbers(t *testing.T) {
	p := new(mocks.MockSheetParser)
	svc := newSheetService(p)

	p.On("ParseWithFormat", "p1", 1, domain.DateFormatUS).Return(&domain.ParseResult{
		Date:     "05/06/2024",
		Records:  []domain.AttendanceRecord{{ID: intPtr(1), Name: "Ann", Page: 1}},
		Warnings: []string{"page one warning"},
	}, nil)
	p.On("ParseWithFormat", "p2", 2, domain.DateFormatUS).Return(&domain.ParseResult{
		Date:    "05/06/2024",
		Records: []domain.AttendanceRecord{{ID: intPtr(2), Name: "Bob", Page: 2}},
	}, nil)

	result, err := svc.ParsePages(context.Background(), service.ParsePagesInput{Pages: []string{"p1", "p2"}})

	require.NoError(t, err)
	assert.Equal(t, "05/06/2024", result.Date)
	require.Len(t, result.Records, 2)
	assert.Equal(t, "Ann", result.Records[0].Name)
	assert.Equal(t, "Bob", result.Records[1].Name)
	assert.Equal(t, []string{"page one warning"}, result.Warnings)
	p.AssertExpectations(t)
}

func TestSheetService_ParsePages_DuplicateAcrossPages(t *testing.T) {
	svc := newEngineService()

	result, err := svc.ParsePages(context.Background(), service.ParsePagesInput{Pages: []string{
		pageHeader + "1\nJohn Smith\n8:00\n17:00\n2\nJane Doe\n9:00",
		pageHeader + "2\nBob Ray\n9:00\n16:00\n3\nJOHN SMITH\n8:00\n12:00\n4\nAl Green",
	}})

	require.NoError(t, err)
	require.Len(t, result.Records, 3)
	assert.Equal(t, "John Smith", result.Records[0].Name)
	assert.Equal(t, 1, result.Records[0].Page)
	assert.Equal(t, "Jane Doe", result.Records[1].Name)
	assert.Equal(t, "Al Green", result.Records[2].Name)
	assert.Equal(t, 2, result.Records[2].Page)
	require.Len(t, result.Warnings, 2)
	assert.Contains(t, result.Warnings[0], "Worker ID 2")
	assert.Contains(t, result.Warnings[1], "JOHN SMITH")
}

func TestSheetService_ParsePages_DateMismatch(t *testing.T) {
	svc := newEngineService()

	_, err := svc.ParsePages(context.Background(), service.ParsePagesInput{Pages: []string{
		pageHeader + "1\nJohn Smith",
		"SIGN IN SHEET 05/07/2024\nNAMES\n2\nJane Doe",
	}})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDateMismatch)
	var pe *domain.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "05/06/2024", pe.Primary)
	assert.Equal(t, []string{"05/07/2024"}, pe.Others)
	assert.Contains(t, err.Error(), "ensure all pages are from the same date")
}

func TestSheetService_ParsePages_FirstFailingPageReported(t *testing.T) {
	svc := newEngineService()

	_, err := svc.ParsePages(context.Background(), service.ParsePagesInput{Pages: []string{
		pageHeader + "1\nJohn Smith",
		"",
		"GROCERY LIST",
	}})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEmptyInput)
	var pe *domain.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 2, pe.Page)
	assert.Contains(t, err.Error(), "page 2: ")
}

func TestSheetService_ParsePages_TooMany(t *testing.T) {
	p := new(mocks.MockSheetParser)
	svc := newSheetService(p)

	_, err := svc.ParsePages(context.Background(), service.ParsePagesInput{Pages: []string{"a", "b", "c", "d"}})

	assert.ErrorIs(t, err, domain.ErrTooManyPages)
	p.AssertNotCalled(t, "ParseWithFormat", mock.Anything, mock.Anything, mock.Anything)
}

func TestSheetService_ParsePages_NoPages(t *testing.T) {
	p := new(mocks.MockSheetParser)
	svc := newSheetService(p)

	_, err := svc.ParsePages(context.Background(), service.ParsePagesInput{})

	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
}

func TestSheetService_ParsePages_Canceled(t *testing.T) {
	p := new(mocks.MockSheetParser)
	svc := newSheetService(p)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.ParsePages(ctx, service.ParsePagesInput{Pages: []string{"a", "b"}})

	assert.ErrorIs(t, err, context.Canceled)
	p.AssertNotCalled(t, "ParseWithFormat", mock.Anything, mock.Anything, mock.Anything)
}

// --- Review ---

func TestSheetService_Review(t *testing.T) {
	svc := newEngineService()

	out := svc.Review(service.ReviewInput{
		Date: "05/06/2024",
		Records: []domain.AttendanceRecord{
			{Name: "bob", TimeIn: strPtr("08:00"), TimeOut: strPtr("17:00")},
			{Name: "Amy"},
		},
		SortByName: true,
	})

	assert.False(t, out.Review.IsValid)
	assert.Equal(t, []string{"Found 1 workers with missing time data"}, out.Review.Errors)
	assert.Equal(t, 2, out.Display.TotalWorkers)
	assert.Equal(t, 1, out.Display.WorkersWithTimeData)
	assert.Equal(t, "Amy", out.Display.Workers[0].Name)
	assert.Equal(t, domain.RecordStatusMissingTimeData, out.Display.Workers[0].Status)
}

// --- AdjustTimes ---

func TestSheetService_AdjustTimes(t *testing.T) {
	svc := newEngineService()

	tests := []struct {
		name    string
		in, out string
		wantIn  string
		wantOut string
		rolled  bool
	}{
		{"already_ordered", "8:00", "1700", "08:00", "17:00", false},
		{"twelve_hour_end", "08:00", "5:00", "08:00", "17:00", true},
		{"afternoon_end_untouched", "18:00", "13:00", "18:00", "13:00", false},
		{"noisy_input", "8h00", "4:30pm", "08:00", "16:30", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := svc.AdjustTimes(service.AdjustTimesInput{TimeIn: tt.in, TimeOut: tt.out})
			require.NoError(t, err)
			assert.Equal(t, tt.wantIn, out.TimeIn)
			assert.Equal(t, tt.wantOut, out.TimeOut)
			assert.Equal(t, tt.rolled, out.RolledForward)
		})
	}
}

func TestSheetService_AdjustTimes_Invalid(t *testing.T) {
	svc := newEngineService()

	_, err := svc.AdjustTimes(service.AdjustTimesInput{TimeIn: "25:00", TimeOut: "17:00"})
	assert.ErrorIs(t, err, domain.ErrInvalidTime)

	_, err = svc.AdjustTimes(service.AdjustTimesInput{TimeIn: "08:00", TimeOut: "later"})
	assert.ErrorIs(t, err, domain.ErrInvalidTime)
}

// --- CheckSelectedDate ---

func TestSheetService_CheckSelectedDate(t *testing.T) {
	svc := newEngineService()

	assert.NoError(t, svc.CheckSelectedDate("05/06/2024", "2024-05-06"))
	assert.NoError(t, svc.CheckSelectedDate("2024-05-06", "2024-05-06"))
	assert.ErrorIs(t, svc.CheckSelectedDate("05/06/2024", "2024-06-05"), domain.ErrSelectedDateDiffer)
	assert.ErrorIs(t, svc.CheckSelectedDate("05/06/2024", "05/06/2024"), domain.ErrSelectedDateFormat)
	assert.ErrorIs(t, svc.CheckSelectedDate("sometime", "2024-05-06"), domain.ErrInvalidRequest)
}
