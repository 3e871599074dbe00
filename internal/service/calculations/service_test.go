package calculations

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/m04kA/SMC-DeadlineService/internal/domain"
	"github.com/m04kA/SMC-DeadlineService/internal/infra/storage/calculation"
	"github.com/m04kA/SMC-DeadlineService/internal/service/calculations/models"
)

type mockCalcRepo struct {
	mock.Mock
}

func (m *mockCalcRepo) GetByID(ctx context.Context, id int64) (*domain.Calculation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Calculation), args.Error(1)
}

func (m *mockCalcRepo) List(ctx context.Context) ([]domain.Calculation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Calculation), args.Error(1)
}

func (m *mockCalcRepo) Update(ctx context.Context, calc *domain.Calculation) (*domain.Calculation, error) {
	args := m.Called(ctx, calc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Calculation), args.Error(1)
}

func (m *mockCalcRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockAuditRepo struct {
	mock.Mock
}

func (m *mockAuditRepo) Record(ctx context.Context, event *domain.CalculationEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type mockDeadline struct {
	mock.Mock
}

func (m *mockDeadline) FormatBusinessHours(raw string) string {
	args := m.Called(raw)
	return args.String(0)
}

type fakeCache struct {
	enabled     bool
	records     map[int64]*domain.Calculation
	list        []domain.Calculation
	hasList     bool
	invalidated []int64
}

func newFakeCache(enabled bool) *fakeCache {
	return &fakeCache{enabled: enabled, records: make(map[int64]*domain.Calculation)}
}

func (c *fakeCache) Enabled() bool { return c.enabled }

func (c *fakeCache) GetCalculation(_ context.Context, id int64) (*domain.Calculation, bool) {
	calc, ok := c.records[id]
	return calc, ok
}

func (c *fakeCache) SetCalculation(_ context.Context, calc *domain.Calculation) {
	c.records[calc.ID] = calc
}

func (c *fakeCache) GetCalculations(_ context.Context) ([]domain.Calculation, bool) {
	return c.list, c.hasList
}

func (c *fakeCache) SetCalculations(_ context.Context, calcs []domain.Calculation) {
	c.list = calcs
	c.hasList = true
}

func (c *fakeCache) Invalidate(_ context.Context, id int64) {
	delete(c.records, id)
	c.list = nil
	c.hasList = false
	c.invalidated = append(c.invalidated, id)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func testCalculation(id int64) *domain.Calculation {
	return &domain.Calculation{
		ID:                  id,
		StartingDateTime:    "2024-03-01 9:30",
		TimeInterval:        60,
		ExpectedPickupTime:  "2024-03-01 10:30",
		ActualBusinessHours: "Mon-Fri 9-17",
		CreatedAt:           time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC),
		UpdatedAt:           time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC),
	}
}

func TestGetByID(t *testing.T) {
	calcRepo := new(mockCalcRepo)
	auditRepo := new(mockAuditRepo)
	deadline := new(mockDeadline)
	cache := newFakeCache(true)

	calc := testCalculation(7)
	calcRepo.On("GetByID", mock.Anything, int64(7)).Return(calc, nil).Once()

	svc := NewService(calcRepo, auditRepo, deadline, cache, nopLogger{})

	resp, err := svc.GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "2024-03-01 9:30", resp.StartingDateTime)
	assert.Equal(t, "Mon-Fri 9-17", resp.ActualBusinessHours)

	// повторный запрос должен попасть в кеш
	resp, err = svc.GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.ID)

	calcRepo.AssertExpectations(t)
}

func TestGetByID_NotFound(t *testing.T) {
	calcRepo := new(mockCalcRepo)
	calcRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, calculation.ErrCalculationNotFound)

	svc := NewService(calcRepo, new(mockAuditRepo), new(mockDeadline), newFakeCache(false), nopLogger{})

	resp, err := svc.GetByID(context.Background(), 99)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrCalculationNotFound)
}

func TestList_FormatsBusinessHours(t *testing.T) {
	calcRepo := new(mockCalcRepo)
	deadline := new(mockDeadline)
	cache := newFakeCache(true)

	stored := []domain.Calculation{
		{ID: 1, ActualBusinessHours: "Mon-Fri 9-17"},
		{ID: 2, ActualBusinessHours: "Mon-Fri 9-17_Sat 9-12"},
	}
	calcRepo.On("List", mock.Anything).Return(stored, nil).Once()
	deadline.On("FormatBusinessHours", "Mon-Fri 9-17").Return("Mon-Fri 9-17\n\n")
	deadline.On("FormatBusinessHours", "Mon-Fri 9-17_Sat 9-12").Return("Mon-Fri 9-17\n\nSat 9-12\n\n")

	svc := NewService(calcRepo, new(mockAuditRepo), deadline, cache, nopLogger{})

	resp, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Calculations, 2)
	assert.Equal(t, "Mon-Fri 9-17\n\n", resp.Calculations[0].ActualBusinessHours)
	assert.Equal(t, "Mon-Fri 9-17\n\nSat 9-12\n\n", resp.Calculations[1].ActualBusinessHours)

	// в кеше лежит сырое значение, не отформатированное
	require.True(t, cache.hasList)
	assert.Equal(t, "Mon-Fri 9-17", cache.list[0].ActualBusinessHours)

	calcRepo.AssertExpectations(t)
}

func TestUpdate_PersistsAsGiven(t *testing.T) {
	calcRepo := new(mockCalcRepo)
	auditRepo := new(mockAuditRepo)
	cache := newFakeCache(true)

	data := &models.UpdateCalculationData{
		StartingDateTime:    "2024-03-01 9:30",
		TimeInterval:        120,
		ExpectedPickupTime:  "2099-01-01 0:00",
		ActualBusinessHours: "whatever the client sent",
	}

	updated := testCalculation(7)
	updated.TimeInterval = 120
	updated.ExpectedPickupTime = "2099-01-01 0:00"
	updated.ActualBusinessHours = "whatever the client sent"

	calcRepo.On("Update", mock.Anything, mock.MatchedBy(func(calc *domain.Calculation) bool {
		return calc.ID == 7 &&
			calc.ExpectedPickupTime == "2099-01-01 0:00" &&
			calc.ActualBusinessHours == "whatever the client sent"
	})).Return(updated, nil)
	auditRepo.On("Record", mock.Anything, mock.MatchedBy(func(event *domain.CalculationEvent) bool {
		return event.CalculationID == 7 && event.Action == domain.EventActionUpdated
	})).Return(nil)

	svc := NewService(calcRepo, auditRepo, new(mockDeadline), cache, nopLogger{})

	resp, err := svc.Update(context.Background(), 7, data)
	require.NoError(t, err)
	assert.Equal(t, "2099-01-01 0:00", resp.ExpectedPickupTime)
	assert.Contains(t, cache.invalidated, int64(7))

	calcRepo.AssertExpectations(t)
	auditRepo.AssertExpectations(t)
}

func TestUpdate_NotFound(t *testing.T) {
	calcRepo := new(mockCalcRepo)
	auditRepo := new(mockAuditRepo)
	calcRepo.On("Update", mock.Anything, mock.Anything).Return(nil, calculation.ErrCalculationNotFound)

	svc := NewService(calcRepo, auditRepo, new(mockDeadline), newFakeCache(false), nopLogger{})

	resp, err := svc.Update(context.Background(), 404, &models.UpdateCalculationData{})
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrCalculationNotFound)
	auditRepo.AssertNotCalled(t, "Record", mock.Anything, mock.Anything)
}

func TestUpdate_AuditFailureDoesNotFail(t *testing.T) {
	calcRepo := new(mockCalcRepo)
	auditRepo := new(mockAuditRepo)

	calcRepo.On("Update", mock.Anything, mock.Anything).Return(testCalculation(7), nil)
	auditRepo.On("Record", mock.Anything, mock.Anything).Return(assert.AnError)

	svc := NewService(calcRepo, auditRepo, new(mockDeadline), newFakeCache(false), nopLogger{})

	resp, err := svc.Update(context.Background(), 7, &models.UpdateCalculationData{})
	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.ID)
}

func TestDelete(t *testing.T) {
	calcRepo := new(mockCalcRepo)
	auditRepo := new(mockAuditRepo)
	cache := newFakeCache(true)

	calcRepo.On("Delete", mock.Anything, int64(7)).Return(nil)
	auditRepo.On("Record", mock.Anything, mock.MatchedBy(func(event *domain.CalculationEvent) bool {
		return event.CalculationID == 7 && event.Action == domain.EventActionDeleted
	})).Return(nil)

	svc := NewService(calcRepo, auditRepo, new(mockDeadline), cache, nopLogger{})

	err := svc.Delete(context.Background(), 7)
	require.NoError(t, err)
	assert.Contains(t, cache.invalidated, int64(7))
	auditRepo.AssertExpectations(t)
}

func TestDelete_MissingRecordIsNotAnError(t *testing.T) {
	calcRepo := new(mockCalcRepo)
	auditRepo := new(mockAuditRepo)
	calcRepo.On("Delete", mock.Anything, int64(404)).Return(calculation.ErrCalculationNotFound)

	svc := NewService(calcRepo, auditRepo, new(mockDeadline), newFakeCache(false), nopLogger{})

	err := svc.Delete(context.Background(), 404)
	assert.NoError(t, err)
	auditRepo.AssertNotCalled(t, "Record", mock.Anything, mock.Anything)
}

func TestDelete_RepositoryError(t *testing.T) {
	calcRepo := new(mockCalcRepo)
	calcRepo.On("Delete", mock.Anything, int64(7)).Return(assert.AnError)

	svc := NewService(calcRepo, new(mockAuditRepo), new(mockDeadline), newFakeCache(false), nopLogger{})

	err := svc.Delete(context.Background(), 7)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestWriteReport(t *testing.T) {
	calcRepo := new(mockCalcRepo)
	calcRepo.On("List", mock.Anything).Return([]domain.Calculation{*testCalculation(1)}, nil)

	svc := NewService(calcRepo, new(mockAuditRepo), new(mockDeadline), newFakeCache(false), nopLogger{})

	var buf bytes.Buffer
	err := svc.WriteReport(context.Background(), &buf)
	require.NoError(t, err)
	require.NotZero(t, buf.Len())

	file, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer file.Close()

	header, err := file.GetCellValue(reportSheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "ID", header)

	start, err := file.GetCellValue(reportSheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01 9:30", start)

	hours, err := file.GetCellValue(reportSheet, "E2")
	require.NoError(t, err)
	assert.Equal(t, "Mon-Fri 9-17", hours)
}
