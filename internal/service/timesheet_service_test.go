package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tucasahr/hr-apigateway/internal/domain"
	"github.com/tucasahr/hr-apigateway/internal/timesheet"
)

// fakeTimeRecordRepo keeps records in memory, keyed by date+employee, and can
// be told to fail upserts.
type fakeTimeRecordRepo struct {
	records map[string]domain.RawTimeRecord
	failing bool
	upserts int
}

func newFakeTimeRecordRepo() *fakeTimeRecordRepo {
	return &fakeTimeRecordRepo{records: make(map[string]domain.RawTimeRecord)}
}

func (f *fakeTimeRecordRepo) List(ctx context.Context) ([]domain.RawTimeRecord, error) {
	out := make([]domain.RawTimeRecord, 0, len(f.records))
	for _, rec := range f.records {
		out = append(out, rec)
	}
	return out, nil
}

func (f *fakeTimeRecordRepo) ListRange(ctx context.Context, fromDate, toDate string) ([]domain.RawTimeRecord, error) {
	out := make([]domain.RawTimeRecord, 0, len(f.records))
	for _, rec := range f.records {
		if rec.Date >= fromDate && rec.Date <= toDate {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeTimeRecordRepo) UpsertDay(ctx context.Context, rec *domain.RawTimeRecord) error {
	f.upserts++
	if f.failing {
		return errors.New("database unavailable")
	}
	f.records[rec.Date+"/"+rec.EmployeeID] = *rec
	return nil
}

func TestSubmitDayPersistsMergedEntry(t *testing.T) {
	repo := newFakeTimeRecordRepo()
	svc := NewTimesheetService(repo, nil)
	ctx := context.Background()

	err := svc.SubmitDay(ctx, "2024-07-01", DayPatch{
		"e-001": {"entryTime": "08:00", "exitTime": "17:00"},
	})
	require.NoError(t, err)

	stored, ok := repo.records["2024-07-01/e-001"]
	require.True(t, ok)
	require.NotNil(t, stored.EntryTime)
	assert.Equal(t, "08:00", *stored.EntryTime)
	require.NotNil(t, stored.ExitTime)
	assert.Equal(t, "17:00", *stored.ExitTime)
	assert.Nil(t, stored.OvertimeHours)
	assert.Zero(t, svc.PendingCount())
}

func TestSubmitDayRejectsUnknownField(t *testing.T) {
	repo := newFakeTimeRecordRepo()
	svc := NewTimesheetService(repo, nil)

	err := svc.SubmitDay(context.Background(), "2024-07-01", DayPatch{
		"e-001": {"lunchHours": 1.0},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, timesheet.ErrUnknownField)
	assert.Zero(t, repo.upserts)
	assert.Zero(t, svc.PendingCount())
}

func TestSubmitDayRetainsEditsOnFailure(t *testing.T) {
	repo := newFakeTimeRecordRepo()
	repo.failing = true
	svc := NewTimesheetService(repo, nil)
	ctx := context.Background()

	err := svc.SubmitDay(ctx, "2024-07-01", DayPatch{
		"e-001": {"entryTime": "22:00"},
	})
	require.Error(t, err)
	assert.Equal(t, 1, svc.PendingCount())

	// The failed edit is still visible in the working table.
	table, err := svc.Table(ctx)
	require.NoError(t, err)
	e := table.EntryAt("2024-07-01", "e-001")
	require.NotNil(t, e.EntryTime)
	assert.Equal(t, "22:00", *e.EntryTime)

	// A retry after the outage succeeds and drops the pending edit.
	repo.failing = false
	err = svc.SubmitDay(ctx, "2024-07-01", DayPatch{
		"e-001": {"entryTime": "22:00", "exitTime": "06:00"},
	})
	require.NoError(t, err)
	assert.Zero(t, svc.PendingCount())

	stored := repo.records["2024-07-01/e-001"]
	require.NotNil(t, stored.ExitTime)
	assert.Equal(t, "06:00", *stored.ExitTime)
}

func TestSubmitDayMergesOverStoredRecord(t *testing.T) {
	repo := newFakeTimeRecordRepo()
	svc := NewTimesheetService(repo, nil)
	ctx := context.Background()

	require.NoError(t, svc.SubmitDay(ctx, "2024-07-01", DayPatch{
		"e-001": {"sickLeaveHours": 4.0},
	}))

	// Load fresh state, then add punches without resending the sick hours.
	_, err := svc.Table(ctx)
	require.NoError(t, err)
	require.NoError(t, svc.SubmitDay(ctx, "2024-07-01", DayPatch{
		"e-001": {"entryTime": "08:00", "exitTime": "12:00"},
	}))

	stored := repo.records["2024-07-01/e-001"]
	require.NotNil(t, stored.SickLeaveHours)
	assert.Equal(t, 4.0, *stored.SickLeaveHours)
	require.NotNil(t, stored.EntryTime)
	assert.Equal(t, "08:00", *stored.EntryTime)
}

func TestSubmitDayRequiresDate(t *testing.T) {
	svc := NewTimesheetService(newFakeTimeRecordRepo(), nil)
	err := svc.SubmitDay(context.Background(), "", DayPatch{"e-001": {"entryTime": "08:00"}})
	assert.Error(t, err)
}

func TestRecordsRangeBypassesCache(t *testing.T) {
	repo := newFakeTimeRecordRepo()
	entry := "08:00"
	repo.records["2024-07-01/e-001"] = domain.RawTimeRecord{
		ID: "r1", Date: "2024-07-01", EmployeeID: "e-001", EntryTime: &entry,
	}
	repo.records["2024-07-09/e-001"] = domain.RawTimeRecord{
		ID: "r2", Date: "2024-07-09", EmployeeID: "e-001", EntryTime: &entry,
	}
	svc := NewTimesheetService(repo, nil)

	records, err := svc.Records(context.Background(), "2024-07-01", "2024-07-07")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "2024-07-01", records[0].Date)
}
