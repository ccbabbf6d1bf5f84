package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/tucasahr/hr-apigateway/internal/database"
	"github.com/tucasahr/hr-apigateway/internal/domain"
	"github.com/tucasahr/hr-apigateway/internal/logger"
	"github.com/tucasahr/hr-apigateway/internal/timesheet"
)

// timeCacheKey holds the full time-record collection in the read-through cache.
const timeCacheKey = "timerecords:all"

// DayPatch is one day's submit payload: employee id -> field name -> value.
type DayPatch map[string]map[string]interface{}

type pendingEdit struct {
	date       string
	employeeID string
	field      timesheet.Field
	value      interface{}
}

// TimesheetService owns the working time table. The table type itself is not
// concurrency-safe and the HTTP server serves from many goroutines, so every
// access goes through the service mutex. Edits whose submit failed are kept
// as pending and replayed over each refresh, so the operator never loses an
// attempted change.
type TimesheetService struct {
	repo  domain.TimeRecordRepository
	cache *database.TimeCache

	mu      sync.Mutex
	table   *timesheet.Table
	pending []pendingEdit
}

// NewTimesheetService creates a new TimesheetService instance. cache may be
// nil, in which case every read goes to the repository.
func NewTimesheetService(repo domain.TimeRecordRepository, cache *database.TimeCache) *TimesheetService {
	return &TimesheetService{
		repo:  repo,
		cache: cache,
		table: timesheet.NewTable(),
	}
}

// Records returns raw time records. The unbounded listing is served
// read-through from the cache; date-range queries always hit the repository.
func (s *TimesheetService) Records(ctx context.Context, fromDate, toDate string) ([]domain.RawTimeRecord, error) {
	if fromDate != "" && toDate != "" {
		return s.repo.ListRange(ctx, fromDate, toDate)
	}
	if records, ok := s.cache.Get(ctx, timeCacheKey); ok {
		return records, nil
	}
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Put(ctx, timeCacheKey, records)
	return records, nil
}

// Table rebuilds the working table from the authoritative records and
// replays pending edits on top. Aggregates are never cached: every report
// reads through this and recomputes from the fresh table.
func (s *TimesheetService) Table(ctx context.Context) (*timesheet.Table, error) {
	records, err := s.Records(ctx, "", "")
	if err != nil {
		return nil, fmt.Errorf("load time records: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t := timesheet.NewTableFromRecords(ctx, records)
	for _, p := range s.pending {
		if err := t.SetField(p.date, p.employeeID, p.field, p.value); err != nil {
			// Pending edits were validated on entry; this only fires if the
			// field set ever shrinks.
			logger.WarnLog(ctx, "dropping stale pending edit %s/%s.%s: %v",
				p.date, p.employeeID, p.field, err)
		}
	}
	s.table = t
	return t, nil
}

// SubmitDay validates and applies one day's patch, then persists it. On
// persistence failure the edits stay in the working table as pending so a
// retry submits them again; on success they are promoted to authoritative
// and the cache entry is invalidated.
func (s *TimesheetService) SubmitDay(ctx context.Context, date string, patch DayPatch) error {
	if date == "" {
		return fmt.Errorf("submit requires a date")
	}

	// Reject unknown field names before touching any state.
	for employeeID, fields := range patch {
		if employeeID == "" {
			return fmt.Errorf("submit requires an employee id")
		}
		for name := range fields {
			if _, err := timesheet.ParseField(name); err != nil {
				return err
			}
		}
	}

	s.mu.Lock()
	var edits []pendingEdit
	for employeeID, fields := range patch {
		for name, value := range fields {
			field, _ := timesheet.ParseField(name)
			if err := s.table.SetField(date, employeeID, field, value); err != nil {
				s.mu.Unlock()
				return err
			}
			edits = append(edits, pendingEdit{date: date, employeeID: employeeID, field: field, value: value})
		}
	}
	s.pending = append(s.pending, edits...)

	// Snapshot the merged entries to persist outside the lock.
	records := make([]domain.RawTimeRecord, 0, len(patch))
	for employeeID := range patch {
		e := s.table.EntryAt(date, employeeID)
		records = append(records, domain.RawTimeRecord{
			Date:           date,
			EmployeeID:     employeeID,
			EntryTime:      e.EntryTime,
			ExitTime:       e.ExitTime,
			OvertimeHours:  e.OvertimeHours,
			SickLeaveHours: e.SickLeaveHours,
			VacationHours:  e.VacationHours,
			HolidayHours:   e.HolidayHours,
			OtherHours:     e.OtherHours,
		})
	}
	s.mu.Unlock()

	for i := range records {
		if err := s.repo.UpsertDay(ctx, &records[i]); err != nil {
			return fmt.Errorf("persist time record %s/%s: %w", date, records[i].EmployeeID, err)
		}
	}

	s.mu.Lock()
	s.dropPending(date, patch)
	s.mu.Unlock()
	s.cache.Invalidate(ctx, timeCacheKey)

	logger.InfoLog(ctx, "submitted time records for %s (%d employees)", date, len(records))
	return nil
}

// SetField applies one local, unsubmitted edit to the working table.
func (s *TimesheetService) SetField(date, employeeID, fieldName string, value interface{}) error {
	field, err := timesheet.ParseField(fieldName)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.table.SetField(date, employeeID, field, value); err != nil {
		return err
	}
	s.pending = append(s.pending, pendingEdit{date: date, employeeID: employeeID, field: field, value: value})
	return nil
}

// PendingCount reports how many edits await a successful submit.
func (s *TimesheetService) PendingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// dropPending removes pending edits covered by a successfully submitted
// patch. Callers hold s.mu.
func (s *TimesheetService) dropPending(date string, patch DayPatch) {
	kept := s.pending[:0]
	for _, p := range s.pending {
		if p.date == date {
			if _, ok := patch[p.employeeID]; ok {
				continue
			}
		}
		kept = append(kept, p)
	}
	s.pending = kept
}
