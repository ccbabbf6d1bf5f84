package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/tucasahr/hr-apigateway/internal/domain"
	"github.com/tucasahr/hr-apigateway/internal/repository/builder"
)

var timeRecordColumns = []string{
	"id", "to_char(date, 'YYYY-MM-DD')", "employee_id", "entry_time", "exit_time",
	"overtime_hours", "sick_leave_hours", "vacation_hours", "holiday_hours", "other_hours",
}

// upsertTimeRecord merges field-by-field: a NULL in the incoming record never
// overwrites a stored value, matching the merge semantics of the in-memory
// table.
const upsertTimeRecord = `
INSERT INTO time_records
	(id, date, employee_id, entry_time, exit_time,
	 overtime_hours, sick_leave_hours, vacation_hours, holiday_hours, other_hours)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
ON CONFLICT (date, employee_id) DO UPDATE SET
	entry_time       = COALESCE(EXCLUDED.entry_time, time_records.entry_time),
	exit_time        = COALESCE(EXCLUDED.exit_time, time_records.exit_time),
	overtime_hours   = COALESCE(EXCLUDED.overtime_hours, time_records.overtime_hours),
	sick_leave_hours = COALESCE(EXCLUDED.sick_leave_hours, time_records.sick_leave_hours),
	vacation_hours   = COALESCE(EXCLUDED.vacation_hours, time_records.vacation_hours),
	holiday_hours    = COALESCE(EXCLUDED.holiday_hours, time_records.holiday_hours),
	other_hours      = COALESCE(EXCLUDED.other_hours, time_records.other_hours)`

type timeRecordRepository struct {
	db *sql.DB
}

// NewTimeRecordRepository creates a new instance of TimeRecordRepository
func NewTimeRecordRepository(db *sql.DB) domain.TimeRecordRepository {
	return &timeRecordRepository{db: db}
}

func (r *timeRecordRepository) List(ctx context.Context) ([]domain.RawTimeRecord, error) {
	b := builder.NewSQLBuilder()
	query, args := b.Select(timeRecordColumns...).
		From("time_records").
		OrderBy("date ASC, employee_id ASC").
		Build()
	return r.queryRecords(ctx, query, args)
}

func (r *timeRecordRepository) ListRange(ctx context.Context, fromDate, toDate string) ([]domain.RawTimeRecord, error) {
	b := builder.NewSQLBuilder()
	query, args := b.Select(timeRecordColumns...).
		From("time_records").
		Where("date >= ? AND date <= ?", fromDate, toDate).
		OrderBy("date ASC, employee_id ASC").
		Build()
	return r.queryRecords(ctx, query, args)
}

func (r *timeRecordRepository) UpsertDay(ctx context.Context, rec *domain.RawTimeRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	_, err := r.db.ExecContext(ctx, upsertTimeRecord,
		rec.ID, rec.Date, rec.EmployeeID, rec.EntryTime, rec.ExitTime,
		rec.OvertimeHours, rec.SickLeaveHours, rec.VacationHours,
		rec.HolidayHours, rec.OtherHours)
	return err
}

func (r *timeRecordRepository) queryRecords(ctx context.Context, query string, args []interface{}) ([]domain.RawTimeRecord, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.RawTimeRecord
	for rows.Next() {
		var (
			rec                             domain.RawTimeRecord
			entry, exit                     sql.NullString
			overtime, sick, vac, hol, other sql.NullFloat64
		)
		if err := rows.Scan(&rec.ID, &rec.Date, &rec.EmployeeID, &entry, &exit,
			&overtime, &sick, &vac, &hol, &other); err != nil {
			return nil, err
		}
		rec.EntryTime = nullStr(entry)
		rec.ExitTime = nullStr(exit)
		rec.OvertimeHours = nullFloat(overtime)
		rec.SickLeaveHours = nullFloat(sick)
		rec.VacationHours = nullFloat(vac)
		rec.HolidayHours = nullFloat(hol)
		rec.OtherHours = nullFloat(other)
		records = append(records, rec)
	}
	return records, rows.Err()
}

func nullStr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	return &v.String
}

func nullFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	return &v.Float64
}
