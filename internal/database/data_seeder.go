package database

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// DataSeeder creates the schema and fills it with demo HR data.
type DataSeeder struct {
	db *sql.DB
}

func NewDataSeeder(db *sql.DB) *DataSeeder {
	return &DataSeeder{db: db}
}

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS departments (
		department_id   SERIAL PRIMARY KEY,
		department_name TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS genders (
		gender_id   SERIAL PRIMARY KEY,
		gender_name TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS employees (
		employee_id     TEXT PRIMARY KEY,
		employee_name   TEXT NOT NULL,
		employee_code   TEXT NOT NULL DEFAULT '',
		gender_id       INT,
		department_id   INT,
		date_of_joining DATE,
		photo_file_name TEXT NOT NULL DEFAULT '',
		rate            DOUBLE PRECISION NOT NULL DEFAULT 0,
		overtime_rate   DOUBLE PRECISION NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS time_records (
		id               TEXT PRIMARY KEY,
		date             DATE NOT NULL,
		employee_id      TEXT NOT NULL,
		entry_time       TEXT,
		exit_time        TEXT,
		overtime_hours   DOUBLE PRECISION,
		sick_leave_hours DOUBLE PRECISION,
		vacation_hours   DOUBLE PRECISION,
		holiday_hours    DOUBLE PRECISION,
		other_hours      DOUBLE PRECISION,
		UNIQUE (date, employee_id)
	)`,
}

var (
	departmentNames = []string{"Kitchen", "Front of House", "Bar", "Administration"}
	genderNames     = []string{"Male", "Female", "Other"}
	employeeNames   = []string{
		"Maria Lopez", "Ivan Petrov", "Sofia Ramirez", "Daniel Kim",
		"Amara Diallo", "Lucas Moreau", "Elena Vasquez", "Tomas Silva",
	}
	entryClocks = []string{"06:00", "08:00", "10:00", "22:00"}
	exitClocks  = []string{"14:00", "17:00", "18:30", "06:00"}
)

// EnsureSchema creates any missing tables.
func (ds *DataSeeder) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := ds.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}

// SeedData inserts the reference lists, a staff roster, and numWeeks weeks of
// time records ending at the current week.
func (ds *DataSeeder) SeedData(ctx context.Context, numEmployees, numWeeks int) error {
	start := time.Now()
	fmt.Println("Seeding HR data...")

	if err := ds.EnsureSchema(ctx); err != nil {
		return err
	}

	if numEmployees > len(employeeNames) {
		numEmployees = len(employeeNames)
	}

	tx, err := ds.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, name := range departmentNames {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO departments (department_name) VALUES ($1)`, name); err != nil {
			return fmt.Errorf("insert department: %w", err)
		}
	}
	fmt.Printf("Created %d departments\n", len(departmentNames))

	for _, name := range genderNames {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO genders (gender_name) VALUES ($1)`, name); err != nil {
			return fmt.Errorf("insert gender: %w", err)
		}
	}
	fmt.Printf("Created %d genders\n", len(genderNames))

	employeeIDs := make([]string, 0, numEmployees)
	for i := 0; i < numEmployees; i++ {
		id := fmt.Sprintf("e-%03d", i+1)
		employeeIDs = append(employeeIDs, id)
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO employees
				(employee_id, employee_name, employee_code, gender_id, department_id,
				 date_of_joining, photo_file_name, rate, overtime_rate)
			 VALUES ($1, $2, $3, $4, $5, $6, '', $7, $8)
			 ON CONFLICT (employee_id) DO NOTHING`,
			id,
			employeeNames[i],
			fmt.Sprintf("TC-%03d", i+1),
			rand.Intn(len(genderNames))+1,
			rand.Intn(len(departmentNames))+1,
			time.Now().AddDate(0, -rand.Intn(36), 0),
			float64(15+rand.Intn(10)),
			float64(22+rand.Intn(12)),
		); err != nil {
			return fmt.Errorf("insert employee: %w", err)
		}
	}
	fmt.Printf("Created %d employees\n", len(employeeIDs))

	records := 0
	weekStart := mondayOf(time.Now()).AddDate(0, 0, -7*(numWeeks-1))
	for day := 0; day < 7*numWeeks; day++ {
		date := weekStart.AddDate(0, 0, day).Format("2006-01-02")
		for _, empID := range employeeIDs {
			// Roughly one day off per week per employee.
			if rand.Intn(7) == 0 {
				continue
			}
			shift := rand.Intn(len(entryClocks))
			var overtime *float64
			if rand.Intn(4) == 0 {
				v := float64(rand.Intn(3) + 1)
				overtime = &v
			}
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO time_records
					(id, date, employee_id, entry_time, exit_time, overtime_hours)
				 VALUES ($1, $2, $3, $4, $5, $6)
				 ON CONFLICT (date, employee_id) DO NOTHING`,
				uuid.NewString(), date, empID, entryClocks[shift], exitClocks[shift], overtime,
			); err != nil {
				return fmt.Errorf("insert time record: %w", err)
			}
			records++
		}
	}
	fmt.Printf("Created %d time records across %d weeks\n", records, numWeeks)

	if err := tx.Commit(); err != nil {
		return err
	}

	fmt.Printf("Done in %v\n", time.Since(start))
	return nil
}

// ClearData deletes all seeded rows, children first.
func (ds *DataSeeder) ClearData(ctx context.Context) error {
	fmt.Println("Clearing data...")

	for _, table := range []string{"time_records", "employees", "genders", "departments"} {
		if _, err := ds.db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	fmt.Println("Cleared all tables")
	return nil
}

func mondayOf(t time.Time) time.Time {
	t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	offset := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -offset)
}
