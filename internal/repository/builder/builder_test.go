package builder

import "testing"

func TestSQLBuilder(t *testing.T) {
	t.Run("Select", func(t *testing.T) {
		b := NewSQLBuilder()
		query, args := b.Select("employee_id", "employee_name").
			From("employees").
			Where("employee_id = ?", "1001").
			Build()
		expected := "SELECT employee_id, employee_name FROM employees WHERE employee_id = $1"
		if query != expected {
			t.Errorf("expected %s, got %s", expected, query)
		}
		if len(args) != 1 || args[0] != "1001" {
			t.Errorf("expected args [1001], got %v", args)
		}
	})

	t.Run("Select with join, order, limit and offset", func(t *testing.T) {
		b := NewSQLBuilder()
		query, _ := b.Select("e.employee_id", "g.gender_name").
			From("employees e").
			Join("INNER", "genders g", "e.gender_id = g.gender_id").
			Where("e.department_id = ?", 2).
			OrderBy("e.employee_id ASC").
			Limit(10).
			Offset(20).
			Build()
		expected := "SELECT e.employee_id, g.gender_name FROM employees e " +
			"INNER JOIN genders g ON e.gender_id = g.gender_id " +
			"WHERE e.department_id = $1 ORDER BY e.employee_id ASC LIMIT 10 OFFSET 20"
		if query != expected {
			t.Errorf("expected %s, got %s", expected, query)
		}
	})

	t.Run("Insert", func(t *testing.T) {
		b := NewSQLBuilder()
		query, args := b.Insert("departments", "department_name").
			Values("Kitchen").
			Build()
		expected := "INSERT INTO departments (department_name) VALUES ($1)"
		if query != expected {
			t.Errorf("expected %s, got %s", expected, query)
		}
		if len(args) != 1 || args[0] != "Kitchen" {
			t.Errorf("expected args [Kitchen], got %v", args)
		}
	})

	t.Run("Update numbers SET before WHERE", func(t *testing.T) {
		b := NewSQLBuilder()
		query, args := b.Update("employees").
			Set("employee_name", "Isaac").
			Set("rate", 18.0).
			Where("employee_id = ?", "1001").
			Build()
		expected := "UPDATE employees SET employee_name = $1, rate = $2 WHERE employee_id = $3"
		if query != expected {
			t.Errorf("expected %s, got %s", expected, query)
		}
		if len(args) != 3 || args[2] != "1001" {
			t.Errorf("expected 3 args ending in 1001, got %v", args)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		b := NewSQLBuilder()
		query, args := b.Delete("time_records").
			Where("date = ?", "2024-06-03").
			Where("employee_id = ?", "1001").
			Build()
		expected := "DELETE FROM time_records WHERE date = $1 AND employee_id = $2"
		if query != expected {
			t.Errorf("expected %s, got %s", expected, query)
		}
		if len(args) != 2 {
			t.Errorf("expected 2 args, got %v", args)
		}
	})
}
