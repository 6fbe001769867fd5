// Package sqlite provides the SQLite-backed implementation of the
// storage.Storage interface using Go's standard database/sql package.
//
// SQLite keeps everything in a single file on disk — no network, no server
// process, nothing to install beyond the driver. The blank import below
// registers the sqlite3 driver with database/sql; without it the
// sql.Open("sqlite3", ...) call would fail with "unknown driver".
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"records-api/internal/config"
	"records-api/internal/storage"
	"records-api/internal/types"

	_ "github.com/mattn/go-sqlite3"
)

// SQLite is the concrete implementation of storage.Storage. It holds a
// *sql.DB, which is a connection pool managed by database/sql and safe for
// concurrent use by multiple goroutines.
type SQLite struct {
	Db *sql.DB
}

// New opens the SQLite database at cfg.StoragePath, creates all tables if
// they do not already exist, and returns a ready-to-use *SQLite.
func New(cfg *config.Config) (*SQLite, error) {
	// sql.Open validates the driver name and DSN but does not connect;
	// the first real connection happens on the first query.
	db, err := sql.Open("sqlite3", cfg.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("sqlite.New: open db: %w", err)
	}

	// CREATE TABLE IF NOT EXISTS is idempotent — safe on every startup.
	schemas := []string{
		`CREATE TABLE IF NOT EXISTS employees (
			id     INTEGER PRIMARY KEY AUTOINCREMENT,
			name   TEXT    NOT NULL,
			age    INTEGER NOT NULL,
			salary INTEGER NOT NULL DEFAULT 10000
		)`,
		`CREATE TABLE IF NOT EXISTS notes (
			id         INTEGER  PRIMARY KEY AUTOINCREMENT,
			title      TEXT     NOT NULL,
			completed  INTEGER  NOT NULL DEFAULT 0,
			created_at DATETIME NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS employee_contacts (
			id    INTEGER PRIMARY KEY AUTOINCREMENT,
			name  TEXT NOT NULL,
			phone TEXT NOT NULL,
			city  TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS students (
			id   INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT    NOT NULL,
			roll INTEGER NOT NULL,
			city TEXT    NOT NULL
		)`,
	}
	for _, schema := range schemas {
		if _, err := db.Exec(schema); err != nil {
			return nil, fmt.Errorf("sqlite.New: create table: %w", err)
		}
	}

	return &SQLite{Db: db}, nil
}

// ── Employees ────────────────────────────────────────────────────────────────

// CreateEmployee inserts a new row into the employees table.
//
// Prepared statements use ? placeholders so the driver sends query and
// values separately — the values are never interpreted as SQL syntax.
func (s *SQLite) CreateEmployee(name string, age int, salary int) (int64, error) {
	stmt, err := s.Db.Prepare(
		"INSERT INTO employees (name, age, salary) VALUES (?, ?, ?)",
	)
	if err != nil {
		return 0, fmt.Errorf("CreateEmployee: prepare: %w", err)
	}
	defer stmt.Close()

	result, err := stmt.Exec(name, age, salary)
	if err != nil {
		return 0, fmt.Errorf("CreateEmployee: exec: %w", err)
	}

	// LastInsertId returns the auto-generated primary key.
	lastID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("CreateEmployee: last insert id: %w", err)
	}

	return lastID, nil
}

// GetEmployeeByID fetches exactly one employee row matched by primary key.
func (s *SQLite) GetEmployeeByID(id int64) (types.Employee, error) {
	stmt, err := s.Db.Prepare(
		"SELECT id, name, age, salary FROM employees WHERE id = ? LIMIT 1",
	)
	if err != nil {
		return types.Employee{}, fmt.Errorf("GetEmployeeByID: prepare: %w", err)
	}
	defer stmt.Close()

	var emp types.Employee
	err = stmt.QueryRow(id).Scan(&emp.ID, &emp.Name, &emp.Age, &emp.Salary)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Employee{}, fmt.Errorf(
				"no employee found with id %d: %w", id, storage.ErrNotFound)
		}
		return types.Employee{}, fmt.Errorf("GetEmployeeByID: scan: %w", err)
	}

	return emp, nil
}

// GetEmployees returns all employee rows ordered by primary key.
func (s *SQLite) GetEmployees() ([]types.Employee, error) {
	rows, err := s.Db.Query(
		"SELECT id, name, age, salary FROM employees ORDER BY id",
	)
	if err != nil {
		return nil, fmt.Errorf("GetEmployees: query: %w", err)
	}
	defer rows.Close()

	// Pre-allocate an empty (non-nil) slice so an empty table encodes to
	// [] instead of null.
	employees := make([]types.Employee, 0)
	for rows.Next() {
		var emp types.Employee
		if err := rows.Scan(&emp.ID, &emp.Name, &emp.Age, &emp.Salary); err != nil {
			return nil, fmt.Errorf("GetEmployees: scan row: %w", err)
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("GetEmployees: rows iteration: %w", err)
	}

	return employees, nil
}

// UpdateEmployeeByID replaces all mutable fields of an employee.
// The row must exist; absence surfaces as ErrNotFound, never as a silent
// zero-row update.
func (s *SQLite) UpdateEmployeeByID(id int64, name string, age int, salary int) (types.Employee, error) {
	// Resolve the ID first so an unknown ID reports not-found rather
	// than succeeding with zero affected rows.
	if _, err := s.GetEmployeeByID(id); err != nil {
		return types.Employee{}, err
	}

	stmt, err := s.Db.Prepare(
		"UPDATE employees SET name = ?, age = ?, salary = ? WHERE id = ?",
	)
	if err != nil {
		return types.Employee{}, fmt.Errorf("UpdateEmployeeByID: prepare: %w", err)
	}
	defer stmt.Close()

	if _, err := stmt.Exec(name, age, salary, id); err != nil {
		return types.Employee{}, fmt.Errorf("UpdateEmployeeByID: exec: %w", err)
	}

	// Re-fetch so the caller gets exactly what is stored.
	return s.GetEmployeeByID(id)
}

// PatchEmployeeByID copies only the supplied fields onto the stored record,
// then writes the merged row back.
func (s *SQLite) PatchEmployeeByID(id int64, patch types.EmployeePatch) (types.Employee, error) {
	emp, err := s.GetEmployeeByID(id)
	if err != nil {
		return types.Employee{}, err
	}

	if patch.Name != nil {
		emp.Name = *patch.Name
	}
	if patch.Age != nil {
		emp.Age = *patch.Age
	}
	if patch.Salary != nil {
		emp.Salary = *patch.Salary
	}

	return s.UpdateEmployeeByID(id, emp.Name, emp.Age, emp.Salary)
}

// DeleteEmployeeByID removes an employee row by primary key.
func (s *SQLite) DeleteEmployeeByID(id int64) error {
	stmt, err := s.Db.Prepare("DELETE FROM employees WHERE id = ?")
	if err != nil {
		return fmt.Errorf("DeleteEmployeeByID: prepare: %w", err)
	}
	defer stmt.Close()

	result, err := stmt.Exec(id)
	if err != nil {
		return fmt.Errorf("DeleteEmployeeByID: exec: %w", err)
	}

	// RowsAffected distinguishes "deleted" from "nothing matched".
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("DeleteEmployeeByID: rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("no employee found with id %d: %w", id, storage.ErrNotFound)
	}

	return nil
}

// ── Notes ────────────────────────────────────────────────────────────────────

// CreateNote inserts a new note row, stamping created_at with the current
// UTC time.
func (s *SQLite) CreateNote(title string, completed bool) (types.Note, error) {
	stmt, err := s.Db.Prepare(
		"INSERT INTO notes (title, completed, created_at) VALUES (?, ?, ?)",
	)
	if err != nil {
		return types.Note{}, fmt.Errorf("CreateNote: prepare: %w", err)
	}
	defer stmt.Close()

	createdAt := time.Now().UTC()
	result, err := stmt.Exec(title, completed, createdAt)
	if err != nil {
		return types.Note{}, fmt.Errorf("CreateNote: exec: %w", err)
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return types.Note{}, fmt.Errorf("CreateNote: last insert id: %w", err)
	}

	return types.Note{
		ID:        lastID,
		Title:     title,
		Completed: completed,
		CreatedAt: createdAt,
	}, nil
}

// GetNoteByID fetches exactly one note row matched by primary key.
func (s *SQLite) GetNoteByID(id int64) (types.Note, error) {
	stmt, err := s.Db.Prepare(
		"SELECT id, title, completed, created_at FROM notes WHERE id = ? LIMIT 1",
	)
	if err != nil {
		return types.Note{}, fmt.Errorf("GetNoteByID: prepare: %w", err)
	}
	defer stmt.Close()

	var note types.Note
	err = stmt.QueryRow(id).Scan(&note.ID, &note.Title, &note.Completed, &note.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Note{}, fmt.Errorf(
				"no note found with id %d: %w", id, storage.ErrNotFound)
		}
		return types.Note{}, fmt.Errorf("GetNoteByID: scan: %w", err)
	}

	return note, nil
}

// GetNotes returns all note rows ordered by primary key.
func (s *SQLite) GetNotes() ([]types.Note, error) {
	rows, err := s.Db.Query(
		"SELECT id, title, completed, created_at FROM notes ORDER BY id",
	)
	if err != nil {
		return nil, fmt.Errorf("GetNotes: query: %w", err)
	}
	defer rows.Close()

	notes := make([]types.Note, 0)
	for rows.Next() {
		var note types.Note
		if err := rows.Scan(&note.ID, &note.Title, &note.Completed, &note.CreatedAt); err != nil {
			return nil, fmt.Errorf("GetNotes: scan row: %w", err)
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("GetNotes: rows iteration: %w", err)
	}

	return notes, nil
}

// UpdateNoteByID replaces a note's title and completed flag. created_at is
// never touched by updates.
func (s *SQLite) UpdateNoteByID(id int64, title string, completed bool) (types.Note, error) {
	if _, err := s.GetNoteByID(id); err != nil {
		return types.Note{}, err
	}

	stmt, err := s.Db.Prepare(
		"UPDATE notes SET title = ?, completed = ? WHERE id = ?",
	)
	if err != nil {
		return types.Note{}, fmt.Errorf("UpdateNoteByID: prepare: %w", err)
	}
	defer stmt.Close()

	if _, err := stmt.Exec(title, completed, id); err != nil {
		return types.Note{}, fmt.Errorf("UpdateNoteByID: exec: %w", err)
	}

	return s.GetNoteByID(id)
}

// DeleteNoteByID removes a note row by primary key.
func (s *SQLite) DeleteNoteByID(id int64) error {
	stmt, err := s.Db.Prepare("DELETE FROM notes WHERE id = ?")
	if err != nil {
		return fmt.Errorf("DeleteNoteByID: prepare: %w", err)
	}
	defer stmt.Close()

	result, err := stmt.Exec(id)
	if err != nil {
		return fmt.Errorf("DeleteNoteByID: exec: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("DeleteNoteByID: rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("no note found with id %d: %w", id, storage.ErrNotFound)
	}

	return nil
}

// ── Employee contacts ────────────────────────────────────────────────────────

// CreateContact inserts a new row into the employee_contacts table.
func (s *SQLite) CreateContact(name string, phone string, city string) (int64, error) {
	stmt, err := s.Db.Prepare(
		"INSERT INTO employee_contacts (name, phone, city) VALUES (?, ?, ?)",
	)
	if err != nil {
		return 0, fmt.Errorf("CreateContact: prepare: %w", err)
	}
	defer stmt.Close()

	result, err := stmt.Exec(name, phone, city)
	if err != nil {
		return 0, fmt.Errorf("CreateContact: exec: %w", err)
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("CreateContact: last insert id: %w", err)
	}

	return lastID, nil
}

// GetContactByID fetches exactly one contact row matched by primary key.
func (s *SQLite) GetContactByID(id int64) (types.EmployeeContact, error) {
	stmt, err := s.Db.Prepare(
		"SELECT id, name, phone, city FROM employee_contacts WHERE id = ? LIMIT 1",
	)
	if err != nil {
		return types.EmployeeContact{}, fmt.Errorf("GetContactByID: prepare: %w", err)
	}
	defer stmt.Close()

	var contact types.EmployeeContact
	err = stmt.QueryRow(id).Scan(&contact.ID, &contact.Name, &contact.Phone, &contact.City)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.EmployeeContact{}, fmt.Errorf(
				"no employee contact found with id %d: %w", id, storage.ErrNotFound)
		}
		return types.EmployeeContact{}, fmt.Errorf("GetContactByID: scan: %w", err)
	}

	return contact, nil
}

// PatchContactByID copies only the supplied fields onto the stored contact,
// then writes the merged row back.
func (s *SQLite) PatchContactByID(id int64, update types.ContactUpdate) (types.EmployeeContact, error) {
	contact, err := s.GetContactByID(id)
	if err != nil {
		return types.EmployeeContact{}, err
	}

	if update.Name != nil {
		contact.Name = *update.Name
	}
	if update.Phone != nil {
		contact.Phone = *update.Phone
	}
	if update.City != nil {
		contact.City = *update.City
	}

	stmt, err := s.Db.Prepare(
		"UPDATE employee_contacts SET name = ?, phone = ?, city = ? WHERE id = ?",
	)
	if err != nil {
		return types.EmployeeContact{}, fmt.Errorf("PatchContactByID: prepare: %w", err)
	}
	defer stmt.Close()

	if _, err := stmt.Exec(contact.Name, contact.Phone, contact.City, id); err != nil {
		return types.EmployeeContact{}, fmt.Errorf("PatchContactByID: exec: %w", err)
	}

	return contact, nil
}

// ── Students ─────────────────────────────────────────────────────────────────

// CreateStudent inserts a new row into the students table.
func (s *SQLite) CreateStudent(name string, roll int, city string) (int64, error) {
	stmt, err := s.Db.Prepare(
		"INSERT INTO students (name, roll, city) VALUES (?, ?, ?)",
	)
	if err != nil {
		return 0, fmt.Errorf("CreateStudent: prepare: %w", err)
	}
	defer stmt.Close()

	result, err := stmt.Exec(name, roll, city)
	if err != nil {
		return 0, fmt.Errorf("CreateStudent: exec: %w", err)
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("CreateStudent: last insert id: %w", err)
	}

	return lastID, nil
}
