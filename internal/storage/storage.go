// Package storage defines the Storage interface — a contract that any
// database backend must satisfy to work with this application.
//
// Handlers (the HTTP layer) should not know or care which database they are
// talking to. By depending only on this interface, switching databases means
// implementing it for the new backend and changing one line in main.go, and
// tests can pass an in-memory fake instead of a real database.
package storage

import (
	"errors"

	"records-api/internal/types"
)

// ErrNotFound is returned (wrapped) by every lookup, update, or delete that
// targets an ID with no matching record. Handlers check for it with
// errors.Is and translate it to a 404 — absence is never reported as a
// generic server error.
var ErrNotFound = errors.New("record not found")

// Storage is the database contract. Any concrete type implementing all of
// these methods satisfies it implicitly.
type Storage interface {
	// CreateEmployee inserts a new employee row and returns the
	// auto-generated primary-key ID.
	CreateEmployee(name string, age int, salary int) (int64, error)

	// GetEmployeeByID fetches a single employee by primary key.
	// Wraps ErrNotFound when the ID does not exist.
	GetEmployeeByID(id int64) (types.Employee, error)

	// GetEmployees returns every employee, ordered by ID.
	// Returns an empty slice (not nil) when the table is empty.
	GetEmployees() ([]types.Employee, error)

	// UpdateEmployeeByID replaces all mutable fields of an existing
	// employee and returns the updated record.
	UpdateEmployeeByID(id int64, name string, age int, salary int) (types.Employee, error)

	// PatchEmployeeByID applies only the non-nil fields of the patch,
	// leaving everything else untouched, and returns the updated record.
	PatchEmployeeByID(id int64, patch types.EmployeePatch) (types.Employee, error)

	// DeleteEmployeeByID removes an employee row permanently.
	DeleteEmployeeByID(id int64) error

	// CreateNote inserts a new note row. The store assigns created_at;
	// the full record (ID and timestamp included) is returned.
	CreateNote(title string, completed bool) (types.Note, error)

	// GetNoteByID fetches a single note by primary key.
	GetNoteByID(id int64) (types.Note, error)

	// GetNotes returns every note, ordered by ID.
	GetNotes() ([]types.Note, error)

	// UpdateNoteByID replaces a note's title and completed flag.
	// created_at is preserved.
	UpdateNoteByID(id int64, title string, completed bool) (types.Note, error)

	// DeleteNoteByID removes a note row permanently.
	DeleteNoteByID(id int64) error

	// CreateContact inserts a new employee contact row and returns the
	// auto-generated primary-key ID.
	CreateContact(name string, phone string, city string) (int64, error)

	// GetContactByID fetches a single contact by primary key.
	GetContactByID(id int64) (types.EmployeeContact, error)

	// PatchContactByID applies only the non-nil fields of the update,
	// leaving everything else untouched, and returns the updated record.
	PatchContactByID(id int64, update types.ContactUpdate) (types.EmployeeContact, error)

	// CreateStudent inserts a new student row and returns the
	// auto-generated primary-key ID.
	CreateStudent(name string, roll int, city string) (int64, error)
}
