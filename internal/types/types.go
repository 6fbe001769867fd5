// Package types holds the shared data structures (records and request
// payloads) used across the application. Keeping them in one place prevents
// import cycles — handlers, storage, and utils can all import types without
// depending on each other.
package types

import "time"

// Employee is a persisted employee record.
//
// Struct tags serve two purposes:
//
//  1. json:"..."  — controls the field name in the encoded JSON body
//     (lowercase names match REST API conventions).
//
//  2. validate:"..." — rules checked by the go-playground/validator
//     package. "required" means the field must be non-zero / non-empty.
type Employee struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Age    int    `json:"age"`
	Salary int    `json:"salary"`
}

// DefaultSalary is persisted when a create payload omits the salary field.
const DefaultSalary = 10000

// EmployeeInput is the payload accepted by create (POST) and full-update
// (PUT) operations. Salary is a pointer so "absent" can be told apart from
// an explicit 0 — absent means DefaultSalary.
type EmployeeInput struct {
	Name   string `json:"name" validate:"required"`
	Age    int    `json:"age"  validate:"required"`
	Salary *int   `json:"salary"`
}

// EmployeePatch is the payload for partial updates (PATCH). Every field is
// a pointer: nil means "leave the stored value unchanged".
type EmployeePatch struct {
	Name   *string `json:"name"`
	Age    *int    `json:"age"`
	Salary *int    `json:"salary"`
}

// Note is a persisted note record. CreatedAt is assigned by the store at
// insert time and never changes afterwards.
type Note struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
}

// NoteInput is the payload accepted by note create and full-update
// operations. Completed defaults to false when absent.
type NoteInput struct {
	Title     string `json:"title" validate:"required"`
	Completed *bool  `json:"completed"`
}

// EmployeeContact is a persisted contact record — a separate table from
// employees, reachable only through the id-in-body update endpoint.
type EmployeeContact struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	City  string `json:"city"`
}

// ContactUpdate is the id-in-body update payload. The identifying key
// travels inside the JSON body rather than the URL path; the remaining
// fields are pointers with partial-update semantics.
type ContactUpdate struct {
	ID    *int64  `json:"id"`
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
	City  *string `json:"city"`
}

// Student is the record consumed by the deserialization endpoint.
type Student struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Roll int    `json:"roll"`
	City string `json:"city"`
}

// StudentInput is the POST payload for the deserialization endpoint.
type StudentInput struct {
	Name string `json:"name" validate:"required"`
	Roll int    `json:"roll" validate:"required"`
	City string `json:"city" validate:"required"`
}
