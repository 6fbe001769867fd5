package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"records-api/internal/config"
	"records-api/internal/storage"
	"records-api/internal/types"
)

func newTestDB(t *testing.T) *SQLite {
	t.Helper()

	cfg := &config.Config{
		Env:         "dev",
		StoragePath: filepath.Join(t.TempDir(), "test.db"),
	}

	db, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { db.Db.Close() })

	return db
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func TestEmployeeCreateAndGet(t *testing.T) {
	db := newTestDB(t)

	id, err := db.CreateEmployee("Ann", 30, 50000)
	require.NoError(t, err)
	require.Greater(t, id, int64(0))

	emp, err := db.GetEmployeeByID(id)
	require.NoError(t, err)
	assert.Equal(t, types.Employee{ID: id, Name: "Ann", Age: 30, Salary: 50000}, emp)
}

func TestEmployeeListOrderedAndEmpty(t *testing.T) {
	db := newTestDB(t)

	employees, err := db.GetEmployees()
	require.NoError(t, err)
	assert.NotNil(t, employees)
	assert.Empty(t, employees)

	id1, err := db.CreateEmployee("Ann", 30, 50000)
	require.NoError(t, err)
	id2, err := db.CreateEmployee("Bob", 40, 60000)
	require.NoError(t, err)

	employees, err = db.GetEmployees()
	require.NoError(t, err)
	require.Len(t, employees, 2)
	assert.Equal(t, id1, employees[0].ID)
	assert.Equal(t, id2, employees[1].ID)
}

func TestEmployeeUpdateReplacesAllFields(t *testing.T) {
	db := newTestDB(t)

	id, err := db.CreateEmployee("Ann", 30, 50000)
	require.NoError(t, err)

	updated, err := db.UpdateEmployeeByID(id, "Ann Updated", 31, 60000)
	require.NoError(t, err)
	assert.Equal(t, types.Employee{ID: id, Name: "Ann Updated", Age: 31, Salary: 60000}, updated)
}

func TestEmployeePatchLeavesOtherFieldsUnchanged(t *testing.T) {
	db := newTestDB(t)

	id, err := db.CreateEmployee("Ann", 30, 50000)
	require.NoError(t, err)

	updated, err := db.PatchEmployeeByID(id, types.EmployeePatch{Salary: intPtr(70000)})
	require.NoError(t, err)
	assert.Equal(t, "Ann", updated.Name)
	assert.Equal(t, 30, updated.Age)
	assert.Equal(t, 70000, updated.Salary)

	// Round-trip: the store agrees with what the patch returned.
	stored, err := db.GetEmployeeByID(id)
	require.NoError(t, err)
	assert.Equal(t, updated, stored)
}

func TestEmployeeDeleteThenGetNotFound(t *testing.T) {
	db := newTestDB(t)

	id, err := db.CreateEmployee("Ann", 30, 50000)
	require.NoError(t, err)

	require.NoError(t, db.DeleteEmployeeByID(id))

	_, err = db.GetEmployeeByID(id)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestEmployeeUnknownIDIsNotFoundNotServerError(t *testing.T) {
	db := newTestDB(t)

	_, err := db.GetEmployeeByID(999)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	_, err = db.UpdateEmployeeByID(999, "Nobody", 1, 1)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	_, err = db.PatchEmployeeByID(999, types.EmployeePatch{Name: strPtr("Nobody")})
	assert.ErrorIs(t, err, storage.ErrNotFound)

	err = db.DeleteEmployeeByID(999)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestNoteCreateAssignsTimestamp(t *testing.T) {
	db := newTestDB(t)

	note, err := db.CreateNote("buy milk", false)
	require.NoError(t, err)
	assert.Greater(t, note.ID, int64(0))
	assert.False(t, note.CreatedAt.IsZero())

	stored, err := db.GetNoteByID(note.ID)
	require.NoError(t, err)
	assert.Equal(t, note.Title, stored.Title)
	assert.Equal(t, note.Completed, stored.Completed)
	assert.True(t, note.CreatedAt.Equal(stored.CreatedAt))
}

func TestNoteUpdatePreservesCreatedAt(t *testing.T) {
	db := newTestDB(t)

	note, err := db.CreateNote("buy milk", false)
	require.NoError(t, err)

	updated, err := db.UpdateNoteByID(note.ID, "buy milk and eggs", true)
	require.NoError(t, err)
	assert.Equal(t, "buy milk and eggs", updated.Title)
	assert.True(t, updated.Completed)
	assert.True(t, note.CreatedAt.Equal(updated.CreatedAt))
}

func TestNoteDeleteAndNotFound(t *testing.T) {
	db := newTestDB(t)

	note, err := db.CreateNote("buy milk", false)
	require.NoError(t, err)

	require.NoError(t, db.DeleteNoteByID(note.ID))
	assert.ErrorIs(t, db.DeleteNoteByID(note.ID), storage.ErrNotFound)

	_, err = db.GetNoteByID(note.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestContactPatchPartialSemantics(t *testing.T) {
	db := newTestDB(t)

	id, err := db.CreateContact("John", "555-0100", "New York")
	require.NoError(t, err)

	updated, err := db.PatchContactByID(id, types.ContactUpdate{
		Phone: strPtr("555-0199"),
	})
	require.NoError(t, err)
	assert.Equal(t, "John", updated.Name)
	assert.Equal(t, "555-0199", updated.Phone)
	assert.Equal(t, "New York", updated.City)

	stored, err := db.GetContactByID(id)
	require.NoError(t, err)
	assert.Equal(t, updated, stored)
}

func TestContactPatchUnknownID(t *testing.T) {
	db := newTestDB(t)

	_, err := db.PatchContactByID(42, types.ContactUpdate{Name: strPtr("Nobody")})
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestStudentCreate(t *testing.T) {
	db := newTestDB(t)

	id, err := db.CreateStudent("John Doe", 123, "New York")
	require.NoError(t, err)
	assert.Greater(t, id, int64(0))
}
