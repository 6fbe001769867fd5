// Package employee contains the HTTP handlers for the Employee resource.
//
// Handlers here are built with the closure / factory pattern: each exported
// function takes the Storage dependency and returns a func with the exact
// signature the router needs. The factory runs once at route registration;
// the returned handler runs on every request and reaches `storage` through
// the closure.
package employee

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"records-api/internal/storage"
	"records-api/internal/types"
	"records-api/internal/utils/response"
)

// New handles POST /api/employees.
//
// Request body (JSON):
//
//	{ "name": "Ann", "age": 30, "salary": 50000 }
//
// salary may be omitted; it then defaults to 10000.
//
// Success response (201 Created) — the stored record:
//
//	{ "id": 1, "name": "Ann", "age": 30, "salary": 50000 }
//
// Error responses:
//
//	400 Bad Request — empty body, malformed JSON, or failed validation
//	500 Internal    — database error
func New(st storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("creating an employee")

		var input types.EmployeeInput
		err := json.NewDecoder(r.Body).Decode(&input)
		if errors.Is(err, io.EOF) {
			response.WriteJSON(w, http.StatusBadRequest,
				response.GeneralError(errors.New("request body is empty")))
			return
		}
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		if err := validator.New().Struct(input); err != nil {
			validateErrs := err.(validator.ValidationErrors)
			response.WriteJSON(w, http.StatusBadRequest,
				response.ValidationError(validateErrs))
			return
		}

		salary := types.DefaultSalary
		if input.Salary != nil {
			salary = *input.Salary
		}

		lastID, err := st.CreateEmployee(input.Name, input.Age, salary)
		if err != nil {
			response.WriteJSON(w, http.StatusInternalServerError,
				response.GeneralError(err))
			return
		}

		slog.Info("employee created", slog.Int64("id", lastID))

		response.WriteJSON(w, http.StatusCreated, types.Employee{
			ID:     lastID,
			Name:   input.Name,
			Age:    input.Age,
			Salary: salary,
		})
	}
}

// GetList handles GET /api/employees.
// Returns a JSON array of all employees — an empty array [] (not null)
// when there are none.
func GetList(st storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("getting all employees")

		employees, err := st.GetEmployees()
		if err != nil {
			slog.Error("error getting employees", slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError,
				response.GeneralError(err))
			return
		}

		response.WriteJSON(w, http.StatusOK, employees)
	}
}

// GetByID handles GET /api/employees/{id}.
//
// Error responses:
//
//	400 Bad Request — id is not a valid integer
//	404 Not Found   — no employee with that id
//	500 Internal    — database error
func GetByID(st storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		slog.Info("getting an employee", slog.String("id", id))

		intID, err := strconv.ParseInt(id, 10, 64)
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest,
				response.GeneralError(errors.New("invalid id: must be an integer")))
			return
		}

		emp, err := st.GetEmployeeByID(intID)
		if err != nil {
			writeStorageError(w, id, "getting", err)
			return
		}

		response.WriteJSON(w, http.StatusOK, emp)
	}
}

// Update handles PUT /api/employees/{id} — a full replace. name and age are
// required; an omitted salary falls back to the default, matching create.
//
// Success response (200 OK) — the updated record.
func Update(st storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		slog.Info("updating an employee", slog.String("id", id))

		intID, err := strconv.ParseInt(id, 10, 64)
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest,
				response.GeneralError(errors.New("invalid id: must be an integer")))
			return
		}

		var input types.EmployeeInput
		err = json.NewDecoder(r.Body).Decode(&input)
		if errors.Is(err, io.EOF) {
			response.WriteJSON(w, http.StatusBadRequest,
				response.GeneralError(errors.New("request body is empty")))
			return
		}
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		if err := validator.New().Struct(input); err != nil {
			validateErrs := err.(validator.ValidationErrors)
			response.WriteJSON(w, http.StatusBadRequest,
				response.ValidationError(validateErrs))
			return
		}

		salary := types.DefaultSalary
		if input.Salary != nil {
			salary = *input.Salary
		}

		updated, err := st.UpdateEmployeeByID(intID, input.Name, input.Age, salary)
		if err != nil {
			writeStorageError(w, id, "updating", err)
			return
		}

		slog.Info("employee updated", slog.String("id", id))
		response.WriteJSON(w, http.StatusOK, updated)
	}
}

// Patch handles PATCH /api/employees/{id} — a partial update. Only the
// fields present in the body are changed; everything else keeps its stored
// value.
//
// Request body (JSON), any subset of:
//
//	{ "name": "...", "age": 31, "salary": 70000 }
//
// Success response (200 OK) — the updated record.
func Patch(st storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		slog.Info("patching an employee", slog.String("id", id))

		intID, err := strconv.ParseInt(id, 10, 64)
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest,
				response.GeneralError(errors.New("invalid id: must be an integer")))
			return
		}

		var patch types.EmployeePatch
		err = json.NewDecoder(r.Body).Decode(&patch)
		if errors.Is(err, io.EOF) {
			response.WriteJSON(w, http.StatusBadRequest,
				response.GeneralError(errors.New("request body is empty")))
			return
		}
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		updated, err := st.PatchEmployeeByID(intID, patch)
		if err != nil {
			writeStorageError(w, id, "patching", err)
			return
		}

		slog.Info("employee patched", slog.String("id", id))
		response.WriteJSON(w, http.StatusOK, updated)
	}
}

// Delete handles DELETE /api/employees/{id}.
// Returns 204 No Content with an empty body on success, 404 when the id
// does not exist.
func Delete(st storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		slog.Info("deleting an employee", slog.String("id", id))

		intID, err := strconv.ParseInt(id, 10, 64)
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest,
				response.GeneralError(errors.New("invalid id: must be an integer")))
			return
		}

		if err := st.DeleteEmployeeByID(intID); err != nil {
			writeStorageError(w, id, "deleting", err)
			return
		}

		slog.Info("employee deleted", slog.String("id", id))
		w.WriteHeader(http.StatusNoContent)
	}
}

// writeStorageError translates a storage error into the right status code:
// a wrapped storage.ErrNotFound becomes 404, anything else 500.
func writeStorageError(w http.ResponseWriter, id string, op string, err error) {
	if errors.Is(err, storage.ErrNotFound) {
		response.WriteJSON(w, http.StatusNotFound, response.GeneralError(err))
		return
	}

	slog.Error("error "+op+" employee",
		slog.String("id", id),
		slog.String("error", err.Error()))
	response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(err))
}
