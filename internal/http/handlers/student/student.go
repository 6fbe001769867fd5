// Package student contains the deserialization endpoint for the Student
// resource: a single handler that manually branches on the HTTP method,
// accepts a JSON payload on POST, and rejects everything else with a JSON
// 405 message.
package student

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"records-api/internal/storage"
	"records-api/internal/types"
	"records-api/internal/utils/response"
)

// Create handles /api/students.
//
// POST request body (JSON):
//
//	{ "name": "John Doe", "roll": 123, "city": "New York" }
//
// Success response (200 OK):
//
//	{ "data": { "id": 1 }, "msg": "data inserted successfully" }
//
// Error responses:
//
//	400 — empty body, malformed JSON, or failed validation
//	405 — any method other than POST
//	500 — database error
func Create(st storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			response.WriteJSON(w, http.StatusMethodNotAllowed,
				response.Message{Msg: "only POST allowed"})
			return
		}

		slog.Info("creating a student")

		var input types.StudentInput
		err := json.NewDecoder(r.Body).Decode(&input)
		if errors.Is(err, io.EOF) {
			response.WriteJSON(w, http.StatusBadRequest,
				response.Message{Msg: "request body is empty"})
			return
		}
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest,
				response.Message{Error: err.Error(), Msg: "data insertion unsuccessful"})
			return
		}

		if err := validator.New().Struct(input); err != nil {
			validateErrs := err.(validator.ValidationErrors)
			response.WriteJSON(w, http.StatusBadRequest, response.Message{
				Error: response.ValidationErrorText(validateErrs),
				Msg:   "data insertion unsuccessful",
			})
			return
		}

		lastID, err := st.CreateStudent(input.Name, input.Roll, input.City)
		if err != nil {
			slog.Error("error creating student", slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError,
				response.Message{Error: err.Error(), Msg: "something went wrong"})
			return
		}

		slog.Info("student created", slog.Int64("id", lastID))
		response.WriteJSON(w, http.StatusOK, response.Message{
			Data: map[string]int64{"id": lastID},
			Msg:  "data inserted successfully",
		})
	}
}
