// Package note contains the function-based handler for the Notes resource:
// a single entry point registered for both /api/notes and /api/notes/{id},
// branching on the HTTP verb instead of one route per method.
package note

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

// Api returns the multi-verb notes handler.
//
// Verb contracts (every response except DELETE's uses the {data,msg}
// envelope):
//
//	GET    with id    → 200 one note        | 404
//	GET    without id → 200 list of notes
//	POST              → 200 created note    | 400 field errors
//	PUT    with id    → 202 updated note    | 400/404 (full update: title required)
//	DELETE with id    → 204 empty           | 404
//	PUT/DELETE without id → 400
//	anything else     → 405
//
// The id is resolved the same way for every verb: the {id} path segment
// first, then the ?id= query parameter.
func Api(st storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			get(w, r, st)
		case http.MethodPost:
			create(w, r, st)
		case http.MethodPut:
			update(w, r, st)
		case http.MethodDelete:
			remove(w, r, st)
		default:
			response.WriteJSON(w, http.StatusMethodNotAllowed,
				response.Message{Msg: "method not allowed"})
		}
	}
}

// resolveID extracts the note id from the path segment or, failing that,
// the id query parameter. ok reports whether an id was supplied at all;
// err reports a supplied but non-integer id.
func resolveID(r *http.Request) (id int64, ok bool, err error) {
	raw := r.PathValue("id")
	if raw == "" {
		raw = r.URL.Query().Get("id")
	}
	if raw == "" {
		return 0, false, nil
	}

	id, err = strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, true, errors.New("invalid id: must be an integer")
	}
	return id, true, nil
}

func get(w http.ResponseWriter, r *http.Request, st storage.Storage) {
	id, ok, err := resolveID(r)
	if err != nil {
		response.WriteJSON(w, http.StatusBadRequest, response.Message{Msg: err.Error()})
		return
	}

	// No id means the whole collection.
	if !ok {
		slog.Info("getting all notes")
		notes, err := st.GetNotes()
		if err != nil {
			slog.Error("error getting notes", slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError,
				response.Message{Error: err.Error(), Msg: "something went wrong"})
			return
		}
		response.WriteJSON(w, http.StatusOK,
			response.Message{Data: notes, Msg: "all notes retrieved"})
		return
	}

	slog.Info("getting a note", slog.Int64("id", id))
	note, err := st.GetNoteByID(id)
	if err != nil {
		writeNoteError(w, id, err)
		return
	}

	response.WriteJSON(w, http.StatusOK,
		response.Message{Data: note, Msg: "note retrieved"})
}

func create(w http.ResponseWriter, r *http.Request, st storage.Storage) {
	slog.Info("creating a note")

	input, ok := decodeInput(w, r)
	if !ok {
		return
	}

	completed := false
	if input.Completed != nil {
		completed = *input.Completed
	}

	note, err := st.CreateNote(input.Title, completed)
	if err != nil {
		slog.Error("error creating note", slog.String("error", err.Error()))
		response.WriteJSON(w, http.StatusInternalServerError,
			response.Message{Error: err.Error(), Msg: "something went wrong"})
		return
	}

	slog.Info("note created", slog.Int64("id", note.ID))
	response.WriteJSON(w, http.StatusOK,
		response.Message{Data: note, Msg: "data inserted successfully"})
}

func update(w http.ResponseWriter, r *http.Request, st storage.Storage) {
	id, ok, err := resolveID(r)
	if err != nil {
		response.WriteJSON(w, http.StatusBadRequest, response.Message{Msg: err.Error()})
		return
	}
	if !ok {
		response.WriteJSON(w, http.StatusBadRequest,
			response.Message{Msg: "id is required for update operation"})
		return
	}

	slog.Info("updating a note", slog.Int64("id", id))

	input, ok := decodeInput(w, r)
	if !ok {
		return
	}

	completed := false
	if input.Completed != nil {
		completed = *input.Completed
	}

	note, err := st.UpdateNoteByID(id, input.Title, completed)
	if err != nil {
		writeNoteError(w, id, err)
		return
	}

	slog.Info("note updated", slog.Int64("id", id))
	response.WriteJSON(w, http.StatusAccepted,
		response.Message{Data: note, Msg: "note updated successfully"})
}

func remove(w http.ResponseWriter, r *http.Request, st storage.Storage) {
	id, ok, err := resolveID(r)
	if err != nil {
		response.WriteJSON(w, http.StatusBadRequest, response.Message{Msg: err.Error()})
		return
	}
	if !ok {
		response.WriteJSON(w, http.StatusBadRequest,
			response.Message{Msg: "id is required for delete operation"})
		return
	}

	slog.Info("deleting a note", slog.Int64("id", id))

	if err := st.DeleteNoteByID(id); err != nil {
		writeNoteError(w, id, err)
		return
	}

	slog.Info("note deleted", slog.Int64("id", id))
	w.WriteHeader(http.StatusNoContent)
}

// decodeInput decodes and validates a NoteInput body. On failure it writes
// the 400 response itself and reports ok=false.
func decodeInput(w http.ResponseWriter, r *http.Request) (types.NoteInput, bool) {
	var input types.NoteInput

	err := json.NewDecoder(r.Body).Decode(&input)
	if errors.Is(err, io.EOF) {
		response.WriteJSON(w, http.StatusBadRequest,
			response.Message{Msg: "request body is empty"})
		return input, false
	}
	if err != nil {
		response.WriteJSON(w, http.StatusBadRequest,
			response.Message{Error: err.Error(), Msg: "data insertion unsuccessful"})
		return input, false
	}

	if err := validator.New().Struct(input); err != nil {
		validateErrs := err.(validator.ValidationErrors)
		response.WriteJSON(w, http.StatusBadRequest, response.Message{
			Error: response.ValidationErrorText(validateErrs),
			Msg:   "data insertion unsuccessful",
		})
		return input, false
	}

	return input, true
}

// writeNoteError maps a storage error to 404 for absence, 500 otherwise.
func writeNoteError(w http.ResponseWriter, id int64, err error) {
	if errors.Is(err, storage.ErrNotFound) {
		response.WriteJSON(w, http.StatusNotFound,
			response.Message{Msg: "note not found"})
		return
	}

	slog.Error("note storage error",
		slog.Int64("id", id),
		slog.String("error", err.Error()))
	response.WriteJSON(w, http.StatusInternalServerError,
		response.Message{Error: err.Error(), Msg: "something went wrong"})
}
