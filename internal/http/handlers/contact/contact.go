// Package contact contains the handler for the id-in-body update variant:
// the record to update is identified by an "id" field inside the JSON
// payload rather than by a URL path segment.
package contact

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"records-api/internal/storage"
	"records-api/internal/types"
	"records-api/internal/utils/response"
)

// Update handles PUT /api/contacts.
//
// Request body (JSON) — id plus any subset of the mutable fields:
//
//	{ "id": 5, "phone": "555-0100" }
//
// Fields absent from the body keep their stored values.
//
// Responses:
//
//	200 — { "data": {...updated record...}, "msg": "data updated successfully" }
//	400 — missing id, empty/malformed body
//	404 — no contact with that id
//	405 — any verb other than PUT
//	500 — unexpected failure; the error text is passed through in the body
func Update(st storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			response.WriteJSON(w, http.StatusMethodNotAllowed,
				response.Message{Msg: "method not allowed: use PUT"})
			return
		}

		slog.Info("updating an employee contact")

		var update types.ContactUpdate
		err := json.NewDecoder(r.Body).Decode(&update)
		if errors.Is(err, io.EOF) {
			response.WriteJSON(w, http.StatusBadRequest,
				response.Message{Msg: "request body is empty"})
			return
		}
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest,
				response.Message{Error: err.Error(), Msg: "update unsuccessful"})
			return
		}

		// The id lives in the body here, so its absence is a client
		// error in its own right, reported before any lookup.
		if update.ID == nil {
			response.WriteJSON(w, http.StatusBadRequest,
				response.Message{Msg: "id is required for update"})
			return
		}

		contact, err := st.PatchContactByID(*update.ID, update)
		if errors.Is(err, storage.ErrNotFound) {
			response.WriteJSON(w, http.StatusNotFound,
				response.Message{Msg: err.Error()})
			return
		}
		if err != nil {
			slog.Error("error updating contact",
				slog.Int64("id", *update.ID),
				slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError,
				response.Message{Error: err.Error(), Msg: "something went wrong"})
			return
		}

		slog.Info("contact updated", slog.Int64("id", contact.ID))
		response.WriteJSON(w, http.StatusOK,
			response.Message{Data: contact, Msg: "data updated successfully"})
	}
}
