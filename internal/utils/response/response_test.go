package response_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"records-api/internal/utils/response"
)

func TestWriteJSONSetsHeaderStatusAndBody(t *testing.T) {
	rec := httptest.NewRecorder()

	err := response.WriteJSON(rec, http.StatusTeapot, map[string]string{"k": "v"})
	require.NoError(t, err)

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"k":"v"}`, rec.Body.String())
}

func TestGeneralError(t *testing.T) {
	resp := response.GeneralError(errors.New("boom"))

	assert.Equal(t, response.StatusError, resp.Status)
	assert.Equal(t, "boom", resp.Error)
}

func TestValidationErrorListsEveryMissingField(t *testing.T) {
	type payload struct {
		Name string `validate:"required"`
		Age  int    `validate:"required"`
	}

	err := validator.New().Struct(payload{})
	require.Error(t, err)

	resp := response.ValidationError(err.(validator.ValidationErrors))
	assert.Equal(t, response.StatusError, resp.Status)
	assert.Contains(t, resp.Error, "field Name is required")
	assert.Contains(t, resp.Error, "field Age is required")
}

func TestMessageOmitsEmptyDataAndError(t *testing.T) {
	rec := httptest.NewRecorder()

	err := response.WriteJSON(rec, http.StatusOK, response.Message{Msg: "done"})
	require.NoError(t, err)

	assert.JSONEq(t, `{"msg":"done"}`, rec.Body.String())
}
