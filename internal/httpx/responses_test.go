package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONSuccess(t *testing.T) {
	w := httptest.NewRecorder()

	JSONSuccess(w, http.StatusCreated, "Livro adicionado com sucesso!", map[string]int{"code": 7})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, "Livro adicionado com sucesso!", body["message"])
	assert.Equal(t, map[string]any{"code": float64(7)}, body["objeto"])
}

func TestJSONSuccess_WithoutObjeto(t *testing.T) {
	w := httptest.NewRecorder()

	JSONSuccess(w, http.StatusOK, "ok", nil)

	var body map[string]any
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	_, present := body["objeto"]
	assert.False(t, present, "objeto must be omitted when nil")
}

func TestJSONError(t *testing.T) {
	w := httptest.NewRecorder()

	JSONError(w, http.StatusNotFound, "Livro com código 9 não encontrado")

	assert.Equal(t, http.StatusNotFound, w.Code)

	var body Envelope
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, StatusError, body.Status)
	assert.Equal(t, "Livro com código 9 não encontrado", body.Message)
	assert.Nil(t, body.Objeto)
}

func TestJSON_BareArray(t *testing.T) {
	w := httptest.NewRecorder()

	JSON(w, http.StatusOK, []int{})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}
