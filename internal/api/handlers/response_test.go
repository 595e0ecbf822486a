package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON(t *testing.T) {
	var v struct {
		Name string `json:"name"`
	}

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"corte"}`))
	require.NoError(t, DecodeJSON(r, &v))
	assert.Equal(t, "corte", v.Name)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
	assert.ErrorIs(t, DecodeJSON(r, &v), ErrEmptyBody)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{"))
	assert.Error(t, DecodeJSON(r, &v))
}

func TestRespondError(t *testing.T) {
	w := httptest.NewRecorder()
	RespondConflict(w, "занято")

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"занято"}`, w.Body.String())
}

func TestFunctionEnvelope(t *testing.T) {
	w := httptest.NewRecorder()
	RespondFunctionSuccess(w, map[string]interface{}{"code": "CUPOM-ABCD1234"})

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "CUPOM-ABCD1234", body["code"])

	w = httptest.NewRecorder()
	RespondFunctionError(w, http.StatusBadRequest, "pontos insuficientes")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"success":false,"error":"pontos insuficientes"}`, w.Body.String())
}
