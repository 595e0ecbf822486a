package handlers

import "net/http"

// Ответы функций /functions/v1/*: {success: true, ...} | {success: false, error}

// FunctionError тело неуспешного ответа функции
type FunctionError struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// RespondFunctionSuccess добавляет success=true к полям ответа
func RespondFunctionSuccess(w http.ResponseWriter, fields map[string]interface{}) {
	body := make(map[string]interface{}, len(fields)+1)
	for k, v := range fields {
		body[k] = v
	}
	body["success"] = true
	RespondJSON(w, http.StatusOK, body)
}

func RespondFunctionError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, FunctionError{Success: false, Error: message})
}

func RespondFunctionInternalError(w http.ResponseWriter) {
	RespondFunctionError(w, http.StatusInternalServerError, msgInternalError)
}
