package httpx

import (
	"encoding/json"
	"net/http"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Envelope wraps every non-listing response.
type Envelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Objeto  any    `json:"objeto,omitempty"`
}

// JSON writes v with the given status code.
func JSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

func JSONSuccess(w http.ResponseWriter, statusCode int, message string, objeto any) {
	JSON(w, statusCode, Envelope{
		Status:  StatusSuccess,
		Message: message,
		Objeto:  objeto,
	})
}

func JSONError(w http.ResponseWriter, statusCode int, message string) {
	JSON(w, statusCode, Envelope{
		Status:  StatusError,
		Message: message,
	})
}
