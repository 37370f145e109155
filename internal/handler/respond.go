package handler

import (
	"encoding/json"
	"errors"
	"net/http"
)

// JSON helper functions

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// sendResponse is the success shape shared by all send routes.
type sendResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	ServiceUsed string `json:"service_used"`
	To          string `json:"to"`
}

// errorResponse is the failure shape shared by all send routes.
type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	To      string `json:"to,omitempty"`
}

func writeSendError(w http.ResponseWriter, status int, message, to string) {
	writeJSON(w, status, errorResponse{
		Success: false,
		Error:   message,
		To:      to,
	})
}

func readJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return errors.New("request body is empty")
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(v)
}
