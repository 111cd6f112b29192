package server

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

// errorPayload is the JSON body of every non-2xx response.
type errorPayload struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Fields  interface{} `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write response error")
	}
}

func writeError(w http.ResponseWriter, status int, message string, fields interface{}) {
	writeJSON(w, status, errorPayload{Status: "error", Message: message, Fields: fields})
}
