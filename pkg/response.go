package pkg

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"
)

var ContentType = struct {
	JSON string
	Text string
}{
	JSON: "application/json",
	Text: "text/plain; charset=utf-8",
}

type errorResponse struct {
	Error string `json:"error"`
}

func WriteResponse(w http.ResponseWriter, contentType, message string, statusCode int) {
	WriteResponseBytes(w, contentType, []byte(message), statusCode)
}

func WriteResponseBytes(w http.ResponseWriter, contentType string, message []byte, statusCode int) {
	if contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}
	w.WriteHeader(statusCode)

	if _, err := w.Write(message); err != nil {
		log.Errorf("failed to write response [%s]: %s", message, err)
	}
}

func WriteTextResponseOK(w http.ResponseWriter, message string) {
	WriteResponse(w, ContentType.Text, message, http.StatusOK)
}

// WriteJSONResponse marshals v and writes it with the given status code.
func WriteJSONResponse(w http.ResponseWriter, statusCode int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Errorf("failed to marshal response: %s", err)
		WriteJSONError(w, http.StatusInternalServerError, "internal error")
		return
	}
	WriteResponseBytes(w, ContentType.JSON, body, statusCode)
}

func WriteJSONResponseOK(w http.ResponseWriter, v any) {
	WriteJSONResponse(w, http.StatusOK, v)
}

// WriteJSONError writes {"error": message}.
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	body, _ := json.Marshal(errorResponse{Error: message})
	WriteResponseBytes(w, ContentType.JSON, body, statusCode)
}
