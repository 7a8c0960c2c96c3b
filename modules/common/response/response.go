package response

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse - 에러 응답 본문
type ErrorResponse struct {
	Error string `json:"error"`
}

// JSON - 상태 코드와 함께 JSON 응답
func JSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// Error - {"error": message} 응답
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, ErrorResponse{Error: message})
}
