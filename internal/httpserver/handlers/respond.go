package handlers

import (
	"encoding/json"
	"net/http"
)

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

// respondMsg writes the single-message error shape, {"msg": "..."}.
func respondMsg(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"msg": msg})
}

// fieldError is one entry of the per-field validation error array.
type fieldError struct {
	Param string `json:"param,omitempty"`
	Msg   string `json:"msg"`
}

func respondFieldErrors(w http.ResponseWriter, errs []fieldError) {
	respondJSON(w, http.StatusBadRequest, map[string][]fieldError{"errors": errs})
}

func respondServerError(w http.ResponseWriter) {
	respondMsg(w, http.StatusInternalServerError, "Server Error")
}
