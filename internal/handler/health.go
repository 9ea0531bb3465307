package handler

import "net/http"

// Health is a liveness probe endpoint. The dataset is embedded and
// validated at startup, so a running process is a healthy process.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
