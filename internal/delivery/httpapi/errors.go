package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/openmazad/auction-service/internal/domain"
)

func statusForError(err error) int {
	var de *domain.Error
	if !errors.As(err, &de) {
		return http.StatusInternalServerError
	}
	switch de.Kind {
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindInvalidArgument:
		return http.StatusBadRequest
	case domain.KindForbidden:
		return http.StatusForbidden
	case domain.KindInvalidState, domain.KindConflict:
		return http.StatusConflict
	case domain.KindConfiguration:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	body := errorResponse{Error: err.Error(), Reason: domain.ReasonOf(err)}
	writeJSON(w, statusForError(err), body)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed request body"})
		return false
	}
	return true
}

// caller extracts the acting user from the identity header; empty means the
// gateway did not authenticate the request.
func caller(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := r.Header.Get(callerHeader)
	if id == "" {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing " + callerHeader + " header"})
		return "", false
	}
	return id, true
}
