package handler

import (
	"errors"
	"net/http"

	"github.com/drivenpass/drivenpass-go/internal/middleware"
	"github.com/drivenpass/drivenpass-go/internal/model"
	"github.com/drivenpass/drivenpass-go/internal/service"
)

// AccountHandler handles HTTP requests for account erasure.
type AccountHandler struct {
	service *service.AccountService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(svc *service.AccountService) *AccountHandler {
	return &AccountHandler{service: svc}
}

// HandleErase handles DELETE /erase requests. A wrong confirmation
// password leaves the account and all its records untouched.
func (h *AccountHandler) HandleErase(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	var req model.EraseAccountRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.service.Erase(r.Context(), user, req.Password); err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeJSON(w, http.StatusUnauthorized, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
