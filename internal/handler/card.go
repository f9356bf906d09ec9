package handler

import (
	"net/http"

	"github.com/drivenpass/drivenpass-go/internal/middleware"
	"github.com/drivenpass/drivenpass-go/internal/model"
	"github.com/drivenpass/drivenpass-go/internal/service"
)

// CardHandler handles HTTP requests for payment cards.
type CardHandler struct {
	service *service.CardService
}

// NewCardHandler creates a new CardHandler.
func NewCardHandler(svc *service.CardService) *CardHandler {
	return &CardHandler{service: svc}
}

// HandleCreate handles POST /cards requests.
func (h *CardHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	var req model.CreateCardRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Create(r.Context(), user.ID, req)
	if err != nil {
		writeRecordError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// HandleList handles GET /cards requests.
func (h *CardHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	resp, err := h.service.FindAll(r.Context(), user.ID)
	if err != nil {
		writeRecordError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleGet handles GET /cards/{id} requests.
func (h *CardHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	id, ok := recordID(w, r)
	if !ok {
		return
	}

	resp, err := h.service.FindOne(r.Context(), user.ID, id)
	if err != nil {
		writeRecordError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleDelete handles DELETE /cards/{id} requests.
func (h *CardHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	id, ok := recordID(w, r)
	if !ok {
		return
	}

	if err := h.service.Remove(r.Context(), user.ID, id); err != nil {
		writeRecordError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
