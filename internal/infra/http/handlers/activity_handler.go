package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/salestrack-dev/salestrack/internal/infra/http/middleware"
	"github.com/salestrack-dev/salestrack/internal/usecase"
)

type ActivityHandler struct {
	UC *usecase.ActivityUseCase
}

func NewActivityHandler(uc *usecase.ActivityUseCase) *ActivityHandler {
	return &ActivityHandler{UC: uc}
}

func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.CallerFromContext(r.Context())
	if !ok {
		writeFailure(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	q := r.URL.Query()
	page, err := usecase.ParsePagination(q.Get("page"), q.Get("limit"), usecase.DefaultPageSize)
	if err != nil {
		writeError(w, err)
		return
	}

	params := usecase.ActivityListParams{
		Type:   q.Get("type"),
		Status: q.Get("status"),
		LeadID: q.Get("leadId"),
	}

	output, err := h.UC.List(r.Context(), caller, params, page)
	if err != nil {
		writeError(w, err)
		return
	}

	writeList(w, output.Data, output.Total, output.Page, output.Pages)
}

func (h *ActivityHandler) Get(w http.ResponseWriter, r *http.Request) {
	activity, err := h.UC.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusOK, activity)
}

func (h *ActivityHandler) Create(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.CallerFromContext(r.Context())
	if !ok {
		writeFailure(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var input usecase.CreateActivityInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeFailure(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	activity, err := h.UC.Create(r.Context(), caller, input)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordCreated("activity")
	writeData(w, http.StatusCreated, activity)
}

func (h *ActivityHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input usecase.UpdateActivityInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeFailure(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	activity, err := h.UC.Update(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusOK, activity)
}

func (h *ActivityHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.UC.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}

	writeMessage(w, http.StatusOK, "Activity deleted")
}
