package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/salestrack-dev/salestrack/internal/infra/http/middleware"
	"github.com/salestrack-dev/salestrack/internal/usecase"
)

type LeadHandler struct {
	UC *usecase.LeadUseCase
}

func NewLeadHandler(uc *usecase.LeadUseCase) *LeadHandler {
	return &LeadHandler{UC: uc}
}

func (h *LeadHandler) List(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.CallerFromContext(r.Context())
	if !ok {
		writeFailure(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	q := r.URL.Query()
	page, err := usecase.ParsePagination(q.Get("page"), q.Get("limit"), usecase.DefaultLeadPageSize)
	if err != nil {
		writeError(w, err)
		return
	}

	params := usecase.LeadListParams{
		Status:   q.Get("status"),
		Priority: q.Get("priority"),
		Search:   q.Get("search"),
	}

	output, err := h.UC.List(r.Context(), caller, params, page)
	if err != nil {
		writeError(w, err)
		return
	}

	writeList(w, output.Data, output.Total, output.Page, output.Pages)
}

func (h *LeadHandler) Stats(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.CallerFromContext(r.Context())
	if !ok {
		writeFailure(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	stats, err := h.UC.Stats(r.Context(), caller)
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusOK, stats)
}

func (h *LeadHandler) Get(w http.ResponseWriter, r *http.Request) {
	lead, err := h.UC.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusOK, lead)
}

func (h *LeadHandler) Create(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.CallerFromContext(r.Context())
	if !ok {
		writeFailure(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var input usecase.CreateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeFailure(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	lead, err := h.UC.Create(r.Context(), caller, input)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordCreated("lead")
	writeData(w, http.StatusCreated, lead)
}

func (h *LeadHandler) Update(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.CallerFromContext(r.Context())
	if !ok {
		writeFailure(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var input usecase.UpdateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeFailure(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	lead, err := h.UC.Update(r.Context(), caller, chi.URLParam(r, "id"), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusOK, lead)
}

func (h *LeadHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.UC.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}

	writeMessage(w, http.StatusOK, "Lead deleted")
}
