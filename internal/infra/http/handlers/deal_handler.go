package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/salestrack-dev/salestrack/internal/infra/http/middleware"
	"github.com/salestrack-dev/salestrack/internal/usecase"
)

type DealHandler struct {
	UC *usecase.DealUseCase
}

func NewDealHandler(uc *usecase.DealUseCase) *DealHandler {
	return &DealHandler{UC: uc}
}

func (h *DealHandler) List(w http.ResponseWriter, r *http.Request) {
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

	params := usecase.DealListParams{
		Stage:  q.Get("stage"),
		LeadID: q.Get("leadId"),
	}

	output, err := h.UC.List(r.Context(), caller, params, page)
	if err != nil {
		writeError(w, err)
		return
	}

	writeList(w, output.Data, output.Total, output.Page, output.Pages)
}

func (h *DealHandler) Pipeline(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.CallerFromContext(r.Context())
	if !ok {
		writeFailure(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	stats, err := h.UC.Pipeline(r.Context(), caller)
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusOK, stats)
}

func (h *DealHandler) Get(w http.ResponseWriter, r *http.Request) {
	deal, err := h.UC.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusOK, deal)
}

func (h *DealHandler) Create(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.CallerFromContext(r.Context())
	if !ok {
		writeFailure(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var input usecase.CreateDealInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeFailure(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	deal, err := h.UC.Create(r.Context(), caller, input)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordCreated("deal")
	writeData(w, http.StatusCreated, deal)
}

func (h *DealHandler) Update(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.CallerFromContext(r.Context())
	if !ok {
		writeFailure(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var input usecase.UpdateDealInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeFailure(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	deal, err := h.UC.Update(r.Context(), caller, chi.URLParam(r, "id"), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusOK, deal)
}

func (h *DealHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.UC.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}

	writeMessage(w, http.StatusOK, "Deal deleted")
}
