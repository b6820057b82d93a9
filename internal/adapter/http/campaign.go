package httpadapter

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"brandcollab/internal/core/domain"
)

// handleCreateCampaign creates a campaign owned by the calling brand and
// answers 201 with the new record.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req createCampaignRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}
	fields, err := req.fields()
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	c, err := h.svc.CreateCampaign(r.Context(), actorFrom(r), fields)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusCreated, toCampaignResponse(c))
}

// handleListCampaigns lists the caller's own campaigns. Expired campaigns
// are included only with ?include_expired=true.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	includeExpired := false
	if v := r.URL.Query().Get("include_expired"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "validation_error", "invalid include_expired")
			return
		}
		includeExpired = parsed
	}
	cs, err := h.svc.ListCampaigns(r.Context(), actorFrom(r), includeExpired)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, toCampaignResponses(cs))
}

func (h *Handler) handleListActiveCampaigns(w http.ResponseWriter, r *http.Request) {
	cs, err := h.svc.ListActiveCampaigns(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, toCampaignResponses(cs))
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.GetCampaign(r.Context(), chi.URLParam(r, "campaignID"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, toCampaignResponse(c))
}

func (h *Handler) handleUpdateCampaign(w http.ResponseWriter, r *http.Request) {
	var req updateCampaignRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}
	c, err := h.svc.UpdateCampaign(r.Context(), actorFrom(r), chi.URLParam(r, "campaignID"), req.patch())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, toCampaignResponse(c))
}

// handleTransitionCampaign moves a campaign to the status named in the body.
func (h *Handler) handleTransitionCampaign(w http.ResponseWriter, r *http.Request) {
	var req transitionRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}
	target, err := domain.ParseCampaignStatus(req.Status)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	c, err := h.svc.TransitionCampaign(r.Context(), actorFrom(r), chi.URLParam(r, "campaignID"), target)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, toCampaignResponse(c))
}

// handleDeleteCampaign deletes an expired campaign and answers 204.
func (h *Handler) handleDeleteCampaign(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteCampaign(r.Context(), actorFrom(r), chi.URLParam(r, "campaignID")); err != nil {
		h.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
