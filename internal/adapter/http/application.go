package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"brandcollab/internal/core/domain"
)

// handleApply submits or re-submits the caller's application to a campaign.
// Re-submitting answers 200 with the overwritten record, so callers do not
// need to know whether an application already existed.
func (h *Handler) handleApply(w http.ResponseWriter, r *http.Request) {
	var req applyRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}
	a, err := h.svc.ApplyToCampaign(r.Context(), actorFrom(r), chi.URLParam(r, "campaignID"), domain.Pitch{
		Message:         req.Message,
		ProposedContent: req.ProposedContent,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, toApplicationResponse(a))
}

func (h *Handler) handleListCampaignApplications(w http.ResponseWriter, r *http.Request) {
	as, err := h.svc.ListCampaignApplications(r.Context(), actorFrom(r), chi.URLParam(r, "campaignID"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, toApplicationResponses(as))
}

func (h *Handler) handleListMyApplications(w http.ResponseWriter, r *http.Request) {
	as, err := h.svc.ListMyApplications(r.Context(), actorFrom(r))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, toApplicationResponses(as))
}

func (h *Handler) handleGetApplication(w http.ResponseWriter, r *http.Request) {
	a, err := h.svc.GetApplication(r.Context(), actorFrom(r), chi.URLParam(r, "applicationID"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, toApplicationResponse(a))
}

func (h *Handler) handleWithdraw(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.WithdrawApplication(r.Context(), actorFrom(r), chi.URLParam(r, "applicationID")); err != nil {
		h.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleDecide records the brand's approved/rejected decision.
func (h *Handler) handleDecide(w http.ResponseWriter, r *http.Request) {
	var req decisionRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}
	decision, err := domain.ParseDecision(req.Decision)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	a, err := h.svc.DecideApplication(r.Context(), actorFrom(r), chi.URLParam(r, "applicationID"), decision)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, toApplicationResponse(a))
}
