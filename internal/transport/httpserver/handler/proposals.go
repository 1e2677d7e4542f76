package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	proposaldomain "carpooling-go/internal/domain/proposal"
)

type proposalResponse struct {
	ID         uint    `json:"id"`
	UserID     uint    `json:"uid"`
	CarpoolID  uint    `json:"cid"`
	Accepted   *int16  `json:"accepted"`
	Cost       float64 `json:"cost"`
	Separation int     `json:"separation"`
}

type proposalsEnvelope struct {
	Proposals []proposalResponse `json:"proposals"`
}

// AcceptProposal marks the proposal for the posted (uid, cid) pair as
// accepted. Accepting twice is a no-op that still answers OK.
func (h *Handlers) AcceptProposal(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_form", "invalid form body")
		return
	}

	userID, err := parseIDParam(r.PostFormValue("uid"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "uid: invalid id")
		return
	}
	carpoolID, err := parseIDParam(r.PostFormValue("cid"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "cid: invalid id")
		return
	}

	if err := h.Proposals.Accept(r.Context(), userID, carpoolID); err != nil {
		switch {
		case errors.Is(err, proposaldomain.ErrProposalNotFound):
			h.log.BusinessError("proposals.accept: proposal not found", err, "user_id", userID, "carpool_id", carpoolID)
			writeError(w, http.StatusNotFound, "proposal_not_found", "proposal not found")
		case errors.Is(err, proposaldomain.ErrCarpoolFull):
			h.log.BusinessError("proposals.accept: carpool full", err, "user_id", userID, "carpool_id", carpoolID)
			writeError(w, http.StatusConflict, "carpool_full", "carpool is full")
		default:
			h.log.InternalError("proposals.accept: accept failed", err, "user_id", userID, "carpool_id", carpoolID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeText(w, http.StatusOK, "OK")
}

func (h *Handlers) ListProposals(w http.ResponseWriter, r *http.Request) {
	userID, err := parseIDParam(chi.URLParam(r, "uid"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid user id")
		return
	}

	proposals, err := h.Proposals.ListForUser(r.Context(), userID)
	if err != nil {
		h.log.InternalError("proposals.list: list failed", err, "user_id", userID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]proposalResponse, 0, len(proposals))
	for _, p := range proposals {
		response = append(response, proposalResponse{
			ID:         p.ID,
			UserID:     p.UserID,
			CarpoolID:  p.CarpoolID,
			Accepted:   p.Accepted,
			Cost:       p.Cost,
			Separation: p.Separation,
		})
	}
	writeJSON(w, http.StatusOK, proposalsEnvelope{Proposals: response})
}
