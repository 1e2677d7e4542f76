package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	carpooldomain "carpooling-go/internal/domain/carpool"
)

// carpoolResponse is the transport projection of a carpool. Capacity is
// rendered as "occupancy/capacity", roundtrip as a stringified boolean,
// and the organiser as their resolved full name.
type carpoolResponse struct {
	ID          uint   `json:"id"`
	Capacity    string `json:"capacity"`
	Origin      int    `json:"origin"`
	Destination int    `json:"destination"`
	Date        string `json:"date"`
	Depart      string `json:"tdepart"`
	Arrive      string `json:"tarrive"`
	Organiser   string `json:"organiser"`
	State       int    `json:"state"`
	Roundtrip   string `json:"roundtrip"`
}

type carpoolsEnvelope struct {
	Carpools []carpoolResponse `json:"carpools"`
}

type intermediaryResponse struct {
	ID        uint `json:"id"`
	UserID    uint `json:"uid"`
	CarpoolID uint `json:"cid"`
}

type intermediariesEnvelope struct {
	Intermediaries []intermediaryResponse `json:"intermediaries"`
}

func (h *Handlers) ListCarpools(w http.ResponseWriter, r *http.Request) {
	carpools, err := h.Carpools.List(r.Context())
	if err != nil {
		h.log.InternalError("carpools.list: list failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toCarpoolsEnvelope(carpools))
}

func (h *Handlers) ListCarpoolsForUser(w http.ResponseWriter, r *http.Request) {
	userID, err := parseIDParam(chi.URLParam(r, "userId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid user id")
		return
	}

	carpools, err := h.Carpools.ListForUser(r.Context(), userID)
	if err != nil {
		h.log.InternalError("carpools.list_for_user: list failed", err, "user_id", userID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toCarpoolsEnvelope(carpools))
}

func (h *Handlers) CreateCarpool(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_form", "invalid form body")
		return
	}

	input, err := parseCreateCarpoolForm(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	created, err := h.Carpools.Create(r.Context(), input)
	if err != nil {
		if errors.Is(err, carpooldomain.ErrOrganiserNotFound) {
			h.log.BusinessError("carpools.create: organiser not found", err, "organiser_id", input.OrganiserID)
			writeError(w, http.StatusNotFound, "organiser_not_found", "organiser not found")
			return
		}
		h.log.InternalError("carpools.create: create failed", err, "organiser_id", input.OrganiserID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	h.log.Info("carpools.create: carpool created", "carpool_id", created.ID, "organiser_id", created.OrganiserID)
	writeText(w, http.StatusOK, "OK")
}

func (h *Handlers) ListIntermediaries(w http.ResponseWriter, r *http.Request) {
	intermediaries, err := h.Carpools.ListIntermediaries(r.Context())
	if err != nil {
		h.log.InternalError("intermediaries.list: list failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]intermediaryResponse, 0, len(intermediaries))
	for _, intermediary := range intermediaries {
		response = append(response, intermediaryResponse{
			ID:        intermediary.ID,
			UserID:    intermediary.UserID,
			CarpoolID: intermediary.CarpoolID,
		})
	}
	writeJSON(w, http.StatusOK, intermediariesEnvelope{Intermediaries: response})
}

func parseCreateCarpoolForm(r *http.Request) (carpooldomain.CreateInput, error) {
	capacity, err := parseIntField(r.PostFormValue("capacity"))
	if err != nil {
		return carpooldomain.CreateInput{}, fmt.Errorf("capacity: %w", err)
	}
	origin, err := parseIntField(r.PostFormValue("origin"))
	if err != nil {
		return carpooldomain.CreateInput{}, fmt.Errorf("origin: %w", err)
	}
	destination, err := parseIntField(r.PostFormValue("destination"))
	if err != nil {
		return carpooldomain.CreateInput{}, fmt.Errorf("destination: %w", err)
	}
	date, err := parseDateField(r.PostFormValue("date"))
	if err != nil {
		return carpooldomain.CreateInput{}, err
	}
	depart, err := parseTimeField(r.PostFormValue("tdepart"))
	if err != nil {
		return carpooldomain.CreateInput{}, fmt.Errorf("tdepart: %w", err)
	}
	arrive, err := parseTimeField(r.PostFormValue("tarrive"))
	if err != nil {
		return carpooldomain.CreateInput{}, fmt.Errorf("tarrive: %w", err)
	}
	organiser, err := parseIDParam(r.PostFormValue("organiser"))
	if err != nil {
		return carpooldomain.CreateInput{}, fmt.Errorf("organiser: invalid id")
	}
	state, err := parseIntField(r.PostFormValue("state"))
	if err != nil {
		return carpooldomain.CreateInput{}, fmt.Errorf("state: %w", err)
	}
	roundtrip, err := parseBoolField(r.PostFormValue("roundtrip"))
	if err != nil {
		return carpooldomain.CreateInput{}, fmt.Errorf("roundtrip: %w", err)
	}

	if capacity <= 0 {
		return carpooldomain.CreateInput{}, fmt.Errorf("capacity must be positive")
	}

	return carpooldomain.CreateInput{
		Capacity:    capacity,
		Origin:      origin,
		Destination: destination,
		Date:        date,
		Depart:      depart,
		Arrive:      arrive,
		OrganiserID: organiser,
		State:       state,
		Roundtrip:   roundtrip,
	}, nil
}

func toCarpoolsEnvelope(carpools []carpooldomain.Detail) carpoolsEnvelope {
	response := make([]carpoolResponse, 0, len(carpools))
	for _, detail := range carpools {
		response = append(response, toCarpoolResponse(detail))
	}
	return carpoolsEnvelope{Carpools: response}
}

func toCarpoolResponse(detail carpooldomain.Detail) carpoolResponse {
	return carpoolResponse{
		ID:          detail.ID,
		Capacity:    fmt.Sprintf("%d/%d", detail.Occupancy, detail.Capacity),
		Origin:      detail.Origin,
		Destination: detail.Destination,
		Date:        detail.Date.Format(dateFormat),
		Depart:      detail.Depart,
		Arrive:      detail.Arrive,
		Organiser:   detail.OrganiserName,
		State:       detail.State,
		Roundtrip:   strconv.FormatBool(detail.Roundtrip),
	}
}
