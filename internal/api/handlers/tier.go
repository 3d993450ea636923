package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/krit/mlbb-counter-website/internal/domain"
	"github.com/krit/mlbb-counter-website/internal/service"
)

type TierHandler struct {
	tierService *service.TierService
}

func NewTierHandler(tierService *service.TierService) *TierHandler {
	return &TierHandler{tierService: tierService}
}

// GetTierList serves the published document. The data refreshes on a daily
// cycle, so responses carry a 24 hour cache window.
func (h *TierHandler) GetTierList(w http.ResponseWriter, r *http.Request) {
	list, err := h.tierService.GetTierList(r.Context())
	if err != nil {
		log.Printf("ERROR [tier.GetTierList]: %v", err)
		http.Error(w, "Failed to get tier list", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Cache-Control", "public, max-age=86400")
	writeJSON(w, http.StatusOK, list)
}

type TierMutationRequest struct {
	Lane   domain.Lane     `json:"lane"`
	HeroID string          `json:"heroId"`
	From   domain.TierRank `json:"from,omitempty"`
	To     domain.TierRank `json:"to"`
}

type TierMapResponse struct {
	TierMap domain.LaneTierMap `json:"tierMap"`
}

func (h *TierHandler) AddHero(w http.ResponseWriter, r *http.Request) {
	var req TierMutationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	m, err := h.tierService.AddHero(r.Context(), req.Lane, req.To, req.HeroID)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			log.Printf("ERROR [tier.AddHero] heroID=%s: %v", req.HeroID, err)
		}
		http.Error(w, err.Error(), status)
		return
	}
	writeJSON(w, http.StatusOK, TierMapResponse{TierMap: m})
}

func (h *TierHandler) MoveHero(w http.ResponseWriter, r *http.Request) {
	var req TierMutationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	m, err := h.tierService.MoveHero(r.Context(), req.Lane, req.HeroID, req.From, req.To)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			log.Printf("ERROR [tier.MoveHero] heroID=%s: %v", req.HeroID, err)
		}
		http.Error(w, err.Error(), status)
		return
	}
	writeJSON(w, http.StatusOK, TierMapResponse{TierMap: m})
}

func (h *TierHandler) RemoveHero(w http.ResponseWriter, r *http.Request) {
	var req TierMutationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	m, err := h.tierService.RemoveHero(r.Context(), req.Lane, req.HeroID)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			log.Printf("ERROR [tier.RemoveHero] heroID=%s: %v", req.HeroID, err)
		}
		http.Error(w, err.Error(), status)
		return
	}
	writeJSON(w, http.StatusOK, TierMapResponse{TierMap: m})
}

type TierMetaRequest struct {
	Patch  string `json:"patch"`
	Source string `json:"source"`
}

func (h *TierHandler) UpdateMeta(w http.ResponseWriter, r *http.Request) {
	var req TierMetaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	meta, err := h.tierService.UpdateMeta(r.Context(), req.Patch, req.Source)
	if err != nil {
		log.Printf("ERROR [tier.UpdateMeta]: %v", err)
		http.Error(w, "Failed to update tier meta", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, meta)
}

func (h *TierHandler) Export(w http.ResponseWriter, r *http.Request) {
	raw, err := h.tierService.Export(r.Context())
	if err != nil {
		log.Printf("ERROR [tier.Export]: %v", err)
		http.Error(w, "Failed to export tier list", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="tier-list.json"`)
	w.Write(raw)
}

func (h *TierHandler) Import(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.tierService.Import(r.Context(), raw); err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			log.Printf("ERROR [tier.Import]: %v", err)
			http.Error(w, "Failed to import tier list", status)
			return
		}
		http.Error(w, "Invalid tier list structure", status)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *TierHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.tierService.Reset(r.Context()); err != nil {
		log.Printf("ERROR [tier.Reset]: %v", err)
		http.Error(w, "Failed to reset tier list", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
