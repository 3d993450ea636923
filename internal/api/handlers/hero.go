package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/krit/mlbb-counter-website/internal/catalog"
	"github.com/krit/mlbb-counter-website/internal/domain"
	"github.com/krit/mlbb-counter-website/internal/service"
)

type HeroHandler struct {
	catalogService *service.CatalogService
	counterService *service.CounterService
}

func NewHeroHandler(catalogService *service.CatalogService, counterService *service.CounterService) *HeroHandler {
	return &HeroHandler{catalogService: catalogService, counterService: counterService}
}

type HeroesResponse struct {
	Heroes []domain.Hero `json:"heroes"`
}

func (h *HeroHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	heroes, err := h.catalogService.SearchHeroes(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		log.Printf("ERROR [hero.GetAll]: %v", err)
		http.Error(w, "Failed to get heroes", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, HeroesResponse{Heroes: heroes})
}

func (h *HeroHandler) GetTags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.catalogService.Tags(r.Context())
	if err != nil {
		log.Printf("ERROR [hero.GetTags]: %v", err)
		http.Error(w, "Failed to get tags", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"tags": tags})
}

func (h *HeroHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	hero, err := h.catalogService.HeroByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrHeroNotFound) {
			http.Error(w, "Hero not found", http.StatusNotFound)
			return
		}
		log.Printf("ERROR [hero.Get] heroID=%s: %v", id, err)
		http.Error(w, "Failed to get hero", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, hero)
}

func (h *HeroHandler) GetCounters(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	counterData, err := h.counterService.GetCounterData(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrHeroNotFound) {
			http.Error(w, "Hero not found", http.StatusNotFound)
			return
		}
		log.Printf("ERROR [hero.GetCounters] heroID=%s: %v", id, err)
		http.Error(w, "Failed to get counter data", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, counterData)
}

func (h *HeroHandler) GetCustom(w http.ResponseWriter, r *http.Request) {
	heroes, err := h.catalogService.CustomHeroes(r.Context())
	if err != nil {
		log.Printf("ERROR [hero.GetCustom]: %v", err)
		http.Error(w, "Failed to get custom heroes", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, HeroesResponse{Heroes: heroes})
}

func (h *HeroHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.HeroInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	hero, err := h.catalogService.CreateHero(r.Context(), input)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			log.Printf("ERROR [hero.Create]: %v", err)
		}
		http.Error(w, err.Error(), status)
		return
	}
	writeJSON(w, http.StatusCreated, hero)
}

func (h *HeroHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var input service.HeroInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	hero, err := h.catalogService.UpdateHero(r.Context(), id, input)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			log.Printf("ERROR [hero.Update] heroID=%s: %v", id, err)
		}
		http.Error(w, err.Error(), status)
		return
	}
	writeJSON(w, http.StatusOK, hero)
}

func (h *HeroHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.catalogService.DeleteHero(r.Context(), id); err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			log.Printf("ERROR [hero.Delete] heroID=%s: %v", id, err)
		}
		http.Error(w, err.Error(), status)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *HeroHandler) ResetCustom(w http.ResponseWriter, r *http.Request) {
	if err := h.catalogService.ResetCustomHeroes(r.Context()); err != nil {
		log.Printf("ERROR [hero.ResetCustom]: %v", err)
		http.Error(w, "Failed to reset custom heroes", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *HeroHandler) GetOverrides(w http.ResponseWriter, r *http.Request) {
	overrides, err := h.catalogService.HeroOverrides(r.Context())
	if err != nil {
		log.Printf("ERROR [hero.GetOverrides]: %v", err)
		http.Error(w, "Failed to get overrides", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, overrides)
}

func (h *HeroHandler) SetOverride(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var ov catalog.HeroOverride
	if err := json.NewDecoder(r.Body).Decode(&ov); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.catalogService.SetHeroOverride(r.Context(), id, ov); err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			log.Printf("ERROR [hero.SetOverride] heroID=%s: %v", id, err)
		}
		http.Error(w, err.Error(), status)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *HeroHandler) RemoveOverride(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.catalogService.RemoveHeroOverride(r.Context(), id); err != nil {
		log.Printf("ERROR [hero.RemoveOverride] heroID=%s: %v", id, err)
		http.Error(w, "Failed to remove override", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *HeroHandler) ResetOverrides(w http.ResponseWriter, r *http.Request) {
	if err := h.catalogService.ResetHeroOverrides(r.Context()); err != nil {
		log.Printf("ERROR [hero.ResetOverrides]: %v", err)
		http.Error(w, "Failed to reset overrides", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
