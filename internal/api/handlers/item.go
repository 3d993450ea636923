package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/krit/mlbb-counter-website/internal/catalog"
	"github.com/krit/mlbb-counter-website/internal/domain"
	"github.com/krit/mlbb-counter-website/internal/service"
)

type ItemHandler struct {
	catalogService *service.CatalogService
}

func NewItemHandler(catalogService *service.CatalogService) *ItemHandler {
	return &ItemHandler{catalogService: catalogService}
}

type ItemsResponse struct {
	Items []domain.ItemDef `json:"items"`
}

func (h *ItemHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalogService.Items(r.Context())
	if err != nil {
		log.Printf("ERROR [item.GetAll]: %v", err)
		http.Error(w, "Failed to get items", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, ItemsResponse{Items: items})
}

func (h *ItemHandler) GetCustom(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalogService.CustomItems(r.Context())
	if err != nil {
		log.Printf("ERROR [item.GetCustom]: %v", err)
		http.Error(w, "Failed to get custom items", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, ItemsResponse{Items: items})
}

func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.ItemInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	item, err := h.catalogService.CreateItem(r.Context(), input)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			log.Printf("ERROR [item.Create]: %v", err)
		}
		http.Error(w, err.Error(), status)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var input service.ItemInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	item, err := h.catalogService.UpdateItem(r.Context(), id, input)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			log.Printf("ERROR [item.Update] itemID=%s: %v", id, err)
		}
		http.Error(w, err.Error(), status)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.catalogService.DeleteItem(r.Context(), id); err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			log.Printf("ERROR [item.Delete] itemID=%s: %v", id, err)
		}
		http.Error(w, err.Error(), status)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ItemHandler) ResetCustom(w http.ResponseWriter, r *http.Request) {
	if err := h.catalogService.ResetCustomItems(r.Context()); err != nil {
		log.Printf("ERROR [item.ResetCustom]: %v", err)
		http.Error(w, "Failed to reset custom items", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ItemHandler) GetOverrides(w http.ResponseWriter, r *http.Request) {
	overrides, err := h.catalogService.ItemOverrides(r.Context())
	if err != nil {
		log.Printf("ERROR [item.GetOverrides]: %v", err)
		http.Error(w, "Failed to get overrides", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, overrides)
}

func (h *ItemHandler) SetOverride(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var ov catalog.ItemOverride
	if err := json.NewDecoder(r.Body).Decode(&ov); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.catalogService.SetItemOverride(r.Context(), id, ov); err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			log.Printf("ERROR [item.SetOverride] itemID=%s: %v", id, err)
		}
		http.Error(w, err.Error(), status)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ItemHandler) RemoveOverride(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.catalogService.RemoveItemOverride(r.Context(), id); err != nil {
		log.Printf("ERROR [item.RemoveOverride] itemID=%s: %v", id, err)
		http.Error(w, "Failed to remove override", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ItemHandler) ResetOverrides(w http.ResponseWriter, r *http.Request) {
	if err := h.catalogService.ResetItemOverrides(r.Context()); err != nil {
		log.Printf("ERROR [item.ResetOverrides]: %v", err)
		http.Error(w, "Failed to reset overrides", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
