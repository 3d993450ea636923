package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/krit/mlbb-counter-website/internal/domain"
	"github.com/krit/mlbb-counter-website/internal/service"
)

type RuleHandler struct {
	ruleService *service.RuleService
}

func NewRuleHandler(ruleService *service.RuleService) *RuleHandler {
	return &RuleHandler{ruleService: ruleService}
}

type RulesResponse struct {
	Rules []domain.CounterRule `json:"rules"`
}

type ItemRulesResponse struct {
	Rules []domain.ItemCounterRule `json:"rules"`
}

func indexParam(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "index"))
}

func (h *RuleHandler) GetCustom(w http.ResponseWriter, r *http.Request) {
	rules, err := h.ruleService.CustomRules(r.Context())
	if err != nil {
		log.Printf("ERROR [rule.GetCustom]: %v", err)
		http.Error(w, "Failed to get rules", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, RulesResponse{Rules: rules})
}

func (h *RuleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var rule domain.CounterRule
	if err := json.NewDecoder(r.Body).Decode(&rule); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	rules, err := h.ruleService.AddRule(r.Context(), rule)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			log.Printf("ERROR [rule.Create]: %v", err)
		}
		http.Error(w, err.Error(), status)
		return
	}
	writeJSON(w, http.StatusCreated, RulesResponse{Rules: rules})
}

func (h *RuleHandler) Update(w http.ResponseWriter, r *http.Request) {
	index, err := indexParam(r)
	if err != nil {
		http.Error(w, "Invalid rule index", http.StatusBadRequest)
		return
	}

	var rule domain.CounterRule
	if err := json.NewDecoder(r.Body).Decode(&rule); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	rules, err := h.ruleService.UpdateRule(r.Context(), index, rule)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			log.Printf("ERROR [rule.Update] index=%d: %v", index, err)
		}
		http.Error(w, err.Error(), status)
		return
	}
	writeJSON(w, http.StatusOK, RulesResponse{Rules: rules})
}

func (h *RuleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	index, err := indexParam(r)
	if err != nil {
		http.Error(w, "Invalid rule index", http.StatusBadRequest)
		return
	}

	rules, err := h.ruleService.DeleteRule(r.Context(), index)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			log.Printf("ERROR [rule.Delete] index=%d: %v", index, err)
		}
		http.Error(w, err.Error(), status)
		return
	}
	writeJSON(w, http.StatusOK, RulesResponse{Rules: rules})
}

func (h *RuleHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.ruleService.ResetRules(r.Context()); err != nil {
		log.Printf("ERROR [rule.Reset]: %v", err)
		http.Error(w, "Failed to reset rules", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *RuleHandler) Export(w http.ResponseWriter, r *http.Request) {
	raw, err := h.ruleService.ExportRules(r.Context())
	if err != nil {
		log.Printf("ERROR [rule.Export]: %v", err)
		http.Error(w, "Failed to export rules", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="counter-rules.json"`)
	w.Write(raw)
}

func (h *RuleHandler) Import(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	rules, err := h.ruleService.ImportRules(r.Context(), raw)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			log.Printf("ERROR [rule.Import]: %v", err)
			http.Error(w, "Failed to import rules", status)
			return
		}
		http.Error(w, "Invalid rules structure", status)
		return
	}
	writeJSON(w, http.StatusOK, RulesResponse{Rules: rules})
}

func (h *RuleHandler) GetItemRules(w http.ResponseWriter, r *http.Request) {
	rules, err := h.ruleService.ItemRules(r.Context())
	if err != nil {
		log.Printf("ERROR [rule.GetItemRules]: %v", err)
		http.Error(w, "Failed to get item rules", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, ItemRulesResponse{Rules: rules})
}

func (h *RuleHandler) CreateItemRule(w http.ResponseWriter, r *http.Request) {
	var rule domain.ItemCounterRule
	if err := json.NewDecoder(r.Body).Decode(&rule); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	rules, err := h.ruleService.AddItemRule(r.Context(), rule)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			log.Printf("ERROR [rule.CreateItemRule]: %v", err)
		}
		http.Error(w, err.Error(), status)
		return
	}
	writeJSON(w, http.StatusCreated, ItemRulesResponse{Rules: rules})
}

func (h *RuleHandler) UpdateItemRule(w http.ResponseWriter, r *http.Request) {
	index, err := indexParam(r)
	if err != nil {
		http.Error(w, "Invalid rule index", http.StatusBadRequest)
		return
	}

	var rule domain.ItemCounterRule
	if err := json.NewDecoder(r.Body).Decode(&rule); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	rules, err := h.ruleService.UpdateItemRule(r.Context(), index, rule)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			log.Printf("ERROR [rule.UpdateItemRule] index=%d: %v", index, err)
		}
		http.Error(w, err.Error(), status)
		return
	}
	writeJSON(w, http.StatusOK, ItemRulesResponse{Rules: rules})
}

func (h *RuleHandler) DeleteItemRule(w http.ResponseWriter, r *http.Request) {
	index, err := indexParam(r)
	if err != nil {
		http.Error(w, "Invalid rule index", http.StatusBadRequest)
		return
	}

	rules, err := h.ruleService.DeleteItemRule(r.Context(), index)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			log.Printf("ERROR [rule.DeleteItemRule] index=%d: %v", index, err)
		}
		http.Error(w, err.Error(), status)
		return
	}
	writeJSON(w, http.StatusOK, ItemRulesResponse{Rules: rules})
}

func (h *RuleHandler) ResetItemRules(w http.ResponseWriter, r *http.Request) {
	if err := h.ruleService.ResetItemRules(r.Context()); err != nil {
		log.Printf("ERROR [rule.ResetItemRules]: %v", err)
		http.Error(w, "Failed to reset item rules", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
