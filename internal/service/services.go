package service

import (
	"github.com/krit/mlbb-counter-website/internal/config"
	"github.com/krit/mlbb-counter-website/internal/repository"
)

type Services struct {
	Auth    *AuthService
	Catalog *CatalogService
	Rule    *RuleService
	Counter *CounterService
	Tier    *TierService
}

func NewServices(stores *repository.Stores, cfg *config.Config) *Services {
	catalog := NewCatalogService(stores)
	rule := NewRuleService(stores)
	return &Services{
		Auth:    NewAuthService(cfg),
		Catalog: catalog,
		Rule:    rule,
		Counter: NewCounterService(catalog, rule),
		Tier:    NewTierService(stores, catalog),
	}
}
