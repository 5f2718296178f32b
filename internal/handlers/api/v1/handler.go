// Package v1 exposes the build planning service over HTTP JSON
package v1

import (
	"net/http"

	"github.com/rubika-tools/planner-api/internal/clients/catalog"
	"github.com/rubika-tools/planner-api/internal/errors"
	buildsvc "github.com/rubika-tools/planner-api/internal/services/build"
)

// Config holds the dependencies for the API handler
type Config struct {
	BuildService buildsvc.Service
	Catalog      catalog.Client
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.BuildService == nil {
		vb.RequiredField("BuildService")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}

	return vb.Build()
}

// Handler serves the planner's HTTP API
type Handler struct {
	buildService buildsvc.Service
	catalog      catalog.Client
}

// New creates a new API handler
func New(cfg *Config) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Handler{
		buildService: cfg.BuildService,
		catalog:      cfg.Catalog,
	}, nil
}

// RegisterRoutes attaches every API route to mux
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", h.health)

	// Draft lifecycle
	mux.HandleFunc("POST /api/v1/builds", h.createBuild)
	mux.HandleFunc("GET /api/v1/builds", h.listBuilds)
	mux.HandleFunc("GET /api/v1/builds/{id}", h.getBuild)
	mux.HandleFunc("DELETE /api/v1/builds/{id}", h.deleteBuild)
	mux.HandleFunc("PUT /api/v1/builds/{id}/identity", h.setIdentity)

	// Training
	mux.HandleFunc("POST /api/v1/builds/{id}/train", h.trainSkill)
	mux.HandleFunc("DELETE /api/v1/builds/{id}/train/{stat}", h.resetSkill)

	// Loadout
	mux.HandleFunc("POST /api/v1/builds/{id}/equip", h.equipItem)
	mux.HandleFunc("DELETE /api/v1/builds/{id}/equip/{slot}", h.unequipItem)
	mux.HandleFunc("POST /api/v1/builds/{id}/buffs", h.applyBuff)
	mux.HandleFunc("DELETE /api/v1/builds/{id}/buffs/{aoid}", h.removeBuff)
	mux.HandleFunc("PUT /api/v1/builds/{id}/perks", h.setPerks)
	mux.HandleFunc("PUT /api/v1/builds/{id}/buff-lines", h.setBuffLines)

	// Resolution
	mux.HandleFunc("GET /api/v1/builds/{id}/skills", h.getSkills)
	mux.HandleFunc("GET /api/v1/builds/{id}/ip", h.getIPBudget)
	mux.HandleFunc("GET /api/v1/builds/{id}/check", h.checkRequirements)
	mux.HandleFunc("GET /api/v1/builds/{id}/metrics", h.getCombatMetrics)
	mux.HandleFunc("POST /api/v1/builds/{id}/score", h.scoreItems)

	// Catalog
	mux.HandleFunc("GET /api/v1/search", h.searchCatalog)
	mux.HandleFunc("GET /api/v1/items", h.listItems)
	mux.HandleFunc("GET /api/v1/items/{aoid}", h.getItem)
	mux.HandleFunc("GET /api/v1/nanos", h.listNanos)
	mux.HandleFunc("GET /api/v1/nanos/{aoid}", h.getNano)
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
