package command

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/de-tools/report-pilot/pkg/adapters"
	"github.com/de-tools/report-pilot/pkg/models/api"
	"github.com/de-tools/report-pilot/pkg/models/domain"
	"github.com/rs/zerolog"
)

// Service is the orchestrator surface the handler depends on.
type Service interface {
	Process(ctx context.Context, raw string, user *domain.User) domain.CommandOutcome
	Parse(ctx context.Context, raw string) domain.ParsedCommand
	Catalog() []domain.CatalogEntry
}

// Handler exposes the command interpreter over HTTP.
type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Execute interprets the command and runs the matched report generator.
func (h *Handler) Execute(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	request, ok := decodeCommandRequest(w, r)
	if !ok {
		return
	}

	var user *domain.User
	if request.UserID != "" {
		user = &domain.User{ID: request.UserID}
	}

	outcome := h.service.Process(ctx, request.Command, user)
	writeJSON(w, logger, adapters.MapCommandOutcomeDomainToApi(outcome))
}

// Parse interprets the command without executing it.
func (h *Handler) Parse(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	request, ok := decodeCommandRequest(w, r)
	if !ok {
		return
	}

	parsed := h.service.Parse(ctx, request.Command)
	writeJSON(w, logger, adapters.MapParsedCommandDomainToApi(parsed))
}

// ListReports returns the report catalog.
func (h *Handler) ListReports(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	response := make([]api.CatalogEntry, 0)
	for _, entry := range h.service.Catalog() {
		response = append(response, adapters.MapCatalogEntryDomainToApi(entry))
	}
	writeJSON(w, logger, response)
}

func decodeCommandRequest(w http.ResponseWriter, r *http.Request) (api.CommandRequest, bool) {
	var request api.CommandRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
		return api.CommandRequest{}, false
	}
	return request, true
}

func writeJSON(w http.ResponseWriter, logger *zerolog.Logger, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error().Err(err).Msg("failed to encode response")
	}
}
