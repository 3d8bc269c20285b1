// Package chi exposes the HTTP API: the recommendation endpoint plus
// health and metrics.
package chi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/smartdine/dinerag/internal/domain"
	healthuc "github.com/smartdine/dinerag/internal/usecase/health"
	recommenduc "github.com/smartdine/dinerag/internal/usecase/recommend"
)

// CatalogReader serves the catalog browse endpoints.
type CatalogReader interface {
	FindAll(ctx context.Context) ([]domain.Restaurant, error)
	FindByID(ctx context.Context, id string) (domain.Restaurant, error)
}

// Server handles the HTTP API.
type Server struct {
	recommend *recommenduc.Service
	health    *healthuc.Service
	catalog   CatalogReader
	logger    *zap.Logger
}

// NewServer creates an HTTP API server.
func NewServer(recommend *recommenduc.Service, health *healthuc.Service, catalog CatalogReader, logger *zap.Logger) *Server {
	return &Server{recommend: recommend, health: health, catalog: catalog, logger: logger}
}

// Routes mounts the API routes.
func (s *Server) Routes(r chi.Router) {
	r.Post("/api/rag/recommend", s.Recommend)
	r.Get("/api/restaurants", s.ListRestaurants)
	r.Get("/api/restaurants/{id}", s.GetRestaurant)
	r.Get("/healthz", s.Health)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
}

type recommendRequest struct {
	Query string `json:"query"`
}

type restaurantDTO struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Cuisine     string  `json:"cuisine"`
	PriceRange  string  `json:"priceRange"`
	Rating      float64 `json:"rating"`
	Tags        string  `json:"tags"`
	Description string  `json:"description"`
}

type ragResponseDTO struct {
	BestRestaurant *restaurantDTO  `json:"bestRestaurant"`
	Alternatives   []restaurantDTO `json:"alternatives"`
	Explanation    string          `json:"explanation"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Recommend handles POST /api/rag/recommend.
func (s *Server) Recommend(w http.ResponseWriter, r *http.Request) {
	var req recommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "Invalid request body: "+err.Error())
		return
	}

	if strings.TrimSpace(req.Query) == "" {
		writeError(w, http.StatusBadRequest, "validation_failed", "Query is required")
		return
	}

	resp, err := s.recommend.Recommend(r.Context(), req.Query)
	if err != nil {
		s.logger.Error("recommendation failed", zap.Error(err))
		writeError(w, http.StatusServiceUnavailable, "catalog_unavailable", "catalog unavailable")
		return
	}

	writeJSON(w, http.StatusOK, ragResponseToDTO(resp))
}

// ListRestaurants handles GET /api/restaurants.
func (s *Server) ListRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := s.catalog.FindAll(r.Context())
	if err != nil {
		s.logger.Error("catalog listing failed", zap.Error(err))
		writeError(w, http.StatusServiceUnavailable, "catalog_unavailable", "catalog unavailable")
		return
	}

	dtos := make([]restaurantDTO, len(restaurants))
	for i, rest := range restaurants {
		dtos[i] = restaurantToDTO(rest)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// GetRestaurant handles GET /api/restaurants/{id}.
func (s *Server) GetRestaurant(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	rest, err := s.catalog.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "Restaurant not found")
			return
		}
		s.logger.Error("catalog lookup failed", zap.Error(err), zap.String("id", id))
		writeError(w, http.StatusServiceUnavailable, "catalog_unavailable", "catalog unavailable")
		return
	}

	writeJSON(w, http.StatusOK, restaurantToDTO(rest))
}

// Health handles GET /healthz.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	status := http.StatusOK
	if report.Status != healthuc.Healthy {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, map[string]any{
		"status": report.Status,
		"checks": report.Checks,
	})
}

func ragResponseToDTO(resp domain.RagResponse) ragResponseDTO {
	dto := ragResponseDTO{
		Alternatives: make([]restaurantDTO, len(resp.Alternatives)),
		Explanation:  resp.Explanation,
	}
	if resp.Best != nil {
		best := restaurantToDTO(*resp.Best)
		dto.BestRestaurant = &best
	}
	for i, alt := range resp.Alternatives {
		dto.Alternatives[i] = restaurantToDTO(alt)
	}
	return dto
}

func restaurantToDTO(r domain.Restaurant) restaurantDTO {
	return restaurantDTO{
		ID:          r.ID,
		Name:        r.Name,
		Cuisine:     r.Cuisine,
		PriceRange:  r.PriceRange,
		Rating:      r.Rating,
		Tags:        r.Tags,
		Description: r.Description,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}
