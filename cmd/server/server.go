package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/napolitain/solver-cic/internal/converter"
	"github.com/napolitain/solver-cic/internal/logger"
	"github.com/napolitain/solver-cic/internal/metrics"
	"github.com/napolitain/solver-cic/internal/models"
	"github.com/napolitain/solver-cic/internal/plancache"
	"github.com/napolitain/solver-cic/internal/solver/crafting"
)

// maxBodyBytes bounds the size of a plan request
const maxBodyBytes = 1 << 20

// server answers plan requests against a default catalog or one sent inline
type server struct {
	catalog   *models.Catalog
	seedMoney float64
	rankStep  int
	cache     *plancache.Cache
	limiter   *rate.Limiter
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()

	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", s.handleHealthz)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(s.rateLimit)
		r.Post("/plan", s.handlePlan)
		r.Post("/plan/next", s.handleNext)
	})

	return r
}

func (s *server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"products": s.catalog.Len(),
	})
}

func (s *server) handlePlan(w http.ResponseWriter, r *http.Request) {
	sol, cached, err := s.plan(w, r)
	if err != nil {
		respondPlanError(w, r, err)
		return
	}

	runID, _ := logger.RunIDFromContext(r.Context())
	respondJSON(w, http.StatusOK, converter.SolutionToResponse(sol, runID, cached))
}

func (s *server) handleNext(w http.ResponseWriter, r *http.Request) {
	sol, _, err := s.plan(w, r)
	if err != nil {
		respondPlanError(w, r, err)
		return
	}

	next := sol.NextPurchase()
	if next == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	respondJSON(w, http.StatusOK, converter.PurchaseToDTO(*next))
}

// plan decodes the request and returns its solution, from the cache when possible
func (s *server) plan(w http.ResponseWriter, r *http.Request) (*models.Solution, bool, error) {
	log := logger.FromContext(r.Context())

	var req converter.PlanRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return nil, false, fmt.Errorf("%w: %v", converter.ErrBadRequest, err)
	}
	if err := req.Validate(); err != nil {
		return nil, false, err
	}

	key, err := plancache.Key(req)
	if err != nil {
		return nil, false, err
	}
	if sol, ok := s.cache.Get(key); ok {
		log.Debug("plan served from cache", "key", key)
		return sol, true, nil
	}

	catalog := s.catalog
	if len(req.Products) > 0 {
		if catalog, _, err = converter.RequestToCatalog(&req); err != nil {
			return nil, false, err
		}
	}

	opts := []crafting.Option{
		crafting.WithSeedMoney(s.seedMoney),
		crafting.WithRankStep(s.rankStep),
		crafting.WithLogger(log),
	}
	opts = append(opts, converter.RequestOptions(&req)...)

	start := time.Now()
	sol, err := solve(catalog, req.Targets, opts...)
	metrics.ObservePlan(converter.ErrorKind(err), sol, time.Since(start).Seconds())
	if err != nil {
		return nil, false, err
	}

	log.Info("plan computed", "ticks", sol.TickCount, "purchases", len(sol.Purchases))
	s.cache.Set(key, sol)
	return sol, false, nil
}

func solve(catalog *models.Catalog, targets map[string]int, opts ...crafting.Option) (*models.Solution, error) {
	solver, err := crafting.NewSolver(catalog, targets, opts...)
	if err != nil {
		return nil, err
	}
	return solver.Solve()
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		http.Error(w, `{"kind":"internal","error":"encoding failed"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(append(body, '\n')); err != nil {
		slog.Error("Failed to write response", "error", err)
	}
}

func respondPlanError(w http.ResponseWriter, r *http.Request, err error) {
	status, body := converter.ErrorToResponse(err)
	if status >= http.StatusInternalServerError {
		logger.FromContext(r.Context()).Error("plan failed", "error", err)
	} else {
		logger.FromContext(r.Context()).Info("plan rejected", "kind", body.Kind, "error", err)
	}
	respondJSON(w, status, body)
}

// rateLimit rejects requests beyond the configured plan rate
func (s *server) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.limiter.Allow() {
			w.Header().Set("Retry-After", "1")
			respondJSON(w, http.StatusTooManyRequests, &converter.ErrorResponse{
				Kind:  converter.KindRateLimited,
				Error: "too many plan requests",
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// loggingMiddleware gives each request a run id and logs its outcome
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/healthz") || strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		runID := logger.NewRunID()
		ctx := logger.WithRunID(r.Context(), runID)
		w.Header().Set("X-Run-ID", runID)

		rw := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rw, r.WithContext(ctx))

		logger.FromContext(ctx).Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.status,
			"duration", time.Since(start))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rw *statusRecorder) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}
