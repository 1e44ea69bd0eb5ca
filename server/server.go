package server

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/phantomkit/dataset"
	"github.com/katalvlaran/phantomkit/design"
	"github.com/katalvlaran/phantomkit/sample"
)

const (
	defaultCurvePoints = 300
	maxCurvePoints     = 5000
)

// Loader fetches the raw dataset for a (re)load.
type Loader func(ctx context.Context) ([]sample.Sample, error)

// Options configures New. Zero values are usable: no reload, no admin
// endpoint, discarded logs, a private metrics registry.
type Options struct {
	AdminToken   string
	Loader       Loader
	StoreOptions []sample.Option
	Logger       *slog.Logger
	Registry     *prometheus.Registry
}

// Server serves design queries from a design.Service.
type Server struct {
	svc        *design.Service
	load       Loader
	storeOpts  []sample.Option
	adminToken string
	log        *slog.Logger
	registry   *prometheus.Registry
	metrics    *Metrics
}

// New wires a server around svc.
func New(svc *design.Service, opts Options) *Server {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	reg := opts.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	s := &Server{
		svc:        svc,
		load:       opts.Loader,
		storeOpts:  opts.StoreOptions,
		adminToken: opts.AdminToken,
		log:        log,
		registry:   reg,
		metrics:    NewMetrics(reg),
	}
	if d := svc.Current(); d != nil {
		s.metrics.observeSnapshot(d)
	}

	return s
}

// Handler returns the routed, logged HTTP handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /v1/design", s.handleDesign)
	mux.HandleFunc("GET /v1/families", s.handleFamilies)
	mux.HandleFunc("GET /v1/families/{family}/curve", s.handleCurve)
	mux.HandleFunc("POST /v1/reload", s.adminOnly(s.handleReload))
	mux.Handle("GET /metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	return withRequestLog(s.log, mux)
}

// Reload fetches the dataset and swaps in a new snapshot. Integrity
// errors leave the current snapshot serving.
func (s *Server) Reload(ctx context.Context) (*design.Designer, error) {
	if s.load == nil {
		return nil, errors.New("server: no dataset loader configured")
	}
	samples, err := s.load(ctx)
	if err != nil {
		s.metrics.reloads.WithLabelValues("error").Inc()
		return nil, err
	}
	d, err := s.svc.Reload(samples, s.storeOpts...)
	if err != nil {
		s.metrics.reloads.WithLabelValues("error").Inc()
		return nil, err
	}
	s.metrics.reloads.WithLabelValues("ok").Inc()
	s.metrics.observeSnapshot(d)
	s.log.Info("dataset loaded", "samples", d.Samples(), "families", len(d.Families()), "excluded", len(d.Excluded()))

	return d, nil
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	d := s.svc.Current()
	if d == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]any{"status": "no dataset"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "samples": d.Samples()})
}

func (s *Server) handleDesign(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	raw := q.Get("modulus")
	target, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "modulus must be a number, got "+strconv.Quote(raw))
		return
	}
	family := sample.Family(strings.TrimSpace(q.Get("family")))
	mode := "auto"
	if family != "" {
		mode = "family"
	}

	start := time.Now()
	var out design.Outcome
	if family == "" {
		out, err = s.svc.Design(target)
	} else {
		out, err = s.svc.DesignFamily(family, target)
	}
	s.metrics.latency.WithLabelValues(mode).Observe(time.Since(start).Seconds())

	switch {
	case errors.Is(err, design.ErrInvalidTarget), errors.Is(err, design.ErrUnknownFamily):
		s.metrics.queries.WithLabelValues(mode, "invalid").Inc()
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, design.ErrNoDesigner):
		s.metrics.queries.WithLabelValues(mode, "error").Inc()
		writeError(w, http.StatusServiceUnavailable, err.Error())
	case err != nil:
		s.metrics.queries.WithLabelValues(mode, "error").Inc()
		writeError(w, http.StatusInternalServerError, err.Error())
	case out.Recipe != nil:
		s.metrics.queries.WithLabelValues(mode, "recipe").Inc()
		writeJSON(w, http.StatusOK, designResponse{Outcome: out, Instruction: out.Recipe.Instruction()})
	default:
		s.metrics.queries.WithLabelValues(mode, "gap").Inc()
		writeJSON(w, http.StatusOK, designResponse{Outcome: out})
	}
}

type designResponse struct {
	design.Outcome
	Instruction string `json:"instruction,omitempty"`
}

func (s *Server) handleFamilies(w http.ResponseWriter, _ *http.Request) {
	d := s.svc.Current()
	if d == nil {
		writeError(w, http.StatusServiceUnavailable, design.ErrNoDesigner.Error())
		return
	}
	writeJSON(w, http.StatusOK, d.Families())
}

type curvePoint struct {
	Concentration float64 `json:"thinner_concentration"`
	Modulus       float64 `json:"elastic_modulus_kpa"`
}

type curveResponse struct {
	Family  sample.Family   `json:"family"`
	Samples []sample.Sample `json:"samples"`
	Curve   []curvePoint    `json:"curve"`
}

func (s *Server) handleCurve(w http.ResponseWriter, r *http.Request) {
	d := s.svc.Current()
	if d == nil {
		writeError(w, http.StatusServiceUnavailable, design.ErrNoDesigner.Error())
		return
	}
	family := sample.Family(r.PathValue("family"))
	c, ok := d.Curve(family)
	if !ok {
		writeError(w, http.StatusNotFound, "no validated curve for family "+strconv.Quote(string(family)))
		return
	}

	n := defaultCurvePoints
	if raw := r.URL.Query().Get("points"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 2 || v > maxCurvePoints {
			writeError(w, http.StatusBadRequest, "points must be an integer in [2, 5000]")
			return
		}
		n = v
	}
	xs, ys := c.Grid(n)
	pts := make([]curvePoint, len(xs))
	for i := range xs {
		pts[i] = curvePoint{Concentration: xs[i], Modulus: ys[i]}
	}
	writeJSON(w, http.StatusOK, curveResponse{Family: family, Samples: c.Samples(), Curve: pts})
}

func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	d, err := s.Reload(r.Context())
	if err != nil {
		s.log.Error("dataset reload failed", "error", err)
		writeError(w, reloadStatus(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"samples":  d.Samples(),
		"families": d.Families(),
	})
}

// reloadStatus maps a reload failure to a status code: 422 when the data
// was fetched but rejected, 502 when the source could not be read.
func reloadStatus(err error) int {
	if errors.Is(err, sample.ErrDataIntegrity) || errors.Is(err, dataset.ErrBadTable) {
		return http.StatusUnprocessableEntity
	}

	return http.StatusBadGateway
}

// adminOnly guards POST endpoints with the bearer token.
func (s *Server) adminOnly(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.adminToken == "" {
			writeError(w, http.StatusForbidden, "admin endpoints disabled")
			return
		}
		got := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if subtle.ConstantTimeCompare([]byte(got), []byte(s.adminToken)) != 1 {
			writeError(w, http.StatusUnauthorized, "invalid admin token")
			return
		}
		next(w, r)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
