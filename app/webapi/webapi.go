// Package webapi provides a web API for the spam check service.
package webapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/didip/tollbooth/v8"
	"github.com/didip/tollbooth/v8/limiter"
	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/routegroup"
	"github.com/go-playground/validator/v10"

	"github.com/umputun/nbspam/app/filter"
	"github.com/umputun/nbspam/app/storage"
	"github.com/umputun/nbspam/lib/spamcheck"
)

//go:generate moq --out mocks/filter.go --pkg mocks --with-resets --skip-ensure . Filter
//go:generate moq --out mocks/detections.go --pkg mocks --with-resets --skip-ensure . Detections

// authUser is the basic auth user name
const authUser = "nbspam"

// Server is a web API server.
type Server struct {
	Config
	validate *validator.Validate
}

// Config defines server parameters
type Config struct {
	Version    string     // version to show in /ping
	ListenAddr string     // listen address
	Filter     Filter     // spam filter
	Detections Detections // spam detections journal, optional
	AuthPasswd string     // basic auth password for user "nbspam", no auth if empty
	RateLimit  float64    // max requests per second per client ip, 0 for default
	Dbg        bool       // debug mode
}

// Filter is a spam filter interface.
type Filter interface {
	Check(req spamcheck.Request) spamcheck.Response
	Tokens(msg string) []string
	UpdateSpam(ctx context.Context, msg string) error
	UpdateHam(ctx context.Context, msg string) error
	RemoveSample(ctx context.Context, msg string) error
	Reload(ctx context.Context) error
	Stats() filter.Stats
	Samples(ctx context.Context, l storage.Label, s storage.Source) ([]string, error)
	CorpusStats(ctx context.Context) (*storage.CorpusStats, error)
	History(n int) []spamcheck.Check
}

// Detections is a journal of detected spam
type Detections interface {
	Read(ctx context.Context, limit int) ([]storage.Detection, error)
}

// NewServer creates a new web API server.
func NewServer(config Config) *Server {
	return &Server{Config: config, validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Run starts server and accepts requests checking for spam messages.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{Addr: s.ListenAddr, Handler: s.router(), ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout: 30 * time.Second, IdleTimeout: 30 * time.Second}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] failed to shutdown webapi server: %v", err)
		} else {
			log.Printf("[INFO] webapi server stopped")
		}
	}()

	log.Printf("[INFO] start webapi server on %s", s.ListenAddr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to run server: %w", err)
	}
	return nil
}

func (s *Server) router() http.Handler {
	rate := s.RateLimit
	if rate <= 0 {
		rate = 50
	}
	lmt := tollbooth.NewLimiter(rate, nil)
	lmt.SetIPLookup(limiter.IPLookup{Name: "RemoteAddr"})

	router := routegroup.New(http.NewServeMux())
	router.Use(rest.Recoverer(lgr.Default()), rest.Throttle(1000), rest.AppInfo("nbspam", "umputun", s.Version),
		rest.Ping, rest.SizeLimit(1024*1024))
	router.Use(func(next http.Handler) http.Handler { return tollbooth.LimitHandler(lmt, next) })

	api := router.Group()
	if s.AuthPasswd != "" {
		log.Printf("[INFO] basic auth enabled for webapi server")
		api.Use(rest.BasicAuthWithUserPasswd(authUser, s.AuthPasswd))
	} else {
		log.Printf("[WARN] basic auth disabled, access to webapi is not protected")
	}

	api.HandleFunc("POST /check", s.checkHandler)       // check a message for spam
	api.HandleFunc("POST /tokenize", s.tokenizeHandler) // show tokens of a message
	api.Mount("/update").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("POST /spam", s.updateSampleHandler(s.Filter.UpdateSpam)) // add spam sample
		r.HandleFunc("POST /ham", s.updateSampleHandler(s.Filter.UpdateHam))   // add ham sample
	})
	api.HandleFunc("POST /delete", s.deleteSampleHandler)  // delete a sample
	api.HandleFunc("PUT /samples", s.reloadSamplesHandler) // reload presets and retrain
	api.HandleFunc("GET /samples", s.samplesHandler)       // stored samples by label and source
	api.HandleFunc("GET /samples/stats", s.statsHandler)   // corpus and model stats
	api.HandleFunc("GET /history", s.historyHandler)       // recent checks
	if s.Detections != nil {
		api.HandleFunc("GET /detections", s.detectionsHandler) // journaled spam detections
	}
	return router
}

// checkHandler handles POST /check request.
// it gets message text from request body and returns spam status and probability.
func (s *Server) checkHandler(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeRequest(w, r)
	if !ok {
		return
	}
	resp := s.Filter.Check(req)
	if resp.Error != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		rest.RenderJSON(w, rest.JSON{"error": resp.Details, "details": resp.Error.Error()})
		return
	}
	rest.RenderJSON(w, rest.JSON{"spam": resp.Spam, "probability": resp.Probability, "details": resp.Details})
}

// tokenizeHandler handles POST /tokenize request
func (s *Server) tokenizeHandler(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeRequest(w, r)
	if !ok {
		return
	}
	rest.RenderJSON(w, rest.JSON{"tokens": s.Filter.Tokens(req.Msg)})
}

// updateSampleHandler handles POST /update/spam and /update/ham requests
func (s *Server) updateSampleHandler(updFn func(ctx context.Context, msg string) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := s.decodeRequest(w, r)
		if !ok {
			return
		}
		if err := updFn(r.Context(), req.Msg); err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			rest.RenderJSON(w, rest.JSON{"error": "can't update samples", "details": err.Error()})
			return
		}
		rest.RenderJSON(w, rest.JSON{"updated": true, "msg": req.Msg})
	}
}

// deleteSampleHandler handles POST /delete request
func (s *Server) deleteSampleHandler(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeRequest(w, r)
	if !ok {
		return
	}
	if err := s.Filter.RemoveSample(r.Context(), req.Msg); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		rest.RenderJSON(w, rest.JSON{"error": "can't delete sample", "details": err.Error()})
		return
	}
	rest.RenderJSON(w, rest.JSON{"deleted": true, "msg": req.Msg})
}

// reloadSamplesHandler handles PUT /samples request
func (s *Server) reloadSamplesHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.Filter.Reload(r.Context()); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		rest.RenderJSON(w, rest.JSON{"error": "can't reload samples", "details": err.Error()})
		return
	}
	rest.RenderJSON(w, rest.JSON{"reloaded": true, "model": s.Filter.Stats()})
}

// statsHandler handles GET /samples/stats request
func (s *Server) statsHandler(w http.ResponseWriter, r *http.Request) {
	cs, err := s.Filter.CorpusStats(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		rest.RenderJSON(w, rest.JSON{"error": "can't get corpus stats", "details": err.Error()})
		return
	}
	rest.RenderJSON(w, rest.JSON{"model": s.Filter.Stats(), "corpus": cs})
}

// samplesHandler handles GET /samples?label=spam&source=user request, source defaults to "any"
func (s *Server) samplesHandler(w http.ResponseWriter, r *http.Request) {
	label := storage.Label(r.URL.Query().Get("label"))
	source := storage.SourceAny
	if v := r.URL.Query().Get("source"); v != "" {
		source = storage.Source(v)
	}
	for _, err := range []error{label.Validate(), source.Validate()} {
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			rest.RenderJSON(w, rest.JSON{"error": "invalid request", "details": err.Error()})
			return
		}
	}

	samples, err := s.Filter.Samples(r.Context(), label, source)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		rest.RenderJSON(w, rest.JSON{"error": "can't get samples", "details": err.Error()})
		return
	}
	if samples == nil {
		samples = []string{}
	}
	rest.RenderJSON(w, rest.JSON{"label": label, "source": source, "samples": samples})
}

// historyHandler handles GET /history?limit=N request, default limit is 100
func (s *Server) historyHandler(w http.ResponseWriter, r *http.Request) {
	limit, ok := s.limitParam(w, r)
	if !ok {
		return
	}
	rest.RenderJSON(w, rest.JSON{"checks": s.Filter.History(limit)})
}

// detectionsHandler handles GET /detections?limit=N request, newest first
func (s *Server) detectionsHandler(w http.ResponseWriter, r *http.Request) {
	limit, ok := s.limitParam(w, r)
	if !ok {
		return
	}
	res, err := s.Detections.Read(r.Context(), limit)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		rest.RenderJSON(w, rest.JSON{"error": "can't read detections", "details": err.Error()})
		return
	}
	if res == nil {
		res = []storage.Detection{}
	}
	rest.RenderJSON(w, rest.JSON{"detections": res})
}

// limitParam gets positive "limit" query parameter, 100 if not set. Renders 400 on invalid value.
func (s *Server) limitParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	v := r.URL.Query().Get("limit")
	if v == "" {
		return 100, true
	}
	l, err := strconv.Atoi(v)
	if err != nil || l < 1 {
		w.WriteHeader(http.StatusBadRequest)
		rest.RenderJSON(w, rest.JSON{"error": "invalid limit", "details": fmt.Sprintf("limit %q", v)})
		return 0, false
	}
	return l, true
}

// decodeRequest decodes and validates the request body, renders 400 on failure
func (s *Server) decodeRequest(w http.ResponseWriter, r *http.Request) (spamcheck.Request, bool) {
	req := spamcheck.Request{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		rest.RenderJSON(w, rest.JSON{"error": "can't decode request", "details": err.Error()})
		log.Printf("[WARN] can't decode request: %v", err)
		return req, false
	}
	if err := s.validate.Struct(req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		rest.RenderJSON(w, rest.JSON{"error": "invalid request", "details": err.Error()})
		return req, false
	}
	return req, true
}
