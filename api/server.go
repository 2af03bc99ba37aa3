// Package api exposes the scenario calculator, candidate list and
// preferences as JSON over HTTP.
package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/rustyeddy/indexpro/journal"
	"github.com/rustyeddy/indexpro/market"
	"github.com/rustyeddy/indexpro/prefs"
	"github.com/rustyeddy/indexpro/risk"
	"github.com/rustyeddy/indexpro/scenario"
)

// RunLister is implemented by journals that can be queried.
type RunLister interface {
	Recent(ctx context.Context, n int) ([]journal.Record, error)
}

type Server struct {
	Calc       *scenario.Calculator
	Candidates market.Source
	Prefs      *prefs.Service
	Journal    journal.Journal // optional
	Log        zerolog.Logger

	now func() time.Time
}

func (s *Server) clock() time.Time {
	if s.now != nil {
		return s.now()
	}
	return time.Now()
}

// Routes builds the router.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(requestLogger(s.Log))
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		s.respond(w, r, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/scenario", s.handleScenario)

		r.Get("/candidates", s.handleListCandidates)
		r.Get("/candidates/{symbol}", s.handleGetCandidate)
		r.Post("/candidates/{symbol}/scenario", s.handleCandidateScenario)

		r.Get("/prefs", s.handleGetPrefs)
		r.Put("/prefs", s.handlePutPrefs)
		r.Delete("/prefs", s.handleDeletePrefs)

		r.Get("/runs", s.handleRecentRuns)
	})

	return r
}

func (s *Server) handleScenario(w http.ResponseWriter, r *http.Request) {
	var in scenario.Input
	if err := decode(w, r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "decode input: "+err.Error())
		return
	}
	s.compute(w, r, "", in)
}

type candidateScenarioRequest struct {
	ActiveBankroll  float64        `json:"activeBankroll"`
	ConvictionLevel int            `json:"convictionLevel"`
	RiskTolerance   risk.Tolerance `json:"riskTolerance"`
}

func (s *Server) handleCandidateScenario(w http.ResponseWriter, r *http.Request) {
	c, ok := s.candidate(w, r)
	if !ok {
		return
	}
	var req candidateScenarioRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "decode input: "+err.Error())
		return
	}
	s.compute(w, r, c.Symbol, c.ScenarioInput(req.ActiveBankroll, req.ConvictionLevel, req.RiskTolerance))
}

func (s *Server) compute(w http.ResponseWriter, r *http.Request, symbol string, in scenario.Input) {
	out, err := s.Calc.Calculate(in)
	if err != nil {
		if errors.Is(err, scenario.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.Log.Error().Err(err).Msg("calculate scenario")
		writeError(w, http.StatusInternalServerError, "calculation failed")
		return
	}

	if s.Journal != nil {
		rec := journal.NewRecord(s.clock(), symbol, in, out)
		if err := s.Journal.Record(r.Context(), rec); err != nil {
			s.Log.Warn().Err(err).Str("run_id", rec.ID).Msg("journal scenario")
		} else {
			w.Header().Set("X-Run-ID", rec.ID)
		}
	}

	s.respond(w, r, http.StatusOK, out)
}

func (s *Server) candidate(w http.ResponseWriter, r *http.Request) (market.Candidate, bool) {
	c, err := s.Candidates.Get(r.Context(), chi.URLParam(r, "symbol"))
	if err != nil {
		if errors.Is(err, market.ErrNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return market.Candidate{}, false
		}
		s.Log.Error().Err(err).Msg("get candidate")
		writeError(w, http.StatusInternalServerError, "candidate lookup failed")
		return market.Candidate{}, false
	}
	return c, true
}

func (s *Server) handleListCandidates(w http.ResponseWriter, r *http.Request) {
	cands, err := s.Candidates.List(r.Context())
	if err != nil {
		s.Log.Error().Err(err).Msg("list candidates")
		writeError(w, http.StatusInternalServerError, "candidate lookup failed")
		return
	}
	s.respond(w, r, http.StatusOK, market.Rank(cands, s.Calc.Policy()))
}

func (s *Server) handleGetCandidate(w http.ResponseWriter, r *http.Request) {
	c, ok := s.candidate(w, r)
	if !ok {
		return
	}
	ranked := market.Rank([]market.Candidate{c}, s.Calc.Policy())
	s.respond(w, r, http.StatusOK, ranked[0])
}

func (s *Server) handleGetPrefs(w http.ResponseWriter, r *http.Request) {
	p, err := s.Prefs.Load(r.Context())
	if err != nil {
		s.Log.Error().Err(err).Msg("load prefs")
		writeError(w, http.StatusInternalServerError, "load preferences failed")
		return
	}
	s.respond(w, r, http.StatusOK, p)
}

func (s *Server) handlePutPrefs(w http.ResponseWriter, r *http.Request) {
	var p prefs.Preferences
	if err := decode(w, r, &p); err != nil {
		writeError(w, http.StatusBadRequest, "decode preferences: "+err.Error())
		return
	}
	if p.ActiveBankroll < 0 {
		writeError(w, http.StatusBadRequest, "activeBankroll must be non-negative")
		return
	}
	if err := s.Prefs.SetRemember(r.Context(), p.Remember, p.ActiveBankroll); err != nil {
		s.Log.Error().Err(err).Msg("save prefs")
		writeError(w, http.StatusInternalServerError, "save preferences failed")
		return
	}
	s.handleGetPrefs(w, r)
}

func (s *Server) handleDeletePrefs(w http.ResponseWriter, r *http.Request) {
	if err := s.Prefs.Forget(r.Context()); err != nil {
		s.Log.Error().Err(err).Msg("forget prefs")
		writeError(w, http.StatusInternalServerError, "clear preferences failed")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleRecentRuns(w http.ResponseWriter, r *http.Request) {
	lister, ok := s.Journal.(RunLister)
	if !ok {
		writeError(w, http.StatusNotFound, "scenario journal is not enabled")
		return
	}

	n := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		var err error
		if n, err = strconv.Atoi(v); err != nil || n <= 0 || n > 500 {
			writeError(w, http.StatusBadRequest, "limit must be between 1 and 500")
			return
		}
	}

	recs, err := lister.Recent(r.Context(), n)
	if err != nil {
		s.Log.Error().Err(err).Msg("recent runs")
		writeError(w, http.StatusInternalServerError, "journal query failed")
		return
	}
	if recs == nil {
		recs = []journal.Record{}
	}
	s.respond(w, r, http.StatusOK, recs)
}

// ListenAndServe serves Routes on addr until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.Log.Info().Str("addr", addr).Msg("listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.Log.Info().Msg("shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}
