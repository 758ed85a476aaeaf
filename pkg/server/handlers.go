package server

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/hanoi/pkg/errors"
	"github.com/matzehuels/hanoi/pkg/httputil"
	hio "github.com/matzehuels/hanoi/pkg/io"
	"github.com/matzehuels/hanoi/pkg/pipeline"
)

// CacheHeader reports whether a response was served from the cache.
const CacheHeader = "X-Cache"

type verifyResponse struct {
	Valid   bool        `json:"valid"`
	Disks   int         `json:"disks,omitempty"`
	Moves   int         `json:"moves,omitempty"`
	Code    errors.Code `json:"code,omitempty"`
	Message string      `json:"message,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	opts, err := s.options(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	t, hit, err := s.runner.SolveWithCacheInfo(r.Context(), opts)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	w.Header().Set(CacheHeader, cacheStatus(hit))
	_ = httputil.WriteJSON(w, http.StatusOK, t)
}

func (s *Server) handleBoard(w http.ResponseWriter, r *http.Request) {
	opts, err := s.options(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	q := r.URL.Query()
	if raw := q.Get("step"); raw != "" {
		step, err := strconv.Atoi(raw)
		if err != nil {
			s.fail(w, r, errors.New(errors.ErrCodeInvalidInput, "invalid step: %s", raw))
			return
		}
		opts.Step = step
	}
	opts.Fill = q.Get("fill")
	opts.Base = q.Get("base")

	grid, hit, err := s.runner.BoardWithCacheInfo(r.Context(), opts)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set(CacheHeader, cacheStatus(hit))
	_, _ = w.Write([]byte(grid))
}

func (s *Server) handleVerify(w http.ResponseWriter, r *http.Request) {
	t, err := hio.ReadJSON(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err == nil && t.Disks > s.maxDisks {
		err = errors.New(errors.ErrCodeInvalidDiskCount, "disk count %d exceeds maximum of %d", t.Disks, s.maxDisks)
	}
	if err == nil {
		_, err = hio.Replay(t)
	}
	if err != nil {
		s.logger.Debug("transcript rejected", "err", err)
		body := httputil.Body(err)
		_ = httputil.WriteJSON(w, httputil.StatusFor(err), verifyResponse{Code: body.Code, Message: body.Message})
		return
	}
	_ = httputil.WriteJSON(w, http.StatusOK, verifyResponse{Valid: true, Disks: t.Disks, Moves: len(t.Moves)})
}

// options parses the {disks} path parameter.
func (s *Server) options(r *http.Request) (pipeline.Options, error) {
	n, err := errors.ParseDiskCount(chi.URLParam(r, "disks"))
	if err != nil {
		return pipeline.Options{}, err
	}
	return pipeline.Options{Disks: n, MaxDisks: s.maxDisks}, nil
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	if httputil.StatusFor(err) == http.StatusInternalServerError {
		s.logger.Error("request failed", "path", r.URL.Path, "request_id", RequestIDFromContext(r.Context()), "err", err)
	}
	_ = httputil.WriteError(w, err)
}

func cacheStatus(hit bool) string {
	if hit {
		return "hit"
	}
	return "miss"
}
