// SPDX-License-Identifier: MIT

package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/katalvlaran/algoviz/builder"
	"github.com/katalvlaran/algoviz/core"
	"github.com/katalvlaran/algoviz/kruskal"
)

// traceResponse is the body of POST /api/kruskal.
type traceResponse struct {
	Steps       []kruskal.Step  `json:"steps"`
	Summary     kruskal.Summary `json:"summary"`
	Forest      []kruskal.Edge  `json:"forest"`
	TotalWeight int64           `json:"totalWeight"`
	Components  int             `json:"components"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// handleKruskal decodes a graph document and returns its trace.
// An optional ?tieBreak= overrides the configured tie-break.
func (s *Server) handleKruskal(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes))
	if err != nil {
		s.metrics.traces.WithLabelValues(resultInvalid).Inc()
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			writeError(w, s.log, http.StatusRequestEntityTooLarge, fmt.Errorf("body exceeds %d bytes", tooBig.Limit))
			return
		}
		writeError(w, s.log, http.StatusBadRequest, err)
		return
	}

	tb := s.tieBreak
	if q := r.URL.Query().Get("tieBreak"); q != "" {
		if tb, err = kruskal.ParseTieBreak(q); err != nil {
			s.metrics.traces.WithLabelValues(resultInvalid).Inc()
			writeError(w, s.log, http.StatusBadRequest, err)
			return
		}
	}

	g, err := core.Decode(body)
	if err != nil {
		s.metrics.traces.WithLabelValues(resultInvalid).Inc()
		writeError(w, s.log, http.StatusBadRequest, err)
		return
	}
	if s.cfg.Strict {
		if err := core.Validate(g); err != nil {
			s.metrics.traces.WithLabelValues(resultInvalid).Inc()
			writeError(w, s.log, http.StatusUnprocessableEntity, err)
			return
		}
	}

	res, err := kruskal.Run(g, kruskal.WithTieBreak(tb))
	if err != nil {
		// Only precondition violations of the input reach here.
		s.metrics.traces.WithLabelValues(resultError).Inc()
		writeError(w, s.log, http.StatusUnprocessableEntity, err)
		return
	}
	s.metrics.traces.WithLabelValues(resultOK).Inc()
	s.metrics.traceEdges.Observe(float64(len(res.Steps) / 2))

	writeJSON(w, s.log, http.StatusOK, traceResponse{
		Steps:       res.Steps,
		Summary:     kruskal.Summarize(res.Steps),
		Forest:      res.Forest,
		TotalWeight: res.TotalWeight,
		Components:  res.Components,
	})
}

// handleRandom returns a random connected graph document. Query parameters
// nodes, extra, maxWeight and seed default to the configuration (seed to the
// clock); the seed used is echoed in the X-Seed header.
func (s *Server) handleRandom(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	nodes, err := intParam(q.Get("nodes"), int64(s.cfg.Random.Nodes))
	if err != nil {
		writeError(w, s.log, http.StatusBadRequest, fmt.Errorf("nodes: %w", err))
		return
	}
	extra, err := intParam(q.Get("extra"), int64(s.cfg.Random.Extra))
	if err != nil {
		writeError(w, s.log, http.StatusBadRequest, fmt.Errorf("extra: %w", err))
		return
	}
	maxWeight, err := intParam(q.Get("maxWeight"), s.cfg.Random.MaxWeight)
	if err != nil {
		writeError(w, s.log, http.StatusBadRequest, fmt.Errorf("maxWeight: %w", err))
		return
	}
	seed, err := intParam(q.Get("seed"), s.now().UnixNano())
	if err != nil {
		writeError(w, s.log, http.StatusBadRequest, fmt.Errorf("seed: %w", err))
		return
	}

	g, err := builder.RandomConnected(int(nodes), int(extra),
		builder.WithSeed(seed),
		builder.WithWeightRange(builder.DefaultMinWeight, maxWeight),
	)
	if err != nil {
		writeError(w, s.log, http.StatusBadRequest, err)
		return
	}
	s.metrics.randomGraphs.Inc()

	w.Header().Set("X-Seed", strconv.FormatInt(seed, 10))
	writeJSON(w, s.log, http.StatusOK, g)
}

func intParam(raw string, def int64) (int64, error) {
	if raw == "" {
		return def, nil
	}

	return strconv.ParseInt(raw, 10, 64)
}

func writeJSON(w http.ResponseWriter, log *zap.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn("encode response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, log *zap.Logger, status int, err error) {
	log.Debug("request rejected", zap.Int("status", status), zap.Error(err))
	writeJSON(w, log, status, errorResponse{Error: err.Error()})
}
