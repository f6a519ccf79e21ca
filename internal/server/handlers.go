package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/abhisek/itemizer/internal/classify"
	"github.com/abhisek/itemizer/internal/extract"
	"github.com/abhisek/itemizer/internal/ingest"
	"github.com/abhisek/itemizer/internal/payload"
	"github.com/abhisek/itemizer/internal/store"
	"github.com/abhisek/itemizer/internal/taxonomy"
)

// maxBatchItems bounds the number of entries in one batch request.
const maxBatchItems = 100

type batchRequest struct {
	Items []ingest.Request `json:"items"`
}

type batchEntry struct {
	Index          int              `json:"index"`
	Classification *classify.Result `json:"classification,omitempty"`
	Extracted      *extract.Content `json:"extracted,omitempty"`
	Error          string           `json:"error,omitempty"`
}

type saveRequest struct {
	Content string `json:"content"`
	HTML    bool   `json:"html,omitempty"`
	Approve bool   `json:"approve,omitempty"`
}

type saveResponse struct {
	Item           *store.Item      `json:"item"`
	Classification *classify.Result `json:"classification"`
	Extracted      *extract.Content `json:"extracted"`
}

type reviewRequest struct {
	Note string `json:"note"`
}

func (s *Server) handleClassify(w http.ResponseWriter, r *http.Request) {
	var req ingest.Request
	if !s.decode(w, r, payload.ClassifyRequestSchema, s.bodyLimit(1), &req) {
		return
	}
	if !s.checkSize(w, req.Content) {
		return
	}

	out, err := s.svc.Process(r.Context(), req)
	if err != nil {
		s.writeProcessError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleBatch(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if !s.decode(w, r, payload.BatchRequestSchema, s.bodyLimit(maxBatchItems), &req) {
		return
	}
	if len(req.Items) > maxBatchItems {
		writeError(w, http.StatusRequestEntityTooLarge, fmt.Errorf("batch has %d items, limit is %d", len(req.Items), maxBatchItems))
		return
	}
	for _, it := range req.Items {
		if !s.checkSize(w, it.Content) {
			return
		}
	}

	results := s.svc.ProcessBatch(r.Context(), req.Items)
	entries := make([]batchEntry, len(results))
	for i, res := range results {
		entries[i] = batchEntry{Index: res.Index}
		if res.Err != nil {
			entries[i].Error = res.Err.Error()
			continue
		}
		entries[i].Classification = res.Outcome.Classification
		entries[i].Extracted = res.Outcome.Extracted
	}
	writeJSON(w, http.StatusOK, map[string]any{"results": entries})
}

func (s *Server) handleTaxonomy(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"skills": taxonomy.Hierarchy()})
}

func (s *Server) handleSaveItem(w http.ResponseWriter, r *http.Request) {
	if !s.requireItems(w) {
		return
	}
	var req saveRequest
	if !s.decode(w, r, payload.SaveRequestSchema, s.bodyLimit(1), &req) {
		return
	}
	if !s.checkSize(w, req.Content) {
		return
	}

	item, out, err := s.svc.Save(r.Context(), ingest.Request{Content: req.Content, HTML: req.HTML}, req.Approve)
	if err != nil {
		s.writeProcessError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, saveResponse{
		Item:           item,
		Classification: out.Classification,
		Extracted:      out.Extracted,
	})
}

func (s *Server) handleListItems(w http.ResponseWriter, r *http.Request) {
	if !s.requireItems(w) {
		return
	}

	q := r.URL.Query()
	var opts store.QueryOpts
	if v := q.Get("status"); v != "" {
		st, ok := store.ParseStatus(v)
		if !ok {
			writeError(w, http.StatusBadRequest, fmt.Errorf("unknown status %q", v))
			return
		}
		opts.Status = st
	}
	if v := q.Get("skill"); v != "" {
		sk, ok := taxonomy.ParseSkill(v)
		if !ok {
			writeError(w, http.StatusBadRequest, fmt.Errorf("unknown skill %q", v))
			return
		}
		opts.Skill = sk
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, fmt.Errorf("invalid limit %q", v))
			return
		}
		opts.Limit = n
	}

	items, err := s.items.List(r.Context(), opts)
	if err != nil {
		s.writeInternal(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (s *Server) handleGetItem(w http.ResponseWriter, r *http.Request) {
	if !s.requireItems(w) {
		return
	}
	item, err := s.items.Get(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, err)
		return
	}
	if err != nil {
		s.writeInternal(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (s *Server) handleReview(status store.Status) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !s.requireItems(w) {
			return
		}
		id := chi.URLParam(r, "id")

		// The note is optional; an empty body is accepted.
		var req reviewRequest
		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 4096))
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		if len(body) > 0 {
			if err := json.Unmarshal(body, &req); err != nil {
				writeError(w, http.StatusBadRequest, fmt.Errorf("invalid JSON: %w", err))
				return
			}
		}

		if status == store.StatusApproved {
			err = s.svc.Approve(r.Context(), id, req.Note)
		} else {
			err = s.svc.Reject(r.Context(), id, req.Note)
		}
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, store.ErrNotFound)
			return
		}
		if err != nil {
			s.writeInternal(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"id": id, "status": string(status)})
	}
}

// bodyLimit is the request body cap for n content fields. JSON escaping
// can double a field's size.
func (s *Server) bodyLimit(n int) int64 {
	return int64(n) * (2*s.maxBytes + 1024)
}

// decode reads a body of at most limit bytes, validates it against schema
// and unmarshals it into dst. It writes the error response itself.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, schema *payload.Schema, limit int64, dst any) bool {
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, limit))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, err)
			return false
		}
		writeError(w, http.StatusBadRequest, err)
		return false
	}
	if err := payload.Decode(schema, raw, dst); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return false
	}
	return true
}

func (s *Server) checkSize(w http.ResponseWriter, content string) bool {
	if int64(len(content)) > s.maxBytes {
		writeError(w, http.StatusRequestEntityTooLarge,
			fmt.Errorf("content is %d bytes, limit is %d", len(content), s.maxBytes))
		return false
	}
	return true
}

func (s *Server) requireItems(w http.ResponseWriter) bool {
	if s.items == nil {
		writeError(w, http.StatusServiceUnavailable, ingest.ErrNoStore)
		return false
	}
	return true
}

func (s *Server) writeProcessError(w http.ResponseWriter, err error) {
	var invalid *payload.ErrInvalidPayload
	switch {
	case errors.Is(err, classify.ErrEmptyInput):
		writeError(w, http.StatusUnprocessableEntity, err)
	case errors.As(err, &invalid):
		s.logger.Error("extracted payload failed validation", zap.Error(err))
		writeError(w, http.StatusInternalServerError, err)
	case errors.Is(err, ingest.ErrNoStore):
		writeError(w, http.StatusServiceUnavailable, err)
	default:
		s.writeInternal(w, err)
	}
}

func (s *Server) writeInternal(w http.ResponseWriter, err error) {
	s.logger.Error("request failed", zap.Error(err))
	writeError(w, http.StatusInternalServerError, errors.New("internal error"))
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, err error) {
	writeJSON(w, code, map[string]string{"error": err.Error()})
}
