// Package ingest coordinates the content pipeline: normalize, classify,
// extract, validate and optionally persist for review.
package ingest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/abhisek/itemizer/internal/classify"
	"github.com/abhisek/itemizer/internal/extract"
	"github.com/abhisek/itemizer/internal/normalize"
	"github.com/abhisek/itemizer/internal/payload"
	"github.com/abhisek/itemizer/internal/store"
)

// ErrNoStore is returned by persistence methods when the service was built
// without an item repository.
var ErrNoStore = errors.New("no item store configured")

// Options configures a Service.
type Options struct {
	Extract extract.Config

	// Concurrency bounds ProcessBatch. Default: 4.
	Concurrency int

	// AutoApprove stores results that do not need review as approved.
	// Low-confidence results always wait for an explicit approval.
	AutoApprove bool

	Items  store.ItemRepo // optional
	Logger *zap.Logger    // optional
}

// Request is one block of content to process.
type Request struct {
	Content string `json:"content"`
	HTML    bool   `json:"html,omitempty"`
}

// Outcome is the processed form of a Request.
type Outcome struct {
	Classification *classify.Result `json:"classification"`
	Extracted      *extract.Content `json:"extracted"`

	// Content is the normalized text the pipeline ran on.
	Content string `json:"-"`
	// Payload is Extracted as validated JSON.
	Payload json.RawMessage `json:"-"`
}

// Service runs the pipeline. It is safe for concurrent use.
type Service struct {
	extractor   *extract.Extractor
	items       store.ItemRepo
	logger      *zap.Logger
	concurrency int
	autoApprove bool
}

// NewService creates a pipeline service.
func NewService(opts Options) *Service {
	s := &Service{
		extractor:   extract.New(opts.Extract),
		items:       opts.Items,
		logger:      opts.Logger,
		concurrency: opts.Concurrency,
		autoApprove: opts.AutoApprove,
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.concurrency <= 0 {
		s.concurrency = 4
	}
	return s
}

// Process normalizes, classifies and extracts one request and validates
// the extracted payload.
func (s *Service) Process(ctx context.Context, req Request) (*Outcome, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	text, err := normalize.Content(req.Content, req.HTML)
	if err != nil {
		return nil, fmt.Errorf("normalize: %w", err)
	}

	result, err := classify.Classify(text)
	if err != nil {
		return nil, err
	}

	content, err := s.extractor.ExtractResult(text, result)
	if err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}

	raw, err := payload.ValidateValue(payload.ContentSchema, content)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("content classified",
		zap.String("skill", string(result.Skill)),
		zap.String("item_type", string(result.ItemType)),
		zap.String("confidence", string(result.Confidence)),
		zap.String("rule", result.Rule),
		zap.Int("questions", len(content.Questions)),
		zap.Int("blanks", len(content.Blanks)),
	)
	if result.NeedsReview() {
		s.logger.Info("low confidence classification", zap.String("reason", result.Reason))
	}

	return &Outcome{
		Classification: result,
		Extracted:      content,
		Content:        text,
		Payload:        raw,
	}, nil
}

// Save processes req and stores the outcome. The item is approved when
// approve is set, or when auto-approval is on and the result does not
// need review; otherwise it waits in pending review.
func (s *Service) Save(ctx context.Context, req Request, approve bool) (*store.Item, *Outcome, error) {
	if s.items == nil {
		return nil, nil, ErrNoStore
	}

	out, err := s.Process(ctx, req)
	if err != nil {
		return nil, nil, err
	}

	r := out.Classification
	status := store.StatusPendingReview
	if approve || (s.autoApprove && !r.NeedsReview()) {
		status = store.StatusApproved
	}

	item := &store.Item{
		Skill:      r.Skill,
		Module:     r.Module,
		ItemType:   r.ItemType,
		Category:   r.Category,
		Confidence: r.Confidence,
		Reason:     r.Reason,
		Content:    out.Content,
		Extracted:  out.Payload,
		Status:     status,
	}
	if err := s.items.Save(ctx, item); err != nil {
		return nil, nil, fmt.Errorf("save item: %w", err)
	}

	s.logger.Info("item saved",
		zap.String("id", item.ID),
		zap.String("item_type", string(item.ItemType)),
		zap.String("status", string(item.Status)),
	)
	return item, out, nil
}

// Approve marks a stored item approved.
func (s *Service) Approve(ctx context.Context, id, note string) error {
	return s.review(ctx, id, store.StatusApproved, note)
}

// Reject marks a stored item rejected.
func (s *Service) Reject(ctx context.Context, id, note string) error {
	return s.review(ctx, id, store.StatusRejected, note)
}

func (s *Service) review(ctx context.Context, id string, status store.Status, note string) error {
	if s.items == nil {
		return ErrNoStore
	}
	if err := s.items.SetStatus(ctx, id, status, note); err != nil {
		return fmt.Errorf("review %s: %w", id, err)
	}
	s.logger.Info("item reviewed", zap.String("id", id), zap.String("status", string(status)))
	return nil
}

// BatchResult is the outcome of one batch entry. Exactly one of Outcome
// and Err is set.
type BatchResult struct {
	Index   int
	Outcome *Outcome
	Err     error
}

// ProcessBatch processes reqs with bounded concurrency. Results are in
// input order. A failing entry records its error and never stops the
// others; a cancelled ctx fails the entries not yet started.
func (s *Service) ProcessBatch(ctx context.Context, reqs []Request) []BatchResult {
	results := make([]BatchResult, len(reqs))

	var g errgroup.Group
	g.SetLimit(s.concurrency)
	for i, req := range reqs {
		g.Go(func() error {
			out, err := s.Process(ctx, req)
			results[i] = BatchResult{Index: i, Outcome: out, Err: err}
			if err != nil {
				s.logger.Warn("batch entry failed", zap.Int("index", i), zap.Error(err))
			}
			return nil
		})
	}
	_ = g.Wait()

	return results
}
