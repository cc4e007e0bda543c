// Package predict produces lottery number sets: locally at random, or by
// asking a text-generation endpoint under one of several personas and
// normalizing whatever comes back into the canonical record.
package predict

import (
	"context"
	"errors"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/siamdraw/lotto-cli/internal/model"
	"github.com/siamdraw/lotto-cli/pkg/gemini"
)

// Service shapes prediction requests for the completion endpoint and
// normalizes its responses. It performs exactly one endpoint call per
// Predict and never retries; retry policy belongs to the caller.
type Service struct {
	client gemini.Client
	model  string
	now    func() time.Time
}

// ServiceOption configures the service.
type ServiceOption func(*Service)

// WithClock overrides the timestamp source. Tests use this to pin GeneratedAt.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		s.now = now
	}
}

// NewService creates a prediction service on top of a completion client.
// model may be empty to use the client's default.
func NewService(client gemini.Client, model string, opts ...ServiceOption) *Service {
	s := &Service{
		client: client,
		model:  model,
		now:    time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Predict requests a number set for drawDate under the given mode. Random
// mode is generated locally and never reaches the endpoint; use RandomSet.
// Failures carry a Kind distinguishable via KindOf.
func (s *Service) Predict(ctx context.Context, mode model.Mode, drawDate string) (*model.NumberSet, error) {
	ps, ok := promptSpecs[mode]
	if !ok {
		return nil, &Error{Kind: KindUnreachable, Err: eris.Errorf("predict: mode %q has no prompt", mode)}
	}

	resp, err := s.client.GenerateContent(ctx, gemini.GenerateRequest{
		Model:     s.model,
		Prompt:    ps.prompt(drawDate),
		System:    ps.system,
		Schema:    responseSchema(),
		WebSearch: ps.webSearch,
	})
	if err != nil {
		kind := KindNetwork
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			kind = KindUnreachable
		}
		return nil, &Error{Kind: kind, Err: eris.Wrap(err, "predict: completion call")}
	}

	if resp.Text == "" {
		return nil, &Error{Kind: KindSchema, Err: eris.New("predict: endpoint returned an empty completion")}
	}

	set := normalizeResponse(resp.Text, mode, drawDate, s.now())

	zap.L().Info("prediction generated",
		zap.String("mode", string(mode)),
		zap.String("draw_date", drawDate),
		zap.String("first_prize", set.FirstPrize),
	)

	return set, nil
}
