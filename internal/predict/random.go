package predict

import (
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/siamdraw/lotto-cli/internal/model"
)

// RandomOption configures local random generation.
type RandomOption func(*randomConfig)

type randomConfig struct {
	rng   *rand.Rand
	delay time.Duration
	now   func() time.Time
}

// WithSource replaces the entropy source. A seeded source makes the draw
// deterministic for tests.
func WithSource(rng *rand.Rand) RandomOption {
	return func(c *randomConfig) {
		c.rng = rng
	}
}

// WithRollDelay blocks for d before returning, purely so a consuming UI can
// animate a rolling state. Zero (the default) skips the delay.
func WithRollDelay(d time.Duration) RandomOption {
	return func(c *randomConfig) {
		c.delay = d
	}
}

func withRandomClock(now func() time.Time) RandomOption {
	return func(c *randomConfig) {
		c.now = now
	}
}

// RandomSet draws a number set locally: every digit position independent and
// uniform over 0–9. Reasoning and confidence stay unset; sources stay empty.
func RandomSet(drawDate string, opts ...RandomOption) *model.NumberSet {
	cfg := randomConfig{now: time.Now}
	for _, o := range opts {
		o(&cfg)
	}

	digits := func(n int) string {
		b := make([]byte, n)
		for i := range b {
			if cfg.rng != nil {
				b[i] = byte('0' + cfg.rng.IntN(10))
			} else {
				b[i] = byte('0' + rand.IntN(10))
			}
		}
		return string(b)
	}

	if cfg.delay > 0 {
		time.Sleep(cfg.delay)
	}

	return &model.NumberSet{
		ID:          uuid.NewString(),
		FirstPrize:  digits(6),
		FrontThree:  []string{digits(3), digits(3)},
		RearThree:   []string{digits(3), digits(3)},
		RearTwo:     digits(2),
		Source:      model.SourceRandom,
		DrawDate:    drawDate,
		Sources:     []string{},
		GeneratedAt: cfg.now(),
	}
}
