// Package board assembles the informational panels shown next to generated
// numbers: the latest published draw and the guru roster. Both reads fail
// soft — a sentinel record or an empty roster — so display never blocks on a
// flaky upstream.
package board

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/siamdraw/lotto-cli/pkg/glo"
	"github.com/siamdraw/lotto-cli/pkg/tipster"
)

// SentinelDraw is displayed when the results service is unavailable.
var SentinelDraw = glo.DrawResult{
	Date:       "-",
	FirstPrize: "------",
	FrontThree: []string{"---", "---"},
	RearThree:  []string{"---", "---"},
	RearTwo:    "--",
}

// Board fetches the informational panels.
type Board struct {
	draws glo.Client
	gurus tipster.Client
}

// New creates a Board over the two read-only services.
func New(draws glo.Client, gurus tipster.Client) *Board {
	return &Board{draws: draws, gurus: gurus}
}

// Snapshot is the joined panel data.
type Snapshot struct {
	LatestDraw glo.DrawResult `json:"latest_draw"`
	Gurus      []tipster.Guru `json:"gurus"`
}

// Snapshot fetches both panels concurrently. Individual failures are logged
// and substituted, never surfaced.
func (b *Board) Snapshot(ctx context.Context) Snapshot {
	snap := Snapshot{
		LatestDraw: SentinelDraw,
		Gurus:      []tipster.Guru{},
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		draw, err := b.draws.LatestDraw(ctx)
		if err != nil {
			zap.L().Warn("board: latest draw lookup failed", zap.Error(err))
			return nil
		}
		snap.LatestDraw = *draw
		return nil
	})

	g.Go(func() error {
		roster, err := b.gurus.Roster(ctx)
		if err != nil {
			zap.L().Warn("board: guru roster lookup failed", zap.Error(err))
			return nil
		}
		snap.Gurus = roster
		return nil
	})

	_ = g.Wait()
	return snap
}
