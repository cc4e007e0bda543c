package board

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/siamdraw/lotto-cli/pkg/glo"
	"github.com/siamdraw/lotto-cli/pkg/tipster"
)

type stubDraws struct {
	draw *glo.DrawResult
	err  error
}

func (s stubDraws) LatestDraw(context.Context) (*glo.DrawResult, error) {
	return s.draw, s.err
}

type stubGurus struct {
	roster []tipster.Guru
	err    error
}

func (s stubGurus) Roster(context.Context) ([]tipster.Guru, error) {
	return s.roster, s.err
}

var testDraw = glo.DrawResult{
	Date:       "16 สิงหาคม 2569",
	FirstPrize: "836483",
	FrontThree: []string{"154", "258"},
	RearThree:  []string{"465", "932"},
	RearTwo:    "57",
}

func TestSnapshotBothSucceed(t *testing.T) {
	b := New(
		stubDraws{draw: &testDraw},
		stubGurus{roster: []tipster.Guru{{Name: "อาจารย์หนู", Accuracy: 62.5}}},
	)

	snap := b.Snapshot(context.Background())
	assert.Equal(t, testDraw, snap.LatestDraw)
	assert.Len(t, snap.Gurus, 1)
}

func TestSnapshotDrawFailureIsSoft(t *testing.T) {
	b := New(
		stubDraws{err: errors.New("glo down")},
		stubGurus{roster: []tipster.Guru{{Name: "แม่น้ำหนึ่ง"}}},
	)

	snap := b.Snapshot(context.Background())
	assert.Equal(t, SentinelDraw, snap.LatestDraw)
	assert.Len(t, snap.Gurus, 1)
}

func TestSnapshotRosterFailureIsSoft(t *testing.T) {
	b := New(
		stubDraws{draw: &testDraw},
		stubGurus{err: errors.New("roster down")},
	)

	snap := b.Snapshot(context.Background())
	assert.Equal(t, testDraw, snap.LatestDraw)
	assert.NotNil(t, snap.Gurus)
	assert.Empty(t, snap.Gurus)
}

func TestSnapshotBothFail(t *testing.T) {
	b := New(
		stubDraws{err: errors.New("glo down")},
		stubGurus{err: errors.New("roster down")},
	)

	// Never panics, never errors: sentinel draw plus empty roster.
	snap := b.Snapshot(context.Background())
	assert.Equal(t, "------", snap.LatestDraw.FirstPrize)
	assert.Equal(t, "--", snap.LatestDraw.RearTwo)
	assert.Empty(t, snap.Gurus)
}
