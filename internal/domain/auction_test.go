package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveStatus(t *testing.T) {
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	end := start.Add(48 * time.Hour)

	tests := []struct {
		name   string
		status AuctionStatus
		now    time.Time
		want   AuctionStatus
	}{
		{"before start", StatusActive, start.Add(-time.Minute), StatusUpcoming},
		{"at start", StatusUpcoming, start, StatusActive},
		{"between", StatusUpcoming, start.Add(time.Hour), StatusActive},
		{"at end", StatusActive, end, StatusEnded},
		{"after end", StatusActive, end.Add(time.Hour), StatusEnded},
		{"deleted is sticky", StatusDeleted, start.Add(time.Hour), StatusDeleted},
		{"pending is sticky", StatusPending, start.Add(time.Hour), StatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Auction{Status: tt.status, StartDate: start, EndDate: end}
			assert.Equal(t, tt.want, a.DeriveStatus(tt.now))
		})
	}
}

func TestApplyBidRecomputesDerivedFields(t *testing.T) {
	now := time.Now()
	a := &Auction{
		CurrentBid: decimal.NewFromInt(100),
	}

	bid := a.ApplyBid("bidder-1", decimal.NewFromInt(150), now)

	require.Len(t, a.Bids, 1)
	assert.Equal(t, "bidder-1", a.HighestBidderID)
	assert.True(t, a.CurrentBid.Equal(decimal.NewFromInt(150)))
	assert.Equal(t, "bidder-1", bid.BidderID)
	assert.Equal(t, now, bid.Timestamp)

	a.ApplyBid("bidder-2", decimal.NewFromInt(175), now.Add(time.Second))

	require.Len(t, a.Bids, 2)
	assert.Equal(t, "bidder-2", a.HighestBidderID)
	assert.True(t, a.CurrentBid.Equal(decimal.NewFromInt(175)))
	// Ledger is append-only: the first bid is untouched.
	assert.Equal(t, "bidder-1", a.Bids[0].BidderID)
}

func TestFloorPrice(t *testing.T) {
	minimum := decimal.NewFromInt(500)
	reserve := decimal.NewFromInt(300)

	a := &Auction{MinimumPrice: &minimum, ReservePrice: &reserve}
	assert.True(t, a.FloorPrice().Equal(minimum), "minimum price takes precedence")

	a = &Auction{ReservePrice: &reserve}
	assert.True(t, a.FloorPrice().Equal(reserve))

	a = &Auction{}
	assert.True(t, a.FloorPrice().IsZero())
}
