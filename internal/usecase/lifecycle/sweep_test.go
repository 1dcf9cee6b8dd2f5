package lifecycle

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openmazad/auction-service/internal/domain"
	"github.com/openmazad/auction-service/internal/infrastructure/inmem"
)

var testNow = time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)

type lifecycleFixture struct {
	uc       *DefaultLifecycleUsecase
	auctions *inmem.AuctionRepository
	winners  *inmem.WinnerRepository
	events   *inmem.EventRecorder
}

func newLifecycleFixture(t *testing.T) *lifecycleFixture {
	t.Helper()
	f := &lifecycleFixture{
		auctions: inmem.NewAuctionRepository(),
		winners:  inmem.NewWinnerRepository(),
		events:   inmem.NewEventRecorder(),
	}
	users := inmem.NewUserDirectory(
		&domain.User{ID: "seller", FullName: "Seller", Role: domain.RoleUser},
		&domain.User{ID: "alice", FullName: "Alice", Email: "alice@example.com", Role: domain.RoleUser},
		&domain.User{ID: "admin", FullName: "Admin", Role: domain.RoleAdmin},
	)
	f.uc = NewDefaultLifecycleUsecase(f.auctions, f.winners, users, f.events, nil)
	f.uc.Now = func() time.Time { return testNow }
	return f
}

func (f *lifecycleFixture) addExpired(t *testing.T, id, bidder string) *domain.Auction {
	t.Helper()
	auction := &domain.Auction{
		ID:          id,
		AuctionCode: "AUC-" + id,
		Type:        domain.TypeEnglish,
		SellerID:    "seller",
		Status:      domain.StatusActive,
		StartDate:   testNow.Add(-3 * time.Hour),
		EndDate:     testNow.Add(-time.Hour),
		CurrentBid:  decimal.NewFromInt(150),
	}
	if bidder != "" {
		auction.HighestBidderID = bidder
		auction.Bids = []domain.Bid{{BidderID: bidder, Amount: auction.CurrentBid, Timestamp: testNow.Add(-2 * time.Hour)}}
	}
	_, err := f.auctions.CreateAuction(auction)
	require.NoError(t, err)
	return auction
}

func TestSweepEndsExpiredAndRecordsWinner(t *testing.T) {
	f := newLifecycleFixture(t)
	f.addExpired(t, "a1", "alice")

	require.NoError(t, f.uc.SweepOnce(context.Background()))

	stored, err := f.auctions.GetAuctionByID("a1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusEnded, stored.Status)

	winner, err := f.winners.GetWinnerByAuctionID("a1")
	require.NoError(t, err)
	assert.Equal(t, "alice", winner.UserID)
	assert.Equal(t, "alice@example.com", winner.Email)
	assert.True(t, winner.Amount.Equal(decimal.NewFromInt(150)))
	assert.True(t, winner.Notified, "publish succeeded, flag must be set")

	require.Len(t, f.events.WinnerEvents, 1)
	assert.Equal(t, "a1", f.events.WinnerEvents[0].AuctionID)
}

func TestSweepEndsAuctionStoredAsUpcoming(t *testing.T) {
	f := newLifecycleFixture(t)

	// Created before its start date, so the row was persisted as upcoming
	// and nothing ever rewrote the status while the whole window elapsed.
	auction := &domain.Auction{
		ID:              "a1",
		AuctionCode:     "AUC-a1",
		Type:            domain.TypeEnglish,
		SellerID:        "seller",
		Status:          domain.StatusUpcoming,
		StartDate:       testNow.Add(-2 * time.Hour),
		EndDate:         testNow.Add(-time.Hour),
		CurrentBid:      decimal.NewFromInt(150),
		HighestBidderID: "alice",
		Bids: []domain.Bid{
			{BidderID: "alice", Amount: decimal.NewFromInt(150), Timestamp: testNow.Add(-90 * time.Minute)},
		},
	}
	_, err := f.auctions.CreateAuction(auction)
	require.NoError(t, err)

	require.NoError(t, f.uc.SweepOnce(context.Background()))

	stored, err := f.auctions.GetAuctionByID("a1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusEnded, stored.Status)

	winner, err := f.winners.GetWinnerByAuctionID("a1")
	require.NoError(t, err)
	assert.Equal(t, "alice", winner.UserID)
}

func TestSweepWithoutBidsEndsWithoutWinner(t *testing.T) {
	f := newLifecycleFixture(t)
	f.addExpired(t, "a1", "")

	require.NoError(t, f.uc.SweepOnce(context.Background()))

	stored, _ := f.auctions.GetAuctionByID("a1")
	assert.Equal(t, domain.StatusEnded, stored.Status)
	assert.Zero(t, f.winners.Len())
	assert.Empty(t, f.events.WinnerEvents)
}

func TestSweepIsIdempotent(t *testing.T) {
	f := newLifecycleFixture(t)
	f.addExpired(t, "a1", "alice")

	for i := 0; i < 3; i++ {
		require.NoError(t, f.uc.SweepOnce(context.Background()))
	}

	assert.Equal(t, 1, f.winners.Len())
	assert.Len(t, f.events.WinnerEvents, 1, "winner is announced exactly once")
}

func TestConcurrentSweepsRecordOneWinner(t *testing.T) {
	f := newLifecycleFixture(t)
	for _, id := range []string{"a1", "a2", "a3"} {
		f.addExpired(t, id, "alice")
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f.uc.SweepOnce(context.Background())
		}()
	}
	wg.Wait()

	assert.Equal(t, 3, f.winners.Len())
	assert.Len(t, f.events.WinnerEvents, 3)
}

func TestSweepSkipsStickyStatuses(t *testing.T) {
	f := newLifecycleFixture(t)
	auction := f.addExpired(t, "a1", "alice")

	// Deleted between the find and the completion.
	auction.Status = domain.StatusDeleted
	require.NoError(t, f.auctions.Update(auction))

	fresh, _ := f.auctions.GetAuctionByID("a1")
	require.NoError(t, f.uc.completeAuction(fresh))

	stored, _ := f.auctions.GetAuctionByID("a1")
	assert.Equal(t, domain.StatusDeleted, stored.Status)
	assert.Zero(t, f.winners.Len())
}

func TestSweepSurvivesNotifyFailure(t *testing.T) {
	f := newLifecycleFixture(t)
	f.addExpired(t, "a1", "alice")
	f.events.Err = assert.AnError

	require.NoError(t, f.uc.SweepOnce(context.Background()))

	winner, err := f.winners.GetWinnerByAuctionID("a1")
	require.NoError(t, err)
	assert.False(t, winner.Notified, "failed publish leaves the flag unset")
}

func TestForceEndSellerOnly(t *testing.T) {
	f := newLifecycleFixture(t)
	auction := &domain.Auction{
		ID: "a1", Type: domain.TypeEnglish, SellerID: "seller",
		Status:    domain.StatusActive,
		StartDate: testNow.Add(-time.Hour), EndDate: testNow.Add(time.Hour),
		CurrentBid: decimal.NewFromInt(200), HighestBidderID: "alice",
	}
	_, err := f.auctions.CreateAuction(auction)
	require.NoError(t, err)

	_, err = f.uc.ForceEnd(context.Background(), "a1", "alice")
	require.Error(t, err)
	assert.Equal(t, domain.ReasonNotSeller, domain.ReasonOf(err))

	ended, err := f.uc.ForceEnd(context.Background(), "a1", "seller")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusEnded, ended.Status)
	assert.Equal(t, testNow, ended.EndDate)

	winner, err := f.winners.GetWinnerByAuctionID("a1")
	require.NoError(t, err)
	assert.Equal(t, "alice", winner.UserID)

	// Ended auctions cannot be force-ended again.
	_, err = f.uc.ForceEnd(context.Background(), "a1", "seller")
	require.Error(t, err)
	assert.Equal(t, domain.ReasonNotActive, domain.ReasonOf(err))
}

func TestCancelAuction(t *testing.T) {
	f := newLifecycleFixture(t)
	auction := &domain.Auction{
		ID: "a1", Type: domain.TypeEnglish, SellerID: "seller",
		Status:    domain.StatusActive,
		StartDate: testNow.Add(-time.Hour), EndDate: testNow.Add(time.Hour),
	}
	_, err := f.auctions.CreateAuction(auction)
	require.NoError(t, err)

	_, err = f.uc.CancelAuction("a1", "alice")
	assert.Equal(t, domain.ReasonNotSeller, domain.ReasonOf(err))

	cancelled, err := f.uc.CancelAuction("a1", "seller")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, cancelled.Status)

	// An ended auction can no longer be cancelled.
	ended := &domain.Auction{
		ID: "a2", Type: domain.TypeEnglish, SellerID: "seller",
		Status:    domain.StatusActive,
		StartDate: testNow.Add(-3 * time.Hour), EndDate: testNow.Add(-time.Hour),
	}
	_, err = f.auctions.CreateAuction(ended)
	require.NoError(t, err)
	_, err = f.uc.CancelAuction("a2", "seller")
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindInvalidState))
}

func TestDeleteAuctionAdminOnly(t *testing.T) {
	f := newLifecycleFixture(t)
	auction := &domain.Auction{
		ID: "a1", Type: domain.TypeEnglish, SellerID: "seller",
		Status:    domain.StatusActive,
		StartDate: testNow.Add(-time.Hour), EndDate: testNow.Add(time.Hour),
	}
	_, err := f.auctions.CreateAuction(auction)
	require.NoError(t, err)

	_, err = f.uc.DeleteAuction("a1", "seller")
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindForbidden))

	deleted, err := f.uc.DeleteAuction("a1", "admin")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDeleted, deleted.Status)

	// Sticky: derivation never resurrects a deleted auction.
	stored, _ := f.auctions.GetAuctionByID("a1")
	assert.Equal(t, domain.StatusDeleted, stored.DeriveStatus(testNow))
}
