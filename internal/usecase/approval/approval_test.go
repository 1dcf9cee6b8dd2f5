package approval

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openmazad/auction-service/internal/domain"
	"github.com/openmazad/auction-service/internal/infrastructure/inmem"
)

var testNow = time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)

type approvalFixture struct {
	uc       *DefaultApprovalUsecase
	auctions *inmem.AuctionRepository
	requests *inmem.AuctionRequestRepository
}

func newApprovalFixture(t *testing.T) *approvalFixture {
	t.Helper()
	auctions := inmem.NewAuctionRepository()
	f := &approvalFixture{
		auctions: auctions,
		requests: inmem.NewAuctionRequestRepository(auctions),
	}
	users := inmem.NewUserDirectory(
		&domain.User{ID: "seller", Role: domain.RoleUser},
		&domain.User{ID: "admin", Role: domain.RoleAdmin},
	)
	f.uc = NewDefaultApprovalUsecase(f.requests, f.auctions, users, nil)
	f.uc.Now = func() time.Time { return testNow }
	return f
}

func validInput(auctionType string) *SubmitRequestInput {
	floor := decimal.NewFromInt(500)
	in := &SubmitRequestInput{
		SellerID:      "seller",
		Type:          auctionType,
		Title:         "Vintage clock",
		Description:   "Early 1900s wall clock",
		StartingPrice: decimal.NewFromInt(500),
		StartDate:     testNow.Add(-time.Hour),
		EndDate:       testNow.Add(24 * time.Hour),
	}
	if auctionType == "reserve" {
		in.MinimumPrice = &floor
	}
	return in
}

func TestSubmitRequestStagesReserveAuction(t *testing.T) {
	f := newApprovalFixture(t)

	req, err := f.uc.SubmitRequest(validInput("reserve"))
	require.NoError(t, err)
	assert.Equal(t, domain.ApprovalPending, req.ApprovalStatus)
	assert.True(t, strings.HasPrefix(req.AuctionCode, "AUC-"))
	assert.NotEmpty(t, req.ParticipationCode)
	assert.True(t, req.BidIncrement.Equal(decimal.NewFromInt(domain.DefaultBidIncrement)))
	assert.Empty(t, req.CreatedAuctionID, "no auction exists before approval")
}

func TestSubmitRequestRejectsNonReserve(t *testing.T) {
	f := newApprovalFixture(t)

	_, err := f.uc.SubmitRequest(validInput("english"))
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindInvalidArgument))
}

func TestSubmitRequestValidation(t *testing.T) {
	f := newApprovalFixture(t)

	in := validInput("reserve")
	in.EndDate = in.StartDate.Add(-time.Hour)
	_, err := f.uc.SubmitRequest(in)
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindInvalidArgument))

	in = validInput("reserve")
	in.Type = "blind"
	_, err = f.uc.SubmitRequest(in)
	require.Error(t, err)

	in = validInput("reserve")
	in.StartingPrice = decimal.NewFromInt(-5)
	_, err = f.uc.SubmitRequest(in)
	require.Error(t, err)
}

func TestCreateAuctionDirectForNonReserve(t *testing.T) {
	f := newApprovalFixture(t)

	auction, err := f.uc.CreateAuction(validInput("english"))
	require.NoError(t, err)
	assert.Equal(t, domain.StatusActive, auction.Status, "schedule already open at creation time")
	assert.True(t, auction.CurrentBid.Equal(auction.StartingPrice))
	assert.False(t, auction.NeedsApproval)

	stored, err := f.auctions.GetAuctionByID(auction.ID)
	require.NoError(t, err)
	assert.Equal(t, auction.AuctionCode, stored.AuctionCode)

	_, err = f.uc.CreateAuction(validInput("reserve"))
	require.Error(t, err, "reserve auctions must go through review")
}

func TestApprovePromotesRequest(t *testing.T) {
	f := newApprovalFixture(t)
	req, err := f.uc.SubmitRequest(validInput("reserve"))
	require.NoError(t, err)

	auction, err := f.uc.Approve(&ReviewRequestInput{RequestID: req.ID, AdminID: "admin"})
	require.NoError(t, err)
	assert.Equal(t, req.AuctionCode, auction.AuctionCode)
	assert.Equal(t, req.ParticipationCode, auction.ParticipationCode)
	assert.Equal(t, domain.ApprovalApproved, auction.ApprovalStatus)
	assert.Equal(t, domain.StatusActive, auction.Status)
	assert.True(t, auction.CurrentBid.Equal(req.StartingPrice))

	stored, err := f.requests.GetRequestByID(req.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ApprovalApproved, stored.ApprovalStatus)
	assert.Equal(t, auction.ID, stored.CreatedAuctionID)
	assert.Equal(t, "admin", stored.ReviewedBy)

	// A second approval is a conflict that names the auction.
	_, err = f.uc.Approve(&ReviewRequestInput{RequestID: req.ID, AdminID: "admin"})
	require.Error(t, err)
	assert.Equal(t, domain.ReasonAlreadyApproved, domain.ReasonOf(err))
}

func TestApproveReplayAfterPartialPromotion(t *testing.T) {
	f := newApprovalFixture(t)
	req, err := f.uc.SubmitRequest(validInput("reserve"))
	require.NoError(t, err)

	// Simulate an earlier attempt that created the auction but crashed
	// before flipping the request status.
	auction, err := f.uc.Approve(&ReviewRequestInput{RequestID: req.ID, AdminID: "admin"})
	require.NoError(t, err)
	stored, err := f.requests.GetRequestByID(req.ID)
	require.NoError(t, err)
	stored.ApprovalStatus = domain.ApprovalPending
	require.NoError(t, f.requests.UpdateRequest(stored))

	replayed, err := f.uc.Approve(&ReviewRequestInput{RequestID: req.ID, AdminID: "admin"})
	require.NoError(t, err)
	assert.Equal(t, auction.ID, replayed.ID, "replay returns the existing auction")

	final, err := f.requests.GetRequestByID(req.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ApprovalApproved, final.ApprovalStatus)
}

func TestApproveCodeConflict(t *testing.T) {
	f := newApprovalFixture(t)
	first, err := f.uc.SubmitRequest(validInput("reserve"))
	require.NoError(t, err)
	second, err := f.uc.SubmitRequest(validInput("reserve"))
	require.NoError(t, err)

	// Force the collision the random codes avoid.
	second.AuctionCode = first.AuctionCode
	require.NoError(t, f.requests.UpdateRequest(second))

	_, err = f.uc.Approve(&ReviewRequestInput{RequestID: first.ID, AdminID: "admin"})
	require.Error(t, err)
	assert.Equal(t, domain.ReasonCodeTaken, domain.ReasonOf(err))

	// Once the rival request is out of the running, approval goes through.
	_, err = f.uc.Reject(&ReviewRequestInput{RequestID: second.ID, AdminID: "admin", Notes: "duplicate listing"})
	require.NoError(t, err)
	_, err = f.uc.Approve(&ReviewRequestInput{RequestID: first.ID, AdminID: "admin"})
	require.NoError(t, err)
}

func TestReviewRequiresAdminRole(t *testing.T) {
	f := newApprovalFixture(t)
	req, err := f.uc.SubmitRequest(validInput("reserve"))
	require.NoError(t, err)

	_, err = f.uc.Approve(&ReviewRequestInput{RequestID: req.ID, AdminID: "seller"})
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindForbidden))

	_, err = f.uc.Reject(&ReviewRequestInput{RequestID: req.ID, AdminID: "seller", Notes: "not mine to judge"})
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindForbidden))

	stored, err := f.requests.GetRequestByID(req.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ApprovalPending, stored.ApprovalStatus, "refused reviews leave the request untouched")
}

func TestRejectRequest(t *testing.T) {
	f := newApprovalFixture(t)
	req, err := f.uc.SubmitRequest(validInput("reserve"))
	require.NoError(t, err)

	_, err = f.uc.Reject(&ReviewRequestInput{RequestID: req.ID, AdminID: "admin"})
	require.Error(t, err)
	assert.Equal(t, domain.ReasonNotesRequired, domain.ReasonOf(err))

	rejected, err := f.uc.Reject(&ReviewRequestInput{RequestID: req.ID, AdminID: "admin", Notes: "incomplete description"})
	require.NoError(t, err)
	assert.Equal(t, domain.ApprovalRejected, rejected.ApprovalStatus)
	assert.Equal(t, "incomplete description", rejected.AdminNotes)

	// Rejection is terminal: the request cannot be approved afterwards.
	_, err = f.uc.Approve(&ReviewRequestInput{RequestID: req.ID, AdminID: "admin"})
	require.Error(t, err)
	assert.Equal(t, domain.ReasonAlreadyRejected, domain.ReasonOf(err))
}
