package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openmazad/auction-service/internal/domain"
	"github.com/openmazad/auction-service/internal/infrastructure/inmem"
	"github.com/openmazad/auction-service/internal/usecase/approval"
	"github.com/openmazad/auction-service/internal/usecase/bidding"
	"github.com/openmazad/auction-service/internal/usecase/lifecycle"
	"github.com/openmazad/auction-service/internal/usecase/settlement"
)

var testNow = time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)

func newTestServer(t *testing.T) (*Server, *inmem.AuctionRepository) {
	t.Helper()

	auctions := inmem.NewAuctionRepository()
	requests := inmem.NewAuctionRequestRepository(auctions)
	payments := inmem.NewPaymentRepository()
	winners := inmem.NewWinnerRepository()
	events := inmem.NewEventRecorder()
	users := inmem.NewUserDirectory(
		&domain.User{ID: "seller", Role: domain.RoleUser},
		&domain.User{ID: "alice", FullName: "Alice", Role: domain.RoleUser},
		&domain.User{ID: "admin", Role: domain.RoleAdmin},
	)

	biddingUC := bidding.NewDefaultBiddingUsecase(auctions, payments, inmem.NewBidLedger(), users, events, nil)
	biddingUC.Now = func() time.Time { return testNow }
	lifecycleUC := lifecycle.NewDefaultLifecycleUsecase(auctions, winners, users, events, nil)
	lifecycleUC.Now = func() time.Time { return testNow }
	settlementUC := settlement.NewDefaultSettlementUsecase(auctions, payments, winners, users, events, nil)
	settlementUC.Now = func() time.Time { return testNow }
	approvalUC := approval.NewDefaultApprovalUsecase(requests, auctions, users, nil)
	approvalUC.Now = func() time.Time { return testNow }

	return NewServer("127.0.0.1:0", auctions, biddingUC, lifecycleUC, settlementUC, approvalUC), auctions
}

func doJSON(t *testing.T, handler http.Handler, method, path, userID string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if userID != "" {
		req.Header.Set(callerHeader, userID)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestPlaceBidEndpoint(t *testing.T) {
	srv, auctions := newTestServer(t)
	handler := srv.router()

	auction := &domain.Auction{
		ID: "a1", Type: domain.TypeEnglish, SellerID: "seller",
		Status:     domain.StatusActive,
		StartDate:  testNow.Add(-time.Hour),
		EndDate:    testNow.Add(time.Hour),
		CurrentBid: decimal.NewFromInt(100),
		BidIncrement: decimal.NewFromInt(10),
	}
	_, err := auctions.CreateAuction(auction)
	require.NoError(t, err)

	rec := doJSON(t, handler, http.MethodPost, "/api/auctions/a1/bids", "alice",
		placeBidRequest{Amount: decimal.NewFromInt(150)})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp auctionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp.HighestBidderID)
	assert.True(t, resp.CurrentBid.Equal(decimal.NewFromInt(150)))

	// Below-increment bid maps to 400 with the machine reason.
	rec = doJSON(t, handler, http.MethodPost, "/api/auctions/a1/bids", "alice",
		placeBidRequest{Amount: decimal.NewFromInt(155)})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	var errResp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Equal(t, domain.ReasonBelowIncrement, errResp.Reason)

	// Seller self-bid.
	rec = doJSON(t, handler, http.MethodPost, "/api/auctions/a1/bids", "seller",
		placeBidRequest{Amount: decimal.NewFromInt(200)})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// No identity header.
	rec = doJSON(t, handler, http.MethodPost, "/api/auctions/a1/bids", "",
		placeBidRequest{Amount: decimal.NewFromInt(200)})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetAuctionDerivesStatus(t *testing.T) {
	srv, auctions := newTestServer(t)
	handler := srv.router()

	// Stored as active but past its end date: readers see ended.
	auction := &domain.Auction{
		ID: "a1", Type: domain.TypeEnglish, SellerID: "seller",
		Status:    domain.StatusActive,
		StartDate: time.Now().Add(-3 * time.Hour),
		EndDate:   time.Now().Add(-time.Hour),
	}
	_, err := auctions.CreateAuction(auction)
	require.NoError(t, err)

	rec := doJSON(t, handler, http.MethodGet, "/api/auctions/a1", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp auctionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, string(domain.StatusEnded), resp.Status)

	rec = doJSON(t, handler, http.MethodGet, "/api/auctions/missing", "", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestApprovalEndpoints(t *testing.T) {
	srv, _ := newTestServer(t)
	handler := srv.router()

	floor := decimal.NewFromInt(500)
	rec := doJSON(t, handler, http.MethodPost, "/api/requests", "seller", submitAuctionRequest{
		Type:          "reserve",
		Title:         "Vintage clock",
		Description:   "Early 1900s wall clock",
		StartingPrice: decimal.NewFromInt(500),
		MinimumPrice:  &floor,
		StartDate:     testNow.Add(-time.Hour),
		EndDate:       testNow.Add(24 * time.Hour),
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var reqResp auctionRequestResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reqResp))
	assert.Equal(t, string(domain.ApprovalPending), reqResp.ApprovalStatus)

	rec = doJSON(t, handler, http.MethodPost, "/api/requests/"+reqResp.ID+"/approve", "admin", reviewRequest{})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var auctionResp auctionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &auctionResp))
	assert.Equal(t, reqResp.AuctionCode, auctionResp.AuctionCode)
	assert.Equal(t, string(domain.StatusActive), auctionResp.Status)

	// Double approval surfaces as a conflict.
	rec = doJSON(t, handler, http.MethodPost, "/api/requests/"+reqResp.ID+"/approve", "admin", reviewRequest{})
	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestLivenessEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)
	rec := doJSON(t, srv.router(), http.MethodGet, "/livez", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"alive"}`, rec.Body.String())
}
