package httpapi

import (
	"time"

	"github.com/openmazad/auction-service/internal/domain"
	"github.com/shopspring/decimal"
)

type placeBidRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

type submitAuctionRequest struct {
	Type          string           `json:"type"`
	Title         string           `json:"title"`
	Description   string           `json:"description"`
	StartingPrice decimal.Decimal  `json:"startingPrice"`
	BidIncrement  decimal.Decimal  `json:"bidIncrement"`
	MinimumPrice  *decimal.Decimal `json:"minimumPrice,omitempty"`
	ReservePrice  *decimal.Decimal `json:"reservePrice,omitempty"`
	StartDate     time.Time        `json:"startDate"`
	EndDate       time.Time        `json:"endDate"`
}

type reviewRequest struct {
	Notes string `json:"notes"`
}

type submitPaymentRequest struct {
	Amount        decimal.Decimal `json:"amount"`
	Method        string          `json:"method"`
	ScreenshotURL string          `json:"screenshotUrl"`
	TransactionID string          `json:"transactionId"`
}

type bidResponse struct {
	BidderID  string          `json:"bidderId"`
	Amount    decimal.Decimal `json:"amount"`
	Timestamp time.Time       `json:"timestamp"`
}

type auctionResponse struct {
	ID                string           `json:"id"`
	AuctionCode       string           `json:"auctionCode"`
	ParticipationCode string           `json:"participationCode,omitempty"`
	Type              string           `json:"type"`
	Title             string           `json:"title"`
	Description       string           `json:"description"`
	StartingPrice     decimal.Decimal  `json:"startingPrice"`
	BidIncrement      decimal.Decimal  `json:"bidIncrement"`
	MinimumPrice      *decimal.Decimal `json:"minimumPrice,omitempty"`
	ReservePrice      *decimal.Decimal `json:"reservePrice,omitempty"`
	CurrentBid        decimal.Decimal  `json:"currentBid"`
	HighestBidderID   string           `json:"highestBidderId,omitempty"`
	Bids              []bidResponse    `json:"bids"`
	StartDate         time.Time        `json:"startDate"`
	EndDate           time.Time        `json:"endDate"`
	Status            string           `json:"status"`
	SellerID          string           `json:"sellerId"`
	Version           int64            `json:"version"`
}

type auctionRequestResponse struct {
	ID                string    `json:"id"`
	AuctionCode       string    `json:"auctionCode"`
	ParticipationCode string    `json:"participationCode"`
	Type              string    `json:"type"`
	Title             string    `json:"title"`
	ApprovalStatus    string    `json:"approvalStatus"`
	AdminNotes        string    `json:"adminNotes,omitempty"`
	CreatedAuctionID  string    `json:"createdAuctionId,omitempty"`
	SubmittedAt       time.Time `json:"submittedAt"`
}

type paymentResponse struct {
	ID                  string          `json:"id"`
	AuctionID           string          `json:"auctionId"`
	UserID              string          `json:"userId"`
	PaymentType         string          `json:"paymentType"`
	Amount              decimal.Decimal `json:"amount"`
	VerificationStatus  string          `json:"verificationStatus"`
	AdminNotes          string          `json:"adminNotes,omitempty"`
	BiddingEligibleFrom *time.Time      `json:"biddingEligibleFrom,omitempty"`
}

type amountDueResponse struct {
	AuctionID string          `json:"auctionId"`
	AmountDue decimal.Decimal `json:"amountDue"`
}

type errorResponse struct {
	Error  string `json:"error"`
	Reason string `json:"reason,omitempty"`
}

func toAuctionResponse(a *domain.Auction) *auctionResponse {
	bids := make([]bidResponse, 0, len(a.Bids))
	for _, b := range a.Bids {
		bids = append(bids, bidResponse{BidderID: b.BidderID, Amount: b.Amount, Timestamp: b.Timestamp})
	}
	return &auctionResponse{
		ID:                a.ID,
		AuctionCode:       a.AuctionCode,
		ParticipationCode: a.ParticipationCode,
		Type:              string(a.Type),
		Title:             a.Title,
		Description:       a.Description,
		StartingPrice:     a.StartingPrice,
		BidIncrement:      a.BidIncrement,
		MinimumPrice:      a.MinimumPrice,
		ReservePrice:      a.ReservePrice,
		CurrentBid:        a.CurrentBid,
		HighestBidderID:   a.HighestBidderID,
		Bids:              bids,
		StartDate:         a.StartDate,
		EndDate:           a.EndDate,
		Status:            string(a.Status),
		SellerID:          a.SellerID,
		Version:           a.Version,
	}
}

func toRequestResponse(req *domain.AuctionRequest) *auctionRequestResponse {
	return &auctionRequestResponse{
		ID:                req.ID,
		AuctionCode:       req.AuctionCode,
		ParticipationCode: req.ParticipationCode,
		Type:              string(req.Type),
		Title:             req.Title,
		ApprovalStatus:    string(req.ApprovalStatus),
		AdminNotes:        req.AdminNotes,
		CreatedAuctionID:  req.CreatedAuctionID,
		SubmittedAt:       req.SubmittedAt,
	}
}

func toPaymentResponse(p *domain.PaymentRequest) *paymentResponse {
	return &paymentResponse{
		ID:                  p.ID,
		AuctionID:           p.AuctionID,
		UserID:              p.UserID,
		PaymentType:         string(p.PaymentType),
		Amount:              p.Amount,
		VerificationStatus:  string(p.VerificationStatus),
		AdminNotes:          p.AdminNotes,
		BiddingEligibleFrom: p.BiddingEligibleFrom,
	}
}
