package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

// AuctionRequest is the staging entity for reserve auctions. It carries the
// same economic fields as Auction and is promoted to a live Auction by the
// approval pipeline. Requests are never deleted, they are the audit trail.
type AuctionRequest struct {
	ID                string
	AuctionCode       string
	ParticipationCode string
	Type              AuctionType
	Title             string
	Description       string

	StartingPrice decimal.Decimal
	BidIncrement  decimal.Decimal
	MinimumPrice  *decimal.Decimal
	ReservePrice  *decimal.Decimal

	StartDate time.Time
	EndDate   time.Time

	SellerID string

	ApprovalStatus   ApprovalStatus
	SubmittedAt      time.Time
	ReviewedBy       string
	ReviewedAt       *time.Time
	AdminNotes       string
	CreatedAuctionID string

	CreatedAt time.Time
	UpdatedAt time.Time
}

type AuctionRequestRepository interface {
	CreateRequest(req *AuctionRequest) error
	GetRequestByID(requestID string) (*AuctionRequest, error)
	UpdateRequest(req *AuctionRequest) error
	// PromoteRequest persists the new auction and the approved request in a
	// single transaction. A request must never end up approved without its
	// auction, nor the other way around.
	PromoteRequest(req *AuctionRequest, auction *Auction) error
	// CodeInUse reports whether auctionCode or participationCode collides
	// with another pending request.
	CodeInUse(auctionCode, participationCode, excludeRequestID string) (bool, error)
}
