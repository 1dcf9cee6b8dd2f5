package inmem

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/openmazad/auction-service/internal/domain"
)

// AuctionRequestRepository pairs with AuctionRepository so PromoteRequest
// can land the auction and the request update in one locked step.
type AuctionRequestRepository struct {
	mu       sync.Mutex
	requests map[string]*domain.AuctionRequest
	auctions *AuctionRepository
}

func NewAuctionRequestRepository(auctions *AuctionRepository) *AuctionRequestRepository {
	return &AuctionRequestRepository{
		requests: make(map[string]*domain.AuctionRequest),
		auctions: auctions,
	}
}

func (r *AuctionRequestRepository) CreateRequest(req *domain.AuctionRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if req.ID == "" {
		req.ID = uuid.New().String()
	}
	if _, ok := r.requests[req.ID]; ok {
		return domain.NewError(domain.KindConflict, "", "request already exists")
	}
	clone := *req
	r.requests[req.ID] = &clone
	return nil
}

func (r *AuctionRequestRepository) GetRequestByID(requestID string) (*domain.AuctionRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	req, ok := r.requests[requestID]
	if !ok {
		return nil, domain.NotFoundError(fmt.Sprintf("auction request %s not found", requestID))
	}
	clone := *req
	return &clone, nil
}

func (r *AuctionRequestRepository) UpdateRequest(req *domain.AuctionRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.requests[req.ID]; !ok {
		return domain.NotFoundError(fmt.Sprintf("auction request %s not found", req.ID))
	}
	clone := *req
	r.requests[req.ID] = &clone
	return nil
}

func (r *AuctionRequestRepository) PromoteRequest(req *domain.AuctionRequest, auction *domain.Auction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.requests[req.ID]; !ok {
		return domain.NotFoundError(fmt.Sprintf("auction request %s not found", req.ID))
	}
	if _, err := r.auctions.CreateAuction(auction); err != nil {
		return err
	}
	clone := *req
	r.requests[req.ID] = &clone
	return nil
}

func (r *AuctionRequestRepository) CodeInUse(auctionCode, participationCode, excludeRequestID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, req := range r.requests {
		if req.ID == excludeRequestID || req.ApprovalStatus != domain.ApprovalPending {
			continue
		}
		if req.AuctionCode == auctionCode || req.ParticipationCode == participationCode {
			return true, nil
		}
	}
	return false, nil
}
