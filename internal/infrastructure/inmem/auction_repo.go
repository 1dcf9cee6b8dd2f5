package inmem

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/openmazad/auction-service/internal/domain"
)

// AuctionRepository is a mutex-backed in-memory AuctionStore. It honors the
// same versioning contract as the Postgres repository, which makes it good
// enough to race lifecycle sweeps against bids in tests.
type AuctionRepository struct {
	mu       sync.Mutex
	auctions map[string]*domain.Auction
}

func NewAuctionRepository() *AuctionRepository {
	return &AuctionRepository{auctions: make(map[string]*domain.Auction)}
}

func (r *AuctionRepository) CreateAuction(auction *domain.Auction) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if auction.ID == "" {
		auction.ID = uuid.New().String()
	}
	if _, ok := r.auctions[auction.ID]; ok {
		return "", domain.NewError(domain.KindConflict, "", "auction already exists")
	}
	clone := cloneAuction(auction)
	clone.CreatedAt = time.Now()
	r.auctions[auction.ID] = clone
	return auction.ID, nil
}

func (r *AuctionRepository) GetAuctionByID(auctionID string) (*domain.Auction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	auction, ok := r.auctions[auctionID]
	if !ok {
		return nil, domain.NotFoundError(fmt.Sprintf("auction %s not found", auctionID))
	}
	return cloneAuction(auction), nil
}

func (r *AuctionRepository) Update(auction *domain.Auction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.auctions[auction.ID]
	if !ok {
		return domain.NotFoundError(fmt.Sprintf("auction %s not found", auction.ID))
	}
	if stored.Version != auction.Version {
		return domain.ErrVersionConflict
	}

	clone := cloneAuction(auction)
	clone.Version++
	clone.UpdatedAt = time.Now()
	r.auctions[auction.ID] = clone
	auction.Version = clone.Version
	return nil
}

func (r *AuctionRepository) FindExpiredActive(now time.Time) ([]*domain.Auction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var expired []*domain.Auction
	for _, auction := range r.auctions {
		if auction.Status != domain.StatusUpcoming && auction.Status != domain.StatusActive {
			continue
		}
		if !auction.EndDate.After(now) {
			expired = append(expired, cloneAuction(auction))
		}
	}
	return expired, nil
}

func (r *AuctionRepository) CodeInUse(auctionCode, participationCode, excludeAuctionID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, auction := range r.auctions {
		if auction.ID == excludeAuctionID {
			continue
		}
		if auction.AuctionCode == auctionCode || auction.ParticipationCode == participationCode {
			return true, nil
		}
	}
	return false, nil
}

func cloneAuction(auction *domain.Auction) *domain.Auction {
	clone := *auction
	clone.Bids = append([]domain.Bid(nil), auction.Bids...)
	return &clone
}
