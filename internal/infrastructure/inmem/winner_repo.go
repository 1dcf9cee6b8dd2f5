package inmem

import (
	"fmt"
	"sync"

	"github.com/openmazad/auction-service/internal/domain"
)

type WinnerRepository struct {
	mu      sync.Mutex
	winners map[string]*domain.Winner
}

func NewWinnerRepository() *WinnerRepository {
	return &WinnerRepository{winners: make(map[string]*domain.Winner)}
}

func (r *WinnerRepository) CreateIfAbsent(winner *domain.Winner) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.winners[winner.AuctionID]; ok {
		return domain.ErrWinnerExists
	}
	clone := *winner
	r.winners[winner.AuctionID] = &clone
	return nil
}

func (r *WinnerRepository) GetWinnerByAuctionID(auctionID string) (*domain.Winner, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	winner, ok := r.winners[auctionID]
	if !ok {
		return nil, domain.NotFoundError(fmt.Sprintf("no winner recorded for auction %s", auctionID))
	}
	clone := *winner
	return &clone, nil
}

func (r *WinnerRepository) MarkNotified(winnerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, winner := range r.winners {
		if winner.ID == winnerID {
			winner.Notified = true
			return nil
		}
	}
	return domain.NotFoundError(fmt.Sprintf("winner %s not found", winnerID))
}

// Len reports the number of winner records. Test helper.
func (r *WinnerRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.winners)
}
