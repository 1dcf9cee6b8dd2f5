package inmem

import (
	"fmt"
	"sync"

	"github.com/openmazad/auction-service/internal/domain"
)

// UserDirectory is a fixed in-memory identity resolution.
type UserDirectory struct {
	mu    sync.Mutex
	users map[string]*domain.User
}

func NewUserDirectory(users ...*domain.User) *UserDirectory {
	dir := &UserDirectory{users: make(map[string]*domain.User)}
	for _, user := range users {
		dir.users[user.ID] = user
	}
	return dir
}

func (d *UserDirectory) Add(user *domain.User) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.users[user.ID] = user
}

func (d *UserDirectory) GetUserByID(userID string) (*domain.User, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	user, ok := d.users[userID]
	if !ok {
		return nil, domain.NotFoundError(fmt.Sprintf("user %s not found", userID))
	}
	clone := *user
	return &clone, nil
}

// BidLedger keeps the audit ledgers in memory.
type BidLedger struct {
	mu         sync.Mutex
	userBids   []*domain.BidHistoryEntry
	sellerBids []*domain.BidHistoryEntry
}

func NewBidLedger() *BidLedger {
	return &BidLedger{}
}

func (l *BidLedger) LogUserBid(entry *domain.BidHistoryEntry) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	clone := *entry
	l.userBids = append(l.userBids, &clone)
	return nil
}

func (l *BidLedger) LogSellerBid(entry *domain.BidHistoryEntry) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	clone := *entry
	l.sellerBids = append(l.sellerBids, &clone)
	return nil
}

func (l *BidLedger) GetUserBids(userID string, page, limit int) ([]*domain.BidHistoryEntry, int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var entries []*domain.BidHistoryEntry
	for _, entry := range l.userBids {
		if entry.BidderID == userID {
			entries = append(entries, entry)
		}
	}
	return paginate(entries, page, limit)
}

func (l *BidLedger) GetSellerBids(sellerID string, page, limit int) ([]*domain.BidHistoryEntry, int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var entries []*domain.BidHistoryEntry
	for _, entry := range l.sellerBids {
		if entry.SellerID == sellerID {
			entries = append(entries, entry)
		}
	}
	return paginate(entries, page, limit)
}

func paginate(entries []*domain.BidHistoryEntry, page, limit int) ([]*domain.BidHistoryEntry, int64, error) {
	total := int64(len(entries))
	if limit <= 0 {
		return entries, total, nil
	}
	start := (page - 1) * limit
	if start < 0 {
		start = 0
	}
	if start >= len(entries) {
		return nil, total, nil
	}
	end := start + limit
	if end > len(entries) {
		end = len(entries)
	}
	return entries[start:end], total, nil
}

// EventRecorder collects published events. Test double for the kafka
// publisher.
type EventRecorder struct {
	mu            sync.Mutex
	WinnerEvents  []domain.WinnerEvent
	BidEvents     []domain.BidEvent
	PaymentEvents []domain.PaymentEvent
	Err           error
}

func NewEventRecorder() *EventRecorder {
	return &EventRecorder{}
}

func (r *EventRecorder) PublishWinner(event domain.WinnerEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.WinnerEvents = append(r.WinnerEvents, event)
	return nil
}

func (r *EventRecorder) PublishBid(event domain.BidEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.BidEvents = append(r.BidEvents, event)
	return nil
}

func (r *EventRecorder) PublishPayment(event domain.PaymentEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.PaymentEvents = append(r.PaymentEvents, event)
	return nil
}
