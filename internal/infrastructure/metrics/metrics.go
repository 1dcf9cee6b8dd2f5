package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// AuctionMetrics bundles the Prometheus metrics of the bidding and
// lifecycle core.
type AuctionMetrics struct {
	BidsPlacedTotal  prometheus.CounterVec
	BidAmountTotal   prometheus.CounterVec
	BidRejectedTotal prometheus.CounterVec

	AuctionsEndedTotal prometheus.CounterVec
	SweepDuration      prometheus.Histogram

	RequestsSubmittedTotal prometheus.Counter
	RequestsReviewedTotal  prometheus.CounterVec

	PaymentsReviewedTotal prometheus.CounterVec
}

func NewAuctionMetrics() *AuctionMetrics {
	return &AuctionMetrics{
		BidsPlacedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bids_placed_total",
				Help: "Accepted bids by auction type",
			},
			[]string{"auction_type"},
		),

		BidAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bids_amount_total",
				Help: "Sum of accepted bid amounts by auction type",
			},
			[]string{"auction_type"},
		),

		BidRejectedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bids_rejected_total",
				Help: "Rejected bids by failure reason",
			},
			[]string{"reason"},
		),

		AuctionsEndedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "auctions_ended_total",
				Help: "Auctions transitioned to ended by auction type",
			},
			[]string{"auction_type"},
		),

		SweepDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "lifecycle_sweep_duration_seconds",
				Help:    "Duration of one lifecycle sweep pass",
				Buckets: prometheus.DefBuckets,
			},
		),

		RequestsSubmittedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "auction_requests_submitted_total",
				Help: "Reserve auction requests submitted for review",
			},
		),

		RequestsReviewedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "auction_requests_reviewed_total",
				Help: "Reviewed auction requests by decision",
			},
			[]string{"decision"},
		),

		PaymentsReviewedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payments_reviewed_total",
				Help: "Reviewed payment requests by type and decision",
			},
			[]string{"payment_type", "decision"},
		),
	}
}
