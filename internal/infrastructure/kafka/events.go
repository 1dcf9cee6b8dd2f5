package kafka

import "github.com/openmazad/auction-service/internal/domain"

// KafkaPublisher implements domain.EventPublisherPort. Events are keyed by
// auction so consumers see per-auction ordering.

func (k *KafkaPublisher) PublishWinner(event domain.WinnerEvent) error {
	return k.publish(TopicWinnerEvents, event.AuctionID, event)
}

func (k *KafkaPublisher) PublishBid(event domain.BidEvent) error {
	return k.publish(TopicBidEvents, event.AuctionID, event)
}

func (k *KafkaPublisher) PublishPayment(event domain.PaymentEvent) error {
	return k.publish(TopicPaymentEvents, event.AuctionID, event)
}
