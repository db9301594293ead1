package kafka

import (
	"context"
	"fmt"

	"ecomm-gateway/internal/domain/payment"
	"ecomm-gateway/internal/messaging"
)

// SettlementEventType identifies order-settled envelopes on the topic.
const SettlementEventType = "payment.order_settled"

// SettlementPublisher adapts a messaging.Publisher to the payment
// domain's settlement port. Messages are keyed by order id so all events
// for one order land on the same partition.
type SettlementPublisher struct {
	publisher messaging.Publisher
}

var _ payment.SettlementPublisher = (*SettlementPublisher)(nil)

func NewSettlementPublisher(publisher messaging.Publisher) *SettlementPublisher {
	return &SettlementPublisher{publisher: publisher}
}

func (p *SettlementPublisher) PublishSettlement(ctx context.Context, event payment.SettlementEvent) error {
	env, err := messaging.NewEnvelope(event.OrderID, SettlementEventType, event)
	if err != nil {
		return fmt.Errorf("build settlement envelope: %w", err)
	}
	return p.publisher.Publish(ctx, env)
}
