// Package notification provides the outbound notification sink.
package notification

import (
	"context"

	"go.uber.org/zap"
)

// Event kinds emitted by the allocation engine.
const (
	KindOfferReceived    = "OFFER_RECEIVED"
	KindRequestCompleted = "REQUEST_COMPLETED"
)

// Notifier delivers fire-and-forget notifications to accounts.
// Delivery failures must never affect the calling transaction.
type Notifier interface {
	Notify(ctx context.Context, targetAccountID int64, message, eventKind string, referenceID int64)
}

// ZapNotifier logs notifications through the structured logger.
// Transport delivery is handled by an external collaborator.
type ZapNotifier struct {
	logger *zap.SugaredLogger
}

// NewZapNotifier creates a logger-backed notification sink.
func NewZapNotifier(logger *zap.SugaredLogger) *ZapNotifier {
	return &ZapNotifier{logger: logger}
}

// Notify records the notification event.
func (n *ZapNotifier) Notify(ctx context.Context, targetAccountID int64, message, eventKind string, referenceID int64) {
	n.logger.Infow("notification emitted",
		"target_account_id", targetAccountID,
		"event_kind", eventKind,
		"reference_id", referenceID,
		"message", message,
	)
}
