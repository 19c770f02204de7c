package listener

import (
	"context"
	"encoding/json"
	"time"

	"github.com/mirevo/shop-catalog-service/internal/currency"
	"github.com/mirevo/shop-catalog-service/internal/model"
	"github.com/mirevo/shop-catalog-service/pkg/broker"
	"github.com/mirevo/shop-catalog-service/pkg/logger"
	"go.uber.org/zap"
)

// RateListener keeps the fx_rates table in sync with the currency
// subsystem's rate feed.
type RateListener struct {
	consumer *broker.KafkaConsumer
	repo     currency.Repository
	logger   logger.ZapLogger
}

func NewRateListener(consumer *broker.KafkaConsumer, repo currency.Repository, logger logger.ZapLogger) *RateListener {
	return &RateListener{
		consumer: consumer,
		repo:     repo,
		logger:   logger,
	}
}

func (l *RateListener) Start(ctx context.Context) {
	l.logger.Info("Starting FX rate listener")
	for {
		select {
		case <-ctx.Done():
			l.logger.Info("Stopping FX rate listener")
			return
		default:
			msg, err := l.consumer.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				l.logger.Error("Failed to read kafka message", zap.Error(err))
				time.Sleep(1 * time.Second)
				continue
			}
			l.processMessage(ctx, msg.Value)
		}
	}
}

type RateUpdatedEvent struct {
	EventID   string      `json:"event_id"`
	EventType string      `json:"event_type"`
	Payload   RatePayload `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
}

type RatePayload struct {
	ID     string  `json:"id"`
	ShopID string  `json:"shop_id"`
	Base   string  `json:"base"`
	Quote  string  `json:"quote"`
	Rate   float64 `json:"rate"`
}

func (l *RateListener) processMessage(ctx context.Context, value []byte) {
	var event RateUpdatedEvent
	if err := json.Unmarshal(value, &event); err != nil {
		l.logger.Error("Failed to unmarshal event", zap.Error(err))
		return
	}

	if event.EventType != "FXRateUpdated" {
		return
	}

	rate := &model.FXRate{
		ID:     event.Payload.ID,
		ShopID: event.Payload.ShopID,
		Base:   event.Payload.Base,
		Quote:  event.Payload.Quote,
		Rate:   event.Payload.Rate,
	}
	if err := l.repo.Upsert(ctx, rate); err != nil {
		l.logger.Error("Failed to upsert FX rate",
			zap.String("shop_id", rate.ShopID),
			zap.String("base", rate.Base),
			zap.String("quote", rate.Quote),
			zap.Error(err),
		)
	}
}
