package service

import (
	"context"
	"fmt"
	"math"

	"github.com/sipline/drink_shop/internal/logging"
	"github.com/sipline/drink_shop/internal/models"
	"github.com/sipline/drink_shop/internal/mykafka"
	"github.com/sipline/drink_shop/internal/repo"
	"github.com/sipline/drink_shop/internal/transport"
)

type OrderService struct {
	Repo     *repo.GormRepo
	Producer *mykafka.Producer
}

// PlaceOrder turns a submitted item list into one order row plus its line
// items. The total is accumulated in integer cents so sums over prices like
// 2.99 stay exact. Submitted unit prices are snapshotted into the order items
// and not re-read from the catalog afterwards.
func (s *OrderService) PlaceOrder(ctx context.Context, userID uint, reqItems []transport.OrderItemRequest) (uint, error) {
	l := logging.FromContext(ctx).With("svc", "order.place_order")

	if userID == 0 || len(reqItems) == 0 {
		return 0, fmt.Errorf("%w: invalid order data", ErrValidation)
	}

	var totalCents int64
	items := make([]models.OrderItem, 0, len(reqItems))
	for i := range reqItems {
		if reqItems[i].ID == 0 {
			return 0, fmt.Errorf("%w: item id required", ErrValidation)
		}
		if reqItems[i].Quantity <= 0 {
			return 0, fmt.Errorf("%w: quantity must be > 0", ErrValidation)
		}
		if reqItems[i].Price < 0 {
			return 0, fmt.Errorf("%w: price must be >= 0", ErrValidation)
		}

		totalCents += int64(math.Round(reqItems[i].Price*100)) * int64(reqItems[i].Quantity)
		items = append(items, models.OrderItem{
			ProductID: reqItems[i].ID,
			Quantity:  reqItems[i].Quantity,
			Price:     reqItems[i].Price,
		})
	}

	order := models.Order{
		UserID:      userID,
		TotalAmount: float64(totalCents) / 100,
	}

	if err := s.Repo.CreateOrder(ctx, &order, items); err != nil {
		l.Error("place_order_error", "status", 500, "error", err)
		return 0, err
	}

	event := map[string]interface{}{
		"type":         "order_created",
		"order_id":     order.ID,
		"user_id":      userID,
		"total_amount": order.TotalAmount,
		"item_count":   len(items),
	}
	if err := s.Producer.PublishEvent(ctx, mykafka.TopicOrderEvents, fmt.Sprint(order.ID), event); err != nil {
		l.Warn("kafka_publish_error", "topic", mykafka.TopicOrderEvents, "error", err)
	}

	l.Info("place_order_success", "order_id", order.ID, "total_amount", order.TotalAmount)
	return order.ID, nil
}
