package service

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gourmet-express/api/apperr"
	"github.com/gourmet-express/api/models"
	"github.com/gourmet-express/api/statemachine"
	"github.com/gourmet-express/api/store"
)

const (
	initialEtaMinutes = 30
	etaStepDecrement  = 5
)

type LineItem struct {
	ItemID   string
	Quantity int
}

// OrderService drives the order lifecycle: placement against the catalog,
// owner-scoped reads and tracking advancement.
type OrderService struct {
	catalog store.CatalogStore
	ledger  store.OrderLedger
}

func NewOrderService(catalog store.CatalogStore, ledger store.OrderLedger) *OrderService {
	return &OrderService{catalog: catalog, ledger: ledger}
}

func (s *OrderService) PlaceOrder(userID, restaurantID string, items []LineItem) (*models.Order, error) {
	if len(items) == 0 {
		return nil, apperr.New(apperr.Validation, "order must contain at least one item")
	}
	if _, err := s.catalog.GetRestaurant(restaurantID); err != nil {
		return nil, err
	}
	total, err := s.computeTotal(restaurantID, items)
	if err != nil {
		return nil, err
	}

	order := &models.Order{
		ID:           uuid.NewString(),
		UserID:       userID,
		RestaurantID: restaurantID,
		Status:       models.StatusCreated,
		TotalAmount:  total,
		EtaMinutes:   initialEtaMinutes,
		TrackingNote: "Order created",
	}
	for _, it := range items {
		order.Items = append(order.Items, models.OrderItem{ItemID: it.ItemID, Quantity: it.Quantity})
	}
	if err := s.ledger.Create(order); err != nil {
		return nil, err
	}
	return order, nil
}

// computeTotal resolves every line item against the catalog and sums
// price×quantity, rounded half-up to two decimal places. An item that is
// unknown or belongs to another restaurant rejects the whole order.
func (s *OrderService) computeTotal(restaurantID string, items []LineItem) (float64, error) {
	total := decimal.Zero
	for _, it := range items {
		if it.Quantity < 1 {
			return 0, apperr.New(apperr.Validation, "quantity must be at least 1")
		}
		menuItem, err := s.catalog.GetMenuItem(it.ItemID)
		if err != nil {
			if apperr.IsKind(err, apperr.NotFound) {
				return 0, apperr.New(apperr.InvalidItem, "invalid item "+it.ItemID)
			}
			return 0, err
		}
		if menuItem.RestaurantID != restaurantID {
			return 0, apperr.New(apperr.InvalidItem, "invalid item "+it.ItemID)
		}
		line := decimal.NewFromFloat(menuItem.Price).Mul(decimal.NewFromInt(int64(it.Quantity)))
		total = total.Add(line)
	}
	return total.Round(2).InexactFloat64(), nil
}

// GetOrder returns an order only to its owner. A foreign order is reported
// exactly like an absent one so callers cannot probe for existence.
func (s *OrderService) GetOrder(userID, orderID string) (*models.Order, error) {
	order, err := s.ledger.Get(orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, apperr.New(apperr.NotFound, "order not found")
	}
	return order, nil
}

func (s *OrderService) ListOrders(userID string) ([]models.Order, error) {
	return s.ledger.ListByUser(userID)
}

// AdvanceTracking maps the client-supplied step onto the fixed stage table
// and overwrites status and note with that stage. The mapping is by-step, not
// incremental: a lower step moves the visible status backward. ETA drops by a
// flat 5 minutes on every call with step>0, floored at zero.
func (s *OrderService) AdvanceTracking(userID, orderID string, step int) (*models.Order, error) {
	if step < 0 {
		return nil, apperr.New(apperr.Validation, "step must be non-negative")
	}
	stage := statemachine.StageFor(step)
	return s.ledger.Update(orderID, func(order *models.Order) error {
		if order.UserID != userID {
			return apperr.New(apperr.NotFound, "order not found")
		}
		order.Status = stage.Status
		order.TrackingNote = stage.Note
		if step > 0 {
			order.EtaMinutes -= etaStepDecrement
			if order.EtaMinutes < 0 {
				order.EtaMinutes = 0
			}
		}
		return nil
	})
}
