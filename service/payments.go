package service

import (
	"strings"

	"github.com/gourmet-express/api/apperr"
	"github.com/gourmet-express/api/models"
	"github.com/gourmet-express/api/store"
)

// paymentIDPrefix ties a mock payment to its order: the payment id is the
// order id with this prefix, so at most one payment per order is
// representable and re-initiating returns the same id.
const paymentIDPrefix = "pay_"

type PaymentMethod string

const (
	MethodCard   PaymentMethod = "card"
	MethodWallet PaymentMethod = "wallet"
	MethodCOD    PaymentMethod = "cod"
)

type PaymentIntent struct {
	PaymentID    string `json:"payment_id"`
	Status       string `json:"status"`
	ClientSecret string `json:"client_secret,omitempty"`
}

type Receipt struct {
	OrderID string             `json:"order_id"`
	Status  models.OrderStatus `json:"status"`
}

// PaymentService mocks an external processor's two-phase flow against the
// order ledger.
type PaymentService struct {
	ledger store.OrderLedger
}

func NewPaymentService(ledger store.OrderLedger) *PaymentService {
	return &PaymentService{ledger: ledger}
}

// Initiate starts a mock payment. Cash on delivery succeeds immediately and
// marks the order paid; card and wallet return requires_action and leave the
// order untouched until Verify.
func (s *PaymentService) Initiate(userID, orderID string, method PaymentMethod) (*PaymentIntent, error) {
	switch method {
	case MethodCard, MethodWallet:
		order, err := s.ledger.Get(orderID)
		if err != nil {
			return nil, err
		}
		if order.UserID != userID {
			return nil, apperr.New(apperr.NotFound, "order not found")
		}
		return &PaymentIntent{
			PaymentID:    paymentIDPrefix + orderID,
			Status:       "requires_action",
			ClientSecret: "mock_client_secret",
		}, nil
	case MethodCOD:
		if _, err := s.markPaid(userID, orderID); err != nil {
			return nil, err
		}
		return &PaymentIntent{
			PaymentID: paymentIDPrefix + orderID,
			Status:    "succeeded",
		}, nil
	default:
		return nil, apperr.New(apperr.Validation, "unsupported payment method")
	}
}

// Verify completes a mock payment. The order id is derived from the payment
// id; the order's status becomes paid unconditionally, replacing whatever
// tracking stage was visible.
func (s *PaymentService) Verify(userID, paymentID string) (*Receipt, error) {
	if !strings.HasPrefix(paymentID, paymentIDPrefix) {
		return nil, apperr.New(apperr.InvalidFormat, "invalid payment id")
	}
	orderID := strings.TrimPrefix(paymentID, paymentIDPrefix)
	if _, err := s.markPaid(userID, orderID); err != nil {
		return nil, err
	}
	return &Receipt{OrderID: orderID, Status: models.StatusPaid}, nil
}

func (s *PaymentService) markPaid(userID, orderID string) (*models.Order, error) {
	return s.ledger.Update(orderID, func(order *models.Order) error {
		if order.UserID != userID {
			return apperr.New(apperr.NotFound, "order not found")
		}
		order.Status = models.StatusPaid
		return nil
	})
}
