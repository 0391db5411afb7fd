package store

import (
	"errors"
	"testing"

	"github.com/gourmet-express/api/apperr"
	"github.com/gourmet-express/api/models"
)

func TestOrderLedgerCreateAndGet(t *testing.T) {
	ledger := NewOrderLedger(openTestDB(t))

	order := &models.Order{
		ID:           "o_1",
		UserID:       "u_1",
		RestaurantID: "r_1",
		Status:       models.StatusCreated,
		TotalAmount:  35.00,
		EtaMinutes:   30,
		TrackingNote: "Order created",
		Items: []models.OrderItem{
			{ItemID: "m_1", Quantity: 2},
			{ItemID: "m_2", Quantity: 1},
		},
	}
	if err := ledger.Create(order); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := ledger.Get("o_1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.TotalAmount != 35.00 {
		t.Fatalf("expected total 35.00, got %v", got.TotalAmount)
	}
	if len(got.Items) != 2 {
		t.Fatalf("expected 2 line items preloaded, got %d", len(got.Items))
	}

	if _, err := ledger.Get("o_404"); !apperr.IsKind(err, apperr.NotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestOrderLedgerListByUser(t *testing.T) {
	ledger := NewOrderLedger(openTestDB(t))

	for _, o := range []*models.Order{
		{ID: "o_1", UserID: "u_1", RestaurantID: "r_1", Status: models.StatusCreated},
		{ID: "o_2", UserID: "u_1", RestaurantID: "r_2", Status: models.StatusCreated},
		{ID: "o_3", UserID: "u_2", RestaurantID: "r_1", Status: models.StatusCreated},
	} {
		if err := ledger.Create(o); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	orders, err := ledger.ListByUser("u_1")
	if err != nil {
		t.Fatalf("ListByUser failed: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders for u_1, got %d", len(orders))
	}
	for _, o := range orders {
		if o.UserID != "u_1" {
			t.Fatalf("foreign order leaked into listing: %+v", o)
		}
	}
}

func TestOrderLedgerUpdate(t *testing.T) {
	ledger := NewOrderLedger(openTestDB(t))
	if err := ledger.Create(&models.Order{ID: "o_1", UserID: "u_1", RestaurantID: "r_1", Status: models.StatusCreated, EtaMinutes: 30}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	updated, err := ledger.Update("o_1", func(order *models.Order) error {
		order.Status = models.StatusPreparing
		order.EtaMinutes = 25
		return nil
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Status != models.StatusPreparing || updated.EtaMinutes != 25 {
		t.Fatalf("unexpected updated order: %+v", updated)
	}

	reloaded, err := ledger.Get("o_1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if reloaded.Status != models.StatusPreparing || reloaded.EtaMinutes != 25 {
		t.Fatalf("update not persisted: %+v", reloaded)
	}
}

func TestOrderLedgerUpdateMutateErrorWritesNothing(t *testing.T) {
	ledger := NewOrderLedger(openTestDB(t))
	if err := ledger.Create(&models.Order{ID: "o_1", UserID: "u_1", RestaurantID: "r_1", Status: models.StatusCreated}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	boom := errors.New("boom")
	if _, err := ledger.Update("o_1", func(order *models.Order) error {
		order.Status = models.StatusDelivered
		return boom
	}); !errors.Is(err, boom) {
		t.Fatalf("expected mutate error to propagate, got %v", err)
	}

	got, err := ledger.Get("o_1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Status != models.StatusCreated {
		t.Fatalf("failed mutate must not persist, got status %s", got.Status)
	}
}
