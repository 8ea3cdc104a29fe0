package console

import (
	"context"
	"errors"
	"testing"

	"github.com/tableside/foh/internal/posapi"
)

func TestAddItemMergesByName(t *testing.T) {
	c := NewComposer(&MockPOSClient{}, nil)

	c.AddItem("Burger", 10)
	c.AddItem("Fries", 5)
	c.AddItem("Burger", 12) // same name, later price is ignored

	added := c.AddedItems()
	if len(added) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(added))
	}
	if added[0].Name != "Burger" || added[0].Quantity != 2 {
		t.Errorf("expected Burger x2, got %+v", added[0])
	}
	if added[0].Price != 10 {
		t.Errorf("expected first-seen price 10, got %v", added[0].Price)
	}
	if added[1].Name != "Fries" || added[1].Quantity != 1 {
		t.Errorf("expected Fries x1, got %+v", added[1])
	}
}

func TestChangeQuantityClampsAtOne(t *testing.T) {
	tests := []struct {
		name     string
		deltas   []int
		expected int
	}{
		{name: "incrementFromOne", deltas: []int{1}, expected: 2},
		{name: "decrementAtOneIsNoop", deltas: []int{-1}, expected: 1},
		{name: "decrementBackToOne", deltas: []int{1, 1, -1, -1}, expected: 1},
		{name: "repeatedDecrementStaysAtOne", deltas: []int{-1, -1, -1}, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewComposer(&MockPOSClient{}, nil)
			c.AddItem("Pasta", 14)
			for _, d := range tt.deltas {
				c.ChangeQuantity("Pasta", d)
			}
			added := c.AddedItems()
			if len(added) != 1 {
				t.Fatalf("expected the line to survive, got %d lines", len(added))
			}
			if added[0].Quantity != tt.expected {
				t.Errorf("expected quantity %d, got %d", tt.expected, added[0].Quantity)
			}
		})
	}
}

func TestChangeQuantityUnknownNameIsNoop(t *testing.T) {
	c := NewComposer(&MockPOSClient{}, nil)
	c.AddItem("Soup", 6)
	c.ChangeQuantity("Steak", 1)

	added := c.AddedItems()
	if len(added) != 1 || added[0].Quantity != 1 {
		t.Errorf("expected session unchanged, got %+v", added)
	}
}

func TestRemoveItemNeverTouchesExisting(t *testing.T) {
	c := NewComposer(&MockPOSClient{}, nil)
	c.LoadExisting(posapi.Order{
		OrderID:  5,
		PatronID: 2,
		Items: []posapi.OrderItem{
			{Name: "Burger", Price: 10, Quantity: 2},
		},
	})
	c.AddItem("Burger", 10)
	c.AddItem("Cake", 7)

	c.RemoveItem("Burger")
	c.RemoveItem("Cake")

	if got := c.AddedItems(); len(got) != 0 {
		t.Errorf("expected added items emptied, got %+v", got)
	}
	existing := c.ExistingItems()
	if len(existing) != 1 || existing[0].Name != "Burger" || existing[0].Quantity != 2 {
		t.Errorf("expected persisted line untouched, got %+v", existing)
	}
}

func TestEstimatedTotalSumsBothCollections(t *testing.T) {
	c := NewComposer(&MockPOSClient{}, nil)
	c.LoadExisting(posapi.Order{
		OrderID:  3,
		PatronID: 1,
		Items: []posapi.OrderItem{
			{Name: "Burger", Price: 10, Quantity: 2}, // 20
		},
	})
	c.AddItem("Fries", 5)
	c.ChangeQuantity("Fries", 2) // 15
	c.AddItem("Cake", 7.5)       // 7.5

	if got := c.EstimatedTotal(); got != 42.5 {
		t.Errorf("expected estimated total 42.5, got %v", got)
	}
}

func TestSubmitValidatesBeforeAnyNetworkCall(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(c *Composer)
		wantErr error
	}{
		{
			name:    "noPatronNoOrder",
			setup:   func(c *Composer) { c.AddItem("Burger", 10) },
			wantErr: ErrNoPatron,
		},
		{
			name:    "patronButNoItems",
			setup:   func(c *Composer) { c.SetPatron(4) },
			wantErr: ErrNoNewItems,
		},
		{
			name: "existingOrderButNothingAdded",
			setup: func(c *Composer) {
				c.LoadExisting(posapi.Order{
					OrderID:  8,
					PatronID: 4,
					Items:    []posapi.OrderItem{{Name: "Soup", Price: 6, Quantity: 1}},
				})
			},
			wantErr: ErrNoNewItems,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			mock := &MockPOSClient{
				CreateOrderFunc: func(ctx context.Context, patronID int, items []posapi.OrderItem) (posapi.OrderReceiptUpdate, error) {
					calls++
					return posapi.OrderReceiptUpdate{}, nil
				},
				AddItemsFunc: func(ctx context.Context, orderID int, items []posapi.OrderItem) (posapi.OrderReceiptUpdate, error) {
					calls++
					return posapi.OrderReceiptUpdate{}, nil
				},
			}
			c := NewComposer(mock, nil)
			tt.setup(c)

			_, err := c.Submit(context.Background())
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
			if calls != 0 {
				t.Errorf("expected no network calls, got %d", calls)
			}
		})
	}
}

func TestSubmitCreatesNewOrder(t *testing.T) {
	var gotPatron int
	var gotItems []posapi.OrderItem
	mock := &MockPOSClient{
		CreateOrderFunc: func(ctx context.Context, patronID int, items []posapi.OrderItem) (posapi.OrderReceiptUpdate, error) {
			gotPatron = patronID
			gotItems = items
			return posapi.OrderReceiptUpdate{OrderID: 21, TotalAmount: 25, Message: "Order created"}, nil
		},
	}
	c := NewComposer(mock, nil)
	c.SetPatron(4)
	c.AddItem("Burger", 10)
	c.AddItem("Burger", 10)
	c.AddItem("Fries", 5)

	update, err := c.Submit(context.Background())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if update.OrderID != 21 || update.TotalAmount != 25 {
		t.Errorf("unexpected acknowledgment: %+v", update)
	}
	if gotPatron != 4 {
		t.Errorf("expected patron 4, got %d", gotPatron)
	}
	if len(gotItems) != 2 || gotItems[0].Quantity != 2 {
		t.Errorf("expected merged lines on the wire, got %+v", gotItems)
	}
}

func TestSubmitAppendsOnlyAddedItems(t *testing.T) {
	var gotOrder int
	var gotItems []posapi.OrderItem
	mock := &MockPOSClient{
		AddItemsFunc: func(ctx context.Context, orderID int, items []posapi.OrderItem) (posapi.OrderReceiptUpdate, error) {
			gotOrder = orderID
			gotItems = items
			return posapi.OrderReceiptUpdate{OrderID: orderID, TotalAmount: 31}, nil
		},
		CreateOrderFunc: func(ctx context.Context, patronID int, items []posapi.OrderItem) (posapi.OrderReceiptUpdate, error) {
			t.Error("expected an append, not a creation")
			return posapi.OrderReceiptUpdate{}, nil
		},
	}
	c := NewComposer(mock, nil)
	c.LoadExisting(posapi.Order{
		OrderID:  14,
		PatronID: 2,
		Items:    []posapi.OrderItem{{Name: "Burger", Price: 10, Quantity: 2}},
	})
	c.AddItem("Cake", 7)

	if _, err := c.Submit(context.Background()); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if gotOrder != 14 {
		t.Errorf("expected order 14, got %d", gotOrder)
	}
	if len(gotItems) != 1 || gotItems[0].Name != "Cake" {
		t.Errorf("expected only the added line on the wire, got %+v", gotItems)
	}
}

func TestSubmitSuccessClearsSession(t *testing.T) {
	mock := &MockPOSClient{
		CreateOrderFunc: func(ctx context.Context, patronID int, items []posapi.OrderItem) (posapi.OrderReceiptUpdate, error) {
			return posapi.OrderReceiptUpdate{OrderID: 9, TotalAmount: 10}, nil
		},
	}
	c := NewComposer(mock, nil)
	c.SetPatron(4)
	c.AddItem("Burger", 10)
	before := c.SessionID()

	if _, err := c.Submit(context.Background()); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if got := c.AddedItems(); len(got) != 0 {
		t.Errorf("expected added items cleared, got %+v", got)
	}
	if got := c.ExistingItems(); len(got) != 0 {
		t.Errorf("expected existing items cleared, got %+v", got)
	}
	if c.PatronID() != 0 || c.HasOrder() {
		t.Error("expected patron and order bindings cleared")
	}
	if c.EstimatedTotal() != 0 {
		t.Errorf("expected zero total, got %v", c.EstimatedTotal())
	}
	if c.SessionID() == before {
		t.Error("expected a fresh session id after submit")
	}
}

func TestSubmitFailureLeavesSessionUntouched(t *testing.T) {
	mock := &MockPOSClient{
		CreateOrderFunc: func(ctx context.Context, patronID int, items []posapi.OrderItem) (posapi.OrderReceiptUpdate, error) {
			return posapi.OrderReceiptUpdate{}, &posapi.APIError{Method: "POST", Path: "/orders/create", Status: 500}
		},
	}
	c := NewComposer(mock, nil)
	c.SetPatron(4)
	c.AddItem("Burger", 10)
	c.AddItem("Fries", 5)
	session := c.SessionID()

	_, err := c.Submit(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}

	added := c.AddedItems()
	if len(added) != 2 {
		t.Fatalf("expected session preserved for retry, got %+v", added)
	}
	if c.PatronID() != 4 {
		t.Errorf("expected patron binding preserved, got %d", c.PatronID())
	}
	if c.SessionID() != session {
		t.Error("expected the same session to continue")
	}
}

func TestSubmitRefusesConcurrentSubmission(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	mock := &MockPOSClient{
		CreateOrderFunc: func(ctx context.Context, patronID int, items []posapi.OrderItem) (posapi.OrderReceiptUpdate, error) {
			close(started)
			<-release
			return posapi.OrderReceiptUpdate{OrderID: 1}, nil
		},
	}
	c := NewComposer(mock, nil)
	c.SetPatron(4)
	c.AddItem("Burger", 10)

	done := make(chan error, 1)
	go func() {
		_, err := c.Submit(context.Background())
		done <- err
	}()
	<-started

	_, err := c.Submit(context.Background())
	if !errors.Is(err, ErrSubmitInFlight) {
		t.Errorf("expected ErrSubmitInFlight, got %v", err)
	}

	close(release)
	if err := <-done; err != nil {
		t.Fatalf("first submission failed: %v", err)
	}
}

func TestLoadExistingDiscardsSessionEdits(t *testing.T) {
	c := NewComposer(&MockPOSClient{}, nil)
	c.SetPatron(9)
	c.AddItem("Soup", 6)

	c.LoadExisting(posapi.Order{
		OrderID:  3,
		PatronID: 2,
		Items:    []posapi.OrderItem{{Name: "Steak", Price: 22, Quantity: 1}},
	})

	if got := c.AddedItems(); len(got) != 0 {
		t.Errorf("expected prior edits discarded, got %+v", got)
	}
	if c.PatronID() != 2 {
		t.Errorf("expected patron rebound to the order's patron, got %d", c.PatronID())
	}
	if !c.HasOrder() {
		t.Error("expected session bound to the loaded order")
	}
	existing := c.ExistingItems()
	if len(existing) != 1 || existing[0].Name != "Steak" {
		t.Errorf("unexpected existing items: %+v", existing)
	}
}

func TestSubmitNilComposerGuard(t *testing.T) {
	var c *Composer
	if _, err := c.Submit(context.Background()); err == nil {
		t.Error("expected error from unconfigured composer")
	}
}
