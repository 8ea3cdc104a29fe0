package console

import (
	"context"
	"errors"
	"sync"

	"github.com/appetiteclub/apt"
	"github.com/google/uuid"

	"github.com/tableside/foh/internal/posapi"
)

var (
	// ErrNoPatron means submit was attempted with no customer selected
	// and no existing order loaded.
	ErrNoPatron = errors.New("no customer selected for this order")

	// ErrNoNewItems means submit was attempted with nothing added since
	// the session started. Holds for both new and existing orders.
	ErrNoNewItems = errors.New("add at least one item before submitting")

	// ErrSubmitInFlight means a submission for this session is already
	// on the wire.
	ErrSubmitInFlight = errors.New("order submission already in progress")
)

// LineItem is one composed order line.
type LineItem struct {
	Name     string
	Price    float64
	Quantity int
}

// Composer holds the single active order-composition session. Items already
// persisted on the backend (existing) are kept apart from items added in
// this session (added): only added items are ever transmitted, and only
// added items can be edited. All mutators are safe for concurrent use.
type Composer struct {
	mu        sync.Mutex
	client    posapi.Client
	log       apt.Logger
	sessionID string
	patronID  int
	orderID   int // 0 while composing a brand-new order
	existing  []LineItem
	added     []LineItem
	inFlight  bool
}

// NewComposer creates a composer in the cleared state.
func NewComposer(client posapi.Client, log apt.Logger) *Composer {
	if log == nil {
		log = apt.NewNoopLogger()
	}
	c := &Composer{client: client, log: log}
	c.resetLocked()
	return c
}

// Reset clears the session back to its initial state. Safe to call at any
// point, any number of times.
func (c *Composer) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resetLocked()
}

func (c *Composer) resetLocked() {
	c.sessionID = uuid.NewString()
	c.patronID = 0
	c.orderID = 0
	c.existing = nil
	c.added = nil
	c.inFlight = false
}

// LoadExisting replaces the session with the persisted state of an order:
// its lines become the read-only existing collection and the session is
// bound to the order and its patron. Any added items are discarded.
func (c *Composer) LoadExisting(order posapi.Order) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resetLocked()
	c.orderID = order.OrderID
	c.patronID = order.PatronID
	for _, it := range order.Items {
		c.existing = append(c.existing, LineItem{Name: it.Name, Price: it.Price, Quantity: it.Quantity})
	}
}

// SetPatron binds the session to a customer for a brand-new order.
func (c *Composer) SetPatron(id int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.patronID = id
}

// AddItem puts one unit of a menu item into the session. Items are keyed by
// name: adding a name already present increments its quantity and keeps the
// price recorded when it was first added.
func (c *Composer) AddItem(name string, price float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.added {
		if c.added[i].Name == name {
			c.added[i].Quantity++
			return
		}
	}
	c.added = append(c.added, LineItem{Name: name, Price: price, Quantity: 1})
}

// ChangeQuantity adjusts an added item's quantity by delta. Quantity never
// drops below 1: a decrement at 1 leaves the line as it is, it does not
// remove it. Unknown names are ignored.
func (c *Composer) ChangeQuantity(name string, delta int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.added {
		if c.added[i].Name == name {
			if q := c.added[i].Quantity + delta; q >= 1 {
				c.added[i].Quantity = q
			}
			return
		}
	}
}

// RemoveItem deletes an added line entirely. Existing items cannot be
// removed from the console.
func (c *Composer) RemoveItem(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.added {
		if c.added[i].Name == name {
			c.added = append(c.added[:i], c.added[i+1:]...)
			return
		}
	}
}

// EstimatedTotal sums price times quantity over both collections. Display
// only: the backend recomputes the authoritative total on submit.
func (c *Composer) EstimatedTotal() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	var total float64
	for _, it := range c.existing {
		total += it.Price * float64(it.Quantity)
	}
	for _, it := range c.added {
		total += it.Price * float64(it.Quantity)
	}
	return total
}

// ExistingItems returns a copy of the persisted lines.
func (c *Composer) ExistingItems() []LineItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]LineItem(nil), c.existing...)
}

// AddedItems returns a copy of the lines added this session.
func (c *Composer) AddedItems() []LineItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]LineItem(nil), c.added...)
}

// SessionID identifies the current composition session in logs.
func (c *Composer) SessionID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sessionID
}

// HasOrder reports whether the session extends an existing order.
func (c *Composer) HasOrder() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.orderID != 0
}

// PatronID returns the customer the session is bound to, 0 when none.
func (c *Composer) PatronID() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.patronID
}

// Submit validates the session and sends the added items to the backend:
// an append when the session extends an existing order, a creation
// otherwise. Validation failures happen before any network call. On
// success the session is cleared and the backend's acknowledgment is
// returned; on failure the session is left untouched so the operator can
// correct and retry.
func (c *Composer) Submit(ctx context.Context) (posapi.OrderReceiptUpdate, error) {
	var zero posapi.OrderReceiptUpdate
	if c == nil || c.client == nil {
		return zero, errors.New("order composer is not configured")
	}

	c.mu.Lock()
	if c.inFlight {
		c.mu.Unlock()
		return zero, ErrSubmitInFlight
	}
	if c.orderID == 0 && c.patronID == 0 {
		c.mu.Unlock()
		return zero, ErrNoPatron
	}
	if len(c.added) == 0 {
		c.mu.Unlock()
		return zero, ErrNoNewItems
	}
	items := make([]posapi.OrderItem, 0, len(c.added))
	for _, it := range c.added {
		items = append(items, posapi.OrderItem{Name: it.Name, Price: it.Price, Quantity: it.Quantity})
	}
	orderID, patronID, sessionID := c.orderID, c.patronID, c.sessionID
	c.inFlight = true
	c.mu.Unlock()

	var (
		update posapi.OrderReceiptUpdate
		err    error
	)
	if orderID != 0 {
		update, err = c.client.AddItems(ctx, orderID, items)
	} else {
		update, err = c.client.CreateOrder(ctx, patronID, items)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.inFlight = false
	if err != nil {
		c.log.Error("order submission failed", "session", sessionID, "error", err)
		return zero, err
	}

	c.log.Info("order submitted", "session", sessionID, "order", update.OrderID, "total", update.TotalAmount)
	c.resetLocked()
	return update, nil
}
