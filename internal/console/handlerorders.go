package console

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/tableside/foh/internal/posapi"
)

// PendingOrdersPanel renders the unpaid orders list. Falls back to the
// last refresh snapshot when the live read fails.
func (h *Handler) PendingOrdersPanel(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.PendingOrdersPanel")
	defer finish()

	orders, err := h.client.PendingOrders(r.Context())
	if err != nil {
		if snap := h.cache.Dashboard(); snap != nil {
			h.renderTemplate(w, "pending_orders.html", map[string]any{
				"Orders": snap.PendingOrders,
				"Stale":  true,
			})
			return
		}
		h.log().Error("failed to load pending orders", "error", err)
		h.renderError(w, http.StatusBadGateway, "Pending orders are unavailable right now.")
		return
	}

	h.renderTemplate(w, "pending_orders.html", map[string]any{
		"Orders": buildPendingOrderViews(orders),
	})
}

// OpenTakeOrder starts a fresh take-order session and shows the action
// choice. Any previous session is discarded.
func (h *Handler) OpenTakeOrder(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.OpenTakeOrder")
	defer finish()

	h.workflow.Open()
	h.renderTemplate(w, "take_order_actions.html", nil)
}

// ChooseOrderAction records the new-vs-existing choice and renders the
// matching customer list: customers without an order for a new one,
// dine-in customers with an open order for an extension.
func (h *Handler) ChooseOrderAction(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.ChooseOrderAction")
	defer finish()

	action := OrderAction(r.FormValue("action"))
	if err := h.workflow.ChooseAction(action); err != nil {
		h.renderError(w, flowStatus(err), err.Error())
		return
	}

	ctx := r.Context()
	var (
		patrons []posapi.Patron
		err     error
	)
	if action == ActionUpdate {
		patrons, err = h.client.DineInPatronsWithOrders(ctx)
	} else {
		patrons, err = h.client.PatronsWithoutOrders(ctx)
	}
	if err != nil {
		h.log().Error("failed to load customers", "action", string(action), "error", err)
		h.renderError(w, http.StatusBadGateway, "Customers are unavailable right now.")
		return
	}

	h.renderTemplate(w, "take_order_patrons.html", map[string]any{
		"Action":  string(action),
		"Patrons": buildPatronViews(patrons),
	})
}

// SelectOrderPatron binds the session to a customer. When extending an
// existing order the order is fetched first so its lines seed the
// read-only list.
func (h *Handler) SelectOrderPatron(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.SelectOrderPatron")
	defer finish()

	patronID, err := strconv.Atoi(r.FormValue("patron_id"))
	if err != nil {
		h.renderError(w, http.StatusBadRequest, "Select a customer.")
		return
	}

	var order *posapi.Order
	if h.workflow.Action() == ActionUpdate {
		existing, err := h.client.OrderByPatron(r.Context(), patronID)
		if err != nil {
			h.log().Error("failed to load customer order", "patron", patronID, "error", err)
			h.renderError(w, http.StatusBadGateway, "The customer's order could not be loaded.")
			return
		}
		order = &existing
	}

	if err := h.workflow.SelectPatron(patronID, order); err != nil {
		h.renderError(w, flowStatus(err), err.Error())
		return
	}

	h.renderComposition(w)
}

// Composition renders the current item list fragment.
func (h *Handler) Composition(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.Composition")
	defer finish()

	h.renderComposition(w)
}

// AddOrderItem puts one unit of a menu item into the session.
func (h *Handler) AddOrderItem(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.AddOrderItem")
	defer finish()

	if !h.workflow.Composing() {
		h.renderError(w, flowStatus(ErrNotComposing), ErrNotComposing.Error())
		return
	}

	name := r.FormValue("name")
	price, err := strconv.ParseFloat(r.FormValue("price"), 64)
	if name == "" || err != nil || price < 0 {
		h.renderError(w, http.StatusBadRequest, "Pick an item from the menu.")
		return
	}

	h.composer.AddItem(name, price)
	h.renderComposition(w)
}

// ChangeOrderItemQuantity bumps an added line up or down. Quantity never
// drops below one.
func (h *Handler) ChangeOrderItemQuantity(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.ChangeOrderItemQuantity")
	defer finish()

	if !h.workflow.Composing() {
		h.renderError(w, flowStatus(ErrNotComposing), ErrNotComposing.Error())
		return
	}

	name := r.FormValue("name")
	delta, err := strconv.Atoi(r.FormValue("delta"))
	if name == "" || err != nil {
		h.renderError(w, http.StatusBadRequest, "Invalid quantity change.")
		return
	}

	h.composer.ChangeQuantity(name, delta)
	h.renderComposition(w)
}

// RemoveOrderItem deletes an added line. Lines already on the backend
// cannot be removed from here.
func (h *Handler) RemoveOrderItem(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.RemoveOrderItem")
	defer finish()

	if !h.workflow.Composing() {
		h.renderError(w, flowStatus(ErrNotComposing), ErrNotComposing.Error())
		return
	}

	h.composer.RemoveItem(r.FormValue("name"))
	h.renderComposition(w)
}

// SubmitOrder sends the session to the backend. Validation problems come
// back as form errors with the session intact; success closes the flow
// and reports the backend's authoritative total.
func (h *Handler) SubmitOrder(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.SubmitOrder")
	defer finish()

	update, err := h.workflow.Submit(r.Context())
	if err != nil {
		h.log().Error("order submission rejected", "error", err)
		h.renderError(w, flowStatus(err), submitErrorMessage(err))
		return
	}

	h.renderTemplate(w, "order_submitted.html", map[string]any{
		"OrderID": update.OrderID,
		"Total":   formatMoney(update.TotalAmount),
		"Message": update.Message,
	})
}

// CloseTakeOrder abandons the session.
func (h *Handler) CloseTakeOrder(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.CloseTakeOrder")
	defer finish()

	h.workflow.Close()
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) renderComposition(w http.ResponseWriter) {
	view := buildCompositionView(h.composer.ExistingItems(), h.composer.AddedItems())
	h.renderTemplate(w, "composition.html", view)
}

// flowStatus maps workflow and composer errors onto response codes:
// operator mistakes are 4xx, backend trouble is 502.
func flowStatus(err error) int {
	switch {
	case errors.Is(err, ErrNoPatron), errors.Is(err, ErrNoNewItems):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrFlowClosed), errors.Is(err, ErrNotComposing),
		errors.Is(err, ErrNoActionChosen), errors.Is(err, ErrMissingOrder),
		errors.Is(err, ErrSubmitInFlight):
		return http.StatusConflict
	default:
		return http.StatusBadGateway
	}
}

func submitErrorMessage(err error) string {
	var apiErr *posapi.APIError
	if errors.As(err, &apiErr) {
		return "The order could not be submitted. Your items are still here; try again."
	}
	return err.Error()
}

type patronView struct {
	ID         int
	GroupLabel string
	TypeLabel  string
	TableLabel string
	Waiter     string
}

func buildPatronViews(patrons []posapi.Patron) []patronView {
	var views []patronView
	for _, p := range patrons {
		label := strconv.Itoa(p.GroupSize) + " guests"
		if p.GroupSize == 1 {
			label = "1 guest"
		}
		views = append(views, patronView{
			ID:         p.ID,
			GroupLabel: label,
			TypeLabel:  orderTypeLabel(p.OrderType),
			TableLabel: tableLabel(p.TableNumber),
			Waiter:     waiterLabel(p.WaiterName),
		})
	}
	return views
}
