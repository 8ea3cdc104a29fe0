package console

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// UnpaidOrdersList renders the mark-as-paid picker.
func (h *Handler) UnpaidOrdersList(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.UnpaidOrdersList")
	defer finish()

	orders, err := h.client.UnpaidOrders(r.Context())
	if err != nil {
		h.log().Error("failed to load unpaid orders", "error", err)
		h.renderError(w, http.StatusBadGateway, "Unpaid orders are unavailable right now.")
		return
	}

	h.renderTemplate(w, "unpaid_orders.html", map[string]any{
		"Orders": buildPendingOrderViews(orders),
	})
}

// OrderPreview shows an order's lines before the operator confirms payment.
func (h *Handler) OrderPreview(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.OrderPreview")
	defer finish()

	orderID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.renderError(w, http.StatusBadRequest, "Invalid order.")
		return
	}

	order, err := h.client.GetOrder(r.Context(), orderID)
	if err != nil {
		h.log().Error("failed to load order", "order", orderID, "error", err)
		h.renderError(w, http.StatusBadGateway, "The order could not be loaded.")
		return
	}
	if order.IsPaid {
		h.renderError(w, http.StatusConflict, "This order is already paid.")
		return
	}

	existing := make([]LineItem, 0, len(order.Items))
	for _, it := range order.Items {
		existing = append(existing, LineItem{Name: it.Name, Price: it.Price, Quantity: it.Quantity})
	}

	h.renderTemplate(w, "order_preview.html", map[string]any{
		"OrderID":     order.OrderID,
		"TypeLabel":   orderTypeText(order.OrderType),
		"WaiterLabel": waiterLabel(order.WaiterName),
		"TableLabel":  tableLabel(order.TableNumber),
		"Items":       buildCompositionView(existing, nil),
		"Total":       formatMoney(order.TotalAmount),
	})
}

// ConfirmPayment marks the order paid and renders the final receipt the
// backend returns.
func (h *Handler) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.ConfirmPayment")
	defer finish()

	orderID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.renderError(w, http.StatusBadRequest, "Invalid order.")
		return
	}

	result, err := h.client.MarkPaid(r.Context(), orderID)
	if err != nil {
		h.log().Error("failed to mark order paid", "order", orderID, "error", err)
		h.renderError(w, http.StatusBadGateway, "Payment could not be recorded. The order is unchanged.")
		return
	}

	h.log().Info("order paid", "order", result.OrderID, "total", result.OrderData.TotalAmount)
	h.renderTemplate(w, "receipt.html", buildReceiptView(result.OrderData))
}
