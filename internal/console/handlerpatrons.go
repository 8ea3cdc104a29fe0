package console

import (
	"net/http"
	"strconv"

	"github.com/tableside/foh/pkg/enums/ordertype"
)

const maxGroupSize = 20

// CreateCustomer takes a walk-in party: service type plus group size.
// Dine-in runs the backend availability check first and refuses the party
// with the backend's own message when it cannot be seated.
func (h *Handler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.CreateCustomer")
	defer finish()

	orderType, err := strconv.Atoi(r.FormValue("order_type"))
	if err != nil || ordertype.ByCode(orderType) == nil {
		h.renderError(w, http.StatusBadRequest, "Choose dine-in or takeout.")
		return
	}
	groupSize, err := strconv.Atoi(r.FormValue("group_size"))
	if err != nil || groupSize < 1 || groupSize > maxGroupSize {
		h.renderError(w, http.StatusBadRequest, "Enter a group size between 1 and 20.")
		return
	}

	ctx := r.Context()
	if ordertype.IsDineIn(orderType) {
		availability, err := h.client.CheckDineInAvailability(ctx, groupSize)
		if err != nil {
			h.log().Error("availability check failed", "error", err)
			h.renderError(w, http.StatusBadGateway, "Availability could not be checked. Try again.")
			return
		}
		if !availability.CanAccept {
			message := availability.Message
			if message == "" {
				message = "The party cannot be seated right now."
			}
			h.renderError(w, http.StatusConflict, message)
			return
		}
	}

	created, err := h.client.CreatePatron(ctx, orderType, groupSize)
	if err != nil {
		h.log().Error("failed to create customer", "error", err)
		h.renderError(w, http.StatusBadGateway, "The customer could not be added.")
		return
	}

	typeLabel := orderTypeLabel(created.ServiceType)
	h.log().Info("customer added", "customer", created.ID, "type", typeLabel, "guests", created.GroupSize)
	h.renderTemplate(w, "customer_created.html", map[string]any{
		"CustomerID": created.ID,
		"TypeLabel":  typeLabel,
		"GroupSize":  created.GroupSize,
		"Message":    created.Message,
	})
}
