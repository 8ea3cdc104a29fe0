package console

import (
	"net/http"
)

// TablesPanel renders table occupancy. Falls back to the refresh loop's
// last snapshot when the live read fails.
func (h *Handler) TablesPanel(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.TablesPanel")
	defer finish()

	ctx := r.Context()
	tables, err := h.client.ListTables(ctx)
	if err != nil {
		if snap := h.cache.Tables(); snap != nil {
			h.renderTemplate(w, "tables.html", map[string]any{
				"Tables": snap.View,
				"Stale":  true,
			})
			return
		}
		h.log().Error("failed to load tables", "error", err)
		h.renderError(w, http.StatusBadGateway, "Tables are unavailable right now.")
		return
	}

	summary, err := h.client.TableStatus(ctx)
	if err != nil {
		// The listing still renders; the counters just stay at zero.
		h.log().Debug("table status unavailable", "error", err)
	}

	h.renderTemplate(w, "tables.html", map[string]any{
		"Tables": buildTablesView(tables, summary),
	})
}
