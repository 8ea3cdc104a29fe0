package console

import (
	"net/http"
)

// MenuPanel renders the menu grouped by category. The category query
// parameter narrows the panel to a single category.
func (h *Handler) MenuPanel(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.MenuPanel")
	defer finish()

	ctx := r.Context()
	category := r.URL.Query().Get("category")

	var (
		items []menuCategoryView
		err   error
	)
	if category != "" {
		fetched, ferr := h.client.MenuByCategory(ctx, category)
		err = ferr
		items = buildMenuView(fetched)
	} else {
		fetched, ferr := h.client.MenuWithDescriptions(ctx)
		err = ferr
		items = buildMenuView(fetched)
	}
	if err != nil {
		h.log().Error("failed to load menu", "category", category, "error", err)
		h.renderError(w, http.StatusBadGateway, "The menu is unavailable right now.")
		return
	}

	h.renderTemplate(w, "menu.html", map[string]any{
		"Categories": items,
		"Empty":      len(items) == 0,
	})
}
