package console

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// DailyReportModal renders all four report sections in one view.
func (h *Handler) DailyReportModal(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.DailyReportModal")
	defer finish()

	report, err := h.client.DailyReport(r.Context())
	if err != nil {
		h.log().Error("failed to load daily report", "error", err)
		h.renderError(w, http.StatusBadGateway, "Reports are unavailable right now.")
		return
	}

	h.renderTemplate(w, "report_daily.html", buildDailyReportView(report))
}

// ReportTab reloads a single report section.
func (h *Handler) ReportTab(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.ReportTab")
	defer finish()

	ctx := r.Context()
	tab := chi.URLParam(r, "tab")

	switch tab {
	case "overview":
		report, err := h.client.OverviewReport(ctx)
		if err != nil {
			h.reportError(w, tab, err)
			return
		}
		h.renderTemplate(w, "report_overview.html", buildOverviewView(report))
	case "staff":
		report, err := h.client.StaffReport(ctx)
		if err != nil {
			h.reportError(w, tab, err)
			return
		}
		h.renderTemplate(w, "report_staff.html", buildStaffView(report))
	case "menu":
		report, err := h.client.MenuReport(ctx)
		if err != nil {
			h.reportError(w, tab, err)
			return
		}
		h.renderTemplate(w, "report_menu.html", buildMenuReportView(report))
	case "finance":
		report, err := h.client.FinanceReport(ctx)
		if err != nil {
			h.reportError(w, tab, err)
			return
		}
		h.renderTemplate(w, "report_finance.html", buildFinanceView(report))
	default:
		h.renderError(w, http.StatusNotFound, "Unknown report.")
	}
}

func (h *Handler) reportError(w http.ResponseWriter, tab string, err error) {
	h.log().Error("failed to load report", "tab", tab, "error", err)
	h.renderError(w, http.StatusBadGateway, "The report is unavailable right now.")
}
