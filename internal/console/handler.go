package console

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/appetiteclub/apt"
	"github.com/appetiteclub/apt/telemetry"
	"github.com/go-chi/chi/v5"

	"github.com/tableside/foh/internal/posapi"
)

//go:embed assets/templates/*.html
var templateFS embed.FS

// Handler serves the front-of-house console: the dashboard page, its
// refreshing panel fragments, and the take-order, customer intake,
// payment and report flows.
type Handler struct {
	client   posapi.Client
	composer *Composer
	workflow *Workflow
	cache    *SnapshotCache
	logger   apt.Logger
	tlm      *telemetry.HTTP
	tmpl     *template.Template
}

// NewHandler creates the console handler with its composition session and
// workflow. The snapshot cache is shared with the refresh loops.
func NewHandler(client posapi.Client, cache *SnapshotCache, logger apt.Logger) (*Handler, error) {
	if logger == nil {
		logger = apt.NewNoopLogger()
	}

	tmpl, err := template.ParseFS(templateFS, "assets/templates/*.html")
	if err != nil {
		return nil, err
	}

	composer := NewComposer(client, logger)
	return &Handler{
		client:   client,
		composer: composer,
		workflow: NewWorkflow(composer, logger),
		cache:    cache,
		logger:   logger,
		tlm:      telemetry.NewHTTP(),
		tmpl:     tmpl,
	}, nil
}

// RegisterRoutes registers all console routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.Dashboard)

	r.Route("/panels", func(r chi.Router) {
		r.Get("/stats", h.StatsPanel)
		r.Get("/pending-orders", h.PendingOrdersPanel)
		r.Get("/tables", h.TablesPanel)
		r.Get("/menu", h.MenuPanel)
	})

	r.Route("/take-order", func(r chi.Router) {
		r.Get("/", h.OpenTakeOrder)
		r.Post("/action", h.ChooseOrderAction)
		r.Post("/patron", h.SelectOrderPatron)
		r.Get("/composition", h.Composition)
		r.Post("/items", h.AddOrderItem)
		r.Post("/items/quantity", h.ChangeOrderItemQuantity)
		r.Post("/items/remove", h.RemoveOrderItem)
		r.Post("/submit", h.SubmitOrder)
		r.Post("/close", h.CloseTakeOrder)
	})

	r.Post("/customers", h.CreateCustomer)

	r.Route("/mark-paid", func(r chi.Router) {
		r.Get("/", h.UnpaidOrdersList)
		r.Get("/orders/{id}", h.OrderPreview)
		r.Post("/orders/{id}/confirm", h.ConfirmPayment)
	})

	r.Route("/reports", func(r chi.Router) {
		r.Get("/", h.DailyReportModal)
		r.Get("/{tab}", h.ReportTab)
	})
}

func (h *Handler) log() apt.Logger {
	return h.logger
}

func (h *Handler) renderTemplate(w http.ResponseWriter, templateName string, data any) {
	if err := h.tmpl.ExecuteTemplate(w, templateName, data); err != nil {
		h.log().Error("error rendering template", "error", err, "template", templateName)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// renderError answers a panel or form request with an inline error box.
func (h *Handler) renderError(w http.ResponseWriter, status int, message string) {
	w.WriteHeader(status)
	h.renderTemplate(w, "error.html", map[string]any{
		"Message": message,
	})
}

// dashboardPageState carries one-shot feedback into the full page render.
type dashboardPageState struct {
	Error   string
	Success string
}

// Dashboard displays the console page. Panel content arrives through the
// fragment routes, so the page itself renders without backend calls.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.Dashboard")
	defer finish()

	state := dashboardPageState{
		Error:   r.URL.Query().Get("error"),
		Success: r.URL.Query().Get("success"),
	}

	data := map[string]any{
		"Title": "Front of House",
		"State": state,
	}
	h.renderTemplate(w, "dashboard.html", data)
}

// StatsPanel renders the dashboard counters. It prefers a live read and
// falls back to the refresh loop's last snapshot when the backend is
// unreachable, so the panel degrades to stale numbers instead of an error.
func (h *Handler) StatsPanel(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.StatsPanel")
	defer finish()

	ctx := r.Context()

	var (
		failures int
		stale    bool
	)
	qc, err := h.client.QueueCounts(ctx)
	if err != nil {
		failures++
	}
	pc, err := h.client.PendingOrderCounts(ctx)
	if err != nil {
		failures++
	}
	report, err := h.client.DailyReport(ctx)
	if err != nil {
		failures++
	}
	waiters, err := h.client.ListWaiters(ctx)
	if err != nil {
		failures++
	}

	stats := buildDashboardStats(qc, pc, report, waiters)
	if failures == 4 {
		snap := h.cache.Dashboard()
		if snap == nil {
			h.log().Error("stats panel unavailable", "error", err)
			h.renderError(w, http.StatusBadGateway, "Stats are unavailable right now.")
			return
		}
		stats = snap.Stats
		stale = true
	}

	h.renderTemplate(w, "stats.html", map[string]any{
		"Stats": stats,
		"Stale": stale,
	})
}
