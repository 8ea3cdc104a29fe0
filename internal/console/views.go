package console

import (
	"fmt"
	"sort"

	"github.com/tableside/foh/internal/posapi"
	"github.com/tableside/foh/pkg/enums/ordertype"
)

// View models are plain render-ready values: all formatting, optional-field
// defaulting and ordering happens here, never in templates.

type menuItemView struct {
	Name        string
	Description string
	Price       string
	PriceValue  float64
}

type menuCategoryView struct {
	Name  string
	Items []menuItemView
}

type tableCardView struct {
	Number      int
	Seats       int
	Occupied    bool
	StatusLabel string
	PatronLabel string
}

type tablesPageView struct {
	Cards     []tableCardView
	Total     int
	Occupied  int
	Available int
	Empty     bool
}

type orderLineView struct {
	Name      string
	Quantity  int
	UnitPrice string
	LineTotal string
	Editable  bool
}

type compositionView struct {
	Existing       []orderLineView
	Added          []orderLineView
	EstimatedTotal string
	Empty          bool
}

type pendingOrderView struct {
	OrderID     int
	Amount      string
	PatronLabel string
	WaiterLabel string
	TypeLabel   string
	ItemCount   int
	TableLabel  string
}

type receiptLineView struct {
	Quantity  int
	Name      string
	LineTotal string
}

type receiptView struct {
	OrderID     int
	Timestamp   string
	TypeLabel   string
	WaiterLabel string
	TableLabel  string
	Lines       []receiptLineView
	Total       string
}

type dashboardStatsView struct {
	DineInQueue    int
	TakeoutQueue   int
	DineInPending  int
	TakeoutPending int
	OrdersToday    int
	ActiveStaff    int
}

type overviewReportView struct {
	TotalOrders    int
	TotalRevenue   string
	AverageOrder   string
	DineInRate     string
	DineInOrders   int
	TakeoutOrders  int
	DineInRevenue  string
	TakeoutRevenue string
}

type staffReportRowView struct {
	Name          string
	StaffID       string
	DineInOrders  int
	TakeoutOrders int
	TotalSales    string
	Commission    string
	Status        string
}

type staffReportView struct {
	Rows  []staffReportRowView
	Empty bool
}

type menuReportRowView struct {
	Name         string
	Category     string
	QuantitySold int
	Revenue      string
	AveragePrice string
}

type menuReportView struct {
	Rows  []menuReportRowView
	Empty bool
}

type financeReportView struct {
	TotalRevenue string
	StaffSalary  string
	NetIncome    string
}

type dailyReportView struct {
	Overview overviewReportView
	Staff    staffReportView
	Menu     menuReportView
	Finance  financeReportView
}

// formatMoney renders backend amounts with the house currency prefix.
func formatMoney(amount float64) string {
	return fmt.Sprintf("R %.2f", amount)
}

// orderTypeLabel maps a patron's numeric service code to its label.
func orderTypeLabel(code int) string {
	if t := ordertype.ByCode(code); t != nil {
		return t.Label()
	}
	return "Unknown"
}

// orderTypeText passes through the label order responses already carry.
func orderTypeText(label string) string {
	if label == "" {
		return "Unknown"
	}
	return label
}

func waiterLabel(name *string) string {
	if name == nil || *name == "" {
		return "Unassigned"
	}
	return *name
}

func tableLabel(number *int) string {
	if number == nil || *number == 0 {
		return "-"
	}
	return fmt.Sprintf("Table %d", *number)
}

// buildMenuView groups items by category, categories in first-seen order.
func buildMenuView(items []posapi.MenuItem) []menuCategoryView {
	var categories []menuCategoryView
	index := map[string]int{}
	for _, it := range items {
		i, ok := index[it.Category]
		if !ok {
			i = len(categories)
			index[it.Category] = i
			categories = append(categories, menuCategoryView{Name: it.Category})
		}
		categories[i].Items = append(categories[i].Items, menuItemView{
			Name:        it.Name,
			Description: it.Description,
			Price:       formatMoney(it.Price),
			PriceValue:  it.Price,
		})
	}
	return categories
}

func buildTablesView(tables []posapi.Table, summary posapi.TableStatusSummary) tablesPageView {
	view := tablesPageView{
		Total:     summary.TotalTables,
		Occupied:  summary.OccupiedTables,
		Available: summary.AvailableTables,
		Empty:     len(tables) == 0,
	}
	for _, tb := range tables {
		card := tableCardView{
			Number:      tb.TableNumber,
			Seats:       tb.TableSize,
			Occupied:    tb.Occupied,
			StatusLabel: "Available",
			PatronLabel: "-",
		}
		if tb.Occupied {
			card.StatusLabel = "Occupied"
			if tb.Patron != nil {
				card.PatronLabel = fmt.Sprintf("Customer #%d", tb.Patron.ID)
			}
		}
		view.Cards = append(view.Cards, card)
	}
	sort.Slice(view.Cards, func(i, j int) bool {
		return view.Cards[i].Number < view.Cards[j].Number
	})
	return view
}

// buildCompositionView renders the modal's item list: persisted lines are
// read-only, lines added this session carry edit controls.
func buildCompositionView(existing, added []LineItem) compositionView {
	view := compositionView{
		Empty: len(existing) == 0 && len(added) == 0,
	}
	var total float64
	for _, it := range existing {
		total += it.Price * float64(it.Quantity)
		view.Existing = append(view.Existing, orderLineView{
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: formatMoney(it.Price),
			LineTotal: formatMoney(it.Price * float64(it.Quantity)),
		})
	}
	for _, it := range added {
		total += it.Price * float64(it.Quantity)
		view.Added = append(view.Added, orderLineView{
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: formatMoney(it.Price),
			LineTotal: formatMoney(it.Price * float64(it.Quantity)),
			Editable:  true,
		})
	}
	view.EstimatedTotal = formatMoney(total)
	return view
}

func buildPendingOrderViews(orders []posapi.Order) []pendingOrderView {
	var views []pendingOrderView
	for _, o := range orders {
		count := o.TotalItems
		if count == 0 {
			for _, it := range o.Items {
				count += it.Quantity
			}
		}
		views = append(views, pendingOrderView{
			OrderID:     o.OrderID,
			Amount:      formatMoney(o.TotalAmount),
			PatronLabel: fmt.Sprintf("Customer #%d", o.PatronID),
			WaiterLabel: waiterLabel(o.WaiterName),
			TypeLabel:   orderTypeText(o.OrderType),
			ItemCount:   count,
			TableLabel:  tableLabel(o.TableNumber),
		})
	}
	return views
}

func buildReceiptView(r posapi.Receipt) receiptView {
	view := receiptView{
		OrderID:     r.OrderID,
		Timestamp:   r.Timestamp,
		TypeLabel:   orderTypeText(r.OrderType),
		WaiterLabel: r.WaiterName,
		TableLabel:  tableLabel(r.TableNumber),
		Total:       formatMoney(r.TotalAmount),
	}
	if view.WaiterLabel == "" {
		view.WaiterLabel = "Unassigned"
	}
	for _, it := range r.Items {
		view.Lines = append(view.Lines, receiptLineView{
			Quantity:  it.Quantity,
			Name:      it.Name,
			LineTotal: formatMoney(it.Price * float64(it.Quantity)),
		})
	}
	return view
}

func buildDashboardStats(qc posapi.QueueCounts, pc posapi.PendingCounts, report posapi.DailyReport, waiters []posapi.WaiterStats) dashboardStatsView {
	return dashboardStatsView{
		DineInQueue:    qc.DineInQueue,
		TakeoutQueue:   qc.TakeoutQueue,
		DineInPending:  pc.DineInPending,
		TakeoutPending: pc.TakeoutPending,
		OrdersToday:    report.Overview.TotalOrders,
		ActiveStaff:    len(waiters),
	}
}

func buildOverviewView(r posapi.OverviewReport) overviewReportView {
	return overviewReportView{
		TotalOrders:    r.TotalOrders,
		TotalRevenue:   formatMoney(r.TotalRevenue),
		AverageOrder:   formatMoney(r.AverageOrderValue),
		DineInRate:     fmt.Sprintf("%.1f%%", r.DineInRate),
		DineInOrders:   r.DineInOrders,
		TakeoutOrders:  r.TakeoutOrders,
		DineInRevenue:  formatMoney(r.DineInRevenue),
		TakeoutRevenue: formatMoney(r.TakeoutRevenue),
	}
}

func buildStaffView(r posapi.StaffReport) staffReportView {
	view := staffReportView{Empty: len(r.Waiters) == 0}
	for _, w := range r.Waiters {
		view.Rows = append(view.Rows, staffReportRowView{
			Name:          w.WaiterName,
			StaffID:       w.StaffID,
			DineInOrders:  w.DineInOrders,
			TakeoutOrders: w.TakeoutOrders,
			TotalSales:    formatMoney(w.TotalSales),
			Commission:    formatMoney(w.Commission),
			Status:        w.Status,
		})
	}
	return view
}

// buildMenuReportView orders items by units sold, best seller first.
func buildMenuReportView(r posapi.MenuReport) menuReportView {
	view := menuReportView{Empty: len(r.Items) == 0}
	rows := append([]posapi.MenuReportRow(nil), r.Items...)
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].QuantitySold > rows[j].QuantitySold
	})
	for _, row := range rows {
		view.Rows = append(view.Rows, menuReportRowView{
			Name:         row.ItemName,
			Category:     row.Category,
			QuantitySold: row.QuantitySold,
			Revenue:      formatMoney(row.Revenue),
			AveragePrice: formatMoney(row.AveragePrice),
		})
	}
	return view
}

func buildFinanceView(r posapi.FinanceReport) financeReportView {
	return financeReportView{
		TotalRevenue: formatMoney(r.TotalRevenue),
		StaffSalary:  formatMoney(r.StaffSalary),
		NetIncome:    formatMoney(r.NetIncome),
	}
}

func buildDailyReportView(r posapi.DailyReport) dailyReportView {
	return dailyReportView{
		Overview: buildOverviewView(r.Overview),
		Staff:    buildStaffView(r.Staff),
		Menu:     buildMenuReportView(r.Menu),
		Finance:  buildFinanceView(r.Finance),
	}
}
