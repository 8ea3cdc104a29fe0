package posapi

// Patron is a customer record as the POS backend reports it. OrderType
// is the numeric service code (1 dine-in, 0 takeout); order responses
// carry the spelled-out label instead. TableNumber and WaiterName are
// absent for takeout patrons and for dine-in patrons that have not been
// seated yet.
type Patron struct {
	ID          int     `json:"id"`
	GroupSize   int     `json:"groupSize"`
	OrderType   int     `json:"orderType"`
	TableNumber *int    `json:"tableNumber,omitempty"`
	WaiterName  *string `json:"waiterName,omitempty"`
}

// CreatedPatron is the backend's acknowledgment of a new patron.
// ServiceType echoes the numeric code that was submitted.
type CreatedPatron struct {
	ID          int    `json:"id"`
	GroupSize   int    `json:"groupSize"`
	ServiceType int    `json:"serviceType"`
	Message     string `json:"message"`
}

// DineInAvailability reports whether the backend can seat a dine-in
// party of a given size right now.
type DineInAvailability struct {
	CanAccept        bool   `json:"canAccept"`
	WaitersAvailable bool   `json:"waitersAvailable"`
	TablesAvailable  bool   `json:"tablesAvailable"`
	Message          string `json:"message"`
}

// QueueCounts are patrons waiting without an order yet.
type QueueCounts struct {
	DineInQueue  int `json:"dineInQueue"`
	TakeoutQueue int `json:"takeoutQueue"`
}

// PendingCounts are unpaid orders broken down by service type.
type PendingCounts struct {
	DineInPending  int `json:"dineInPending"`
	TakeoutPending int `json:"takeoutPending"`
}

// MenuItem is a single sellable item. Description is only populated by
// the items-with-descriptions endpoint.
type MenuItem struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Description string  `json:"description,omitempty"`
}

// OrderItem is one line of an order on the wire. Category rides along on
// reads and is ignored by the backend on writes.
type OrderItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Category string  `json:"category,omitempty"`
}

// Order is a full order record. OrderType arrives as the backend's
// display label ("Dine-in", "Takeout" or "Unknown"), not the numeric
// patron code. TotalItems is only set on the pending orders listing.
type Order struct {
	OrderID     int         `json:"orderId"`
	PatronID    int         `json:"patronId"`
	TotalAmount float64     `json:"totalAmount"`
	Items       []OrderItem `json:"items"`
	WaiterName  *string     `json:"waiterName,omitempty"`
	OrderType   string      `json:"orderType"`
	TableNumber *int        `json:"tableNumber,omitempty"`
	IsPaid      bool        `json:"isPaid"`
	TotalItems  int         `json:"totalItems,omitempty"`
}

// OrderReceiptUpdate acknowledges an order creation or an item append.
// TotalAmount is the authoritative total after the change.
type OrderReceiptUpdate struct {
	OrderID     int     `json:"orderId"`
	TotalAmount float64 `json:"totalAmount"`
	Message     string  `json:"message"`
}

// Receipt is the final snapshot the backend returns when an order is
// paid. OrderType is the display label, as on Order.
type Receipt struct {
	OrderID     int         `json:"orderId"`
	TotalAmount float64     `json:"totalAmount"`
	Items       []OrderItem `json:"items"`
	WaiterName  string      `json:"waiterName"`
	OrderType   string      `json:"orderType"`
	TableNumber *int        `json:"tableNumber,omitempty"`
	Timestamp   string      `json:"timestamp"`
}

// PaymentResult wraps the mark-paid acknowledgment and its receipt.
type PaymentResult struct {
	Message   string  `json:"message"`
	OrderID   int     `json:"orderId"`
	OrderData Receipt `json:"orderData"`
}

// Table is one seat-group with its occupancy state.
type Table struct {
	TableNumber int          `json:"tableNumber"`
	TableSize   int          `json:"tableSize"`
	Occupied    bool         `json:"occupied"`
	Patron      *TablePatron `json:"patron,omitempty"`
}

// TablePatron identifies the party occupying a table.
type TablePatron struct {
	ID int `json:"id"`
}

// TableStatusSummary is the aggregate occupancy view.
type TableStatusSummary struct {
	TotalTables     int `json:"totalTables"`
	OccupiedTables  int `json:"occupiedTables"`
	AvailableTables int `json:"availableTables"`
}

// WaiterStats is a waiter's current load and earnings. The detailed
// listing additionally fills the assignment fields.
type WaiterStats struct {
	Name                string  `json:"name"`
	StaffID             string  `json:"staffId"`
	DineInCount         int     `json:"dineInCount"`
	TakeOutCount        int     `json:"takeOutCount"`
	TotalCustomers      int     `json:"totalCustomers"`
	TotalSales          float64 `json:"totalSales"`
	TotalCommission     float64 `json:"totalCommission"`
	Status              string  `json:"status"`
	AssignedDineInCount int     `json:"assignedDineInCount,omitempty"`
	AvailableForDineIn  bool    `json:"availableForDineIn,omitempty"`
	AvailableForTakeOut bool    `json:"availableForTakeOut,omitempty"`
}

// WaiterAvailability reports whether any waiter can take a dine-in party.
type WaiterAvailability struct {
	Available bool `json:"available"`
	Count     int  `json:"count"`
}

// OverviewReport aggregates the day's orders and revenue.
type OverviewReport struct {
	TotalOrders       int     `json:"totalOrders"`
	TotalRevenue      float64 `json:"totalRevenue"`
	AverageOrderValue float64 `json:"averageOrderValue"`
	DineInRate        float64 `json:"dineInRate"`
	DineInOrders      int     `json:"dineInOrders"`
	TakeoutOrders     int     `json:"takeoutOrders"`
	DineInRevenue     float64 `json:"dineInRevenue"`
	TakeoutRevenue    float64 `json:"takeoutRevenue"`
}

// StaffReportRow is one waiter's line in the staff performance report.
type StaffReportRow struct {
	WaiterName    string  `json:"waiterName"`
	StaffID       string  `json:"staffId"`
	DineInOrders  int     `json:"dineInOrders"`
	TakeoutOrders int     `json:"takeoutOrders"`
	TotalSales    float64 `json:"totalSales"`
	Commission    float64 `json:"commission"`
	Status        string  `json:"status"`
}

// StaffReport lists per-waiter performance.
type StaffReport struct {
	Waiters []StaffReportRow `json:"waiters"`
}

// MenuReportRow is one item's sales line in the menu report.
type MenuReportRow struct {
	ItemName     string  `json:"itemName"`
	Category     string  `json:"category"`
	QuantitySold int     `json:"quantitySold"`
	Revenue      float64 `json:"revenue"`
	AveragePrice float64 `json:"averagePrice"`
}

// MenuReport lists item sales.
type MenuReport struct {
	Items []MenuReportRow `json:"items"`
}

// FinanceReport is the day's money summary.
type FinanceReport struct {
	TotalRevenue float64 `json:"totalRevenue"`
	StaffSalary  float64 `json:"staffSalary"`
	NetIncome    float64 `json:"netIncome"`
}

// DailyReport bundles all four report sections.
type DailyReport struct {
	Overview OverviewReport `json:"overview"`
	Staff    StaffReport    `json:"staff"`
	Menu     MenuReport     `json:"menu"`
	Finance  FinanceReport  `json:"finance"`
}
