package console

import (
	"context"
	"errors"

	"github.com/tableside/foh/internal/posapi"
)

// MockPOSClient implements posapi.Client for testing
type MockPOSClient struct {
	QueueCountsFunc             func(ctx context.Context) (posapi.QueueCounts, error)
	PendingOrderCountsFunc      func(ctx context.Context) (posapi.PendingCounts, error)
	ListWaitersFunc             func(ctx context.Context) ([]posapi.WaiterStats, error)
	ListWaitersDetailedFunc     func(ctx context.Context) ([]posapi.WaiterStats, error)
	CheckWaiterAvailabilityFunc func(ctx context.Context) (posapi.WaiterAvailability, error)
	ListTablesFunc              func(ctx context.Context) ([]posapi.Table, error)
	TableStatusFunc             func(ctx context.Context) (posapi.TableStatusSummary, error)
	ListPatronsFunc             func(ctx context.Context) ([]posapi.Patron, error)
	PatronsWithoutOrdersFunc    func(ctx context.Context) ([]posapi.Patron, error)
	DineInPatronsWithOrdersFunc func(ctx context.Context) ([]posapi.Patron, error)
	GetPatronFunc               func(ctx context.Context, id int) (posapi.Patron, error)
	CheckDineInAvailabilityFunc func(ctx context.Context, groupSize int) (posapi.DineInAvailability, error)
	CreatePatronFunc            func(ctx context.Context, orderType, groupSize int) (posapi.CreatedPatron, error)
	MenuWithDescriptionsFunc    func(ctx context.Context) ([]posapi.MenuItem, error)
	MenuByCategoryFunc          func(ctx context.Context, category string) ([]posapi.MenuItem, error)
	PendingOrdersFunc           func(ctx context.Context) ([]posapi.Order, error)
	UnpaidOrdersFunc            func(ctx context.Context) ([]posapi.Order, error)
	GetOrderFunc                func(ctx context.Context, id int) (posapi.Order, error)
	OrderByPatronFunc           func(ctx context.Context, patronID int) (posapi.Order, error)
	CreateOrderFunc             func(ctx context.Context, patronID int, items []posapi.OrderItem) (posapi.OrderReceiptUpdate, error)
	AddItemsFunc                func(ctx context.Context, orderID int, items []posapi.OrderItem) (posapi.OrderReceiptUpdate, error)
	MarkPaidFunc                func(ctx context.Context, orderID int) (posapi.PaymentResult, error)
	DailyReportFunc             func(ctx context.Context) (posapi.DailyReport, error)
	OverviewReportFunc          func(ctx context.Context) (posapi.OverviewReport, error)
	StaffReportFunc             func(ctx context.Context) (posapi.StaffReport, error)
	MenuReportFunc              func(ctx context.Context) (posapi.MenuReport, error)
	FinanceReportFunc           func(ctx context.Context) (posapi.FinanceReport, error)
}

func (m *MockPOSClient) QueueCounts(ctx context.Context) (posapi.QueueCounts, error) {
	if m.QueueCountsFunc != nil {
		return m.QueueCountsFunc(ctx)
	}
	return posapi.QueueCounts{}, nil
}

func (m *MockPOSClient) PendingOrderCounts(ctx context.Context) (posapi.PendingCounts, error) {
	if m.PendingOrderCountsFunc != nil {
		return m.PendingOrderCountsFunc(ctx)
	}
	return posapi.PendingCounts{}, nil
}

func (m *MockPOSClient) ListWaiters(ctx context.Context) ([]posapi.WaiterStats, error) {
	if m.ListWaitersFunc != nil {
		return m.ListWaitersFunc(ctx)
	}
	return nil, nil
}

func (m *MockPOSClient) ListWaitersDetailed(ctx context.Context) ([]posapi.WaiterStats, error) {
	if m.ListWaitersDetailedFunc != nil {
		return m.ListWaitersDetailedFunc(ctx)
	}
	return nil, nil
}

func (m *MockPOSClient) CheckWaiterAvailability(ctx context.Context) (posapi.WaiterAvailability, error) {
	if m.CheckWaiterAvailabilityFunc != nil {
		return m.CheckWaiterAvailabilityFunc(ctx)
	}
	return posapi.WaiterAvailability{}, nil
}

func (m *MockPOSClient) ListTables(ctx context.Context) ([]posapi.Table, error) {
	if m.ListTablesFunc != nil {
		return m.ListTablesFunc(ctx)
	}
	return nil, nil
}

func (m *MockPOSClient) TableStatus(ctx context.Context) (posapi.TableStatusSummary, error) {
	if m.TableStatusFunc != nil {
		return m.TableStatusFunc(ctx)
	}
	return posapi.TableStatusSummary{}, nil
}

func (m *MockPOSClient) ListPatrons(ctx context.Context) ([]posapi.Patron, error) {
	if m.ListPatronsFunc != nil {
		return m.ListPatronsFunc(ctx)
	}
	return nil, nil
}

func (m *MockPOSClient) PatronsWithoutOrders(ctx context.Context) ([]posapi.Patron, error) {
	if m.PatronsWithoutOrdersFunc != nil {
		return m.PatronsWithoutOrdersFunc(ctx)
	}
	return nil, nil
}

func (m *MockPOSClient) DineInPatronsWithOrders(ctx context.Context) ([]posapi.Patron, error) {
	if m.DineInPatronsWithOrdersFunc != nil {
		return m.DineInPatronsWithOrdersFunc(ctx)
	}
	return nil, nil
}

func (m *MockPOSClient) GetPatron(ctx context.Context, id int) (posapi.Patron, error) {
	if m.GetPatronFunc != nil {
		return m.GetPatronFunc(ctx, id)
	}
	return posapi.Patron{}, errors.New("not implemented")
}

func (m *MockPOSClient) CheckDineInAvailability(ctx context.Context, groupSize int) (posapi.DineInAvailability, error) {
	if m.CheckDineInAvailabilityFunc != nil {
		return m.CheckDineInAvailabilityFunc(ctx, groupSize)
	}
	return posapi.DineInAvailability{}, errors.New("not implemented")
}

func (m *MockPOSClient) CreatePatron(ctx context.Context, orderType, groupSize int) (posapi.CreatedPatron, error) {
	if m.CreatePatronFunc != nil {
		return m.CreatePatronFunc(ctx, orderType, groupSize)
	}
	return posapi.CreatedPatron{}, errors.New("not implemented")
}

func (m *MockPOSClient) MenuWithDescriptions(ctx context.Context) ([]posapi.MenuItem, error) {
	if m.MenuWithDescriptionsFunc != nil {
		return m.MenuWithDescriptionsFunc(ctx)
	}
	return nil, nil
}

func (m *MockPOSClient) MenuByCategory(ctx context.Context, category string) ([]posapi.MenuItem, error) {
	if m.MenuByCategoryFunc != nil {
		return m.MenuByCategoryFunc(ctx, category)
	}
	return nil, nil
}

func (m *MockPOSClient) PendingOrders(ctx context.Context) ([]posapi.Order, error) {
	if m.PendingOrdersFunc != nil {
		return m.PendingOrdersFunc(ctx)
	}
	return nil, nil
}

func (m *MockPOSClient) UnpaidOrders(ctx context.Context) ([]posapi.Order, error) {
	if m.UnpaidOrdersFunc != nil {
		return m.UnpaidOrdersFunc(ctx)
	}
	return nil, nil
}

func (m *MockPOSClient) GetOrder(ctx context.Context, id int) (posapi.Order, error) {
	if m.GetOrderFunc != nil {
		return m.GetOrderFunc(ctx, id)
	}
	return posapi.Order{}, errors.New("not implemented")
}

func (m *MockPOSClient) OrderByPatron(ctx context.Context, patronID int) (posapi.Order, error) {
	if m.OrderByPatronFunc != nil {
		return m.OrderByPatronFunc(ctx, patronID)
	}
	return posapi.Order{}, errors.New("not implemented")
}

func (m *MockPOSClient) CreateOrder(ctx context.Context, patronID int, items []posapi.OrderItem) (posapi.OrderReceiptUpdate, error) {
	if m.CreateOrderFunc != nil {
		return m.CreateOrderFunc(ctx, patronID, items)
	}
	return posapi.OrderReceiptUpdate{}, errors.New("not implemented")
}

func (m *MockPOSClient) AddItems(ctx context.Context, orderID int, items []posapi.OrderItem) (posapi.OrderReceiptUpdate, error) {
	if m.AddItemsFunc != nil {
		return m.AddItemsFunc(ctx, orderID, items)
	}
	return posapi.OrderReceiptUpdate{}, errors.New("not implemented")
}

func (m *MockPOSClient) MarkPaid(ctx context.Context, orderID int) (posapi.PaymentResult, error) {
	if m.MarkPaidFunc != nil {
		return m.MarkPaidFunc(ctx, orderID)
	}
	return posapi.PaymentResult{}, errors.New("not implemented")
}

func (m *MockPOSClient) DailyReport(ctx context.Context) (posapi.DailyReport, error) {
	if m.DailyReportFunc != nil {
		return m.DailyReportFunc(ctx)
	}
	return posapi.DailyReport{}, nil
}

func (m *MockPOSClient) OverviewReport(ctx context.Context) (posapi.OverviewReport, error) {
	if m.OverviewReportFunc != nil {
		return m.OverviewReportFunc(ctx)
	}
	return posapi.OverviewReport{}, nil
}

func (m *MockPOSClient) StaffReport(ctx context.Context) (posapi.StaffReport, error) {
	if m.StaffReportFunc != nil {
		return m.StaffReportFunc(ctx)
	}
	return posapi.StaffReport{}, nil
}

func (m *MockPOSClient) MenuReport(ctx context.Context) (posapi.MenuReport, error) {
	if m.MenuReportFunc != nil {
		return m.MenuReportFunc(ctx)
	}
	return posapi.MenuReport{}, nil
}

func (m *MockPOSClient) FinanceReport(ctx context.Context) (posapi.FinanceReport, error) {
	if m.FinanceReportFunc != nil {
		return m.FinanceReportFunc(ctx)
	}
	return posapi.FinanceReport{}, nil
}
