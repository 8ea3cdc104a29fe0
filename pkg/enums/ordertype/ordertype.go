package ordertype

type OrderType struct {
	Name string
	Code int
}

func (t OrderType) Label() string {
	return t.Name
}

type Enum struct {
	DineIn  OrderType
	Takeout OrderType
}

var OrderTypes = Enum{
	DineIn:  OrderType{Name: "Dine-in", Code: 1},
	Takeout: OrderType{Name: "Takeout", Code: 0},
}

var All = []OrderType{
	OrderTypes.DineIn,
	OrderTypes.Takeout,
}

// ByCode returns the order type for a given wire code, or nil if not found
func ByCode(code int) *OrderType {
	for _, t := range All {
		if t.Code == code {
			return &t
		}
	}
	return nil
}

// IsDineIn reports whether a wire code represents dine-in service.
func IsDineIn(code int) bool {
	return code == OrderTypes.DineIn.Code
}
