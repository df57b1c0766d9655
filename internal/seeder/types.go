package seeder

import (
	"time"

	"github.com/Rana718/distria-seed/internal/database"
	"github.com/Rana718/distria-seed/internal/geo"
	"github.com/Rana718/distria-seed/internal/schema"
	"github.com/shopspring/decimal"
)

// User is an administrator or a driver. Only the administrator carries the
// company fields.
type User struct {
	ID              int64
	FullName        string
	Email           string
	PasswordHash    string
	Role            schema.Role
	Phone           string
	CompanyAddress  string
	CompanyName     string
	CompanyLocation *geo.Point
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (u User) row() database.Row {
	row := database.Row{
		schema.ColUserFullName: u.FullName,
		schema.ColUserEmail:    u.Email,
		schema.ColUserPassword: u.PasswordHash,
		schema.ColUserRole:     string(u.Role),
		schema.ColUserPhone:    u.Phone,
		schema.ColActive:       true,
		schema.ColCreatedAt:    u.CreatedAt,
		schema.ColUpdatedAt:    u.UpdatedAt,
	}
	if u.CompanyLocation != nil {
		row[schema.ColUserCompanyAddress] = u.CompanyAddress
		row[schema.ColUserCompanyName] = u.CompanyName
		row[schema.ColUserCompanyLat] = u.CompanyLocation.Lat
		row[schema.ColUserCompanyLng] = u.CompanyLocation.Lng
	}
	return row
}

type Customer struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Phone        string
	Address      string
	Location     geo.Point
	Reference    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (c Customer) row(withPassword bool) database.Row {
	row := database.Row{
		schema.ColCustomerName:      c.Name,
		schema.ColCustomerEmail:     c.Email,
		schema.ColCustomerPhone:     c.Phone,
		schema.ColCustomerAddress:   c.Address,
		schema.ColCustomerLat:       c.Location.Lat,
		schema.ColCustomerLng:       c.Location.Lng,
		schema.ColCustomerReference: c.Reference,
		schema.ColActive:            true,
		schema.ColCreatedAt:         c.CreatedAt,
		schema.ColUpdatedAt:         c.UpdatedAt,
	}
	if withPassword {
		row[schema.ColCustomerPassword] = c.PasswordHash
	}
	return row
}

type Product struct {
	ID          int64
	Name        string
	SKU         string
	Description string
	Price       decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (p Product) row() database.Row {
	return database.Row{
		schema.ColProductName:        p.Name,
		schema.ColProductSKU:         p.SKU,
		schema.ColProductDescription: p.Description,
		schema.ColProductPrice:       p.Price,
		schema.ColActive:             true,
		schema.ColCreatedAt:          p.CreatedAt,
		schema.ColUpdatedAt:          p.UpdatedAt,
	}
}

type InventoryRecord struct {
	ProductID    int64
	Quantity     int
	Location     string
	MinimumStock int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (i InventoryRecord) row() database.Row {
	return database.Row{
		schema.ColInventoryProductID:    i.ProductID,
		schema.ColInventoryQuantity:     i.Quantity,
		schema.ColInventoryLocation:     i.Location,
		schema.ColInventoryMinimumStock: i.MinimumStock,
		schema.ColActive:                true,
		schema.ColCreatedAt:             i.CreatedAt,
		schema.ColInventoryUpdatedAt:    i.UpdatedAt,
	}
}

// Movement is a stock change. The loader only writes the opening ENTRADA for
// each inventory record, so it never references an order.
type Movement struct {
	ProductID int64
	Type      schema.MovementType
	Quantity  int
	Reason    string
	Before    int
	After     int
	At        time.Time
}

func (m Movement) row() database.Row {
	return database.Row{
		schema.ColMovementProductID: m.ProductID,
		schema.ColMovementType:      string(m.Type),
		schema.ColMovementQuantity:  m.Quantity,
		schema.ColMovementReason:    m.Reason,
		schema.ColMovementBefore:    m.Before,
		schema.ColMovementAfter:     m.After,
		schema.ColMovementDate:      m.At,
	}
}

type OrderItem struct {
	ProductID int64
	Quantity  int
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
}

func NewOrderItem(product Product, quantity int) OrderItem {
	return OrderItem{
		ProductID: product.ID,
		Quantity:  quantity,
		UnitPrice: product.Price,
		Subtotal:  product.Price.Mul(decimal.NewFromInt(int64(quantity))),
	}
}

func (i OrderItem) row(orderID int64) database.Row {
	return database.Row{
		schema.ColItemOrderID:   orderID,
		schema.ColItemProductID: i.ProductID,
		schema.ColItemQuantity:  i.Quantity,
		schema.ColItemUnitPrice: i.UnitPrice,
		schema.ColItemSubtotal:  i.Subtotal,
	}
}

type Order struct {
	ID          int64
	CustomerID  int64
	Status      schema.OrderStatus
	Total       decimal.Decimal
	Address     string
	Notes       *string
	DeliveredAt *time.Time
	OrderedAt   time.Time
	UpdatedAt   time.Time
	Items       []OrderItem
}

// ItemsTotal sums the subtotals of the order's items.
func (o Order) ItemsTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Subtotal)
	}
	return total
}

// row is the initial insert; the total starts at zero and is written back
// once the items exist.
func (o Order) row() database.Row {
	row := database.Row{
		schema.ColOrderCustomerID: o.CustomerID,
		schema.ColOrderStatus:     string(o.Status),
		schema.ColOrderTotal:      decimal.Zero,
		schema.ColOrderAddress:    o.Address,
		schema.ColOrderNotes:      nil,
		schema.ColOrderDeliveryAt: nil,
		schema.ColActive:          true,
		schema.ColOrderDate:       o.OrderedAt,
		schema.ColUpdatedAt:       o.UpdatedAt,
	}
	if o.Notes != nil {
		row[schema.ColOrderNotes] = *o.Notes
	}
	if o.DeliveredAt != nil {
		row[schema.ColOrderDeliveryAt] = *o.DeliveredAt
	}
	return row
}

type Route struct {
	ID          int64
	DriverID    int64
	Status      schema.RouteStatus
	Date        time.Time
	DistanceKm  float64
	DurationMin int
	OrderIDs    []int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (r Route) row() database.Row {
	return database.Row{
		schema.ColRouteDriverID:   r.DriverID,
		schema.ColRouteStatus:     string(r.Status),
		schema.ColRouteDate:       r.Date,
		schema.ColRouteDistanceKm: r.DistanceKm,
		schema.ColRouteDuration:   r.DurationMin,
		schema.ColActive:          true,
		schema.ColCreatedAt:       r.CreatedAt,
		schema.ColUpdatedAt:       r.UpdatedAt,
	}
}

// Result is everything a run inserted, in insertion order.
type Result struct {
	Admin     User
	Drivers   []User
	Customers []Customer
	Products  []Product
	Inventory []InventoryRecord
	Movements []Movement
	Orders    []Order
	Routes    []Route
}

// AssignedOrders counts route_orders rows.
func (r *Result) AssignedOrders() int {
	n := 0
	for _, route := range r.Routes {
		n += len(route.OrderIDs)
	}
	return n
}

func (r *Result) OrderItems() int {
	n := 0
	for _, order := range r.Orders {
		n += len(order.Items)
	}
	return n
}
