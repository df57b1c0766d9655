package schema

type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleDriver Role = "REPARTIDOR"
)

type OrderStatus string

const (
	OrderPending    OrderStatus = "PENDIENTE"
	OrderProcessing OrderStatus = "EN_PROCESO"
	OrderInTransit  OrderStatus = "EN_CAMINO"
	OrderDelivered  OrderStatus = "ENTREGADO"
	OrderCancelled  OrderStatus = "CANCELADO"
)

// OrderStatuses is the enumeration order used when drawing a random status.
var OrderStatuses = []OrderStatus{
	OrderPending,
	OrderProcessing,
	OrderInTransit,
	OrderDelivered,
	OrderCancelled,
}

// Completes reports whether an order in this status carries a delivery timestamp.
func (s OrderStatus) Completes() bool {
	return s == OrderDelivered || s == OrderInTransit
}

// Routable reports whether an order in this status may be assigned to a route.
func (s OrderStatus) Routable() bool {
	return s != OrderCancelled
}

type RouteStatus string

const (
	RoutePlanned    RouteStatus = "PLANIFICADA"
	RouteInProgress RouteStatus = "EN_CURSO"
	RouteCompleted  RouteStatus = "COMPLETADA"
	RouteCancelled  RouteStatus = "CANCELADA"
)

var RouteStatuses = []RouteStatus{
	RoutePlanned,
	RouteInProgress,
	RouteCompleted,
	RouteCancelled,
}

type MovementType string

const (
	MovementIn MovementType = "ENTRADA"
)
