package schema

// Tables of the GestorAPI schema the loader writes into. The schema is owned by
// the API's migrations; nothing here creates or alters it.
const (
	TableUsers       = "usuarios"
	TableCustomers   = "clientes"
	TableProducts    = "productos"
	TableInventory   = "inventarios"
	TableMovements   = "movimientos_inventario"
	TableOrders      = "pedidos"
	TableOrderItems  = "items_pedido"
	TableRoutes      = "rutas_entrega"
	TableRouteOrders = "ruta_pedidos"
)

// PrimaryKey is the identity column of every table except ruta_pedidos.
const PrimaryKey = "id"

// Dependencies maps each table to the tables its foreign keys reference.
// movimientos_inventario.pedido_id is nullable but still ordered after pedidos.
var Dependencies = map[string][]string{
	TableUsers:       nil,
	TableCustomers:   nil,
	TableProducts:    nil,
	TableInventory:   {TableProducts},
	TableOrders:      {TableCustomers},
	TableMovements:   {TableProducts, TableOrders},
	TableOrderItems:  {TableOrders, TableProducts},
	TableRoutes:      {TableUsers},
	TableRouteOrders: {TableRoutes, TableOrders},
}

// Common columns.
const (
	ColActive    = "activo"
	ColCreatedAt = "fecha_creacion"
	ColUpdatedAt = "fecha_actualizacion"
)

// usuarios
const (
	ColUserFullName       = "nombre_completo"
	ColUserEmail          = "email"
	ColUserPassword       = "password"
	ColUserRole           = "rol"
	ColUserPhone          = "telefono"
	ColUserCompanyAddress = "direccion_empresa"
	ColUserCompanyLat     = "latitud_empresa"
	ColUserCompanyLng     = "longitud_empresa"
	ColUserCompanyName    = "nombre_empresa"
)

// clientes
const (
	ColCustomerName      = "nombre"
	ColCustomerEmail     = "email"
	ColCustomerPassword  = "password"
	ColCustomerPhone     = "telefono"
	ColCustomerAddress   = "direccion"
	ColCustomerLat       = "latitud_cliente"
	ColCustomerLng       = "longitud_cliente"
	ColCustomerReference = "referencia_direccion"
)

// productos
const (
	ColProductName        = "nombre"
	ColProductSKU         = "sku"
	ColProductDescription = "descripcion"
	ColProductPrice       = "precio"
)

// inventarios
const (
	ColInventoryProductID    = "producto_id"
	ColInventoryQuantity     = "cantidad"
	ColInventoryLocation     = "ubicacion"
	ColInventoryMinimumStock = "stock_minimo"
	ColInventoryUpdatedAt    = "fecha_ultima_actualizacion"
)

// movimientos_inventario
const (
	ColMovementProductID = "producto_id"
	ColMovementType      = "tipo"
	ColMovementQuantity  = "cantidad"
	ColMovementReason    = "motivo"
	ColMovementOrderID   = "pedido_id"
	ColMovementDate      = "fecha_movimiento"
	ColMovementBefore    = "cantidad_anterior"
	ColMovementAfter     = "cantidad_nueva"
)

// pedidos
const (
	ColOrderCustomerID = "cliente_id"
	ColOrderStatus     = "estado"
	ColOrderTotal      = "total"
	ColOrderAddress    = "direccion_entrega"
	ColOrderNotes      = "observaciones"
	ColOrderDeliveryAt = "fecha_entrega"
	ColOrderDate       = "fecha_pedido"
)

// items_pedido
const (
	ColItemOrderID   = "pedido_id"
	ColItemProductID = "producto_id"
	ColItemQuantity  = "cantidad"
	ColItemUnitPrice = "precio_unitario"
	ColItemSubtotal  = "subtotal"
)

// rutas_entrega / ruta_pedidos
const (
	ColRouteDriverID   = "repartidor_id"
	ColRouteStatus     = "estado"
	ColRouteDate       = "fecha_ruta"
	ColRouteDistanceKm = "distancia_total_km"
	ColRouteDuration   = "tiempo_estimado_min"
	ColRouteOrderRoute = "ruta_id"
	ColRouteOrderOrder = "pedido_id"
)

// Contract describes the optional parts of the schema shape. Deployments of
// the API differ here, so the loader never guesses.
type Contract struct {
	// CustomerCredentials means clientes has a password column.
	CustomerCredentials bool `json:"customer_credentials" yaml:"customer_credentials" mapstructure:"customer_credentials"`
	// InventoryMovements enables an opening ENTRADA movement per inventory row.
	InventoryMovements bool `json:"inventory_movements" yaml:"inventory_movements" mapstructure:"inventory_movements"`
}
