package seeder

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Rana718/distria-seed/internal/config"
	"github.com/Rana718/distria-seed/internal/database"
	"github.com/Rana718/distria-seed/internal/geo"
	"github.com/Rana718/distria-seed/internal/schema"
	"github.com/fatih/color"
	"golang.org/x/crypto/bcrypt"
)

const (
	companyName     = "DistrIA Logistics Bolivia"
	companyAddress  = "Av. Monseñor Rivero #123, Santa Cruz de la Sierra"
	adminFullName   = "Juan Carlos Pérez - Gerente General"
	adminPhone      = "+591 3 123-4567"
	driverEmailFmt  = "repartidor%d@distria.com"
	openingReason   = "Stock inicial"
	ordersPerRoute  = 5
	minRouteOrders  = 3
	maxRouteOrders  = 8
	minOrderItems   = 1
	maxOrderItems   = 5
	defaultInterval = 100
)

// PasswordHasher turns a fixture password into the stored credential.
type PasswordHasher func(password string, cost int) (string, error)

// BcryptHasher produces hashes Spring Security's BCryptPasswordEncoder accepts.
func BcryptHasher(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

type Option func(*Seeder)

func WithReporter(r *Reporter) Option {
	return func(s *Seeder) { s.report = r }
}

func WithHasher(h PasswordHasher) Option {
	return func(s *Seeder) { s.hash = h }
}

func WithGenerator(g *DataGenerator) Option {
	return func(s *Seeder) { s.gen = g }
}

// Seeder loads one complete fixture dataset into a sink. It is single-use and
// not safe for concurrent calls.
type Seeder struct {
	sink        database.Sink
	cfg         *config.Config
	gen         *DataGenerator
	report      *Reporter
	hash        PasswordHasher
	graph       *DependencyGraph
	commitEvery int
}

func New(sink database.Sink, cfg *config.Config, opts ...Option) *Seeder {
	s := &Seeder{
		sink:        sink,
		cfg:         cfg,
		hash:        BcryptHasher,
		graph:       NewDependencyGraph(),
		commitEvery: cfg.CommitEvery,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.gen == nil {
		var genOpts []GeneratorOption
		if cfg.Addresses == config.AddressFaker {
			genOpts = append(genOpts, WithFakerAddresses())
		}
		s.gen = NewDataGenerator(cfg.Seed, genOpts...)
	}
	if s.report == nil {
		s.report = NewReporter(color.Output)
	}
	if s.commitEvery <= 0 {
		s.commitEvery = defaultInterval
	}

	for table, deps := range schema.Dependencies {
		s.graph.AddTable(table, deps...)
	}
	return s
}

type phase struct {
	name string
	run  func(ctx context.Context, res *Result) error
}

// Run executes every phase in order. Each phase ends with a commit, so an
// error leaves the earlier phases in place.
func (s *Seeder) Run(ctx context.Context) (res *Result, err error) {
	res = &Result{}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("seeder panicked: %v", r)
		}
	}()

	phases := []phase{
		{"truncate", s.truncate},
		{"administrator", s.seedAdmin},
		{"drivers", s.seedDrivers},
		{"customers", s.seedCustomers},
		{"products", s.seedProducts},
		{"inventory", s.seedInventory},
		{"orders", s.seedOrders},
		{"routes", s.seedRoutes},
	}

	s.report.Rule()
	s.report.Step("🚀 Seeding DistrIA fixture data")
	s.report.Rule()

	for _, p := range phases {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if err := p.run(ctx, res); err != nil {
			return res, fmt.Errorf("%s phase failed: %w", p.name, err)
		}
		if err := s.sink.Commit(ctx); err != nil {
			return res, fmt.Errorf("%s phase failed: %w", p.name, err)
		}
	}

	PrintSummary(s.report, s.cfg, res)
	return res, nil
}

// checkpoint commits and reports progress every commitEvery rows.
func (s *Seeder) checkpoint(ctx context.Context, done, total int, what string) error {
	if done%s.commitEvery != 0 {
		return nil
	}
	s.report.Progress(done, total, what)
	if err := s.sink.Commit(ctx); err != nil {
		return err
	}
	return ctx.Err()
}

func (s *Seeder) truncate(ctx context.Context, _ *Result) error {
	s.report.Step("🗑️  Truncating tables...")

	order, err := s.graph.TruncationOrder()
	if err != nil {
		return err
	}
	if err := s.sink.Truncate(ctx, order...); err != nil {
		return err
	}

	s.report.Success("Truncated %s", strings.Join(order, ", "))
	s.report.Blank()
	return nil
}

func (s *Seeder) seedAdmin(ctx context.Context, res *Result) error {
	s.report.Step("👤 Creating administrator...")

	hash, err := s.hash(s.cfg.Credentials.AdminPassword, s.cfg.Credentials.BcryptCost)
	if err != nil {
		return err
	}

	now := s.gen.Now()
	location := s.gen.Coordinates()
	admin := User{
		FullName:        adminFullName,
		Email:           s.cfg.Credentials.AdminEmail,
		PasswordHash:    hash,
		Role:            schema.RoleAdmin,
		Phone:           adminPhone,
		CompanyAddress:  companyAddress,
		CompanyName:     companyName,
		CompanyLocation: &location,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	id, err := s.sink.InsertReturning(ctx, schema.TableUsers, admin.row())
	if err != nil {
		return err
	}
	admin.ID = id
	res.Admin = admin

	s.report.Success("Administrator created (ID: %d)", id)
	s.report.Blank()
	return nil
}

func (s *Seeder) seedDrivers(ctx context.Context, res *Result) error {
	n := s.cfg.Counts.Drivers
	s.report.Step("🚚 Creating %d drivers...", n)
	if n == 0 {
		return nil
	}

	hash, err := s.hash(s.cfg.Credentials.DriverPassword, s.cfg.Credentials.BcryptCost)
	if err != nil {
		return err
	}

	res.Drivers = make([]User, 0, n)
	for i := 1; i <= n; i++ {
		now := s.gen.Now()
		driver := User{
			FullName:     s.gen.FullName(),
			Email:        fmt.Sprintf(driverEmailFmt, i),
			PasswordHash: hash,
			Role:         schema.RoleDriver,
			Phone:        s.gen.Phone(),
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		id, err := s.sink.InsertReturning(ctx, schema.TableUsers, driver.row())
		if err != nil {
			return err
		}
		driver.ID = id
		res.Drivers = append(res.Drivers, driver)
	}

	s.report.Success("%d drivers created", len(res.Drivers))
	s.report.Blank()
	return nil
}

func (s *Seeder) seedCustomers(ctx context.Context, res *Result) error {
	n := s.cfg.Counts.Customers
	withPassword := s.cfg.Schema.CustomerCredentials
	s.report.Step("👥 Creating %d customers...", n)

	var hash string
	if withPassword && n > 0 {
		var err error
		if hash, err = s.hash(s.cfg.Credentials.CustomerPassword, s.cfg.Credentials.BcryptCost); err != nil {
			return err
		}
	}

	res.Customers = make([]Customer, 0, n)
	for i := 0; i < n; i++ {
		name := s.gen.FullName()
		customer := Customer{
			Name:      name,
			Email:     s.gen.CustomerEmail(name),
			Phone:     s.gen.Phone(),
			Address:   s.gen.Address(),
			Location:  s.gen.Coordinates(),
			Reference: s.gen.AddressReference(),
			CreatedAt: s.gen.RecentDate(customerDays),
			UpdatedAt: s.gen.Now(),
		}
		if withPassword {
			customer.PasswordHash = hash
		}

		id, err := s.sink.InsertReturning(ctx, schema.TableCustomers, customer.row(withPassword))
		if err != nil {
			return err
		}
		customer.ID = id
		res.Customers = append(res.Customers, customer)

		if err := s.checkpoint(ctx, i+1, n, "customers"); err != nil {
			return err
		}
	}

	s.report.Success("%d customers created", len(res.Customers))
	s.report.Blank()
	return nil
}

func (s *Seeder) seedProducts(ctx context.Context, res *Result) error {
	n := s.cfg.Counts.Products
	s.report.Step("📦 Creating %d products...", n)

	res.Products = make([]Product, 0, n)
	for i := 0; i < n; i++ {
		product := Product{
			Name:        s.gen.ProductName(),
			SKU:         s.gen.SKU(),
			Description: s.gen.Description(),
			Price:       s.gen.Price(),
			CreatedAt:   s.gen.RecentDate(productDays),
			UpdatedAt:   s.gen.Now(),
		}

		id, err := s.sink.InsertReturning(ctx, schema.TableProducts, product.row())
		if err != nil {
			return err
		}
		product.ID = id
		res.Products = append(res.Products, product)

		if err := s.checkpoint(ctx, i+1, n, "products"); err != nil {
			return err
		}
	}

	s.report.Success("%d products created", len(res.Products))
	s.report.Blank()
	return nil
}

func (s *Seeder) seedInventory(ctx context.Context, res *Result) error {
	s.report.Step("📊 Creating %d inventory records...", len(res.Products))

	rows := make([]database.Row, 0, len(res.Products))
	var movements []database.Row
	for _, product := range res.Products {
		record := InventoryRecord{
			ProductID:    product.ID,
			Quantity:     s.gen.Between(10, 500),
			Location:     s.gen.StorageLocation(),
			MinimumStock: s.gen.Between(5, 20),
			CreatedAt:    s.gen.RecentDate(productDays),
			UpdatedAt:    s.gen.Now(),
		}
		res.Inventory = append(res.Inventory, record)
		rows = append(rows, record.row())

		if s.cfg.Schema.InventoryMovements {
			movement := Movement{
				ProductID: product.ID,
				Type:      schema.MovementIn,
				Quantity:  record.Quantity,
				Reason:    openingReason,
				Before:    0,
				After:     record.Quantity,
				At:        record.CreatedAt,
			}
			res.Movements = append(res.Movements, movement)
			movements = append(movements, movement.row())
		}
	}

	if err := s.sink.InsertBatch(ctx, schema.TableInventory, rows); err != nil {
		return err
	}
	if err := s.sink.InsertBatch(ctx, schema.TableMovements, movements); err != nil {
		return err
	}

	s.report.Success("%d inventory records created", len(res.Inventory))
	if len(res.Movements) > 0 {
		s.report.Success("%d opening stock movements recorded", len(res.Movements))
	}
	s.report.Blank()
	return nil
}

func (s *Seeder) seedOrders(ctx context.Context, res *Result) error {
	n := s.cfg.Counts.Orders
	s.report.Step("🛒 Creating %d orders with items...", n)
	if n == 0 {
		return nil
	}
	if len(res.Customers) == 0 || len(res.Products) == 0 {
		return errors.New("orders need at least one customer and one product")
	}

	res.Orders = make([]Order, 0, n)
	for i := 0; i < n; i++ {
		order := s.newOrder(res)

		id, err := s.sink.InsertReturning(ctx, schema.TableOrders, order.row())
		if err != nil {
			return err
		}
		order.ID = id

		items := make([]database.Row, len(order.Items))
		for j, item := range order.Items {
			items[j] = item.row(id)
		}
		if err := s.sink.InsertBatch(ctx, schema.TableOrderItems, items); err != nil {
			return err
		}

		order.Total = order.ItemsTotal()
		if err := s.sink.Update(ctx, schema.TableOrders, id, database.Row{schema.ColOrderTotal: order.Total}); err != nil {
			return err
		}
		res.Orders = append(res.Orders, order)

		if err := s.checkpoint(ctx, i+1, n, "orders"); err != nil {
			return err
		}
	}

	s.report.Success("%d orders created with %d items", len(res.Orders), res.OrderItems())
	s.report.Blank()
	return nil
}

func (s *Seeder) newOrder(res *Result) Order {
	customer := pick(s.gen, res.Customers)
	status := pick(s.gen, schema.OrderStatuses)
	orderedAt := s.gen.RecentDate(orderDays)

	order := Order{
		CustomerID: customer.ID,
		Status:     status,
		Address:    s.gen.Address(),
		Notes:      s.gen.Notes(),
		OrderedAt:  orderedAt,
		UpdatedAt:  s.gen.Now(),
	}
	if status.Completes() {
		delivered := orderedAt.AddDate(0, 0, s.gen.Between(1, 5))
		order.DeliveredAt = &delivered
	}

	count := s.gen.Between(minOrderItems, maxOrderItems)
	order.Items = make([]OrderItem, count)
	for i := range order.Items {
		order.Items[i] = NewOrderItem(pick(s.gen, res.Products), s.gen.Between(1, 10))
	}
	return order
}

// routePool returns up to ordersPerRoute*routes routable order ids in random
// order.
func (s *Seeder) routePool(res *Result, routes int) []int64 {
	var pool []int64
	for _, order := range res.Orders {
		if order.Status.Routable() {
			pool = append(pool, order.ID)
		}
	}
	s.gen.Shuffle(pool)
	if limit := routes * ordersPerRoute; len(pool) > limit {
		pool = pool[:limit]
	}
	s.gen.Shuffle(pool)
	return pool
}

func (s *Seeder) seedRoutes(ctx context.Context, res *Result) error {
	n := s.cfg.Counts.Routes
	s.report.Step("🗺️  Creating up to %d delivery routes...", n)
	if n == 0 {
		return nil
	}
	if len(res.Drivers) == 0 {
		return errors.New("routes need at least one driver")
	}

	pool := s.routePool(res, n)
	for i := 0; i < n; i++ {
		if len(pool) < minRouteOrders {
			break
		}

		now := s.gen.Now()
		day := s.gen.RecentDate(routeDays)
		route := Route{
			DriverID:    pick(s.gen, res.Drivers).ID,
			Status:      pick(s.gen, schema.RouteStatuses),
			Date:        time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location()),
			DistanceKm:  geo.Round(s.gen.Uniform(10, 80), 2),
			DurationMin: s.gen.Between(60, 480),
			CreatedAt:   now,
			UpdatedAt:   now,
		}

		take := s.gen.Between(minRouteOrders, maxRouteOrders)
		if take > len(pool) {
			take = len(pool)
		}
		route.OrderIDs = append([]int64(nil), pool[:take]...)
		pool = pool[take:]

		id, err := s.sink.InsertReturning(ctx, schema.TableRoutes, route.row())
		if err != nil {
			return err
		}
		route.ID = id

		links := make([]database.Row, len(route.OrderIDs))
		for j, orderID := range route.OrderIDs {
			links[j] = database.Row{
				schema.ColRouteOrderRoute: id,
				schema.ColRouteOrderOrder: orderID,
			}
		}
		if err := s.sink.InsertBatch(ctx, schema.TableRouteOrders, links); err != nil {
			return err
		}
		res.Routes = append(res.Routes, route)
	}

	if len(res.Routes) < n {
		s.report.Warn("Order pool exhausted after %d of %d routes", len(res.Routes), n)
	}
	s.report.Success("%d routes created with %d assigned orders", len(res.Routes), res.AssignedOrders())
	s.report.Blank()
	return nil
}
