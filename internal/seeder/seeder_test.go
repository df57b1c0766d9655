package seeder

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/Rana718/distria-seed/internal/config"
	"github.com/Rana718/distria-seed/internal/database"
	"github.com/Rana718/distria-seed/internal/geo"
	"github.com/Rana718/distria-seed/internal/schema"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// recordingSink keeps every row in memory and logs the calls it receives.
type recordingSink struct {
	nextID    int64
	tables    map[string][]database.Row
	truncated []string
	events    []string
	commits   int
	failTable string
	failErr   error
}

func newRecordingSink() *recordingSink {
	return &recordingSink{tables: make(map[string][]database.Row)}
}

func (s *recordingSink) store(table string, row database.Row) (int64, error) {
	if table == s.failTable {
		return 0, s.failErr
	}
	s.nextID++
	stored := database.Row{schema.PrimaryKey: s.nextID}
	for k, v := range row {
		stored[k] = v
	}
	s.tables[table] = append(s.tables[table], stored)
	s.events = append(s.events, "insert:"+table)
	return s.nextID, nil
}

func (s *recordingSink) Truncate(_ context.Context, tables ...string) error {
	s.truncated = append(s.truncated, tables...)
	for _, t := range tables {
		delete(s.tables, t)
	}
	s.events = append(s.events, "truncate")
	return nil
}

func (s *recordingSink) Insert(_ context.Context, table string, row database.Row) error {
	_, err := s.store(table, row)
	return err
}

func (s *recordingSink) InsertReturning(_ context.Context, table string, row database.Row) (int64, error) {
	return s.store(table, row)
}

func (s *recordingSink) InsertBatch(_ context.Context, table string, rows []database.Row) error {
	for _, row := range rows {
		if _, err := s.store(table, row); err != nil {
			return err
		}
	}
	return nil
}

func (s *recordingSink) Update(_ context.Context, table string, id int64, set database.Row) error {
	for _, row := range s.tables[table] {
		if row[schema.PrimaryKey] == id {
			for k, v := range set {
				row[k] = v
			}
			s.events = append(s.events, "update:"+table)
			return nil
		}
	}
	return errors.New("no row to update")
}

func (s *recordingSink) Commit(context.Context) error {
	s.commits++
	s.events = append(s.events, "commit")
	return nil
}

func (s *recordingSink) Close() error { return nil }

var fixedNow = time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC)

func testConfig() *config.Config {
	return &config.Config{
		Counts: config.Counts{Drivers: 3, Customers: 25, Products: 12, Orders: 30, Routes: 4},
		Credentials: config.Credentials{
			AdminEmail:       "admin@distria.com",
			AdminPassword:    "admin123",
			DriverPassword:   "repartidor123",
			CustomerPassword: "cliente123",
			BcryptCost:       bcrypt.MinCost,
		},
		Schema:      schema.Contract{InventoryMovements: true},
		Seed:        42,
		CommitEvery: 10,
		Addresses:   config.AddressZone,
	}
}

func plainHasher(password string, _ int) (string, error) {
	return "hashed:" + password, nil
}

func run(t *testing.T, cfg *config.Config, sink *recordingSink) *Result {
	t.Helper()
	s := New(sink, cfg,
		WithReporter(NewReporter(io.Discard)),
		WithHasher(plainHasher),
		WithGenerator(NewDataGenerator(cfg.Seed, WithClock(func() time.Time { return fixedNow }))),
	)
	res, err := s.Run(context.Background())
	require.NoError(t, err)
	return res
}

func TestRunInsertsConfiguredCounts(t *testing.T) {
	cfg := testConfig()
	sink := newRecordingSink()
	res := run(t, cfg, sink)

	assert.Len(t, sink.tables[schema.TableUsers], 1+cfg.Counts.Drivers)
	assert.Len(t, sink.tables[schema.TableCustomers], cfg.Counts.Customers)
	assert.Len(t, sink.tables[schema.TableProducts], cfg.Counts.Products)
	assert.Len(t, sink.tables[schema.TableInventory], cfg.Counts.Products)
	assert.Len(t, sink.tables[schema.TableMovements], cfg.Counts.Products)
	assert.Len(t, sink.tables[schema.TableOrders], cfg.Counts.Orders)
	assert.Len(t, sink.tables[schema.TableOrderItems], res.OrderItems())
	assert.Len(t, sink.tables[schema.TableRoutes], len(res.Routes))
	assert.Len(t, sink.tables[schema.TableRouteOrders], res.AssignedOrders())

	admins := 0
	for _, row := range sink.tables[schema.TableUsers] {
		if row[schema.ColUserRole] == string(schema.RoleAdmin) {
			admins++
			assert.Equal(t, companyName, row[schema.ColUserCompanyName])
		}
	}
	assert.Equal(t, 1, admins)
	assert.Equal(t, "repartidor1@distria.com", res.Drivers[0].Email)
	assert.Equal(t, "repartidor3@distria.com", res.Drivers[2].Email)
}

func TestTruncatesDependentsFirst(t *testing.T) {
	sink := newRecordingSink()
	sink.tables[schema.TableOrders] = []database.Row{{schema.PrimaryKey: int64(-1)}}
	run(t, testConfig(), sink)

	require.GreaterOrEqual(t, len(sink.events), 2)
	assert.Equal(t, "truncate", sink.events[0])
	assert.Equal(t, "commit", sink.events[1])
	assert.Len(t, sink.truncated, len(schema.Dependencies))

	position := make(map[string]int)
	for i, table := range sink.truncated {
		position[table] = i
	}
	for table, deps := range schema.Dependencies {
		for _, dep := range deps {
			assert.Less(t, position[table], position[dep], "%s must be truncated before %s", table, dep)
		}
	}

	for _, row := range sink.tables[schema.TableOrders] {
		assert.NotEqual(t, int64(-1), row[schema.PrimaryKey])
	}
}

func TestOrderTotalsEqualItemSubtotals(t *testing.T) {
	sink := newRecordingSink()
	res := run(t, testConfig(), sink)

	sums := make(map[int64]decimal.Decimal)
	for _, item := range sink.tables[schema.TableOrderItems] {
		orderID := item[schema.ColItemOrderID].(int64)
		qty := item[schema.ColItemQuantity].(int)
		price := item[schema.ColItemUnitPrice].(decimal.Decimal)
		subtotal := item[schema.ColItemSubtotal].(decimal.Decimal)

		assert.True(t, price.Mul(decimal.NewFromInt(int64(qty))).Equal(subtotal))
		sums[orderID] = sums[orderID].Add(subtotal)
	}

	for _, row := range sink.tables[schema.TableOrders] {
		id := row[schema.PrimaryKey].(int64)
		total := row[schema.ColOrderTotal].(decimal.Decimal)
		assert.True(t, sums[id].Equal(total), "order %d: total %s, items %s", id, total, sums[id])
		assert.Equal(t, total.StringFixed(2), sums[id].StringFixed(2))
	}

	for _, order := range res.Orders {
		assert.GreaterOrEqual(t, len(order.Items), minOrderItems)
		assert.LessOrEqual(t, len(order.Items), maxOrderItems)
		assert.True(t, order.Total.Equal(order.ItemsTotal()))
	}
}

func TestOrderItemsUseProductPrice(t *testing.T) {
	res := run(t, testConfig(), newRecordingSink())

	prices := make(map[int64]decimal.Decimal)
	for _, p := range res.Products {
		prices[p.ID] = p.Price
	}
	for _, order := range res.Orders {
		for _, item := range order.Items {
			assert.True(t, prices[item.ProductID].Equal(item.UnitPrice))
			assert.True(t, item.Quantity >= 1 && item.Quantity <= 10)
		}
	}
}

func TestDeliveryDateOnlyForCompletedOrders(t *testing.T) {
	cfg := testConfig()
	cfg.Counts.Orders = 200
	res := run(t, cfg, newRecordingSink())

	for _, order := range res.Orders {
		if order.Status.Completes() {
			require.NotNil(t, order.DeliveredAt)
			days := order.DeliveredAt.Sub(order.OrderedAt).Hours() / 24
			assert.True(t, days >= 1 && days <= 5, "delivery %v days after order", days)
		} else {
			assert.Nil(t, order.DeliveredAt)
		}
	}
}

func TestRoutesSkipCancelledOrdersAndNeverShare(t *testing.T) {
	cfg := testConfig()
	cfg.Counts.Orders = 120
	cfg.Counts.Routes = 10
	sink := newRecordingSink()
	res := run(t, cfg, sink)

	status := make(map[int64]string)
	for _, row := range sink.tables[schema.TableOrders] {
		status[row[schema.PrimaryKey].(int64)] = row[schema.ColOrderStatus].(string)
	}

	seen := make(map[int64]bool)
	for _, link := range sink.tables[schema.TableRouteOrders] {
		orderID := link[schema.ColRouteOrderOrder].(int64)
		assert.NotEqual(t, string(schema.OrderCancelled), status[orderID])
		assert.False(t, seen[orderID], "order %d assigned twice", orderID)
		seen[orderID] = true
	}

	require.NotEmpty(t, res.Routes)
	driverIDs := make(map[int64]bool)
	for _, d := range res.Drivers {
		driverIDs[d.ID] = true
	}
	for _, route := range res.Routes {
		assert.True(t, driverIDs[route.DriverID])
		assert.GreaterOrEqual(t, len(route.OrderIDs), minRouteOrders)
		assert.LessOrEqual(t, len(route.OrderIDs), maxRouteOrders)
		assert.True(t, route.DistanceKm >= 10 && route.DistanceKm <= 80)
		assert.True(t, route.DurationMin >= 60 && route.DurationMin <= 480)
	}
}

func TestRoutesStopWhenPoolRunsOut(t *testing.T) {
	cfg := testConfig()
	cfg.Counts.Orders = 5
	cfg.Counts.Routes = 10
	res := run(t, cfg, newRecordingSink())

	assert.LessOrEqual(t, len(res.Routes), 1)
	assert.LessOrEqual(t, res.AssignedOrders(), 5)
	for _, route := range res.Routes {
		assert.GreaterOrEqual(t, len(route.OrderIDs), minRouteOrders)
	}
}

func TestCoordinatesInsideCity(t *testing.T) {
	cfg := testConfig()
	cfg.Counts.Customers = 300
	cfg.Counts.Orders = 0
	cfg.Counts.Routes = 0
	res := run(t, cfg, newRecordingSink())

	require.NotNil(t, res.Admin.CompanyLocation)
	assert.True(t, geo.CityBounds.Contains(*res.Admin.CompanyLocation))
	for _, c := range res.Customers {
		assert.True(t, geo.CityBounds.Contains(c.Location), "customer %s at %+v", c.Email, c.Location)
	}
}

func TestSameSeedProducesSameRows(t *testing.T) {
	first := newRecordingSink()
	second := newRecordingSink()
	run(t, testConfig(), first)
	run(t, testConfig(), second)

	assert.Equal(t, first.tables, second.tables)

	other := newRecordingSink()
	cfg := testConfig()
	cfg.Seed = 43
	run(t, cfg, other)
	assert.NotEqual(t, first.tables[schema.TableCustomers], other.tables[schema.TableCustomers])
}

func TestCommitsAtPhaseEndsAndIntervals(t *testing.T) {
	sink := newRecordingSink()
	run(t, testConfig(), sink)

	// 8 phase commits, plus customers 2, products 1 and orders 3 at the interval.
	assert.Equal(t, 14, sink.commits)
	assert.Equal(t, "commit", sink.events[len(sink.events)-1])
}

func TestCustomerCredentialsFollowContract(t *testing.T) {
	sink := newRecordingSink()
	run(t, testConfig(), sink)
	for _, row := range sink.tables[schema.TableCustomers] {
		assert.NotContains(t, row, schema.ColCustomerPassword)
	}

	cfg := testConfig()
	cfg.Schema.CustomerCredentials = true
	sink = newRecordingSink()
	run(t, cfg, sink)
	for _, row := range sink.tables[schema.TableCustomers] {
		assert.Equal(t, "hashed:cliente123", row[schema.ColCustomerPassword])
	}
}

func TestInventoryMovements(t *testing.T) {
	sink := newRecordingSink()
	res := run(t, testConfig(), sink)

	require.Len(t, res.Movements, len(res.Inventory))
	for i, m := range res.Movements {
		assert.Equal(t, schema.MovementIn, m.Type)
		assert.Equal(t, 0, m.Before)
		assert.Equal(t, res.Inventory[i].Quantity, m.After)
		assert.Equal(t, res.Inventory[i].ProductID, m.ProductID)
	}
	for _, rec := range res.Inventory {
		assert.True(t, rec.Quantity >= 10 && rec.Quantity <= 500)
		assert.True(t, rec.MinimumStock >= 5 && rec.MinimumStock <= 20)
	}

	cfg := testConfig()
	cfg.Schema.InventoryMovements = false
	sink = newRecordingSink()
	res = run(t, cfg, sink)
	assert.Empty(t, res.Movements)
	assert.Empty(t, sink.tables[schema.TableMovements])
}

func TestRunStopsOnSinkError(t *testing.T) {
	boom := errors.New("unique violation")
	sink := newRecordingSink()
	sink.failTable = schema.TableProducts
	sink.failErr = boom

	s := New(sink, testConfig(), WithReporter(NewReporter(io.Discard)), WithHasher(plainHasher))
	res, err := s.Run(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "products phase failed")
	assert.Len(t, res.Customers, 25)
	assert.Empty(t, sink.tables[schema.TableOrders])
	assert.Empty(t, sink.tables[schema.TableRoutes])
}

func TestRunHonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sink := newRecordingSink()
	s := New(sink, testConfig(), WithReporter(NewReporter(io.Discard)), WithHasher(plainHasher))
	_, err := s.Run(ctx)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, sink.events)
}

func TestRunRecoversPanics(t *testing.T) {
	s := New(newRecordingSink(), testConfig(),
		WithReporter(NewReporter(io.Discard)),
		WithHasher(func(string, int) (string, error) { panic("hasher exploded") }),
	)
	_, err := s.Run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "hasher exploded")
}

func TestBcryptHasher(t *testing.T) {
	hash, err := BcryptHasher("admin123", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("admin123")))
}
