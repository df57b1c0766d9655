package seeder

import (
	"fmt"

	"github.com/Rana718/distria-seed/internal/config"
)

// PrintSummary reports what a run actually inserted and the fixture logins.
func PrintSummary(r *Reporter, cfg *config.Config, res *Result) {
	r.Rule()
	r.Success("Fixture data loaded")
	r.Rule()

	r.Step("\n📊 Generated data:")
	r.Info("   • 1 administrator")
	r.Info("   • %d drivers", len(res.Drivers))
	r.Info("   • %d customers", len(res.Customers))
	r.Info("   • %d products", len(res.Products))
	r.Info("   • %d inventory records", len(res.Inventory))
	if len(res.Movements) > 0 {
		r.Info("   • %d inventory movements", len(res.Movements))
	}
	r.Info("   • %d orders with %d items", len(res.Orders), res.OrderItems())
	r.Info("   • %d delivery routes covering %d orders", len(res.Routes), res.AssignedOrders())

	r.Step("\n🔐 Credentials:")
	r.Info("   👤 Administrator: %s / %s", cfg.Credentials.AdminEmail, cfg.Credentials.AdminPassword)
	if n := len(res.Drivers); n > 0 {
		r.Info("   🚚 Drivers: %s .. %s / %s",
			fmt.Sprintf(driverEmailFmt, 1), fmt.Sprintf(driverEmailFmt, n), cfg.Credentials.DriverPassword)
	}
	if cfg.Schema.CustomerCredentials && len(res.Customers) > 0 {
		r.Info("   👥 Customers: <customer email> / %s", cfg.Credentials.CustomerPassword)
	}

	r.Step("\n🌍 Coordinates: Santa Cruz de la Sierra, Bolivia")
	r.Rule()
}
