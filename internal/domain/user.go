package domain

// Role gates which parts of the marketplace a user may reach. The check
// happens once at the HTTP boundary; the services below it assume a
// validated context.
type Role string

const (
	RoleConsumer Role = "consumer"
	RoleFarmer   Role = "farmer"
	RoleAdmin    Role = "admin"
)

// IsValid checks whether the role is one of the known roles.
func (r Role) IsValid() bool {
	return r == RoleConsumer || r == RoleFarmer || r == RoleAdmin
}

// Analytics aggregates marketplace activity for the admin view.
type Analytics struct {
	TotalFarms          int   `json:"total_farms"`
	TotalProducts       int   `json:"total_products"`
	TotalOrders         int   `json:"total_orders"`
	TotalRevenue        int64 `json:"total_revenue"`
	TotalCommission     int64 `json:"total_commission"`
	TotalFarmerEarnings int64 `json:"total_farmer_earnings"`
}
