package domain

// Role scopes a cart alongside the restaurant id. Only "customer" carts go
// through the order flow, the rest exist for parity with the client app.
type Role string

const (
	RoleCustomer        Role = "customer"
	RoleRestaurantOwner Role = "restaurant_owner"
	RoleRider           Role = "rider"
	RoleAdmin           Role = "admin"
)

func ValidRole(r string) bool {
	switch Role(r) {
	case RoleCustomer, RoleRestaurantOwner, RoleRider, RoleAdmin:
		return true
	}
	return false
}

type AddOn struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// CartLineItem is a snapshot of a menu item at add-time. Prices are Thai Baht,
// no fractional units.
type CartLineItem struct {
	ItemID        string  `json:"item_id"`
	Name          string  `json:"name"`
	Description   string  `json:"description,omitempty"`
	Category      string  `json:"category,omitempty"`
	Price         int64   `json:"price"`
	OriginalPrice int64   `json:"original_price,omitempty"`
	Quantity      int     `json:"quantity"`
	AddOns        []AddOn `json:"add_ons,omitempty"`
	RestaurantID  string  `json:"restaurant_id"`
}

// MenuItem is the shape cart-svc accepts when adding a line. It mirrors what
// catalog-svc returns for a single menu item.
type MenuItem struct {
	ID            string `json:"id"`
	RestaurantID  string `json:"restaurant_id"`
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	Category      string `json:"category,omitempty"`
	Price         int64  `json:"price"`
	OriginalPrice int64  `json:"original_price,omitempty"`
}

type CartSummary struct {
	Items     []CartLineItem `json:"items"`
	Total     int64          `json:"total"`
	ItemCount int            `json:"item_count"`
}
