package domain

import "time"

type RestaurantStatus string

const (
	StatusPending   RestaurantStatus = "PENDING"
	StatusActive    RestaurantStatus = "ACTIVE"
	StatusRejected  RestaurantStatus = "REJECTED"
	StatusSuspended RestaurantStatus = "SUSPENDED"
	StatusClosed    RestaurantStatus = "CLOSED"
)

type Restaurant struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	Description    string           `json:"description"`
	Address        string           `json:"address"`
	ImageURL       string           `json:"image_url"`
	Status         RestaurantStatus `json:"status"`
	DeliveryFee    int64            `json:"delivery_fee"`
	MinOrderAmount int64            `json:"min_order_amount"`
	CreatedAt      time.Time        `json:"created_at"`
}

type AddOn struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

type MenuItem struct {
	ID            string  `json:"id"`
	RestaurantID  string  `json:"restaurant_id"`
	CategoryID    string  `json:"category_id"`
	Name          string  `json:"name"`
	Description   string  `json:"description,omitempty"`
	Price         int64   `json:"price"`
	OriginalPrice int64   `json:"original_price,omitempty"`
	ImageURL      string  `json:"image_url,omitempty"`
	Available     bool    `json:"available"`
	AddOns        []AddOn `json:"add_ons,omitempty"`
}

type MenuCategory struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Items []MenuItem `json:"items"`
}

type Menu struct {
	Restaurant Restaurant     `json:"restaurant"`
	Categories []MenuCategory `json:"categories"`
}

type GalleryImage struct {
	URL     string `json:"url"`
	Caption string `json:"caption,omitempty"`
}

// RestaurantPatch carries a partial admin update. Nil fields are left
// untouched.
type RestaurantPatch struct {
	Name           *string           `json:"name"`
	Description    *string           `json:"description"`
	Address        *string           `json:"address"`
	DeliveryFee    *int64            `json:"delivery_fee"`
	MinOrderAmount *int64            `json:"min_order_amount"`
	Status         *RestaurantStatus `json:"status"`
}

type RestaurantPage struct {
	Restaurants []Restaurant `json:"restaurants"`
	Page        int          `json:"page"`
	Limit       int          `json:"limit"`
	Total       int          `json:"total"`
}
