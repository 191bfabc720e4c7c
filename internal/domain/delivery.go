package domain

import "time"

// OrderStatus represents the current status of a delivery order.
type OrderStatus string

const (
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusPickedUp  OrderStatus = "picked_up"
	OrderStatusDelivered OrderStatus = "delivered"
)

// Next returns the status following s in the delivery chain. Delivered is
// terminal and returns itself.
func (s OrderStatus) Next() OrderStatus {
	switch s {
	case OrderStatusPreparing:
		return OrderStatusReady
	case OrderStatusReady:
		return OrderStatusPickedUp
	case OrderStatusPickedUp:
		return OrderStatusDelivered
	default:
		return s
	}
}

// RestaurantCategory is a static catalog entry for filtering restaurants.
type RestaurantCategory struct {
	ID     string
	Name   string
	NameEn string
	Icon   string
}

// Restaurant is a static catalog entry for a delivery vendor.
type Restaurant struct {
	ID           string
	Name         string
	NameEn       string
	Category     string
	Image        string
	Rating       float64
	ReviewCount  int
	DeliveryTime string // minute range, e.g. "20-30"
	DeliveryFee  int
	MinOrder     int
	Cuisine      string
	CuisineEn    string
	IsOpen       bool
	Popular      bool
}

// MenuItem is a static catalog entry on a restaurant's menu.
type MenuItem struct {
	ID            string
	Name          string
	NameEn        string
	Description   string
	DescriptionEn string
	Price         int
	Image         string
	Category      string
	Popular       bool
}

// CartItem is a menu item in the cart with its quantity. RestaurantID tags
// which vendor the item came from.
type CartItem struct {
	Item         MenuItem
	Quantity     int
	RestaurantID string
}

// Order is a placed delivery order. TotalPrice covers the items only;
// DeliveryFee is carried separately, as on the restaurant record.
type Order struct {
	ID                string
	RestaurantID      string
	Restaurant        *Restaurant
	CustomerID        string
	Items             []CartItem
	Status            OrderStatus
	TotalPrice        int
	DeliveryFee       int
	DeliveryAddress   Location
	RestaurantAddress Location
	OrderTime         time.Time
	EstimatedDelivery string
	PaymentMethodID   string
}
