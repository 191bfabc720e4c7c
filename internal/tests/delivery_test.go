package tests

import (
	"testing"
	"time"

	"transverse/internal/domain"
	"transverse/internal/repository"
	"transverse/internal/seed"
	"transverse/internal/service"
)

func newDeliveryService(statusDelay time.Duration) *service.DeliveryService {
	return service.NewDeliveryService(
		seed.SelfID,
		seed.Restaurants(),
		seed.RestaurantCategories(),
		seed.MenuItems(),
		seed.RestaurantPickupAddress(),
		seed.DeliveryOrders(),
		service.DeliveryOptions{StatusDelay: statusDelay},
	)
}

func TestRestaurants_CategoryFilter(t *testing.T) {
	delivery := newDeliveryService(time.Hour)

	if got := len(delivery.Restaurants("")); got != 6 {
		t.Errorf("expected all 6 restaurants for empty category, got %d", got)
	}
	if got := len(delivery.Restaurants("all")); got != 6 {
		t.Errorf("expected all 6 restaurants for all, got %d", got)
	}

	pizza := delivery.Restaurants("pizza")
	if len(pizza) != 1 || pizza[0].ID != "rest3" {
		t.Errorf("expected only rest3 for pizza, got %v", pizza)
	}

	if _, err := delivery.RestaurantByID("rest99"); err != repository.ErrNotFound {
		t.Errorf("expected ErrNotFound for unknown restaurant, got %v", err)
	}
	if _, err := delivery.Menu("rest99"); err != repository.ErrNotFound {
		t.Errorf("expected ErrNotFound for unknown menu, got %v", err)
	}
}

func TestAddToCart_IncrementsExistingLine(t *testing.T) {
	delivery := newDeliveryService(time.Hour)

	// item1 is 18, item3 is 8.
	if err := delivery.AddToCart("rest1", "item1"); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := delivery.AddToCart("rest1", "item1"); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := delivery.AddToCart("rest1", "item3"); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	cart := delivery.Cart()
	if len(cart) != 2 {
		t.Fatalf("expected 2 cart lines, got %d", len(cart))
	}
	if cart[0].Item.ID != "item1" || cart[0].Quantity != 2 {
		t.Errorf("expected item1 x2, got %s x%d", cart[0].Item.ID, cart[0].Quantity)
	}
	if got := delivery.CartItemsCount(); got != 3 {
		t.Errorf("expected 3 items, got %d", got)
	}
	if got := delivery.CartTotal(); got != 44 {
		t.Errorf("expected total 44, got %d", got)
	}
}

func TestAddToCart_UnknownCatalogEntries(t *testing.T) {
	delivery := newDeliveryService(time.Hour)

	if err := delivery.AddToCart("rest99", "item1"); err != repository.ErrNotFound {
		t.Errorf("expected ErrNotFound for unknown restaurant, got %v", err)
	}
	if err := delivery.AddToCart("rest1", "item99"); err != repository.ErrNotFound {
		t.Errorf("expected ErrNotFound for unknown item, got %v", err)
	}
}

func TestRemoveFromCart(t *testing.T) {
	delivery := newDeliveryService(time.Hour)

	if err := delivery.AddToCart("rest1", "item1"); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := delivery.AddToCart("rest1", "item1"); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	delivery.RemoveFromCart("item1")
	cart := delivery.Cart()
	if len(cart) != 1 || cart[0].Quantity != 1 {
		t.Fatal("expected quantity decremented to 1")
	}

	delivery.RemoveFromCart("item1")
	if len(delivery.Cart()) != 0 {
		t.Error("expected line dropped at zero quantity")
	}

	// Unknown items are a no-op.
	delivery.RemoveFromCart("item99")
}

func TestClearCart_ReleasesRestaurant(t *testing.T) {
	delivery := newDeliveryService(time.Hour)

	if err := delivery.AddToCart("rest1", "item1"); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	delivery.ClearCart()

	if len(delivery.Cart()) != 0 {
		t.Fatal("expected empty cart")
	}

	// A fresh add selects the new restaurant.
	if err := delivery.AddToCart("rest2", "item5"); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	order, err := delivery.PlaceOrder(testDropoff, "")
	if err != nil {
		t.Fatalf("place order failed: %v", err)
	}
	if order.RestaurantID != "rest2" {
		t.Errorf("expected order against rest2, got %s", order.RestaurantID)
	}
}

func TestPlaceOrder_Validation(t *testing.T) {
	delivery := newDeliveryService(time.Hour)

	if _, err := delivery.PlaceOrder(testDropoff, "cash"); err != service.ErrEmptyCart {
		t.Errorf("expected ErrEmptyCart, got %v", err)
	}

	if err := delivery.AddToCart("rest1", "item1"); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if _, err := delivery.PlaceOrder(domain.Location{}, "cash"); err != service.ErrMissingLocation {
		t.Errorf("expected ErrMissingLocation, got %v", err)
	}
}

func TestPlaceOrder_PrependsAndClearsCart(t *testing.T) {
	delivery := newDeliveryService(time.Hour)

	if err := delivery.AddToCart("rest1", "item1"); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := delivery.AddToCart("rest1", "item1"); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := delivery.AddToCart("rest1", "item3"); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	before := len(delivery.Orders())
	order, err := delivery.PlaceOrder(testDropoff, "")
	if err != nil {
		t.Fatalf("place order failed: %v", err)
	}

	if order.Status != domain.OrderStatusPreparing {
		t.Errorf("expected status preparing, got %s", order.Status)
	}
	if order.TotalPrice != 44 {
		t.Errorf("expected total 44, got %d", order.TotalPrice)
	}
	if order.DeliveryFee != 5 {
		t.Errorf("expected rest1 delivery fee 5, got %d", order.DeliveryFee)
	}
	if order.PaymentMethodID != "cash" {
		t.Errorf("expected payment method to default to cash, got %s", order.PaymentMethodID)
	}
	if order.CustomerID != seed.SelfID {
		t.Errorf("expected customer %s, got %s", seed.SelfID, order.CustomerID)
	}

	orders := delivery.Orders()
	if len(orders) != before+1 {
		t.Fatalf("expected exactly one new order, got %d", len(orders)-before)
	}
	if orders[0].ID != order.ID {
		t.Error("expected the new order at the front of the list")
	}
	if len(delivery.Cart()) != 0 {
		t.Error("expected cart cleared after placing the order")
	}
}

func TestPlaceOrder_StatusChainAdvances(t *testing.T) {
	delivery := newDeliveryService(20 * time.Millisecond)

	if err := delivery.AddToCart("rest1", "item1"); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	order, err := delivery.PlaceOrder(testDropoff, "cash")
	if err != nil {
		t.Fatalf("place order failed: %v", err)
	}
	if order.Status != domain.OrderStatusPreparing {
		t.Fatalf("expected preparing at placement, got %s", order.Status)
	}

	// Three steps of 20ms each reach delivered well within the wait.
	time.Sleep(300 * time.Millisecond)

	current, err := delivery.OrderByID(order.ID)
	if err != nil {
		t.Fatalf("order lookup failed: %v", err)
	}
	if current.Status != domain.OrderStatusDelivered {
		t.Errorf("expected delivered after the status chain, got %s", current.Status)
	}
}

func TestOrders_SeededOrderPresent(t *testing.T) {
	delivery := newDeliveryService(time.Hour)

	order, err := delivery.OrderByID("order1")
	if err != nil {
		t.Fatalf("expected seeded order, got %v", err)
	}
	if order.Status != domain.OrderStatusPreparing {
		t.Errorf("expected seeded order preparing, got %s", order.Status)
	}
	if order.TotalPrice != 44 {
		t.Errorf("expected seeded total 44, got %d", order.TotalPrice)
	}

	if _, err := delivery.OrderByID("order99"); err != repository.ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
