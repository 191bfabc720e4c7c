package service

import (
	"fmt"
	"sync"
	"time"

	"transverse/internal/domain"
	"transverse/internal/repository"
)

// defaultStatusDelay is the pause between simulated order status steps.
const defaultStatusDelay = 3 * time.Second

// DeliveryOptions configures a DeliveryService. Zero values select defaults.
type DeliveryOptions struct {
	StatusDelay time.Duration
	Now         func() time.Time
}

// DeliveryService owns the cart and the order list. The cart belongs to one
// vendor at a time: the first added item selects the restaurant, and clearing
// the cart releases it. Placed orders advance through the status chain on a
// timer, one step per delay, with the order id re-checked at fire time.
type DeliveryService struct {
	customerID     string
	restaurants    []domain.Restaurant
	restaurantByID map[string]domain.Restaurant
	menus          map[string][]domain.MenuItem
	categories     []domain.RestaurantCategory
	pickupAddress  domain.Location
	statusDelay    time.Duration
	now            func() time.Time

	mu       sync.Mutex
	cart     []domain.CartItem
	selected *domain.Restaurant
	orders   []*domain.Order
}

// NewDeliveryService creates a DeliveryService over the given catalogs,
// seeded with the given order history. customerID is the session owner
// stamped on placed orders.
func NewDeliveryService(
	customerID string,
	restaurants []domain.Restaurant,
	categories []domain.RestaurantCategory,
	menus map[string][]domain.MenuItem,
	pickupAddress domain.Location,
	orders []*domain.Order,
	opts DeliveryOptions,
) *DeliveryService {
	if opts.StatusDelay == 0 {
		opts.StatusDelay = defaultStatusDelay
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if menus == nil {
		menus = make(map[string][]domain.MenuItem)
	}

	restaurantByID := make(map[string]domain.Restaurant, len(restaurants))
	for _, r := range restaurants {
		restaurantByID[r.ID] = r
	}

	seeded := make([]*domain.Order, len(orders))
	copy(seeded, orders)

	return &DeliveryService{
		customerID:     customerID,
		restaurants:    restaurants,
		restaurantByID: restaurantByID,
		menus:          menus,
		categories:     categories,
		pickupAddress:  pickupAddress,
		statusDelay:    opts.StatusDelay,
		now:            opts.Now,
		orders:         seeded,
	}
}

// Categories returns the restaurant filter catalog.
func (s *DeliveryService) Categories() []domain.RestaurantCategory {
	return s.categories
}

// Restaurants returns catalog entries matching the category. An empty or
// "all" category returns every restaurant.
func (s *DeliveryService) Restaurants(category string) []domain.Restaurant {
	if category == "" || category == "all" {
		return s.restaurants
	}
	var result []domain.Restaurant
	for _, r := range s.restaurants {
		if r.Category == category {
			result = append(result, r)
		}
	}
	return result
}

// RestaurantByID looks up a catalog entry.
func (s *DeliveryService) RestaurantByID(id string) (domain.Restaurant, error) {
	r, ok := s.restaurantByID[id]
	if !ok {
		return domain.Restaurant{}, repository.ErrNotFound
	}
	return r, nil
}

// Menu returns the menu of the given restaurant.
func (s *DeliveryService) Menu(restaurantID string) ([]domain.MenuItem, error) {
	if _, ok := s.restaurantByID[restaurantID]; !ok {
		return nil, repository.ErrNotFound
	}
	return s.menus[restaurantID], nil
}

// AddToCart puts one unit of a menu item in the cart, incrementing the
// quantity if the item is already there. The first added item selects the
// cart's restaurant.
func (s *DeliveryService) AddToCart(restaurantID, itemID string) error {
	restaurant, ok := s.restaurantByID[restaurantID]
	if !ok {
		return repository.ErrNotFound
	}

	var item *domain.MenuItem
	for i := range s.menus[restaurantID] {
		if s.menus[restaurantID][i].ID == itemID {
			item = &s.menus[restaurantID][i]
			break
		}
	}
	if item == nil {
		return repository.ErrNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart {
		if s.cart[i].Item.ID == itemID {
			s.cart[i].Quantity++
			return nil
		}
	}

	s.cart = append(s.cart, domain.CartItem{Item: *item, Quantity: 1, RestaurantID: restaurantID})
	if s.selected == nil {
		s.selected = &restaurant
	}
	return nil
}

// RemoveFromCart takes one unit of an item out of the cart, dropping the
// line when the quantity reaches zero. Unknown items are a no-op.
func (s *DeliveryService) RemoveFromCart(itemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart {
		if s.cart[i].Item.ID != itemID {
			continue
		}
		if s.cart[i].Quantity > 1 {
			s.cart[i].Quantity--
		} else {
			s.cart = append(s.cart[:i], s.cart[i+1:]...)
		}
		return
	}
}

// ClearCart empties the cart and releases the selected restaurant.
func (s *DeliveryService) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearCartLocked()
}

func (s *DeliveryService) clearCartLocked() {
	s.cart = nil
	s.selected = nil
}

// Cart returns a snapshot of the cart contents.
func (s *DeliveryService) Cart() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.CartItem(nil), s.cart...)
}

// CartTotal sums price times quantity over the cart.
func (s *DeliveryService) CartTotal() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cartTotalLocked()
}

func (s *DeliveryService) cartTotalLocked() int {
	total := 0
	for _, line := range s.cart {
		total += line.Item.Price * line.Quantity
	}
	return total
}

// CartItemsCount sums quantities over the cart.
func (s *DeliveryService) CartItemsCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, line := range s.cart {
		count += line.Quantity
	}
	return count
}

// PlaceOrder turns the cart into an order, prepends it to the order list and
// empties the cart. The order starts preparing and steps through the status
// chain on the configured delay.
func (s *DeliveryService) PlaceOrder(address domain.Location, paymentMethodID string) (*domain.Order, error) {
	if address.IsZero() {
		return nil, ErrMissingLocation
	}
	if paymentMethodID == "" {
		paymentMethodID = "cash"
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.cart) == 0 || s.selected == nil {
		return nil, ErrEmptyCart
	}

	restaurant := *s.selected
	order := &domain.Order{
		ID:                fmt.Sprintf("order_%d", s.now().UnixMilli()),
		RestaurantID:      restaurant.ID,
		Restaurant:        &restaurant,
		CustomerID:        s.customerID,
		Items:             append([]domain.CartItem(nil), s.cart...),
		Status:            domain.OrderStatusPreparing,
		TotalPrice:        s.cartTotalLocked(),
		DeliveryFee:       restaurant.DeliveryFee,
		DeliveryAddress:   address,
		RestaurantAddress: s.pickupAddress,
		OrderTime:         s.now(),
		EstimatedDelivery: restaurant.DeliveryTime,
		PaymentMethodID:   paymentMethodID,
	}

	s.orders = append([]*domain.Order{order}, s.orders...)
	s.clearCartLocked()

	orderID := order.ID
	time.AfterFunc(s.statusDelay, func() {
		s.advance(orderID)
	})

	orderCopy := copyOrder(order)
	return orderCopy, nil
}

// advance moves an order one step along the status chain and reschedules
// itself until the order is delivered. The id captured at scheduling time
// must still resolve to a live order.
func (s *DeliveryService) advance(orderID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order := s.findOrderLocked(orderID)
	if order == nil || order.Status == domain.OrderStatusDelivered {
		return
	}

	order.Status = order.Status.Next()
	if order.Status != domain.OrderStatusDelivered {
		time.AfterFunc(s.statusDelay, func() {
			s.advance(orderID)
		})
	}
}

// Orders returns a snapshot of the order list, most recent first.
func (s *DeliveryService) Orders() []*domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]*domain.Order, 0, len(s.orders))
	for _, order := range s.orders {
		result = append(result, copyOrder(order))
	}
	return result
}

// OrderByID returns a snapshot of one order.
func (s *DeliveryService) OrderByID(id string) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order := s.findOrderLocked(id)
	if order == nil {
		return nil, repository.ErrNotFound
	}
	return copyOrder(order), nil
}

func (s *DeliveryService) findOrderLocked(id string) *domain.Order {
	for _, order := range s.orders {
		if order.ID == id {
			return order
		}
	}
	return nil
}

func copyOrder(order *domain.Order) *domain.Order {
	orderCopy := *order
	orderCopy.Items = append([]domain.CartItem(nil), order.Items...)
	if order.Restaurant != nil {
		restaurantCopy := *order.Restaurant
		orderCopy.Restaurant = &restaurantCopy
	}
	return &orderCopy
}
