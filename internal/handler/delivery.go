package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"transverse/internal/domain"
	"transverse/internal/service"
)

// DeliveryHandler handles HTTP requests for the delivery system.
type DeliveryHandler struct {
	delivery *service.DeliveryService
}

// NewDeliveryHandler creates a new DeliveryHandler.
func NewDeliveryHandler(delivery *service.DeliveryService) *DeliveryHandler {
	return &DeliveryHandler{delivery: delivery}
}

// AddToCartRequest is the HTTP request body for adding a cart item.
type AddToCartRequest struct {
	RestaurantID string `json:"restaurant_id"`
	ItemID       string `json:"item_id"`
}

// PlaceOrderRequest is the HTTP request body for placing an order.
type PlaceOrderRequest struct {
	Address         LocationPayload `json:"address"`
	PaymentMethodID string          `json:"payment_method_id,omitempty"`
}

// RestaurantResponse is the HTTP representation of a restaurant.
type RestaurantResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	NameEn       string  `json:"name_en"`
	Category     string  `json:"category"`
	Image        string  `json:"image,omitempty"`
	Rating       float64 `json:"rating"`
	ReviewCount  int     `json:"review_count"`
	DeliveryTime string  `json:"delivery_time"`
	DeliveryFee  int     `json:"delivery_fee"`
	MinOrder     int     `json:"min_order"`
	Cuisine      string  `json:"cuisine"`
	CuisineEn    string  `json:"cuisine_en"`
	IsOpen       bool    `json:"is_open"`
	Popular      bool    `json:"popular"`
}

// MenuItemResponse is the HTTP representation of a menu item.
type MenuItemResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	NameEn        string `json:"name_en"`
	Description   string `json:"description"`
	DescriptionEn string `json:"description_en"`
	Price         int    `json:"price"`
	Image         string `json:"image,omitempty"`
	Category      string `json:"category"`
	Popular       bool   `json:"popular"`
}

// CartItemResponse is the HTTP representation of a cart line.
type CartItemResponse struct {
	Item         MenuItemResponse `json:"item"`
	Quantity     int              `json:"quantity"`
	RestaurantID string           `json:"restaurant_id"`
}

// CartResponse is the HTTP representation of the cart.
type CartResponse struct {
	Items      []CartItemResponse `json:"items"`
	Total      int                `json:"total"`
	ItemsCount int                `json:"items_count"`
}

// OrderResponse is the HTTP representation of a delivery order.
type OrderResponse struct {
	ID                string             `json:"id"`
	RestaurantID      string             `json:"restaurant_id"`
	Restaurant        RestaurantResponse `json:"restaurant"`
	CustomerID        string             `json:"customer_id"`
	Items             []CartItemResponse `json:"items"`
	Status            string             `json:"status"`
	TotalPrice        int                `json:"total_price"`
	DeliveryFee       int                `json:"delivery_fee"`
	DeliveryAddress   LocationPayload    `json:"delivery_address"`
	RestaurantAddress LocationPayload    `json:"restaurant_address"`
	OrderTime         string             `json:"order_time"`
	EstimatedDelivery string             `json:"estimated_delivery"`
	PaymentMethodID   string             `json:"payment_method_id"`
}

// GetCategories handles GET /v1/delivery/categories
func (h *DeliveryHandler) GetCategories(c *gin.Context) {
	categories := h.delivery.Categories()

	response := make([]gin.H, 0, len(categories))
	for _, category := range categories {
		response = append(response, gin.H{
			"id":      category.ID,
			"name":    category.Name,
			"name_en": category.NameEn,
			"icon":    category.Icon,
		})
	}

	respondJSON(c, http.StatusOK, response)
}

// GetRestaurants handles GET /v1/delivery/restaurants?category=...
func (h *DeliveryHandler) GetRestaurants(c *gin.Context) {
	restaurants := h.delivery.Restaurants(c.Query("category"))

	response := make([]RestaurantResponse, 0, len(restaurants))
	for _, r := range restaurants {
		response = append(response, toRestaurantResponse(r))
	}

	respondJSON(c, http.StatusOK, response)
}

// GetRestaurant handles GET /v1/delivery/restaurants/:id
func (h *DeliveryHandler) GetRestaurant(c *gin.Context) {
	restaurant, err := h.delivery.RestaurantByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toRestaurantResponse(restaurant))
}

// GetMenu handles GET /v1/delivery/restaurants/:id/menu
func (h *DeliveryHandler) GetMenu(c *gin.Context) {
	items, err := h.delivery.Menu(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]MenuItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, toMenuItemResponse(item))
	}

	respondJSON(c, http.StatusOK, response)
}

// GetCart handles GET /v1/delivery/cart
func (h *DeliveryHandler) GetCart(c *gin.Context) {
	respondJSON(c, http.StatusOK, CartResponse{
		Items:      toCartItemResponses(h.delivery.Cart()),
		Total:      h.delivery.CartTotal(),
		ItemsCount: h.delivery.CartItemsCount(),
	})
}

// AddToCart handles POST /v1/delivery/cart/items
func (h *DeliveryHandler) AddToCart(c *gin.Context) {
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	if err := h.delivery.AddToCart(req.RestaurantID, req.ItemID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// RemoveFromCart handles DELETE /v1/delivery/cart/items/:id
func (h *DeliveryHandler) RemoveFromCart(c *gin.Context) {
	h.delivery.RemoveFromCart(c.Param("id"))
	c.Status(http.StatusNoContent)
}

// ClearCart handles DELETE /v1/delivery/cart
func (h *DeliveryHandler) ClearCart(c *gin.Context) {
	h.delivery.ClearCart()
	c.Status(http.StatusNoContent)
}

// PlaceOrder handles POST /v1/delivery/orders
func (h *DeliveryHandler) PlaceOrder(c *gin.Context) {
	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	order, err := h.delivery.PlaceOrder(toLocation(req.Address), req.PaymentMethodID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, toOrderResponse(order))
}

// GetOrders handles GET /v1/delivery/orders
func (h *DeliveryHandler) GetOrders(c *gin.Context) {
	orders := h.delivery.Orders()

	response := make([]OrderResponse, 0, len(orders))
	for _, order := range orders {
		response = append(response, toOrderResponse(order))
	}

	respondJSON(c, http.StatusOK, response)
}

// GetOrder handles GET /v1/delivery/orders/:id
func (h *DeliveryHandler) GetOrder(c *gin.Context) {
	order, err := h.delivery.OrderByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toOrderResponse(order))
}

func toRestaurantResponse(r domain.Restaurant) RestaurantResponse {
	return RestaurantResponse{
		ID:           r.ID,
		Name:         r.Name,
		NameEn:       r.NameEn,
		Category:     r.Category,
		Image:        r.Image,
		Rating:       r.Rating,
		ReviewCount:  r.ReviewCount,
		DeliveryTime: r.DeliveryTime,
		DeliveryFee:  r.DeliveryFee,
		MinOrder:     r.MinOrder,
		Cuisine:      r.Cuisine,
		CuisineEn:    r.CuisineEn,
		IsOpen:       r.IsOpen,
		Popular:      r.Popular,
	}
}

func toMenuItemResponse(item domain.MenuItem) MenuItemResponse {
	return MenuItemResponse{
		ID:            item.ID,
		Name:          item.Name,
		NameEn:        item.NameEn,
		Description:   item.Description,
		DescriptionEn: item.DescriptionEn,
		Price:         item.Price,
		Image:         item.Image,
		Category:      item.Category,
		Popular:       item.Popular,
	}
}

func toCartItemResponses(items []domain.CartItem) []CartItemResponse {
	response := make([]CartItemResponse, 0, len(items))
	for _, line := range items {
		response = append(response, CartItemResponse{
			Item:         toMenuItemResponse(line.Item),
			Quantity:     line.Quantity,
			RestaurantID: line.RestaurantID,
		})
	}
	return response
}

func toOrderResponse(order *domain.Order) OrderResponse {
	response := OrderResponse{
		ID:                order.ID,
		RestaurantID:      order.RestaurantID,
		CustomerID:        order.CustomerID,
		Items:             toCartItemResponses(order.Items),
		Status:            string(order.Status),
		TotalPrice:        order.TotalPrice,
		DeliveryFee:       order.DeliveryFee,
		DeliveryAddress:   toLocationPayload(order.DeliveryAddress),
		RestaurantAddress: toLocationPayload(order.RestaurantAddress),
		OrderTime:         order.OrderTime.Format(timeFormat),
		EstimatedDelivery: order.EstimatedDelivery,
		PaymentMethodID:   order.PaymentMethodID,
	}
	if order.Restaurant != nil {
		response.Restaurant = toRestaurantResponse(*order.Restaurant)
	}
	return response
}
