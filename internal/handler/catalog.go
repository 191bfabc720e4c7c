package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"transverse/internal/service"
)

// CatalogHandler serves the static vehicle class and payment method catalogs.
type CatalogHandler struct {
	rides *service.RideService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(rides *service.RideService) *CatalogHandler {
	return &CatalogHandler{rides: rides}
}

// VehicleClassResponse is the HTTP representation of a vehicle class.
type VehicleClassResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	NameEn        string  `json:"name_en"`
	Description   string  `json:"description"`
	DescriptionEn string  `json:"description_en"`
	BasePrice     float64 `json:"base_price"`
	PricePerKm    float64 `json:"price_per_km"`
	Capacity      int     `json:"capacity"`
}

// PaymentMethodResponse is the HTTP representation of a payment method.
type PaymentMethodResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	NameEn        string `json:"name_en"`
	Description   string `json:"description"`
	DescriptionEn string `json:"description_en"`
}

// GetVehicleClasses handles GET /v1/catalog/vehicle-classes
func (h *CatalogHandler) GetVehicleClasses(c *gin.Context) {
	classes := h.rides.VehicleClasses()

	response := make([]VehicleClassResponse, 0, len(classes))
	for _, class := range classes {
		response = append(response, VehicleClassResponse{
			ID:            class.ID,
			Name:          class.Name,
			NameEn:        class.NameEn,
			Description:   class.Description,
			DescriptionEn: class.DescriptionEn,
			BasePrice:     class.BasePrice,
			PricePerKm:    class.PricePerKm,
			Capacity:      class.Capacity,
		})
	}

	respondJSON(c, http.StatusOK, response)
}

// GetPaymentMethods handles GET /v1/catalog/payment-methods
func (h *CatalogHandler) GetPaymentMethods(c *gin.Context) {
	methods := h.rides.PaymentMethods()

	response := make([]PaymentMethodResponse, 0, len(methods))
	for _, method := range methods {
		response = append(response, PaymentMethodResponse{
			ID:            method.ID,
			Name:          method.Name,
			NameEn:        method.NameEn,
			Description:   method.Description,
			DescriptionEn: method.DescriptionEn,
		})
	}

	respondJSON(c, http.StatusOK, response)
}
