package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"transverse/internal/domain"
	"transverse/internal/service"
)

// RideHandler handles HTTP requests for rides.
type RideHandler struct {
	rides *service.RideService
}

// NewRideHandler creates a new RideHandler.
func NewRideHandler(rides *service.RideService) *RideHandler {
	return &RideHandler{rides: rides}
}

// LocationPayload is the HTTP representation of a location.
type LocationPayload struct {
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	Address   string  `json:"address"`
	AddressEn string  `json:"address_en"`
}

// RequestRideRequest is the HTTP request body for requesting a ride.
type RequestRideRequest struct {
	RiderID         string          `json:"rider_id"`
	Pickup          LocationPayload `json:"pickup"`
	Dropoff         LocationPayload `json:"dropoff"`
	VehicleClassID  string          `json:"vehicle_class_id"`
	PaymentMethodID string          `json:"payment_method_id,omitempty"`
}

// CompleteRideRequest is the HTTP request body for completing a ride.
type CompleteRideRequest struct {
	Rating int `json:"rating"`
}

// RideResponse is the HTTP representation of a ride.
type RideResponse struct {
	ID              string          `json:"id"`
	RiderID         string          `json:"rider_id"`
	Pickup          LocationPayload `json:"pickup"`
	Dropoff         LocationPayload `json:"dropoff"`
	VehicleClassID  string          `json:"vehicle_class_id"`
	PaymentMethodID string          `json:"payment_method_id"`
	Status          string          `json:"status"`
	Price           int             `json:"price"`
	DistanceKm      float64         `json:"distance_km"`
	Rating          int             `json:"rating,omitempty"`
	RequestedAt     string          `json:"requested_at"`
	CompletedAt     string          `json:"completed_at,omitempty"`
}

const timeFormat = "2006-01-02T15:04:05Z07:00"

// Quote handles GET /v1/rides/quote?vehicle_class_id=...&distance_km=...
func (h *RideHandler) Quote(c *gin.Context) {
	class, err := h.rides.VehicleClassByID(c.Query("vehicle_class_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	distance, err := strconv.ParseFloat(c.Query("distance_km"), 64)
	if err != nil || distance < 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid distance_km"})
		return
	}

	respondJSON(c, http.StatusOK, gin.H{
		"vehicle_class_id": class.ID,
		"distance_km":      distance,
		"price":            service.QuotePrice(class, distance),
	})
}

// RequestRide handles POST /v1/rides
func (h *RideHandler) RequestRide(c *gin.Context) {
	var req RequestRideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	ride, err := h.rides.RequestRide(c.Request.Context(), service.RequestRideInput{
		RiderID:         req.RiderID,
		Pickup:          toLocation(req.Pickup),
		Dropoff:         toLocation(req.Dropoff),
		VehicleClassID:  req.VehicleClassID,
		PaymentMethodID: req.PaymentMethodID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, toRideResponse(ride))
}

// Current handles GET /v1/rides/current
func (h *RideHandler) Current(c *gin.Context) {
	ride := h.rides.CurrentRide()
	if ride == nil {
		respondError(c, service.ErrNoActiveRide)
		return
	}

	respondJSON(c, http.StatusOK, toRideResponse(ride))
}

// Cancel handles POST /v1/rides/cancel
func (h *RideHandler) Cancel(c *gin.Context) {
	h.rides.CancelRide()
	c.Status(http.StatusNoContent)
}

// Complete handles POST /v1/rides/complete
func (h *RideHandler) Complete(c *gin.Context) {
	var req CompleteRideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	ride, err := h.rides.CompleteRide(c.Request.Context(), req.Rating)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toRideResponse(ride))
}

// History handles GET /v1/rides/history
func (h *RideHandler) History(c *gin.Context) {
	rides, err := h.rides.History(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]RideResponse, 0, len(rides))
	for _, ride := range rides {
		response = append(response, toRideResponse(ride))
	}

	respondJSON(c, http.StatusOK, response)
}

func toLocation(p LocationPayload) domain.Location {
	return domain.Location{Lat: p.Lat, Lng: p.Lng, Address: p.Address, AddressEn: p.AddressEn}
}

func toLocationPayload(l domain.Location) LocationPayload {
	return LocationPayload{Lat: l.Lat, Lng: l.Lng, Address: l.Address, AddressEn: l.AddressEn}
}

func toRideResponse(ride *domain.Ride) RideResponse {
	response := RideResponse{
		ID:              ride.ID,
		RiderID:         ride.RiderID,
		Pickup:          toLocationPayload(ride.Pickup),
		Dropoff:         toLocationPayload(ride.Dropoff),
		VehicleClassID:  ride.VehicleClassID,
		PaymentMethodID: ride.PaymentMethodID,
		Status:          string(ride.Status),
		Price:           ride.Price,
		DistanceKm:      ride.DistanceKm,
		Rating:          ride.Rating,
		RequestedAt:     ride.RequestedAt.Format(timeFormat),
	}

	if !ride.CompletedAt.IsZero() {
		response.CompletedAt = ride.CompletedAt.Format(timeFormat)
	}

	return response
}
