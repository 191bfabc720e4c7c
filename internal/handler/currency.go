package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"transverse/internal/domain"
	"transverse/internal/service"
)

// CurrencyHandler handles HTTP requests for country and currency selection.
type CurrencyHandler struct {
	currency *service.CurrencyService
}

// NewCurrencyHandler creates a new CurrencyHandler.
func NewCurrencyHandler(currency *service.CurrencyService) *CurrencyHandler {
	return &CurrencyHandler{currency: currency}
}

// ChangeCountryRequest is the HTTP request body for selecting a country.
type ChangeCountryRequest struct {
	Code string `json:"code"`
}

// DetectCountryRequest is the HTTP request body for timezone-based detection.
type DetectCountryRequest struct {
	Timezone string `json:"timezone"`
}

// CountryResponse is the HTTP representation of a country.
type CountryResponse struct {
	Code           string `json:"code"`
	Name           string `json:"name"`
	NameEn         string `json:"name_en"`
	Currency       string `json:"currency"`
	Symbol         string `json:"symbol"`
	SymbolEn       string `json:"symbol_en"`
	CurrencyName   string `json:"currency_name"`
	CurrencyNameEn string `json:"currency_name_en"`
	Flag           string `json:"flag"`
}

// GetCountries handles GET /v1/currency/countries
func (h *CurrencyHandler) GetCountries(c *gin.Context) {
	countries := h.currency.Countries()

	response := make([]CountryResponse, 0, len(countries))
	for _, country := range countries {
		response = append(response, toCountryResponse(country))
	}

	respondJSON(c, http.StatusOK, response)
}

// GetCurrent handles GET /v1/currency
func (h *CurrencyHandler) GetCurrent(c *gin.Context) {
	respondJSON(c, http.StatusOK, toCountryResponse(h.currency.Current()))
}

// ChangeCountry handles PUT /v1/currency
func (h *CurrencyHandler) ChangeCountry(c *gin.Context) {
	var req ChangeCountryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	country, err := h.currency.ChangeCountry(c.Request.Context(), req.Code)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toCountryResponse(country))
}

// DetectCountry handles POST /v1/currency/detect
func (h *CurrencyHandler) DetectCountry(c *gin.Context) {
	var req DetectCountryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	country := h.currency.DetectCountry(c.Request.Context(), req.Timezone)
	respondJSON(c, http.StatusOK, toCountryResponse(country))
}

// FormatPrice handles GET /v1/currency/format?price=...&lang=...
func (h *CurrencyHandler) FormatPrice(c *gin.Context) {
	price, err := strconv.Atoi(c.Query("price"))
	if err != nil || price < 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid price"})
		return
	}

	respondJSON(c, http.StatusOK, gin.H{
		"price":     price,
		"formatted": h.currency.FormatPrice(price, c.Query("lang")),
	})
}

func toCountryResponse(country domain.Country) CountryResponse {
	return CountryResponse{
		Code:           country.Code,
		Name:           country.Name,
		NameEn:         country.NameEn,
		Currency:       country.Currency,
		Symbol:         country.Symbol,
		SymbolEn:       country.SymbolEn,
		CurrencyName:   country.CurrencyName,
		CurrencyNameEn: country.CurrencyNameEn,
		Flag:           country.Flag,
	}
}
