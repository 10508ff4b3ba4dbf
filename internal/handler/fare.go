package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"ridefare/internal/domain"
	"ridefare/internal/service"
)

// FareHandler handles HTTP requests for fare quotes.
type FareHandler struct {
	fareService *service.FareService
	logger      *zap.Logger
}

// NewFareHandler creates a new FareHandler.
func NewFareHandler(fareService *service.FareService, logger *zap.Logger) *FareHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FareHandler{
		fareService: fareService,
		logger:      logger,
	}
}

// CreateFareRequest is the HTTP request body for quoting a fare.
// DistanceKm is a pointer so an explicit 0 reaches distance validation
// instead of failing as a missing field.
type CreateFareRequest struct {
	RideType   string   `json:"ride_type"`
	DistanceKm *float64 `json:"distance_km" binding:"required"`
}

// FareResponse is the HTTP response for a quoted fare.
type FareResponse struct {
	ID            string  `json:"id"`
	RideType      string  `json:"ride_type"`
	Driver        string  `json:"driver"`
	VehicleNumber string  `json:"vehicle_no"`
	DistanceKm    float64 `json:"distance_km"`
	FarePerKm     float64 `json:"fare_per_km"`
	Fare          float64 `json:"fare"`
	Currency      string  `json:"currency"`
}

// RideTypeResponse describes one entry of the ride type catalogue.
type RideTypeResponse struct {
	RideType      string  `json:"ride_type"`
	Driver        string  `json:"driver"`
	VehicleNumber string  `json:"vehicle_no"`
	FarePerKm     float64 `json:"fare_per_km"`
	Currency      string  `json:"currency"`
}

// CreateFare handles POST /v1/fares
func (h *FareHandler) CreateFare(c *gin.Context) {
	var req CreateFareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, &service.FareError{
			Kind:    service.KindInvalidInputFormat,
			Message: "invalid request body: " + err.Error(),
			Err:     err,
		})
		return
	}

	quote, err := h.fareService.Quote(req.RideType, *req.DistanceKm)
	if err != nil {
		h.logger.Info("fare rejected",
			zap.String("kind", string(service.KindOf(err))),
			zap.String("reason", err.Error()),
		)
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, toFareResponse(uuid.NewString(), quote))
}

// ListRideTypes handles GET /v1/ride-types
func (h *FareHandler) ListRideTypes(c *gin.Context) {
	types := domain.RideTypes()
	resp := make([]RideTypeResponse, 0, len(types))
	for _, t := range types {
		resp = append(resp, RideTypeResponse{
			RideType:      t.String(),
			Driver:        t.DriverName(),
			VehicleNumber: t.VehicleNumber(),
			FarePerKm:     t.FarePerKm(),
			Currency:      domain.CurrencyINR,
		})
	}
	respondJSON(c, http.StatusOK, gin.H{"ride_types": resp})
}

func toFareResponse(id string, quote domain.Quote) FareResponse {
	return FareResponse{
		ID:            id,
		RideType:      quote.Ride.Type().String(),
		Driver:        quote.Ride.DriverName(),
		VehicleNumber: quote.Ride.VehicleNumber(),
		DistanceKm:    quote.Ride.DistanceKm(),
		FarePerKm:     quote.Ride.FarePerKm(),
		Fare:          quote.Fare,
		Currency:      quote.Currency,
	}
}
