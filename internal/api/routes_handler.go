package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"imperial/commercial-routes/internal/constants"
	"imperial/commercial-routes/internal/models/dtos"
)

// RoutesAPI is the orchestrator surface the handler depends on.
type RoutesAPI interface {
	GetCommercialRoutes(ctx context.Context) ([]dtos.CommercialRoute, error)
	GetRoutePriceBreakdown(ctx context.Context, request *dtos.RouteRequest) (*dtos.BreakdownRoutePrice, error)
	GetOptimalAircraft(ctx context.Context, request *dtos.RouteRequest) (*dtos.AircraftResponse, error)
}

// RoutesHandler serves the /api/routes endpoints.
type RoutesHandler struct {
	routes   RoutesAPI
	validate *validator.Validate
}

// NewRoutesHandler creates the handler for the three route operations.
func NewRoutesHandler(routes RoutesAPI) *RoutesHandler {
	return &RoutesHandler{
		routes:   routes,
		validate: validator.New(),
	}
}

// GetRoutes handles GET /api/routes.
func (h *RoutesHandler) GetRoutes() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		routes, err := h.routes.GetCommercialRoutes(r.Context())
		if err != nil {
			respondError(w, r, err)
			return
		}

		respondJSON(w, http.StatusOK, routes)
	}
}

// PriceBreakDown handles POST /api/routes/PriceBreakDown. A missing
// dayOfWeek defaults to the current day of week.
func (h *RoutesHandler) PriceBreakDown() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		request, ok := h.decodeRouteRequest(w, r)
		if !ok {
			return
		}

		if request.DayOfWeek == nil {
			today := int(time.Now().Weekday())
			request.DayOfWeek = &today
		}

		breakdown, err := h.routes.GetRoutePriceBreakdown(r.Context(), request)
		if err != nil {
			respondError(w, r, err)
			return
		}

		respondJSON(w, http.StatusOK, breakdown)
	}
}

// OptimalAircraft handles POST /api/routes/OptimalAircraft.
func (h *RoutesHandler) OptimalAircraft() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		request, ok := h.decodeRouteRequest(w, r)
		if !ok {
			return
		}

		response, err := h.routes.GetOptimalAircraft(r.Context(), request)
		if err != nil {
			respondError(w, r, err)
			return
		}

		respondJSON(w, http.StatusOK, response)
	}
}

// decodeRouteRequest parses and validates the request body, writing the 400
// itself when validation fails.
func (h *RoutesHandler) decodeRouteRequest(w http.ResponseWriter, r *http.Request) (*dtos.RouteRequest, bool) {
	var request dtos.RouteRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		respondJSON(w, http.StatusBadRequest, dtos.ErrorResponse{Message: "Invalid request body"})
		return nil, false
	}

	if err := h.validate.Struct(&request); err != nil {
		respondJSON(w, http.StatusBadRequest, dtos.ValidationErrorResponse{Errors: validationMessages(err)})
		return nil, false
	}

	return &request, true
}

// validationMessages maps validator errors to the client-facing field
// messages.
func validationMessages(err error) []string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{"Invalid request"}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		switch {
		case fieldError.Field() == "DayOfWeek":
			messages = append(messages, constants.ErrMsgDayOfWeekRange)
		case fieldError.Tag() == "required":
			messages = append(messages, fmt.Sprintf("%s is required", fieldError.Field()))
		default:
			messages = append(messages, fmt.Sprintf("%s is invalid", fieldError.Field()))
		}
	}
	return messages
}
