package http

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	apperrors "github.com/Nghalu/KingdomFarming/pkg/errors"
	"github.com/Nghalu/KingdomFarming/pkg/httputil"
	"github.com/Nghalu/KingdomFarming/pkg/validator"

	"github.com/Nghalu/KingdomFarming/internal/service"
)

// CheckoutHandler handles HTTP requests for the checkout flow.
type CheckoutHandler struct {
	service *service.CheckoutService
	logger  *slog.Logger
}

// NewCheckoutHandler creates a new checkout HTTP handler.
func NewCheckoutHandler(svc *service.CheckoutService, logger *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		service: svc,
		logger:  logger,
	}
}

// SetDeliveryRequest is the JSON request body for choosing delivery.
type SetDeliveryRequest struct {
	Option         string `json:"option" validate:"required"`
	Address        string `json:"address"`
	PickupLocation string `json:"pickup_location"`
}

// SetPaymentMethodRequest is the JSON request body for choosing payment.
type SetPaymentMethodRequest struct {
	Method string `json:"method" validate:"required"`
	Phone  string `json:"phone"`
}

// CompleteRequest is the optional JSON request body for completing a
// checkout; the gateway's transaction id from the success callback.
type CompleteRequest struct {
	ProviderTxID string `json:"provider_tx_id"`
}

// Start handles POST /api/v1/checkout
func (h *CheckoutHandler) Start(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		httputil.WriteError(w, r, apperrors.Unauthorized("authentication required"), h.logger)
		return
	}

	session, err := h.service.StartCheckout(r.Context(), userID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: session})
}

// Get handles GET /api/v1/checkout/{checkoutID}
func (h *CheckoutHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		httputil.WriteError(w, r, apperrors.Unauthorized("authentication required"), h.logger)
		return
	}

	session, err := h.service.GetSession(r.Context(), userID, chi.URLParam(r, "checkoutID"))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: session})
}

// SetDelivery handles PUT /api/v1/checkout/{checkoutID}/delivery
func (h *CheckoutHandler) SetDelivery(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		httputil.WriteError(w, r, apperrors.Unauthorized("authentication required"), h.logger)
		return
	}

	var req SetDeliveryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, r, apperrors.InvalidInput("invalid request body: "+err.Error()), h.logger)
		return
	}
	if err := validator.Validate(req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	session, err := h.service.SetDeliveryOption(r.Context(), userID, chi.URLParam(r, "checkoutID"), service.DeliveryInput{
		Option:         req.Option,
		Address:        req.Address,
		PickupLocation: req.PickupLocation,
	})
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: session})
}

// SetPaymentMethod handles PUT /api/v1/checkout/{checkoutID}/payment-method
func (h *CheckoutHandler) SetPaymentMethod(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		httputil.WriteError(w, r, apperrors.Unauthorized("authentication required"), h.logger)
		return
	}

	var req SetPaymentMethodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, r, apperrors.InvalidInput("invalid request body: "+err.Error()), h.logger)
		return
	}
	if err := validator.Validate(req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	session, err := h.service.SetPaymentMethod(r.Context(), userID, chi.URLParam(r, "checkoutID"), service.PaymentMethodInput{
		Method: req.Method,
		Phone:  req.Phone,
	})
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: session})
}

// Pay handles POST /api/v1/checkout/{checkoutID}/pay
func (h *CheckoutHandler) Pay(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		httputil.WriteError(w, r, apperrors.Unauthorized("authentication required"), h.logger)
		return
	}

	redirect, err := h.service.ProceedToPayment(r.Context(), userID, chi.URLParam(r, "checkoutID"))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: redirect})
}

// Complete handles POST /api/v1/checkout/{checkoutID}/complete
func (h *CheckoutHandler) Complete(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		httputil.WriteError(w, r, apperrors.Unauthorized("authentication required"), h.logger)
		return
	}

	var req CompleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		httputil.WriteError(w, r, apperrors.InvalidInput("invalid request body: "+err.Error()), h.logger)
		return
	}

	order, err := h.service.CompletePayment(r.Context(), userID, chi.URLParam(r, "checkoutID"), req.ProviderTxID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: order})
}

// Close handles POST /api/v1/checkout/{checkoutID}/close
func (h *CheckoutHandler) Close(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		httputil.WriteError(w, r, apperrors.Unauthorized("authentication required"), h.logger)
		return
	}

	session, err := h.service.ClosePayment(r.Context(), userID, chi.URLParam(r, "checkoutID"))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: session})
}

// Cancel handles POST /api/v1/checkout/{checkoutID}/cancel
func (h *CheckoutHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		httputil.WriteError(w, r, apperrors.Unauthorized("authentication required"), h.logger)
		return
	}

	session, err := h.service.Cancel(r.Context(), userID, chi.URLParam(r, "checkoutID"))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: session})
}
