// Package http exposes the fulfillment workflow over a JSON API.
//
// Every route is an operation boundary: the acting principal is read from the
// gateway-supplied identity headers, checked against the access policy, and
// only then does the request reach a command or query handler. Authentication
// itself happens upstream; this adapter trusts X-User-ID, X-User-Role, and
// X-Branch-ID the way the rest of the platform's services do.
package http

import (
	"errors"
	"net/http"

	"pharmacy/internal/core/application/usecases/commands"
	"pharmacy/internal/core/application/usecases/queries"
	"pharmacy/internal/core/domain/model/delivery"
	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/staff"
	"pharmacy/internal/core/domain/services"
	"pharmacy/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Identity headers set by the API gateway after authentication.
const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"
	HeaderBranchID = "X-Branch-ID"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	policy services.AccessPolicy

	// Command handlers
	placeOrderHandler           commands.PlaceOrderCommandHandler
	cancelOrderHandler          commands.CancelOrderCommandHandler
	submitPrescriptionHandler   commands.SubmitPrescriptionCommandHandler
	decidePrescriptionHandler   commands.DecidePrescriptionCommandHandler
	initiatePaymentHandler      commands.InitiatePaymentCommandHandler
	confirmPaymentHandler       commands.ConfirmPaymentCommandHandler
	updateDeliveryStatusHandler commands.UpdateDeliveryStatusCommandHandler
	receiveShipmentHandler      commands.ReceiveShipmentCommandHandler

	// Query handlers
	getOrderHandler            queries.GetOrderQueryHandler
	getValidationQueueHandler  queries.GetValidationQueueQueryHandler
	getPaymentQueueHandler     queries.GetPaymentQueueQueryHandler
	getFulfillmentQueueHandler queries.GetFulfillmentQueueQueryHandler
	getBranchInventoryHandler  queries.GetBranchInventoryQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	policy services.AccessPolicy,
	placeOrderHandler commands.PlaceOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	submitPrescriptionHandler commands.SubmitPrescriptionCommandHandler,
	decidePrescriptionHandler commands.DecidePrescriptionCommandHandler,
	initiatePaymentHandler commands.InitiatePaymentCommandHandler,
	confirmPaymentHandler commands.ConfirmPaymentCommandHandler,
	updateDeliveryStatusHandler commands.UpdateDeliveryStatusCommandHandler,
	receiveShipmentHandler commands.ReceiveShipmentCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getValidationQueueHandler queries.GetValidationQueueQueryHandler,
	getPaymentQueueHandler queries.GetPaymentQueueQueryHandler,
	getFulfillmentQueueHandler queries.GetFulfillmentQueueQueryHandler,
	getBranchInventoryHandler queries.GetBranchInventoryQueryHandler,
) *Server {
	return &Server{
		policy:                      policy,
		placeOrderHandler:           placeOrderHandler,
		cancelOrderHandler:          cancelOrderHandler,
		submitPrescriptionHandler:   submitPrescriptionHandler,
		decidePrescriptionHandler:   decidePrescriptionHandler,
		initiatePaymentHandler:      initiatePaymentHandler,
		confirmPaymentHandler:       confirmPaymentHandler,
		updateDeliveryStatusHandler: updateDeliveryStatusHandler,
		receiveShipmentHandler:      receiveShipmentHandler,
		getOrderHandler:             getOrderHandler,
		getValidationQueueHandler:   getValidationQueueHandler,
		getPaymentQueueHandler:      getPaymentQueueHandler,
		getFulfillmentQueueHandler:  getFulfillmentQueueHandler,
		getBranchInventoryHandler:   getBranchInventoryHandler,
	}
}

// RegisterRoutes binds all API routes on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.PlaceOrder)
	api.GET("/orders/:orderID", s.GetOrder)
	api.POST("/orders/:orderID/cancel", s.CancelOrder)
	api.POST("/orders/:orderID/prescription", s.SubmitPrescription)
	api.POST("/prescriptions/:prescriptionID/decision", s.DecidePrescription)
	api.POST("/orders/:orderID/payment", s.InitiatePayment)
	api.POST("/orders/:orderID/payment/confirmation", s.ConfirmPayment)
	api.POST("/orders/:orderID/delivery/status", s.UpdateDeliveryStatus)

	api.POST("/inventory/shipments", s.ReceiveShipment)
	api.GET("/branches/:branchID/inventory", s.GetBranchInventory)
	api.GET("/branches/:branchID/queues/validation", s.GetValidationQueue)
	api.GET("/branches/:branchID/queues/payment", s.GetPaymentQueue)
	api.GET("/branches/:branchID/queues/fulfillment", s.GetFulfillmentQueue)
}

// Error is the uniform error payload.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// principal builds the acting principal from the identity headers.
func (s *Server) principal(ctx echo.Context) (staff.Principal, error) {
	id, err := kernel.UUIDFromString(ctx.Request().Header.Get(HeaderUserID))
	if err != nil {
		return staff.Principal{}, errs.NewValueIsInvalidErrorWithCause(HeaderUserID, err)
	}

	role, err := staff.RoleFromString(ctx.Request().Header.Get(HeaderUserRole))
	if err != nil {
		return staff.Principal{}, err
	}

	var branchID *kernel.UUID
	if raw := ctx.Request().Header.Get(HeaderBranchID); raw != "" {
		parsed, parseErr := kernel.UUIDFromString(raw)
		if parseErr != nil {
			return staff.Principal{}, errs.NewValueIsInvalidErrorWithCause(HeaderBranchID, parseErr)
		}
		branchID = &parsed
	}

	return staff.NewPrincipal(id, role, branchID)
}

// authorize resolves the principal and checks the operation against the policy.
func (s *Server) authorize(ctx echo.Context, op services.Operation) (staff.Principal, error) {
	principal, err := s.principal(ctx)
	if err != nil {
		return staff.Principal{}, err
	}
	if err := s.policy.Authorize(principal, op); err != nil {
		return staff.Principal{}, err
	}
	return principal, nil
}

// respondError maps the error taxonomy onto HTTP status codes.
func respondError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrInsufficientStock), errors.Is(err, errs.ErrConflict):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrAuthorization):
		code = http.StatusForbidden
	}

	return ctx.JSON(code, Error{Code: code, Message: err.Error()})
}

func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(ctx.Param(name))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}

// PlaceOrderRequest is the payload of POST /api/v1/orders.
type PlaceOrderRequest struct {
	BranchID string `json:"branch_id"`
	Lines    []struct {
		ProductID string `json:"product_id"`
		Quantity  int    `json:"quantity"`
	} `json:"lines"`
	Method  string `json:"method"`
	Address string `json:"address"`
}

// PlaceOrder handles POST /api/v1/orders.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	principal, err := s.authorize(ctx, services.OpPlaceOrder)
	if err != nil {
		return respondError(ctx, err)
	}

	var req PlaceOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	branchID, err := kernel.UUIDFromString(req.BranchID)
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("branch_id", err))
	}

	lines := make([]commands.OrderLine, 0, len(req.Lines))
	for _, line := range req.Lines {
		productID, lineErr := kernel.UUIDFromString(line.ProductID)
		if lineErr != nil {
			return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("product_id", lineErr))
		}
		lines = append(lines, commands.OrderLine{ProductID: productID, Quantity: line.Quantity})
	}

	method, err := delivery.MethodFromString(req.Method)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(orderID, principal.ID(), branchID, lines, method, req.Address)
	if err != nil {
		return respondError(ctx, err)
	}

	status, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{
		"order_id": orderID.String(),
		"status":   status.String(),
	})
}

// GetOrder handles GET /api/v1/orders/:orderID. Customers only see their own
// orders; staff see any.
func (s *Server) GetOrder(ctx echo.Context) error {
	principal, err := s.authorize(ctx, services.OpViewOrder)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return respondError(ctx, err)
	}

	var customerID *kernel.UUID
	if principal.Role() == staff.RoleCustomer {
		id := principal.ID()
		customerID = &id
	}

	query, err := queries.NewGetOrderQuery(orderID, customerID)
	if err != nil {
		return respondError(ctx, err)
	}

	response, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(response))
}

// CancelOrder handles POST /api/v1/orders/:orderID/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	principal, err := s.authorize(ctx, services.OpCancelOrder)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, principal.ID())
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SubmitPrescriptionRequest is the payload of POST /api/v1/orders/:orderID/prescription.
type SubmitPrescriptionRequest struct {
	ImageRef string `json:"image_ref"`
}

// SubmitPrescription handles POST /api/v1/orders/:orderID/prescription.
func (s *Server) SubmitPrescription(ctx echo.Context) error {
	principal, err := s.authorize(ctx, services.OpSubmitPrescription)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return respondError(ctx, err)
	}

	var req SubmitPrescriptionRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	prescriptionID := kernel.NewUUID()
	cmd, err := commands.NewSubmitPrescriptionCommand(prescriptionID, orderID, principal.ID(), req.ImageRef)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.submitPrescriptionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"prescription_id": prescriptionID.String()})
}

// DecidePrescriptionRequest is the payload of POST /api/v1/prescriptions/:prescriptionID/decision.
type DecidePrescriptionRequest struct {
	Approved bool   `json:"approved"`
	Notes    string `json:"notes"`
}

// DecidePrescription handles POST /api/v1/prescriptions/:prescriptionID/decision.
func (s *Server) DecidePrescription(ctx echo.Context) error {
	principal, err := s.authorize(ctx, services.OpDecidePrescription)
	if err != nil {
		return respondError(ctx, err)
	}

	prescriptionID, err := pathUUID(ctx, "prescriptionID")
	if err != nil {
		return respondError(ctx, err)
	}

	var req DecidePrescriptionRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	cmd, err := commands.NewDecidePrescriptionCommand(prescriptionID, principal.ID(), req.Approved, req.Notes)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.decidePrescriptionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PaymentRequest is the payload of the payment initiation and confirmation routes.
type PaymentRequest struct {
	Method string `json:"method"`
}

// InitiatePayment handles POST /api/v1/orders/:orderID/payment.
func (s *Server) InitiatePayment(ctx echo.Context) error {
	principal, err := s.authorize(ctx, services.OpInitiatePayment)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return respondError(ctx, err)
	}

	var req PaymentRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	cmd, err := commands.NewInitiatePaymentCommand(orderID, principal.ID(), req.Method)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.initiatePaymentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmPayment handles POST /api/v1/orders/:orderID/payment/confirmation.
func (s *Server) ConfirmPayment(ctx echo.Context) error {
	principal, err := s.authorize(ctx, services.OpConfirmPayment)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return respondError(ctx, err)
	}

	var req PaymentRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	cmd, err := commands.NewConfirmPaymentCommand(orderID, principal.ID(), req.Method)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.confirmPaymentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateDeliveryStatusRequest is the payload of POST /api/v1/orders/:orderID/delivery/status.
type UpdateDeliveryStatusRequest struct {
	Status string `json:"status"`
}

// UpdateDeliveryStatus handles POST /api/v1/orders/:orderID/delivery/status.
func (s *Server) UpdateDeliveryStatus(ctx echo.Context) error {
	if _, err := s.authorize(ctx, services.OpUpdateDeliveryStatus); err != nil {
		return respondError(ctx, err)
	}

	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return respondError(ctx, err)
	}

	var req UpdateDeliveryStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	target, err := delivery.StatusFromString(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateDeliveryStatusCommand(orderID, target)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.updateDeliveryStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReceiveShipmentRequest is the payload of POST /api/v1/inventory/shipments.
type ReceiveShipmentRequest struct {
	BranchID string `json:"branch_id"`
	Lines    []struct {
		ProductID string `json:"product_id"`
		Quantity  int    `json:"quantity"`
	} `json:"lines"`
}

// ReceiveShipment handles POST /api/v1/inventory/shipments.
func (s *Server) ReceiveShipment(ctx echo.Context) error {
	if _, err := s.authorize(ctx, services.OpReceiveShipment); err != nil {
		return respondError(ctx, err)
	}

	var req ReceiveShipmentRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	branchID, err := kernel.UUIDFromString(req.BranchID)
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("branch_id", err))
	}

	lines := make([]commands.ShipmentLine, 0, len(req.Lines))
	for _, line := range req.Lines {
		productID, err := kernel.UUIDFromString(line.ProductID)
		if err != nil {
			return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("product_id", err))
		}
		lines = append(lines, commands.ShipmentLine{ProductID: productID, Quantity: line.Quantity})
	}

	cmd, err := commands.NewReceiveShipmentCommand(branchID, lines)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.receiveShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// InventoryRow is one product's stock level in the inventory response.
type InventoryRow struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// GetBranchInventory handles GET /api/v1/branches/:branchID/inventory.
func (s *Server) GetBranchInventory(ctx echo.Context) error {
	if _, err := s.authorize(ctx, services.OpViewInventory); err != nil {
		return respondError(ctx, err)
	}

	branchID, err := pathUUID(ctx, "branchID")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetBranchInventoryQuery(branchID)
	if err != nil {
		return respondError(ctx, err)
	}

	rows, err := s.getBranchInventoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]InventoryRow, len(rows))
	for i, row := range rows {
		response[i] = InventoryRow{
			ProductID: row.ProductID.String(),
			Quantity:  row.Quantity,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ValidationQueueEntry is one waiting prescription in the pharmacist queue.
type ValidationQueueEntry struct {
	OrderID        string `json:"order_id"`
	PrescriptionID string `json:"prescription_id"`
	CustomerID     string `json:"customer_id"`
	ImageRef       string `json:"image_ref"`
	UploadedAt     string `json:"uploaded_at"`
}

// GetValidationQueue handles GET /api/v1/branches/:branchID/queues/validation.
func (s *Server) GetValidationQueue(ctx echo.Context) error {
	if _, err := s.authorize(ctx, services.OpViewValidationQueue); err != nil {
		return respondError(ctx, err)
	}

	branchID, err := pathUUID(ctx, "branchID")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetValidationQueueQuery(branchID)
	if err != nil {
		return respondError(ctx, err)
	}

	rows, err := s.getValidationQueueHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]ValidationQueueEntry, len(rows))
	for i, row := range rows {
		response[i] = ValidationQueueEntry{
			OrderID:        row.OrderID.String(),
			PrescriptionID: row.PrescriptionID.String(),
			CustomerID:     row.CustomerID.String(),
			ImageRef:       row.ImageRef,
			UploadedAt:     row.UploadedAt.UTC().Format(timeFormat),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// PaymentQueueEntry is one order awaiting payment verification.
type PaymentQueueEntry struct {
	OrderID     string `json:"order_id"`
	CustomerID  string `json:"customer_id"`
	TotalAmount int64  `json:"total_amount"`
	CreatedAt   string `json:"created_at"`
}

// GetPaymentQueue handles GET /api/v1/branches/:branchID/queues/payment.
func (s *Server) GetPaymentQueue(ctx echo.Context) error {
	if _, err := s.authorize(ctx, services.OpViewPaymentQueue); err != nil {
		return respondError(ctx, err)
	}

	branchID, err := pathUUID(ctx, "branchID")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetPaymentQueueQuery(branchID)
	if err != nil {
		return respondError(ctx, err)
	}

	rows, err := s.getPaymentQueueHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]PaymentQueueEntry, len(rows))
	for i, row := range rows {
		response[i] = PaymentQueueEntry{
			OrderID:     row.OrderID.String(),
			CustomerID:  row.CustomerID.String(),
			TotalAmount: row.TotalAmount,
			CreatedAt:   row.CreatedAt.UTC().Format(timeFormat),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// FulfillmentQueueEntry is one paid order awaiting warehouse work.
type FulfillmentQueueEntry struct {
	OrderID        string `json:"order_id"`
	DeliveryID     string `json:"delivery_id"`
	Method         string `json:"method"`
	DeliveryStatus string `json:"delivery_status"`
	Address        string `json:"address"`
}

// GetFulfillmentQueue handles GET /api/v1/branches/:branchID/queues/fulfillment.
func (s *Server) GetFulfillmentQueue(ctx echo.Context) error {
	if _, err := s.authorize(ctx, services.OpViewFulfillmentQueue); err != nil {
		return respondError(ctx, err)
	}

	branchID, err := pathUUID(ctx, "branchID")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetFulfillmentQueueQuery(branchID)
	if err != nil {
		return respondError(ctx, err)
	}

	rows, err := s.getFulfillmentQueueHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]FulfillmentQueueEntry, len(rows))
	for i, row := range rows {
		response[i] = FulfillmentQueueEntry{
			OrderID:        row.OrderID.String(),
			DeliveryID:     row.DeliveryID.String(),
			Method:         row.Method,
			DeliveryStatus: row.DeliveryStatus,
			Address:        row.Address,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

const timeFormat = "2006-01-02T15:04:05Z07:00"

// OrderItem is one line of the order response.
type OrderItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
}

// Order is the read model of one order.
type Order struct {
	OrderID        string      `json:"order_id"`
	CustomerID     string      `json:"customer_id"`
	BranchID       string      `json:"branch_id"`
	Status         string      `json:"status"`
	TotalAmount    int64       `json:"total_amount"`
	CreatedAt      string      `json:"created_at"`
	Items          []OrderItem `json:"items"`
	DeliveryMethod string      `json:"delivery_method"`
	DeliveryStatus string      `json:"delivery_status"`
	Address        string      `json:"address,omitempty"`
}

func toOrderResponse(response queries.GetOrderQueryResponse) Order {
	items := make([]OrderItem, len(response.Items))
	for i, item := range response.Items {
		items[i] = OrderItem{
			ProductID: item.ProductID.String(),
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		}
	}

	return Order{
		OrderID:        response.OrderID.String(),
		CustomerID:     response.CustomerID.String(),
		BranchID:       response.BranchID.String(),
		Status:         response.Status,
		TotalAmount:    response.TotalAmount,
		CreatedAt:      response.CreatedAt.UTC().Format(timeFormat),
		Items:          items,
		DeliveryMethod: response.DeliveryMethod,
		DeliveryStatus: response.DeliveryStatus,
		Address:        response.Address,
	}
}
