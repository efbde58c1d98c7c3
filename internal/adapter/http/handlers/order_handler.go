package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	request "atelier_couture/internal/adapter/http/dto/request"
	response "atelier_couture/internal/adapter/http/dto/response"
	"atelier_couture/internal/usecase"
	"atelier_couture/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)
)

// OrderHandler handles HTTP requests for order CRUD and the filtered list.
type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// ListOrders returns the order list, optionally narrowed by the `search`
// free-text filter and the `delivery_date` (YYYY-MM-DD) exact-day filter.
func (h *OrderHandler) ListOrders(c *gin.Context) {
	var deliveryDate *time.Time
	if raw := strings.TrimSpace(c.Query("delivery_date")); raw != "" {
		d, err := time.Parse("2006-01-02", raw)
		if err != nil {
			appErr := pkg.NewDomainErrorSimple("INVALID_DELIVERY_DATE", "Invalid delivery_date, expected YYYY-MM-DD", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		deliveryDate = &d
	}

	orders, err := h.usecase.List(c.Request.Context(), c.Query("search"), deliveryDate)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrders(orders))
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	in, ok := h.bindOrderInput(c)
	if !ok {
		return
	}

	order, err := h.usecase.Create(c.Request.Context(), in)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromOrder(order))
}

func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	in, ok := h.bindOrderInput(c)
	if !ok {
		return
	}

	order, err := h.usecase.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *OrderHandler) bindOrderInput(c *gin.Context) (usecase.OrderInput, bool) {
	var payload request.OrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return usecase.OrderInput{}, false
	}

	deliveryDate, err := payload.ResolveDeliveryDate()
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_DELIVERY_DATE", "Invalid delivery_date, expected YYYY-MM-DD", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return usecase.OrderInput{}, false
	}

	return usecase.OrderInput{
		ClientName:       payload.ClientName,
		Model:            payload.Model,
		FabricColor:      payload.FabricColor,
		Size:             payload.Size,
		FabricPrice:      payload.ResolveFabricPrice(),
		SellingPrice:     payload.ResolveSellingPrice(),
		OrderCount:       payload.OrderCount,
		AdvancePayment:   payload.AdvancePayment,
		DeliveryDate:     deliveryDate,
		DeliveryLocation: payload.DeliveryLocation,
		ModelImage:       payload.ModelImage,
		Status:           payload.Status,
	}, true
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID),
		errors.Is(err, usecase.ErrMissingClientName),
		errors.Is(err, usecase.ErrMissingModel),
		errors.Is(err, usecase.ErrMissingFabricColor),
		errors.Is(err, usecase.ErrMissingSize),
		errors.Is(err, usecase.ErrInvalidFabricPrice),
		errors.Is(err, usecase.ErrInvalidSellingPrice),
		errors.Is(err, usecase.ErrInvalidOrderCount),
		errors.Is(err, usecase.ErrInvalidAdvancePayment):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
