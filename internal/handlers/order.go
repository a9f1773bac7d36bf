// internal/handlers/order.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/florelle/orders-backend/internal/models"
	"github.com/florelle/orders-backend/internal/services"
	"github.com/florelle/orders-backend/internal/storage"
	"github.com/florelle/orders-backend/internal/utils"
	"github.com/florelle/orders-backend/internal/validation"
)

type OrderHandler struct {
	orderService *services.OrderService
	log          *logrus.Logger
}

func NewOrderHandler(orderService *services.OrderService, log *logrus.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		log:          log,
	}
}

// GetOrders lists all orders with catalog-enriched products.
// @Summary List orders
// @Description Returns every order with its products expanded to their constituent items
// @Produce json
// @Success 200 {array} models.EnrichedOrder
// @Failure 500 {object} map[string]string
// @Router /orders [get]
func (h *OrderHandler) GetOrders(c *gin.Context) {
	c.JSON(http.StatusOK, h.orderService.ListOrders())
}

// GetOrder returns a single enriched order.
// @Summary Get order by id
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} models.EnrichedOrder
// @Failure 404 {object} map[string]string
// @Router /orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.orderService.GetOrder(c.Param("id"))
	if err != nil {
		if errors.Is(err, storage.ErrOrderNotFound) {
			utils.NotFoundResponse(c, "Order not found")
			return
		}
		h.log.WithError(err).Error("Failed to fetch order")
		utils.InternalErrorResponse(c, "Failed to fetch order")
		return
	}
	c.JSON(http.StatusOK, order)
}

// CreateOrder validates and stores a new order.
// @Summary Create order
// @Accept json
// @Produce json
// @Param order body models.Order true "Order without id"
// @Success 201 {object} models.Order
// @Failure 400 {object} map[string]string
// @Router /orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var candidate models.Order
	if err := c.ShouldBindJSON(&candidate); err != nil {
		utils.BadRequestResponse(c, "Invalid order format")
		return
	}

	created, err := h.orderService.CreateOrder(candidate)
	if err != nil {
		var invalid *storage.InvalidOrderError
		if !errors.As(err, &invalid) {
			h.log.WithError(err).Error("Failed to create order")
		}
		// The create endpoint has always answered 400 for every failure.
		utils.BadRequestResponse(c, err.Error())
		return
	}

	c.Header("Location", "/api/orders/"+created.ID)
	c.JSON(http.StatusCreated, created)
}

// UpdateOrder replaces an existing order wholesale.
// @Summary Update order
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param order body models.Order true "Replacement order"
// @Success 200 {object} models.Order
// @Failure 400 {object} map[string]string
// @Router /orders/{id} [put]
func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	var candidate models.Order
	if err := c.ShouldBindJSON(&candidate); err != nil {
		utils.BadRequestResponse(c, "Invalid order format")
		return
	}

	updated, err := h.orderService.UpdateOrder(c.Param("id"), candidate)
	if err != nil {
		var invalid *storage.InvalidOrderError
		if !errors.As(err, &invalid) && !errors.Is(err, storage.ErrOrderNotFound) {
			h.log.WithError(err).Error("Failed to update order")
		}
		// Update maps not-found to 400 as well; existing clients depend on
		// the asymmetry with delete.
		utils.BadRequestResponse(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteOrder removes an order and echoes the removed record.
// @Summary Delete order
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /orders/{id} [delete]
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	deleted, err := h.orderService.DeleteOrder(c.Param("id"))
	if err != nil {
		if !errors.Is(err, storage.ErrOrderNotFound) {
			h.log.WithError(err).Error("Failed to delete order")
		}
		utils.NotFoundResponse(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Order deleted",
		"order":   deleted,
	})
}

// GetOrderSummary aggregates item quantities over a date range.
// @Summary Item summary for a date range
// @Produce json
// @Param startDate query string true "Range start"
// @Param endDate query string true "Range end"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /orders/summary [get]
func (h *OrderHandler) GetOrderSummary(c *gin.Context) {
	r := validation.ValidateDateRange(c.Query("startDate"), c.Query("endDate"))
	if !r.Valid {
		utils.BadRequestResponse(c, r.Message)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products": h.orderService.ProductSummary(r.Start, r.End),
	})
}
