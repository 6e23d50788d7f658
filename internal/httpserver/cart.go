package httpserver

import (
	"errors"
	"log"
	"net/http"

	"huerto-hogar/internal/domain"
	"huerto-hogar/internal/pricing"

	"github.com/gin-gonic/gin"
)

type addItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity"`
}

type cartResponse struct {
	Cart      domain.CartState  `json:"cart"`
	Breakdown pricing.Breakdown `json:"breakdown"`
}

func cartJSON(deps Deps) cartResponse {
	snap := deps.Cart.Snapshot()
	return cartResponse{Cart: snap, Breakdown: pricing.Compute(snap)}
}

func getCartHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, cartJSON(deps))
	}
}

// addCartItemHandler resolves the product from the catalog so the store
// only ever receives fully resolved lines.
func addCartItemHandler(logger *log.Logger, deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "productId required"})
			return
		}
		if req.Quantity == 0 {
			req.Quantity = 1
		}
		if req.Quantity < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "quantity must be positive"})
			return
		}

		product, err := deps.Catalog.GetByID(c.Request.Context(), req.ProductID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "producto no encontrado"})
				return
			}
			logger.Printf("cart: resolve product %s: %v", req.ProductID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "catálogo no disponible"})
			return
		}
		if !product.Available {
			c.JSON(http.StatusConflict, gin.H{"message": "producto sin stock"})
			return
		}

		deps.Cart.AddItem(*product, req.Quantity)
		c.JSON(http.StatusOK, cartJSON(deps))
	}
}

func incrementCartItemHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		deps.Cart.IncrementQuantity(c.Param("id"))
		c.JSON(http.StatusOK, cartJSON(deps))
	}
}

func decrementCartItemHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		deps.Cart.DecrementQuantity(c.Param("id"))
		c.JSON(http.StatusOK, cartJSON(deps))
	}
}

func removeCartItemHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		deps.Cart.RemoveItem(c.Param("id"))
		c.JSON(http.StatusOK, cartJSON(deps))
	}
}

func toggleDiscountHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		deps.Cart.ToggleStudentDiscount()
		c.JSON(http.StatusOK, cartJSON(deps))
	}
}

func clearCartHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		deps.Cart.ClearCart()
		c.JSON(http.StatusOK, cartJSON(deps))
	}
}

// checkoutHandler is a stub: payment is out of scope.
func checkoutHandler(c *gin.Context) {
	c.JSON(http.StatusNotImplemented, gin.H{"message": "pago no implementado"})
}
