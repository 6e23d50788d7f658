package httpserver

import (
	"errors"
	"log"
	"net/http"

	"huerto-hogar/internal/domain"

	"github.com/gin-gonic/gin"
)

func listCatalogHandler(logger *log.Logger, deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := deps.Catalog.List(c.Request.Context())
		if err != nil {
			logger.Printf("catalog: list: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "catálogo no disponible"})
			return
		}
		if products == nil {
			products = []domain.Product{}
		}
		c.JSON(http.StatusOK, gin.H{"products": products})
	}
}

func getCatalogHandler(logger *log.Logger, deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := deps.Catalog.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "producto no encontrado"})
				return
			}
			logger.Printf("catalog: get %s: %v", c.Param("id"), err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "catálogo no disponible"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
