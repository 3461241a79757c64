package api

import (
	"net/http"

	resdto "octo-mock/internal/handler/dto/response"
	"octo-mock/internal/handler/middleware"
	"octo-mock/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	products usecase.ProductUseCase
}

func NewProductHandler(products usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{products: products}
}

// @Summary List products
// @Description List every product in the catalog
// @Tags products
// @Produce json
// @Param Octo-Capabilities header string false "Comma-separated capability list"
// @Success 200 {array} resdto.ProductResponse
// @Router /products [get]
func (h *ProductHandler) GetProducts(c *gin.Context) {
	caps := middleware.GetCapabilities(c)

	products := h.products.GetProducts(c.Request.Context())
	out := make([]*resdto.ProductResponse, len(products))
	for i, p := range products {
		out[i] = resdto.FromProduct(p, caps)
	}
	c.JSON(http.StatusOK, out)
}

// @Summary Get product
// @Description Get a single product by id
// @Tags products
// @Produce json
// @Param productId path string true "Product id"
// @Param Octo-Capabilities header string false "Comma-separated capability list"
// @Success 200 {object} resdto.ProductResponse
// @Failure 400 {object} httperr.Response
// @Router /products/{productId} [get]
func (h *ProductHandler) GetProduct(c *gin.Context) {
	caps := middleware.GetCapabilities(c)

	p, err := h.products.GetProduct(c.Request.Context(), c.Param("productId"))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProduct(p, caps))
}
