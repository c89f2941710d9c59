package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/app2/products-catalog/internal/core/domain"
	"github.com/app2/products-catalog/internal/core/ports"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// ProductHandler handles HTTP requests for catalog and cart operations.
type ProductHandler struct {
	service ports.CatalogService
}

func NewProductHandler(service ports.CatalogService) *ProductHandler {
	return &ProductHandler{service: service}
}

type createProductRequest struct {
	Name     string  `json:"name"      validate:"required,min=2,max=200"`
	ImageURL string  `json:"image_url" validate:"omitempty,max=500"`
	Price    float64 `json:"price"     validate:"required,gt=0"`
}

// addChartRequest keeps the original wire contract of the cart-add endpoint:
// "nome" is the login of the owning account.
type addChartRequest struct {
	Nome       string  `json:"nome"        validate:"required,min=3,max=100"`
	TotalValue float64 `json:"total_value" validate:"gte=0"`
	QtdItens   int     `json:"qtd_itens"   validate:"gte=0"`
}

type purchaseSummaryResponse struct {
	UserName   string  `json:"userName"`
	UserID     string  `json:"userId"`
	TotalItems int     `json:"totalItems"`
	TotalValue float64 `json:"totalValue"`
}

// Add creates a new catalog product.
//
// @Summary      Create a new product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProductRequest  true  "Product details"
// @Success      201   {object}  domain.Product
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /product/add [post]
func (h *ProductHandler) Add(c echo.Context) error {
	if _, err := ctxIdentity(c); err != nil {
		return err
	}

	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	product, err := h.service.AddProduct(c.Request().Context(), ports.CreateProductInput{
		Name:     req.Name,
		ImageURL: req.ImageURL,
		Price:    req.Price,
	})
	if err != nil {
		if errors.Is(err, domain.ErrProductExists) || errors.Is(err, domain.ErrInvalidInput) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		}
		return err
	}

	return c.JSON(http.StatusCreated, product)
}

// List returns the full product catalog.
//
// @Summary      List all products
// @Tags         products
// @Produce      json
// @Success      200  {array}  domain.Product
// @Router       /product [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.service.ListProducts(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// AddChart appends an entry to a user's purchase ledger.
//
// @Summary      Add a cart entry
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body      addChartRequest  true  "Cart entry"
// @Success      200   "added"
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /product/chart/add [post]
func (h *ProductHandler) AddChart(c echo.Context) error {
	var req addChartRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	err := h.service.AddToCart(c.Request().Context(), ports.AddToCartInput{
		Login:      req.Nome,
		QtdItens:   req.QtdItens,
		TotalValue: req.TotalValue,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			return c.JSON(http.StatusNotFound, errorResponse{Error: "user not found"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		}
		return err
	}

	return c.NoContent(http.StatusOK)
}

// Clients returns the per-account purchase summaries.
//
// @Summary      Purchase summary per client
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   purchaseSummaryResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /product/clients [get]
func (h *ProductHandler) Clients(c echo.Context) error {
	if _, err := ctxIdentity(c); err != nil {
		return err
	}

	summaries, err := h.service.Summarize(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]purchaseSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		resp = append(resp, purchaseSummaryResponse{
			UserName:   s.Login,
			UserID:     s.UserID,
			TotalItems: s.TotalItems,
			TotalValue: s.TotalValue,
		})
	}
	return c.JSON(http.StatusOK, resp)
}
