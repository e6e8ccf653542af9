package http

import (
	"net/http"

	"github.com/DRSN-tech/watch-store/internal/usecase"
	"github.com/DRSN-tech/watch-store/pkg/logger"
	"github.com/go-playground/validator/v10"
)

// CatalogHandler обслуживает справочники брендов и категорий.
type CatalogHandler struct {
	catalogUsecase usecase.CatalogUC
	validate       *validator.Validate
	logger         logger.Logger
}

func NewCatalogHandler(catalogUsecase usecase.CatalogUC, validate *validator.Validate, logger logger.Logger) *CatalogHandler {
	return &CatalogHandler{catalogUsecase: catalogUsecase, validate: validate, logger: logger}
}

// createBrand
//
//	@Summary	Создание бренда
//	@Tags		brands
//	@Accept		json
//	@Produce	json
//	@Param		request	body		NameRequest	true	"Бренд"
//	@Success	201		{object}	BrandResponse
//	@Failure	400		{object}	ErrorResponse
//	@Router		/brands [post]
func (c *CatalogHandler) createBrand(w http.ResponseWriter, r *http.Request) {
	var req NameRequest
	if err := c.decode(r, &req); err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	brand, err := c.catalogUsecase.CreateBrand(r.Context(), req.Name)
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}
	WriteSuccess(w, http.StatusCreated, toBrandResponse(brand))
}

// listBrands
//
//	@Summary	Список брендов
//	@Tags		brands
//	@Produce	json
//	@Success	200	{array}	BrandResponse
//	@Router		/brands [get]
func (c *CatalogHandler) listBrands(w http.ResponseWriter, r *http.Request) {
	brands, err := c.catalogUsecase.ListBrands(r.Context())
	if err != nil {
		c.logger.Errorf(err, "list brands")
		WriteError(w, err)
		return
	}

	res := make([]*BrandResponse, 0, len(brands))
	for i := range brands {
		res = append(res, toBrandResponse(&brands[i]))
	}
	WriteSuccess(w, http.StatusOK, res)
}

// createCategory
//
//	@Summary	Создание категории
//	@Tags		categories
//	@Accept		json
//	@Produce	json
//	@Param		request	body		NameRequest	true	"Категория"
//	@Success	201		{object}	CategoryResponse
//	@Failure	400		{object}	ErrorResponse
//	@Router		/categories [post]
func (c *CatalogHandler) createCategory(w http.ResponseWriter, r *http.Request) {
	var req NameRequest
	if err := c.decode(r, &req); err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	category, err := c.catalogUsecase.CreateCategory(r.Context(), req.Name)
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}
	WriteSuccess(w, http.StatusCreated, toCategoryResponse(category))
}

// listCategories
//
//	@Summary	Список категорий
//	@Tags		categories
//	@Produce	json
//	@Success	200	{array}	CategoryResponse
//	@Router		/categories [get]
func (c *CatalogHandler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := c.catalogUsecase.ListCategories(r.Context())
	if err != nil {
		c.logger.Errorf(err, "list categories")
		WriteError(w, err)
		return
	}

	res := make([]*CategoryResponse, 0, len(categories))
	for i := range categories {
		res = append(res, toCategoryResponse(&categories[i]))
	}
	WriteSuccess(w, http.StatusOK, res)
}

func (c *CatalogHandler) decode(r *http.Request, req *NameRequest) error {
	if err := decodeJSON(r, req); err != nil {
		return err
	}
	return c.validate.Struct(req)
}
