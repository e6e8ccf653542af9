package http

import (
	"net/http"
	"strings"

	"github.com/DRSN-tech/watch-store/internal/domain"
	"github.com/DRSN-tech/watch-store/internal/usecase"
	"github.com/DRSN-tech/watch-store/pkg/e"
	"github.com/DRSN-tech/watch-store/pkg/logger"
	"github.com/go-playground/validator/v10"
)

const (
	maxTotalRequestSize = 20 << 20
	maxMemory           = 8 << 20
	maxFileSize         = 15 << 20
	imageField          = "image"
)

type ProductHandler struct {
	productUsecase usecase.ProductUC
	validate       *validator.Validate
	logger         logger.Logger
}

func NewProductHandler(productUsecase usecase.ProductUC, validate *validator.Validate, logger logger.Logger) *ProductHandler {
	return &ProductHandler{productUsecase: productUsecase, validate: validate, logger: logger}
}

// insertProduct
//
//	@Summary		Добавление часов
//	@Description	Создает товар, загружает изображение и сохраняет ссылку на него
//	@Tags			products
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			name		formData	string	true	"Название"
//	@Param			description	formData	string	false	"Описание"
//	@Param			gender		formData	string	true	"Пол"
//	@Param			price		formData	number	true	"Цена"
//	@Param			brand_id	formData	integer	true	"ID бренда"
//	@Param			category_id	formData	integer	true	"ID категории"
//	@Param			image		formData	file	true	"Изображение"
//	@Success		201			{object}	ProductResponse
//	@Failure		400			{object}	ErrorResponse	"Ошибка валидации"
//	@Failure		404			{object}	ErrorResponse	"Бренд или категория не найдены"
//	@Router			/products [post]
func (p *ProductHandler) insertProduct(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxTotalRequestSize)

	if err := ensureMultipartForm(r, maxMemory); err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, err.Error(), r.Header.Get("Content-Type"))
		WriteError(w, err)
		return
	}

	form, err := p.parseProductForm(r)
	if err != nil {
		p.logger.Warnf("%d %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	file, err := parseOptionalImage(r, imageField, maxFileSize)
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	res, err := p.productUsecase.InsertProduct(r.Context(), usecase.NewInsertProductReq(
		form.Name, form.Description, form.Gender, form.Price, form.BrandID, form.CategoryID, file,
	))
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	product := *res.Product
	if res.Image != nil {
		product.Images = []domain.ProductImage{*res.Image}
	}
	WriteSuccess(w, http.StatusCreated, toProductResponse(&product))
}

func (p *ProductHandler) parseProductForm(r *http.Request) (*productForm, error) {
	price, err := parsePriceToCents(r.FormValue("price"))
	if err != nil {
		return nil, err
	}
	brandID, err := parseID(r.FormValue("brand_id"))
	if err != nil {
		return nil, err
	}
	categoryID, err := parseID(r.FormValue("category_id"))
	if err != nil {
		return nil, err
	}

	form := &productForm{
		Name:        strings.TrimSpace(r.FormValue("name")),
		Description: r.FormValue("description"),
		Gender:      strings.TrimSpace(r.FormValue("gender")),
		Price:       price,
		BrandID:     brandID,
		CategoryID:  categoryID,
	}
	if err := p.validate.Struct(form); err != nil {
		return nil, err
	}
	return form, nil
}

// listProducts
//
//	@Summary	Список часов
//	@Tags		products
//	@Produce	json
//	@Success	200	{array}		ProductResponse
//	@Failure	500	{object}	ErrorResponse
//	@Router		/products [get]
func (p *ProductHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := p.productUsecase.ListProducts(r.Context())
	if err != nil {
		p.logger.Errorf(err, "list products")
		WriteError(w, err)
		return
	}
	WriteSuccess(w, http.StatusOK, toProductsResponse(products))
}

// getProductsByBrand
//
//	@Summary	Часы бренда
//	@Tags		products
//	@Produce	json
//	@Param		name	query		string	true	"Название бренда (поиск без учета регистра)"
//	@Success	200		{array}		ProductResponse
//	@Failure	404		{object}	ErrorResponse	"Бренд не найден"
//	@Router		/products/brand [get]
func (p *ProductHandler) getProductsByBrand(w http.ResponseWriter, r *http.Request) {
	products, err := p.productUsecase.GetProductsByBrandName(r.Context(), r.URL.Query().Get("name"))
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}
	WriteSuccess(w, http.StatusOK, toProductsResponse(products))
}

// searchProducts
//
//	@Summary	Поиск часов по названию
//	@Tags		products
//	@Produce	json
//	@Param		name	query		string	true	"Часть названия"
//	@Success	200		{array}		ProductResponse
//	@Router		/products/search [get]
func (p *ProductHandler) searchProducts(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		WriteError(w, e.Wrap("name", e.ErrMissingFields))
		return
	}

	products, err := p.productUsecase.SearchProductsByName(r.Context(), name)
	if err != nil {
		p.logger.Errorf(err, "search products by name %q", name)
		WriteError(w, err)
		return
	}
	WriteSuccess(w, http.StatusOK, toProductsResponse(products))
}

// filterProductsByGender
//
//	@Summary	Фильтр часов по полу
//	@Tags		products
//	@Produce	json
//	@Param		gender	query		string	true	"Пол"
//	@Success	200		{array}		ProductResponse
//	@Router		/products/gender [get]
func (p *ProductHandler) filterProductsByGender(w http.ResponseWriter, r *http.Request) {
	gender := r.URL.Query().Get("gender")
	if gender == "" {
		WriteError(w, e.Wrap("gender", e.ErrMissingFields))
		return
	}

	products, err := p.productUsecase.FilterProductsByGender(r.Context(), gender)
	if err != nil {
		p.logger.Errorf(err, "filter products by gender %q", gender)
		WriteError(w, err)
		return
	}
	WriteSuccess(w, http.StatusOK, toProductsResponse(products))
}
