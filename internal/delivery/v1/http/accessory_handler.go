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

type AccessoryHandler struct {
	accessoryUsecase usecase.AccessoryUC
	validate         *validator.Validate
	logger           logger.Logger
}

func NewAccessoryHandler(accessoryUsecase usecase.AccessoryUC, validate *validator.Validate, logger logger.Logger) *AccessoryHandler {
	return &AccessoryHandler{accessoryUsecase: accessoryUsecase, validate: validate, logger: logger}
}

// insertAccessory
//
//	@Summary		Добавление аксессуара
//	@Tags			accessories
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			name		formData	string	true	"Название"
//	@Param			description	formData	string	false	"Описание"
//	@Param			color		formData	string	true	"Цвет"
//	@Param			price		formData	number	true	"Цена"
//	@Param			brand_id	formData	integer	true	"ID бренда"
//	@Param			category_id	formData	integer	true	"ID категории"
//	@Param			image		formData	file	true	"Изображение"
//	@Success		201			{object}	AccessoryResponse
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Router			/accessories [post]
func (a *AccessoryHandler) insertAccessory(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxTotalRequestSize)

	if err := ensureMultipartForm(r, maxMemory); err != nil {
		a.logger.Warnf("%d %s: %s", http.StatusBadRequest, err.Error(), r.Header.Get("Content-Type"))
		WriteError(w, err)
		return
	}

	form, err := a.parseAccessoryForm(r)
	if err != nil {
		a.logger.Warnf("%d %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	file, err := parseOptionalImage(r, imageField, maxFileSize)
	if err != nil {
		a.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	res, err := a.accessoryUsecase.InsertAccessory(r.Context(), usecase.NewInsertAccessoryReq(
		form.Name, form.Description, form.Color, form.Price, form.BrandID, form.CategoryID, file,
	))
	if err != nil {
		a.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	accessory := *res.Accessory
	if res.Image != nil {
		accessory.Images = []domain.AccessoryImage{*res.Image}
	}
	WriteSuccess(w, http.StatusCreated, toAccessoryResponse(&accessory))
}

func (a *AccessoryHandler) parseAccessoryForm(r *http.Request) (*accessoryForm, error) {
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

	form := &accessoryForm{
		Name:        strings.TrimSpace(r.FormValue("name")),
		Description: r.FormValue("description"),
		Color:       strings.TrimSpace(r.FormValue("color")),
		Price:       price,
		BrandID:     brandID,
		CategoryID:  categoryID,
	}
	if err := a.validate.Struct(form); err != nil {
		return nil, err
	}
	return form, nil
}

// listAccessories
//
//	@Summary	Список аксессуаров
//	@Tags		accessories
//	@Produce	json
//	@Success	200	{array}	AccessoryResponse
//	@Router		/accessories [get]
func (a *AccessoryHandler) listAccessories(w http.ResponseWriter, r *http.Request) {
	accessories, err := a.accessoryUsecase.ListAccessories(r.Context())
	if err != nil {
		a.logger.Errorf(err, "list accessories")
		WriteError(w, err)
		return
	}
	WriteSuccess(w, http.StatusOK, toAccessoriesResponse(accessories))
}

// searchAccessories
//
//	@Summary	Поиск аксессуаров по названию
//	@Tags		accessories
//	@Produce	json
//	@Param		name	query	string	true	"Часть названия"
//	@Success	200		{array}	AccessoryResponse
//	@Router		/accessories/search [get]
func (a *AccessoryHandler) searchAccessories(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		WriteError(w, e.Wrap("name", e.ErrMissingFields))
		return
	}

	accessories, err := a.accessoryUsecase.SearchAccessoriesByName(r.Context(), name)
	if err != nil {
		a.logger.Errorf(err, "search accessories by name %q", name)
		WriteError(w, err)
		return
	}
	WriteSuccess(w, http.StatusOK, toAccessoriesResponse(accessories))
}

// filterAccessoriesByColor
//
//	@Summary	Фильтр аксессуаров по цвету
//	@Tags		accessories
//	@Produce	json
//	@Param		color	query		string	true	"Цвет (точное совпадение)"
//	@Success	200		{array}		AccessoryResponse
//	@Failure	500		{object}	ErrorResponse
//	@Router		/accessories/color [get]
func (a *AccessoryHandler) filterAccessoriesByColor(w http.ResponseWriter, r *http.Request) {
	color := r.URL.Query().Get("color")
	if color == "" {
		WriteError(w, e.Wrap("color", e.ErrMissingFields))
		return
	}

	accessories, err := a.accessoryUsecase.FilterAccessoriesByColor(r.Context(), color)
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteSuccess(w, http.StatusOK, toAccessoriesResponse(accessories))
}
