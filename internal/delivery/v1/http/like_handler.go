package http

import (
	"net/http"

	"github.com/DRSN-tech/watch-store/internal/usecase"
	"github.com/DRSN-tech/watch-store/pkg/logger"
	"github.com/go-playground/validator/v10"
)

type LikeHandler struct {
	likeUsecase usecase.LikeUC
	validate    *validator.Validate
	logger      logger.Logger
}

func NewLikeHandler(likeUsecase usecase.LikeUC, validate *validator.Validate, logger logger.Logger) *LikeHandler {
	return &LikeHandler{likeUsecase: likeUsecase, validate: validate, logger: logger}
}

// insertLike
//
//	@Summary		Лайк товара
//	@Description	Записывает количество лайков пользователя для товара. Повторный вызов перезаписывает значение
//	@Tags			likes
//	@Accept			json
//	@Produce		json
//	@Param			request	body		LikeRequest	true	"Лайк"
//	@Success		201		{object}	LikeResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse	"Пользователь или товар не найдены"
//	@Router			/likes [post]
func (l *LikeHandler) insertLike(w http.ResponseWriter, r *http.Request) {
	var req LikeRequest
	if err := decodeJSON(r, &req); err != nil {
		l.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}
	if err := l.validate.Struct(req); err != nil {
		l.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	like, err := l.likeUsecase.InsertLike(r.Context(), req.UserID, req.ProductID, req.LikeCount)
	if err != nil {
		l.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}
	WriteSuccess(w, http.StatusCreated, toLikeResponse(like))
}
