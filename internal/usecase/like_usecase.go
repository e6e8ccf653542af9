package usecase

import (
	"context"
	"errors"

	"github.com/DRSN-tech/watch-store/internal/domain"
	"github.com/DRSN-tech/watch-store/pkg/e"
)

// LikeUseCase хранит лайки пользователей.
type LikeUseCase struct {
	userRepo    UserRepository
	productRepo ProductRepository
	likeRepo    LikeRepository
}

func NewLikeUC(userRepo UserRepository, productRepo ProductRepository, likeRepo LikeRepository) *LikeUseCase {
	return &LikeUseCase{
		userRepo:    userRepo,
		productRepo: productRepo,
		likeRepo:    likeRepo,
	}
}

// InsertLike записывает количество лайков пользователя для товара.
// Отрицательный likeCount отклоняется до обращения к хранилищу, затем проверяются пользователь и товар. Запись на пару пользователь/товар одна,
// likeCount сохраняется как есть, повторный вызов его перезаписывает.
func (l *LikeUseCase) InsertLike(ctx context.Context, userID, productID int64, likeCount int32) (*domain.Like, error) {
	const op = "LikeUseCase.InsertLike"

	if likeCount < 0 {
		return nil, e.Wrap(op, e.ErrNegativeLikeCount)
	}

	if _, err := l.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, e.ErrRecordNotFound) {
			return nil, e.Wrap(op, e.ErrUserNotExist)
		}
		return nil, e.Wrap(op, err)
	}

	if _, err := l.productRepo.FindByID(ctx, productID); err != nil {
		if errors.Is(err, e.ErrRecordNotFound) {
			return nil, e.Wrap(op, e.ErrProductNotExist)
		}
		return nil, e.Wrap(op, err)
	}

	like, err := l.likeRepo.Upsert(ctx, domain.NewLike(userID, productID, likeCount))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return like, nil
}
