package domain

import "time"

// Like хранит оценку товара пользователем. На пару (UserID, ProductID) приходится одна запись,
// LikeCount: абсолютное значение, повторная запись его перезаписывает.
type Like struct {
	ID        int64
	UserID    int64
	ProductID int64
	LikeCount int32
	CreatedAt time.Time
	UpdatedAt *time.Time
}

func NewLike(userID, productID int64, likeCount int32) *Like {
	return &Like{
		UserID:    userID,
		ProductID: productID,
		LikeCount: likeCount,
	}
}
