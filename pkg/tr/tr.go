package tr

import (
	"context"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
)

// Querier возвращает текущую транзакцию из контекста, а если её нет, сам пул.
// Так репозитории одинаково работают внутри manager.Do и вне его.
func Querier(ctx context.Context, db trmpgx.Tr) trmpgx.Tr {
	return trmpgx.DefaultCtxGetter.DefaultTrOrDB(ctx, db)
}
