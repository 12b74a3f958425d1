package repository

import (
	"context"

	"github.com/jhoicas/tacohut-api/internal/domain/entity"
)

// TransactionSource entrega el log completo de ventas y gastos al motor de analítica.
// Sin paginación, filtros ni orden en la frontera: el motor hace todo en memoria.
// Puede ser el almacén local o una instancia remota vía HTTP.
type TransactionSource interface {
	ListSales(ctx context.Context) ([]entity.Sale, error)
	ListExpenses(ctx context.Context) ([]entity.Expense, error)
}
