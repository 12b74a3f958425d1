package sales

import (
	"context"

	"github.com/jhoicas/tacohut-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción, pasando repositorios atados a esa tx.
// Garantiza que la venta, el descuento de insumos y sus alertas se confirmen juntos
// cuando el backend lo soporta.
type TxRunner interface {
	RunSale(ctx context.Context, fn func(
		sales repository.SaleRepository,
		menu repository.MenuRepository,
		inventory repository.InventoryRepository,
		alerts repository.AlertRepository,
	) error) error
}
