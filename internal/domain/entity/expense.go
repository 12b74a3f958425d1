package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseCategory categoría de un gasto del negocio.
type ExpenseCategory string

// Categorías de gasto.
const (
	ExpenseIngredients ExpenseCategory = "ingredients"
	ExpenseSupplies    ExpenseCategory = "supplies"
	ExpenseEquipment   ExpenseCategory = "equipment"
	ExpenseUtilities   ExpenseCategory = "utilities"
	ExpenseOther       ExpenseCategory = "other"
)

// ExpenseCategories orden canónico, usado en reportes y gráficos.
var ExpenseCategories = []ExpenseCategory{
	ExpenseIngredients, ExpenseSupplies, ExpenseEquipment, ExpenseUtilities, ExpenseOther,
}

// Valid indica si la categoría es una de las conocidas.
func (c ExpenseCategory) Valid() bool {
	for _, k := range ExpenseCategories {
		if c == k {
			return true
		}
	}
	return false
}

// Expense gasto registrado (compra de insumos, servicios, etc.). Inmutable salvo eliminación.
type Expense struct {
	ID          string
	RecordedAt  time.Time
	Description string
	Amount      decimal.Decimal // no negativo
	Category    ExpenseCategory
	Payment     Payment
}

// Method atajo al método de pago.
func (e Expense) Method() PaymentMethod { return MethodOf(e.Payment) }
