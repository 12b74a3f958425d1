package inventory

import "github.com/shopspring/decimal"

// WeightedCost costo promedio ponderado tras un reabastecimiento (servicio de dominio).
// NuevoCosto = ((StockActual * CostoActual) + (CantEntrada * CostoEntrada)) / (StockActual + CantEntrada)
// Si el stock resultante no es positivo devuelve el costo de entrada.
func WeightedCost(stock, unitCost, incoming, incomingCost decimal.Decimal) decimal.Decimal {
	if stock.IsNegative() {
		stock = decimal.Zero
	}
	sum := stock.Add(incoming)
	if sum.LessThanOrEqual(decimal.Zero) {
		return incomingCost
	}
	num := stock.Mul(unitCost).Add(incoming.Mul(incomingCost))
	return num.Div(sum).Round(4)
}
