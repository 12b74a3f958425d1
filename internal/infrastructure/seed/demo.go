// Package seed contiene el conjunto de datos de demostración del local (menú con recetas,
// bodega, ventas y gastos de la semana del 15 de enero de 2024). Lo usan el backend en
// memoria, el comando cmd/seed y los tests.
package seed

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tacohut-api/internal/domain/entity"
)

// Dataset datos completos de demostración.
type Dataset struct {
	Menu      []entity.MenuItem
	Inventory []entity.InventoryItem
	Sales     []entity.Sale
	Expenses  []entity.Expense
	Alerts    []entity.Alert
}

var namespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://tacohut.local/seed"))

// ID genera un UUID estable para un registro de demostración (mismo kind+key = mismo ID).
func ID(kind, key string) string {
	return uuid.NewSHA1(namespace, []byte(kind+"/"+key)).String()
}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func ts(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func day(s string) *time.Time {
	t := ts(s + "T00:00:00Z")
	return &t
}

func ing(name, qty, unit string) entity.Ingredient {
	return entity.Ingredient{Name: name, Quantity: d(qty), Unit: unit}
}

// Demo devuelve una copia nueva del conjunto de demostración.
func Demo() Dataset {
	created := ts("2024-01-01T08:00:00Z")
	menu := []entity.MenuItem{
		{
			ID: ID("menu", "1"), Name: "Carne Asada Taco", Price: d("250"), Category: "Tacos", Cost: d("120"),
			Ingredients: []entity.Ingredient{
				ing("Beef", "80", "g"), ing("Tortilla", "1", "piece"), ing("Onions", "15", "g"),
				ing("Cilantro", "5", "g"), ing("Lime", "0.25", "piece"),
			},
		},
		{
			ID: ID("menu", "2"), Name: "Chicken Taco", Price: d("220"), Category: "Tacos", Cost: d("100"),
			Ingredients: []entity.Ingredient{
				ing("Chicken", "70", "g"), ing("Tortilla", "1", "piece"), ing("Onions", "15", "g"),
				ing("Cilantro", "5", "g"), ing("Lime", "0.25", "piece"),
			},
		},
		{
			ID: ID("menu", "3"), Name: "Guacamole & Chips", Price: d("180"), Category: "Sides", Cost: d("80"),
			Ingredients: []entity.Ingredient{
				ing("Avocado", "1", "piece"), ing("Tortilla Chips", "50", "g"), ing("Tomatoes", "20", "g"),
				ing("Onions", "10", "g"), ing("Lime", "0.5", "piece"),
			},
		},
		{ID: ID("menu", "4"), Name: "Beef Burrito", Price: d("350"), Category: "Burritos", Cost: d("180"),
			Ingredients: []entity.Ingredient{ing("Beef", "120", "g"), ing("Tortilla", "1", "piece"), ing("Tomatoes", "30", "g")}},
		{ID: ID("menu", "5"), Name: "Chicken Quesadilla", Price: d("280"), Category: "Quesadillas", Cost: d("140"),
			Ingredients: []entity.Ingredient{ing("Chicken", "90", "g"), ing("Tortilla", "2", "piece")}},
	}
	for i := range menu {
		menu[i].CreatedAt, menu[i].UpdatedAt = created, created
	}

	inv := []entity.InventoryItem{
		{ID: ID("inventory", "1"), Name: "Beef", CurrentStock: d("2500"), Unit: "g", LowStockThreshold: d("500"),
			CostPerUnit: d("0.8"), Supplier: "Kileleshwa Butchery", LastRestocked: ts("2024-01-15T00:00:00Z"), ExpiryDate: day("2024-01-18")},
		{ID: ID("inventory", "2"), Name: "Chicken", CurrentStock: d("1800"), Unit: "g", LowStockThreshold: d("400"),
			CostPerUnit: d("0.6"), Supplier: "Kileleshwa Butchery", LastRestocked: ts("2024-01-15T00:00:00Z"), ExpiryDate: day("2024-01-18")},
		{ID: ID("inventory", "3"), Name: "Tortilla", CurrentStock: d("45"), Unit: "piece", LowStockThreshold: d("20"),
			CostPerUnit: d("8"), Supplier: "Local Bakery", LastRestocked: ts("2024-01-14T00:00:00Z")},
		{ID: ID("inventory", "4"), Name: "Avocado", CurrentStock: d("8"), Unit: "piece", LowStockThreshold: d("10"),
			CostPerUnit: d("25"), Supplier: "City Park Market", LastRestocked: ts("2024-01-13T00:00:00Z"), ExpiryDate: day("2024-01-17")},
		{ID: ID("inventory", "5"), Name: "Tomatoes", CurrentStock: d("800"), Unit: "g", LowStockThreshold: d("200"),
			CostPerUnit: d("0.15"), Supplier: "City Park Market", LastRestocked: ts("2024-01-14T00:00:00Z"), ExpiryDate: day("2024-01-18")},
	}
	for i := range inv {
		inv[i].UpdatedAt = inv[i].LastRestocked
	}

	line := func(menuKey string, qty int) entity.SaleItem {
		for _, m := range menu {
			if m.ID == ID("menu", menuKey) {
				return entity.SaleItem{MenuItemID: m.ID, Name: m.Name, Quantity: qty, UnitPrice: m.Price, UnitCost: m.Cost}
			}
		}
		panic("seed: plato desconocido " + menuKey)
	}
	sales := []entity.Sale{
		{ID: ID("sale", "1"), RecordedAt: ts("2024-01-15T10:30:00Z"), Total: d("680"),
			Items:   []entity.SaleItem{line("1", 2), line("3", 1)},
			Payment: entity.MobileMoneyPayment{Code: "QA12B3C4D5", Phone: "+254700123456"}},
		{ID: ID("sale", "2"), RecordedAt: ts("2024-01-15T11:15:00Z"), Total: d("660"),
			Items: []entity.SaleItem{line("2", 3)}, Payment: entity.CashPayment{}},
		{ID: ID("sale", "3"), RecordedAt: ts("2024-01-16T12:00:00Z"), Total: d("690"),
			Items:   []entity.SaleItem{line("1", 1), line("2", 2)},
			Payment: entity.MobileMoneyPayment{Code: "QB34C5D6E7"}},
		{ID: ID("sale", "4"), RecordedAt: ts("2024-01-17T13:30:00Z"), Total: d("1000"),
			Items: []entity.SaleItem{line("1", 4)}, Payment: entity.CashPayment{}},
		{ID: ID("sale", "5"), RecordedAt: ts("2024-01-18T14:45:00Z"), Total: d("800"),
			Items:   []entity.SaleItem{line("2", 2), line("3", 2)},
			Payment: entity.MobileMoneyPayment{Code: "QC45D6E7F8"}},
	}

	expenses := []entity.Expense{
		{ID: ID("expense", "1"), RecordedAt: ts("2024-01-15T08:00:00Z"), Description: "Fresh beef from Kileleshwa Butchery",
			Amount: d("3500"), Category: entity.ExpenseIngredients, Payment: entity.CashPayment{}},
		{ID: ID("expense", "2"), RecordedAt: ts("2024-01-15T08:30:00Z"), Description: "Vegetables and avocados",
			Amount: d("1200"), Category: entity.ExpenseIngredients, Payment: entity.MobileMoneyPayment{Code: "QZ98Y7X6W5"}},
		{ID: ID("expense", "3"), RecordedAt: ts("2024-01-16T09:00:00Z"), Description: "Tortillas from local bakery",
			Amount: d("800"), Category: entity.ExpenseIngredients, Payment: entity.CashPayment{}},
		{ID: ID("expense", "4"), RecordedAt: ts("2024-01-17T07:45:00Z"), Description: "Gas cylinder refill",
			Amount: d("2200"), Category: entity.ExpenseUtilities, Payment: entity.MobileMoneyPayment{Code: "QA11B2C3D4"}},
	}

	alerts := []entity.Alert{
		{ID: ID("alert", "1"), Type: entity.AlertCritical, Title: "Low Stock Alert",
			Message:         "Avocado is running low! Only 8 piece remaining (threshold: 10)",
			InventoryItemID: ID("inventory", "4"), CreatedAt: ts("2024-01-16T11:45:00Z")},
		{ID: ID("alert", "2"), Type: entity.AlertWarning, Title: "Expiry Warning",
			Message:         "Beef expires tomorrow (Jan 18). Use soon to avoid spoilage.",
			InventoryItemID: ID("inventory", "1"), CreatedAt: ts("2024-01-16T09:00:00Z")},
	}

	return Dataset{Menu: menu, Inventory: inv, Sales: sales, Expenses: expenses, Alerts: alerts}
}
