package mongodb

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jhoicas/tacohut-api/internal/domain/entity"
)

// Documentos BSON. Los montos y cantidades se guardan como Decimal128 para no perder precisión.

type saleItemDoc struct {
	MenuItemID string               `bson:"menu_item_id"`
	Name       string               `bson:"name"`
	Quantity   int                  `bson:"quantity"`
	UnitPrice  primitive.Decimal128 `bson:"unit_price"`
	UnitCost   primitive.Decimal128 `bson:"unit_cost"`
}

type saleDoc struct {
	ID            string               `bson:"_id"`
	RecordedAt    time.Time            `bson:"timestamp"`
	Items         []saleItemDoc        `bson:"items"`
	Total         primitive.Decimal128 `bson:"total"`
	PaymentMethod string               `bson:"payment_method"`
	MpesaCode     string               `bson:"mpesa_code,omitempty"`
	CustomerPhone string               `bson:"customer_phone,omitempty"`
}

type expenseDoc struct {
	ID            string               `bson:"_id"`
	RecordedAt    time.Time            `bson:"timestamp"`
	Description   string               `bson:"description"`
	Amount        primitive.Decimal128 `bson:"amount"`
	Category      string               `bson:"category"`
	PaymentMethod string               `bson:"payment_method"`
	MpesaCode     string               `bson:"mpesa_code,omitempty"`
}

type ingredientDoc struct {
	Name     string               `bson:"name"`
	Quantity primitive.Decimal128 `bson:"quantity"`
	Unit     string               `bson:"unit"`
}

type menuItemDoc struct {
	ID          string               `bson:"_id"`
	Name        string               `bson:"name"`
	Price       primitive.Decimal128 `bson:"price"`
	Category    string               `bson:"category"`
	Cost        primitive.Decimal128 `bson:"cost"`
	Ingredients []ingredientDoc      `bson:"ingredients"`
	CreatedAt   time.Time            `bson:"created_at"`
	UpdatedAt   time.Time            `bson:"updated_at"`
}

type inventoryItemDoc struct {
	ID                string               `bson:"_id"`
	Name              string               `bson:"name"`
	CurrentStock      primitive.Decimal128 `bson:"current_stock"`
	Unit              string               `bson:"unit"`
	LowStockThreshold primitive.Decimal128 `bson:"low_stock_threshold"`
	CostPerUnit       primitive.Decimal128 `bson:"cost_per_unit"`
	Supplier          string               `bson:"supplier"`
	LastRestocked     time.Time            `bson:"last_restocked"`
	ExpiryDate        *time.Time           `bson:"expiry_date,omitempty"`
	UpdatedAt         time.Time            `bson:"updated_at"`
}

type alertDoc struct {
	ID              string    `bson:"_id"`
	Type            string    `bson:"type"`
	Title           string    `bson:"title"`
	Message         string    `bson:"message"`
	InventoryItemID string    `bson:"inventory_item_id,omitempty"`
	CreatedAt       time.Time `bson:"timestamp"`
	Acknowledged    bool      `bson:"acknowledged"`
}

func toD128(d decimal.Decimal) primitive.Decimal128 {
	v, err := primitive.ParseDecimal128(d.String())
	if err != nil {
		// fuera de rango de Decimal128 (34 dígitos): no ocurre con montos reales
		return primitive.NewDecimal128(0, 0)
	}
	return v
}

func fromD128(v primitive.Decimal128) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(v.String())
	if err != nil {
		return decimal.Zero, fmt.Errorf("decimal128 %q: %w", v.String(), err)
	}
	return d, nil
}

// decoder acumula el primer error de conversión.
type decoder struct{ err error }

func (c *decoder) dec(v primitive.Decimal128) decimal.Decimal {
	d, err := fromD128(v)
	if err != nil && c.err == nil {
		c.err = err
	}
	return d
}

func toSaleDoc(s entity.Sale) saleDoc {
	method, code, phone := entity.PaymentFields(s.Payment)
	items := make([]saleItemDoc, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, saleItemDoc{
			MenuItemID: it.MenuItemID, Name: it.Name, Quantity: it.Quantity,
			UnitPrice: toD128(it.UnitPrice), UnitCost: toD128(it.UnitCost),
		})
	}
	return saleDoc{
		ID: s.ID, RecordedAt: s.RecordedAt.UTC(), Items: items, Total: toD128(s.Total),
		PaymentMethod: string(method), MpesaCode: code, CustomerPhone: phone,
	}
}

func (d saleDoc) entity() (entity.Sale, error) {
	var c decoder
	items := make([]entity.SaleItem, 0, len(d.Items))
	for _, it := range d.Items {
		items = append(items, entity.SaleItem{
			MenuItemID: it.MenuItemID, Name: it.Name, Quantity: it.Quantity,
			UnitPrice: c.dec(it.UnitPrice), UnitCost: c.dec(it.UnitCost),
		})
	}
	s := entity.Sale{
		ID: d.ID, RecordedAt: d.RecordedAt, Items: items, Total: c.dec(d.Total),
		Payment: entity.NewPayment(entity.PaymentMethod(d.PaymentMethod), d.MpesaCode, d.CustomerPhone),
	}
	return s, c.err
}

func toExpenseDoc(e entity.Expense) expenseDoc {
	method, code, _ := entity.PaymentFields(e.Payment)
	return expenseDoc{
		ID: e.ID, RecordedAt: e.RecordedAt.UTC(), Description: e.Description, Amount: toD128(e.Amount),
		Category: string(e.Category), PaymentMethod: string(method), MpesaCode: code,
	}
}

func (d expenseDoc) entity() (entity.Expense, error) {
	var c decoder
	e := entity.Expense{
		ID: d.ID, RecordedAt: d.RecordedAt, Description: d.Description, Amount: c.dec(d.Amount),
		Category: entity.ExpenseCategory(d.Category),
		Payment:  entity.NewPayment(entity.PaymentMethod(d.PaymentMethod), d.MpesaCode, ""),
	}
	return e, c.err
}

func toMenuItemDoc(m entity.MenuItem) menuItemDoc {
	ings := make([]ingredientDoc, 0, len(m.Ingredients))
	for _, i := range m.Ingredients {
		ings = append(ings, ingredientDoc{Name: i.Name, Quantity: toD128(i.Quantity), Unit: i.Unit})
	}
	return menuItemDoc{
		ID: m.ID, Name: m.Name, Price: toD128(m.Price), Category: m.Category, Cost: toD128(m.Cost),
		Ingredients: ings, CreatedAt: m.CreatedAt.UTC(), UpdatedAt: m.UpdatedAt.UTC(),
	}
}

func (d menuItemDoc) entity() (entity.MenuItem, error) {
	var c decoder
	ings := make([]entity.Ingredient, 0, len(d.Ingredients))
	for _, i := range d.Ingredients {
		ings = append(ings, entity.Ingredient{Name: i.Name, Quantity: c.dec(i.Quantity), Unit: i.Unit})
	}
	m := entity.MenuItem{
		ID: d.ID, Name: d.Name, Price: c.dec(d.Price), Category: d.Category, Cost: c.dec(d.Cost),
		Ingredients: ings, CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt,
	}
	return m, c.err
}

func toInventoryDoc(it entity.InventoryItem) inventoryItemDoc {
	return inventoryItemDoc{
		ID: it.ID, Name: it.Name, CurrentStock: toD128(it.CurrentStock), Unit: it.Unit,
		LowStockThreshold: toD128(it.LowStockThreshold), CostPerUnit: toD128(it.CostPerUnit),
		Supplier: it.Supplier, LastRestocked: it.LastRestocked.UTC(), ExpiryDate: it.ExpiryDate,
		UpdatedAt: it.UpdatedAt.UTC(),
	}
}

func (d inventoryItemDoc) entity() (entity.InventoryItem, error) {
	var c decoder
	it := entity.InventoryItem{
		ID: d.ID, Name: d.Name, CurrentStock: c.dec(d.CurrentStock), Unit: d.Unit,
		LowStockThreshold: c.dec(d.LowStockThreshold), CostPerUnit: c.dec(d.CostPerUnit),
		Supplier: d.Supplier, LastRestocked: d.LastRestocked, ExpiryDate: d.ExpiryDate, UpdatedAt: d.UpdatedAt,
	}
	return it, c.err
}

func toAlertDoc(a entity.Alert) alertDoc {
	return alertDoc{
		ID: a.ID, Type: string(a.Type), Title: a.Title, Message: a.Message,
		InventoryItemID: a.InventoryItemID, CreatedAt: a.CreatedAt.UTC(), Acknowledged: a.Acknowledged,
	}
}

func (d alertDoc) entity() entity.Alert {
	return entity.Alert{
		ID: d.ID, Type: entity.AlertType(d.Type), Title: d.Title, Message: d.Message,
		InventoryItemID: d.InventoryItemID, CreatedAt: d.CreatedAt, Acknowledged: d.Acknowledged,
	}
}
