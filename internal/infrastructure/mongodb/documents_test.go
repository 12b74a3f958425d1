package mongodb

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tacohut-api/internal/domain/entity"
	"github.com/jhoicas/tacohut-api/internal/infrastructure/seed"
)

func TestSaleDoc_ConservaDecimalesYPago(t *testing.T) {
	ds := seed.Demo()
	s := ds.Sales[0]
	s.Items[0].UnitCost = decimal.RequireFromString("119.995")

	doc := toSaleDoc(s)
	assert.Equal(t, "mpesa", doc.PaymentMethod)
	assert.Equal(t, "QA12B3C4D5", doc.MpesaCode)

	back, err := doc.entity()
	require.NoError(t, err)
	assert.True(t, s.Total.Equal(back.Total))
	assert.Equal(t, "119.995", back.Items[0].UnitCost.String())
	assert.Equal(t, entity.MobileMoneyPayment{Code: "QA12B3C4D5", Phone: "+254700123456"}, back.Payment)
}

func TestInventoryDoc_VencimientoOpcional(t *testing.T) {
	item := seed.Demo().Inventory[2] // Tortilla: sin vencimiento
	back, err := toInventoryDoc(item).entity()
	require.NoError(t, err)
	assert.Nil(t, back.ExpiryDate)
	assert.True(t, item.LowStockThreshold.Equal(back.LowStockThreshold))
}
