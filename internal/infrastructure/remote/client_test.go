package remote_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tacohut-api/internal/domain"
	"github.com/jhoicas/tacohut-api/internal/domain/entity"
	"github.com/jhoicas/tacohut-api/internal/infrastructure/remote"
	"github.com/jhoicas/tacohut-api/pkg/config"
	"github.com/jhoicas/tacohut-api/pkg/logger"
)

func newServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newClient(url string) *remote.Client {
	return remote.NewClient(config.SourceConfig{URL: url, Timeout: 2 * time.Second}, logger.Nop())
}

// ──────────────────────────────────────────────────────────────────────────
// Ventas
// ──────────────────────────────────────────────────────────────────────────

func TestListSales_DecodificaSobre(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"status":"success","data":[
			{"id":"s1","timestamp":"2024-01-15T10:30:00Z","items":[{"menu_item_id":"m1","name":"Carne Asada Taco","quantity":2,"price":"250","cost":"120"}],
			 "total":"500","payment_method":"mpesa","mpesa_code":"QA12B3C4D5","customer_phone":"+254700123456"},
			{"id":"s2","timestamp":"2024-01-15T11:15:00Z","items":[],"total":660,"payment_method":"cash"}]}`))
	}))
	defer srv.Close()

	sales, err := newClient(srv.URL).ListSales(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/api/sales", gotPath)
	require.Len(t, sales, 2)
	assert.True(t, sales[0].Total.Equal(decimal.NewFromInt(500)))
	assert.Equal(t, entity.MobileMoneyPayment{Code: "QA12B3C4D5", Phone: "+254700123456"}, sales[0].Payment)
	require.Len(t, sales[0].Items, 1)
	assert.Equal(t, 2, sales[0].Items[0].Quantity)
	assert.Equal(t, entity.CashPayment{}, sales[1].Payment)
}

func TestListSales_Non2xxEsFuenteNoDisponible(t *testing.T) {
	srv := newServer(t, http.StatusInternalServerError, `{"status":"error","message":"boom"}`)

	_, err := newClient(srv.URL).ListSales(context.Background())
	assert.ErrorIs(t, err, domain.ErrSourceUnavailable)
}

func TestListSales_EstadoErrorIncluyeMensaje(t *testing.T) {
	srv := newServer(t, http.StatusOK, `{"status":"error","code":"X","message":"base de datos caída"}`)

	_, err := newClient(srv.URL).ListSales(context.Background())
	require.ErrorIs(t, err, domain.ErrSourceUnavailable)
	assert.Contains(t, err.Error(), "base de datos caída")
}

func TestListSales_CuerpoIlegibleDevuelveVacio(t *testing.T) {
	srv := newServer(t, http.StatusOK, `<html>no es json</html>`)

	sales, err := newClient(srv.URL).ListSales(context.Background())
	require.NoError(t, err)
	assert.Empty(t, sales)
}

func TestListSales_SinDataDevuelveVacio(t *testing.T) {
	srv := newServer(t, http.StatusOK, `{"status":"success"}`)

	sales, err := newClient(srv.URL).ListSales(context.Background())
	require.NoError(t, err)
	assert.Empty(t, sales)
}

func TestListSales_ServidorInaccesible(t *testing.T) {
	srv := newServer(t, http.StatusOK, `{}`)
	url := srv.URL
	srv.Close()

	_, err := newClient(url).ListSales(context.Background())
	assert.ErrorIs(t, err, domain.ErrSourceUnavailable)
}

func TestListSales_ContextoCancelado(t *testing.T) {
	srv := newServer(t, http.StatusOK, `{"status":"success","data":[]}`)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newClient(srv.URL).ListSales(ctx)
	assert.ErrorIs(t, err, domain.ErrSourceUnavailable)
}

// ──────────────────────────────────────────────────────────────────────────
// Gastos
// ──────────────────────────────────────────────────────────────────────────

func TestListExpenses_DecodificaSobre(t *testing.T) {
	srv := newServer(t, http.StatusOK, `{"status":"success","data":[
		{"id":"e1","timestamp":"2024-01-15T08:00:00Z","description":"Beef","amount":"3500","category":"ingredients","payment_method":"cash"},
		{"id":"e2","timestamp":"2024-01-17T07:45:00Z","description":"Gas","amount":"2200","category":"utilities","payment_method":"mpesa","mpesa_code":"QA11B2C3D4"}]}`)

	expenses, err := newClient(srv.URL).ListExpenses(context.Background())
	require.NoError(t, err)
	require.Len(t, expenses, 2)
	assert.Equal(t, entity.ExpenseIngredients, expenses[0].Category)
	assert.True(t, expenses[1].Amount.Equal(decimal.NewFromInt(2200)))
	assert.Equal(t, entity.MobileMoneyPayment{Code: "QA11B2C3D4"}, expenses[1].Payment)
}

func TestListExpenses_RespuestaSobreElLimiteEsFuenteNoDisponible(t *testing.T) {
	// ~9 MiB de JSON válido: no debe quedar como conjunto vacío sin error.
	entry := `{"id":"e","timestamp":"2024-01-15T08:00:00Z","description":"Beef","amount":"3500","category":"ingredients","payment_method":"cash"}`
	n := (9<<20)/(len(entry)+1) + 1
	body := `{"status":"success","data":[` + strings.TrimSuffix(strings.Repeat(entry+",", n), ",") + `]}`
	srv := newServer(t, http.StatusOK, body)

	expenses, err := newClient(srv.URL).ListExpenses(context.Background())
	require.ErrorIs(t, err, domain.ErrSourceUnavailable)
	assert.Contains(t, err.Error(), "excede el límite")
	assert.Empty(t, expenses)
}
