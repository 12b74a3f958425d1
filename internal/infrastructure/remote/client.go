// Package remote lee el log de transacciones de otra instancia del servicio vía HTTP.
// Usa net/http de la librería estándar de Go.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jhoicas/tacohut-api/internal/application/dto"
	"github.com/jhoicas/tacohut-api/internal/domain"
	"github.com/jhoicas/tacohut-api/internal/domain/entity"
	"github.com/jhoicas/tacohut-api/internal/domain/repository"
	"github.com/jhoicas/tacohut-api/pkg/config"
	"github.com/jhoicas/tacohut-api/pkg/logger"
)

const (
	salesPath    = "/api/sales"
	expensesPath = "/api/expenses"

	defaultTimeout = 10 * time.Second
	maxBodyBytes   = 8 << 20
)

var _ repository.TransactionSource = (*Client)(nil)

// Client fuente de transacciones remota. Una sola petición por lectura, sin reintentos.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
}

// NewClient crea el cliente. cfg.URL no debe terminar en "/".
func NewClient(cfg config.SourceConfig, log *logger.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Client{
		baseURL:    cfg.URL,
		httpClient: &http.Client{Timeout: timeout},
		log:        log.Component("remote_source"),
	}
}

// envelope sobre {status, data} o {status, code, message} de la instancia remota.
type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// ListSales descarga todas las ventas.
func (c *Client) ListSales(ctx context.Context) ([]entity.Sale, error) {
	var rows []dto.SaleResponse
	if err := c.get(ctx, salesPath, &rows); err != nil {
		return nil, err
	}
	out := make([]entity.Sale, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.ToEntity())
	}
	return out, nil
}

// ListExpenses descarga todos los gastos.
func (c *Client) ListExpenses(ctx context.Context) ([]entity.Expense, error) {
	var rows []dto.ExpenseResponse
	if err := c.get(ctx, expensesPath, &rows); err != nil {
		return nil, err
	}
	out := make([]entity.Expense, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.ToEntity())
	}
	return out, nil
}

// get hace GET sobre path y decodifica data en out. Un cuerpo ilegible o sin data deja out
// vacío y solo registra una advertencia; los fallos de transporte o de estado son errores.
func (c *Client) get(ctx context.Context, path string, out any) error {
	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: crear petición %s: %v", domain.ErrSourceUnavailable, path, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("%w: %s: %v", domain.ErrSourceUnavailable, path, ctx.Err())
		}
		return fmt.Errorf("%w: %s: %v", domain.ErrSourceUnavailable, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes+1))
	if err != nil {
		return fmt.Errorf("%w: leer %s: %v", domain.ErrSourceUnavailable, path, err)
	}
	if len(body) > maxBodyBytes {
		return fmt.Errorf("%w: %s: respuesta excede el límite de %d bytes", domain.ErrSourceUnavailable, path, maxBodyBytes)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: %s respondió HTTP %d", domain.ErrSourceUnavailable, path, resp.StatusCode)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		c.log.Warn().Err(err).Str("path", path).Msg("respuesta remota ilegible, se usa conjunto vacío")
		return nil
	}
	if env.Status != dto.StatusSuccess {
		msg := env.Message
		if msg == "" {
			msg = "estado " + env.Status
		}
		return fmt.Errorf("%w: %s: %s", domain.ErrSourceUnavailable, path, msg)
	}
	if len(env.Data) == 0 || bytes.Equal(bytes.TrimSpace(env.Data), []byte("null")) {
		c.log.Warn().Str("path", path).Msg("respuesta remota sin data, se usa conjunto vacío")
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		c.log.Warn().Err(err).Str("path", path).Msg("data remota con formato inválido, se usa conjunto vacío")
		return nil
	}
	return nil
}
