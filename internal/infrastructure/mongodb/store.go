// Package mongodb implementa los puertos de persistencia sobre MongoDB (colecciones sales,
// expenses, menu_items, inventory_items y alerts).
package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/jhoicas/tacohut-api/internal/application/sales"
	"github.com/jhoicas/tacohut-api/internal/domain"
	"github.com/jhoicas/tacohut-api/internal/domain/entity"
	"github.com/jhoicas/tacohut-api/internal/domain/repository"
	"github.com/jhoicas/tacohut-api/internal/infrastructure/seed"
	"github.com/jhoicas/tacohut-api/pkg/config"
)

// Nombres de colección.
const (
	CollSales     = "sales"
	CollExpenses  = "expenses"
	CollMenu      = "menu_items"
	CollInventory = "inventory_items"
	CollAlerts    = "alerts"
)

var (
	_ sales.TxRunner               = (*Store)(nil)
	_ repository.TransactionSource = (*Store)(nil)
)

// Store agrupa el cliente y la base de datos.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect abre el cliente, verifica la conexión y crea los índices.
func Connect(ctx context.Context, cfg config.MongoConfig) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI).SetConnectTimeout(10*time.Second))
	if err != nil {
		return nil, fmt.Errorf("mongo: connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongo: ping: %w", err)
	}
	s := &Store{client: client, db: client.Database(cfg.Database)}
	if err := s.ensureIndexes(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	return s, nil
}

// Close cierra el cliente.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Database base de datos subyacente (tests).
func (s *Store) Database() *mongo.Database { return s.db }

func (s *Store) ensureIndexes(ctx context.Context) error {
	byTime := mongo.IndexModel{Keys: bson.D{{Key: "timestamp", Value: -1}}}
	for _, coll := range []string{CollSales, CollExpenses, CollAlerts} {
		if _, err := s.db.Collection(coll).Indexes().CreateOne(ctx, byTime); err != nil {
			return fmt.Errorf("mongo: índice %s: %w", coll, err)
		}
	}
	return nil
}

func (s *Store) Sales() *SaleRepo          { return &SaleRepo{c: s.db.Collection(CollSales)} }
func (s *Store) Expenses() *ExpenseRepo    { return &ExpenseRepo{c: s.db.Collection(CollExpenses)} }
func (s *Store) Menu() *MenuRepo           { return &MenuRepo{c: s.db.Collection(CollMenu)} }
func (s *Store) Inventory() *InventoryRepo { return &InventoryRepo{c: s.db.Collection(CollInventory)} }
func (s *Store) Alerts() *AlertRepo        { return &AlertRepo{c: s.db.Collection(CollAlerts)} }

// RunSale ejecuta fn con los repositorios normales. No usa transacción multi-documento
// (requiere replica set): las escrituras son secuenciales y la última gana.
func (s *Store) RunSale(ctx context.Context, fn func(
	sales repository.SaleRepository,
	menu repository.MenuRepository,
	inventory repository.InventoryRepository,
	alerts repository.AlertRepository,
) error) error {
	return fn(s.Sales(), s.Menu(), s.Inventory(), s.Alerts())
}

// ListSales implementa repository.TransactionSource.
func (s *Store) ListSales(ctx context.Context) ([]entity.Sale, error) { return s.Sales().List(ctx) }

// ListExpenses implementa repository.TransactionSource.
func (s *Store) ListExpenses(ctx context.Context) ([]entity.Expense, error) {
	return s.Expenses().List(ctx)
}

// Load inserta el dataset; los IDs existentes se omiten.
func (s *Store) Load(ctx context.Context, ds seed.Dataset) error {
	skipDup := func(err error) error {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil
		}
		return err
	}
	for i := range ds.Menu {
		if err := skipDup(s.Menu().Create(ctx, &ds.Menu[i])); err != nil {
			return err
		}
	}
	for i := range ds.Inventory {
		if err := skipDup(s.Inventory().Create(ctx, &ds.Inventory[i])); err != nil {
			return err
		}
	}
	for i := range ds.Sales {
		if err := skipDup(s.Sales().Create(ctx, &ds.Sales[i])); err != nil {
			return err
		}
	}
	for i := range ds.Expenses {
		if err := skipDup(s.Expenses().Create(ctx, &ds.Expenses[i])); err != nil {
			return err
		}
	}
	for i := range ds.Alerts {
		if err := skipDup(s.Alerts().Create(ctx, &ds.Alerts[i])); err != nil {
			return err
		}
	}
	return nil
}

// insert traduce la clave duplicada a domain.ErrDuplicate.
func insert(ctx context.Context, c *mongo.Collection, doc any, what string) error {
	if _, err := c.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("mongo: insert %s: %w", what, err)
	}
	return nil
}

// findOne decodifica un documento por _id; domain.ErrNotFound si no existe.
func findOne(ctx context.Context, c *mongo.Collection, id string, out any, what string) error {
	err := c.FindOne(ctx, bson.M{"_id": id}).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("mongo: get %s: %w", what, err)
	}
	return nil
}

// findAll decodifica todos los documentos que cumplen filter en el orden dado.
func findAll[T any](ctx context.Context, c *mongo.Collection, filter any, sort bson.D, what string) ([]T, error) {
	cur, err := c.Find(ctx, filter, options.Find().SetSort(sort))
	if err != nil {
		return nil, fmt.Errorf("mongo: list %s: %w", what, err)
	}
	var docs []T
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("mongo: decode %s: %w", what, err)
	}
	return docs, nil
}

func deleteOne(ctx context.Context, c *mongo.Collection, id, what string) error {
	res, err := c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("mongo: delete %s: %w", what, err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func replaceOne(ctx context.Context, c *mongo.Collection, id string, doc any, what string) error {
	res, err := c.ReplaceOne(ctx, bson.M{"_id": id}, doc)
	if err != nil {
		return fmt.Errorf("mongo: update %s: %w", what, err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
