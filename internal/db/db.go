package db

import (
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ErrNotFound is returned when a lookup matches no rows.
var ErrNotFound error = errors.New("record not found")

// PostgresDB wraps a gorm connection behind the small surface the
// repository layer needs.
type PostgresDB struct {
	DB *gorm.DB
}

// NewPostgresDB opens a connection using the given DSN.
func NewPostgresDB(dsn string) (*PostgresDB, error) {
	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open postgres connection: %w", err)
	}

	return &PostgresDB{
		DB: conn,
	}, nil
}

// MigrateTable creates or updates the schema for the given models.
func (p *PostgresDB) MigrateTable(models ...any) error {
	err := p.DB.AutoMigrate(models...)
	if err != nil {
		return fmt.Errorf("migrate tables: %w", err)
	}

	return nil
}

// Save inserts the record or updates it when its primary key already exists.
func (p *PostgresDB) Save(record any) error {
	tx := p.DB.Save(record)
	if tx.Error != nil {
		return fmt.Errorf("save record: %w", tx.Error)
	}

	return nil
}

// GetBy loads into entity the first row where column equals value.
func (p *PostgresDB) GetBy(column string, value any, entity any) error {
	tx := p.DB.Where(fmt.Sprintf("%s = ?", column), value).First(entity)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("get record: %w", tx.Error)
	}

	return nil
}

// ListOrdered loads into entities up to limit rows sorted by the given
// order clause.
func (p *PostgresDB) ListOrdered(order string, limit int, entities any) error {
	tx := p.DB.Order(order).Limit(limit).Find(entities)
	if tx.Error != nil {
		return fmt.Errorf("list records: %w", tx.Error)
	}

	return nil
}
