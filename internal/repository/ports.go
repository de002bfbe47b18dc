package repository

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Database . Database
type Database interface {
	MigrateTable(models ...any) error
	Save(record any) error
	GetBy(column string, value any, entity any) error
	ListOrdered(order string, limit int, entities any) error
}
