// Package migrations содержит goose-миграции схемы БД, встраиваемые в бинарь
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
