package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// КЛЮЧИК: true - полностью очистить таблицу и записать бренды с нуля.
// false - только добавить новые бренды, не трогая существующие.
const fullSync_Brands = false

func seedBrands(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Наполнение таблицы 'brand'...")

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if fullSync_Brands {
		log.Println("    - Стратегия: Полная перезапись (TRUNCATE)")
		if _, err := tx.Exec(ctx, "TRUNCATE TABLE brand RESTART IDENTITY CASCADE"); err != nil {
			return err
		}
	} else {
		log.Println("    - Стратегия: Только добавление новых брендов (ADDITIVE)")
	}

	query := `INSERT INTO brand (name)
			  SELECT $1 WHERE NOT EXISTS (SELECT 1 FROM brand WHERE name = $1)`

	for _, name := range brandsData {
		if _, err := tx.Exec(ctx, query, name); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}
