package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedAccessControl наполняет привилегии, роли и их связи.
func SeedAccessControl(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("▶️  Запуск настройки прав доступа...")

	if err := seedPermissions(ctx, db); err != nil {
		log.Fatalf("❌ Ошибка наполнения Прав (Permissions): %v", err)
	}
	if err := seedRoles(ctx, db); err != nil {
		log.Fatalf("❌ Ошибка наполнения Ролей (Roles): %v", err)
	}
	if err := seedRolePermissions(ctx, db); err != nil {
		log.Fatalf("❌ Ошибка наполнения Связей Ролей и Прав: %v", err)
	}

	log.Println("✅ Настройка прав доступа завершена!")
}

// SeedDictionaries наполняет справочники типов техники и брендов.
func SeedDictionaries(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("▶️  Запуск наполнения справочников техники...")

	if err := seedEquipmentTypes(ctx, db); err != nil {
		log.Fatalf("❌ Ошибка наполнения Типов Техники (EquipmentTypes): %v", err)
	}
	if err := seedBrands(ctx, db); err != nil {
		log.Fatalf("❌ Ошибка наполнения Брендов (Brands): %v", err)
	}

	log.Println("✅ Наполнение справочников завершено!")
}
