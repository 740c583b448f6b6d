package main

import (
	"flag"
	"log"

	"equipment-registry/pkg/config"
	"equipment-registry/pkg/database/postgresql"
	"equipment-registry/seeders"
)

func main() {
	log.Println("======================================================")
	log.Println("       🌱 СИСТЕМА СИДЕРОВ (Наполнение БД)           ")
	log.Println("======================================================")

	runAccess := flag.Bool("access", false, "Запустить настройку прав доступа (привилегии, роли, связи)")
	runDictionaries := flag.Bool("dictionaries", false, "Запустить наполнение справочников (типы техники, бренды)")
	runAll := flag.Bool("all", false, "Запустить все сидеры (эквивалентно -access -dictionaries)")

	flag.Parse()

	if !*runAccess && !*runDictionaries && !*runAll {
		log.Println("Не указан ни один сидер. Доступные флаги:")
		flag.PrintDefaults()
		return
	}

	cfg := config.New()
	db := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer db.Close()

	if *runAll || *runAccess {
		seeders.SeedAccessControl(db)
	}
	if *runAll || *runDictionaries {
		seeders.SeedDictionaries(db)
	}

	log.Println("======================================================")
	log.Println("       🏁 Работа сидеров завершена.                  ")
	log.Println("======================================================")
}
