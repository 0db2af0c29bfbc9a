package main

import (
	"flag"

	"undangan.link/configs/configsapp"
	"undangan.link/configs/configsdatabase"
	"undangan.link/configs/configslog"
	"undangan.link/database"
)

func main() {
	configslog.InitLogger()
	defer configslog.SyncLogger()

	migrateFlag := flag.Bool("migrate", false, "Jalankan migrasi database")
	seedFlag := flag.Bool("seed", false, "Jalankan seeder database")
	flag.Parse()

	configsapp.LoadConfig()
	configsdatabase.InitDB()
	defer configsdatabase.CloseDB()

	database.Initialize(configsdatabase.GetDB(), *migrateFlag, *seedFlag)
}
