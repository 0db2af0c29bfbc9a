package database

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"undangan.link/configs/configslog"
	"undangan.link/database/migrations"
	"undangan.link/database/seeders"
)

// Initialize menjalankan migrasi dan seeder sesuai flag, dalam satu
// transaction.
func Initialize(db *gorm.DB, migrate bool, seed bool) {
	if !migrate && !seed {
		configslog.SLog.Info("Flag migrate/seed tidak diberikan, tidak ada yang dijalankan.")
		return
	}

	tx := db.Begin()
	if tx.Error != nil {
		configslog.Log.Fatal("Transaction database gagal dimulai", zap.Error(tx.Error))
		return
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			configslog.Log.Fatal("Inisialisasi database gagal (panic)", zap.Any("panic_info", r))
		} else if err := tx.Error; err != nil && err != gorm.ErrInvalidTransaction {
			configslog.SLog.Warn("Terjadi kesalahan saat inisialisasi, transaction di-rollback.", zap.Error(err))
			if rbErr := tx.Rollback().Error; rbErr != nil && rbErr != gorm.ErrInvalidTransaction {
				configslog.Log.Error("Rollback ikut gagal", zap.Error(rbErr))
			}
		}
	}()

	configslog.SLog.Info("Inisialisasi database dimulai...")

	if migrate {
		if err := RunMigrationsInOrder(tx); err != nil {
			configslog.Log.Error("Migrasi gagal", zap.Error(err))
			return
		}
		configslog.SLog.Info("Seluruh migrasi selesai.")
	}

	if seed {
		if err := RunSeeders(tx); err != nil {
			configslog.Log.Error("Seeding gagal", zap.Error(err))
			return
		}
		configslog.SLog.Info("Seluruh seeder selesai.")
	}

	if err := tx.Commit().Error; err != nil {
		tx.Error = err
		configslog.Log.Error("Commit gagal", zap.Error(err))
		return
	}

	configslog.SLog.Info("Inisialisasi database selesai.")
}

// RunMigrationsInOrder menjalankan migrasi dengan urutan yang menghormati
// foreign key: users dan templates dulu, baru orders.
func RunMigrationsInOrder(db *gorm.DB) error {
	steps := []func(*gorm.DB) error{
		migrations.MigrateUsersTable,
		migrations.MigrateTemplatesTable,
		migrations.MigrateMusicTable,
		migrations.MigrateOrdersTable,
		migrations.MigrateSettingTables,
	}
	for _, step := range steps {
		if err := step(db); err != nil {
			return err
		}
	}
	return nil
}

// RunSeeders menjalankan seeder idempoten.
func RunSeeders(db *gorm.DB) error {
	if err := seeders.SeedAdminUser(db); err != nil {
		return err
	}
	if err := seeders.SeedSettings(db); err != nil {
		return err
	}
	return nil
}
