package db

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	config "github.com/EniJunioor/teste-oticket/configs"
	"github.com/EniJunioor/teste-oticket/internal/models"
)

var DB *gorm.DB

func Init() {

	cfg := config.LoadDatabaseConfig()

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.Host,
		cfg.User,
		cfg.Password,
		cfg.Name,
		cfg.Port,
	)

	var err error

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})

	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to DB")
	}

	err = DB.AutoMigrate(
		&models.Cliente{},
		&models.Produto{},
		&models.Pedido{},
		&models.PedidoProduto{},
	)

	if err != nil {
		logrus.WithError(err).Fatal("failed to migrate DB")
	}

	logrus.Info("database connected and migrated successfully")
}

func SetTestDB(testDB *gorm.DB) {
	DB = testDB
}
