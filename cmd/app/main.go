package main

import (
	"fmt"
	nethttp "net/http"
	"os"

	"pharmacy/cmd"
	httpadapter "pharmacy/internal/adapters/in/http"
	"pharmacy/internal/adapters/out/postgres/deliveryrepo"
	"pharmacy/internal/adapters/out/postgres/inventoryrepo"
	"pharmacy/internal/adapters/out/postgres/notificationrepo"
	"pharmacy/internal/adapters/out/postgres/orderrepo"
	"pharmacy/internal/adapters/out/postgres/paymentrepo"
	"pharmacy/internal/adapters/out/postgres/prescriptionrepo"
	"pharmacy/internal/adapters/out/postgres/productcatalog"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	db := mustOpenDatabase(configs)
	mustMigrate(db)

	app := cmd.NewCompositionRoot(configs, db)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return db
}

func mustMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&inventoryrepo.RecordDTO{},
		&prescriptionrepo.PrescriptionDTO{},
		&paymentrepo.PaymentDTO{},
		&paymentrepo.ReceiptDTO{},
		&deliveryrepo.DeliveryDTO{},
		&notificationrepo.NotificationDTO{},
		&productcatalog.ProductDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(nethttp.StatusOK, "Healthy")
	})

	server := httpadapter.NewServer(
		app.CreateAccessPolicy(),
		app.CreatePlaceOrderCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateSubmitPrescriptionCommandHandler(),
		app.CreateDecidePrescriptionCommandHandler(),
		app.CreateInitiatePaymentCommandHandler(),
		app.CreateConfirmPaymentCommandHandler(),
		app.CreateUpdateDeliveryStatusCommandHandler(),
		app.CreateReceiveShipmentCommandHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateGetValidationQueueQueryHandler(),
		app.CreateGetPaymentQueueQueryHandler(),
		app.CreateGetFulfillmentQueueQueryHandler(),
		app.CreateGetBranchInventoryQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
