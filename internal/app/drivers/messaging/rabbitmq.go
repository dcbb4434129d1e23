package messaging

import (
	"fmt"
	"log"

	"medscreen-service/internal/app/config"

	"github.com/rabbitmq/amqp091-go"
)

func NewRabbitMQ(driverConfig *config.DriverConfig) *amqp091.Connection {
	connectionString := fmt.Sprintf(
		"amqp://%s:%s@%s:%s/",
		driverConfig.RabbitMQ.Username,
		driverConfig.RabbitMQ.Password,
		driverConfig.RabbitMQ.Host,
		driverConfig.RabbitMQ.Port,
	)

	// Name the connection so it is identifiable in the management UI.
	cfg := amqp091.Config{Properties: amqp091.NewConnectionProperties()}
	cfg.Properties.SetClientConnectionName("medscreen-service")

	conn, err := amqp091.DialConfig(connectionString, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to rabbitMQ: %s", err.Error())
	}
	log.Println("Successfully connected to rabbitMQ")
	return conn
}
