package main

import (
	"context"
	"log"
	"medifind-service/internal/app/config"
	"medifind-service/internal/app/drivers/database"
	"medifind-service/internal/app/services/core/doctors"
	"time"
)

// Seeds the Mongo directory with the embedded doctor dataset so the fallback
// chain has a database tier to land on before the hardcoded one.
func main() {
	driverConfig := config.NewDriverConfig()

	mongoDB := database.NewMongoDB(driverConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	repository := doctors.NewDoctorMongoRepository(mongoDB, driverConfig.MongoDB.DbName)
	if err := repository.UpsertMany(ctx, doctors.EmbeddedDoctors); err != nil {
		log.Fatalf("Failed to seed doctors: %v", err)
	}

	log.Printf("Seeded %d doctors into %s", len(doctors.EmbeddedDoctors), driverConfig.MongoDB.DbName)

	if err := mongoDB.Disconnect(ctx); err != nil {
		log.Fatalf("Failed to close MongoDB: %v", err)
	}
}
