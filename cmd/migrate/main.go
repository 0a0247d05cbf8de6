package main

import (
	"medconsult/internal/app/ds"
	"medconsult/internal/app/dsn"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	_ = godotenv.Load()
	db, err := gorm.Open(postgres.Open(dsn.FromEnv()), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}

	// Migrate the schema
	err = db.AutoMigrate(
		&ds.User{},
		&ds.Doctor{},
		&ds.Patient{},
		&ds.Specialty{},
		&ds.LanguageModel{},
		&ds.DoctorRequest{},
		&ds.PatientRequest{},
		&ds.DoctorPatient{},
		&ds.Question{},
		&ds.Answer{},
		&ds.Comment{},
	)
	if err != nil {
		panic("cant migrate db")
	}
}
