package main

import (
	"fmt"
	"log"

	"medconsult/internal/app/ds"
	"medconsult/internal/app/dsn"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Seeds the static catalogs: specialties and registered language models.
func main() {
	_ = godotenv.Load()

	db, err := gorm.Open(postgres.Open(dsn.FromEnv()), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect database")
	}

	specialties := []ds.Specialty{
		{Name: "Cardiology"},
		{Name: "Dermatology"},
		{Name: "Endocrinology"},
		{Name: "General Practice"},
		{Name: "Neurology"},
		{Name: "Pediatrics"},
		{Name: "Psychiatry"},
	}
	for _, s := range specialties {
		db.Clauses(clause.OnConflict{DoNothing: true}).Create(&s)
		fmt.Printf("specialty: %s\n", s.Name)
	}

	models := []ds.LanguageModel{
		{Name: "gpt-4"},
		{Name: "med-palm-2"},
	}
	for _, m := range models {
		db.Clauses(clause.OnConflict{DoNothing: true}).Create(&m)
		fmt.Printf("language model: %s\n", m.Name)
	}

	fmt.Println("seeding finished")
}
