package functionaries

import (
	"log"

	"github.com/ryuzenazari/hmptiunesa/internal/db"
)

func Init() {
	if err := db.EnsureSchema(db.DB, "functionaries"); err != nil {
		log.Fatal("Failed to ensure schema functionaries: ", err)
	}

	if err := db.DB.AutoMigrate(&Functionary{}); err != nil {
		log.Fatal("Failed to auto-migrate functionary tables: ", err)
	}
}
