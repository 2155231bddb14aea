package members

import (
	"log"

	"github.com/ryuzenazari/hmptiunesa/internal/db"
)

func Init() {
	if err := db.EnsureSchema(db.DB, "members"); err != nil {
		log.Fatal("Failed to ensure schema members: ", err)
	}

	if err := db.DB.AutoMigrate(&Member{}); err != nil {
		log.Fatal("Failed to auto-migrate member tables: ", err)
	}
}
