package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/ryuzenazari/hmptiunesa/internal/config"
	"github.com/ryuzenazari/hmptiunesa/internal/db"
	"github.com/ryuzenazari/hmptiunesa/internal/events"
	"github.com/ryuzenazari/hmptiunesa/internal/functionaries"
	"github.com/ryuzenazari/hmptiunesa/internal/gallery"
	"github.com/ryuzenazari/hmptiunesa/internal/lecturers"
	"github.com/ryuzenazari/hmptiunesa/internal/members"
	"github.com/ryuzenazari/hmptiunesa/internal/middleware"
	"github.com/ryuzenazari/hmptiunesa/internal/news"
	"github.com/ryuzenazari/hmptiunesa/internal/org"
	"github.com/ryuzenazari/hmptiunesa/internal/projects"
	"github.com/ryuzenazari/hmptiunesa/internal/token"
	"github.com/ryuzenazari/hmptiunesa/internal/users"
)

func RootHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintln(w, "HMP TI API server is up!")
}

func main() {
	_ = godotenv.Load(".env.local")

	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	db.Connect(cfg.DatabaseURL)

	tokens, err := token.New(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		log.Fatal("Failed to create token issuer: ", err)
	}

	users.Init()
	events.Init()
	news.Init()
	gallery.Init()
	projects.Init()
	org.Init()
	lecturers.Init()
	functionaries.Init()
	members.Init()

	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Get("/", RootHandler)

	r.Mount("/api/users", users.SetupRoutes(tokens))
	r.Mount("/api/events", events.SetupRoutes(tokens))
	r.Mount("/api/news", news.SetupRoutes(tokens))
	r.Mount("/api/gallery", gallery.SetupRoutes(tokens))
	r.Mount("/api/projects", projects.SetupRoutes(tokens))
	r.Mount("/api/organization", org.SetupRoutes(tokens))
	r.Mount("/api/lecturers", lecturers.SetupRoutes(tokens))
	r.Mount("/api/functionaries", functionaries.SetupRoutes(tokens))
	r.Mount("/api/members", members.SetupRoutes(tokens))

	log.Printf("Server listening on port :%s...", cfg.Port)

	if err := http.ListenAndServe("0.0.0.0:"+cfg.Port, r); err != nil {
		log.Fatal("Server stopped: ", err)
	}
}
