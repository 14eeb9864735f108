package main

import (
	"log"

	"coldmail-backend/internal/credentials"
	"coldmail-backend/internal/emails"
	"coldmail-backend/internal/shared/config"
	"coldmail-backend/internal/shared/server"
)

func main() {
	cfg := config.Load()

	// No interactive prompt on the HTTP surface; the form's manual key field
	// arrives as the explicit value instead.
	resolver := credentials.NewResolver(cfg.SecretsFile, nil)
	svc := emails.NewService(resolver, cfg.LLMModel)
	r := server.NewRouter(cfg, emails.NewHandler(svc))

	addr := server.Addr(cfg.Port)
	log.Printf("Starting API server on %s", addr)

	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
