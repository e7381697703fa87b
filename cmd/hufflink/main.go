package main

import (
	"context"
	"log"

	"github.com/nikhil470707/URL-Shortener-with-Huffman-Encoding/internal/app"
	"github.com/nikhil470707/URL-Shortener-with-Huffman-Encoding/internal/config"
)

func main() {
	cfg := config.FromEnv()

	a, err := app.New(context.Background(), cfg)
	if err != nil {
		log.Fatalf("boot: %v", err)
	}
	defer a.Close()

	log.Printf("hufflink listening on %s (BASE_URL=%s, STORE=%s)", a.Addr(), cfg.BaseURL, cfg.Store)

	if err := a.Start(); err != nil {
		log.Fatalf("server: %v", err)
	}
}
