package main

import (
	"context"
	"flag"
	"log"
	"net/http"

	"github.com/cognilaw/lexon/internal/httpapi"
	"github.com/cognilaw/lexon/internal/llm"
	"github.com/cognilaw/lexon/internal/s3up"
	"github.com/cognilaw/lexon/pkg/lexon"
	"github.com/cognilaw/lexon/pkg/lexon/config"
	"github.com/cognilaw/lexon/pkg/lexon/extract"
	"github.com/cognilaw/lexon/pkg/lexon/store"
	"github.com/cognilaw/lexon/pkg/lexon/store/memstore"
	"github.com/cognilaw/lexon/pkg/lexon/store/sqlite"
)

func main() {
	var (
		configPath = flag.String("config", "", "Config file (optional)")
		addr       = flag.String("addr", "", "Listen address (overrides config)")
		dbPath     = flag.String("db", "", "Database path (overrides config)")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}
	if *dbPath != "" {
		cfg.DBPath = *dbPath
	}

	ctx := context.Background()

	var st store.Store
	if cfg.DBPath != "" {
		st, err = sqlite.OpenSQLite(ctx, cfg.DBPath)
		if err != nil {
			log.Fatal("Failed to open database:", err)
		}
		log.Printf("Using SQLite store at %s", cfg.DBPath)
	} else {
		st = memstore.New()
		log.Print("No db_path configured, analyses are kept in memory only")
	}

	opts := lexon.Options{
		Store: st,
		Text:  extract.New(cfg.MaxUploadMB),
	}

	if cfg.LLM.BaseURL != "" {
		opts.LLM = &llm.Client{
			BaseURL: cfg.LLM.BaseURL,
			APIKey:  cfg.LLM.APIKey,
			Model:   cfg.LLM.Model,
		}
		log.Printf("LLM extraction enabled via %s (%s)", cfg.LLM.BaseURL, cfg.LLM.Model)
	}

	if cfg.S3.Bucket != "" {
		uploader, err := s3up.New(ctx, cfg.S3.Bucket, cfg.S3.Region, cfg.S3.Prefix)
		if err != nil {
			log.Fatal("Failed to initialize S3 uploader:", err)
		}
		opts.Uploader = uploader
		log.Printf("S3 uploads enabled to bucket %s", cfg.S3.Bucket)
	}

	engine, err := lexon.New(opts)
	if err != nil {
		log.Fatal("Failed to build analyzer:", err)
	}
	defer engine.Close()

	handler := httpapi.New(engine, cfg.MaxUploadMB)

	log.Printf("Legal document analyzer listening on %s", cfg.Server.Addr)
	if err := http.ListenAndServe(cfg.Server.Addr, handler); err != nil {
		log.Fatal("Server failed:", err)
	}
}
