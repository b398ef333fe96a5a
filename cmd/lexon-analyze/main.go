package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/cognilaw/lexon/pkg/lexon"
	"github.com/cognilaw/lexon/pkg/lexon/extract"
	"github.com/cognilaw/lexon/pkg/lexon/store/sqlite"
)

func main() {
	var (
		inPath  = flag.String("in", "", "Document to analyze, pdf/html/txt (required)")
		types   = flag.String("types", "", "Comma-separated clause types to extract (default: all)")
		asJSON  = flag.Bool("json", false, "Emit the full analysis as JSON")
		dbPath  = flag.String("db", "", "Persist the analysis to this SQLite database (optional)")
		maxSize = flag.Int("max-mb", 50, "Maximum document size in MB")
	)
	flag.Parse()

	if *inPath == "" {
		log.Fatal("--in required")
	}

	data, err := os.ReadFile(*inPath)
	if err != nil {
		log.Fatal("Failed to read document:", err)
	}

	ctx := context.Background()

	opts := lexon.Options{Text: extract.New(*maxSize)}
	if *dbPath != "" {
		st, err := sqlite.OpenSQLite(ctx, *dbPath)
		if err != nil {
			log.Fatal("Failed to open database:", err)
		}
		opts.Store = st
	}

	engine, err := lexon.New(opts)
	if err != nil {
		log.Fatal("Failed to build analyzer:", err)
	}
	defer engine.Close()

	req := lexon.AnalyzeRequest{
		Filename: filepath.Base(*inPath),
		Data:     data,
	}
	if *types != "" {
		for _, name := range strings.Split(*types, ",") {
			req.Types = append(req.Types, strings.TrimSpace(name))
		}
	}

	result, err := engine.Analyze(ctx, req)
	if err != nil {
		log.Fatal("Analysis failed:", err)
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			log.Fatal("Failed to encode result:", err)
		}
		return
	}

	fmt.Printf("%s: %d clauses from %d characters\n\n", result.Filename, len(result.Clauses), result.TextLen)
	for _, c := range result.Clauses {
		typ := c.Type
		if typ == "" {
			typ = "Unclassified"
		}
		line := typ
		if c.SectionNumber != "" {
			line += "  §" + c.SectionNumber
		}
		if c.PageReference != "" {
			line += "  p." + c.PageReference
		}
		fmt.Printf("%-40s %s\n", line, c.Name)
	}

	if *dbPath != "" {
		fmt.Printf("\nSaved as %s\n", result.ID)
	}
}
