package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/tobi-salau/resumescan/constants"
	"github.com/tobi-salau/resumescan/internal/enrich/tavily"
	"github.com/tobi-salau/resumescan/internal/extract"
	"github.com/tobi-salau/resumescan/internal/pipeline"
	repo "github.com/tobi-salau/resumescan/internal/repository"
	"github.com/tobi-salau/resumescan/internal/storage"
)

// scanfile runs the full scan pipeline over one local document against a
// throwaway SQLite database. Useful for trying the extraction heuristics and
// the Tavily integration without a Postgres instance or a gRPC client.
func main() {
	var (
		dbPath  = flag.String("db", "scanfile.db", "SQLite database file")
		dataDir = flag.String("data", "scanfile-data", "local object store directory")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <document.pdf|document.txt>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}
	docPath := flag.Arg(0)

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	content, err := os.ReadFile(docPath)
	if err != nil {
		log.Fatalf("reading %s: %v", docPath, err)
	}

	contentType, err := contentTypeForExt(filepath.Ext(docPath))
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	entc, err := repo.OpenSQLite(*dbPath, logger)
	if err != nil {
		log.Fatalf("opening SQLite: %v", err)
	}
	defer func() {
		if err := entc.Close(); err != nil {
			logger.Error("failed to close ent client", "error", err)
		}
	}()
	if err := entc.Schema.Create(ctx); err != nil {
		log.Fatalf("creating schema: %v", err)
	}

	store, err := storage.NewFSStore(*dataDir, logger)
	if err != nil {
		log.Fatalf("opening object store: %v", err)
	}

	proc := pipeline.NewProcessor(
		logger,
		pipeline.Config{},
		store,
		repo.NewScanRepository(entc, logger),
		repo.NewScanResultRepository(entc, logger),
		extract.NewDocumentExtractor(logger),
		tavily.NewClient(tavily.Config{}, logger),
	)

	out, err := proc.ScanDocument(ctx, pipeline.UploadedFile{
		Name:        filepath.Base(docPath),
		Size:        int64(len(content)),
		ContentType: contentType,
		Content:     content,
	})
	if err != nil {
		log.Fatalf("scan failed: %v", err)
	}

	fmt.Printf("scan %s: %s\n", out.Scan.ID, out.Scan.Status)
	if out.Scan.ExtractedName != nil {
		fmt.Printf("subject: %s\n", *out.Scan.ExtractedName)
	}
	if out.Scan.SearchQuery != nil {
		fmt.Printf("query: %s\n", *out.Scan.SearchQuery)
	}
	if out.Scan.Summary != nil {
		fmt.Printf("summary: %s\n", *out.Scan.Summary)
	}
	fmt.Printf("results: %d\n", len(out.Results))
	for _, r := range out.Results {
		fmt.Printf("  %2d. %s\n      %s\n", r.Position+1, r.Title, r.URL)
	}
}

func contentTypeForExt(ext string) (string, error) {
	switch constants.NormalizeExt(ext) {
	case "pdf":
		return "application/pdf", nil
	case "txt":
		return "text/plain", nil
	default:
		return "", fmt.Errorf("unsupported file extension %q (want .pdf or .txt)", ext)
	}
}
