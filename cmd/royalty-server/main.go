package main

import (
	"flag"
	"log"
	"net/http"
	"os"

	"github.com/theroyaltyguy/royalty-health/internal/chat"
	"github.com/theroyaltyguy/royalty-health/internal/httpapi"
	"github.com/theroyaltyguy/royalty-health/internal/pipeline"
	"github.com/theroyaltyguy/royalty-health/internal/report"
)

func main() {
	dbFlag := flag.String("db", "", "path to chat SQLite database file (overrides DB_PATH env var)")
	flag.Parse()

	addr := ":8080"
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}

	p := pipeline.New(pipeline.DefaultConfig())

	// Chat is optional: without an API key the endpoint reports unavailable
	// and the rest of the server works normally.
	var chatSvc *chat.Service
	if caller, err := chat.NewAnthropicCallerFromEnv(); err != nil {
		log.Printf("chat disabled: %v", err)
	} else {
		dbPath := *dbFlag
		if dbPath == "" {
			dbPath = os.Getenv("DB_PATH")
		}
		if dbPath == "" {
			dbPath = "./data/chat.db"
		}
		store, err := chat.NewTranscriptStore(dbPath)
		if err != nil {
			log.Fatalf("failed to initialize chat store (%s): %v", dbPath, err)
		}
		defer store.Close()
		chatSvc = chat.NewService(caller, store)
		log.Printf("chat transcripts at %s", dbPath)
	}

	h := httpapi.NewServer(p, chatSvc, report.NewChromiumPDFRenderer())
	log.Printf("royalty-health listening on %s", addr)
	if err := http.ListenAndServe(addr, h); err != nil {
		log.Fatal(err)
	}
}
