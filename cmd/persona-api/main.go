package main

import (
	"context"
	"log"
	"net/http"

	"github.com/joho/godotenv"

	httpadapter "github.com/lucasferrer/persona-agent/internal/adapters/http"
	"github.com/lucasferrer/persona-agent/internal/adapters/llm"
	firestorestore "github.com/lucasferrer/persona-agent/internal/adapters/storage/firestore"
	memstore "github.com/lucasferrer/persona-agent/internal/adapters/storage/memory"
	sqlitestore "github.com/lucasferrer/persona-agent/internal/adapters/storage/sqlite"
	"github.com/lucasferrer/persona-agent/internal/app/interview"
	"github.com/lucasferrer/persona-agent/internal/config"
	"github.com/lucasferrer/persona-agent/internal/domain"
)

func main() {
	ctx := context.Background()

	// Local .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	// Choose between mock and Vertex by ENV (useful for dev)
	var (
		responder domain.Responder
		err       error
	)

	if cfg.UseMockLLM {
		log.Println("[LLM] Using MOCK responder")
		responder = llm.NewMockResponder()
	} else {
		log.Println("[LLM] Using Gemini responder")
		responder, err = llm.NewGeminiClient(ctx, cfg.GCPProjectID, cfg.GCPLocation, cfg.ModelName)
		if err != nil {
			log.Fatalf("error initializing Gemini client: %v", err)
		}
	}

	// Archive: memory, SQLite or Firestore. Session state is always
	// in-memory; only the Q&A/profile log is durable.
	var archive domain.ArchiveStore

	switch cfg.StorageBackend {
	case "firestore":
		if cfg.GCPProjectID == "" {
			log.Fatal("PERSONA_GCP_PROJECT is required for the Firestore archive")
		}

		log.Printf("[STORE] Using Firestore archive (project=%s)", cfg.GCPProjectID)
		fsStore, err := firestorestore.NewStore(ctx, cfg.GCPProjectID)
		if err != nil {
			log.Fatalf("error initializing Firestore store: %v", err)
		}
		defer fsStore.Close()
		archive = fsStore

	case "sqlite":
		log.Printf("[STORE] Using SQLite archive (path=%s)", cfg.SQLitePath)
		dbStore, err := sqlitestore.NewStore(cfg.SQLitePath)
		if err != nil {
			log.Fatalf("error initializing SQLite store: %v", err)
		}
		defer dbStore.Close()
		archive = dbStore

	default:
		log.Println("[STORE] Using in-memory archive")
		archive = memstore.NewArchiveStore()
	}

	sessions := memstore.NewSessionStore()

	svc := interview.NewService(responder, sessions, archive, cfg.MaxTurns)

	handler := httpadapter.NewServer(svc, httpadapter.AuthConfig{
		User: cfg.AuthUser,
		Pass: cfg.AuthPass,
	})

	port := ":" + cfg.Port
	log.Println("Persona API listening on port:", port)
	if err := http.ListenAndServe(port, handler); err != nil {
		log.Fatal(err)
	}
}
