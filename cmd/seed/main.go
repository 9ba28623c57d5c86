package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"mindpulse/internal/assessment"
	"mindpulse/internal/config"
	"mindpulse/internal/repository"
)

// seed writes a question bank into MongoDB as the served default.
// With -file it validates and stores that YAML; otherwise the bundled bank.
func main() {
	file := flag.String("file", "", "question bank YAML to store (defaults to the bundled bank)")
	id := flag.String("id", repository.DefaultBankID, "question bank document ID")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	bank := assessment.DefaultBank()
	if *file != "" {
		data, err := os.ReadFile(*file)
		if err != nil {
			log.Fatalf("Failed to read %s: %v", *file, err)
		}
		if bank, err = assessment.ParseBank(data); err != nil {
			log.Fatalf("Invalid question bank %s: %v", *file, err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(cfg.MongoDB)
	repo := repository.NewQuestionBankRepo(db)

	doc := bank.Document()
	doc.ID = *id
	if err := repo.Save(ctx, &doc); err != nil {
		log.Fatalf("Failed to save question bank: %v", err)
	}
	if err := repository.EnsureCheckInIndexes(ctx, db); err != nil {
		log.Fatalf("Failed to create check-in indexes: %v", err)
	}

	log.Printf("Seeded question bank %q v%d (%d questions) into %s", doc.ID, doc.Version, len(doc.Questions), cfg.MongoDB)
}
