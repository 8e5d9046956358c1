// Package main is the composition root of the quizfolio account core. It
// loads configuration, connects the PostgreSQL stores and the document
// generation client, and wires the services together. The transport layer
// that exposes the services lives outside this module and embeds the same
// wiring.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	"github.com/quizfolio/quizfolio-api/internal/config"
	"github.com/quizfolio/quizfolio-api/internal/platform/logger"
	"github.com/quizfolio/quizfolio-api/internal/platform/pdfservice"
	"github.com/quizfolio/quizfolio-api/internal/platform/postgres"
	"github.com/quizfolio/quizfolio-api/internal/service"
)

// application bundles the wired service layer.
type application struct {
	cfg        *config.Config
	db         *sql.DB
	users      service.UserService
	selections service.SelectionService
	documents  service.DocumentService
	quiz       service.QuizService
}

func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer func() {
		_ = app.db.Close()
	}()

	slog.Info("quizfolio core initialized",
		slog.String("pdf_service", app.cfg.PDFService.URL))

	// The embedding transport would take over from here.
}

// initializeApp loads configuration and wires every component of the core.
func initializeApp() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	db, err := sql.Open("pgx", cfg.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to reach database: %w", err)
	}

	userStore := postgres.NewPostgresUserStore(db, appLogger)
	questionStore := postgres.NewPostgresQuestionStore(db, appLogger)
	answerStore := postgres.NewPostgresAnswerStore(db, appLogger)
	selectionStore := postgres.NewPostgresSelectionStore(db, appLogger)
	documentStore := postgres.NewPostgresDocumentStore(db, appLogger)

	pdfClient := pdfservice.NewClient(cfg.PDFService.URL, cfg.PDFService.Timeout, appLogger)

	users, err := service.NewUserService(
		userStore, selectionStore, documentStore, pdfClient, db, appLogger)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to build user service: %w", err)
	}

	selections, err := service.NewSelectionService(
		userStore, answerStore, selectionStore, appLogger)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to build selection service: %w", err)
	}

	documents, err := service.NewDocumentService(
		userStore, documentStore, pdfClient, appLogger)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to build document service: %w", err)
	}

	quiz, err := service.NewQuizService(questionStore, answerStore, appLogger)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to build quiz service: %w", err)
	}

	return &application{
		cfg:        cfg,
		db:         db,
		users:      users,
		selections: selections,
		documents:  documents,
		quiz:       quiz,
	}, nil
}
