package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"docqa-backend/internal/documents"
	"docqa-backend/internal/extract"
	"docqa-backend/internal/llm"
	openai "docqa-backend/internal/llm/openai"
	"docqa-backend/internal/questions"
	"docqa-backend/internal/shared/config"
	"docqa-backend/internal/shared/server"
	"docqa-backend/internal/shared/storage/db"
	"docqa-backend/internal/shared/storage/object"
	localstore "docqa-backend/internal/shared/storage/object/local"
	s3store "docqa-backend/internal/shared/storage/object/s3"
)

// App holds shared dependencies.
type App struct {
	Config           config.Config
	Router           *gin.Engine
	DB               *sql.DB
	Store            object.ObjectStore
	DocumentsRepo    documents.DocumentsRepo
	DocumentsService *documents.Service
	QuestionsService *questions.Service
	DocumentsHandler *documents.Handler
	QuestionsHandler *questions.Handler
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
	}

	if err := buildServices(app); err != nil {
		return nil, err
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:           app.Config,
		DocumentsHandler: app.DocumentsHandler,
		QuestionsHandler: app.QuestionsHandler,
	})

	return app, nil
}

// buildDB connects to Postgres when DATABASE_URL is set; otherwise the
// JSON-file-backed repository is used and no database handle exists.
// A configured-but-unreachable database is fatal at startup.
func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		log.Printf("bootstrap: DATABASE_URL empty; using file-backed document store")
		return nil, nil
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		return nil, err
	}
	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func buildServices(app *App) error {
	var docRepo documents.DocumentsRepo
	if app.DB != nil {
		docRepo = &documents.PGRepo{DB: app.DB}
	} else {
		fileRepo, err := documents.NewFileRepo(app.Config.LocalStoreDir)
		if err != nil {
			return err
		}
		docRepo = fileRepo
	}

	extractor := extract.New(
		extract.ParsePDFPolicy(app.Config.PDFPolicy),
		extract.NewOCR(app.Config.TesseractCmd),
	)

	// Uploads must work without an LLM credential; only the ask path fails.
	llmClient := llm.Client(llm.NotConfiguredClient{})
	if app.Config.LLMProvider == "openai" && strings.TrimSpace(app.Config.LLMAPIKey) != "" {
		client, err := openai.NewClient(app.Config.LLMAPIKey, app.Config.LLMModel, app.Config.LLMBaseURL)
		if err != nil {
			return err
		}
		llmClient = client
	}

	docSvc := &documents.Service{
		Store:     app.Store,
		Repo:      docRepo,
		Extractor: extractor,
	}
	askSvc := &questions.Service{
		Repo: docRepo,
		LLM:  llmClient,
	}

	app.DocumentsRepo = docRepo
	app.DocumentsService = docSvc
	app.QuestionsService = askSvc
	app.DocumentsHandler = documents.NewHandler(docSvc)
	app.QuestionsHandler = questions.NewHandler(askSvc)

	return nil
}
