package handlers

import (
	"net/http"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"itemstore-backend/internal/auth"
	"itemstore-backend/internal/config"
	"itemstore-backend/internal/middleware"
	"itemstore-backend/internal/services"
)

// NewRouter wires services, handlers and middleware into the full HTTP
// surface of the application.
func NewRouter(cfg *config.Config, logger *zap.Logger, db *sqlx.DB) (http.Handler, error) {
	issuer := auth.NewIssuer(cfg.SecretKey)

	authService := services.NewAuthService(db, issuer)
	itemService := services.NewItemService(db)
	fileService, err := services.NewFileService(cfg.UploadDir)
	if err != nil {
		return nil, err
	}

	authMiddleware := middleware.NewAuthMiddleware(authService)
	authHandler := NewAuthHandler(authService)
	itemHandler := NewItemHandler(itemService)
	fileHandler := NewFileHandler(fileService)
	systemHandler := NewSystemHandler(cfg, authService)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", systemHandler.Root)
	mux.HandleFunc("GET /health", systemHandler.Health)
	mux.HandleFunc("GET /info", systemHandler.Info)

	mux.HandleFunc("POST /auth/register", authHandler.Register)
	mux.HandleFunc("POST /auth/login", authHandler.Login)
	mux.Handle("GET /auth/me", authMiddleware.RequireAuth(http.HandlerFunc(authHandler.Me)))

	mux.HandleFunc("GET /items/{$}", itemHandler.List)
	mux.HandleFunc("GET /items/{id}", itemHandler.Get)
	mux.Handle("POST /items/{$}", authMiddleware.RequireAuth(http.HandlerFunc(itemHandler.Create)))
	mux.Handle("PUT /items/{id}", authMiddleware.RequireAuth(http.HandlerFunc(itemHandler.Update)))
	mux.Handle("DELETE /items/{id}", authMiddleware.RequireAuth(http.HandlerFunc(itemHandler.Delete)))

	mux.HandleFunc("POST /upload/{$}", fileHandler.Upload)
	mux.HandleFunc("GET /files/{$}", fileHandler.List)
	mux.HandleFunc("GET /files/{name}", fileHandler.Download)

	// Everything no route claimed falls through to a JSON 404.
	mux.HandleFunc("/", systemHandler.NotFound)

	handler := middleware.CORS(mux)
	handler = middleware.Logging(logger)(handler)

	return handler, nil
}
