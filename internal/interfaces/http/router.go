package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/creditmemo-api/internal/application/auth"
	"github.com/jhoicas/creditmemo-api/internal/application/creditmemo"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	RefundUC   *creditmemo.RefundUseCase
	QueryUC    *creditmemo.QueryUseCase
	DocumentUC *creditmemo.DocumentUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/token", authHandler.Token)

	// Rutas protegidas (Bearer Token de administrador)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret), RequireRole(auth.RoleAdmin))
	h := NewCreditMemoHandler(deps.RefundUC, deps.QueryUC, deps.DocumentUC)

	orders := protected.Group("/orders")
	orders.Post("/:number/refunds", h.Refund)
	orders.Get("/:number/credit-memos", h.ListByOrder)

	memos := protected.Group("/credit-memos")
	memos.Get("/", h.List)
	memos.Get("/:id", h.GetByID)
	memos.Get("/:id/pdf", h.DownloadPDF)
	memos.Get("/:id/ubl", h.ExportUBL)
}
