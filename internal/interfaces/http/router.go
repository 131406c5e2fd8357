package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/comanda-eventos/internal/application/backup"
	"github.com/jhoicas/comanda-eventos/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CatalogUC  *usecase.CatalogUseCase
	CartUC     *usecase.CartUseCase
	OrderUC    *usecase.OrderUseCase
	TicketUC   *usecase.TicketUseCase
	HistoryUC  *usecase.HistoryUseCase
	SettingsUC *usecase.SettingsUseCase
	Backup     *backup.Service
}

// Router registra las rutas de la API. Sin autenticación: un solo puesto por local.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Pantalla activa
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	api.Get("/view", settingsHandler.GetView)
	api.Put("/view", settingsHandler.SetView)

	// Catálogo
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	products := api.Group("/products")
	products.Get("/", catalogHandler.ListProducts)
	products.Post("/", catalogHandler.CreateProduct)
	products.Put("/:id", catalogHandler.UpdateProduct)
	products.Delete("/:id", RequireConfirmation("eliminar producto"), catalogHandler.DeleteProduct)

	categories := api.Group("/categories")
	categories.Get("/", catalogHandler.ListCategories)
	categories.Post("/", catalogHandler.CreateCategory)
	categories.Delete("/:name", RequireConfirmation("eliminar categoría"), catalogHandler.DeleteCategory)

	// Carrito
	cartHandler := NewCartHandler(deps.CartUC)
	cart := api.Group("/cart")
	cart.Get("/", cartHandler.Get)
	cart.Delete("/", cartHandler.Clear)
	cart.Post("/items", cartHandler.AddItem)
	cart.Patch("/items/:id", cartHandler.AdjustItem)
	cart.Put("/items/:id/note", cartHandler.SetNote)

	// Órdenes
	orderHandler := NewOrderHandler(deps.OrderUC, deps.TicketUC)
	orders := api.Group("/orders")
	orders.Post("/checkout", orderHandler.Checkout)
	orders.Get("/dispatch", orderHandler.Dispatch)
	orders.Delete("/edit", orderHandler.CancelEdit)
	orders.Post("/:id/deliver", orderHandler.Deliver)
	orders.Post("/:id/edit", orderHandler.LoadForEdit)
	orders.Get("/:id/ticket", orderHandler.Ticket)

	// Historial
	api.Get("/history", NewHistoryHandler(deps.HistoryUC).Get)

	// Configuración
	api.Get("/settings", settingsHandler.Get)
	api.Put("/settings", settingsHandler.Update)

	// Respaldo
	backupHandler := NewBackupHandler(deps.Backup)
	api.Get("/backup", backupHandler.Export)
	api.Post("/backup/preview", backupHandler.Preview)
	api.Post("/backup/restore", RequireConfirmation("restaurar respaldo"), backupHandler.Restore)
}
