package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/comanda-eventos/internal/application/backup"
	"github.com/jhoicas/comanda-eventos/internal/application/ports"
	"github.com/jhoicas/comanda-eventos/internal/application/session"
	"github.com/jhoicas/comanda-eventos/internal/application/usecase"
	"github.com/jhoicas/comanda-eventos/internal/domain/entity"
	"github.com/jhoicas/comanda-eventos/internal/domain/repository"
	"github.com/jhoicas/comanda-eventos/internal/infrastructure/kvstore"
	infrapdf "github.com/jhoicas/comanda-eventos/internal/infrastructure/pdf"
	"github.com/jhoicas/comanda-eventos/internal/infrastructure/postgres"
	"github.com/jhoicas/comanda-eventos/internal/infrastructure/rabbitmq"
	infraredis "github.com/jhoicas/comanda-eventos/internal/infrastructure/redis"
	httpRouter "github.com/jhoicas/comanda-eventos/internal/interfaces/http"
	"github.com/jhoicas/comanda-eventos/pkg/config"
	"github.com/jhoicas/comanda-eventos/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Store.Driver).Msg("abrir almacenamiento")
	}
	defer closeStore()

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Warn().Err(err).Str("timezone", cfg.App.Timezone).Msg("zona horaria inválida, se usa la local")
		loc = time.Local
	}

	state, err := session.Load(ctx, store, session.DefaultCatalog(entity.Settings{
		RestaurantName: cfg.Defaults.RestaurantName,
		EventType:      cfg.Defaults.EventType,
	}))
	if err != nil {
		log.Fatal().Err(err).Msg("cargar estado inicial")
	}
	log.Info().
		Int("products", len(state.Products())).
		Int("pending", state.PendingCount()).
		Msg("estado inicial cargado")

	// Eventos de cocina: solo si hay broker configurado
	var notifier ports.KitchenNotifier
	if cfg.AMQP.URL != "" {
		publisher, err := rabbitmq.Dial(cfg.AMQP)
		if err != nil {
			log.Warn().Err(err).Msg("RabbitMQ no disponible, eventos de cocina desactivados")
		} else {
			defer publisher.Close()
			notifier = publisher
		}
	}

	catalogUC := usecase.NewCatalogUseCase(state, store, log)
	cartUC := usecase.NewCartUseCase(state)
	orderUC := usecase.NewOrderUseCase(state, store, notifier, log)
	ticketUC := usecase.NewTicketUseCase(orderUC, state, infrapdf.NewTicketGenerator())
	historyUC := usecase.NewHistoryUseCase(store, loc)
	settingsUC := usecase.NewSettingsUseCase(state, store, log)
	backupSvc := backup.NewService(state, store, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    20 << 20, // respaldos con historial completo
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Comanda Eventos API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CatalogUC:  catalogUC,
		CartUC:     cartUC,
		OrderUC:    orderUC,
		TicketUC:   ticketUC,
		HistoryUC:  historyUC,
		SettingsUC: settingsUC,
		Backup:     backupSvc,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// openStore construye el almacenamiento según STORE_DRIVER y devuelve su función de cierre.
func openStore(ctx context.Context, cfg *config.Config) (repository.Store, func(), error) {
	switch cfg.Store.Driver {
	case config.StoreRedis:
		kv, err := infraredis.NewKV(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		return kvstore.NewStore(kv), func() { _ = kv.Close() }, nil
	case config.StorePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, nil, err
		}
		return postgres.NewStore(pool), pool.Close, nil
	case config.StoreMemory:
		return kvstore.NewStore(kvstore.NewMemoryKV()), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("driver de almacenamiento no soportado: %s", cfg.Store.Driver)
	}
}
