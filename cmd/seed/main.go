// seed carga el catálogo de productos (de prueba o desde CSV) y opcionalmente crea un administrador.
//
// Uso:
//
//	go run ./cmd/seed                                  # catálogo de prueba
//	go run ./cmd/seed -csv productos.csv -latin1       # CSV exportado de Excel
//	go run ./cmd/seed -admin-email admin@empresa.co -admin-password secreto
//
// Los productos cuyo código ya existe se omiten.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/jhoicas/quimicos-inventario/internal/application/auth"
	"github.com/jhoicas/quimicos-inventario/internal/application/dto"
	"github.com/jhoicas/quimicos-inventario/internal/application/usecase"
	"github.com/jhoicas/quimicos-inventario/internal/domain"
	"github.com/jhoicas/quimicos-inventario/internal/domain/entity"
	"github.com/jhoicas/quimicos-inventario/internal/domain/inventory"
	"github.com/jhoicas/quimicos-inventario/internal/infrastructure/postgres"
	"github.com/jhoicas/quimicos-inventario/pkg/config"
	"github.com/jhoicas/quimicos-inventario/pkg/logger"
)

func main() {
	csvPath := flag.String("csv", "", "archivo CSV de productos (vacío = catálogo de prueba)")
	latin1 := flag.Bool("latin1", false, "el CSV está en ISO-8859-1")
	adminEmail := flag.String("admin-email", "", "crear un usuario administrador con este email")
	adminPassword := flag.String("admin-password", "", "password del administrador")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	products := sampleCatalog()
	if *csvPath != "" {
		f, err := os.Open(*csvPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", *csvPath).Msg("abrir CSV")
		}
		products, err = parseCSV(f, *latin1)
		f.Close()
		if err != nil {
			log.Fatal().Err(err).Msg("leer CSV")
		}
	}

	ctx := context.Background()
	if cfg.DB.Migrate {
		if _, err := postgres.Migrate(cfg.DB.ConnectionString()); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
	}
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	productUC := usecase.NewProductUseCase(productRepo, postgres.NewTxRunner(pool))

	if *adminEmail != "" {
		authUC := auth.NewAuthUseCase(postgres.NewUserRepository(pool), auth.JWTConfig{
			Secret: cfg.JWT.Secret, ExpMinutes: cfg.JWT.Expiration, Issuer: cfg.JWT.Issuer,
		})
		_, err := authUC.Register(ctx, dto.RegisterRequest{
			Name:     "Administrador",
			Email:    *adminEmail,
			Password: *adminPassword,
			Role:     entity.RoleAdministrador.String(),
		})
		switch {
		case errors.Is(err, domain.ErrEmailAlreadyExists):
			log.Warn().Str("email", *adminEmail).Msg("el administrador ya existe")
		case err != nil:
			log.Fatal().Err(err).Msg("crear administrador")
		default:
			log.Info().Str("email", *adminEmail).Msg("administrador creado")
		}
	}

	created, skipped := 0, 0
	var loaded []entity.Product
	for _, in := range products {
		out, err := productUC.Create(ctx, in)
		if errors.Is(err, domain.ErrDuplicate) {
			skipped++
			continue
		}
		if err != nil {
			log.Error().Err(err).Str("code", in.Code).Msg("producto rechazado")
			continue
		}
		created++
		loaded = append(loaded, entity.Product{
			Code: out.Code, Name: out.Name, Price: out.Price, Stock: out.Stock,
			MinStock: out.MinStock, Category: entity.Category(out.Category),
		})
	}

	s := inventory.Summarize(loaded, 0)
	ev := log.Info().Int("creados", created).Int("omitidos", skipped).
		Int("bajo_stock", s.LowStock).Int("sin_stock", s.OutOfStock).
		Str("valor_total", s.TotalValue.StringFixed(0))
	for _, c := range entity.Categories {
		if ct, ok := s.ByCategory[c]; ok {
			ev = ev.Int("cat_"+string(c), ct.Count)
		}
	}
	ev.Msg("catálogo cargado")
}
