// Siembra la cuenta principal "admin". Idempotente: si la cuenta ya existe
// actualiza su nombre y contraseña, siempre con rol admin.
package main

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/AlanArratia12/MasterServicioAutomotriz/internal/domain/entity"
	"github.com/AlanArratia12/MasterServicioAutomotriz/internal/infrastructure/postgres"
	"github.com/AlanArratia12/MasterServicioAutomotriz/pkg/config"
	"github.com/AlanArratia12/MasterServicioAutomotriz/pkg/logger"
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

	if cfg.Seed.AdminPass == "" {
		log.Fatal().Msg("ADMIN_PASS es requerido para sembrar la cuenta principal")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Seed.AdminPass), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hashear contraseña")
	}

	users := postgres.NewUserRepository(pool)
	if err := users.UpsertCanonicalAdmin(ctx, "Administrador", cfg.Seed.AdminUser, string(hash)); err != nil {
		log.Fatal().Err(err).Msg("sembrar cuenta principal")
	}

	log.Info().
		Str("username", cfg.Seed.AdminUser).
		Str("role", entity.RoleAdmin).
		Msg("cuenta principal lista")
}
