package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/tu-usuario/billing-api/pkg/config"
	"github.com/tu-usuario/billing-api/pkg/logger"
)

// Herramienta de migraciones del esquema. Usa los mismos env vars de la API
// (DATABASE_URL o DB_*) y los archivos SQL de ./migrations.
func main() {
	var path string
	flag.StringVar(&path, "path", "migrations", "directorio con los archivos de migración")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}
	command := args[0]

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	m, err := migrate.New("file://"+path, cfg.DB.ConnectionString())
	if err != nil {
		log.Fatal().Err(err).Msg("crear migrador")
	}
	defer m.Close()

	switch command {
	case "up":
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			log.Fatal().Err(err).Msg("aplicar migraciones")
		}
		log.Info().Msg("migraciones al día")

	case "down":
		if err := m.Steps(-1); err != nil {
			log.Fatal().Err(err).Msg("revertir migración")
		}
		log.Info().Msg("última migración revertida")

	case "version":
		version, dirty, err := m.Version()
		if err != nil {
			if errors.Is(err, migrate.ErrNilVersion) {
				log.Info().Msg("sin migraciones aplicadas")
				return
			}
			log.Fatal().Err(err).Msg("consultar versión")
		}
		log.Info().Uint("version", version).Bool("dirty", dirty).Msg("versión actual")

	case "force":
		if len(args) < 2 {
			log.Fatal().Msg("uso: migrate force <version>")
		}
		version, err := strconv.Atoi(args[1])
		if err != nil {
			log.Fatal().Str("value", args[1]).Msg("versión inválida")
		}
		if err := m.Force(version); err != nil {
			log.Fatal().Err(err).Msg("forzar versión")
		}
		log.Info().Int("version", version).Msg("versión forzada")

	default:
		fmt.Fprintln(os.Stderr, "comando desconocido:", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`Uso: migrate [-path dir] <comando>

Comandos:
  up               aplica todas las migraciones pendientes
  down             revierte la última migración
  version          muestra la versión actual del esquema
  force <version>  fija la versión sin ejecutar SQL (usar con cuidado)`)
}
