// Package commands implementa la CLI de operación del servicio de inventario.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/inventory-service/pkg/config"
	"github.com/jhoicas/inventory-service/pkg/logger"
)

var (
	// Flags globales
	dbURL   string
	verbose bool

	cfg *config.Config
	log *logger.Logger
)

var rootCmd = &cobra.Command{
	Use:   "inventoryctl",
	Short: "Herramientas de operación del servicio de inventario",
	Long: `inventoryctl agrupa las tareas que no pasan por la API HTTP:

  migrate  - aplica o revierte las migraciones embebidas
  seed     - carga el catálogo de demostración si la base está vacía
  token    - emite un JWT de desarrollo con los permisos indicados`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("cargar configuración: %w", err)
		}
		if dbURL != "" {
			cfg.DB.DatabaseURL = dbURL
		}
		level := cfg.App.LogLevel
		if verbose {
			level = "debug"
		}
		log = logger.New(logger.Config{Env: cfg.App.Env, Level: level, Output: os.Stderr})
		return cfg.Validate()
	},
}

// Execute ejecuta el comando raíz.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbURL, "db", "", "URL de conexión a PostgreSQL (por defecto DATABASE_URL o DB_*)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Salida detallada")
}
