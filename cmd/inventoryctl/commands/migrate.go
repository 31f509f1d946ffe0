package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/inventory-service/internal/infrastructure/postgres"
)

var steps int

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Gestiona las migraciones del esquema",
	Long: `Aplica o revierte las migraciones embebidas en el binario.

Subcomandos:
  up       - aplica las migraciones pendientes (o --steps N)
  down     - revierte todas las migraciones (o --steps N)
  version  - muestra la versión actual del esquema`,
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Aplica las migraciones pendientes",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrator(func(m *postgres.Migrator) error {
			if steps > 0 {
				return m.Steps(steps)
			}
			return m.Up()
		})
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Revierte migraciones",
	Long: `Revierte migraciones aplicadas.

Ejemplos:
  inventoryctl migrate down            # revierte todo el esquema
  inventoryctl migrate down --steps 1  # revierte la última migración`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrator(func(m *postgres.Migrator) error {
			if steps > 0 {
				return m.Steps(-steps)
			}
			return m.Down()
		})
	},
}

var migrateVersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Muestra la versión actual del esquema",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrator(func(m *postgres.Migrator) error {
			version, dirty, err := m.Version()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "version=%d dirty=%t\n", version, dirty)
			return nil
		})
	},
}

func withMigrator(fn func(m *postgres.Migrator) error) error {
	m, err := postgres.NewMigrator(cfg.DB.ConnectionString(), log.Zerolog())
	if err != nil {
		return err
	}
	defer func() {
		if cerr := m.Close(); cerr != nil {
			log.Warn().Err(cerr).Msg("cerrar migrador")
		}
	}()
	return fn(m)
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd, migrateVersionCmd)

	migrateUpCmd.Flags().IntVar(&steps, "steps", 0, "Número de migraciones a aplicar (0 = todas)")
	migrateDownCmd.Flags().IntVar(&steps, "steps", 0, "Número de migraciones a revertir (0 = todas)")
}
