package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/inventory-service/internal/application/seed"
	"github.com/jhoicas/inventory-service/internal/application/usecase"
	"github.com/jhoicas/inventory-service/internal/infrastructure/postgres"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Carga el catálogo de demostración",
	Long: `Crea 3 categorías, 3 unidades de medida, 3 proveedores y 9 ítems.
No hace nada si ya existe algún ítem.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return err
		}
		defer pool.Close()

		repos := postgres.NewRepositories(pool)
		tx := postgres.NewTxRunner(pool)
		loaded, err := seed.Run(ctx, seed.UseCases{
			Categories:     usecase.NewItemCategoryUseCase(repos.Categories, tx),
			Vendors:        usecase.NewVendorUseCase(repos.Vendors, tx),
			UnitsOfMeasure: usecase.NewUnitOfMeasureUseCase(repos.UnitsOfMeasure, tx),
			Items:          usecase.NewItemUseCase(repos.Items, tx),
		}, log.Zerolog())
		if err != nil {
			return err
		}
		if loaded {
			fmt.Fprintln(cmd.OutOrStdout(), "catálogo cargado")
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "la base ya tenía ítems; sin cambios")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
