package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/inventory-service/pkg/jwt"
)

var (
	tokenSubject     string
	tokenPermissions []string
	tokenExpiration  int
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Emite un JWT de desarrollo",
	Long: `Firma un token HS256 con JWT_SECRET para probar la API.

Ejemplos:
  inventoryctl token --sub alice --perm manage_items_INVENTORY_SERVICE
  inventoryctl token --sub bob --perm view_items_INVENTORY_SERVICE --exp 5`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if tokenSubject == "" {
			return errors.New("--sub es obligatorio")
		}
		exp := tokenExpiration
		if exp <= 0 {
			exp = cfg.JWT.Expiration
		}
		token, err := jwt.Generate(cfg.JWT.Secret, tokenSubject, tokenPermissions, cfg.JWT.Issuer, exp)
		if err != nil {
			return fmt.Errorf("firmar token: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)
	tokenCmd.Flags().StringVar(&tokenSubject, "sub", "", "Sujeto del token (usuario)")
	tokenCmd.Flags().StringArrayVar(&tokenPermissions, "perm", nil, "Permiso a incluir (repetible)")
	tokenCmd.Flags().IntVar(&tokenExpiration, "exp", 0, "Minutos de validez (por defecto JWT_EXPIRATION_MINUTES)")
}
