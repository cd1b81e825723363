package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/acardona/stock-api/internal/application/auth"
	"github.com/acardona/stock-api/internal/application/dto"
	"github.com/acardona/stock-api/internal/infrastructure/postgres"
	"github.com/acardona/stock-api/pkg/config"
)

// stockctl: utilidades operativas del inventario (migraciones y alta del
// primer administrador, que no puede crearse vía API porque el endpoint
// exige un superusuario existente).
func main() {
	rootCmd := &cobra.Command{
		Use:   "stockctl",
		Short: "Utilidades de administración del inventario",
	}
	rootCmd.AddCommand(migrateCmd(), crearAdminCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Aplica las migraciones SQL pendientes",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if err := postgres.Migrate(cfg.DB.ConnectionString()); err != nil {
				return err
			}
			fmt.Println("migraciones aplicadas")
			return nil
		},
	}
}

func crearAdminCmd() *cobra.Command {
	var (
		username  string
		password  string
		superuser bool
	)
	cmd := &cobra.Command{
		Use:   "crear-admin",
		Short: "Crea un administrador directamente en la base de datos",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			pool, err := postgres.NewPool(context.Background(), cfg.DB)
			if err != nil {
				return err
			}
			defer pool.Close()

			authUC := auth.NewAuthUseCase(postgres.NewAdministradorRepository(pool), auth.JWTConfig{
				Secret:       cfg.JWT.Secret,
				ExpMinutes:   cfg.JWT.Expiration,
				RefreshHours: cfg.JWT.RefreshHours,
				Issuer:       cfg.JWT.Issuer,
			})
			admin, err := authUC.Registrar(dto.RegistrarAdminRequest{
				Username:  username,
				Password:  password,
				Superuser: superuser,
			})
			if err != nil {
				return err
			}
			fmt.Printf("administrador creado: %s (%s)\n", admin.Username, admin.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&username, "username", "", "nombre de usuario (3-50 alfanumérico)")
	cmd.Flags().StringVar(&password, "password", "", "contraseña (mínimo 8, no solo números)")
	cmd.Flags().BoolVar(&superuser, "superuser", false, "otorgar permisos de superusuario")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}
