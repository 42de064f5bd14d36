package main

import (
	"fmt"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"log"
	"os"
	"recipe-app-api/app/manage/handlers"
	"recipe-app-api/app/manage/inits"
	serverInits "recipe-app-api/app/server/inits"
)

func main() {
	// 初始化配置
	cfg, err := inits.Config()
	if err != nil {
		log.Fatal(fmt.Errorf("error loading config: %w", err))
	}

	// 初始化日志
	l, err := serverInits.Logger(!cfg.IsProd, "manage")
	if err != nil {
		log.Fatal(fmt.Errorf("error initializing logger: %w", err))
	}
	defer l.Sync()

	// 准备 handler app
	handlerApp := handlers.NewApp(cfg, l, func() gorm.Dialector {
		return postgres.Open(cfg.DBConnectionString)
	})

	// 执行命令
	if err := newRootCmd(handlerApp).Execute(); err != nil {
		l.Error("command failed", zap.Error(err))
		os.Exit(1)
	}
}

func newRootCmd(app *handlers.App) *cobra.Command {
	root := &cobra.Command{
		Use:           "manage",
		Short:         "Management commands for the recipe API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newWaitDBCmd(app), newCreateSuperuserCmd(app))

	return root
}

func newWaitDBCmd(app *handlers.App) *cobra.Command {
	return &cobra.Command{
		Use:   "wait-for-db",
		Short: "Block until the database accepts connections",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.WaitDB(cmd.Context())
		},
	}
}

func newCreateSuperuserCmd(app *handlers.App) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "create-superuser",
		Short: "Create a staff account with every permission",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.CreateSuperuser(cmd.Context(), email, password)
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "email address of the new superuser")
	cmd.Flags().StringVar(&password, "password", "", "password of the new superuser, empty leaves the account without a usable password")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}
