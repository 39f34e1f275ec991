// File: cmd/service/main.go
// @title        Pizza Delivery API
// @version      1.0
// @description  披薩外送訂單系統的後端 API 文件
// @host         localhost:8080
// @BasePath     /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description 格式為 "Bearer <token>"
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:           "pizza-delivery",
		Short:         "披薩外送訂單 API 服務",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serveCommand(cmd.Context(), envFile)
		},
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "啟動前載入的 dotenv 檔案 (不存在時略過)")

	serve := &cobra.Command{
		Use:   "serve",
		Short: "執行 migration 並啟動 HTTP 服務",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serveCommand(cmd.Context(), envFile)
		},
	}

	migrate := &cobra.Command{
		Use:   "migrate",
		Short: "資料庫 schema 管理",
	}
	migrate.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "套用所有尚未執行的 migration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return migrateCommand(envFile, runMigrationsFn)
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "回滾所有 migration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return migrateCommand(envFile, rollbackFn)
			},
		},
	)

	root.AddCommand(serve, migrate)
	return root
}

func serveCommand(ctx context.Context, envFile string) error {
	cfg, err := loadConfig(envFile)
	if err != nil {
		return err
	}
	return run(ctx, cfg)
}

func migrateCommand(envFile string, step func(string) error) error {
	cfg, err := loadConfig(envFile)
	if err != nil {
		return err
	}
	return step(cfg.DatabaseURL)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		logrus.WithError(err).Error("service exited")
		exitFunc(1)
	}
}
