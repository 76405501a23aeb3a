package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"yqhp/calculator/api/rest"
	"yqhp/calculator/pkg/logger"
)

var (
	// serve 命令的 flags
	serveAddress string
	serveCORS    bool
)

// serveCmd 是 serve 子命令
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "启动 HTTP 计算服务",
	Long: `启动 HTTP 服务，提供以下接口：
  GET  /health            健康检查
  POST /api/v1/evaluate   计算表达式
  GET  /api/v1/stats      计算统计`,
	Example: `  # 使用默认配置启动
  calculator serve

  # 指定监听地址
  calculator serve --address :9090

  # 使用配置文件
  calculator serve --config config.yaml`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddress, "address", ":8080", "HTTP 服务地址")
	serveCmd.Flags().BoolVar(&serveCORS, "cors", false, "启用 CORS")
}

func runServe(cmd *cobra.Command, args []string) error {
	// 应用命令行参数覆盖
	overrides := make(map[string]string)
	if cmd.Flags().Changed("address") {
		overrides["server.address"] = serveAddress
	}
	if cmd.Flags().Changed("cors") {
		overrides["server.enable_cors"] = fmt.Sprintf("%t", serveCORS)
	}

	cfg, err := loadConfig(overrides)
	if err != nil {
		return err
	}

	log := setupLogger(cfg)
	defer logger.Sync()

	server := rest.NewServer(nil, cfg.Server, log)

	log.Info("HTTP 服务启动",
		zap.String("address", cfg.Server.Address),
		zap.Bool("cors", cfg.Server.EnableCORS),
	)

	if err := server.StartWithContext(cmd.Context()); err != nil {
		return fmt.Errorf("HTTP 服务运行失败: %w", err)
	}

	log.Info("HTTP 服务已停止")
	return nil
}
