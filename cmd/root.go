// Package cmd 提供 calculator CLI 的命令实现
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"yqhp/calculator/internal/config"
	"yqhp/calculator/internal/repl"
	"yqhp/calculator/pkg/logger"
)

const (
	// Version 是当前版本号
	Version = "0.1.0"
	// Banner 是版本信息中显示的 ASCII 艺术
	Banner = `
   _____      _      |‾‾| Calculator %s
  |  _  |    | |     |  |
  | |_| |____| |__   |  |
  |  _  |  __| '_ \  |  |
  |_| |_|_|  |_.__/  |__|
`
)

var (
	// 全局配置
	cfgFile string
	debug   bool

	// 根命令（REPL）的 flags
	noPrompt   bool
	promptMode string
)

// errReported 表示错误信息已经输出给用户，Execute 只需设置退出码
var errReported = errors.New("已报告的错误")

// rootCmd 是根命令，不带子命令时启动交互式计算器
var rootCmd = &cobra.Command{
	Use:   "calculator",
	Short: "整数四则运算计算器",
	Long: `calculator 逐行读取整数算术表达式（+ - * / 与括号）并输出结果。
无法计算的行输出 "invalid input: <行内容>"。`,
	Example: `  # 交互模式
  calculator

  # 关闭提示符（适合管道输入）
  echo "1+2*3" | calculator -p

  # 单次求值
  calculator eval "(1+2)*3"`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	RunE:          runREPL,
}

// Execute 执行根命令
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, err)
		}
		stop()
		os.Exit(1)
	}
}

func init() {
	// 全局 flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "配置文件路径")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "启用调试日志")

	// REPL flags
	rootCmd.Flags().BoolVarP(&noPrompt, "no-prompt", "p", false, "不输出提示符")
	rootCmd.Flags().StringVar(&promptMode, "prompt-mode", config.PromptAlways, "提示符模式: always, never, auto")

	// 禁用默认的 completion 命令
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// 自定义版本模板
	rootCmd.SetVersionTemplate(fmt.Sprintf(Banner, Version) + "\n")
}

// GetRootCmd 返回根命令（用于测试）
func GetRootCmd() *cobra.Command {
	return rootCmd
}

// loadConfig 按 默认值 < 配置文件 < 环境变量 < 命令行 的顺序加载并校验配置
func loadConfig(overrides map[string]string) (*config.Config, error) {
	if debug {
		overrides["logging.level"] = "debug"
	}

	loader := config.NewLoader().WithCmdArgs(overrides)
	if cfgFile != "" {
		loader = loader.WithConfigPath(cfgFile)
	}

	cfg, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("加载配置失败: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setupLogger 根据配置创建日志器并替换全局日志器
func setupLogger(cfg *config.Config) *zap.Logger {
	l := logger.New(cfg.Logging.LoggerConfig())
	logger.Replace(l)
	return l
}

func runREPL(cmd *cobra.Command, args []string) error {
	overrides := make(map[string]string)
	if cmd.Flags().Changed("prompt-mode") {
		overrides["repl.prompt_mode"] = promptMode
	}
	if noPrompt {
		overrides["repl.prompt_mode"] = config.PromptNever
	}

	cfg, err := loadConfig(overrides)
	if err != nil {
		return err
	}

	log := setupLogger(cfg)
	defer logger.Sync()

	app := repl.New(repl.FromConfig(cfg.REPL), nil, cmd.InOrStdin(), cmd.OutOrStdout(), log)
	log.Debug("REPL 已启动",
		zap.String("prompt_mode", cfg.REPL.PromptMode),
		zap.Bool("prompt_enabled", app.PromptEnabled()),
	)

	if err := app.Run(cmd.Context()); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("REPL 运行失败: %w", err)
	}
	return nil
}
