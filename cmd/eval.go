package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"yqhp/calculator/internal/expression"
	"yqhp/calculator/pkg/jsonutil"
	"yqhp/calculator/pkg/logger"
)

var (
	// eval 命令的 flags
	evalJSON bool
)

// evalCmd 是 eval 子命令
var evalCmd = &cobra.Command{
	Use:   "eval <expression...>",
	Short: "计算一个表达式",
	Long: `计算命令行给出的表达式并输出结果。多个参数以空格连接后作为一个表达式。
表达式无效时向标准错误输出 "invalid input: <表达式>" 并以非零状态退出。`,
	Example: `  calculator eval "2+3*4"
  calculator eval 2 + 3 '*' 4
  calculator eval --json "7/0"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)

	evalCmd.Flags().BoolVar(&evalJSON, "json", false, "以 JSON 格式输出结果")
}

// evalOutput 是 --json 的输出结构
type evalOutput struct {
	Expression string `json:"expression"`
	Result     *int64 `json:"result,omitempty"`
	Error      string `json:"error,omitempty"`
	Kind       string `json:"kind,omitempty"`
	Stage      string `json:"stage,omitempty"`
	Position   *int   `json:"position,omitempty"`
}

func newEvalOutput(line string, value int64, err error) evalOutput {
	out := evalOutput{Expression: line}
	if err == nil {
		out.Result = &value
		return out
	}

	out.Error = err.Error()
	pos := -1
	var exprErr *expression.ExpressionError
	if errors.As(err, &exprErr) {
		out.Kind = exprErr.Kind.String()
		out.Stage = exprErr.Stage.String()
		pos = exprErr.Position
	} else if kind, ok := expression.KindOf(err); ok {
		out.Kind = kind.String()
	}
	out.Position = &pos
	return out
}

func runEval(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(make(map[string]string))
	if err != nil {
		return err
	}
	log := setupLogger(cfg)
	defer logger.Sync()

	line := strings.Join(args, " ")
	value, evalErr := expression.EvaluateExpression(line)

	if evalJSON {
		s, err := jsonutil.MarshalString(newEvalOutput(line, value, evalErr))
		if err != nil {
			return fmt.Errorf("序列化结果失败: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), s)
		if evalErr != nil {
			return errReported
		}
		return nil
	}

	if evalErr != nil {
		log.Debug("表达式无效", zap.String("expression", line), zap.Error(evalErr))
		fmt.Fprintf(cmd.ErrOrStderr(), "invalid input: %s\n", line)
		return errReported
	}

	fmt.Fprintln(cmd.OutOrStdout(), value)
	return nil
}
