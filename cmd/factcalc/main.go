package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/betbot/gofact/internal/conformance"
	"github.com/betbot/gofact/internal/strategies"
	"github.com/betbot/gofact/pkg/config"
	"github.com/betbot/gofact/pkg/logger"
	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	// 导入策略集合以触发 init() 注册
	_ "github.com/betbot/gofact/internal/strategies/all"
)

const (
	exitOK      = 0
	exitFailed  = 1
	exitBadArgs = 2
)

// maxInput 输入上限。66! 含 64 个因子 2，按 int64 回绕后 n >= 66 的结果恒为 0，
// 更大的 n 只会让 recursive 的调用栈无限加深。
const maxInput = 66

var (
	passColor = color.New(color.FgGreen, color.Bold)
	failColor = color.New(color.FgRed, color.Bold)
)

func main() {
	// .env 不存在时忽略
	_ = godotenv.Load()
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("factcalc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "配置文件路径（.yaml/.yml）")
	strategyList := fs.String("strategy", "", "策略（逗号分隔），默认使用配置中的 strategies")
	verify := fs.Bool("verify", false, "对所选策略执行校验表，并报告所有不符的用例")
	list := fs.Bool("list", false, "列出已注册的策略")
	if err := fs.Parse(args); err != nil {
		return exitBadArgs
	}

	cfg, err := config.LoadFromFile(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "加载配置失败: %v\n", err)
		return exitBadArgs
	}
	cfg.ApplyEnv()
	if s := strings.TrimSpace(*strategyList); s != "" {
		cfg.Strategies = config.SplitList(s)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "配置验证失败: %v\n", err)
		return exitBadArgs
	}

	if err := logger.Init(logger.Config{
		Level:      cfg.LogLevel,
		OutputFile: cfg.LogFile,
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     7,
		Console:    stderr,
	}); err != nil {
		fmt.Fprintf(stderr, "初始化日志失败: %v\n", err)
		return exitBadArgs
	}
	defer logger.Close()

	if *list {
		for _, id := range strategies.List() {
			fmt.Fprintln(stdout, id)
		}
		return exitOK
	}

	ss, err := strategies.Resolve(cfg.Strategies)
	if err != nil {
		logrus.Errorf("解析策略失败: %v", err)
		return exitBadArgs
	}

	if *verify {
		return verifyAll(stdout, ss, cfg.ExtraCases)
	}

	inputs, err := parseInputs(fs.Args())
	if err != nil {
		logrus.Errorf("参数错误: %v", err)
		return exitBadArgs
	}
	for _, n := range inputs {
		for _, s := range ss {
			fmt.Fprintf(stdout, "%s(%d) = %d\n", s.ID(), n, s.Compute(n))
		}
	}
	return exitOK
}

// verifyAll 不在第一条失败处停止，报告全部结果
func verifyAll(stdout io.Writer, ss []strategies.Strategy, extra []conformance.Case) int {
	cases := conformance.New(io.Discard, conformance.WithCases(extra...)).Cases()
	code := exitOK
	for _, s := range ss {
		mismatches := conformance.CheckAll(strategies.FuncOf(s), cases)
		if len(mismatches) == 0 {
			fmt.Fprintf(stdout, "%s %s (%d cases)\n", passColor.Sprint("PASS"), s.ID(), len(cases))
			continue
		}

		code = exitFailed
		fmt.Fprintf(stdout, "%s %s (%d/%d failed)\n", failColor.Sprint("FAIL"), s.ID(), len(mismatches), len(cases))
		for i := range mismatches {
			fmt.Fprintf(stdout, "    %v\n", &mismatches[i])
		}
		logrus.WithField("strategy", s.ID()).Warnf("%d 条用例不符", len(mismatches))
	}
	return code
}

func parseInputs(args []string) ([]int64, error) {
	if len(args) == 0 {
		return nil, errors.New("至少需要一个整数参数")
	}
	out := make([]int64, 0, len(args))
	for _, a := range args {
		n, err := strconv.ParseInt(strings.TrimSpace(a), 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "无效整数 %q", a)
		}
		if n > maxInput {
			return nil, errors.Errorf("%d 超出上限 %d", n, maxInput)
		}
		out = append(out, n)
	}
	return out, nil
}
