package main

import (
	"fmt"
	"io"
	"os"

	"github.com/betbot/gofact/internal/conformance"
	"github.com/betbot/gofact/internal/strategies"
	"github.com/betbot/gofact/pkg/logger"
	"github.com/sirupsen/logrus"

	// 导入策略集合以触发 init() 注册
	_ "github.com/betbot/gofact/internal/strategies/all"
)

func main() {
	if err := logger.InitDefault(); err != nil {
		panic(fmt.Sprintf("初始化日志失败: %v", err))
	}

	ss, err := strategies.Resolve(strategies.DefaultOrder)
	if err != nil {
		logrus.Errorf("加载策略失败: %v", err)
		os.Exit(1)
	}
	os.Exit(run(os.Stdout, ss))
}

// run 按顺序校验，任何一个失败立即返回 1
// 失败详情已由 conformance 记录
func run(stdout io.Writer, ss []strategies.Strategy) int {
	if err := conformance.New(stdout).RunAll(ss); err != nil {
		return 1
	}
	return 0
}
