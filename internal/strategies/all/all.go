package all

// 统一导入所有内置阶乘策略以触发 init() 注册。
// cmd 入口只需要导入这一处。

import (
	_ "github.com/betbot/gofact/internal/strategies/gotoloop"
	_ "github.com/betbot/gofact/internal/strategies/iterative"
	_ "github.com/betbot/gofact/internal/strategies/recursive"
)
