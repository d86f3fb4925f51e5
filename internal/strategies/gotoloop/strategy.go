package gotoloop

import "github.com/betbot/gofact/internal/strategies"

const ID = "goto"

func init() { strategies.Register(&Strategy{}) }

// Strategy 跳转循环版本：先乘再判断，直到 current 降到 1
type Strategy struct{}

func (s *Strategy) ID() string            { return ID }
func (s *Strategy) Name() string          { return ID }
func (s *Strategy) Compute(n int64) int64 { return Factorial(n) }

// Factorial 计算 n!，n < 0 返回 -1。
// 溢出按 int64 回绕，不做检查。
func Factorial(n int64) int64 {
	if n < 0 {
		return -1
	}
	if n == 0 || n == 1 {
		return 1
	}

	result, current := n, n
	for {
		current--
		result *= current

		if current == 1 {
			return result
		}
	}
}
