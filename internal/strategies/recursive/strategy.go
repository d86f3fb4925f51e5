package recursive

import "github.com/betbot/gofact/internal/strategies"

const ID = "recursive"

func init() { strategies.Register(&Strategy{}) }

// Strategy 朴素递归版本
type Strategy struct{}

func (s *Strategy) ID() string            { return ID }
func (s *Strategy) Name() string          { return ID }
func (s *Strategy) Compute(n int64) int64 { return Factorial(n) }

// Factorial f(n) = n * f(n-1)
// 调用栈深度与 n 成正比，n 很大时会耗尽 goroutine 栈
func Factorial(n int64) int64 {
	if n < 0 {
		return -1
	}
	if n == 0 || n == 1 {
		return 1
	}

	return n * Factorial(n-1)
}
