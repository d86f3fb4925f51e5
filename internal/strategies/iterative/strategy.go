package iterative

import "github.com/betbot/gofact/internal/strategies"

const ID = "iterative"

func init() { strategies.Register(&Strategy{}) }

// Strategy 计数循环版本
type Strategy struct{}

func (s *Strategy) ID() string            { return ID }
func (s *Strategy) Name() string          { return ID }
func (s *Strategy) Compute(n int64) int64 { return Factorial(n) }

// Factorial 从 n-1 递减乘到 2，累乘器初始为 n
func Factorial(n int64) int64 {
	if n < 0 {
		return -1
	}
	if n == 0 || n == 1 {
		return 1
	}

	result := n
	for i := n - 1; i > 1; i-- {
		result *= i
	}
	return result
}
