package conformance

import (
	"fmt"

	"github.com/betbot/gofact/internal/strategies"
	"github.com/pkg/errors"
)

// Case 一条输入/期望输出
type Case struct {
	Input    int64 `yaml:"input" json:"input"`
	Expected int64 `yaml:"expected" json:"expected"`
}

// Oracle 固定的校验表，顺序和取值都不能改
var Oracle = []Case{
	{Input: 0, Expected: 1},
	{Input: 1, Expected: 1},
	{Input: -15, Expected: -1},
	{Input: 5, Expected: 120},
	{Input: 3, Expected: 6},
	{Input: 8, Expected: 40320},
	{Input: 10, Expected: 3628800},
}

// Mismatch 校验失败的一条记录
type Mismatch struct {
	Case
	Got int64
}

func (m *Mismatch) Error() string {
	return fmt.Sprintf("f(%d) = %d, want %d", m.Input, m.Got, m.Expected)
}

// Check 逐条校验，遇到第一条不符立即返回
func Check(fn strategies.Func, cases []Case) error {
	for _, c := range cases {
		if got := fn(c.Input); got != c.Expected {
			return errors.WithStack(&Mismatch{Case: c, Got: got})
		}
	}
	return nil
}

// CheckAll 校验全部用例，返回所有不符的记录
func CheckAll(fn strategies.Func, cases []Case) []Mismatch {
	var out []Mismatch
	for _, c := range cases {
		if got := fn(c.Input); got != c.Expected {
			out = append(out, Mismatch{Case: c, Got: got})
		}
	}
	return out
}
