package conformance

import (
	"fmt"
	"io"

	"github.com/betbot/gofact/internal/strategies"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	StartBanner   = "::: Testing factorial function... :::"
	SuccessBanner = "::: Tests ran successfully! :::"
)

// Harness 对策略执行校验表，并在前后输出横幅
type Harness struct {
	out   io.Writer
	cases []Case
	log   *logrus.Entry
}

// Option 配置 Harness
type Option func(*Harness)

// WithCases 在 Oracle 之后追加用例
func WithCases(extra ...Case) Option {
	return func(h *Harness) {
		h.cases = append(h.cases, extra...)
	}
}

// WithLogger 替换默认 logger
func WithLogger(entry *logrus.Entry) Option {
	return func(h *Harness) {
		if entry != nil {
			h.log = entry
		}
	}
}

// New 创建 Harness，横幅写入 out
func New(out io.Writer, opts ...Option) *Harness {
	h := &Harness{
		out:   out,
		cases: append([]Case(nil), Oracle...),
		log:   logrus.WithField("component", "conformance"),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Cases 返回当前使用的用例（副本）
func (h *Harness) Cases() []Case {
	return append([]Case(nil), h.cases...)
}

// Run 校验单个策略
// 失败时不输出成功横幅，返回的错误包含 *Mismatch
func (h *Harness) Run(s strategies.Strategy) error {
	log := h.log.WithFields(logrus.Fields{
		"strategy": s.ID(),
		"run":      uuid.New().String(),
	})

	if _, err := fmt.Fprintln(h.out, StartBanner); err != nil {
		return errors.Wrap(err, "write start banner")
	}
	log.Debugf("checking %d cases", len(h.cases))

	if err := Check(strategies.FuncOf(s), h.cases); err != nil {
		log.WithError(err).Error("conformance check failed")
		return errors.Wrapf(err, "strategy %s", s.ID())
	}

	if _, err := fmt.Fprintln(h.out, SuccessBanner); err != nil {
		return errors.Wrap(err, "write success banner")
	}
	log.Debug("conformance check passed")
	return nil
}

// RunAll 按顺序校验，遇到第一个失败的策略即停止
func (h *Harness) RunAll(ss []strategies.Strategy) error {
	for _, s := range ss {
		if err := h.Run(s); err != nil {
			return err
		}
	}
	return nil
}
