package strategies

import (
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// Func 阶乘函数签名：输入 n，返回 n!（负数返回 -1）
type Func func(n int64) int64

// Strategy 阶乘策略接口
// 所有策略对同一输入必须返回相同结果
type Strategy interface {
	ID() string
	Name() string
	Compute(n int64) int64
}

// DefaultOrder 默认运行顺序
var DefaultOrder = []string{"goto", "iterative", "recursive"}

// Registry 策略注册表
type Registry struct {
	strategies map[string]Strategy
	mu         sync.RWMutex
}

// NewRegistry 创建新的策略注册表
func NewRegistry() *Registry {
	return &Registry{
		strategies: make(map[string]Strategy),
	}
}

// Register 注册策略
// 策略应该在 init() 函数中调用，重复注册直接 panic
func (r *Registry) Register(strategy Strategy) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := strings.TrimSpace(strategy.ID())
	if id == "" {
		panic(errors.New("strategy id is empty"))
	}
	if _, exists := r.strategies[id]; exists {
		panic(errors.Errorf("strategy %s already registered", id))
	}

	r.strategies[id] = strategy
}

// Get 获取策略
func (r *Registry) Get(id string) (Strategy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	strategy, exists := r.strategies[id]
	if !exists {
		return nil, errors.Errorf("strategy %s not found", id)
	}

	return strategy, nil
}

// List 列出所有策略 ID（已排序）
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.strategies))
	for id := range r.strategies {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Resolve 按给定顺序解析策略列表，空白项跳过，重复项报错
func (r *Registry) Resolve(ids []string) ([]Strategy, error) {
	seen := make(map[string]struct{}, len(ids))
	out := make([]Strategy, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			return nil, errors.Errorf("strategy %s listed twice", id)
		}
		seen[id] = struct{}{}

		s, err := r.Get(id)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if len(out) == 0 {
		return nil, errors.New("no strategy selected")
	}
	return out, nil
}

// GlobalRegistry 全局策略注册表
var GlobalRegistry = NewRegistry()

// Register 注册到全局注册表
func Register(strategy Strategy) { GlobalRegistry.Register(strategy) }

// Get 从全局注册表获取策略
func Get(id string) (Strategy, error) { return GlobalRegistry.Get(id) }

// List 列出全局注册表中的策略
func List() []string { return GlobalRegistry.List() }

// Resolve 从全局注册表按顺序解析
func Resolve(ids []string) ([]Strategy, error) { return GlobalRegistry.Resolve(ids) }

// FuncOf 把策略适配成 Func
func FuncOf(s Strategy) Func { return s.Compute }
