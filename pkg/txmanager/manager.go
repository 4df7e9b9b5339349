package txmanager

import (
	"context"
	"sync"
)

// txKey помечает контекст секции конкретного менеджера
type txKey struct {
	m *Manager
}

type txMode int

const (
	modeReadOnly txMode = iota + 1
	modeExclusive
)

// Manager сериализует доступ к данным, которые живут в памяти процесса.
// Повторяет контракт TransactionManager: Do / DoSerializable / DoReadOnly.
// Вложенный вызов внутри уже открытой секции выполняется без повторного захвата блокировки.
type Manager struct {
	mu sync.RWMutex
}

// NewManager создает новый менеджер секций
func NewManager() *Manager {
	return &Manager{}
}

// Do выполняет fn в эксклюзивной секции
func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.exclusive(ctx, fn)
}

// DoSerializable выполняет fn в эксклюзивной секции: проверка и запись внутри fn атомарны
func (m *Manager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.exclusive(ctx, fn)
}

// DoReadOnly выполняет fn в разделяемой секции (параллельно с другими читателями)
func (m *Manager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, ok := m.mode(ctx); ok {
		return fn(ctx)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	return fn(context.WithValue(ctx, txKey{m: m}, modeReadOnly))
}

// IsInTransaction проверяет, выполняется ли код внутри открытой секции этого менеджера
func (m *Manager) IsInTransaction(ctx context.Context) bool {
	_, ok := m.mode(ctx)
	return ok
}

func (m *Manager) mode(ctx context.Context) (txMode, bool) {
	mode, ok := ctx.Value(txKey{m: m}).(txMode)
	return mode, ok && mode != 0
}

func (m *Manager) exclusive(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if mode, ok := m.mode(ctx); ok {
		if mode == modeExclusive {
			return fn(ctx)
		}
		return ErrUpgradeNotAllowed
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	return fn(context.WithValue(ctx, txKey{m: m}, modeExclusive))
}
