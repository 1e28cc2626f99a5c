package script

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	lua "github.com/yuin/gopher-lua"
)

// DefaultTimeout bounds a single hook call.
const DefaultTimeout = 100 * time.Millisecond

// Engine owns a sandboxed Lua state.
type Engine struct {
	mu      sync.Mutex
	L       *lua.LState
	timeout time.Duration
	logger  *slog.Logger
	closed  bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithTimeout sets the per-call timeout. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(e *Engine) {
		if d >= 0 {
			e.timeout = d
		}
	}
}

// WithLogger sets the logger used for hook failures.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// New creates an engine with the base, table, string and math libraries.
func New(opts ...Option) *Engine {
	e := &Engine{
		timeout: DefaultTimeout,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = e.logger.With("component", "script")

	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	libs := []struct {
		name string
		open lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	}
	for _, lib := range libs {
		// The standard openers cannot fail on a fresh state.
		_ = L.CallByParam(lua.P{Fn: L.NewFunction(lib.open), NRet: 0, Protect: true}, lua.LString(lib.name))
	}
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require", "module"} {
		L.SetGlobal(name, lua.LNil)
	}
	e.L = L
	return e
}

// LoadString runs src as a chunk named name, defining its globals.
func (e *Engine) LoadString(name, src string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return ErrEngineClosed
	}
	fn, err := e.L.Load(stringReader(src), name)
	if err != nil {
		return fmt.Errorf("script: loading %s: %w", name, err)
	}
	e.L.Push(fn)
	if err := e.L.PCall(0, lua.MultRet, nil); err != nil {
		return &CallError{Function: name, Err: err}
	}
	e.L.SetTop(0)
	return nil
}

// LoadFile reads and runs a script file.
func (e *Engine) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("script: reading %s: %w", path, err)
	}
	return e.LoadString(path, string(data))
}

// Has reports whether name is a global function.
func (e *Engine) Has(name string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return false
	}
	_, ok := e.L.GetGlobal(name).(*lua.LFunction)
	return ok
}

// Call invokes the global function name and returns its first result as a
// Go value.
func (e *Engine) Call(ctx context.Context, name string, args ...any) (any, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return nil, ErrEngineClosed
	}
	fn, ok := e.L.GetGlobal(name).(*lua.LFunction)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUndefinedFunction, name)
	}

	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}
	e.L.SetContext(ctx)
	defer e.L.RemoveContext()

	e.L.Push(fn)
	for _, a := range args {
		e.L.Push(toLua(e.L, a))
	}
	if err := e.L.PCall(len(args), 1, nil); err != nil {
		e.L.SetTop(0)
		return nil, &CallError{Function: name, Err: err}
	}
	ret := e.L.Get(-1)
	e.L.Pop(1)
	return fromLua(ret), nil
}

// Close releases the Lua state.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	e.closed = true
	e.L.Close()
}
