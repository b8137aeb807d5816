package executor

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"
	"strings"

	"github.com/Berison/gocounter/counter"
	"github.com/Berison/gocounter/errs"
	"github.com/Berison/gocounter/registry"
	"github.com/Berison/gocounter/types"
)

// Executor はREPLセッション内での入力の評価を担う
// go-promptのExecutorインターフェースを実装する
type Executor struct {
	declRegistry *registry.Registry
	logger       *slog.Logger
	printer
}

// NewExecutor はExecutorのインスタンスを生成する
func NewExecutor(declRegistry *registry.Registry, logger *slog.Logger) *Executor {
	return &Executor{
		declRegistry: declRegistry,
		logger:       logger,
		printer:      newDefaultPrinter(os.Stdout),
	}
}

// ====================以下にメソッドを定義する======================

// Execute は入力された文を評価する
// エラーは表示するだけで、REPLのループは止めない
func (e *Executor) Execute(input string) {
	defer func() {
		if r := recover(); r != nil {
			err := recoveredError(r)
			e.logger.Error("executor.panic", "input", input, "error", err, "stack", string(debug.Stack()))
			errs.HandleError(err)
		}
	}()

	input = strings.TrimSpace(input)
	if input == "" {
		return
	}

	if err := e.eval(input); err != nil {
		e.logger.Debug("executor.rejected", "input", input, "error", err)
		errs.HandleError(err)
		return
	}
	e.logger.Info("executor.evaluated", "input", input)
}

// DeclareCounter は入力を介さずにカウンタを宣言する
// 設定ファイルで指定されたカウンタを起動時に用意するために使う
func (e *Executor) DeclareCounter(name types.DeclName) error {
	return e.declRegistry.Declare(registry.NewCounterDecl(name, e.newCounter(name)))
}

func (e *Executor) eval(input string) error {
	if strings.HasPrefix(input, commandPrefix) {
		return e.runCommand(types.CommandName(strings.TrimPrefix(input, commandPrefix)))
	}

	stmts, err := parseInput(input)
	if err != nil {
		return err
	}
	// ";" 区切りの複数文は先頭から順に評価し、最初のエラーで止める
	for _, stmt := range stmts {
		if err := e.evalStmt(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (e *Executor) newCounter(name types.DeclName) *counter.Counter {
	return counter.New(counter.WithObserver(e.observer(name)))
}

func (e *Executor) newIncrementer(name types.DeclName) func() int64 {
	return counter.Incrementer(counter.WithObserver(e.observer(name)))
}

func (e *Executor) observer(name types.DeclName) func(int64) {
	return func(v int64) {
		e.logger.Info("counter.incremented", "name", string(name), "count", v)
	}
}

func recoveredError(r any) error {
	err, ok := r.(error)
	if !ok {
		return errs.NewInternalError(fmt.Sprintf("%v", r))
	}
	if errors.Is(err, counter.ErrOverflow) {
		return errs.NewInternalError("failed to increment").Wrap(err)
	}
	return errs.NewInternalError("panic during evaluation").Wrap(err)
}
