package executor

import (
	"fmt"
	"go/ast"
	"go/token"

	"github.com/Berison/gocounter/errs"
	"github.com/Berison/gocounter/registry"
	"github.com/Berison/gocounter/types"
)

const (
	counterPkgName types.PkgName = "counter"

	funcNameNew         types.FuncName = "New"
	funcNameIncrementer types.FuncName = "Incrementer"

	methodNameIncrement types.MethodName = "Increment"
	methodNameCount     types.MethodName = "Count"

	blankIdent types.DeclName = "_"
)

func (e *Executor) evalStmt(stmt ast.Stmt) error {
	switch stmtV := stmt.(type) {
	case *ast.AssignStmt:
		return e.evalAssignStmt(stmtV)
	case *ast.DeclStmt:
		return e.evalDeclStmt(stmtV)
	case *ast.ExprStmt:
		return e.evalExprStmt(stmtV)
	}
	return errs.NewBadInputError("unsupported statement")
}

// 代入文と短縮変数宣言を評価する
// 右辺をすべて評価してから左辺に束縛するので、a, b = b, a のような入れ替えもできる
func (e *Executor) evalAssignStmt(assignStmt *ast.AssignStmt) error {
	if assignStmt.Tok != token.DEFINE && assignStmt.Tok != token.ASSIGN {
		return errs.NewBadInputError("unsupported operator: " + assignStmt.Tok.String())
	}
	if len(assignStmt.Lhs) != len(assignStmt.Rhs) {
		return errs.NewBadInputError(fmt.Sprintf("assignment mismatch: %d variables but %d values", len(assignStmt.Lhs), len(assignStmt.Rhs)))
	}

	names := make([]types.DeclName, 0, len(assignStmt.Lhs))
	seen := make(map[types.DeclName]struct{}, len(assignStmt.Lhs))
	for _, lhs := range assignStmt.Lhs {
		lhsIdent, ok := lhs.(*ast.Ident)
		if !ok {
			return errs.NewBadInputError("cannot assign to " + exprString(lhs))
		}
		name := types.DeclName(lhsIdent.Name)
		// := では同じ名前を左辺に2度書けない(= では書ける)
		if _, dup := seen[name]; dup && name != blankIdent && assignStmt.Tok == token.DEFINE {
			return errs.NewBadInputError(string(name) + " repeated on left side of :=")
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}

	switch assignStmt.Tok {
	case token.DEFINE:
		if !e.hasNewDecl(names) {
			return errs.NewBadInputError("no new variables on left side of :=")
		}
	case token.ASSIGN:
		for _, name := range names {
			if name != blankIdent && !e.declRegistry.IsRegisteredDecl(name) {
				return errs.NewBadInputError("undefined: " + string(name))
			}
		}
	}

	decls, err := e.evalValues(names, assignStmt.Rhs)
	if err != nil {
		return err
	}
	for _, decl := range decls {
		if err := e.bind(decl); err != nil {
			return err
		}
	}
	return nil
}

// var宣言を評価する
func (e *Executor) evalDeclStmt(declStmt *ast.DeclStmt) error {
	genDecl, ok := declStmt.Decl.(*ast.GenDecl)
	if !ok || genDecl.Tok != token.VAR {
		return errs.NewBadInputError("only var declarations are supported")
	}

	for _, spec := range genDecl.Specs {
		valueSpec, ok := spec.(*ast.ValueSpec)
		if !ok {
			continue
		}
		if valueSpec.Type != nil {
			return errs.NewBadInputError("explicit types are not supported: " + exprString(valueSpec.Type))
		}
		if len(valueSpec.Names) != len(valueSpec.Values) {
			return errs.NewBadInputError(fmt.Sprintf("assignment mismatch: %d variables but %d values", len(valueSpec.Names), len(valueSpec.Values)))
		}

		names := make([]types.DeclName, 0, len(valueSpec.Names))
		seen := make(map[types.DeclName]struct{}, len(valueSpec.Names))
		for _, ident := range valueSpec.Names {
			name := types.DeclName(ident.Name)
			if name == blankIdent {
				names = append(names, name)
				continue
			}
			if _, dup := seen[name]; dup || e.declRegistry.IsRegisteredDecl(name) {
				return errs.NewBadInputError(string(name) + " redeclared in this block")
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}

		decls, err := e.evalValues(names, valueSpec.Values)
		if err != nil {
			return err
		}
		for _, decl := range decls {
			if err := e.bind(decl); err != nil {
				return err
			}
		}
	}
	return nil
}

// 式文を評価し、値を返す呼び出しであれば結果を表示する
func (e *Executor) evalExprStmt(exprStmt *ast.ExprStmt) error {
	switch exprV := ast.Unparen(exprStmt.X).(type) {
	case *ast.Ident:
		// 変数名のみの入力はカウンタの現在値を表示する
		decl, err := e.lookup(types.DeclName(exprV.Name))
		if err != nil {
			return err
		}
		if decl.Kind != registry.DeclKindCounter {
			return errs.NewBadInputError(fmt.Sprintf("%s (variable of type %s) is not used", decl.Name, decl.Kind))
		}
		e.printValue(decl.Name, decl.Counter.Count())
		return nil
	case *ast.CallExpr:
		return e.evalCallExpr(exprV)
	}
	return errs.NewBadInputError(exprString(exprStmt.X) + " is not used")
}

func (e *Executor) evalCallExpr(callExpr *ast.CallExpr) error {
	switch funV := ast.Unparen(callExpr.Fun).(type) {
	// inc() のようなインクリメント関数の呼び出し
	case *ast.Ident:
		decl, err := e.lookup(types.DeclName(funV.Name))
		if err != nil {
			return err
		}
		if decl.Kind != registry.DeclKindIncrementer {
			return errs.NewBadInputError(fmt.Sprintf("invalid operation: cannot call non-function %s (variable of type %s)", decl.Name, decl.Kind))
		}
		if len(callExpr.Args) > 0 {
			return errs.NewBadInputError("too many arguments in call to " + string(decl.Name))
		}
		e.printValue(decl.Name, decl.Incrementer())
		return nil

	// c.Increment() のようなメソッド呼び出し、または counter.New() のような関数呼び出し
	case *ast.SelectorExpr:
		baseIdent, ok := funV.X.(*ast.Ident)
		if !ok {
			return errs.NewBadInputError("unsupported call: " + exprString(callExpr))
		}
		if types.PkgName(baseIdent.Name) == counterPkgName && !e.declRegistry.IsRegisteredDecl(types.DeclName(baseIdent.Name)) {
			if _, err := e.evalCounterFuncCall("", callExpr, funV); err != nil {
				return err
			}
			return errs.NewBadInputError(exprString(callExpr) + " (value of type " + kindOfCounterFunc(funV).String() + ") is not used")
		}

		decl, err := e.lookup(types.DeclName(baseIdent.Name))
		if err != nil {
			return err
		}
		if decl.Kind != registry.DeclKindCounter {
			return errs.NewBadInputError(fmt.Sprintf("%s undefined (type %s has no field or method %s)", exprString(funV), decl.Kind, funV.Sel.Name))
		}
		if len(callExpr.Args) > 0 {
			return errs.NewBadInputError("too many arguments in call to " + exprString(funV))
		}

		switch types.MethodName(funV.Sel.Name) {
		case methodNameIncrement:
			e.printValue(decl.Name, decl.Counter.Increment())
		case methodNameCount:
			e.printValue(decl.Name, decl.Counter.Count())
		default:
			return errs.NewBadInputError(fmt.Sprintf("%s undefined (type %s has no field or method %s)", exprString(funV), decl.Kind, funV.Sel.Name))
		}
		return nil
	}
	return errs.NewBadInputError("unsupported call: " + exprString(callExpr))
}

// 右辺の式をすべて評価し、左辺の名前で束縛する宣言を返す
func (e *Executor) evalValues(names []types.DeclName, values []ast.Expr) ([]registry.Decl, error) {
	decls := make([]registry.Decl, 0, len(values))
	for i, value := range values {
		decl, err := e.evalValue(names[i], value)
		if err != nil {
			return nil, err
		}
		decls = append(decls, decl)
	}
	return decls, nil
}

func (e *Executor) evalValue(name types.DeclName, expr ast.Expr) (registry.Decl, error) {
	switch exprV := ast.Unparen(expr).(type) {
	// 既存の変数の別名
	case *ast.Ident:
		decl, err := e.lookup(types.DeclName(exprV.Name))
		if err != nil {
			return registry.Decl{}, err
		}
		return decl.Rename(name), nil
	case *ast.CallExpr:
		funV, ok := ast.Unparen(exprV.Fun).(*ast.SelectorExpr)
		if !ok {
			break
		}
		baseIdent, ok := funV.X.(*ast.Ident)
		if !ok {
			break
		}
		if types.PkgName(baseIdent.Name) == counterPkgName && !e.declRegistry.IsRegisteredDecl(types.DeclName(baseIdent.Name)) {
			return e.evalCounterFuncCall(name, exprV, funV)
		}
		if _, err := e.lookup(types.DeclName(baseIdent.Name)); err != nil {
			return registry.Decl{}, err
		}
		// メソッドの戻り値はint64なので変数として保持しない
		return registry.Decl{}, errs.NewBadInputError("only counter.New() and counter.Incrementer() results can be declared: " + exprString(expr))
	}
	return registry.Decl{}, errs.NewBadInputError("unsupported value: " + exprString(expr))
}

// counterパッケージの関数呼び出しを評価する
func (e *Executor) evalCounterFuncCall(name types.DeclName, callExpr *ast.CallExpr, funV *ast.SelectorExpr) (registry.Decl, error) {
	funcName := types.FuncName(funV.Sel.Name)
	if funcName != funcNameNew && funcName != funcNameIncrementer {
		return registry.Decl{}, errs.NewBadInputError("undefined: " + exprString(funV))
	}
	if len(callExpr.Args) > 0 {
		return registry.Decl{}, errs.NewBadInputError("too many arguments in call to " + exprString(funV))
	}
	if funcName == funcNameIncrementer {
		return registry.NewIncrementerDecl(name, e.newIncrementer(name)), nil
	}
	return registry.NewCounterDecl(name, e.newCounter(name)), nil
}

func kindOfCounterFunc(funV *ast.SelectorExpr) registry.DeclKind {
	switch types.FuncName(funV.Sel.Name) {
	case funcNameNew:
		return registry.DeclKindCounter
	case funcNameIncrementer:
		return registry.DeclKindIncrementer
	}
	return registry.DeclKindUnknown
}

// 宣言済みなら代入、未宣言なら新規登録する
// ブランク識別子は評価だけ行い登録しない
func (e *Executor) bind(decl registry.Decl) error {
	if decl.Name == blankIdent {
		return nil
	}
	if e.declRegistry.IsRegisteredDecl(decl.Name) {
		return e.declRegistry.Assign(decl)
	}
	return e.declRegistry.Declare(decl)
}

func (e *Executor) hasNewDecl(names []types.DeclName) bool {
	for _, name := range names {
		if name != blankIdent && !e.declRegistry.IsRegisteredDecl(name) {
			return true
		}
	}
	return false
}

func (e *Executor) lookup(name types.DeclName) (registry.Decl, error) {
	if name == blankIdent {
		return registry.Decl{}, errs.NewBadInputError("cannot use _ as value")
	}
	decl, ok := e.declRegistry.Lookup(name)
	if !ok {
		return registry.Decl{}, errs.NewBadInputError("undefined: " + string(name))
	}
	return decl, nil
}
