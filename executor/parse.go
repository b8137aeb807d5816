package executor

import (
	"go/ast"
	"go/parser"
	"go/token"
	gotypes "go/types"

	"github.com/Berison/gocounter/errs"
)

func parseInput(input string) ([]ast.Stmt, error) {
	// 入力値をmain関数でラップしてparseする
	fset := token.NewFileSet()
	wrappedInput := "package main\nfunc main() {\n" + input + "\n}"
	wrappedInputAst, err := parser.ParseFile(fset, "", wrappedInput, parser.AllErrors)
	if err != nil {
		return nil, errs.NewBadInputError("invalid input syntax").Wrap(err)
	}

	var stmts []ast.Stmt
	for _, decl := range wrappedInputAst.Decls {
		if funcDecl, ok := decl.(*ast.FuncDecl); ok && funcDecl.Name.Name == "main" {
			for _, stmt := range funcDecl.Body.List {
				if _, empty := stmt.(*ast.EmptyStmt); empty {
					continue
				}
				stmts = append(stmts, stmt)
			}
		}
	}
	if len(stmts) == 0 {
		return nil, errs.NewBadInputError("invalid input syntax")
	}
	return stmts, nil
}

func exprString(expr ast.Expr) string {
	return gotypes.ExprString(expr)
}
