package registry

import (
	"slices"

	"github.com/Berison/gocounter/errs"
	"github.com/Berison/gocounter/types"
)

// Registry はReplセッション中に宣言された変数を管理する
type Registry struct {
	decls []Decl
}

// NewRegistry はRegistryのインスタンスを生成する
func NewRegistry() *Registry {
	return &Registry{
		decls: []Decl{},
	}
}

// Declare は新しい変数を登録する
// 既に同名の変数がある場合は := と同じくエラーにする
func (r *Registry) Declare(decl Decl) error {
	if err := validateDecl(decl); err != nil {
		return err
	}
	if r.IsRegisteredDecl(decl.Name) {
		return errs.NewBadInputError("no new variables on left side of :=")
	}
	r.decls = append(r.decls, decl)
	return nil
}

// Assign は既存の変数に値を代入する
func (r *Registry) Assign(decl Decl) error {
	if err := validateDecl(decl); err != nil {
		return err
	}
	idx := r.index(decl.Name)
	if idx == -1 {
		return errs.NewBadInputError("undefined: " + string(decl.Name))
	}
	r.decls[idx] = decl
	return nil
}

// Lookup は指定された名前の宣言を返す
func (r *Registry) Lookup(name types.DeclName) (Decl, bool) {
	idx := r.index(name)
	if idx == -1 {
		return Decl{}, false
	}
	return r.decls[idx], true
}

// IsRegisteredDecl は指定された名前の宣言が登録されているかを返す
func (r *Registry) IsRegisteredDecl(name types.DeclName) bool {
	return r.index(name) != -1
}

// Decls は宣言順に並んだ宣言のコピーを返す
func (r *Registry) Decls() []Decl {
	return slices.Clone(r.decls)
}

func (r *Registry) index(name types.DeclName) int {
	return slices.IndexFunc(r.decls, func(d Decl) bool {
		return d.Name == name
	})
}

func validateDecl(decl Decl) error {
	switch {
	case decl.Name == "" || decl.Name == "_":
		return errs.NewBadInputError("cannot declare blank identifier")
	case decl.Kind == DeclKindCounter && decl.Counter == nil:
		return errs.NewInternalError("counter declaration without counter: " + string(decl.Name))
	case decl.Kind == DeclKindIncrementer && decl.Incrementer == nil:
		return errs.NewInternalError("incrementer declaration without function: " + string(decl.Name))
	case decl.Kind == DeclKindUnknown:
		return errs.NewInternalError("unknown declaration kind: " + string(decl.Name))
	}
	return nil
}
