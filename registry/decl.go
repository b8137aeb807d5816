package registry

import (
	"github.com/Berison/gocounter/counter"
	"github.com/Berison/gocounter/types"
)

// DeclKind は宣言された値の種類を表す
type DeclKind int

const (
	DeclKindUnknown     DeclKind = iota // 種類が不明な場合
	DeclKindCounter                     // counter.New()で生成したカウンタ
	DeclKindIncrementer                 // counter.Incrementer()で生成した関数
)

func (k DeclKind) String() string {
	switch k {
	case DeclKindCounter:
		return "*counter.Counter"
	case DeclKindIncrementer:
		return "func() int64"
	default:
		return "unknown"
	}
}

// Decl はReplセッション内で宣言された変数を表す
// Kindに応じてCounterかIncrementerのいずれかのみがセットされる
type Decl struct {
	Name        types.DeclName
	Kind        DeclKind
	Counter     *counter.Counter
	Incrementer func() int64
}

// NewCounterDecl はカウンタを保持するDeclを生成する
func NewCounterDecl(name types.DeclName, c *counter.Counter) Decl {
	return Decl{
		Name:    name,
		Kind:    DeclKindCounter,
		Counter: c,
	}
}

// NewIncrementerDecl はインクリメント関数を保持するDeclを生成する
func NewIncrementerDecl(name types.DeclName, inc func() int64) Decl {
	return Decl{
		Name:        name,
		Kind:        DeclKindIncrementer,
		Incrementer: inc,
	}
}

// Rename は同じ値を別名で参照するDeclを返す
// 値そのものは共有されるため、どちらの名前から操作しても同じ状態が見える
func (d Decl) Rename(name types.DeclName) Decl {
	d.Name = name
	return d
}
