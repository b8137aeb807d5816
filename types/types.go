package types

// PkgName はパッケージ名を表す。
type PkgName string

// DeclName はREPL内で宣言された変数名を表す。
type DeclName string

// FuncName はパッケージ関数名を表す。
type FuncName string

// MethodName はメソッド名を表す。
type MethodName string

// CommandName は ":" から始まるメタコマンド名を表す。
type CommandName string
