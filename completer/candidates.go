package completer

import (
	"github.com/Berison/gocounter/executor"
	"github.com/Berison/gocounter/registry"
	"github.com/Berison/gocounter/types"
)

type funcSet struct {
	Name        types.FuncName
	Description string
}

type methodSet struct {
	Name        types.MethodName
	Description string
}

type commandSet struct {
	Name        types.CommandName
	Description string
}

// candidates は補完候補の元になる名前の集合
// 宣言された変数は実行中に増えるため、ここには含めずRegistryから都度引く
type candidates struct {
	pkgs     []types.PkgName
	funcs    map[types.PkgName][]funcSet
	methods  map[registry.DeclKind][]methodSet
	commands []commandSet
}

func newCandidates() *candidates {
	commands := make([]commandSet, 0, len(executor.Commands))
	for _, cmd := range executor.Commands {
		commands = append(commands, commandSet{Name: cmd.Name, Description: cmd.Description})
	}
	return &candidates{
		pkgs: []types.PkgName{"counter"},
		funcs: map[types.PkgName][]funcSet{
			"counter": {
				{Name: "New", Description: "func() *counter.Counter"},
				{Name: "Incrementer", Description: "func() func() int64"},
			},
		},
		methods: map[registry.DeclKind][]methodSet{
			registry.DeclKindCounter: {
				{Name: "Increment", Description: "func() int64"},
				{Name: "Count", Description: "func() int64"},
			},
		},
		commands: commands,
	}
}
