package executor

import (
	_ "embed"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/Berison/gocounter/registry"
	"github.com/Berison/gocounter/types"
)

//go:generate mockgen -package=executor -source=./printer.go -destination=./printer_mock.go
type printer interface {
	printValue(name types.DeclName, value int64)
	printDecls(decls []registry.Decl)
	printHelp()
}

//go:embed help.txt
var helpText string

var valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))

type defaultPrinter struct {
	out io.Writer
}

func newDefaultPrinter(out io.Writer) *defaultPrinter {
	return &defaultPrinter{out: out}
}

func (dp *defaultPrinter) printValue(_ types.DeclName, value int64) {
	fmt.Fprintf(dp.out, "%s\n", valueStyle.Render(strconv.FormatInt(value, 10)))
}

func (dp *defaultPrinter) printDecls(decls []registry.Decl) {
	if len(decls) == 0 {
		fmt.Fprintln(dp.out, "no variables declared")
		return
	}
	t := table.New().Headers("NAME", "TYPE", "COUNT")
	for _, decl := range decls {
		count := "-"
		if decl.Kind == registry.DeclKindCounter {
			count = strconv.FormatInt(decl.Counter.Count(), 10)
		}
		t.Row(string(decl.Name), decl.Kind.String(), count)
	}
	fmt.Fprintln(dp.out, t.String())
}

func (dp *defaultPrinter) printHelp() {
	fmt.Fprint(dp.out, helpText)
}
