package repl

import (
	_ "embed"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/kakkky/go-prompt"

	"github.com/Berison/gocounter/completer"
	"github.com/Berison/gocounter/config"
	"github.com/Berison/gocounter/executor"
	"github.com/Berison/gocounter/version"
)

//go:embed gocounter_ascii.txt
var ascii string

var bannerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)

// Repl は入力ループを持つ対話コンソール
// Run で開始し、Ctrl+C で終了する
type Repl struct {
	pt  *prompt.Prompt
	out io.Writer
}

// NewRepl はgo-promptにExecutorとCompleterを組み込んだReplを生成する
// onExit はCtrl+Cで終了する直前に呼ばれる
func NewRepl(completer *completer.Completer, executor *executor.Executor, cfg *config.Config, onExit func()) *Repl {
	pt := prompt.New(
		executor.Execute,
		completer.Complete,
		prompt.OptionTitle(cfg.Title),
		prompt.OptionPrefix(cfg.Prefix),
		prompt.OptionAddKeyBind(newKeyBinds(os.Stdout, onExit, os.Exit)...),
	)
	return &Repl{
		pt:  pt,
		out: os.Stdout,
	}
}

// Run はバナーを表示してから入力ループを開始する
func (r *Repl) Run() {
	printBanner(r.out)
	r.pt.Run()
}

func printBanner(w io.Writer) {
	fmt.Fprintln(w, bannerStyle.Render(fmt.Sprintf(ascii, version.VERSION)))
}

func newKeyBinds(w io.Writer, onExit func(), exit func(int)) []prompt.KeyBind {
	return []prompt.KeyBind{
		{
			Key: prompt.ControlC,
			Fn: func(_ *prompt.Buffer) {
				fmt.Fprintln(w, "\nExit on Ctrl+C")
				if onExit != nil {
					onExit()
				}
				exit(0)
			},
		},
	}
}
