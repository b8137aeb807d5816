package completer

import (
	"slices"
	"strings"
	"unicode"

	"github.com/kakkky/go-prompt"

	"github.com/Berison/gocounter/registry"
	"github.com/Berison/gocounter/types"
)

// Completer は補完エンジンを担う
// go-promptのCompleterインターフェースを実装している
type Completer struct {
	candidates   *candidates
	declRegistry *registry.Registry
}

// NewCompleter はCompleterのインスタンスを生成する
func NewCompleter(declRegistry *registry.Registry) *Completer {
	return &Completer{
		candidates:   newCandidates(),
		declRegistry: declRegistry,
	}
}

// Complete はgo-promptのCompleterインターフェースを実装するメソッドで、補完候補を返す
func (c *Completer) Complete(input prompt.Document) []prompt.Suggest {
	sb := newSuggestionBuilder(input.Text)

	switch {
	case sb.isCommand():
		return c.findCommandSuggestions(sb)
	case sb.isSelector():
		return slices.Concat(c.findFunctionSuggestions(sb), c.findMethodSuggestions(sb))
	}
	return slices.Concat(c.findVariableSuggestions(sb), c.findPackageSuggestions(sb))
}

func (c *Completer) findPackageSuggestions(sb *suggestionBuilder) []prompt.Suggest {
	suggestions := make([]prompt.Suggest, 0)
	for _, pkg := range c.candidates.pkgs {
		// 同名の変数が宣言されている場合はパッケージが隠れる
		if c.declRegistry.IsRegisteredDecl(types.DeclName(pkg)) {
			continue
		}
		if strings.HasPrefix(string(pkg), sb.input.raw) {
			suggestions = append(suggestions, sb.build(string(pkg), suggestTypePackage, string(pkg)))
		}
	}
	return suggestions
}

func (c *Completer) findVariableSuggestions(sb *suggestionBuilder) []prompt.Suggest {
	suggestions := make([]prompt.Suggest, 0)
	for _, decl := range c.declRegistry.Decls() {
		if strings.HasPrefix(string(decl.Name), sb.input.raw) {
			suggestions = append(suggestions, sb.build(string(decl.Name), suggestTypeVariable, decl.Kind.String()))
		}
	}
	return suggestions
}

func (c *Completer) findFunctionSuggestions(sb *suggestionBuilder) []prompt.Suggest {
	suggestions := make([]prompt.Suggest, 0)
	if c.declRegistry.IsRegisteredDecl(types.DeclName(sb.input.basePart)) {
		return suggestions
	}
	for _, funcSet := range c.candidates.funcs[types.PkgName(sb.input.basePart)] {
		if strings.HasPrefix(string(funcSet.Name), sb.input.selectorPart) && !isPrivate(string(funcSet.Name)) {
			suggestions = append(suggestions, sb.build(string(funcSet.Name), suggestTypeFunction, funcSet.Description, "()"))
		}
	}
	return suggestions
}

// 宣言された変数の種類に応じてメソッド候補を返す
func (c *Completer) findMethodSuggestions(sb *suggestionBuilder) []prompt.Suggest {
	suggestions := make([]prompt.Suggest, 0)
	decl, ok := c.declRegistry.Lookup(types.DeclName(sb.input.basePart))
	if !ok {
		return suggestions
	}
	for _, methodSet := range c.candidates.methods[decl.Kind] {
		if strings.HasPrefix(string(methodSet.Name), sb.input.selectorPart) && !isPrivate(string(methodSet.Name)) {
			suggestions = append(suggestions, sb.build(string(methodSet.Name), suggestTypeMethod, methodSet.Description, "()"))
		}
	}
	return suggestions
}

func (c *Completer) findCommandSuggestions(sb *suggestionBuilder) []prompt.Suggest {
	suggestions := make([]prompt.Suggest, 0)
	for _, commandSet := range c.candidates.commands {
		candidate := ":" + string(commandSet.Name)
		if strings.HasPrefix(candidate, sb.input.raw) {
			suggestions = append(suggestions, sb.build(candidate, suggestTypeCommand, commandSet.Description))
		}
	}
	return suggestions
}

// 非公開の関数やメソッドを非表示にする
func isPrivate(input string) bool {
	return unicode.IsLower([]rune(input)[0])
}
