package completer

import (
	"strings"

	"github.com/kakkky/go-prompt"
)

type suggestionBuilder struct {
	// go-promptはカーソル直前の空白区切りの単語全体を置き換えるため、
	// 補完対象より前にあるその単語の一部をTextの先頭に残す
	textPrefix string
	input      input
}

type input struct {
	raw          string // 補完対象の入力
	basePart     string // セレクタ式のベース部分
	selectorPart string // セレクタ式のセレクタ部分
}

type suggestType int

const (
	suggestTypeUnknown suggestType = iota
	suggestTypePackage
	suggestTypeVariable
	suggestTypeFunction
	suggestTypeMethod
	suggestTypeCommand
)

func newSuggestionBuilder(rawInput string) *suggestionBuilder {
	var textPrefix string
	// ";" 区切りで複数の文が入力されている場合、最後の文だけを補完対象とする
	if pos := strings.LastIndex(rawInput, ";"); pos != -1 {
		if wordStart := strings.LastIndex(rawInput, " ") + 1; wordStart <= pos {
			textPrefix = rawInput[wordStart : pos+1]
		}
		rawInput = strings.TrimLeft(rawInput[pos+1:], " ")
	}
	// 変数宣言をしようとしている場合、"= "以降の部分を補完対象とする
	if pos, found := findEqualAndSpacePos(rawInput); found {
		rawInput = rawInput[pos+2:]
	}

	sb := &suggestionBuilder{
		textPrefix: textPrefix,
		input: input{
			raw: rawInput,
		},
	}

	if strings.Contains(rawInput, ".") {
		parts := strings.SplitN(rawInput, ".", 2)
		sb.input.basePart = parts[0]
		sb.input.selectorPart = parts[1]
	}
	return sb
}

// "= "の位置を探し、見つかったらその位置とtrueを返す
func findEqualAndSpacePos(input string) (pos int, found bool) {
	equalPos := strings.LastIndex(input, "= ")
	if equalPos == -1 {
		return -1, false
	}
	return equalPos, true
}

func (sb *suggestionBuilder) build(candidate string, suggestType suggestType, description string, appendSuggestText ...string) prompt.Suggest {
	return prompt.Suggest{
		Text:        sb.textPrefix + sb.buildSuggestText(candidate) + strings.Join(appendSuggestText, ""),
		DisplayText: candidate,
		Description: convertSuggestTypeToString(suggestType) + ": " + description,
	}
}

func (sb *suggestionBuilder) buildSuggestText(candidate string) string {
	// 入力の末尾と候補の先頭が最長一致する部分を候補で置き換える
	maxLen := min(len(sb.input.raw), len(candidate))
	matchLen := 0
	for i := 1; i <= maxLen; i++ {
		if strings.HasSuffix(sb.input.raw, candidate[:i]) {
			matchLen = i
		}
	}
	return strings.TrimSuffix(sb.input.raw, candidate[:matchLen]) + candidate
}

func convertSuggestTypeToString(suggestType suggestType) string {
	switch suggestType {
	case suggestTypePackage:
		return "Package"
	case suggestTypeVariable:
		return "Variable"
	case suggestTypeFunction:
		return "Function"
	case suggestTypeMethod:
		return "Method"
	case suggestTypeCommand:
		return "Command"
	default:
		return "Unknown"
	}
}

func (sb *suggestionBuilder) isSelector() bool {
	return strings.Contains(sb.input.raw, ".")
}

func (sb *suggestionBuilder) isCommand() bool {
	return strings.HasPrefix(sb.input.raw, ":")
}
