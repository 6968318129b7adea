package variant

import "strings"

// Classifier maps a utility (modifiers already stripped) to its property
// group. An empty group means the utility never conflicts with anything.
type Classifier func(utility string) string

// Merger removes tokens that a later token in the same property group
// overrides, so the rendered output no longer depends on the CSS cascade.
// A Merger is immutable and safe for concurrent use.
type Merger struct {
	classify Classifier
	covers   map[string][]string
}

// NewMerger builds a Merger. covers lists, per group, the narrower groups a
// token of that group also overrides (padding overrides horizontal padding).
func NewMerger(classify Classifier, covers map[string][]string) *Merger {
	copied := make(map[string][]string, len(covers))
	for group, subs := range covers {
		copied[group] = append([]string(nil), subs...)
	}
	return &Merger{classify: classify, covers: copied}
}

// DefaultMerger returns a Merger for utility-first class vocabularies.
func DefaultMerger() *Merger {
	return NewMerger(ClassifyUtility, defaultCovers)
}

// Group returns the conflict key for token: its modifier prefix plus the
// property group of the bare utility. Tokens without a group return "".
func (m *Merger) Group(token string) string {
	modifiers, utility := splitModifiers(token)
	important := strings.HasPrefix(utility, "!")
	utility = strings.TrimPrefix(utility, "!")
	utility = strings.TrimPrefix(utility, "-")

	group := m.classify(utility)
	if group == "" {
		return ""
	}
	if important {
		modifiers += "!"
	}
	return modifiers + group
}

// Merge walks tokens from last to first and drops every token whose group was
// already claimed by a later token. Ungrouped tokens are kept as is.
func (m *Merger) Merge(tokens []string) []string {
	claimed := make(map[string]struct{}, len(tokens))
	keep := make([]bool, len(tokens))

	for i := len(tokens) - 1; i >= 0; i-- {
		key := m.Group(tokens[i])
		if key == "" {
			keep[i] = true
			continue
		}
		if _, ok := claimed[key]; ok {
			continue
		}
		keep[i] = true
		claimed[key] = struct{}{}

		prefix, group := splitGroupKey(key)
		for _, sub := range m.covers[group] {
			claimed[prefix+sub] = struct{}{}
		}
	}

	out := make([]string, 0, len(tokens))
	for i, token := range tokens {
		if keep[i] {
			out = append(out, token)
		}
	}
	return out
}

// splitModifiers separates "md:hover:bg-red-500" into "md:hover:" and
// "bg-red-500". Colons inside arbitrary-value brackets are not separators.
func splitModifiers(token string) (string, string) {
	depth := 0
	last := -1
	for i, r := range token {
		switch r {
		case '[':
			depth++
		case ']':
			if depth > 0 {
				depth--
			}
		case ':':
			if depth == 0 {
				last = i
			}
		}
	}
	if last < 0 {
		return "", token
	}
	return token[:last+1], token[last+1:]
}

func splitGroupKey(key string) (string, string) {
	i := strings.LastIndex(key, ":")
	prefix, group := key[:i+1], key[i+1:]
	if strings.HasPrefix(group, "!") {
		return prefix + "!", group[1:]
	}
	return prefix, group
}

var defaultCovers = map[string][]string{
	"p":         {"px", "py", "pt", "pr", "pb", "pl", "ps", "pe"},
	"px":        {"pr", "pl", "ps", "pe"},
	"py":        {"pt", "pb"},
	"m":         {"mx", "my", "mt", "mr", "mb", "ml", "ms", "me"},
	"mx":        {"mr", "ml", "ms", "me"},
	"my":        {"mt", "mb"},
	"gap":       {"gap-x", "gap-y"},
	"inset":     {"inset-x", "inset-y", "top", "right", "bottom", "left"},
	"inset-x":   {"right", "left"},
	"inset-y":   {"top", "bottom"},
	"size":      {"w", "h"},
	"rounded":   {"rounded-t", "rounded-r", "rounded-b", "rounded-l", "rounded-tl", "rounded-tr", "rounded-br", "rounded-bl"},
	"rounded-t": {"rounded-tl", "rounded-tr"},
	"rounded-r": {"rounded-tr", "rounded-br"},
	"rounded-b": {"rounded-br", "rounded-bl"},
	"rounded-l": {"rounded-tl", "rounded-bl"},
	"overflow":  {"overflow-x", "overflow-y"},
}

// Prefixes are matched in order, so longer prefixes come first.
var prefixGroups = []struct {
	prefix string
	group  string
}{
	{"min-w-", "min-w"}, {"max-w-", "max-w"}, {"min-h-", "min-h"}, {"max-h-", "max-h"},
	{"size-", "size"}, {"w-", "w"}, {"h-", "h"},
	{"px-", "px"}, {"py-", "py"}, {"pt-", "pt"}, {"pr-", "pr"}, {"pb-", "pb"}, {"pl-", "pl"}, {"ps-", "ps"}, {"pe-", "pe"}, {"p-", "p"},
	{"mx-", "mx"}, {"my-", "my"}, {"mt-", "mt"}, {"mr-", "mr"}, {"mb-", "mb"}, {"ml-", "ml"}, {"ms-", "ms"}, {"me-", "me"}, {"m-", "m"},
	{"gap-x-", "gap-x"}, {"gap-y-", "gap-y"}, {"gap-", "gap"},
	{"space-x-", "space-x"}, {"space-y-", "space-y"},
	{"inset-x-", "inset-x"}, {"inset-y-", "inset-y"}, {"inset-", "inset"},
	{"top-", "top"}, {"right-", "right"}, {"bottom-", "bottom"}, {"left-", "left"},
	{"rounded-tl-", "rounded-tl"}, {"rounded-tr-", "rounded-tr"}, {"rounded-br-", "rounded-br"}, {"rounded-bl-", "rounded-bl"},
	{"rounded-t-", "rounded-t"}, {"rounded-r-", "rounded-r"}, {"rounded-b-", "rounded-b"}, {"rounded-l-", "rounded-l"},
	{"rounded-", "rounded"},
	{"overflow-x-", "overflow-x"}, {"overflow-y-", "overflow-y"}, {"overflow-", "overflow"},
	{"opacity-", "opacity"}, {"z-", "z"}, {"leading-", "leading"}, {"tracking-", "tracking"},
	{"duration-", "duration"}, {"ease-", "ease"}, {"cursor-", "cursor"}, {"items-", "items"},
	{"justify-", "justify"}, {"self-", "self"}, {"basis-", "basis"}, {"order-", "order"},
	{"grid-cols-", "grid-cols"}, {"grid-rows-", "grid-rows"}, {"col-span-", "col-span"},
	{"ring-offset-", "ring-offset"}, {"shadow-", "shadow"},
}

var (
	displayUtilities  = setOf("block", "inline-block", "inline", "flex", "inline-flex", "grid", "inline-grid", "hidden", "contents", "table", "flow-root")
	positionUtilities = setOf("static", "fixed", "absolute", "relative", "sticky")
	textSizes         = setOf("xs", "sm", "base", "lg", "xl", "2xl", "3xl", "4xl", "5xl", "6xl", "7xl", "8xl", "9xl")
	textAligns        = setOf("left", "center", "right", "justify", "start", "end")
	fontWeights       = setOf("thin", "extralight", "light", "normal", "medium", "semibold", "bold", "extrabold", "black")
	bgLayout          = setOf("fixed", "local", "scroll", "auto", "cover", "contain", "center", "top", "bottom", "left", "right", "repeat", "no-repeat", "repeat-x", "repeat-y", "none")
	borderWidths      = setOf("0", "2", "4", "8")
	borderStyles      = setOf("solid", "dashed", "dotted", "double", "hidden", "none")
	ringWidths        = setOf("0", "1", "2", "4", "8", "inset")
	flexDirections    = setOf("row", "row-reverse", "col", "col-reverse")
	flexWraps         = setOf("wrap", "wrap-reverse", "nowrap")
)

// ClassifyUtility assigns property groups to common utility classes.
func ClassifyUtility(utility string) string {
	switch {
	case utility == "":
		return ""
	case has(displayUtilities, utility):
		return "display"
	case has(positionUtilities, utility):
		return "position"
	case utility == "visible" || utility == "invisible":
		return "visibility"
	case utility == "rounded":
		return "rounded"
	case utility == "border":
		return "border-w"
	case utility == "ring":
		return "ring-w"
	case utility == "shadow":
		return "shadow"
	}

	if rest, ok := strings.CutPrefix(utility, "text-"); ok {
		switch {
		case has(textSizes, rest):
			return "font-size"
		case has(textAligns, rest):
			return "text-align"
		default:
			return "text-color"
		}
	}
	if rest, ok := strings.CutPrefix(utility, "font-"); ok {
		if has(fontWeights, rest) {
			return "font-weight"
		}
		return "font-family"
	}
	if rest, ok := strings.CutPrefix(utility, "bg-"); ok {
		if has(bgLayout, rest) || strings.HasPrefix(rest, "gradient-") {
			return "bg-layout-" + rest
		}
		return "bg-color"
	}
	if rest, ok := strings.CutPrefix(utility, "border-"); ok {
		switch {
		case has(borderWidths, rest):
			return "border-w"
		case has(borderStyles, rest):
			return "border-style"
		case rest != "" && strings.ContainsRune("tblrxy", rune(rest[0])) && (len(rest) == 1 || rest[1] == '-'):
			return "border-side-" + rest[:1]
		default:
			return "border-color"
		}
	}
	if rest, ok := strings.CutPrefix(utility, "ring-"); ok && !strings.HasPrefix(rest, "offset-") {
		if has(ringWidths, rest) {
			return "ring-w"
		}
		return "ring-color"
	}
	if rest, ok := strings.CutPrefix(utility, "flex-"); ok {
		switch {
		case has(flexDirections, rest):
			return "flex-direction"
		case has(flexWraps, rest):
			return "flex-wrap"
		default:
			return "flex"
		}
	}

	for _, pg := range prefixGroups {
		if strings.HasPrefix(utility, pg.prefix) {
			return pg.group
		}
	}
	return ""
}

func setOf(values ...string) map[string]struct{} {
	out := make(map[string]struct{}, len(values))
	for _, v := range values {
		out[v] = struct{}{}
	}
	return out
}

func has(set map[string]struct{}, value string) bool {
	_, ok := set[value]
	return ok
}
