package diff

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Op is the kind of a token change.
type Op int

const (
	OpEqual Op = iota
	OpRemove
	OpAdd
)

func (o Op) prefix() string {
	switch o {
	case OpRemove:
		return "-"
	case OpAdd:
		return "+"
	default:
		return " "
	}
}

// Change is one token of a class comparison.
type Change struct {
	Op    Op
	Token string
}

// Tokens compares two class lists token by token, keeping order.
func Tokens(from, to []string) []Change {
	dmp := diffmatchpatch.New()

	a, b, lines := dmp.DiffLinesToChars(joinLines(from), joinLines(to))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var changes []Change
	for _, d := range diffs {
		op := OpEqual
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			op = OpRemove
		case diffmatchpatch.DiffInsert:
			op = OpAdd
		}
		for _, token := range strings.Split(strings.TrimSuffix(d.Text, "\n"), "\n") {
			if token == "" {
				continue
			}
			changes = append(changes, Change{Op: op, Token: token})
		}
	}
	return changes
}

// Classes renders a unified-style listing of the token changes between from
// and to, one token per line. Identical lists yield "".
func Classes(from, to []string, fromLabel, toLabel string) string {
	changes := Tokens(from, to)

	changed := false
	for _, c := range changes {
		if c.Op != OpEqual {
			changed = true
			break
		}
	}
	if !changed {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "--- %s\n", fromLabel)
	fmt.Fprintf(&b, "+++ %s\n", toLabel)
	fmt.Fprintf(&b, "@@ -1,%d +1,%d @@\n", len(from), len(to))
	for _, c := range changes {
		b.WriteString(c.Op.prefix())
		b.WriteString(c.Token)
		b.WriteString("\n")
	}
	return b.String()
}

func joinLines(tokens []string) string {
	if len(tokens) == 0 {
		return ""
	}
	return strings.Join(tokens, "\n") + "\n"
}
