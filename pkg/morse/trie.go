package morse

import (
	"fmt"
	"regexp"
	"strings"
)

// Node is one prefix position in the code tree. Sym is zero for
// intermediate nodes that no code terminates at.
type Node struct {
	Sym  rune
	Dot  *Node
	Dash *Node
}

// Trie is the binary decode tree built from Table. Read-only after
// NewTrie returns, so it is safe to share between goroutines.
type Trie struct {
	root *Node
}

// NewTrie builds the decode tree from Table. Insertion order does not
// matter: every symbol has exactly one code, so any order produces the
// same tree.
func NewTrie() *Trie {
	root := &Node{}
	for sym, code := range Table {
		node := root
		for _, mark := range code {
			switch mark {
			case Dot:
				if node.Dot == nil {
					node.Dot = &Node{}
				}
				node = node.Dot
			case Dash:
				if node.Dash == nil {
					node.Dash = &Node{}
				}
				node = node.Dash
			}
		}
		node.Sym = sym
	}
	return &Trie{root: root}
}

// Lookup resolves one dot/dash code to its symbol by walking the tree.
// Returns false if the walk runs off the tree, hits a non-mark byte, or
// ends on a node no code terminates at. Never mutates the tree.
func (t *Trie) Lookup(code string) (rune, bool) {
	node := t.root
	for _, mark := range code {
		switch mark {
		case Dot:
			node = node.Dot
		case Dash:
			node = node.Dash
		default:
			return 0, false
		}
		if node == nil {
			return 0, false
		}
	}
	if node.Sym == 0 {
		return 0, false
	}
	return node.Sym, true
}

// MarkError reports a non-mark byte found inside a code during decoding.
// It is a diagnostic, not a failure: the code it appeared in decodes to
// the Unresolved placeholder and decoding continues.
type MarkError struct {
	Mark rune
	Code string
}

func (e *MarkError) Error() string {
	return fmt.Sprintf("invalid morse symbol %q in code %q", e.Mark, e.Code)
}

// wordSep matches any run of two or more blanks. A single space separates
// character codes; anything wider is a word boundary regardless of the
// exact width, which absorbs sloppy double/quadruple spacing.
var wordSep = regexp.MustCompile(`\s{2,}`)

// Decode translates a whole morse message back to text. Character codes
// are separated by single spaces and words by wider gaps. Codes the tree
// cannot resolve become the Unresolved placeholder; decoding is
// best-effort per character and never fails as a whole. The returned
// diagnostics list any non-mark bytes that were skipped over.
func (t *Trie) Decode(message string) (string, []error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", nil
	}

	var diags []error
	var words []string
	for _, word := range wordSep.Split(message, -1) {
		var sb strings.Builder
		for _, code := range strings.Fields(word) {
			if bad := firstNonMark(code); bad != 0 {
				diags = append(diags, &MarkError{Mark: bad, Code: code})
			}
			if sym, ok := t.Lookup(code); ok {
				sb.WriteRune(sym)
			} else {
				sb.WriteRune(Unresolved)
			}
		}
		if sb.Len() > 0 {
			words = append(words, sb.String())
		}
	}
	return strings.Join(words, " "), diags
}

func firstNonMark(code string) rune {
	for _, r := range code {
		if r != Dot && r != Dash {
			return r
		}
	}
	return 0
}
