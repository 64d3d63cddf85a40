package eval

import (
	"basic/parser"
	"basic/types"
	"fmt"

	"github.com/google/btree"
)

// Prepared is a parsed program with the tables execution needs
type Prepared struct {
	Program *parser.Program
	Next    []int          // next-link per statement, -1 after the last
	Labels  map[string]int // label -> statement index
	Data    []parser.Expr  // DATA items in program order

	// labels and NEXT statements ordered by statement index, for forward scans
	marks *btree.BTreeG[marker]
}

// marker records a statement that WHILE or FOR may need to scan forward to
type marker struct {
	index int
	label string // label on the statement, if any
	next  string // loop variable when the statement is NEXT
}

func markerLess(a, b marker) bool { return a.index < b.index }

// Prepare runs the preprocessing passes over a parsed program
func Prepare(prog *parser.Program) (*Prepared, error) {
	labels, err := IndexLabels(prog.Statements)
	if err != nil {
		return nil, err
	}
	return &Prepared{
		Program: prog,
		Next:    Link(prog.Statements),
		Labels:  labels,
		Data:    FlattenData(prog.Statements),
		marks:   indexMarkers(prog.Statements),
	}, nil
}

// Link computes next-links by walking the statements in reverse, so each
// statement points at the one visited before it
func Link(stmts []parser.Stmt) []int {
	next := make([]int, len(stmts))
	following := -1
	for i := len(stmts) - 1; i >= 0; i-- {
		next[i] = following
		following = i
	}
	return next
}

// IndexLabels maps each label to the index of the statement it names
func IndexLabels(stmts []parser.Stmt) (map[string]int, error) {
	labels := make(map[string]int)
	for i, stmt := range stmts {
		l, ok := stmt.(*parser.LabeledStmt)
		if !ok {
			continue
		}
		if first, dup := labels[l.Label]; dup {
			return nil, &RuntimeError{
				Code: types.E_DUPLABEL,
				Pos:  l.Pos,
				Msg:  fmt.Sprintf("label %s already defined at %s", l.Label, stmts[first].Position()),
			}
		}
		labels[l.Label] = i
	}
	return labels, nil
}

// FlattenData collects the items of every DATA statement, labeled or not
func FlattenData(stmts []parser.Stmt) []parser.Expr {
	var data []parser.Expr
	for _, stmt := range stmts {
		if d, ok := parser.Unwrap(stmt).(*parser.DataStmt); ok {
			data = append(data, d.Items...)
		}
	}
	return data
}

func indexMarkers(stmts []parser.Stmt) *btree.BTreeG[marker] {
	marks := btree.NewG(8, markerLess)
	for i, stmt := range stmts {
		m := marker{index: i}
		if l, ok := stmt.(*parser.LabeledStmt); ok {
			m.label = l.Label
		}
		if n, ok := parser.Unwrap(stmt).(*parser.NextStmt); ok {
			m.next = n.Variable.Name
		}
		if m.label != "" || m.next != "" {
			marks.ReplaceOrInsert(m)
		}
	}
	return marks
}

// scan returns the first marked statement after from that satisfies match.
// Next-links follow statement order, so this is the forward chain walk.
func (p *Prepared) scan(from int, match func(marker) bool) (int, bool) {
	found := -1
	p.marks.AscendGreaterOrEqual(marker{index: from + 1}, func(m marker) bool {
		if match(m) {
			found = m.index
			return false
		}
		return true
	})
	return found, found >= 0
}

// ScanLabel finds the first statement after from carrying label
func (p *Prepared) ScanLabel(from int, label string) (int, bool) {
	return p.scan(from, func(m marker) bool { return m.label == label })
}

// ScanNext finds the first NEXT for variable after from
func (p *Prepared) ScanNext(from int, variable string) (int, bool) {
	return p.scan(from, func(m marker) bool { return m.next == variable })
}
