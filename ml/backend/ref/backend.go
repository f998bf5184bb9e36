// Package ref - Referenz-Graph-Builder
//
// Hauptfunktionen:
// - New/NewContext: Neuen Referenz-Context erstellen
// - Context: Append-only Knotenliste, jeder Knoten wird sofort ausgewertet
// - Nodes/String: Anzahl und Text-Dump der Knoten
//
// Der Referenz-Builder fuehrt jede Operation direkt beim Anhaengen aus,
// damit Lowering-Ergebnisse ohne Compiler-Backend geprueft werden koennen.
package ref

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/v2/lists/arraylist"
	"github.com/pkg/errors"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/7blacky7/tensorlower/envconfig"
	"github.com/7blacky7/tensorlower/logutil"
	"github.com/7blacky7/tensorlower/ml"
)

func init() {
	ml.RegisterBackend("ref", New)
}

// node ist ein angehaengter Graph-Knoten mit geordneten Attributen
type node struct {
	op    string
	attrs *orderedmap.OrderedMap[string, any]
	out   []*Array
}

// Context ist ein Graph-Builder, der jeden Knoten eager auswertet.
// Nicht thread-safe: pro Context darf nur ein Aufruf gleichzeitig laufen.
type Context struct {
	name     string
	nodes    *arraylist.List[*node]
	maxNodes int
}

// New erstellt einen neuen Referenz-Context als ml.Context
func New() (ml.Context, error) {
	return NewContext(), nil
}

// NewContext erstellt einen neuen Referenz-Context
func NewContext() *Context {
	return &Context{
		name:     "main",
		nodes:    arraylist.New[*node](),
		maxNodes: int(envconfig.MaxGraphNodes()),
	}
}

// closure erstellt einen Kind-Context fuer Reduktions-Bodies
func (c *Context) closure() *Context {
	return &Context{
		name:  c.name + "/reduce",
		nodes: arraylist.New[*node](),
	}
}

// Nodes gibt die Anzahl der angehaengten Knoten zurueck
func (c *Context) Nodes() int {
	return c.nodes.Size()
}

// Ops gibt die Operationsnamen in Anhaenge-Reihenfolge zurueck
func (c *Context) Ops() []string {
	ops := make([]string, 0, c.nodes.Size())
	for _, n := range c.nodes.Values() {
		ops = append(ops, n.op)
	}
	return ops
}

// String gibt den Graphen als Text zurueck, ein Knoten pro Zeile
func (c *Context) String() string {
	var sb strings.Builder
	for i, n := range c.nodes.Values() {
		fmt.Fprintf(&sb, "%%%d = %s(", i, n.op)
		first := true
		for pair := n.attrs.Oldest(); pair != nil; pair = pair.Next() {
			if !first {
				sb.WriteString(", ")
			}
			first = false
			fmt.Fprintf(&sb, "%s=%v", pair.Key, pair.Value)
		}
		sb.WriteString(") -> ")
		for j, out := range n.out {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%s%s", out.dtype, out.shape)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// add haengt einen Knoten an; attrs sind abwechselnd Schluessel und Wert
func (c *Context) add(op string, out []*Array, attrs ...any) error {
	if c.maxNodes > 0 && c.nodes.Size() >= c.maxNodes {
		return errors.Errorf("%s: graph %s exceeds %d nodes", op, c.name, c.maxNodes)
	}

	om := orderedmap.New[string, any]()
	for i := 0; i+1 < len(attrs); i += 2 {
		om.Set(fmt.Sprint(attrs[i]), attrs[i+1])
	}

	for _, a := range out {
		a.id = c.nodes.Size()
	}
	c.nodes.Add(&node{op: op, attrs: om, out: out})
	logutil.Trace("append node", "graph", c.name, "op", op, "out", out[0])
	return nil
}

// array prueft, dass t ein Array dieses Contexts ist
func (c *Context) array(op string, t ml.Tensor) (*Array, error) {
	a, ok := t.(*Array)
	if !ok || a == nil {
		return nil, errors.Errorf("%s: operand %T is not a reference array", op, t)
	}
	if a.c != c {
		return nil, errors.Errorf("%s: operand belongs to graph %s, not %s", op, a.c.name, c.name)
	}
	return a, nil
}
