package avl

import (
	"fmt"
	"io"
	"strings"
)

type nodeids[E any] struct {
	idTable map[*Node[E]]int
	max     int
}

func newtable[E any]() nodeids[E] {
	return nodeids[E]{
		idTable: make(map[*Node[E]]int),
		max:     1,
	}
}

func (ids nodeids[E]) find(node *Node[E]) int {
	return ids.idTable[node]
}

func (ids *nodeids[E]) alloc(node *Node[E]) int {
	if id := ids.find(node); id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// Tree2Dot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes). Absent children of inner nodes are drawn as empty
// circles.
func Tree2Dot[E any](tree *Tree[E], w io.Writer) error {
	var b strings.Builder
	b.WriteString("strict digraph {\n")
	b.WriteString("\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable[E]()
	nodelist, edgelist := "", ""
	nilid := 0
	var walk func(n *Node[E])
	walk = func(n *Node[E]) {
		ID := ids.alloc(n)
		label := dotEscaper.Replace(fmt.Sprint(n.value))
		label += fmt.Sprintf("\\nh=%d b=%d", n.height, n.Balance())
		nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", ID, label, nodeDotStyles(n))
		if n.IsLeaf() {
			return
		}
		for _, child := range [...]*Node[E]{n.left, n.right} {
			if child == nil {
				nilid++
				nodelist += fmt.Sprintf("\"nil%d\" %s;\n", nilid, emptyNode())
				edgelist += fmt.Sprintf("\"%d\" -> \"nil%d\";\n", ID, nilid)
				continue
			}
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, ids.alloc(child))
			walk(child)
		}
	}
	if !tree.IsEmpty() {
		walk(tree.root)
	}
	b.WriteString(nodelist)
	b.WriteString(edgelist)
	b.WriteString("}\n")
	if _, err := io.WriteString(w, b.String()); err != nil {
		tracer().Errorf("tree DOT: %s", err.Error())
		return err
	}
	return nil
}

// dotEscaper quotes element labels for DOT strings
var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.4]"
}

func nodeDotStyles[E any](node *Node[E]) string {
	s := ",style=filled"
	if node.IsLeaf() {
		s += ",shape=box"
	} else {
		s += ",color=black,shape=circle"
	}
	bf := node.Balance()
	if bf < 0 {
		bf = -bf
	}
	s += fmt.Sprintf(",fillcolor=\"%s\"", hexcolors[min(bf, len(hexcolors)-1)])
	return s
}

// fill colors by absolute balance factor; the last one flags a broken tree
var hexcolors = [...]string{"white", "#CCDDFF", "#ff6600"}
