package term

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/xlab/treeprint"
)

// JSONTree renders a JSON document as an indented tree rooted at name, keeping
// the document's key order.
func JSONTree(name string, doc []byte) (string, error) {
	if !gjson.ValidBytes(doc) {
		return "", fmt.Errorf("render %s: invalid JSON", name)
	}
	tree := treeprint.NewWithRoot(name)
	addJSON(tree, gjson.ParseBytes(doc))
	return tree.String(), nil
}

func addJSON(tree treeprint.Tree, v gjson.Result) {
	i := 0
	v.ForEach(func(key, value gjson.Result) bool {
		label := key.String()
		if v.IsArray() {
			label = fmt.Sprintf("[%d]", i)
		}
		i++
		switch {
		case value.IsObject(), value.IsArray():
			addJSON(tree.AddBranch(label), value)
		default:
			tree.AddNode(fmt.Sprintf("%s: %s", label, value.Raw))
		}
		return true
	})
}
