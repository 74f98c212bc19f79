// Package render implements myxa's terminal output (spec component C9):
// dependency tables, diff reports, and Interface Model tree views.
//
// Grounded on cmd/dep/status.go's tabwriter-based status table and the
// trace-string rendering in golang-dep's errors.go, which builds
// human-readable reports by writing directly to a buffer rather than
// going through a templating layer.
package render

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/myxa-lang/myxa/internal/diff"
	"github.com/myxa-lang/myxa/internal/iface"
	"github.com/myxa-lang/myxa/internal/model"
)

func newTabwriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

// Dependencies prints one row per direct dependency: PROJECT, CONSTRAINT,
// and, if pkg has a lock, the LOCKED column.
func Dependencies(w io.Writer, pkg *model.Package) {
	tw := newTabwriter(w)
	defer tw.Flush()

	if pkg.Lock != nil {
		fmt.Fprintln(tw, "PROJECT\tCONSTRAINT\tLOCKED")
	} else {
		fmt.Fprintln(tw, "PROJECT\tCONSTRAINT")
	}

	for _, name := range pkg.SortedDependencyNames() {
		dep := pkg.Dependencies[name]
		if pkg.Lock != nil {
			locked := "(unresolved)"
			if pin, ok := pkg.Lock.Pins[name]; ok {
				locked = pin.Version.String()
			}
			fmt.Fprintf(tw, "%s\t~=%s\t%s\n", dep.Name, dep.Version, locked)
		} else {
			fmt.Fprintf(tw, "%s\t~=%s\n", dep.Name, dep.Version)
		}
	}
}

// Lock prints one row per pin: PROJECT, VERSION, and the parent that
// introduced it, if recorded.
func Lock(w io.Writer, lock *model.Lock) {
	tw := newTabwriter(w)
	defer tw.Flush()
	fmt.Fprintln(tw, "PROJECT\tVERSION\tVIA")

	names := make([]string, 0, len(lock.Pins))
	for n := range lock.Pins {
		names = append(names, n)
	}
	sort.Strings(names)

	for _, n := range names {
		pin := lock.Pins[n]
		via := lock.Parents[n]
		if via == "" {
			via = "(root)"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", pin.Name, pin.Version, via)
	}
}

// Diff prints a human-readable change report, breaking changes first,
// mirroring golang-dep's trace-string convention of writing one finding
// per line prefixed by its path.
func Diff(w io.Writer, changes []diff.Change) {
	if len(changes) == 0 {
		fmt.Fprintln(w, "no interface changes")
		return
	}

	var breaking, nonBreaking []diff.Change
	for _, c := range changes {
		if c.IsBreaking() {
			breaking = append(breaking, c)
		} else {
			nonBreaking = append(nonBreaking, c)
		}
	}

	if len(breaking) > 0 {
		fmt.Fprintf(w, "%d breaking change(s):\n", len(breaking))
		for _, c := range breaking {
			fmt.Fprintf(w, "  %s\n", describeChange(c))
		}
	}
	if len(nonBreaking) > 0 {
		fmt.Fprintf(w, "%d non-breaking change(s):\n", len(nonBreaking))
		for _, c := range nonBreaking {
			fmt.Fprintf(w, "  %s\n", describeChange(c))
		}
	}
}

func describeChange(c diff.Change) string {
	path := c.PathString()
	switch c.Kind {
	case diff.Addition:
		return fmt.Sprintf("+ %s added", path)
	case diff.Removal:
		return fmt.Sprintf("- %s removed", path)
	case diff.VarNodeChange:
		return fmt.Sprintf("~ %s: %s -> %s", path, describeVarNode(c.OldVarNode), describeVarNode(c.NewVarNode))
	case diff.TreeNodeChange:
		return fmt.Sprintf("~ %s: %s -> %s", path, c.OldTreeNode.Kind(), c.NewTreeNode.Kind())
	default:
		return path
	}
}

func describeVarNode(n iface.Node) string {
	if n == nil {
		return "?"
	}
	switch v := n.(type) {
	case iface.Primitive:
		return string(v.K)
	case iface.Maybe:
		return "Maybe(" + describeVarNode(v.Elem) + ")"
	case iface.List:
		return "List(" + describeVarNode(v.Elem) + ")"
	case iface.Set:
		return "Set(" + describeVarNode(v.Elem) + ")"
	case iface.Dict:
		return "Dict(" + describeVarNode(v.Key) + "," + describeVarNode(v.Val) + ")"
	case iface.Tuple:
		parts := make([]string, len(v.Elems))
		for i, e := range v.Elems {
			parts[i] = describeVarNode(e)
		}
		return "Tuple(" + strings.Join(parts, ",") + ")"
	case *iface.Struct:
		return "Struct[" + v.Name + "]"
	case *iface.Enum:
		return "Enum[" + v.Name + "]"
	case *iface.Func:
		return "Func[" + v.Name + "]"
	default:
		return string(n.Kind())
	}
}

// Members prints an indented tree view of a package's Interface Model,
// for the `--show-members` view filter.
func Members(w io.Writer, members map[string]iface.Node) {
	names := make([]string, 0, len(members))
	for n := range members {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		printNode(w, 0, n, members[n])
	}
}

func printNode(w io.Writer, depth int, name string, n iface.Node) {
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(w, "%s%s %s\n", indent, name, describeDecl(n))

	if children, ok := iface.Children(n); ok {
		childNames := make([]string, 0, len(children))
		for cn := range children {
			childNames = append(childNames, cn)
		}
		sort.Strings(childNames)
		for _, cn := range childNames {
			printNode(w, depth+1, cn, children[cn])
		}
	}
}

func describeDecl(n iface.Node) string {
	switch v := n.(type) {
	case *iface.Mod:
		return "(mod)"
	case *iface.Struct:
		return "(struct)"
	case *iface.Enum:
		return "(enum)"
	case *iface.Func:
		parts := make([]string, len(v.Params))
		for i, p := range v.Params {
			parts[i] = describeVarNode(p.Type)
		}
		return fmt.Sprintf("Func[%s -> %s]", strings.Join(parts, ","), describeVarNode(v.Return))
	case *iface.Const:
		return "const " + describeVarNode(v.Type)
	case *iface.Field:
		return describeVarNode(v.Type)
	case *iface.Variant:
		return "(" + describeVarNode(v.Type) + ")"
	case *iface.Param:
		return describeVarNode(v.Type)
	default:
		return string(n.Kind())
	}
}
