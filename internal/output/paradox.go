package output

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/specialistvlad/focusgridgo/internal/focus"
)

// WriteFocusTree writes the national focus file of tag. sharedRoots are
// pulled in with `shared_focus = <id>` lines.
func WriteFocusTree(w io.Writer, tag string, focuses []*focus.Focus, sharedRoots []string) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "focus_tree = {\n")
	fmt.Fprintf(bw, "\tid = %s_focus\n", tag)
	fmt.Fprintf(bw, "\tcountry = {\n")
	fmt.Fprintf(bw, "\t\tfactor = 0\n")
	fmt.Fprintf(bw, "\t\tmodifier = {\n")
	fmt.Fprintf(bw, "\t\t\tadd = 10\n")
	fmt.Fprintf(bw, "\t\t\ttag = %s\n", tag)
	fmt.Fprintf(bw, "\t\t}\n")
	fmt.Fprintf(bw, "\t}\n")
	fmt.Fprintf(bw, "\tdefault = no\n\n")
	for _, id := range sharedRoots {
		fmt.Fprintf(bw, "\tshared_focus = %s\n", id)
	}
	if len(sharedRoots) > 0 {
		bw.WriteString("\n")
	}
	for _, f := range focuses {
		writeFocus(bw, "focus", f, "\t")
	}
	bw.WriteString("}\n")
	return bw.Flush()
}

// WriteSharedFocuses writes focuses as top level shared_focus blocks.
func WriteSharedFocuses(w io.Writer, focuses []*focus.Focus) error {
	bw := bufio.NewWriter(w)
	for _, f := range focuses {
		writeFocus(bw, "shared_focus", f, "")
	}
	return bw.Flush()
}

// writeFocus writes one block. Script blobs already start with "= {" and
// are written right after their key.
func writeFocus(bw *bufio.Writer, keyword string, f *focus.Focus, indent string) {
	in := indent + "\t"
	blob := func(key, value string) {
		if value != "" {
			bw.WriteString(in + key + " " + value + "\n")
		}
	}
	value := func(key, value string) {
		if value != "" {
			bw.WriteString(in + key + " = " + value + "\n")
		}
	}

	bw.WriteString(indent + keyword + " = {\n")
	value("id", f.ID)
	value("icon", f.Icon)
	value("text", f.Text)
	for _, p := range f.Prerequisites {
		blob("prerequisite", p)
	}
	blob("mutually_exclusive", f.MutuallyExclusive)
	blob("bypass", f.Bypass)
	value("x", strconv.Itoa(f.X))
	value("y", strconv.Itoa(f.Y))
	value("relative_position_id", f.RelativePositionID)
	value("cost", strconv.Itoa(f.Cost))
	if f.AvailableIfCapitulated {
		value("available_if_capitulated", "yes")
	}
	blob("available", f.Available)
	blob("cancel_if_invalid", f.CancelIfInvalid)
	blob("continue_if_invalid", f.ContinueIfInvalid)
	blob("complete_tooltip", f.CompleteTooltip)
	blob("completion_reward", f.CompletionReward)
	blob("ai_will_do", f.AIWillDo)
	blob("select_effect", f.SelectEffect)
	blob("search_filters", f.SearchFilters)
	bw.WriteString(indent + "}\n\n")
}
