package dtmc

import (
	"fmt"
	"io"
	"strings"
)

// WriteDOT writes the states as Graphviz nodes, labeled with their name
// and propositions. No edges are emitted.
func WriteDOT(w io.Writer, states StateSet) error {
	var sb strings.Builder

	sb.WriteString("digraph DTMC {\n")
	sb.WriteString("  node [shape=circle];\n")
	sb.WriteString("\n")

	for _, st := range states.Slice() {
		if len(st.ap) > 0 {
			sb.WriteString(fmt.Sprintf("  %d [label=\"%s\\n{%s}\"];\n", st.id, escapeDOT(st.Name()), escapeDOT(joinAP(st.ap))))
		} else {
			sb.WriteString(fmt.Sprintf("  %d [label=\"%s\"];\n", st.id, escapeDOT(st.Name())))
		}
	}

	sb.WriteString("}\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

// WriteTable writes a Markdown table of the states ordered by ID.
func WriteTable(w io.Writer, states StateSet) error {
	var sb strings.Builder
	sb.WriteString("| ID | Name | Propositions |\n")
	sb.WriteString("|----|------|--------------|\n")

	for _, st := range states.Slice() {
		sb.WriteString(fmt.Sprintf("| %d | %s | %s |\n", st.id, escapeCell(st.Name()), escapeCell(joinAP(st.ap))))
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func joinAP(props []Proposition) string {
	parts := make([]string, len(props))
	for i, p := range props {
		parts[i] = string(p)
	}
	return strings.Join(parts, ", ")
}

var (
	dotEscaper  = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`, "\r", `\r`)
	cellEscaper = strings.NewReplacer(`|`, `\|`, "\n", " ", "\r", " ")
)

// escapeDOT makes s safe inside a double-quoted DOT string.
func escapeDOT(s string) string {
	return dotEscaper.Replace(s)
}

// escapeCell keeps s within one Markdown table cell.
func escapeCell(s string) string {
	return cellEscaper.Replace(s)
}
