package encoding

import (
	"bufio"
	"fmt"
	"io"
)

// WriteDIMACS writes f in DIMACS CNF format: optional comment lines, a
// problem line, then one zero-terminated line per clause.
func WriteDIMACS(w io.Writer, f CNF, comments ...string) error {
	bw := bufio.NewWriter(w)
	for _, comment := range comments {
		fmt.Fprintf(bw, "c %s\n", comment)
	}
	fmt.Fprintf(bw, "p cnf %d %d\n", f.Variables, len(f.Clauses))
	for _, clause := range f.Clauses {
		for _, lit := range clause {
			fmt.Fprintf(bw, "%d ", lit)
		}
		fmt.Fprintln(bw, "0")
	}
	return bw.Flush()
}
