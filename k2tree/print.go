package k2tree

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
)

// Print renders tr as a dense n'×n' grid to w, using fmt's default
// formatting for each present element and "." for absent cells. Intended
// for small trees (debugging, test fixtures, the CLI's print command), not
// as a serialization format.
func (tr *Tree[E]) Print(w io.Writer) {
	tbl := tablewriter.NewWriter(w)
	header := make([]string, tr.nPrime+1)
	header[0] = ""
	for j := 0; j < tr.nPrime; j++ {
		header[j+1] = fmt.Sprintf("%d", j)
	}
	tbl.SetHeader(header)

	for i := 0; i < tr.nPrime; i++ {
		row := make([]string, tr.nPrime+1)
		row[0] = fmt.Sprintf("%d", i)
		for j := 0; j < tr.nPrime; j++ {
			present, _ := tr.IsNotNull(i, j)
			if !present {
				row[j+1] = "."
				continue
			}
			val, _ := tr.GetElement(i, j)
			row[j+1] = fmt.Sprintf("%v", val)
		}
		tbl.Append(row)
	}
	tbl.Render()
}
