package organize

import (
	"fmt"
	"sort"
)

// assemble zips the generated columns into rows and orders them by
// ascending ID. The ordering key is the numeric ID alone; IDs are
// unique so the order is total. Shape violations here mean the
// generator broke its own contract, so they panic rather than return.
func assemble(asn assignment, fieldCount int) Table {
	n := len(asn.ids)

	table := make(Table, n)
	for i := 0; i < n; i++ {
		values := make([]string, len(asn.aux))
		for f, column := range asn.aux {
			values[f] = column[i]
		}
		table[i] = Row{
			ID:     asn.ids[i],
			Player: asn.players[i],
			Target: asn.targets[i],
			Values: values,
		}
	}

	sort.Slice(table, func(i, j int) bool { return table[i].ID < table[j].ID })

	if len(table) != n {
		panic(fmt.Sprintf("organize: assembled %d rows, want %d", len(table), n))
	}
	want := 2 + fieldCount
	for _, row := range table {
		if got := 3 + len(row.Values); got != want {
			panic(fmt.Sprintf("organize: row %d has width %d, want %d", row.ID, got, want))
		}
	}
	return table
}
