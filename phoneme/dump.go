package phoneme

import (
	"fmt"
	"strings"
)

// Dump formats the active entries as a table of index, mnemonic, length and
// stress.
func (b *Buffer) Dump() string {
	var sb strings.Builder
	sb.WriteString(" idx    phoneme  length  stress\n")
	for i := 0; i < b.n; i++ {
		id := b.Index[i]
		fmt.Fprintf(&sb, "%4d %4d %-3s %6d %7d\n", i, id, Name(id), b.Length[i], b.Stress[i])
	}
	return sb.String()
}
