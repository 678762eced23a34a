// This file renders a truth table as a Verilog module built around a single
// case statement.

package main

import (
	"bufio"
	"fmt"
	"io"
)

// WriteVerilog writes tt to w as a combinational Verilog module named name.
// Input bus M0 selects one case arm per row, in table order; the arm drives
// register M1r, which is assigned to output bus M1.  The register carries a
// hint to implement it as distributed ROM.
func WriteVerilog(w io.Writer, tt TruthTable, name string) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "module %s ( input [%d:0] M0, output [%d:0] M1 );\n\n",
		name, tt.NInputs-1, tt.NOutputs-1)
	fmt.Fprintf(bw, "    (*rom_style = \"distributed\" *) reg [%d:0] M1r;\n", tt.NOutputs-1)
	fmt.Fprint(bw, "    assign M1 = M1r;\n")
	fmt.Fprint(bw, "    always @ (M0) begin\n")
	fmt.Fprint(bw, "        case (M0)\n")
	for _, row := range tt.Rows {
		fmt.Fprintf(bw, "            %d'b%s: M1r = %d'b%s;\n",
			tt.NInputs, row.Input, tt.NOutputs, row.Output)
	}
	fmt.Fprint(bw, "        endcase\n")
	fmt.Fprint(bw, "    end\n")
	fmt.Fprint(bw, "endmodule\n")
	return bw.Flush()
}
