package main

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleVerilog = `module rom ( input [1:0] M0, output [4:0] M1 );

    (*rom_style = "distributed" *) reg [4:0] M1r;
    assign M1 = M1r;
    always @ (M0) begin
        case (M0)
            2'b00: M1r = 5'b00000;
            2'b01: M1r = 5'b11111;
            2'b10: M1r = 5'b11111;
            2'b11: M1r = 5'b11111;
        endcase
    end
endmodule
`

// verilogText returns the module WriteVerilog renders for tt.
func verilogText(t *testing.T, tt TruthTable, name string) string {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, WriteVerilog(&sb, tt, name))
	return sb.String()
}

func TestWriteVerilog(t *testing.T) {
	tt := exampleTable(t)
	assert.Equal(t, exampleVerilog, verilogText(t, tt, "rom"))
}

func TestVerilogDeterministic(t *testing.T) {
	tt, err := ReadTruthTable(strings.NewReader(strings.Repeat("3\n", 32)), 2)
	require.NoError(t, err)
	fm, err := Profile([]BitString{"00000", "00001", "00001"})
	require.NoError(t, err)

	emit := func(seed uint64) []string {
		r, err := NewRandomizer(2, WithSeed(seed))
		require.NoError(t, err)
		ftt, _, err := r.Filter(tt, fm)
		require.NoError(t, err)
		return strings.Split(verilogText(t, ftt, "layer0_N0"), "\n")
	}

	a, b, c := emit(5), emit(5), emit(6)
	assert.Equal(t, a, b)
	require.Len(t, c, len(a))

	// Only the literal of a randomized arm may change between seeds.
	for i := range a {
		if a[i] == c[i] {
			continue
		}
		prefix := a[i][:strings.Index(a[i], "=")]
		assert.True(t, strings.HasPrefix(c[i], prefix), "line %d: %q vs %q", i, a[i], c[i])
		assert.NotContains(t, prefix, "5'b00001")
	}
	assert.Contains(t, a, "            5'b00001: M1r = 2'b11;")
	assert.Contains(t, c, "            5'b00001: M1r = 2'b11;")
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteVerilogError(t *testing.T) {
	assert.Error(t, WriteVerilog(failWriter{}, exampleTable(t), "rom"))
}
