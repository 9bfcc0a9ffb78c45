package encoding

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDIMACS(t *testing.T) {
	var buf bytes.Buffer
	cnf := CNF{Variables: 3, Clauses: [][]int{{1, -2}, {3}}}

	require.NoError(t, WriteDIMACS(&buf, cnf, "tiny example"))
	assert.Equal(t, "c tiny example\np cnf 3 2\n1 -2 0\n3 0\n", buf.String())
}

func TestWriteDIMACSWithoutComments(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WriteDIMACS(&buf, CNF{Variables: 1, Clauses: [][]int{{-1}}}))
	assert.Equal(t, "p cnf 1 1\n-1 0\n", buf.String())
}

func TestWriteDIMACSEncodedProblem(t *testing.T) {
	var buf bytes.Buffer
	cnf := NewEncoder(moveProblem()).Encode(1)

	require.NoError(t, WriteDIMACS(&buf, cnf))
	assert.Equal(t, "p cnf 5 8\n1 0\n-2 0\n5 0\n-3 1 0\n-3 5 0\n-3 -4 0\n-1 4 3 0\n2 -5 3 0\n", buf.String())
}
