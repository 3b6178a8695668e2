package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(args []string, stdin string) (code int, stdout, stderr string) {
	var out, errOut bytes.Buffer
	code = run(context.Background(), args, strings.NewReader(stdin), &out, &errOut)

	return code, out.String(), errOut.String()
}

const square = "4\n0 0\n0 1\n1 0\n1 1\n"

func TestRun_Modes(t *testing.T) {
	cases := []struct {
		args []string
		want string
	}{
		{[]string{"-m", "MST"}, "3.00\n0 1\n0 2\n1 3\n"},
		{[]string{"--mode", "FASTTSP"}, "4.00\n0 1 3 2 \n"},
		{[]string{"--mode=OPTTSP"}, "4.00\n0 1 3 2 \n"},
		{[]string{"-m", "OPTTSP", "--opt-method", "heldkarp"}, "4.00\n0 1 3 2 \n"},
	}
	for _, tc := range cases {
		code, out, errOut := runCLI(tc.args, square)
		assert.Equal(t, 0, code, "%v: %s", tc.args, errOut)
		assert.Equal(t, tc.want, out, "%v", tc.args)
	}
}

func TestRun_MSTImpossible(t *testing.T) {
	code, out, errOut := runCLI([]string{"-m", "MST"}, "2\n-1 -1\n2 3\n")
	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.Equal(t, "Cannot construct MST\n", errOut)
}

func TestRun_Help(t *testing.T) {
	code, out, _ := runCLI([]string{"-h"}, "")
	assert.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(out, "usage: -m | --mode"))
}

func TestRun_BadInvocations(t *testing.T) {
	code, _, errOut := runCLI(nil, square)
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "no mode specified")

	code, _, errOut = runCLI([]string{"-m", "TSP"}, square)
	assert.Equal(t, 1, code)
	assert.Equal(t, "Error: invalid mode TSP\n", errOut)

	code, _, errOut = runCLI([]string{"-q"}, square)
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "invalid option")

	code, _, _ = runCLI([]string{"-m", "MST"}, "3\n0 0\n1\n")
	assert.Equal(t, 1, code)
}

func TestRun_LogsGoToInjectedStderr(t *testing.T) {
	code, out, errOut := runCLI([]string{"-m", "MST"}, "3\n0 0\n1\n")
	assert.Equal(t, 1, code)
	assert.Empty(t, out)

	lines := strings.Split(strings.TrimSpace(errOut), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"msg":"reading points"`)
	assert.True(t, strings.HasPrefix(lines[1], "Error: geometry: malformed input"))
}
