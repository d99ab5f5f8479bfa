package check

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nessan/utilities/runtime"
)

// capture redirects the failure path for one test and reports whether the
// process would have exited. Tests using it mutate package state and must
// not run in parallel.
func capture(t *testing.T) (*strings.Builder, *int) {
	t.Helper()

	var (
		buf  strings.Builder
		code = -1
	)

	origOutput, origExit := output, exitFunc
	output = &buf
	exitFunc = func(c int) { code = c }

	t.Cleanup(func() {
		output = origOutput
		exitFunc = origExit
	})

	return &buf, &code
}

func TestVerifyPassesSilently(t *testing.T) {
	buf, code := capture(t)

	Verify(true, "should not print")

	assert.Empty(t, buf.String())
	assert.Equal(t, -1, *code)
}

func TestVerifyFailureExitsWithMessage(t *testing.T) {
	buf, code := capture(t)

	Verify(false, "expected %d arguments, got %d", 2, 3)

	out := buf.String()
	require.Equal(t, 1, *code)
	assert.Contains(t, out, "[VERIFY FAILED]")
	assert.Contains(t, out, "expected 2 arguments, got 3")
	assert.Contains(t, out, "check_test.go")
	assert.Contains(t, out, "TestVerifyFailureExitsWithMessage")
}

func TestFailedAlwaysExits(t *testing.T) {
	buf, code := capture(t)

	Failed("cannot open %q", "config.txt")

	require.Equal(t, 1, *code)
	assert.Contains(t, buf.String(), `cannot open "config.txt"`)
}

func TestCheckSkippedInProductionMode(t *testing.T) {
	buf, code := capture(t)

	runtime.SetProductionMode(true)
	defer runtime.SetProductionMode(false)

	Check(false, "expensive invariant")

	assert.Empty(t, buf.String())
	assert.Equal(t, -1, *code)
}

func TestCheckActiveInDevelopmentMode(t *testing.T) {
	buf, code := capture(t)

	runtime.SetProductionMode(false)

	Check(false, "expensive invariant")

	require.Equal(t, 1, *code)
	assert.Contains(t, buf.String(), "expensive invariant")
}
