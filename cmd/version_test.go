package cmd

import (
	"bytes"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionWritesToStdout(t *testing.T) {
	var out, errOut bytes.Buffer
	versionCmd.SetOut(&out)
	versionCmd.SetErr(&errOut)
	t.Cleanup(func() {
		versionCmd.SetOut(nil)
		versionCmd.SetErr(nil)
	})

	versionCmd.Run(versionCmd, nil)

	assert.Contains(t, out.String(), "esgscore CLI")
	assert.Contains(t, out.String(), runtime.Version())
	assert.Empty(t, errOut.String())
}
