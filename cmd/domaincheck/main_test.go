package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func runCLI(args []string, stdin string) (code int, stdout, stderr string) {
	var out, errOut bytes.Buffer
	code = run(args, strings.NewReader(stdin), &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRun_Args(t *testing.T) {
	code, out, _ := runCLI([]string{"www.apache.org", "apache.rog"}, "")

	assert.Equal(t, exitInvalid, code)
	assert.Equal(t, "www.apache.org\tvalid\napache.rog\tinvalid\n", out)
}

func TestRun_AllValid(t *testing.T) {
	code, out, _ := runCLI([]string{"президент.рф"}, "")

	assert.Equal(t, exitOK, code)
	assert.Equal(t, "президент.рф\tvalid\n", out)
}

func TestRun_Stdin(t *testing.T) {
	code, out, _ := runCLI(nil, "apache.org\n\n  localhost  \n")

	assert.Equal(t, exitInvalid, code)
	assert.Equal(t, "apache.org\tvalid\nlocalhost\tinvalid\n", out)
}

func TestRun_AllowLocal(t *testing.T) {
	code, out, _ := runCLI([]string{"--allow-local", "localhost", "box.localdomain"}, "")

	assert.Equal(t, exitOK, code)
	assert.Equal(t, "localhost\tvalid\nbox.localdomain\tvalid\n", out)
}

func TestRun_Syntax(t *testing.T) {
	code, out, _ := runCLI([]string{"--syntax", "a.c-9", "a.9c"}, "")

	assert.Equal(t, exitInvalid, code)
	assert.Equal(t, "a.c-9\tvalid\na.9c\tinvalid\n", out)
}

func TestRun_ASCII(t *testing.T) {
	code, out, _ := runCLI([]string{"--ascii", "www.bücher.ch"}, "")

	assert.Equal(t, exitOK, code)
	assert.Equal(t, "www.bücher.ch\twww.xn--bcher-kva.ch\n", out)
}

func TestRun_Overrides(t *testing.T) {
	code, out, _ := runCLI([]string{
		"--generic-plus", "corp",
		"--country-code-minus", "uk", "--country-code-minus", "de",
		"intranet.corp", "bbc.co.uk", "example.de",
	}, "")

	assert.Equal(t, exitInvalid, code)
	assert.Equal(t, "intranet.corp\tvalid\nbbc.co.uk\tinvalid\nexample.de\tinvalid\n", out)
}

func TestRun_List(t *testing.T) {
	code, out, _ := runCLI([]string{"--list", "local"}, "")
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "localdomain\nlocalhost\n", out)

	code, out, _ = runCLI([]string{"--local-plus", "lan", "--list", "local-plus"}, "")
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "lan\n", out)
}

func TestRun_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"--bogus"}},
		{"unknown list", []string{"--list", "nope"}},
		{"invalid override", []string{"--generic-plus", "not valid"}},
		{"missing value", []string{"--list"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, errOut := runCLI(tt.args, "")
			assert.Equal(t, exitUsage, code)
			assert.Contains(t, errOut, "domaincheck:")
		})
	}
}

func TestRun_Help(t *testing.T) {
	code, out, _ := runCLI([]string{"--help"}, "")

	assert.Equal(t, exitOK, code)
	assert.Contains(t, out, "--allow-local")
}
