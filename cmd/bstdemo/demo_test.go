package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runApp(t *testing.T, args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer
	app := newApp()
	app.Writer = &stdout
	app.ErrWriter = &stderr
	err := app.Run(append([]string{"bstdemo"}, args...))
	return stdout.String(), stderr.String(), err
}

func TestDefaultRun(t *testing.T) {
	out, _, err := runApp(t)
	require.NoError(t, err)
	assert.Equal(t, "5\n  7\n    8\n    6\n  3\n    4\n    2\n"+
		"5\n  7\n    8\n    6\n  4\n    2\n", out)
}

func TestDuplicateInsert(t *testing.T) {
	assert := assert.New(t)

	out, logs, err := runApp(t, "--insert", "2,1,2", "--remove", "1")
	assert.NoError(err)
	assert.Equal("2\n  1\n2\n", out)
	assert.Contains(logs, "skipping duplicate insert")

	_, _, err = runApp(t, "--strict", "--insert", "2,1,2")
	assert.EqualError(err, "bst: duplicate key 2")
}

func TestRemoveAbsent(t *testing.T) {
	assert := assert.New(t)

	out, logs, err := runApp(t, "--insert", "1", "--remove", "9", "--log-format", "json")
	assert.NoError(err)
	assert.Equal("1\n1\n", out)
	assert.Contains(logs, `"msg":"value not present"`)
}

func TestBranchesStyle(t *testing.T) {
	out, _, err := runApp(t, "--insert", "2,1,3", "--remove", "2", "--style", "branches")
	require.NoError(t, err)
	assert.Contains(t, out, "2\n")
	assert.Contains(t, out, "3\n")
}

func TestBadFlags(t *testing.T) {
	assert := assert.New(t)

	_, _, err := runApp(t, "--style", "zigzag")
	assert.ErrorContains(err, "unknown print style")

	_, _, err = runApp(t, "--log-format", "xml")
	assert.ErrorContains(err, "unknown log format")

	_, _, err = runApp(t, "--insert", "4294967296")
	assert.ErrorContains(err, "does not fit in 32 bits")
}
