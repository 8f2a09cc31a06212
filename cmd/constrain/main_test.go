// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gioui.org/autolayout/layout"
)

const screenDoc = `
views:
  - name: root
    frame: [0, 0, 375, 812]
  - name: header
    parent: root
    layout: hedges(_) top(_, safe) height(44)
    targets: [root, root]
  - name: body
    parent: root
    layout: top(_.bottom, 8) hedges(_, 16) bottom(_, safe)
    targets: [header, root, root]
`

func writeDoc(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "layout.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestExplain(t *testing.T) {
	stdout, _, err := run(t, "explain", "--color=never", writeDoc(t, screenDoc))
	require.NoError(t, err)
	assert.Equal(t, []string{
		"header.left == root.left @1000",
		"header.right == root.right @1000",
		"header.top == root.safe.top @1000",
		"header.height == 44 @1000",
		"body.top == header.bottom + 8 @1000",
		"body.left == root.left + 16 @1000",
		"body.right == root.right - 16 @1000",
		"body.bottom == root.safe.bottom @1000",
	}, strings.Split(strings.TrimSpace(stdout), "\n"))
}

func TestExplainColor(t *testing.T) {
	stdout, _, err := run(t, "explain", "--color=always", writeDoc(t, screenDoc))
	require.NoError(t, err)
	assert.Contains(t, stdout, ansiCyan+"header.height == 44"+ansiReset)
}

func TestExplainVerbose(t *testing.T) {
	_, stderr, err := run(t, "explain", "-v", "--color=never", writeDoc(t, screenDoc))
	require.NoError(t, err)
	assert.Contains(t, stderr, "constraint activated")
}

func TestCheck(t *testing.T) {
	stdout, _, err := run(t, "check", writeDoc(t, screenDoc))
	require.NoError(t, err)
	assert.Equal(t, "ok: 3 views, 8 constraints\n", stdout)
}

func TestCheckUnrelatedViews(t *testing.T) {
	doc := `
views:
  - name: root
  - name: popup
  - name: label
    parent: root
    layout: edges(_) width(_)
    targets: [root, popup]
`
	_, stderr, err := run(t, "check", writeDoc(t, doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 failed constraint calls")
	assert.Contains(t, stderr, "no common ancestor")
}

func TestBuildJoinsFailures(t *testing.T) {
	doc, err := loadDocument(strings.NewReader(`
views:
  - name: a
  - name: b
  - name: c
    parent: a
    layout: top(_)
    targets: [b]
  - name: d
    parent: b
    layout: left(_)
    targets: [a]
`))
	require.NoError(t, err)
	tr, err := doc.build(nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, layout.ErrUnsolvable))
	assert.Len(t, unwrapJoined(err), 2)
	assert.Len(t, tr.views, 4)
	assert.Empty(t, tr.engine.Active())
}

func TestLoadDocumentErrors(t *testing.T) {
	tests := map[string]struct {
		doc string
		msg string
	}{
		"unknown field": {
			doc: "views:\n  - name: a\n    colour: red\n",
			msg: "field colour not found",
		},
		"missing name": {
			doc: "views:\n  - parent: a\n",
			msg: "view 0: missing name",
		},
		"duplicate": {
			doc: "views:\n  - name: a\n  - name: a\n",
			msg: `view "a": declared twice`,
		},
		"parent order": {
			doc: "views:\n  - name: a\n    parent: b\n  - name: b\n",
			msg: `parent "b" is not declared before it`,
		},
		"frame": {
			doc: "views:\n  - name: a\n    frame: [0, 0]\n",
			msg: "frame needs x, y, width and height",
		},
		"target": {
			doc: "views:\n  - name: a\n    layout: top(_)\n    targets: [b]\n",
			msg: `unknown target "b"`,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := loadDocument(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestFormatErrorInDocument(t *testing.T) {
	doc := `
views:
  - name: root
  - name: a
    parent: root
    layout: top(_
    targets: [root]
`
	_, _, err := run(t, "explain", "--color=never", writeDoc(t, doc))
	require.Error(t, err)
	var ferr *layout.FormatError
	assert.True(t, errors.As(err, &ferr))
}

func TestInvalidColor(t *testing.T) {
	_, _, err := run(t, "explain", "--color=sometimes", writeDoc(t, screenDoc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid --color "sometimes"`)
}

func TestCheckColor(t *testing.T) {
	doc := `
views:
  - name: root
  - name: popup
  - name: label
    parent: root
    layout: top(_)
    targets: [popup]
`
	path := writeDoc(t, doc)
	_, stderr, err := run(t, "check", "--color=always", path)
	require.Error(t, err)
	assert.Contains(t, stderr, "\x1b[")

	_, stderr, err = run(t, "check", "--color=never", path)
	require.Error(t, err)
	assert.NotContains(t, stderr, "\x1b[")

	_, _, err = run(t, "check", "--color=sometimes", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid --color "sometimes"`)
}

func TestParenInArguments(t *testing.T) {
	doc := `
views:
  - name: root
  - name: a
    parent: root
    layout: top(_ ()
    targets: [root]
`
	path := writeDoc(t, doc)
	_, _, err := run(t, "explain", "--color=never", path)
	require.Error(t, err)
	var ferr *layout.FormatError
	require.True(t, errors.As(err, &ferr))
	assert.Equal(t, `unexpected '('`, ferr.Msg)

	_, stderr, err := run(t, "check", "--color=never", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 failed constraint calls")
	assert.Contains(t, stderr, "unexpected '('")
}
