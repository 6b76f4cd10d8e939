package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := rootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestDemo(t *testing.T) {
	out, err := execute(t, "demo", "--verbose")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"insert(40) → 1 nodes",
		"t.NodeCount(): 20",
		"Is tree t full?: false",
		"Is tree t full after removing 95?: true",
		"Same structure t1, t2?: true",
		"Same structure t, t1?: false",
		"Is t1 equal to t1?: true",
		"Is t1 equal to t2?: false",
		"Is copy of t2 equal to t2?: true",
		"Is copy of t2 equal to t2 after removing 7?: false",
		"Is t2 a mirror of it?: false",
		"Is t1 a mirror of it?: true",
		"Levels of t1 after right rotation at 8:\n6\n0 7\n2 8\n1 4 10\n",
		"Levels of t2 after right rotation at its root 11:\n5\n11\n7 13\n6 9 12 15\n",
		"right rotation at 5 not performed",
		"left rotation at 12 not performed",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected demo output to contain %q", want)
		}
	}
	if t.Failed() {
		t.Logf("demo output:\n%s", out)
	}
}

func TestLevelsCommand(t *testing.T) {
	color.NoColor = true
	out, err := execute(t, "levels", "--width", "1", "2", "1", "3")
	if err != nil {
		t.Fatal(err)
	}
	if out != "2\n1  3\n" {
		t.Errorf("unexpected levels output %q", out)
	}
	if _, err := execute(t, "levels", "x"); err == nil {
		t.Errorf("expected error for non-integer argument")
	}
}

func TestDotAndHTMLCommands(t *testing.T) {
	out, err := execute(t, "dot", "2", "1")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "strict digraph {") {
		t.Errorf("unexpected DOT output %q", out)
	}
	out, err = execute(t, "html", "2", "1")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "<tr><th>1</th><td>1</td></tr>") {
		t.Errorf("unexpected HTML output %q", out)
	}
}

func TestUnknownTraceLevel(t *testing.T) {
	if _, err := execute(t, "--trace", "loud", "dot", "1"); err == nil {
		t.Errorf("expected error for unknown trace level")
	}
}
