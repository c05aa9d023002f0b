package trmarkup_test

import (
	"os"
	"strings"
	"testing"

	"pkt.systems/trmarkup/internal/golden"
)

const goldenDir = "testdata/golden"

func TestRenderGolden(t *testing.T) {
	cases, err := golden.LoadCases(goldenDir)
	if err != nil {
		t.Fatalf("load cases: %v", err)
	}
	if len(cases) == 0 {
		t.Fatalf("no golden cases under %s", goldenDir)
	}
	for _, c := range cases {
		c := c
		t.Run(c.Name, func(t *testing.T) {
			got, err := c.Render()
			if err != nil {
				t.Fatalf("render: %v", err)
			}
			path := c.Path(goldenDir)
			if os.Getenv("UPDATE_GOLDEN") == "1" {
				if err := os.WriteFile(path, []byte(got), 0o644); err != nil {
					t.Fatalf("write golden %s: %v", path, err)
				}
				return
			}
			want, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("read golden %s: %v", path, err)
			}
			if string(want) != got {
				t.Fatalf("golden mismatch %s\nwant: %q\ngot:  %q", path, want, got)
			}
		})
	}
}

func TestRenderGoldenIdempotent(t *testing.T) {
	cases, err := golden.LoadCases(goldenDir)
	if err != nil {
		t.Fatalf("load cases: %v", err)
	}
	for _, c := range cases {
		first, err := c.Render()
		if err != nil {
			t.Fatal(err)
		}
		second, err := c.Render()
		if err != nil {
			t.Fatal(err)
		}
		if first != second || !strings.HasSuffix(first, "\n") {
			t.Fatalf("%s: renders differ: %q vs %q", c.Name, first, second)
		}
	}
}
