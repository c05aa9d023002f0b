package main

import (
	"fmt"
	"os"

	"pkt.systems/trmarkup/internal/golden"
)

func main() {
	root := "testdata/golden"
	if len(os.Args) > 1 {
		root = os.Args[1]
	}
	cases, err := golden.LoadCases(root)
	if err != nil {
		fatalf("%v", err)
	}
	if len(cases) == 0 {
		fatalf("no cases found in %s", root)
	}
	for _, c := range cases {
		out, err := c.Render()
		if err != nil {
			fatalf("%v", err)
		}
		path := c.Path(root)
		if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
			fatalf("write %s: %v", path, err)
		}
		fmt.Fprintf(os.Stdout, "wrote %s\n", path)
	}
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
