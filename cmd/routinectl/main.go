package main

import (
	"os"
)

func main() {
	a := &app{}
	err := newRootCmd(a).Execute()
	// commands failing in RunE skip the post run hook
	a.close()
	if err != nil {
		os.Exit(1)
	}
}
