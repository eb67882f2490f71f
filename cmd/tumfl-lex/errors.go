package main

import (
	"fmt"
	"os"

	"github.com/reusee/e5"
)

var wrap = e5.Wrap.With(e5.WrapStacktrace)

func ce(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
