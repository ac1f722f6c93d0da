package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"

	"github.com/google/go-cmp/cmp"
	"github.com/ngrash/go-tzone/tzdesc"
)

func main() {
	if err := run(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func run() error {
	flag.Parse()
	args := flag.Args()
	if len(args) != 2 {
		return fmt.Errorf("Usage: tzonediff <descriptor file A> <descriptor file B>\n")
	}

	af, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	bf, err := os.ReadFile(args[1])
	if err != nil {
		return err
	}

	ad, err := tzdesc.Decode(bytes.NewReader(af))
	if err != nil {
		return err
	}

	bd, err := tzdesc.Decode(bytes.NewReader(bf))
	if err != nil {
		return err
	}

	if diff := cmp.Diff(ad, bd); diff != "" {
		fmt.Println("descriptors are different: -A +B")
		fmt.Println(diff)
	} else {
		fmt.Println("descriptors are identical")
	}

	return nil
}
