// Command wallhug prints the shortest wall-hugging distance for a wall given
// as comma-separated turn/distance instructions, or serves the same solve over
// HTTP.
//
//	wallhug [-H left|right|both] [-r] [-v] R3,R4,L2,...
//	wallhug [-H ...] [-r] [-v] -f notes.txt
//	wallhug -l 127.0.0.1:8080
//
// -r adds the exact A* length on walls small enough for it; -v logs every
// traversal move and reducer rewrite.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"git.sr.ht/~sircmpwn/getopt"

	"github.com/katalvlaran/wallhug/hug"
	"github.com/katalvlaran/wallhug/reduce"
	"github.com/katalvlaran/wallhug/solver"
)

var (
	version    string
	listenAddr string
	inputFile  string
	handFlag   = "both"
	reference  bool
	verbose    bool
)

func main() {
	opts, optind, err := getopt.Getopts(os.Args, "f:l:H:rv")
	if err != nil {
		log.Fatal(err)
	}
	for _, opt := range opts {
		switch opt.Option {
		case 'f':
			inputFile = opt.Value
		case 'l':
			listenAddr = opt.Value
		case 'H':
			handFlag = opt.Value
		case 'r':
			reference = true
		case 'v':
			verbose = true
		}
	}
	if version != "" {
		log.Printf("version: %s", version)
	}

	if listenAddr != "" {
		api := NewAPIServer(listenAddr, verbose)
		api.Start()
		return
	}

	text, err := readInstructions(os.Args[optind:])
	if err != nil {
		log.Fatal(err)
	}
	resp, err := runSolve(context.Background(), solveRequest{
		Instructions: text,
		Hand:         handFlag,
		Reference:    reference,
	}, traceOptions(verbose)...)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(resp.Length)
	if verbose {
		for _, v := range resp.Variants {
			if v.Error != "" {
				log.Printf("%s hand failed: %s", v.Hand, v.Error)
				continue
			}
			log.Printf("%s hand: %d before reduction, %d after", v.Hand, v.Raw, v.Length)
		}
	}
	if resp.Reference != nil {
		fmt.Printf("reference: %d\n", *resp.Reference)
	}
}

// readInstructions takes the instructions from the arguments, the -f file,
// or standard input, in that order.
func readInstructions(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, ","), nil
	}
	var (
		data []byte
		err  error
	)
	if inputFile != "" && inputFile != "-" {
		data, err = os.ReadFile(inputFile)
	} else {
		data, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// traceOptions routes the solver hooks to the log when on is set.
func traceOptions(on bool) []solver.Option {
	if !on {
		return nil
	}
	return []solver.Option{
		solver.WithOnMove(func(h hug.Handedness, mv hug.Move) {
			log.Printf("%s: %s wall=%d from=%v step=%v heading=%v", h, mv.Kind, mv.Wall, mv.From, mv.Step, mv.Heading)
		}),
		solver.WithOnRewrite(func(h hug.Handedness, rw reduce.Rewrite) {
			log.Printf("%s: %s at %d, %d -> %d", h, rw.Rule, rw.Index, rw.Before, rw.After)
		}),
	}
}
