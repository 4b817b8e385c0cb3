// csdump is a simple CLI tool for dumping the code points of a text file.
//
// Usage:
//
//	csdump <filename>        # dump all code points
//	csdump -n 20 <filename>  # dump the first 20
//	csdump -r <filename>     # dump in reverse, walking backward
//	csdump -                 # read from stdin
//
// Each line shows the rune offset, the code point, and the rune itself.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"unicode"

	"github.com/nickrtorres/charstream/cursor"
)

func main() {
	reverseFlag := flag.Bool("r", false, "walk backward from the end")
	countFlag := flag.Int("n", 0, "number of runes (0 = all)")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: csdump [-r] [-n count] <filename>")
		os.Exit(1)
	}

	text, err := load(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	c := cursor.New(text)
	if *reverseFlag {
		runReverse(c, *countFlag)
		return
	}
	runForward(c, *countFlag)
}

func load(filename string) (string, error) {
	if filename == "-" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(filename)
	return string(data), err
}

func runForward(c *cursor.Cursor, count int) {
	n := 0
	for {
		r, err := c.Next()
		if err != nil {
			return
		}
		if count > 0 && n >= count {
			return
		}
		fmt.Printf("%6d  %-8s %s\n", c.Pos(), fmt.Sprintf("U+%04X", r), display(r))
		n++
	}
}

func runReverse(c *cursor.Cursor, count int) {
	// Walk to the end first; Prev then yields runes in reverse order.
	for {
		if _, err := c.Next(); err != nil {
			break
		}
	}

	n := 0
	for {
		r, err := c.Prev()
		if err != nil {
			return
		}
		if count > 0 && n >= count {
			return
		}
		fmt.Printf("%6d  %-8s %s\n", c.Pos(), fmt.Sprintf("U+%04X", r), display(r))
		n++
	}
}

// display renders a rune for the dump, escaping anything unprintable.
func display(r rune) string {
	if unicode.IsPrint(r) && !unicode.IsSpace(r) {
		return string(r)
	}
	return fmt.Sprintf("%q", r)
}
