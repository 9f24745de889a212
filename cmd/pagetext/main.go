// Command pagetext prints the layout-aware transcript of page content
// streams given as files, one page per file (standard input when no file
// is given). Pages use a single WinAnsi-encoded font F1; container-format
// access is out of scope, so this is a demo surface over the in-memory
// document.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pagetext/pagetext"
	"github.com/pagetext/pagetext/core"
	"github.com/pagetext/pagetext/doc"
)

func main() {
	var (
		strict   = flag.Bool("strict", false, "fail when no superscript signal exists")
		pages    = flag.String("pages", "", "comma-separated 1-indexed page selection")
		encoding = flag.String("encoding", "WinAnsiEncoding", "legacy encoding for the demo font")
	)
	flag.Parse()

	d, err := buildDocument(flag.Args(), *encoding)
	if err != nil {
		fmt.Fprintln(os.Stderr, "pagetext:", err)
		os.Exit(1)
	}

	tr := pagetext.FromDocument(d).To(os.Stdout)
	if *strict {
		tr = tr.Strict()
	}
	if *pages != "" {
		nums, err := parsePages(*pages)
		if err != nil {
			fmt.Fprintln(os.Stderr, "pagetext:", err)
			os.Exit(1)
		}
		tr = tr.Pages(nums...)
	}

	if err := tr.Transcript(); err != nil {
		fmt.Fprintln(os.Stderr, "pagetext:", err)
		os.Exit(1)
	}
}

// buildDocument assembles one page per named file, or a single page from
// standard input when no file is named.
func buildDocument(files []string, encoding string) (*doc.Memory, error) {
	fonts := map[string]core.Dict{
		"F1": {"Encoding": core.Name(encoding)},
	}

	d := doc.NewMemory()
	if len(files) == 0 {
		content, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		d.AddPage(fonts, content)
		return d, nil
	}

	for _, name := range files {
		content, err := os.ReadFile(name)
		if err != nil {
			return nil, err
		}
		d.AddPage(fonts, content)
	}
	return d, nil
}

// parsePages parses a comma-separated list of page numbers.
func parsePages(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	nums := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid page %q", p)
		}
		nums = append(nums, n)
	}
	return nums, nil
}
