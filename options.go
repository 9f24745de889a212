package pagetext

import (
	"io"
	"os"
)

// options holds transcript extraction configuration.
type options struct {
	// writer receives the transcript; defaults to standard output.
	writer io.Writer

	// pages is a 1-indexed page selection; nil means all pages.
	pages []int

	// strict makes a missing superscript signal fatal rather than
	// skipping reclassification.
	strict bool
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{
		writer: os.Stdout,
		pages:  nil,
		strict: false,
	}
}

// clone creates a deep copy of options.
func (o options) clone() options {
	no := options{
		writer: o.writer,
		strict: o.strict,
	}
	if o.pages != nil {
		no.pages = append([]int(nil), o.pages...)
	}
	return no
}
