package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/speedata/linkednodelist/backend/bag"
	"github.com/speedata/linkednodelist/backend/collection"
	"github.com/speedata/linkednodelist/backend/hyphen"
	"github.com/speedata/linkednodelist/backend/lang"
	"github.com/speedata/linkednodelist/backend/node"
	"github.com/speedata/optionparser"
)

var errNoPatterns = errors.New("no pattern file given (use --patterns)")

type options struct {
	loglevel string
	patterns string
	reverse  bool
}

// readText returns the arguments or, if there are none, stdin.
func readText(args []string, stdin io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	b, err := io.ReadAll(stdin)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

func tokens(opts options, text string) (*node.List[*hyphen.Token], error) {
	l, err := hyphen.Build(text)
	if err != nil {
		return nil, err
	}
	if opts.patterns == "" {
		return l, nil
	}
	hl, err := lang.Load(opts.patterns)
	if err != nil {
		return nil, err
	}
	n, err := hyphen.Hyphenate(hl, l)
	if err != nil {
		return nil, err
	}
	bag.Logger.Debugw("hyphenated", "patterns", hl.Name, "points", n)
	return l, nil
}

func run(cmd string, opts options, text string, w io.Writer) error {
	switch cmd {
	case "hyphenate":
		if opts.patterns == "" {
			return errNoPatterns
		}
		l, err := tokens(opts, text)
		if err != nil {
			return err
		}
		str, err := hyphen.String(l, opts.reverse)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, str)
	case "debug":
		l, err := tokens(opts, text)
		if err != nil {
			return err
		}
		node.Fdebug(w, l)
	case "count":
		l, err := tokens(opts, text)
		if err != nil {
			return err
		}
		c, err := collection.Count[*hyphen.Token](l)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "unsafe count: %d\ncount: %d\n", l.UnsafeCount(), c)
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}

func dothings() error {
	opts := options{loglevel: "info"}
	op := optionparser.NewOptionParser()
	op.On("--loglevel LEVEL", "Set the log level (debug, info, warn, error)", &opts.loglevel)
	op.On("--patterns FILE", "Hyphenation pattern file", &opts.patterns)
	op.On("--reverse", "Print the hyphenated text from the last to the first token (hyphenate only)", &opts.reverse)
	op.Command("hyphenate", "Print the text with hyphenation points")
	op.Command("debug", "Show the token list")
	op.Command("count", "Show the number of tokens")
	if err := op.Parse(); err != nil {
		return err
	}

	lvl, ok := bag.ParseLevel(opts.loglevel)
	if !ok {
		return fmt.Errorf("unknown log level %q", opts.loglevel)
	}
	bag.SetLogLevel(lvl)

	if len(op.Extra) == 0 {
		op.Help()
		return nil
	}
	text, err := readText(op.Extra[1:], os.Stdin)
	if err != nil {
		return err
	}
	return run(op.Extra[0], opts, text, os.Stdout)
}

func main() {
	if err := dothings(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}
