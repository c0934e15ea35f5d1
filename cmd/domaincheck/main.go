// Command domaincheck validates domain names given as arguments or on stdin.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/apervushin/commons-validator/pkg/domain"
	"github.com/apervushin/commons-validator/pkg/tld"

	"github.com/jessevdk/go-flags"
)

const (
	exitOK      = 0
	exitInvalid = 1
	exitUsage   = 2
)

type options struct {
	AllowLocal bool   `long:"allow-local" description:"accept local names such as localhost"`
	Syntax     bool   `long:"syntax" description:"check syntax only, ignore the TLD registry"`
	ASCII      bool   `long:"ascii" description:"print the ASCII form of each name instead of checking it"`
	List       string `long:"list" value-name:"NAME" description:"print a TLD list (e.g. generic, country-code-plus) and exit"`

	GenericPlus      []string `long:"generic-plus" value-name:"TLD" description:"accept TLD as generic"`
	GenericMinus     []string `long:"generic-minus" value-name:"TLD" description:"reject built-in generic TLD"`
	CountryCodePlus  []string `long:"country-code-plus" value-name:"TLD" description:"accept TLD as country-code"`
	CountryCodeMinus []string `long:"country-code-minus" value-name:"TLD" description:"reject built-in country-code TLD"`
	LocalPlus        []string `long:"local-plus" value-name:"TLD" description:"accept TLD as local"`
	LocalMinus       []string `long:"local-minus" value-name:"TLD" description:"reject built-in local TLD"`
}

func (o *options) overrides() []domain.Option {
	var opts []domain.Option
	add := func(kind tld.Kind, plus, minus []string) {
		if len(plus) > 0 || len(minus) > 0 {
			opts = append(opts, domain.WithOverride(kind, plus, minus))
		}
	}
	add(tld.Generic, o.GenericPlus, o.GenericMinus)
	add(tld.CountryCode, o.CountryCodePlus, o.CountryCodeMinus)
	add(tld.Local, o.LocalPlus, o.LocalMinus)
	return opts
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var opts options
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Usage = "[OPTIONS] [DOMAIN...]"

	names, err := parser.ParseArgs(args)
	if err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			fmt.Fprintln(stdout, err)
			return exitOK
		}
		fmt.Fprintf(stderr, "domaincheck: %v\n", err)
		return exitUsage
	}

	v, err := domain.New(opts.AllowLocal, opts.overrides()...)
	if err != nil {
		fmt.Fprintf(stderr, "domaincheck: %v\n", err)
		return exitUsage
	}

	if opts.List != "" {
		entries, err := listTlds(v, opts.List)
		if err != nil {
			fmt.Fprintf(stderr, "domaincheck: %v\n", err)
			return exitUsage
		}
		for _, e := range entries {
			fmt.Fprintln(stdout, e)
		}
		return exitOK
	}

	check := v.IsValid
	if opts.Syntax {
		check = v.IsValidDomainSyntax
	}

	w := bufio.NewWriter(stdout)
	defer w.Flush()

	code := exitOK
	emit := func(name string) {
		if opts.ASCII {
			fmt.Fprintf(w, "%s\t%s\n", name, domain.UnicodeToASCII(name))
			return
		}
		verdict := "valid"
		if !check(name) {
			verdict = "invalid"
			code = exitInvalid
		}
		fmt.Fprintf(w, "%s\t%s\n", name, verdict)
	}

	if len(names) > 0 {
		for _, name := range names {
			emit(name)
		}
		return code
	}

	sc := bufio.NewScanner(stdin)
	for sc.Scan() {
		name := strings.TrimSpace(sc.Text())
		if name == "" {
			continue
		}
		emit(name)
	}
	if err := sc.Err(); err != nil {
		w.Flush()
		fmt.Fprintf(stderr, "domaincheck: read stdin: %v\n", err)
		return exitUsage
	}
	return code
}

// listTlds resolves name as a list type first, then as a kind.
func listTlds(v *domain.Validator, name string) ([]string, error) {
	if lt, err := tld.ParseListType(name); err == nil {
		return v.TldEntries(lt), nil
	}
	kind, err := tld.ParseKind(name)
	if err != nil {
		return nil, fmt.Errorf("unknown list %q", name)
	}
	return v.EffectiveTlds(kind), nil
}
