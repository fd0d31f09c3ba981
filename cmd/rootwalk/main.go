// Command rootwalk resolves a domain name by walking the name-server
// hierarchy from a randomly chosen root server, without consulting any
// external recursive resolver. The process exit code identifies the exact
// failure kind; 0 means success.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/haukened/rootwalk/internal/dns/common/log"
	"github.com/haukened/rootwalk/internal/dns/common/rng"
	"github.com/haukened/rootwalk/internal/dns/config"
	"github.com/haukened/rootwalk/internal/dns/domain"
	"github.com/haukened/rootwalk/internal/dns/gateways/transport"
	"github.com/haukened/rootwalk/internal/dns/gateways/wire"
	"github.com/haukened/rootwalk/internal/dns/services/resolver"
)

const appName = "rootwalk"

// cliArgs holds the parsed command line.
type cliArgs struct {
	domainName string
	verbose    bool
	seed       *uint64
}

func main() {
	args, err := parseArgs(os.Args[1:], os.Stderr)
	if err != nil {
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	level := cfg.LogLevel
	if args.verbose {
		level = "info"
	}
	if err := log.Configure(cfg.Env, level); err != nil {
		fmt.Fprintf(os.Stderr, "Logging configuration error: %v\n", err)
		os.Exit(1)
	}

	udp, err := transport.NewUDP(cfg.BindAddr, time.Duration(cfg.TimeoutSeconds)*time.Second)
	if err != nil {
		fmt.Fprintf(os.Stderr, "DNS request failed with %v\n", err)
		os.Exit(domain.ExitCode(err))
	}
	defer udp.Close()

	os.Exit(run(args, cfg, udp, os.Stdout, os.Stderr))
}

// parseArgs reads flags and the one required positional domain argument.
func parseArgs(argv []string, errOut io.Writer) (cliArgs, error) {
	fs := flag.NewFlagSet(appName, flag.ContinueOnError)
	fs.SetOutput(errOut)
	verbose := fs.Bool("verbose", false, "Log the delegation walk while resolving")
	seedFlag := fs.String("seed", "", "Integer seed for reproducible root selection and query ids")
	fs.Usage = func() {
		fmt.Fprintf(errOut, "Usage: %s [flags] <domain>\n", appName)
		fs.PrintDefaults()
	}

	if err := fs.Parse(argv); err != nil {
		return cliArgs{}, err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return cliArgs{}, errors.New("exactly one domain name is required")
	}

	args := cliArgs{
		domainName: fs.Arg(0),
		verbose:    *verbose,
	}
	if *seedFlag != "" {
		seed, err := strconv.ParseUint(*seedFlag, 10, 64)
		if err != nil {
			fmt.Fprintf(errOut, "invalid seed %q\n", *seedFlag)
			return cliArgs{}, err
		}
		args.seed = &seed
	}
	return args, nil
}

// run performs one resolution over the given transport and returns the
// process exit code. It is separated from main so tests can drive it with
// a scripted transport.
func run(args cliArgs, cfg *config.AppConfig, tr resolver.Transport, stdout, stderr io.Writer) int {
	src := rng.New()
	if args.seed != nil {
		src = rng.NewSeeded(*args.seed)
	}

	res := resolver.New(resolver.Options{
		Transport:  tr,
		Codec:      wire.New(cfg.MaxPointerJumps, log.GetLogger()),
		Source:     src,
		Logger:     log.GetLogger(),
		BufferSize: cfg.BufferSize,
		MaxDepth:   cfg.MaxDepth,
	})

	msg, err := res.Resolve(args.domainName, domain.RRTypeA)
	if err != nil {
		fmt.Fprintf(stderr, "DNS request failed with %v\n", err)
		return domain.ExitCode(err)
	}

	fmt.Fprintln(stdout, "Answer:")
	fmt.Fprintln(stdout)
	for _, answer := range msg.Answers {
		fmt.Fprintf(stdout, "Found %s record for %s with address %s set to expire in %d\n",
			answer.Type, answer.Name, answer.IPAddress(), answer.TTL)
	}
	return 0
}
