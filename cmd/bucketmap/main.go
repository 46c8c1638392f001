// Command bucketmap exercises a bucketmap table from the command line.
//
// Without arguments it inserts a fixed set of keys and prints where each
// one landed. Otherwise every argument is a command run in order:
//
//	put:key=value   insert value under key
//	get:key         print the value stored under key
//	del:key         remove key
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/erni27/bucketmap"
)

var (
	capacity = flag.Int("capacity", 3, "number of slots")
	guard    = flag.Bool("guard", false, "reject inserts once the table holds capacity entries")
	policy   = flag.String("policy", "entry", "remove policy: entry or bucket")
	hasher   = flag.String("hasher", "xxhash", "hash function: xxhash, fnv or seeded")
	strategy = flag.String("strategy", "chain", "collision strategy: chain or probe")
	verbose  = flag.Bool("v", false, "log table internals to stderr")
)

// scenario is inserted when no commands are given.
var scenario = []string{"hello", "aaaaaaaaa", "again"}

type config struct {
	policy   string
	hasher   string
	strategy string
	capacity int
	guard    bool
}

func main() {
	flag.Parse()
	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	cfg := config{
		capacity: *capacity,
		guard:    *guard,
		policy:   *policy,
		hasher:   *hasher,
		strategy: *strategy,
	}
	if err := run(os.Stdout, log, cfg, flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(w io.Writer, log *slog.Logger, cfg config, args []string) error {
	store, err := newStore(log, cfg)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		for _, key := range scenario {
			args = append(args, "put:"+key+"="+key)
		}
		for _, key := range scenario {
			args = append(args, "get:"+key)
		}
	}
	for _, arg := range args {
		if err := exec(w, store, arg); err != nil {
			return err
		}
	}
	fmt.Fprintf(w, "size: %d\n", store.Len())
	return nil
}

func newStore(log *slog.Logger, cfg config) (bucketmap.Store, error) {
	opts := []bucketmap.Option{
		bucketmap.WithLoggerOption(log),
		bucketmap.WithRemovalCallbackOption(func(key, val string, reason bucketmap.RemovalReason) {
			log.Debug("entry removed", "key", key, "value", val, "reason", reason)
		}),
	}
	switch cfg.hasher {
	case "xxhash":
	case "fnv":
		opts = append(opts, bucketmap.WithHasherOption(bucketmap.FNVHasher64{}))
	case "seeded":
		opts = append(opts, bucketmap.WithHasherOption(bucketmap.NewSeededHasher64()))
	default:
		return nil, errors.Errorf("unknown hasher %q", cfg.hasher)
	}
	switch cfg.policy {
	case "entry":
	case "bucket":
		opts = append(opts, bucketmap.WithRemovePolicyOption(bucketmap.RemoveBucket))
	default:
		return nil, errors.Errorf("unknown remove policy %q", cfg.policy)
	}
	if cfg.guard {
		opts = append(opts, bucketmap.WithCapacityGuardOption())
	}
	switch cfg.strategy {
	case "chain":
		t, err := bucketmap.New(cfg.capacity, opts...)
		if err != nil {
			return nil, err
		}
		return t, nil
	case "probe":
		p, err := bucketmap.NewProbing(cfg.capacity, opts...)
		if err != nil {
			return nil, err
		}
		return p, nil
	default:
		return nil, errors.Errorf("unknown strategy %q", cfg.strategy)
	}
}

func exec(w io.Writer, store bucketmap.Store, cmd string) error {
	op, arg, ok := strings.Cut(cmd, ":")
	if !ok {
		return errors.Errorf("malformed command %q", cmd)
	}
	switch op {
	case "put":
		key, val, ok := strings.Cut(arg, "=")
		if !ok {
			return errors.Errorf("malformed put %q, want put:key=value", cmd)
		}
		if err := store.Insert(key, val); err != nil {
			return err
		}
		if t, ok := store.(*bucketmap.Table); ok {
			fmt.Fprintf(w, "put %q (bucket %d)\n", key, t.IndexOf(key))
		} else {
			fmt.Fprintf(w, "put %q\n", key)
		}
	case "get":
		e, ok := store.Get(arg)
		if !ok {
			fmt.Fprintf(w, "%q not found\n", arg)
			return nil
		}
		fmt.Fprintf(w, "%q -> %q\n", e.Key, e.Value)
	case "del":
		store.Remove(arg)
		fmt.Fprintf(w, "del %q\n", arg)
	default:
		return errors.Errorf("unknown command %q", op)
	}
	return nil
}
