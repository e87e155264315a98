package main

import (
	"context"
	"errors"
	"fmt"
	"github.com/QuangTung97/wordfreq"
	"io"
	"log"
	"os"
	"os/signal"
)

const usageMessage = "Please type the file name you'd like the word frequency of, and the file name to output to."

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	run(ctx, os.Args[1:], os.Stdout)
}

func resultMessage(err error) string {
	switch {
	case err == nil:
		return "OK"
	case errors.Is(err, wordfreq.ErrInputNotFound):
		return "File Not Found"
	default:
		return "Input File Error"
	}
}

// run never fails the process, every outcome is a message on out
func run(ctx context.Context, args []string, out io.Writer) {
	if len(args) != 2 {
		_, _ = fmt.Fprintln(out, usageMessage)
		return
	}

	conf, err := loadConfig()
	if err != nil {
		log.Println("[ERROR] wordfreq: invalid config:", err)
		_, _ = fmt.Fprintln(out, "Invalid Configuration")
		return
	}

	tableOptions := []wordfreq.Option{
		wordfreq.WithHasher(conf.hasher),
	}
	if conf.debug {
		tableOptions = append(tableOptions, wordfreq.WithRehashObserver(func(oldCount int, newCount int) {
			log.Printf("[INFO] wordfreq: rehash from %d to %d buckets\n", oldCount, newCount)
		}))
	}

	t, err := wordfreq.WordCount(ctx, args[0], args[1],
		wordfreq.WithBucketCount(conf.bucketCount),
		wordfreq.WithTableOptions(tableOptions...),
		wordfreq.WithReportFormat(conf.format),
		wordfreq.WithTopN(conf.topN),
	)
	if errors.Is(err, wordfreq.ErrInvalidBucketCount) {
		log.Println("[ERROR] wordfreq: invalid config:", err)
		_, _ = fmt.Fprintln(out, "Invalid Configuration")
		return
	}
	if err != nil && conf.debug {
		log.Println("[ERROR] wordfreq:", err)
	}

	_, _ = fmt.Fprintln(out, resultMessage(err))
	if err != nil {
		return
	}

	if conf.debug {
		stats := t.Stats()
		log.Printf("[INFO] wordfreq: %d words, %d buckets, %d empty, longest chain %d, %d rehashes\n",
			stats.Size, stats.BucketCount, stats.EmptyBuckets, stats.LongestChain, stats.Rehashes)
	}

	if !conf.echo {
		return
	}
	if err := wordfreq.WriteReport(out, t); err != nil {
		log.Println("[ERROR] wordfreq: echo report:", err)
		return
	}
	_, _ = fmt.Fprintln(out)
}
