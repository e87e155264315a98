package main

import (
	"fmt"
	"github.com/QuangTung97/wordfreq"
	"github.com/xyproto/env/v2"
	"strings"
)

type config struct {
	bucketCount int
	hasher      wordfreq.Hasher
	format      wordfreq.ReportFormat
	topN        int
	echo        bool
	debug       bool
}

func loadConfig() (config, error) {
	format, err := wordfreq.ParseReportFormat(env.Str("WORDFREQ_FORMAT", "default"))
	if err != nil {
		return config{}, err
	}

	hasher, err := parseHasher(env.Str("WORDFREQ_HASH", "murmur3"))
	if err != nil {
		return config{}, err
	}

	conf := config{
		bucketCount: env.Int("WORDFREQ_BUCKETS", wordfreq.DefaultBucketCount),
		hasher:      hasher,
		format:      format,
		topN:        env.Int("WORDFREQ_TOP", 10),
		echo:        !env.Bool("WORDFREQ_NO_ECHO"),
		debug:       env.Bool("WORDFREQ_DEBUG"),
	}
	return conf, nil
}

func parseHasher(name string) (wordfreq.Hasher, error) {
	switch strings.ToLower(name) {
	case "", "murmur3":
		return wordfreq.Murmur3Hasher{}, nil
	case "xxhash":
		return wordfreq.XXHasher{}, nil
	default:
		return nil, fmt.Errorf("unknown hash function %q", name)
	}
}
