package wordfreq

import "errors"

// ErrInvalidBucketCount when the initial bucket count is not positive
var ErrInvalidBucketCount = errors.New("wordfreq: bucket count must be positive")

// ErrInputNotFound when the input file does not exist
var ErrInputNotFound = errors.New("wordfreq: input not found")

// ErrInputOutput for any other failure while reading the input or writing the output
var ErrInputOutput = errors.New("wordfreq: input output failure")

// ErrMalformedReport ...
var ErrMalformedReport = errors.New("wordfreq: malformed report line")
