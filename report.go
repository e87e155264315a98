package wordfreq

import (
	"bufio"
	"fmt"
	"github.com/emirpasic/gods/maps/treemap"
	"io"
	"strconv"
	"strings"
)

const maxReportLineSize = 16 * 1024 * 1024

// AverageLinePrefix starts the last line of a report
const AverageLinePrefix = "The average length of the collision lists was "

// FormatLoadFactor prints the shortest decimal that round trips, always with a decimal point.
// Values below 1e-3 use the scientific form with an unpadded exponent, e.g. 9.5367431640625E-7
func FormatLoadFactor(v float64) string {
	abs := v
	if abs < 0 {
		abs = -abs
	}

	if abs == 0 || (abs >= 1e-3 && abs < 1e7) {
		s := strconv.FormatFloat(v, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}

	s := strconv.FormatFloat(v, 'E', -1, 64)
	mantissa, exp, _ := strings.Cut(s, "E")
	if !strings.Contains(mantissa, ".") {
		mantissa += ".0"
	}
	e, err := strconv.Atoi(exp)
	if err != nil {
		return s
	}
	return mantissa + "E" + strconv.Itoa(e)
}

func writeEntry(w *bufio.Writer, e Entry) {
	_, _ = w.WriteString("(")
	_, _ = w.WriteString(e.Key)
	_, _ = w.WriteString(" ")
	_, _ = w.WriteString(strconv.Itoa(e.Count))
	_, _ = w.WriteString(")")
}

func writeEntryLine(w *bufio.Writer, e Entry) {
	writeEntry(w, e)
	_, _ = w.WriteString("\n")
}

func writeAverageLine(w *bufio.Writer, t *Table) {
	_, _ = w.WriteString(AverageLinePrefix)
	_, _ = w.WriteString(FormatLoadFactor(t.AverageChainLength()))
}

// WriteReport writes one "(word count)" line per entry, in bucket order then chain order,
// followed by the average chain length line without a trailing newline
func WriteReport(writer io.Writer, t *Table) error {
	w := bufio.NewWriter(writer)

	t.ForEachEntry(func(e Entry) {
		writeEntryLine(w, e)
	})
	writeAverageLine(w, t)

	return w.Flush()
}

// WriteBucketReport writes one line per bucket: the bucket index then its entries
func WriteBucketReport(writer io.Writer, t *Table) error {
	w := bufio.NewWriter(writer)

	t.ForEachBucket(func(index int, chain ChainView) {
		_, _ = w.WriteString(strconv.Itoa(index))
		_, _ = w.WriteString(" ")
		chain.ForEachEntry(func(e Entry) {
			writeEntry(w, e)
		})
		_, _ = w.WriteString("\n")
	})

	return w.Flush()
}

// WriteSortedReport is WriteReport with entries ordered by word
func WriteSortedReport(writer io.Writer, t *Table) error {
	sorted := treemap.NewWithStringComparator()
	t.ForEachEntry(func(e Entry) {
		sorted.Put(e.Key, e.Count)
	})

	w := bufio.NewWriter(writer)

	it := sorted.Iterator()
	for it.Next() {
		writeEntryLine(w, Entry{
			Key:   it.Key().(string),
			Count: it.Value().(int),
		})
	}
	writeAverageLine(w, t)

	return w.Flush()
}

// WriteTopReport is WriteReport restricted to the n most frequent words
func WriteTopReport(writer io.Writer, t *Table, n int) error {
	w := bufio.NewWriter(writer)

	for _, e := range t.TopEntries(n) {
		writeEntryLine(w, e)
	}
	writeAverageLine(w, t)

	return w.Flush()
}

func parseEntryLine(line string) (Entry, error) {
	if !strings.HasPrefix(line, "(") || !strings.HasSuffix(line, ")") {
		return Entry{}, fmt.Errorf("%w: %q", ErrMalformedReport, line)
	}
	inner := line[1 : len(line)-1]

	sep := strings.LastIndexByte(inner, ' ')
	if sep <= 0 {
		return Entry{}, fmt.Errorf("%w: %q", ErrMalformedReport, line)
	}

	count, err := strconv.Atoi(inner[sep+1:])
	if err != nil || count < 1 {
		return Entry{}, fmt.Errorf("%w: %q", ErrMalformedReport, line)
	}

	return Entry{
		Key:   inner[:sep],
		Count: count,
	}, nil
}

// ParseReport reads back a report written by WriteReport, WriteSortedReport or WriteTopReport
func ParseReport(reader io.Reader) (map[string]int, float64, error) {
	counts := map[string]int{}
	average := 0.0
	seenAverage := false

	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), maxReportLineSize)

	for scanner.Scan() {
		line := scanner.Text()
		if seenAverage {
			return nil, 0, fmt.Errorf("%w: line after average line: %q", ErrMalformedReport, line)
		}

		if strings.HasPrefix(line, AverageLinePrefix) {
			v, err := strconv.ParseFloat(strings.TrimPrefix(line, AverageLinePrefix), 64)
			if err != nil {
				return nil, 0, fmt.Errorf("%w: %q", ErrMalformedReport, line)
			}
			average = v
			seenAverage = true
			continue
		}

		e, err := parseEntryLine(line)
		if err != nil {
			return nil, 0, err
		}
		if _, existed := counts[e.Key]; existed {
			return nil, 0, fmt.Errorf("%w: duplicated word %q", ErrMalformedReport, e.Key)
		}
		counts[e.Key] = e.Count
	}

	if err := scanner.Err(); err != nil {
		return nil, 0, err
	}
	if !seenAverage {
		return nil, 0, fmt.Errorf("%w: missing average line", ErrMalformedReport)
	}
	return counts, average, nil
}
