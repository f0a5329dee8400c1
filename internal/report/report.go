// Package report measures minified output: byte counts before and after
// minification and the compressed size of the result, which is what a
// server actually sends.
package report

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/andybalholm/brotli"
	"github.com/golang/snappy"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Algorithm names a compression codec
type Algorithm string

const (
	Gzip   Algorithm = "gzip"
	Zstd   Algorithm = "zstd"
	Brotli Algorithm = "brotli"
	LZ4    Algorithm = "lz4"
	Snappy Algorithm = "snappy"
)

// ErrUnsupportedAlgorithm is returned for an unknown codec name
var ErrUnsupportedAlgorithm = errors.New("unsupported compression algorithm")

// DefaultAlgorithms are the codecs web servers commonly negotiate
var DefaultAlgorithms = []Algorithm{Gzip, Brotli}

// Algorithms returns every supported codec
func Algorithms() []Algorithm {
	return []Algorithm{Gzip, Zstd, Brotli, LZ4, Snappy}
}

// ParseAlgorithms resolves codec names, ignoring case and blanks
func ParseAlgorithms(names []string) ([]Algorithm, error) {
	var algos []Algorithm
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		algo := Algorithm(name)
		if !isSupported(algo) {
			return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, name)
		}
		algos = append(algos, algo)
	}
	return algos, nil
}

func isSupported(algo Algorithm) bool {
	for _, a := range Algorithms() {
		if a == algo {
			return true
		}
	}
	return false
}

// newCompressor creates a compressor for the specified algorithm at its
// best compression level. Snappy has no levels.
func newCompressor(algo Algorithm, w io.Writer) (io.WriteCloser, error) {
	switch algo {
	case Gzip:
		return gzip.NewWriterLevel(w, gzip.BestCompression)
	case Zstd:
		return zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	case Brotli:
		return brotli.NewWriterLevel(w, brotli.BestCompression), nil
	case LZ4:
		zw := lz4.NewWriter(w)
		if err := zw.Apply(lz4.CompressionLevelOption(lz4.Level9)); err != nil {
			return nil, err
		}
		return zw, nil
	case Snappy:
		return snappy.NewBufferedWriter(w), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, string(algo))
	}
}

type countingWriter struct {
	n int
}

func (c *countingWriter) Write(p []byte) (int, error) {
	c.n += len(p)
	return len(p), nil
}

// CompressedSize returns the size of data once compressed with algo
func CompressedSize(algo Algorithm, data []byte) (int, error) {
	counter := &countingWriter{}
	w, err := newCompressor(algo, counter)
	if err != nil {
		return 0, err
	}
	if _, err := w.Write(data); err != nil {
		w.Close()
		return 0, fmt.Errorf("%s: %w", algo, err)
	}
	if err := w.Close(); err != nil {
		return 0, fmt.Errorf("%s: %w", algo, err)
	}
	return counter.n, nil
}

// Entry holds the sizes measured for one file, or the sum over a run
type Entry struct {
	Path       string
	Original   int
	Minified   int
	Compressed map[Algorithm]int
}

// Saved returns the share of the original removed by minification, in
// percent. An empty original saves nothing.
func (e Entry) Saved() float64 {
	if e.Original == 0 {
		return 0
	}
	return float64(e.Original-e.Minified) * 100 / float64(e.Original)
}

// Summary collects entries for a run. It is safe for concurrent use.
type Summary struct {
	mu         sync.Mutex
	algorithms []Algorithm
	entries    []Entry
}

// NewSummary measures the given codecs, or DefaultAlgorithms when none
func NewSummary(algorithms ...Algorithm) *Summary {
	if len(algorithms) == 0 {
		algorithms = DefaultAlgorithms
	}
	return &Summary{algorithms: append([]Algorithm(nil), algorithms...)}
}

// Algorithms returns the codecs measured by s
func (s *Summary) Algorithms() []Algorithm {
	return append([]Algorithm(nil), s.algorithms...)
}

// Add records a file of original bytes minified to minified
func (s *Summary) Add(path string, original int, minified string) error {
	entry := Entry{
		Path:       path,
		Original:   original,
		Minified:   len(minified),
		Compressed: make(map[Algorithm]int, len(s.algorithms)),
	}
	for _, algo := range s.algorithms {
		n, err := CompressedSize(algo, []byte(minified))
		if err != nil {
			return fmt.Errorf("failed to measure %s: %w", path, err)
		}
		entry.Compressed[algo] = n
	}

	s.mu.Lock()
	s.entries = append(s.entries, entry)
	s.mu.Unlock()
	return nil
}

// Entries returns the recorded entries sorted by path
func (s *Summary) Entries() []Entry {
	s.mu.Lock()
	out := append([]Entry(nil), s.entries...)
	s.mu.Unlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

// Total sums every recorded entry
func (s *Summary) Total() Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := Entry{Compressed: make(map[Algorithm]int, len(s.algorithms))}
	for _, e := range s.entries {
		total.Original += e.Original
		total.Minified += e.Minified
		for algo, n := range e.Compressed {
			total.Compressed[algo] += n
		}
	}
	return total
}

// FormatBytes renders a byte count for humans: 512 B, 1.5 KiB, 2.0 MiB
func FormatBytes(n int) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := unit, 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
