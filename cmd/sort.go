package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/KasperOmsK/lazysort/internal/iterx"
	"github.com/KasperOmsK/lazysort/internal/logger"
	"github.com/KasperOmsK/lazysort/internal/records"
)

const stdinName = "-"

func runSort(cfg *Config, names []string, stdin io.Reader, out io.Writer, log logger.Logger) error {
	if len(names) == 0 {
		names = []string{stdinName}
	}

	key := cfg.KeyFunc()
	var all []records.Record
	for _, name := range names {
		recs, err := readInput(name, stdin, key)
		if err != nil {
			return err
		}
		log.Debug("read input", zap.String("input", name), zap.Int("records", len(recs)))
		all = append(all, recs...)
	}

	if cfg.Numeric {
		unordered := 0
		for _, r := range all {
			if !r.Orderable() {
				unordered++
			}
		}
		if unordered > 0 {
			log.Warn("records without a numeric key",
				zap.Int("count", unordered),
				zap.Bool("placed_first", cfg.NaNFirst))
		}
	}

	it := records.Sort(all, cfg.SortOptions())

	limit := cfg.Limit
	if limit == 0 {
		limit = it.Len()
	}

	w := bufio.NewWriter(out)
	emitted := 0
	for rec := range iterx.Take(it.All(), limit) {
		if _, err := w.WriteString(rec.Text); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		if err := w.WriteByte('\n'); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		emitted++
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	log.Debug("sorted records",
		zap.Bool("numeric", cfg.Numeric),
		zap.Bool("reverse", cfg.Reverse),
		zap.Int("emitted", emitted),
		zap.Int("unsorted", it.Len()))

	return nil
}

func readInput(name string, stdin io.Reader, key records.KeyFunc) ([]records.Record, error) {
	if name == stdinName {
		recs, err := records.Read(stdin, key)
		if err != nil {
			return nil, fmt.Errorf("stdin: %w", err)
		}
		return recs, nil
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	recs, err := records.Read(f, key)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return recs, nil
}
