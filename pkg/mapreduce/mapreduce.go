package mapreduce

import (
	"log/slog"
	"sync"

	"github.com/COMP3220/2020S1/pkg/analytics"
)

// Map counts the stems of a single document in order of first appearance.
func Map(content string, a *analytics.Analytics, stop analytics.Stopwords) []analytics.StemCount {
	return a.StemCounts(content, stop)
}

// Reduce merges per-document tables. Stems keep the position at which they
// first appear across the documents, so equal corpus counts tie-break by
// first appearance once the result is sorted.
func Reduce(intermediate [][]analytics.StemCount) []analytics.StemCount {
	index := make(map[string]int)
	var final []analytics.StemCount

	for _, counts := range intermediate {
		for _, c := range counts {
			if i, ok := index[c.Stem]; ok {
				final[i].Count += c.Count
				continue
			}
			index[c.Stem] = len(final)
			final = append(final, c)
		}
	}

	analytics.SortCounts(final)
	return final
}

type job struct {
	pos  int
	text string
}

type mapped struct {
	pos    int
	counts []analytics.StemCount
}

// Run maps docs with a pool of workers and reduces the tables in document
// order, so the result does not depend on scheduling.
func Run(docs []string, workers int, a *analytics.Analytics, stop analytics.Stopwords, logger *slog.Logger) []analytics.StemCount {
	if workers < 1 {
		workers = 1
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	logger.Debug("Starting map phase", "documents", len(docs), "workers", workers)
	var wg sync.WaitGroup
	jobs := make(chan job, len(docs))
	results := make(chan mapped, len(docs))

	for w := 1; w <= workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				results <- mapped{pos: j.pos, counts: Map(j.text, a, stop)}
			}
		}()
	}

	for i, d := range docs {
		jobs <- job{pos: i, text: d}
	}
	close(jobs)

	wg.Wait()
	close(results)

	intermediate := make([][]analytics.StemCount, len(docs))
	for r := range results {
		intermediate[r.pos] = r.counts
	}

	logger.Debug("Starting reduce phase")
	return Reduce(intermediate)
}
