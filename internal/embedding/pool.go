package embedding

import (
	"context"
	"sync"
	"time"
)

// Warm precomputes embeddings for texts on a bounded set of workers,
// populating the cache before the first analysis request. Individual
// failures are collected and returned; they never stop the remaining texts.
func Warm(ctx context.Context, e Embedder, texts []string, workers int) []error {
	return warm(ctx, e, texts, workers, 0)
}

// WarmRateLimited is Warm with at most rps embedding calls per second
// across all workers. Used when the embedding API enforces quotas.
func WarmRateLimited(ctx context.Context, e Embedder, texts []string, workers, rps int) []error {
	return warm(ctx, e, texts, workers, rps)
}

func warm(ctx context.Context, e Embedder, texts []string, workers, rps int) []error {
	if e == nil || len(texts) == 0 {
		return nil
	}
	if workers <= 0 {
		workers = 1
	}
	if workers > len(texts) {
		workers = len(texts)
	}

	var rate <-chan time.Time
	if rps > 0 {
		ticker := time.NewTicker(time.Second / time.Duration(rps))
		defer ticker.Stop()
		rate = ticker.C
	}

	in := make(chan string)
	out := make(chan error, len(texts))

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for text := range in {
				if ctx.Err() != nil {
					out <- ctx.Err()
					continue
				}
				if rate != nil {
					select {
					case <-ctx.Done():
						out <- ctx.Err()
						continue
					case <-rate:
					}
				}
				_, err := e.Embed(ctx, text)
				out <- err
			}
		}()
	}

	go func() {
		for _, text := range texts {
			in <- text
		}
		close(in)
	}()

	go func() {
		wg.Wait()
		close(out)
	}()

	var errs []error
	for err := range out {
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}
