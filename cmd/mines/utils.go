package main

import (
	"bufio"
	"context"
	"errors"
	"io"

	"golang.org/x/sync/errgroup"
)

// readLines sends every line of r to lines and closes it at EOF.
func readLines(ctx context.Context, r io.Reader, lines chan<- string) error {
	defer close(lines)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		select {
		case lines <- scanner.Text():
		case <-ctx.Done():
			return nil
		}
	}
	return scanner.Err()
}

// serve runs s on the lines of in until "q", EOF or ctx is done. Quitting
// and cancellation are normal exits and return nil.
func serve(ctx context.Context, s *session, in io.Reader) error {
	lines := make(chan string)
	g, gCtx := errgroup.WithContext(ctx)

	// A read on a blocking stdin cannot be interrupted, so the reader is
	// left behind instead of being waited for.
	go func() {
		if err := readLines(gCtx, in, lines); err != nil {
			s.log.WithError(err).Error("unable to read input")
		}
	}()
	g.Go(func() error {
		return s.Run(gCtx, lines)
	})

	err := g.Wait()
	if errors.Is(err, errQuit) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
