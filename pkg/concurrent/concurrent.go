package concurrent

import (
	"github.com/simforge/simforge/pkg/sequence"
	"golang.org/x/sync/errgroup"
)

// ForEach runs the action function for each element of the iterator in a
// separate goroutine and waits for all of them to finish. If any action
// returns an error, the first error encountered is returned.
func ForEach[T any](i *sequence.Iterator[T], action func(T) error) error {
	group := errgroup.Group{}
	next, stop := i.Pull()
	defer stop()

	for {
		value, valid := next()
		if !valid {
			break
		}

		group.Go(func() error {
			return action(value)
		})
	}

	return group.Wait()
}

// Map applies mapFn to each element of the iterator in parallel, preserving
// order. The workers parameter caps the number of concurrent goroutines;
// values below one mean no cap.
func Map[T any, R any](i *sequence.Iterator[T], workers int, mapFn func(T) (R, error)) ([]R, error) {
	in := i.Collect()
	out := make([]R, len(in))

	group := errgroup.Group{}
	if workers > 0 {
		group.SetLimit(workers)
	}
	for idx, value := range in {
		group.Go(func() error {
			r, err := mapFn(value)
			if err != nil {
				return err
			}
			out[idx] = r
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
