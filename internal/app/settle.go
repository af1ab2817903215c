package app

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// settleAll runs every task concurrently and waits until all of them have
// finished. A failing task never cancels or short-circuits the others;
// errs[i] is the outcome of tasks[i].
func settleAll(tasks []func() error) []error {
	errs := make([]error, len(tasks))
	var g errgroup.Group
	for i, task := range tasks {
		i, task := i, task
		g.Go(func() error {
			defer func() {
				if r := recover(); r != nil {
					errs[i] = fmt.Errorf("task panicked: %v", r)
				}
			}()
			errs[i] = task()
			return nil // keep the group from recording a first error
		})
	}
	_ = g.Wait()
	return errs
}
