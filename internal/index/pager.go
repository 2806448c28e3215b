package index

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// DefaultPageSize is the page size bulk traversals use unless configured
// otherwise.
const DefaultPageSize = 10

// EachPage walks pages 0, 1, 2, ... of a paged finder and applies fn to
// every item. The walk is lazy and finite; it stops at the first empty page.
// It never mutates anything itself.
func EachPage[T any](size int, fetch func(page, size int) ([]T, error), fn func(item T) error) error {
	if size <= 0 {
		size = DefaultPageSize
	}

	for page := 0; ; page++ {
		items, err := fetch(page, size)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}

		for _, item := range items {
			if err := fn(item); err != nil {
				return err
			}
		}
	}
}

// DrainPages repeatedly fetches the first page of a paged finder, for
// traversals where handling an item removes it from the match set (bulk
// reference switches rewrite the indexed field the finder filters on).
// Each item is handed to fn once, keyed by key. Items that stay in the set
// after handling are skipped on later fetches; the walk stops at the first
// empty page, or when a page yields no unhandled items.
func DrainPages[T any](size int, fetch func(size int) ([]T, error), key func(item T) string, fn func(item T) error) error {
	if size <= 0 {
		size = DefaultPageSize
	}

	handled := mapset.NewThreadUnsafeSet[string]()
	for {
		items, err := fetch(size)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}

		progress := false
		for _, item := range items {
			if !handled.Add(key(item)) {
				continue
			}
			progress = true
			if err := fn(item); err != nil {
				return err
			}
		}
		if !progress {
			return nil
		}
	}
}
