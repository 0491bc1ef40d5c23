// Package pagination normalizes the paging and sorting parameters of list
// requests into query descriptors.
package pagination

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

const (
	// DefaultPage is used when a request does not set the page parameter.
	DefaultPage = 0

	// DefaultSize is used when a request does not set the size parameter.
	DefaultSize = 20

	// LimitAll is the Descriptor limit requesting the full listing without paging.
	LimitAll = -1
)

var (
	ErrPageInvalid          = errors.New("the page parameter must be an integer of 0 or higher")
	ErrSizeInvalid          = errors.New("the size parameter must be an integer of 1 or higher")
	ErrSortInvalid          = errors.New("the sort parameter must have the format key[,direction]")
	ErrSortKeyInvalid       = errors.New("cannot sort by")
	ErrSortDirectionInvalid = errors.New("the sort direction must be asc or desc")
)

// Direction is the direction records are ordered in.
type Direction string

const (
	Ascending  Direction = "ASC"
	Descending Direction = "DESC"
)

// Sort is a sort key together with the direction to order by.
type Sort struct {
	Key       string
	Direction Direction
}

// Parameters are the raw paging and sorting parameters of a request.
//
// All fields are strings so that an absent parameter can be told apart from
// one explicitly set to a zero value.
type Parameters struct {
	Page string `form:"page"`
	Size string `form:"size"`
	Sort string `form:"sort"`
}

// Options configures the validation Resolve performs.
type Options struct {
	// DefaultSort is used when the request does not specify a sort.
	DefaultSort Sort

	// SortKeys are the keys a request is allowed to sort by.
	SortKeys []string
}

// Descriptor is a normalized description of one page of an ordered listing.
type Descriptor struct {
	Offset int
	Limit  int
	Sort   Sort
}

// Resolve validates raw request parameters and normalizes them into a
// Descriptor.
//
// Every parameter defaults independently: page to DefaultPage, size to
// DefaultSize and sort to opts.DefaultSort. Setting one parameter never
// changes how the others default.
func Resolve(params Parameters, opts Options) (Descriptor, error) {
	page := DefaultPage
	if params.Page != "" {
		p, err := strconv.Atoi(params.Page)
		if err != nil || p < 0 {
			return Descriptor{}, ErrPageInvalid
		}
		page = p
	}

	size := DefaultSize
	if params.Size != "" {
		s, err := strconv.Atoi(params.Size)
		if err != nil || s < 1 {
			return Descriptor{}, ErrSizeInvalid
		}
		size = s
	}

	sort := opts.DefaultSort
	if params.Sort != "" {
		s, err := parseSort(params.Sort, opts.SortKeys)
		if err != nil {
			return Descriptor{}, err
		}
		sort = s
	}

	return Descriptor{
		Offset: page * size,
		Limit:  size,
		Sort:   sort,
	}, nil
}

// parseSort parses a "key[,direction]" token. The direction is matched
// case-insensitively and defaults to ascending, also when the token ends
// with a comma. Keys are matched exactly.
func parseSort(raw string, keys []string) (Sort, error) {
	parts := strings.Split(raw, ",")
	if len(parts) > 2 {
		return Sort{}, ErrSortInvalid
	}

	key := parts[0]
	if !slices.Contains(keys, key) {
		return Sort{}, fmt.Errorf("%w %q, it can be one of: %s", ErrSortKeyInvalid, key, strings.Join(keys, ", "))
	}

	direction := Ascending
	if len(parts) == 2 && parts[1] != "" {
		switch strings.ToLower(parts[1]) {
		case "asc":
			direction = Ascending
		case "desc":
			direction = Descending
		default:
			return Sort{}, ErrSortDirectionInvalid
		}
	}

	return Sort{Key: key, Direction: direction}, nil
}
