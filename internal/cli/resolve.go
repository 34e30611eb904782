package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// resolveID matches user input against a set of named records: a numeric
// input is taken as an id, otherwise an exact case-insensitive name match
// wins, then a unique name prefix.
func resolveID(kind, input string, ids []int64, names []string) (int64, error) {
	if input == "" {
		return 0, fmt.Errorf("%s is required", kind)
	}
	if id, err := strconv.ParseInt(input, 10, 64); err == nil {
		return id, nil
	}

	for i, name := range names {
		if strings.EqualFold(name, input) {
			return ids[i], nil
		}
	}

	var matches []int64
	for i, name := range names {
		if strings.HasPrefix(strings.ToLower(name), strings.ToLower(input)) {
			matches = append(matches, ids[i])
		}
	}
	switch len(matches) {
	case 0:
		return 0, fmt.Errorf("%s not found: %q", kind, input)
	case 1:
		return matches[0], nil
	default:
		return 0, fmt.Errorf("%s name %q is ambiguous (%d matches)", kind, input, len(matches))
	}
}

func resolveLocationID(ctx context.Context, app *App, input string) (int64, error) {
	locations, err := app.Locations.List(ctx)
	if err != nil {
		return 0, err
	}
	ids := make([]int64, len(locations))
	names := make([]string, len(locations))
	for i, l := range locations {
		ids[i], names[i] = l.ID, l.Name
	}
	return resolveID("location", input, ids, names)
}

func resolveFieldID(ctx context.Context, app *App, input string) (int64, error) {
	fields, err := app.Fields.List(ctx)
	if err != nil {
		return 0, err
	}
	ids := make([]int64, len(fields))
	names := make([]string, len(fields))
	for i, f := range fields {
		ids[i], names[i] = f.ID, f.Name
	}
	return resolveID("field", input, ids, names)
}

func resolveBedID(ctx context.Context, app *App, input string) (int64, error) {
	beds, err := app.Beds.List(ctx)
	if err != nil {
		return 0, err
	}
	ids := make([]int64, len(beds))
	names := make([]string, len(beds))
	for i, b := range beds {
		ids[i], names[i] = b.ID, b.Name
	}
	return resolveID("bed", input, ids, names)
}
