package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/stipsitzm/OpenFarmPlanner-sub000/internal/domain"
)

// plantingFormData collects the add-planting form fields as strings; the
// model converts them into a draft planting on completion.
type plantingFormData struct {
	bedID    string
	crop     string
	start    string
	end      string
	quantity string
}

// newPlantingForm builds the huh form for scheduling a planting. bedOptions
// maps display labels to bed ids; defaultBed preselects the bed under the
// cursor.
func newPlantingForm(bedOptions []huh.Option[string], defaultBed string, data *plantingFormData) *huh.Form {
	data.bedID = defaultBed

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Bed").
				Options(bedOptions...).
				Value(&data.bedID),
			huh.NewInput().
				Title("Crop").
				Placeholder("Carrots").
				Value(&data.crop).
				Validate(validateRequired("crop")),
			huh.NewInput().
				Title("Start (YYYY-MM-DD)").
				Placeholder("2026-03-05").
				Value(&data.start).
				Validate(validateDate),
			huh.NewInput().
				Title("End (YYYY-MM-DD)").
				Placeholder("2026-05-20").
				Value(&data.end).
				Validate(validateDate),
			huh.NewInput().
				Title("Quantity (optional)").
				Value(&data.quantity).
				Validate(validateOptionalFloat),
		),
	).WithTheme(farmplanHuhTheme()).WithShowHelp(false)
}

// draftPlanting converts completed form data into a not-yet-saved planting.
// Dates are already validated; a failed parse here means the form let
// something through and the caller surfaces the error.
func (d *plantingFormData) draftPlanting(id int64, clientRef string) (*domain.Planting, error) {
	bedID, err := strconv.ParseInt(d.bedID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid bed selection %q", d.bedID)
	}
	start, err := domain.ParseDate(strings.TrimSpace(d.start))
	if err != nil {
		return nil, fmt.Errorf("invalid start date %q", d.start)
	}
	end, err := domain.ParseDate(strings.TrimSpace(d.end))
	if err != nil {
		return nil, fmt.Errorf("invalid end date %q", d.end)
	}

	p := &domain.Planting{
		ID:        id,
		ClientRef: clientRef,
		BedID:     bedID,
		Crop:      strings.TrimSpace(d.crop),
		StartDate: start,
		EndDate:   end,
	}
	if q := strings.TrimSpace(d.quantity); q != "" {
		v, err := strconv.ParseFloat(q, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid quantity %q", d.quantity)
		}
		p.Quantity = &v
	}
	return p, nil
}

func validateRequired(what string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", what)
		}
		return nil
	}
}

func validateDate(s string) error {
	if _, err := domain.ParseDate(strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("expected YYYY-MM-DD")
	}
	return nil
}

func validateOptionalFloat(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return fmt.Errorf("expected a number")
	}
	return nil
}
