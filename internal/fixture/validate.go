package fixture

import (
	"fmt"
	"time"

	"github.com/hashicorp/go-multierror"
)

const dateLayout = "2006-01-02"

var timeLayouts = []string{"15:04", "15:04:05"}

// Validate checks the seed set invariants and reports every violation found.
func (s *SeedSet) Validate() error {
	var result *multierror.Error

	eventIDs := make(map[string]struct{}, len(s.Events))
	categoryIDs := make(map[string]string, s.CategoryCount())

	for i, evt := range s.Events {
		label := fmt.Sprintf("event #%d", i+1)
		if evt.ID == "" {
			result = multierror.Append(result, fmt.Errorf("%s: missing id", label))
		} else {
			label = fmt.Sprintf("event %s", evt.ID)
			if _, dup := eventIDs[evt.ID]; dup {
				result = multierror.Append(result, fmt.Errorf("%s: duplicate event id", label))
			}
			eventIDs[evt.ID] = struct{}{}
		}

		if _, err := time.Parse(dateLayout, evt.Date); err != nil {
			result = multierror.Append(result, fmt.Errorf("%s: date %q is not YYYY-MM-DD", label, evt.Date))
		}
		if !validTime(evt.Time) {
			result = multierror.Append(result, fmt.Errorf("%s: time %q is not HH:MM", label, evt.Time))
		}
		if evt.VenueCapacity < 0 {
			result = multierror.Append(result, fmt.Errorf("%s: negative venue capacity %d", label, evt.VenueCapacity))
		}

		for j, cat := range evt.TicketCategories {
			catLabel := fmt.Sprintf("%s category #%d", label, j+1)
			if cat.ID == "" {
				result = multierror.Append(result, fmt.Errorf("%s: missing id", catLabel))
			} else {
				catLabel = fmt.Sprintf("ticket category %s", cat.ID)
				if owner, dup := categoryIDs[cat.ID]; dup {
					result = multierror.Append(result, fmt.Errorf("%s: duplicate category id (already used by event %s)", catLabel, owner))
				}
				categoryIDs[cat.ID] = evt.ID
			}

			if cat.EventID != "" && cat.EventID != evt.ID {
				result = multierror.Append(result, fmt.Errorf("%s: event_id %q does not match owning event %q", catLabel, cat.EventID, evt.ID))
			}
			if cat.Price < 0 {
				result = multierror.Append(result, fmt.Errorf("%s: negative price %d", catLabel, cat.Price))
			}
			if cat.TotalQuantity < 0 {
				result = multierror.Append(result, fmt.Errorf("%s: negative total quantity %d", catLabel, cat.TotalQuantity))
			}
			if cat.AvailableQuantity < 0 || cat.AvailableQuantity > cat.TotalQuantity {
				result = multierror.Append(result, fmt.Errorf("%s: available quantity %d outside 0..%d", catLabel, cat.AvailableQuantity, cat.TotalQuantity))
			}
		}
	}

	return result.ErrorOrNil()
}

func validTime(s string) bool {
	for _, layout := range timeLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}
