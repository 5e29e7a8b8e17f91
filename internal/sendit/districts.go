package sendit

import (
	"context"
	"fmt"
	"strconv"

	"github.com/G-omar-H/weLovePadel-sub000/internal/district"
)

// ListAllDistricts walks the paginated districts listing and aggregates the
// full catalog. Implements district.Lister.
func (c *Client) ListAllDistricts(ctx context.Context) ([]district.DistrictEntry, error) {
	token, err := c.ensureToken(ctx)
	if err != nil {
		return nil, err
	}

	var entries []district.DistrictEntry
	page := 1
	for {
		var envelope listDistrictsResponse
		res, err := c.http.R().
			SetContext(ctx).
			SetAuthToken(token).
			SetQueryParam("page", strconv.Itoa(page)).
			SetResult(&envelope).
			Get("/districts")
		if err != nil {
			return nil, fmt.Errorf("failed to fetch districts page %d: %w", page, err)
		}
		if !res.IsSuccess() {
			return nil, fmt.Errorf("sendit districts returned status %d: %s", res.StatusCode(), res.String())
		}
		if !envelope.Success {
			return nil, &APIError{Code: envelope.Code, Message: envelope.Message}
		}

		for _, d := range envelope.Data.Districts {
			entries = append(entries, district.DistrictEntry{
				ID:               d.ID,
				Name:             d.Name,
				ArabicName:       d.ArabicName,
				City:             d.City,
				Price:            d.Price,
				DeliveryEstimate: d.Delay,
				PickupAllowed:    d.Pickup,
			})
		}

		if envelope.Data.LastPage == 0 || page >= envelope.Data.LastPage {
			break
		}
		page++
	}

	return entries, nil
}
