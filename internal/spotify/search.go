package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
)

// countryCodes is the default market set for multi-market search.
var countryCodes = []string{
	"AD", "AR", "AU", "AT", "BE", "BO", "BR", "BG", "CA", "CL",
	"CO", "CR", "CY", "CZ", "DK", "DO", "EC", "SV", "EE", "FI",
	"FR", "DE", "GR", "GT", "HN", "HK", "HU", "IS", "ID", "IE",
	"IT", "JP", "LV", "LI", "LT", "LU", "MY", "MT", "MX", "MC",
	"NL", "NZ", "NI", "NO", "PA", "PY", "PE", "PH", "PL", "PT",
	"SG", "ES", "SK", "SE", "CH", "TW", "TR", "GB", "US", "UY",
}

// Search queries the catalog for items of the given type. typ defaults to
// "track" and may be a comma-separated list of item types.
func (c *Client) Search(ctx context.Context, query, typ, market string, limit, offset int) (json.RawMessage, error) {
	if typ == "" {
		typ = "track"
	}

	q := url.Values{}
	q.Set("q", query)
	q.Set("type", typ)
	setStr(q, "market", market)
	setInt(q, "limit", limit)
	setInt(q, "offset", offset)
	return c.get(ctx, "/search", q)
}

// SearchMarkets runs the same search once per market and aggregates the pages
// into one object keyed by country code.
//
// markets defaults to the full country list, which makes this expensive: one
// request per market, sequentially. total caps the combined item count; the
// last page is trimmed to fit and remaining markets are skipped once the cap
// is reached. Zero means no cap.
func (c *Client) SearchMarkets(ctx context.Context, query, typ string, markets []string, limit, offset, total int) (json.RawMessage, error) {
	if typ == "" {
		typ = "track"
	}
	if len(markets) == 0 {
		markets = countryCodes
	}
	if total > 0 && limit > total {
		limit = total
	}

	sections := searchSections(typ)
	results := make(map[string]json.RawMessage, len(markets))
	count := 0

	for _, market := range markets {
		page, err := c.Search(ctx, query, typ, market, limit, offset)
		if err != nil {
			return nil, err
		}
		results[market] = page

		if total <= 0 {
			continue
		}

		n, err := countSearchItems(page, sections)
		if err != nil {
			return nil, err
		}
		count += n

		if count >= total {
			if count > total {
				trimmed, err := truncateSearchPage(page, sections, n-(count-total))
				if err != nil {
					return nil, err
				}
				results[market] = trimmed
			}
			break
		}
	}

	aggregated, err := json.Marshal(results)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate search results: %w", err)
	}
	return aggregated, nil
}

// searchSections maps a comma-separated type list to the response section
// keys, e.g. "track,episode" to ["tracks", "episodes"].
func searchSections(typ string) []string {
	types := strings.Split(typ, ",")
	sections := make([]string, len(types))
	for i, t := range types {
		sections[i] = strings.TrimSpace(t) + "s"
	}
	return sections
}

// sectionItems extracts the item list from one section of a search page.
func sectionItems(envelope map[string]json.RawMessage, key string) ([]json.RawMessage, error) {
	section, ok := envelope[key]
	if !ok {
		return nil, fmt.Errorf("search response missing %q section", key)
	}

	var body struct {
		Items []json.RawMessage `json:"items"`
	}
	if err := json.Unmarshal(section, &body); err != nil {
		return nil, fmt.Errorf("failed to decode %q section: %w", key, err)
	}

	return body.Items, nil
}

// countSearchItems counts the items a search page carries across all of its
// requested sections.
func countSearchItems(page json.RawMessage, sections []string) (int, error) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(page, &envelope); err != nil {
		return 0, fmt.Errorf("failed to decode search response: %w", err)
	}

	count := 0
	for _, key := range sections {
		items, err := sectionItems(envelope, key)
		if err != nil {
			return 0, err
		}
		count += len(items)
	}

	return count, nil
}

// truncateSearchPage rebuilds a search page with its item lists cut to keep
// entries in total, spending the budget in section order. Only trimmed
// sections are re-encoded.
func truncateSearchPage(page json.RawMessage, sections []string, keep int) (json.RawMessage, error) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(page, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}
	if keep < 0 {
		keep = 0
	}

	for _, key := range sections {
		items, err := sectionItems(envelope, key)
		if err != nil {
			return nil, err
		}

		if len(items) <= keep {
			keep -= len(items)
			continue
		}

		var section map[string]json.RawMessage
		if err := json.Unmarshal(envelope[key], &section); err != nil {
			return nil, fmt.Errorf("failed to decode %q section: %w", key, err)
		}

		trimmed, err := json.Marshal(items[:keep])
		if err != nil {
			return nil, fmt.Errorf("failed to encode trimmed items: %w", err)
		}
		section["items"] = trimmed

		rebuilt, err := json.Marshal(section)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %q section: %w", key, err)
		}
		envelope[key] = rebuilt
		keep = 0
	}

	return json.Marshal(envelope)
}
