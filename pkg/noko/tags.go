package noko

import (
	"context"
	"fmt"
	"net/http"
)

// GetTagsParameters are the filters for listing tags.
type GetTagsParameters struct {
	Name     string
	Billable any
}

// Normalize validates the filters and produces the wire-ready set.
func (p GetTagsParameters) Normalize() (Params, error) {
	out := Params{}
	out.setString("name", p.Name)
	out.set("billable", boolToWire(p.Billable))
	return out, nil
}

// ListTags returns every tag matching the given filters.
func (c *Client) ListTags(ctx context.Context, p GetTagsParameters) ([]Tag, error) {
	params, err := p.Normalize()
	if err != nil {
		return nil, err
	}
	raw, err := c.FetchJSON(ctx, http.MethodGet, "tags", nil, params, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[Tag](raw)
}

// CreateTags creates tags from a list of names. A trailing "*" marks a
// tag unbillable. Names that cannot be created are ignored remotely.
func (c *Client) CreateTags(ctx context.Context, names []string) ([]Tag, error) {
	raw, err := c.FetchJSON(ctx, http.MethodPost, "tags", nil, nil, Params{"names": names})
	if err != nil {
		return nil, err
	}
	return decodeList[Tag](raw)
}

// GetTag retrieves a single tag by ID.
func (c *Client) GetTag(ctx context.Context, tagID int64) (*Tag, error) {
	raw, err := c.FetchJSON(ctx, http.MethodGet, fmt.Sprintf("tags/%d", tagID), nil, nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeOne[Tag](raw)
}

// EntriesForTag returns every entry associated with a tag, filtered like
// ListEntries.
func (c *Client) EntriesForTag(ctx context.Context, tagID int64, p GetEntriesParameters) ([]Entry, error) {
	params, err := p.Normalize()
	if err != nil {
		return nil, err
	}
	raw, err := c.FetchJSON(ctx, http.MethodGet, fmt.Sprintf("tags/%d/entries", tagID), nil, params, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[Entry](raw)
}

// EditTag renames a tag.
func (c *Client) EditTag(ctx context.Context, tagID int64, name string) (*Tag, error) {
	raw, err := c.FetchJSON(ctx, http.MethodPut, fmt.Sprintf("tags/%d", tagID), nil, nil, Params{"name": name})
	if err != nil {
		return nil, err
	}
	return decodeOne[Tag](raw)
}

// MergeTag merges mergeID into tagID. Entries move to the kept tag and
// old tag text is folded into their descriptions. This cannot be undone.
func (c *Client) MergeTag(ctx context.Context, tagID, mergeID int64) error {
	_, err := c.FetchJSON(ctx, http.MethodPut, fmt.Sprintf("tags/%d/merge", tagID), nil, nil, Params{"tag_id": mergeID})
	return err
}

// DeleteTag deletes a single tag. Associated entries are kept; the tag
// text becomes part of their descriptions.
func (c *Client) DeleteTag(ctx context.Context, tagID int64) error {
	_, err := c.FetchJSON(ctx, http.MethodDelete, fmt.Sprintf("tags/%d", tagID), nil, nil, nil)
	return err
}

// DeleteTags deletes multiple tags at once. The ID list rides in the
// DELETE body; IDs that cannot be deleted are ignored remotely.
func (c *Client) DeleteTags(ctx context.Context, tagIDs any) error {
	_, err := c.FetchJSON(ctx, http.MethodDelete, "tags/delete", nil, nil, Params{"tag_ids": idListToInts(tagIDs)})
	return err
}
