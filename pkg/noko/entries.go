package noko

import (
	"context"
	"fmt"
	"net/http"
)

// CreateEntryParameters holds the fields for logging a new time entry.
// Date accepts a YYYY-MM-DD string or a time.Time; UserID and ProjectID
// accept an integer or a numeric string.
type CreateEntryParameters struct {
	Date        any // required
	UserID      any // required
	Minutes     int // required
	Description string
	ProjectID   any
	ProjectName string
	SourceURL   string
}

// Normalize validates the parameters and produces the wire-ready set.
func (p CreateEntryParameters) Normalize() (Params, error) {
	var errs fieldErrors
	out := Params{}
	out.set("date", formatDate(requireSet(p.Date, "date", &errs), "date", &errs))
	out.set("user_id", coerceID(requireSet(p.UserID, "user_id", &errs), "user_id", &errs))
	out["minutes"] = p.Minutes
	out.setString("description", p.Description)
	out.set("project_id", coerceID(p.ProjectID, "project_id", &errs))
	out.setString("project_name", p.ProjectName)
	out.setString("source_url", p.SourceURL)
	if err := errs.err(); err != nil {
		return nil, err
	}
	return out, nil
}

// EditEntryParameters holds the fields for editing an existing entry.
// Every field is optional; unset fields are left unchanged remotely.
type EditEntryParameters struct {
	Date        any
	UserID      any
	Minutes     int
	Description string
	ProjectID   any
	ProjectName string
	SourceURL   string
}

// Normalize validates the parameters and produces the wire-ready set.
func (p EditEntryParameters) Normalize() (Params, error) {
	var errs fieldErrors
	out := Params{}
	out.set("date", formatDate(p.Date, "date", &errs))
	out.set("user_id", coerceID(p.UserID, "user_id", &errs))
	out.setInt("minutes", p.Minutes)
	out.setString("description", p.Description)
	out.set("project_id", coerceID(p.ProjectID, "project_id", &errs))
	out.setString("project_name", p.ProjectName)
	out.setString("source_url", p.SourceURL)
	if err := errs.err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetEntriesParameters are the filters for listing entries. ID-list
// fields accept a single ID, a comma-separated string, or a slice of
// mixed ints and strings. From and To map to the wire keys "from" and
// "to" during normalization.
type GetEntriesParameters struct {
	UserIDs        any
	Description    string
	ProjectIDs     any
	TagIDs         any
	TagFilterType  string
	From           any
	To             any
	Invoiced       any
	UpdatedFrom    any
	UpdatedTo      any
	Billable       any
	ApprovedAtFrom any
	ApprovedAtTo   any
}

// Normalize validates the filters and produces the wire-ready set.
func (p GetEntriesParameters) Normalize() (Params, error) {
	var errs fieldErrors
	out := Params{}
	out.set("user_ids", idListToWire(p.UserIDs))
	out.setString("description", p.Description)
	out.set("project_ids", idListToWire(p.ProjectIDs))
	out.set("tag_ids", idListToWire(p.TagIDs))
	out.setString("tag_filter_type", p.TagFilterType)
	out.set("from", formatDate(p.From, "from", &errs))
	out.set("to", formatDate(p.To, "to", &errs))
	out.set("invoiced", boolToWire(p.Invoiced))
	out.set("updated_from", formatTimestamp(p.UpdatedFrom, "updated_from", &errs))
	out.set("updated_to", formatTimestamp(p.UpdatedTo, "updated_to", &errs))
	out.set("billable", boolToWire(p.Billable))
	out.set("approved_at_from", formatDate(p.ApprovedAtFrom, "approved_at_from", &errs))
	out.set("approved_at_to", formatDate(p.ApprovedAtTo, "approved_at_to", &errs))
	if err := errs.err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListEntries returns every entry matching the given filters, walking
// all result pages.
func (c *Client) ListEntries(ctx context.Context, p GetEntriesParameters) ([]Entry, error) {
	params, err := p.Normalize()
	if err != nil {
		return nil, err
	}
	raw, err := c.FetchJSON(ctx, http.MethodGet, "entries", nil, params, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[Entry](raw)
}

// GetEntry retrieves a single entry by ID.
func (c *Client) GetEntry(ctx context.Context, entryID int64) (*Entry, error) {
	raw, err := c.FetchJSON(ctx, http.MethodGet, fmt.Sprintf("entries/%d", entryID), nil, nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeOne[Entry](raw)
}

// CreateEntry logs a new time entry.
func (c *Client) CreateEntry(ctx context.Context, p CreateEntryParameters) (*Entry, error) {
	params, err := p.Normalize()
	if err != nil {
		return nil, err
	}
	raw, err := c.FetchJSON(ctx, http.MethodPost, "entries", nil, nil, params)
	if err != nil {
		return nil, err
	}
	return decodeOne[Entry](raw)
}

// EditEntry updates an existing entry. Unset fields keep their remote
// values.
func (c *Client) EditEntry(ctx context.Context, entryID int64, p EditEntryParameters) (*Entry, error) {
	params, err := p.Normalize()
	if err != nil {
		return nil, err
	}
	raw, err := c.FetchJSON(ctx, http.MethodPut, fmt.Sprintf("entries/%d", entryID), nil, nil, params)
	if err != nil {
		return nil, err
	}
	return decodeOne[Entry](raw)
}

// MarkEntriesInvoiced marks one or more entries as invoiced outside of
// Noko at the given date. Entries already marked only have their
// invoiced_at moved. IDs that cannot be converted are dropped, matching
// the API's own tolerance for unknown IDs in bulk calls.
func (c *Client) MarkEntriesInvoiced(ctx context.Context, entryIDs any, date any) error {
	var errs fieldErrors
	body := Params{}
	body.set("date", formatDate(date, "date", &errs))
	if err := errs.err(); err != nil {
		return err
	}
	path := "entries/mark_as_invoiced"
	if id, ok := singleID(entryIDs); ok {
		path = fmt.Sprintf("entries/%d/mark_as_invoiced", id)
	} else {
		body["entry_ids"] = idListToInts(entryIDs)
	}
	_, err := c.FetchJSON(ctx, http.MethodPut, path, nil, nil, body)
	return err
}

// MarkEntriesApproved marks one or more entries as approved. Approved
// entries cannot be edited or deleted. A zero approvedAt leaves the
// timestamp to the server.
func (c *Client) MarkEntriesApproved(ctx context.Context, entryIDs any, approvedAt any) error {
	var errs fieldErrors
	body := Params{}
	body.set("approved_at", formatTimestamp(approvedAt, "approved_at", &errs))
	if err := errs.err(); err != nil {
		return err
	}
	path := "entries/approved"
	if id, ok := singleID(entryIDs); ok {
		path = fmt.Sprintf("entries/%d/approved", id)
	} else {
		body["entry_ids"] = idListToInts(entryIDs)
	}
	_, err := c.FetchJSON(ctx, http.MethodPut, path, nil, nil, body)
	return err
}

// MarkEntriesUnapproved marks one or more entries as unapproved so they
// can be edited or deleted again.
func (c *Client) MarkEntriesUnapproved(ctx context.Context, entryIDs any) error {
	body := Params{}
	path := "entries/unapproved"
	if id, ok := singleID(entryIDs); ok {
		path = fmt.Sprintf("entries/%d/unapproved", id)
	} else {
		body["entry_ids"] = idListToInts(entryIDs)
	}
	_, err := c.FetchJSON(ctx, http.MethodPut, path, nil, nil, body)
	return err
}

// DeleteEntry deletes a time entry. Invoiced or approved entries, and
// entries on archived projects, are rejected remotely.
func (c *Client) DeleteEntry(ctx context.Context, entryID int64) error {
	_, err := c.FetchJSON(ctx, http.MethodDelete, fmt.Sprintf("entries/%d", entryID), nil, nil, nil)
	return err
}

// singleID reports whether v is a single scalar ID rather than a list,
// and returns its integer form.
func singleID(v any) (int, bool) {
	switch v.(type) {
	case []any, []int, []string:
		return 0, false
	}
	n, err := toInt(v)
	if err != nil {
		return 0, false
	}
	return n, true
}
