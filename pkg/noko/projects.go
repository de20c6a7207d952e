package noko

import (
	"context"
	"fmt"
	"net/http"
)

// CreateProjectParameters holds the fields for creating a project.
// BillingIncrement of zero means "use the account default"; when set it
// must be one of 1, 5, 6, 10, 15, 20, 30 or 60 minutes.
type CreateProjectParameters struct {
	Name             string // required
	Billable         any
	ProjectGroupID   any
	BillingIncrement int
	Color            string
}

// Normalize validates the parameters and produces the wire-ready set.
func (p CreateProjectParameters) Normalize() (Params, error) {
	var errs fieldErrors
	out := Params{}
	out.setString("name", requireString(p.Name, "name", &errs))
	out.set("billable", boolToWire(p.Billable))
	out.set("project_group_id", coerceID(p.ProjectGroupID, "project_group_id", &errs))
	out.set("billing_increment", checkBillingIncrement(p.BillingIncrement, "billing_increment", &errs))
	out.setString("color", p.Color)
	if err := errs.err(); err != nil {
		return nil, err
	}
	return out, nil
}

// EditProjectParameters holds the fields for editing a project. All
// optional.
type EditProjectParameters struct {
	Name             string
	ProjectGroupID   any
	BillingIncrement int
	Color            string
}

// Normalize validates the parameters and produces the wire-ready set.
func (p EditProjectParameters) Normalize() (Params, error) {
	var errs fieldErrors
	out := Params{}
	out.setString("name", p.Name)
	out.set("project_group_id", coerceID(p.ProjectGroupID, "project_group_id", &errs))
	out.set("billing_increment", checkBillingIncrement(p.BillingIncrement, "billing_increment", &errs))
	out.setString("color", p.Color)
	if err := errs.err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetProjectsParameters are the filters for listing projects.
type GetProjectsParameters struct {
	Name             string
	ProjectGroupIDs  any
	BillingIncrement int
	Enabled          any
	Billable         any
}

// Normalize validates the filters and produces the wire-ready set.
func (p GetProjectsParameters) Normalize() (Params, error) {
	var errs fieldErrors
	out := Params{}
	out.setString("name", p.Name)
	out.set("project_group_ids", idListToWire(p.ProjectGroupIDs))
	out.set("billing_increment", checkBillingIncrement(p.BillingIncrement, "billing_increment", &errs))
	out.set("enabled", boolToWire(p.Enabled))
	out.set("billable", boolToWire(p.Billable))
	if err := errs.err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListProjects returns every project matching the given filters.
func (c *Client) ListProjects(ctx context.Context, p GetProjectsParameters) ([]Project, error) {
	params, err := p.Normalize()
	if err != nil {
		return nil, err
	}
	raw, err := c.FetchJSON(ctx, http.MethodGet, "projects", nil, params, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[Project](raw)
}

// GetProject retrieves a single project by ID.
func (c *Client) GetProject(ctx context.Context, projectID int64) (*Project, error) {
	raw, err := c.FetchJSON(ctx, http.MethodGet, fmt.Sprintf("projects/%d", projectID), nil, nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeOne[Project](raw)
}

// CreateProject creates a new project.
func (c *Client) CreateProject(ctx context.Context, p CreateProjectParameters) (*Project, error) {
	params, err := p.Normalize()
	if err != nil {
		return nil, err
	}
	raw, err := c.FetchJSON(ctx, http.MethodPost, "projects", nil, nil, params)
	if err != nil {
		return nil, err
	}
	return decodeOne[Project](raw)
}

// EntriesForProject returns every entry logged against a project,
// filtered like ListEntries.
func (c *Client) EntriesForProject(ctx context.Context, projectID int64, p GetEntriesParameters) ([]Entry, error) {
	params, err := p.Normalize()
	if err != nil {
		return nil, err
	}
	raw, err := c.FetchJSON(ctx, http.MethodGet, fmt.Sprintf("projects/%d/entries", projectID), nil, params, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[Entry](raw)
}

// EditProject updates an existing project.
func (c *Client) EditProject(ctx context.Context, projectID int64, p EditProjectParameters) (*Project, error) {
	params, err := p.Normalize()
	if err != nil {
		return nil, err
	}
	raw, err := c.FetchJSON(ctx, http.MethodPut, fmt.Sprintf("projects/%d", projectID), nil, nil, params)
	if err != nil {
		return nil, err
	}
	return decodeOne[Project](raw)
}

// MergeProject merges mergeID into projectID, moving its entries,
// invoices and expenses. This cannot be undone.
func (c *Client) MergeProject(ctx context.Context, projectID, mergeID int64) error {
	_, err := c.FetchJSON(ctx, http.MethodPut, fmt.Sprintf("projects/%d/merge", projectID), nil, nil, Params{"project_id": mergeID})
	return err
}

// ArchiveProject archives a single project.
func (c *Client) ArchiveProject(ctx context.Context, projectID int64) error {
	_, err := c.FetchJSON(ctx, http.MethodPut, fmt.Sprintf("projects/%d/archive", projectID), nil, nil, nil)
	return err
}

// UnarchiveProject unarchives a single project.
func (c *Client) UnarchiveProject(ctx context.Context, projectID int64) error {
	_, err := c.FetchJSON(ctx, http.MethodPut, fmt.Sprintf("projects/%d/unarchive", projectID), nil, nil, nil)
	return err
}

// ArchiveProjects archives multiple projects at once. Projects that
// cannot be archived are ignored remotely.
func (c *Client) ArchiveProjects(ctx context.Context, projectIDs any) error {
	_, err := c.FetchJSON(ctx, http.MethodPut, "projects/archive", nil, nil, Params{"project_ids": idListToInts(projectIDs)})
	return err
}

// UnarchiveProjects unarchives multiple projects at once.
func (c *Client) UnarchiveProjects(ctx context.Context, projectIDs any) error {
	_, err := c.FetchJSON(ctx, http.MethodPut, "projects/unarchive", nil, nil, Params{"project_ids": idListToInts(projectIDs)})
	return err
}

// DeleteProjects deletes multiple projects at once. Only projects
// without entries, invoices or expenses can be deleted; the rest are
// ignored remotely.
func (c *Client) DeleteProjects(ctx context.Context, projectIDs any) error {
	_, err := c.FetchJSON(ctx, http.MethodPut, "projects/delete", nil, nil, Params{"project_ids": idListToInts(projectIDs)})
	return err
}

// DeleteProject deletes a single project.
func (c *Client) DeleteProject(ctx context.Context, projectID int64) error {
	_, err := c.FetchJSON(ctx, http.MethodDelete, fmt.Sprintf("projects/%d", projectID), nil, nil, nil)
	return err
}
