package noko

import (
	"context"
	"fmt"
	"net/http"
)

// CreateProjectGroupParameters holds the fields for creating a project
// group. A group cannot exist without projects, so ProjectIDs is
// required.
type CreateProjectGroupParameters struct {
	Name       string // required
	ProjectIDs any    // required
}

// Normalize validates the parameters and produces the wire-ready set.
func (p CreateProjectGroupParameters) Normalize() (Params, error) {
	var errs fieldErrors
	out := Params{}
	out.setString("name", requireString(p.Name, "name", &errs))
	out.set("project_ids", idListToWire(requireSet(p.ProjectIDs, "project_ids", &errs)))
	if err := errs.err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetProjectGroupsParameters are the filters for listing project groups.
type GetProjectGroupsParameters struct {
	Name       string
	ProjectIDs any
}

// Normalize validates the filters and produces the wire-ready set.
func (p GetProjectGroupsParameters) Normalize() (Params, error) {
	out := Params{}
	out.setString("name", p.Name)
	out.set("project_ids", idListToWire(p.ProjectIDs))
	return out, nil
}

// ListProjectGroups returns every project group matching the filters.
func (c *Client) ListProjectGroups(ctx context.Context, p GetProjectGroupsParameters) ([]ProjectGroup, error) {
	params, err := p.Normalize()
	if err != nil {
		return nil, err
	}
	raw, err := c.FetchJSON(ctx, http.MethodGet, "project_groups", nil, params, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[ProjectGroup](raw)
}

// CreateProjectGroup creates a new project group around the given
// projects.
func (c *Client) CreateProjectGroup(ctx context.Context, p CreateProjectGroupParameters) (*ProjectGroup, error) {
	params, err := p.Normalize()
	if err != nil {
		return nil, err
	}
	// The group endpoint takes its creation parameters on the query
	// string rather than the body, matching the existing wire contract.
	raw, err := c.FetchJSON(ctx, http.MethodPost, "project_groups", nil, params, nil)
	if err != nil {
		return nil, err
	}
	return decodeOne[ProjectGroup](raw)
}

// GetProjectGroup retrieves a single project group by ID.
func (c *Client) GetProjectGroup(ctx context.Context, groupID int64) (*ProjectGroup, error) {
	raw, err := c.FetchJSON(ctx, http.MethodGet, fmt.Sprintf("project_groups/%d", groupID), nil, nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeOne[ProjectGroup](raw)
}

// EditProjectGroup renames a project group.
func (c *Client) EditProjectGroup(ctx context.Context, groupID int64, name string) (*ProjectGroup, error) {
	raw, err := c.FetchJSON(ctx, http.MethodPut, fmt.Sprintf("project_groups/%d", groupID), nil, nil, Params{"name": name})
	if err != nil {
		return nil, err
	}
	return decodeOne[ProjectGroup](raw)
}

// EntriesForProjectInGroup returns entries for a project inside a group,
// filtered like ListEntries.
func (c *Client) EntriesForProjectInGroup(ctx context.Context, groupID, projectID int64, p GetEntriesParameters) ([]Entry, error) {
	params, err := p.Normalize()
	if err != nil {
		return nil, err
	}
	path := fmt.Sprintf("project_groups/%d/projects/%d/entries", groupID, projectID)
	raw, err := c.FetchJSON(ctx, http.MethodGet, path, nil, params, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[Entry](raw)
}

// ProjectsInGroup returns the projects in a group, filtered like
// ListProjects.
func (c *Client) ProjectsInGroup(ctx context.Context, groupID int64, p GetProjectsParameters) ([]Project, error) {
	params, err := p.Normalize()
	if err != nil {
		return nil, err
	}
	raw, err := c.FetchJSON(ctx, http.MethodGet, fmt.Sprintf("project_groups/%d/projects", groupID), nil, params, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[Project](raw)
}

// AddProjectsToGroup adds projects to an existing group.
func (c *Client) AddProjectsToGroup(ctx context.Context, groupID int64, projectIDs any) ([]Project, error) {
	body := Params{"project_ids": idListToInts(projectIDs)}
	raw, err := c.FetchJSON(ctx, http.MethodPost, fmt.Sprintf("project_groups/%d/add_projects", groupID), nil, nil, body)
	if err != nil {
		return nil, err
	}
	return decodeList[Project](raw)
}

// RemoveProjectsFromGroup removes the given projects from a group.
func (c *Client) RemoveProjectsFromGroup(ctx context.Context, groupID int64, projectIDs any) error {
	body := Params{"project_ids": idListToInts(projectIDs)}
	_, err := c.FetchJSON(ctx, http.MethodPut, fmt.Sprintf("project_groups/%d/remove_projects", groupID), nil, nil, body)
	return err
}

// RemoveAllProjectsFromGroup empties a group without deleting it.
func (c *Client) RemoveAllProjectsFromGroup(ctx context.Context, groupID int64) error {
	_, err := c.FetchJSON(ctx, http.MethodPut, fmt.Sprintf("project_groups/%d/remove_all_projects", groupID), nil, nil, nil)
	return err
}

// DeleteProjectGroup deletes a project group. Its projects are not
// deleted.
func (c *Client) DeleteProjectGroup(ctx context.Context, groupID int64) error {
	_, err := c.FetchJSON(ctx, http.MethodDelete, fmt.Sprintf("project_groups/%d", groupID), nil, nil, nil)
	return err
}
