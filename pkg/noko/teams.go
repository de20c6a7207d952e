package noko

import (
	"context"
	"fmt"
	"net/http"
)

// CreateTeamParameters holds the fields for creating a team. A team
// cannot exist without members, so UserIDs is required.
type CreateTeamParameters struct {
	Name    string // required
	UserIDs any    // required
}

// Normalize validates the parameters and produces the wire-ready set.
func (p CreateTeamParameters) Normalize() (Params, error) {
	var errs fieldErrors
	out := Params{}
	out.setString("name", requireString(p.Name, "name", &errs))
	out.set("user_ids", idListToWire(requireSet(p.UserIDs, "user_ids", &errs)))
	if err := errs.err(); err != nil {
		return nil, err
	}
	return out, nil
}

// EditTeamParameters holds the fields for editing a team. All optional.
type EditTeamParameters struct {
	Name    string
	UserIDs any
}

// Normalize validates the parameters and produces the wire-ready set.
func (p EditTeamParameters) Normalize() (Params, error) {
	out := Params{}
	out.setString("name", p.Name)
	out.set("user_ids", idListToWire(p.UserIDs))
	return out, nil
}

// GetTeamsParameters are the filters for listing teams.
type GetTeamsParameters struct {
	Name    string
	UserIDs any
}

// Normalize validates the filters and produces the wire-ready set.
func (p GetTeamsParameters) Normalize() (Params, error) {
	out := Params{}
	out.setString("name", p.Name)
	out.set("user_ids", idListToWire(p.UserIDs))
	return out, nil
}

// ListTeams returns every team matching the given filters.
func (c *Client) ListTeams(ctx context.Context, p GetTeamsParameters) ([]Team, error) {
	params, err := p.Normalize()
	if err != nil {
		return nil, err
	}
	raw, err := c.FetchJSON(ctx, http.MethodGet, "teams", nil, params, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[Team](raw)
}

// GetTeam retrieves a single team by ID.
func (c *Client) GetTeam(ctx context.Context, teamID int64) (*Team, error) {
	raw, err := c.FetchJSON(ctx, http.MethodGet, fmt.Sprintf("teams/%d", teamID), nil, nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeOne[Team](raw)
}

// CreateTeam creates a new team around the given users.
func (c *Client) CreateTeam(ctx context.Context, p CreateTeamParameters) (*Team, error) {
	params, err := p.Normalize()
	if err != nil {
		return nil, err
	}
	raw, err := c.FetchJSON(ctx, http.MethodPost, "teams", nil, nil, params)
	if err != nil {
		return nil, err
	}
	return decodeOne[Team](raw)
}

// EditTeam updates an existing team.
func (c *Client) EditTeam(ctx context.Context, teamID int64, p EditTeamParameters) (*Team, error) {
	params, err := p.Normalize()
	if err != nil {
		return nil, err
	}
	raw, err := c.FetchJSON(ctx, http.MethodPut, fmt.Sprintf("teams/%d", teamID), nil, nil, params)
	if err != nil {
		return nil, err
	}
	return decodeOne[Team](raw)
}

// EntriesForTeam returns every entry logged by the team's members,
// filtered like ListEntries.
func (c *Client) EntriesForTeam(ctx context.Context, teamID int64, p GetEntriesParameters) ([]Entry, error) {
	params, err := p.Normalize()
	if err != nil {
		return nil, err
	}
	raw, err := c.FetchJSON(ctx, http.MethodGet, fmt.Sprintf("teams/%d/entries", teamID), nil, params, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[Entry](raw)
}

// UsersForTeam returns the team's members.
func (c *Client) UsersForTeam(ctx context.Context, teamID int64) ([]User, error) {
	raw, err := c.FetchJSON(ctx, http.MethodGet, fmt.Sprintf("teams/%d/users", teamID), nil, nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[User](raw)
}

// AddUsersToTeam adds users to an existing team.
func (c *Client) AddUsersToTeam(ctx context.Context, teamID int64, userIDs any) ([]User, error) {
	body := Params{"user_ids": idListToInts(userIDs)}
	raw, err := c.FetchJSON(ctx, http.MethodPost, fmt.Sprintf("teams/%d/add_users", teamID), nil, nil, body)
	if err != nil {
		return nil, err
	}
	return decodeList[User](raw)
}

// RemoveUsersFromTeam removes the given users from a team.
func (c *Client) RemoveUsersFromTeam(ctx context.Context, teamID int64, userIDs any) error {
	body := Params{"user_ids": idListToInts(userIDs)}
	_, err := c.FetchJSON(ctx, http.MethodPut, fmt.Sprintf("teams/%d/remove_users", teamID), nil, nil, body)
	return err
}

// RemoveAllUsersFromTeam empties a team without deleting it.
func (c *Client) RemoveAllUsersFromTeam(ctx context.Context, teamID int64) error {
	_, err := c.FetchJSON(ctx, http.MethodPut, fmt.Sprintf("teams/%d/remove_all_users", teamID), nil, nil, nil)
	return err
}

// DeleteTeam deletes a team. Its members are not deleted.
func (c *Client) DeleteTeam(ctx context.Context, teamID int64) error {
	_, err := c.FetchJSON(ctx, http.MethodDelete, fmt.Sprintf("teams/%d", teamID), nil, nil, nil)
	return err
}
