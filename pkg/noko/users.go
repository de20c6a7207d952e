package noko

import (
	"context"
	"fmt"
	"net/http"
)

// Roles a Noko user can hold.
var validRoles = []string{"supervisor", "leader", "coworker", "contractor"}

// States a user account can be in.
var validUserStates = []string{"disabled", "pending", "active", "suspended"}

// CreateUserParameters holds the fields for inviting a new user. An
// unset Role defaults to "leader".
type CreateUserParameters struct {
	Email     string // required
	FirstName string
	LastName  string
	Role      string
}

// Normalize validates the parameters and produces the wire-ready set.
func (p CreateUserParameters) Normalize() (Params, error) {
	var errs fieldErrors
	out := Params{}
	out.setString("email", requireString(p.Email, "email", &errs))
	out.setString("first_name", p.FirstName)
	out.setString("last_name", p.LastName)
	role := p.Role
	if role == "" {
		role = "leader"
	}
	out.set("role", checkEnum(role, "role", validRoles, &errs))
	if err := errs.err(); err != nil {
		return nil, err
	}
	return out, nil
}

// EditUserParameters holds the fields for editing a user. All optional.
type EditUserParameters struct {
	FirstName string
	LastName  string
	Role      string
}

// Normalize validates the parameters and produces the wire-ready set.
func (p EditUserParameters) Normalize() (Params, error) {
	var errs fieldErrors
	out := Params{}
	out.setString("first_name", p.FirstName)
	out.setString("last_name", p.LastName)
	out.set("role", checkEnum(p.Role, "role", validRoles, &errs))
	if err := errs.err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetUsersParameters are the filters for listing users.
type GetUsersParameters struct {
	Name  string
	Email string
	Role  string
	State string
}

// Normalize validates the filters and produces the wire-ready set.
func (p GetUsersParameters) Normalize() (Params, error) {
	var errs fieldErrors
	out := Params{}
	out.setString("name", p.Name)
	out.setString("email", p.Email)
	out.set("role", checkEnum(p.Role, "role", validRoles, &errs))
	out.set("state", checkEnum(p.State, "state", validUserStates, &errs))
	if err := errs.err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListUsers returns every user matching the given filters.
func (c *Client) ListUsers(ctx context.Context, p GetUsersParameters) ([]User, error) {
	params, err := p.Normalize()
	if err != nil {
		return nil, err
	}
	raw, err := c.FetchJSON(ctx, http.MethodGet, "users", nil, params, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[User](raw)
}

// GetUser retrieves a single user by ID.
func (c *Client) GetUser(ctx context.Context, userID int64) (*User, error) {
	raw, err := c.FetchJSON(ctx, http.MethodGet, fmt.Sprintf("users/%d", userID), nil, nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeOne[User](raw)
}

// CreateUser invites a new user to the account.
func (c *Client) CreateUser(ctx context.Context, p CreateUserParameters) (*User, error) {
	params, err := p.Normalize()
	if err != nil {
		return nil, err
	}
	raw, err := c.FetchJSON(ctx, http.MethodPost, "users", nil, nil, params)
	if err != nil {
		return nil, err
	}
	return decodeOne[User](raw)
}

// EditUser updates an existing user.
func (c *Client) EditUser(ctx context.Context, userID int64, p EditUserParameters) (*User, error) {
	params, err := p.Normalize()
	if err != nil {
		return nil, err
	}
	raw, err := c.FetchJSON(ctx, http.MethodPut, fmt.Sprintf("users/%d", userID), nil, nil, params)
	if err != nil {
		return nil, err
	}
	return decodeOne[User](raw)
}

// DeactivateUser deactivates a user without deleting their entries. The
// account owner cannot be deactivated.
func (c *Client) DeactivateUser(ctx context.Context, userID int64) error {
	_, err := c.FetchJSON(ctx, http.MethodPut, fmt.Sprintf("users/%d/deactivate", userID), nil, nil, nil)
	return err
}

// DeleteUser deletes a user. Users with entries cannot be deleted;
// deactivate them instead.
func (c *Client) DeleteUser(ctx context.Context, userID int64) error {
	_, err := c.FetchJSON(ctx, http.MethodDelete, fmt.Sprintf("users/%d", userID), nil, nil, nil)
	return err
}
