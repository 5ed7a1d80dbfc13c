package api

import (
	"context"
	"fmt"
)

// Roles returns every user role.
func (c *Client) Roles(ctx context.Context) ([]Role, error) {
	var resp struct {
		Roles []Role `json:"roles"`
	}
	if err := c.get(ctx, "/roles", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Roles, nil
}

// CreateRole creates a role.
func (c *Client) CreateRole(ctx context.Context, name string, permissions []string) (Role, error) {
	body := struct {
		Name        string   `json:"name"`
		Permissions []string `json:"permissions"`
	}{Name: name, Permissions: permissions}

	var resp struct {
		Role Role `json:"role"`
	}
	if err := c.post(ctx, "/roles", body, &resp); err != nil {
		return Role{}, err
	}
	return resp.Role, nil
}

// UpdateRole replaces a role's name and permissions.
func (c *Client) UpdateRole(ctx context.Context, r Role) (Role, error) {
	var out Role
	if err := c.put(ctx, rolePath(r.ID), r, &out); err != nil {
		return Role{}, err
	}
	if out.ID == 0 {
		return r, nil
	}
	return out, nil
}

// DeleteRole removes a role.
func (c *Client) DeleteRole(ctx context.Context, id int) error {
	return c.delete(ctx, rolePath(id), nil)
}

func rolePath(id int) string {
	return fmt.Sprintf("/roles/%d", id)
}
