package upstream

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"texinroistot-web/models"
)

const (
	PathMe         = "/api/me"
	PathLogout     = "/api/logout"
	PathAdminUsers = "/api/admin/users"
	PathStories    = "/api/stories"
)

type AuthAPI struct {
	Me     MeAPI
	Logout LogoutAPI
}

type MeAPI struct{ c *Client }

func (a MeAPI) Read(ctx context.Context) (*Result, error) {
	return a.c.Get(ctx, PathMe, nil)
}

type LogoutAPI struct{ c *Client }

func (a LogoutAPI) Post(ctx context.Context) (*Result, error) {
	return a.c.Post(ctx, PathLogout, nil, nil)
}

type AdminAPI struct {
	Users UsersAPI
}

type UsersAPI struct{ c *Client }

func (a UsersAPI) List(ctx context.Context) (*Result, error) {
	return a.c.Get(ctx, PathAdminUsers, nil)
}

type StoriesAPI struct{ c *Client }

// List fetches the story list. A limit of zero leaves the backend default.
func (a StoriesAPI) List(ctx context.Context, limit int) (models.StoriesPayload, error) {
	var params url.Values
	if limit > 0 {
		params = url.Values{"limit": {strconv.Itoa(limit)}}
	}

	var payload models.StoriesPayload
	if _, err := a.c.request(ctx, http.MethodGet, PathStories, params, nil, &payload); err != nil {
		return models.StoriesPayload{}, err
	}
	return payload, nil
}
