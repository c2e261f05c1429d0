// Package users holds the handlers of the users/ route files.
package users

import (
	"net/http"
	"strconv"

	"github.com/dmitrymomot/filerouter/core/handler"
	"github.com/dmitrymomot/filerouter/core/response"
)

// User is the example user payload.
type User struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Handler serves /users/[id]. Non-numeric ids are rejected with 400,
// unknown ids with 404; POST echoes the user as created.
func Handler(ctx *handler.Context) (handler.Response, error) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil || id <= 0 {
		return nil, response.ErrBadRequest.WithMessage("invalid user id")
	}
	if id > 100 {
		return nil, response.ErrNotFound.WithMessage("user not found")
	}

	user := User{ID: id, Name: ctx.Query("name")}
	if user.Name == "" {
		user.Name = "user-" + strconv.Itoa(id)
	}

	if ctx.Request().Method == http.MethodPost {
		return response.JSONWithStatus(user, http.StatusCreated), nil
	}
	return response.JSON(user), nil
}
