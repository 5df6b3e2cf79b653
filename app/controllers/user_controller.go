package controllers

import (
	"net/http"

	"github.com/damassweet/damas/app/services"
	"github.com/damassweet/damas/pkg/bind"
	"github.com/damassweet/damas/pkg/response"
)

type UserController struct {
	service *services.UserService
}

func NewUserController(service *services.UserService) *UserController {
	return &UserController{service: service}
}

func (c *UserController) Index(w http.ResponseWriter, _ *http.Request) {
	users, err := c.service.List()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	response.Success(w, users)
}

func (c *UserController) Store(w http.ResponseWriter, r *http.Request) {
	var in services.CreateUserInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	user, err := c.service.Create(in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	response.Created(w, user)
}

func (c *UserController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var in services.UpdateUserInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	user, err := c.service.Update(id, in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	response.Success(w, user)
}

func (c *UserController) Destroy(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := c.service.Delete(id); err != nil {
		writeServiceError(w, err)
		return
	}
	response.Success(w, map[string]bool{"success": true})
}
