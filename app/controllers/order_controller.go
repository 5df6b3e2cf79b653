package controllers

import (
	"net/http"

	"github.com/damassweet/damas/app/services"
	"github.com/damassweet/damas/pkg/bind"
	"github.com/damassweet/damas/pkg/middleware"
	"github.com/damassweet/damas/pkg/response"
)

type OrderController struct {
	service *services.OrderService
}

func NewOrderController(service *services.OrderService) *OrderController {
	return &OrderController{service: service}
}

func (c *OrderController) Index(w http.ResponseWriter, _ *http.Request) {
	orders, err := c.service.List()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	response.Success(w, orders)
}

func (c *OrderController) Store(w http.ResponseWriter, r *http.Request) {
	var in services.CreateOrderInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	var createdBy *uint
	if id, ok := middleware.UserIDFromCtx(r.Context()); ok {
		createdBy = &id
	}

	order, err := c.service.Create(in, createdBy)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	response.Created(w, order)
}

func (c *OrderController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var in services.EditOrderInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	order, err := c.service.Edit(id, in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	response.Success(w, order)
}

func (c *OrderController) Assign(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var in struct {
		DriverID uint `json:"driver_id" validate:"required,integer"`
	}
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	order, err := c.service.AssignDriver(id, in.DriverID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	response.Success(w, order)
}

func (c *OrderController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var in struct {
		Status        string `json:"status" validate:"required"`
		FailureReason string `json:"failure_reason"`
	}
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	order, err := c.service.UpdateStatus(id, in.Status, in.FailureReason)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	response.Success(w, order)
}

func (c *OrderController) Confirm(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	order, err := c.service.ConfirmDelivery(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	response.Success(w, order)
}

func (c *OrderController) Notes(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var in struct {
		DriverNotes string `json:"driver_notes"`
	}
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	order, err := c.service.SetDriverNotes(id, in.DriverNotes)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	response.Success(w, order)
}
