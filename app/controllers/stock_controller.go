package controllers

import (
	"net/http"

	"github.com/damassweet/damas/app/services"
	"github.com/damassweet/damas/pkg/bind"
	"github.com/damassweet/damas/pkg/response"
)

type StockController struct {
	service *services.StockService
}

func NewStockController(service *services.StockService) *StockController {
	return &StockController{service: service}
}

// Index lists handouts for ?date=YYYY-MM-DD, or the whole ledger without it.
func (c *StockController) Index(w http.ResponseWriter, r *http.Request) {
	entries, err := c.service.List(r.URL.Query().Get("date"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	response.Success(w, entries)
}

func (c *StockController) Store(w http.ResponseWriter, r *http.Request) {
	var in services.RecordHandoutInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	entry, err := c.service.Record(in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	response.Created(w, entry)
}
