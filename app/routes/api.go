// Package routes declares the HTTP command surface.
package routes

import (
	"github.com/damassweet/damas/app/controllers"
	"github.com/damassweet/damas/app/models"
	"github.com/damassweet/damas/pkg/middleware"
	"github.com/damassweet/damas/pkg/rbac"
	"github.com/damassweet/damas/pkg/router"
)

// Controllers bundles everything RegisterAPI mounts.
type Controllers struct {
	Auth    *controllers.AuthController
	Users   *controllers.UserController
	Orders  *controllers.OrderController
	Stock   *controllers.StockController
	Reports *controllers.ReportController
}

// RegisterAPI mounts the command surface under /api. Role gates follow the
// dashboard's division of labour: admins run everything, confirmatrices
// dispatch, livreurs report delivery outcomes, factory records handouts,
// comptables read the money side.
func RegisterAPI(r *router.Router, c Controllers) {
	api := r.Group("/api")

	api.Post("/auth/login", "auth.login", c.Auth.Login)
	api.Post("/auth/logout", "auth.logout", c.Auth.Logout)

	authed := api.Group("", middleware.Auth)
	authed.Get("/auth/me", "auth.me", c.Auth.Me)

	admin := authed.Group("", rbac.HasRole(models.RoleAdmin))
	admin.Get("/users", "users.index", c.Users.Index)
	admin.Post("/users", "users.store", c.Users.Store)
	admin.Put("/users/{id}", "users.update", c.Users.Update)
	admin.Delete("/users/{id}", "users.destroy", c.Users.Destroy)

	authed.Get("/orders", "orders.index", c.Orders.Index)

	dispatch := rbac.HasRole(models.RoleAdmin, models.RoleConfirmatrice)
	authed.Post("/orders", "orders.store", c.Orders.Store, dispatch)
	authed.Put("/orders/{id}", "orders.update", c.Orders.Update, dispatch)
	authed.Patch("/orders/{id}/assign", "orders.assign", c.Orders.Assign, dispatch)
	authed.Patch("/orders/{id}/confirm", "orders.confirm", c.Orders.Confirm, dispatch)

	deliver := rbac.HasRole(models.RoleAdmin, models.RoleLivreur)
	authed.Patch("/orders/{id}/status", "orders.status", c.Orders.UpdateStatus, deliver)
	authed.Patch("/orders/{id}/notes", "orders.notes", c.Orders.Notes, deliver)

	authed.Get("/stock", "stock.index", c.Stock.Index)
	authed.Post("/stock", "stock.store", c.Stock.Store,
		rbac.HasRole(models.RoleAdmin, models.RoleFactory))

	reporting := rbac.HasRole(models.RoleAdmin, models.RoleComptable)
	authed.Get("/reports/reconciliation", "reports.reconciliation", c.Reports.Reconciliation, reporting)
	authed.Post("/reports/reconciliation/export", "reports.export", c.Reports.Export, reporting)
}
