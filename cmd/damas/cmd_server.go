package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/damassweet/damas/app/controllers"
	"github.com/damassweet/damas/app/routes"
	"github.com/damassweet/damas/internal/server"
	"github.com/damassweet/damas/pkg/ws"
)

// damas serve — start the HTTP server.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return server.Start()
	},
}

// damas route:list — print all registered routes.
var routeListCmd = &cobra.Command{
	Use:   "route:list",
	Short: "List all registered named routes",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Handlers are only registered, never invoked, so wiring with
		// nil services is enough to enumerate the surface.
		r := server.NewRouter(ws.NewHub(), routes.Controllers{
			Auth:    controllers.NewAuthController(nil),
			Users:   controllers.NewUserController(nil),
			Orders:  controllers.NewOrderController(nil),
			Stock:   controllers.NewStockController(nil),
			Reports: controllers.NewReportController(nil),
		})

		infos := r.Routes()
		if len(infos) == 0 {
			fmt.Println("No named routes registered.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "METHOD\tPATH\tNAME")
		fmt.Fprintln(w, "------\t----\t----")
		for _, ri := range infos {
			fmt.Fprintf(w, "%s\t%s\t%s\n", ri.Method, ri.Path, ri.Name)
		}
		return w.Flush()
	},
}
