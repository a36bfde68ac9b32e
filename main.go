package main

import (
	"log"
	"net/http"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"scanquote/collections"
	"scanquote/handlers"
	"scanquote/services"
)

func main() {
	app := pocketbase.New()

	rates := services.NewRateStore(services.DefaultRateTable())

	// Create collections and seed data on startup, then load the persisted
	// rate table into the live store.
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			log.Printf("Warning: seed data failed: %v", err)
		}
		rates.Swap(collections.LoadRateTable(app))
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// Serve static files from ./static
		se.Router.GET("/static/{path...}", apis.Static(os.DirFS("./static"), false))

		// ── Quote API ────────────────────────────────────────────
		se.Router.POST("/api/quotes/preview", handlers.HandleQuotePreview(app, rates))
		se.Router.POST("/api/quotes/preview/excel", handlers.HandleQuotePreviewExcel(rates))
		se.Router.POST("/api/quotes", handlers.HandleQuoteCreate(app, rates))
		se.Router.GET("/api/quotes/{id}", handlers.HandleQuoteJSON(app))

		// ── Rate table API ───────────────────────────────────────
		se.Router.GET("/api/rates", handlers.HandleRatesGet(rates))
		se.Router.PUT("/api/rates", handlers.HandleRatesUpdate(app, rates))

		// ── Form options ─────────────────────────────────────────
		se.Router.GET("/api/options", handlers.HandleOptionsGet())

		// ── Quote pages ──────────────────────────────────────────
		se.Router.GET("/quotes", handlers.HandleQuoteList(app))
		se.Router.GET("/quotes/{id}/export/pdf", handlers.HandleQuoteExportPDF(app))
		se.Router.GET("/quotes/{id}/export/excel", handlers.HandleQuoteExportExcel(app))
		se.Router.GET("/quotes/{id}", handlers.HandleQuoteView(app))
		se.Router.DELETE("/quotes/{id}", handlers.HandleQuoteDelete(app))

		// ── Client CRUD ──────────────────────────────────────────
		se.Router.GET("/clients", handlers.HandleClientList(app))
		se.Router.GET("/clients/create", handlers.HandleClientCreate(app))
		se.Router.POST("/clients", handlers.HandleClientSave(app))
		se.Router.DELETE("/clients/{id}", handlers.HandleClientDelete(app))

		// Redirect home to quotes list
		se.Router.GET("/", func(e *core.RequestEvent) error {
			return e.Redirect(http.StatusFound, "/quotes")
		})

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
