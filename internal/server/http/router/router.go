package router

import (
	"html/template"
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/loyaltycampaign/internal/server/http/handlers"
	"github.com/polkiloo/loyaltycampaign/internal/server/http/middleware"
)

var indexTemplate = template.Must(template.New(handlers.IndexTemplate).Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Loyalty campaign report</title>
{{if not .Charts}}<meta http-equiv="refresh" content="2">{{end}}
<style>
body { font-family: sans-serif; margin: 2em; }
figure { margin: 0 0 2em 0; }
</style>
</head>
<body>
{{range .Charts}}<figure><img src="{{.URL}}" alt="{{.Title}}"><figcaption>{{.Title}}</figcaption></figure>
{{else}}<p>Waiting for charts&hellip;</p>
{{end}}
{{if .Charts}}<form method="post" action="/dismiss"><button type="submit">Close charts</button></form>{{end}}
</body>
</html>
`))

// Setup configures gin router serving the chart gallery.
func Setup(gallery handlers.ChartGallery, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.NoStore())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))
	engine.SetHTMLTemplate(indexTemplate)

	chartHandler := handlers.NewChartHandler(gallery)

	engine.GET("/", chartHandler.Index)
	engine.GET("/charts/:index", chartHandler.Chart)
	engine.POST("/dismiss", chartHandler.Dismiss)

	api := engine.Group("/api")
	api.GET("/charts", chartHandler.List)

	return engine
}
