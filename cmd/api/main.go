package main

// @title NYC Housing Insights API
// @version 1.0
// @description Read-only analytics API over the New York housing dataset: borough-normalized listings, price distribution, luxury finder, geographic heatmap and price-versus-size scatter.

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Viewer token issued by POST /api/login, sent as "Bearer <token>". Only checked when authentication is enabled.

func main() {
	cfg := LoadConfiguration()

	app := NewApp(cfg)
	defer app.cleanup()

	app.InitializeServer()
	app.StartServer()
}
