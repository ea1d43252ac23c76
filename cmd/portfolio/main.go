package main

// @title Portfolio API
// @version 1.0
// @description Blog, projects, gallery and contact API with an admin dashboard.
// @BasePath /

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	Execute()
}
