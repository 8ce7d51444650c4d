package routes

import (
	handlers "rideadmin/internal/handlers/admin"
	"rideadmin/internal/middleware"
	"rideadmin/pkg/websocket"

	"github.com/gin-gonic/gin"
)

type AdminHandlers struct {
	Users        *handlers.UserHandler
	Rides        *handlers.RideHandler
	Emergencies  *handlers.EmergencyHandler
	Frauds       *handlers.FraudHandler
	FareControls *handlers.FareControlHandler
	Health       *handlers.HealthHandler
	WebSocket    *websocket.Handler
}

type RouteOptions struct {
	// JWTSecret enables admin token checks on the REST endpoints when set.
	JWTSecret     string
	WebSocketPath string
}

// SetupAdminRoutes registers the dashboard endpoints at the root path.
func SetupAdminRoutes(r *gin.Engine, h *AdminHandlers, opts RouteOptions) {
	r.GET("/health", h.Health.Health)

	wsPath := opts.WebSocketPath
	if wsPath == "" {
		wsPath = "/ws"
	}
	r.GET(wsPath, h.WebSocket.HandleWebSocket)

	admin := r.Group("/")
	if opts.JWTSecret != "" {
		admin.Use(middleware.AuthRequired(opts.JWTSecret), middleware.AdminRequired())
	}
	{
		// Users
		admin.GET("/getUsers", h.Users.GetUsers)
		admin.GET("/getUser/:id", h.Users.GetUser)
		admin.GET("/getUserByName/:name", h.Users.GetUserByName)
		admin.PUT("/banUser/:id", h.Users.BanUser)

		// Rides
		admin.GET("/getRides", h.Rides.GetRides)
		admin.GET("/getRidebyDriver/:name", h.Rides.GetRidesByName)

		// Emergencies
		admin.GET("/getEmergencies", h.Emergencies.GetEmergencies)
		admin.GET("/getEmergenciesByName/:name", h.Emergencies.GetEmergenciesByName)

		// Frauds
		admin.GET("/getFrauds", h.Frauds.GetFrauds)
		admin.GET("/getFraudsByName/:name", h.Frauds.GetFraudsByName)

		// Fare controls
		admin.GET("/getFareControls", h.FareControls.GetFareControls)
		admin.PUT("/updateFareControls", h.FareControls.UpdateFareControls)
	}
}
