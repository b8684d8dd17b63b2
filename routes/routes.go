package routes

import (
	"kidcare/auth"
	"kidcare/bookings"
	"kidcare/middleware"
	"kidcare/nannies"
	"kidcare/pay"
	"kidcare/ratelim"
	"kidcare/reviews"
	"kidcare/services"
	"kidcare/users"

	"github.com/julienschmidt/httprouter"
)

func AddAuthRoutes(router *httprouter.Router, rl *ratelim.RateLimiter, h *auth.Handler) {
	router.POST("/jwt", rl.Limit(h.IssueToken))
}

func AddUserRoutes(router *httprouter.Router, g *middleware.Guard, svc *users.Service) {
	router.GET("/users", middleware.Chain(g.Authenticate, g.RequireAdmin)(svc.GetUsers))
	router.POST("/users", g.Authenticate(svc.CreateUser))
	router.GET("/users/admin/:email", svc.IsAdmin)
	router.PATCH("/users/admin/:id", middleware.Chain(g.Authenticate, g.RequireAdmin)(svc.PromoteToAdmin))
}

func AddServiceRoutes(router *httprouter.Router, g *middleware.Guard, svc *services.Service) {
	router.GET("/services", svc.GetServices)
	router.POST("/services", middleware.Chain(g.Authenticate, g.RequireAdmin)(svc.CreateService))
	router.DELETE("/services/:id", middleware.Chain(g.Authenticate, g.RequireAdmin)(svc.DeleteService))
}

func AddReviewRoutes(router *httprouter.Router, rl *ratelim.RateLimiter, svc *reviews.Service) {
	router.GET("/reviews", svc.GetReviews)
	router.POST("/reviews", rl.Limit(svc.CreateReview))
}

func AddNannyRoutes(router *httprouter.Router, svc *nannies.Service) {
	router.GET("/nannies", svc.GetNannies)
}

func AddBookingRoutes(router *httprouter.Router, g *middleware.Guard, rl *ratelim.RateLimiter, svc *bookings.Service) {
	router.GET("/bookings", svc.GetBookingsByEmail)
	router.POST("/bookings", rl.Limit(svc.CreateBooking))
	router.GET("/allbookings", middleware.Chain(g.Authenticate, g.RequireAdmin)(svc.GetAllBookings))
	router.POST("/allbookings", g.Authenticate(svc.CreateBookingIfNew))
	router.GET("/allbookings/status/:id", svc.CheckBookingStatus)
	router.PATCH("/allbookings/status/:id", middleware.Chain(g.Authenticate, g.RequireAdmin)(svc.UpdateBookingStatus))
}

func AddPayRoutes(router *httprouter.Router, g *middleware.Guard, rl *ratelim.RateLimiter, svc *pay.Service) {
	router.POST("/create-payment-intent", g.Authenticate(svc.CreatePaymentIntent))
	router.POST("/payments", rl.Limit(svc.CreatePayment))
}
