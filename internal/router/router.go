package router

import (
	"net/http"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	_ "github.com/tribertmuto/alx-travel-app-0x01/docs"
	"github.com/tribertmuto/alx-travel-app-0x01/internal/authz"
	"github.com/tribertmuto/alx-travel-app-0x01/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	ListListings(c *ginext.Context)
	CreateListing(c *ginext.Context)
	GetListing(c *ginext.Context)
	UpdateListing(c *ginext.Context)
	PatchListing(c *ginext.Context)
	DeleteListing(c *ginext.Context)
	AvailableListings(c *ginext.Context)
	ListingsByLocation(c *ginext.Context)
	ListingReviews(c *ginext.Context)

	ListBookings(c *ginext.Context)
	CreateBooking(c *ginext.Context)
	GetBooking(c *ginext.Context)
	UpdateBooking(c *ginext.Context)
	PatchBooking(c *ginext.Context)
	DeleteBooking(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	ConfirmBooking(c *ginext.Context)
	MyBookings(c *ginext.Context)
	ReviewBooking(c *ginext.Context)

	Register(c *ginext.Context)
	Login(c *ginext.Context)
	Logout(c *ginext.Context)
	Me(c *ginext.Context)
}

// InitRouter builds the engine. mw runs first on every request and
// authenticate runs on every /api route before its authorization rule.
func InitRouter(mode string, h Handler, authenticate ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	allow := middleware.Authorize

	api := router.Group("/api", authenticate)
	{
		// Listings
		api.GET("/listings/", allow(authz.Listing, authz.List), h.ListListings)
		api.POST("/listings/", allow(authz.Listing, authz.Create), h.CreateListing)
		api.GET("/listings/available/", allow(authz.Listing, authz.Available), h.AvailableListings)
		api.GET("/listings/by_location/", allow(authz.Listing, authz.ByLocation), h.ListingsByLocation)
		api.GET("/listings/:id/", allow(authz.Listing, authz.Retrieve), h.GetListing)
		api.PUT("/listings/:id/", allow(authz.Listing, authz.Update), h.UpdateListing)
		api.PATCH("/listings/:id/", allow(authz.Listing, authz.PartialUpdate), h.PatchListing)
		api.DELETE("/listings/:id/", allow(authz.Listing, authz.Delete), h.DeleteListing)
		api.GET("/listings/:id/reviews/", allow(authz.Listing, authz.Reviews), h.ListingReviews)

		// Bookings
		api.GET("/bookings/", allow(authz.Booking, authz.List), h.ListBookings)
		api.POST("/bookings/", allow(authz.Booking, authz.Create), h.CreateBooking)
		api.GET("/bookings/my_bookings/", allow(authz.Booking, authz.MyBookings), h.MyBookings)
		api.GET("/bookings/:id/", allow(authz.Booking, authz.Retrieve), h.GetBooking)
		api.PUT("/bookings/:id/", allow(authz.Booking, authz.Update), h.UpdateBooking)
		api.PATCH("/bookings/:id/", allow(authz.Booking, authz.PartialUpdate), h.PatchBooking)
		api.DELETE("/bookings/:id/", allow(authz.Booking, authz.Delete), h.DeleteBooking)
		api.POST("/bookings/:id/cancel/", allow(authz.Booking, authz.Cancel), h.CancelBooking)
		api.POST("/bookings/:id/confirm/", allow(authz.Booking, authz.Confirm), h.ConfirmBooking)
		api.POST("/bookings/:id/review/", allow(authz.Booking, authz.Review), h.ReviewBooking)

		// Accounts
		api.POST("/auth/register/", allow(authz.Account, authz.Register), h.Register)
		api.POST("/auth/login/", allow(authz.Account, authz.Login), h.Login)
		api.POST("/auth/logout/", allow(authz.Account, authz.Logout), h.Logout)
		api.GET("/auth/me/", allow(authz.Account, authz.Me), h.Me)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}
