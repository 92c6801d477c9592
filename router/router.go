// Package router wires middleware and handlers into the gin engine.
package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/wayfarerhq/wayfarer-backend/config"
	"github.com/wayfarerhq/wayfarer-backend/handlers"
	"github.com/wayfarerhq/wayfarer-backend/middleware"
)

// Dependencies carries everything the router needs.
type Dependencies struct {
	Config *config.Config
	Redis  *redis.Client

	Trip           *handlers.TripHandler
	Itinerary      *handlers.ItineraryHandler
	Activity       *handlers.ActivityHandler
	Transportation *handlers.TransportationHandler
	Accommodation  *handlers.AccommodationHandler
	Budget         *handlers.BudgetHandler
	Expense        *handlers.ExpenseHandler
	Document       *handlers.DocumentHandler
	Photo          *handlers.PhotoHandler
	Note           *handlers.NoteHandler
	Health         *handlers.HealthHandler
}

// New builds the engine with the full route tree.
func New(deps *Dependencies) *gin.Engine {
	if deps.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.CORSMiddleware(&deps.Config.Server))
	r.Use(middleware.ErrorHandler())

	r.GET("/health", deps.Health.Health)
	r.GET("/health/liveness", deps.Health.Liveness)
	r.GET("/health/readiness", deps.Health.Readiness)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	writeLimiter := middleware.RateLimiter(
		deps.Redis,
		deps.Config.RateLimit.RequestsPerMinute,
		time.Duration(deps.Config.RateLimit.WindowSeconds)*time.Second,
	)

	v1 := r.Group("/v1")
	v1.Use(middleware.AuthMiddleware(&deps.Config.Server))
	v1.Use(middleware.ValidatePathIDs())

	trips := v1.Group("/trips")
	{
		trips.GET("", deps.Trip.ListTrips)
		trips.POST("", writeLimiter, deps.Trip.CreateTrip)
		trips.GET("/:id", deps.Trip.GetTrip)
		trips.PUT("/:id", writeLimiter, deps.Trip.UpdateTrip)
		trips.DELETE("/:id", writeLimiter, deps.Trip.DeleteTrip)
	}

	itineraries := trips.Group("/:id/itineraries")
	{
		itineraries.GET("", deps.Itinerary.ListItineraries)
		itineraries.POST("", writeLimiter, deps.Itinerary.CreateItinerary)
		itineraries.GET("/:itineraryId", deps.Itinerary.GetItinerary)
		itineraries.PUT("/:itineraryId", writeLimiter, deps.Itinerary.UpdateItinerary)
		itineraries.DELETE("/:itineraryId", writeLimiter, deps.Itinerary.DeleteItinerary)

		itineraries.POST("/:itineraryId/activities", writeLimiter, deps.Itinerary.AddActivity)
		itineraries.PUT("/:itineraryId/activities/:itineraryActivityId", writeLimiter, deps.Itinerary.UpdateActivity)
		itineraries.DELETE("/:itineraryId/activities/:itineraryActivityId", writeLimiter, deps.Itinerary.RemoveActivity)
	}

	activities := trips.Group("/:id/activities")
	{
		activities.GET("", deps.Activity.ListActivities)
		activities.POST("", writeLimiter, deps.Activity.CreateActivity)
		activities.GET("/:activityId", deps.Activity.GetActivity)
		activities.PUT("/:activityId", writeLimiter, deps.Activity.UpdateActivity)
		activities.DELETE("/:activityId", writeLimiter, deps.Activity.DeleteActivity)
	}

	transportations := trips.Group("/:id/transportations")
	{
		transportations.GET("", deps.Transportation.ListTransportations)
		transportations.POST("", writeLimiter, deps.Transportation.CreateTransportation)
		transportations.GET("/:transportationId", deps.Transportation.GetTransportation)
		transportations.PUT("/:transportationId", writeLimiter, deps.Transportation.UpdateTransportation)
		transportations.DELETE("/:transportationId", writeLimiter, deps.Transportation.DeleteTransportation)
	}

	accommodations := trips.Group("/:id/accommodations")
	{
		accommodations.GET("", deps.Accommodation.ListAccommodations)
		accommodations.POST("", writeLimiter, deps.Accommodation.CreateAccommodation)
		accommodations.GET("/:accommodationId", deps.Accommodation.GetAccommodation)
		accommodations.PUT("/:accommodationId", writeLimiter, deps.Accommodation.UpdateAccommodation)
		accommodations.DELETE("/:accommodationId", writeLimiter, deps.Accommodation.DeleteAccommodation)
	}

	budgets := trips.Group("/:id/budgets")
	{
		budgets.GET("", deps.Budget.ListBudgets)
		budgets.POST("", writeLimiter, deps.Budget.CreateBudget)
		budgets.GET("/:budgetId", deps.Budget.GetBudget)
		budgets.PUT("/:budgetId", writeLimiter, deps.Budget.UpdateBudget)
		budgets.DELETE("/:budgetId", writeLimiter, deps.Budget.DeleteBudget)
	}

	expenses := trips.Group("/:id/expenses")
	{
		expenses.GET("", deps.Expense.ListExpenses)
		expenses.POST("", writeLimiter, deps.Expense.CreateExpense)
		expenses.GET("/:expenseId", deps.Expense.GetExpense)
		expenses.PUT("/:expenseId", writeLimiter, deps.Expense.UpdateExpense)
		expenses.DELETE("/:expenseId", writeLimiter, deps.Expense.DeleteExpense)
	}

	documents := trips.Group("/:id/documents")
	{
		documents.GET("", deps.Document.ListDocuments)
		documents.POST("", writeLimiter, deps.Document.CreateDocument)
		documents.GET("/:documentId", deps.Document.GetDocument)
		documents.PUT("/:documentId", writeLimiter, deps.Document.UpdateDocument)
		documents.DELETE("/:documentId", writeLimiter, deps.Document.DeleteDocument)
	}

	photos := trips.Group("/:id/photos")
	{
		photos.GET("", deps.Photo.ListPhotos)
		photos.POST("", writeLimiter, deps.Photo.CreatePhoto)
		photos.GET("/:photoId", deps.Photo.GetPhoto)
		photos.PUT("/:photoId", writeLimiter, deps.Photo.UpdatePhoto)
		photos.DELETE("/:photoId", writeLimiter, deps.Photo.DeletePhoto)
	}

	notes := trips.Group("/:id/notes")
	{
		notes.GET("", deps.Note.ListNotes)
		notes.POST("", writeLimiter, deps.Note.CreateNote)
		notes.GET("/:noteId", deps.Note.GetNote)
		notes.PUT("/:noteId", writeLimiter, deps.Note.UpdateNote)
		notes.DELETE("/:noteId", writeLimiter, deps.Note.DeleteNote)
	}

	return r
}
