// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"library/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	BookHandler        *handler.BookHandler
	ReservationHandler *handler.ReservationHandler
	NewsHandler        *handler.NewsHandler
	NoticeHandler      *handler.NoticeHandler
	FeatureHandler     *handler.FeatureHandler
	LibrarianHandler   *handler.LibrarianHandler
	EditorHandler      *handler.EditorHandler
}

// Router holds all the handlers that need to be registered.
type Router struct {
	bookHandler        *handler.BookHandler
	reservationHandler *handler.ReservationHandler
	newsHandler        *handler.NewsHandler
	noticeHandler      *handler.NoticeHandler
	featureHandler     *handler.FeatureHandler
	librarianHandler   *handler.LibrarianHandler
	editorHandler      *handler.EditorHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *Router {
	return &Router{
		bookHandler:        params.BookHandler,
		reservationHandler: params.ReservationHandler,
		newsHandler:        params.NewsHandler,
		noticeHandler:      params.NoticeHandler,
		featureHandler:     params.FeatureHandler,
		librarianHandler:   params.LibrarianHandler,
		editorHandler:      params.EditorHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *Router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Public site
	books := e.Group("/books")
	{
		books.GET("", r.bookHandler.ListBooks)
		books.GET("/:id", r.bookHandler.GetBook)
		books.POST("/:id/reviews", r.bookHandler.AddReview)
		books.POST("/:id/reservations", r.reservationHandler.Reserve)
	}

	news := e.Group("/news")
	{
		news.GET("", r.newsHandler.ListNews)
		news.GET("/:id", r.newsHandler.GetNews)
		news.GET("/:id/files/:field", r.newsHandler.DownloadFile)
	}

	notices := e.Group("/notices")
	{
		notices.GET("", r.noticeHandler.ListNotices)
		notices.GET("/:id", r.noticeHandler.GetNotice)
	}

	e.GET("/feature", r.featureHandler.GetFeature)

	// Admin console; access control is left to the deployment in front of it
	admin := e.Group("/admin")
	{
		admin.POST("/books", r.bookHandler.CreateBook)
		admin.POST("/books/bulk", r.librarianHandler.BulkRegister)
		admin.PATCH("/books/:id", r.bookHandler.PatchBook)
		admin.DELETE("/books/:id", r.bookHandler.DeleteBook)
		admin.POST("/books/:id/enrich", r.librarianHandler.EnrichBook)

		admin.POST("/news", r.newsHandler.CreateNews)
		admin.PATCH("/news/:id", r.newsHandler.PatchNews)
		admin.DELETE("/news/:id", r.newsHandler.DeleteNews)
		admin.POST("/news/:id/markup", r.newsHandler.InsertMarkup)
		admin.POST("/news/:id/files/:field", r.newsHandler.UploadFile)

		admin.POST("/notices", r.noticeHandler.CreateNotice)
		admin.PATCH("/notices/:id", r.noticeHandler.PatchNotice)
		admin.DELETE("/notices/:id", r.noticeHandler.DeleteNotice)
		admin.POST("/notices/:id/markup", r.noticeHandler.InsertMarkup)

		admin.PATCH("/feature", r.featureHandler.PatchFeature)
		admin.POST("/feature/markup", r.featureHandler.InsertMarkup)

		admin.GET("/reservations", r.reservationHandler.ListReservations)
		admin.PATCH("/reservations/:id", r.reservationHandler.UpdateStatus)
		admin.POST("/reservations/:id/verify", r.reservationHandler.VerifyPassphrase)
		admin.GET("/reservations/:id/qrcode", r.reservationHandler.PickupQRCode)
		admin.DELETE("/reservations/:id", r.reservationHandler.DeleteReservation)

		admin.POST("/commands", r.editorHandler.Dispatch)
		admin.GET("/markup-tools", r.editorHandler.MarkupTools)
	}
}
