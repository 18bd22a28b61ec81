package http

import (
	"time"

	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bereketsol/inkwell/internal/domain/contract"
	"github.com/bereketsol/inkwell/internal/handler/http/middleware"
	"github.com/bereketsol/inkwell/internal/usecase"
	usecasecontract "github.com/bereketsol/inkwell/internal/usecase/contract"
)

type Router struct {
	userHandler     *UserHandler
	authHandler     *AuthHandler
	blogHandler     *BlogHandler
	commentHandler  *CommentHandler
	reactionHandler *ReactionHandler
	tokenService    usecasecontract.ITokenService
	cacheStore      contract.ICacheStore
	logger          usecasecontract.IAppLogger
	config          usecasecontract.IConfigProvider
}

func NewRouter(
	userUC usecasecontract.IUserUseCase,
	blogUC usecasecontract.IBlogUseCase,
	commentUC usecasecontract.ICommentUseCase,
	reactionUC usecasecontract.IReactionUseCase,
	tokenService usecasecontract.ITokenService,
	cacheStore contract.ICacheStore,
	logger usecasecontract.IAppLogger,
	config usecasecontract.IConfigProvider,
) *Router {
	return &Router{
		userHandler:     NewUserHandler(userUC),
		authHandler:     NewAuthHandler(userUC, config.GetAppBaseURL()),
		blogHandler:     NewBlogHandler(blogUC),
		commentHandler:  NewCommentHandler(commentUC),
		reactionHandler: NewReactionHandler(reactionUC),
		tokenService:    tokenService,
		cacheStore:      cacheStore,
		logger:          logger,
		config:          config,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	// rate limiter configuration
	lmt := tollbooth.NewLimiter(10, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
	lmt.SetIPLookups([]string{"RemoteAddr", "X-Forwarded-For", "X-Real-IP"})
	lmt.SetMessage("Too many requests, please try again later.")
	router.Use(middleware.RateLimiter(lmt))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")

	// Public routes (no authentication required)
	auth := v1.Group("/auth")
	{
		auth.POST("/register", r.userHandler.RegisterHandler)
		auth.POST("/login", r.userHandler.LoginHandler)

		// Google OAuth endpoints
		auth.GET("/google/login", r.authHandler.HandleGoogleLogin)
		auth.GET("/google/callback", r.authHandler.HandleGoogleCallback)
	}

	// Public cached blog reads
	blogs := v1.Group("/blogs")
	{
		blogs.GET("/home",
			middleware.CachePage(r.cacheStore, r.logger, usecase.CacheNamespaceHomepage, middleware.RequestPathKey, r.config.GetHomepageCacheTTL()),
			r.blogHandler.GetHomepageHandler)
		blogs.GET("/categories",
			middleware.CachePage(r.cacheStore, r.logger, usecase.CacheNamespaceCategory, middleware.RequestPathKey, r.config.GetCategoryCacheTTL()),
			r.blogHandler.GetCategoriesHandler)
		blogs.GET("/:slug",
			middleware.CachePage(r.cacheStore, r.logger, usecase.CacheNamespaceBlog, middleware.ParamKey("slug"), r.config.GetBlogDetailCacheTTL()),
			r.blogHandler.GetBlogDetailHandler)
	}

	// Protected routes (authentication required)
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(r.tokenService))
	{
		protected.GET("/me", r.userHandler.GetCurrentUserHandler)

		// Blog routes
		protected.POST("/blogs", r.blogHandler.CreateBlogHandler)
		protected.PUT("/blogs/:slug", r.blogHandler.UpdateBlogHandler)
		protected.DELETE("/blogs/:slug", r.blogHandler.DeleteBlogHandler)

		// Reaction routes
		protected.POST("/blogs/:slug/react", r.reactionHandler.ReactToBlogHandler)
		protected.POST("/blogs/:slug/comment/:commentID/react", r.reactionHandler.ReactToCommentHandler)
		protected.POST("/reply/:replyID/react", r.reactionHandler.ReactToReplyHandler)

		// Comment and reply routes
		protected.POST("/blogs/:slug/comment", r.commentHandler.AddCommentHandler)
		protected.PUT("/comments/:commentID", r.commentHandler.EditCommentHandler)
		protected.DELETE("/comments/:commentID", r.commentHandler.DeleteCommentHandler)
		protected.POST("/comments/:commentID/reply", r.commentHandler.AddReplyHandler)
		protected.PUT("/replies/:replyID", r.commentHandler.EditReplyHandler)
		protected.DELETE("/comments/:commentID/replies/:replyID", r.commentHandler.DeleteReplyHandler)
	}
}
