package api

import (
	"music_library/internal/apperr"     // Typed failures
	"music_library/internal/config"     // Application configuration
	"music_library/internal/domain"     // Role constants
	"music_library/internal/middleware" // Custom middleware
	"music_library/internal/repository" // Data access
	"music_library/internal/utils"      // Cache
	"time"                              // CORS preflight cache

	"github.com/gin-contrib/cors"  // CORS middleware
	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"gorm.io/gorm"                 // GORM ORM library
)

// NewRouter builds the HTTP engine with every route of the API.
// rdb may be nil, in which case list responses are not cached.
func NewRouter(cfg *config.Config, db *gorm.DB, rdb *redis.Client) (*gin.Engine, error) {
	RegisterValidators()

	r := gin.New() // Gin router instance
	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, err
	}

	r.Use(
		middleware.RequestLogger(),
		middleware.ErrorHandler(cfg.IsDevelopment()), // Must wrap Recovery to render panics
		middleware.Recovery(),
		middleware.SecurityHeaders(cfg.IsProd()),
		cors.New(corsConfig(cfg.CORSOrigins)),
	)

	// Repositories and cache
	users := repository.NewUserRepository(db)
	artists := repository.NewArtistRepository(db)
	albums := repository.NewAlbumRepository(db)
	tracks := repository.NewTrackRepository(db)
	favorites := repository.NewFavoriteRepository(db)
	cache := utils.NewListCache(rdb, cfg.CacheTTL)

	r.GET("/api/health", HealthHandler(db)) // Health check endpoint
	r.NoRoute(func(c *gin.Context) {
		fail(c, apperr.NotFound("Route not found"))
	})

	v1 := r.Group("/api/v1")

	// Auth routes
	v1.POST("/signup", SignupHandler(users, cache))                   // Registration endpoint
	v1.POST("/login", LoginHandler(users, cfg.JWTSecret, cfg.JWTTTL)) // Login endpoint

	// Everything below requires a valid token
	authed := v1.Group("")
	authed.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
	authed.GET("/logout", LogoutHandler()) // Logout endpoint

	editors := middleware.Authorize(domain.RoleAdmin, domain.RoleEditor)

	// User routes
	userGroup := authed.Group("/users")
	userGroup.PUT("/update-password", UpdatePasswordHandler(users))
	adminOnly := userGroup.Group("", middleware.Authorize(domain.RoleAdmin))
	adminOnly.GET("", ListUsersHandler(users, cache))
	adminOnly.POST("/add-user", AddUserHandler(users, cache))
	adminOnly.DELETE("/:id", DeleteUserHandler(users, cache))

	// Artist routes
	artistGroup := authed.Group("/artists")
	artistGroup.GET("", ListArtistsHandler(artists, cache))
	artistGroup.GET("/:id", GetArtistHandler(artists))
	artistGroup.POST("/add-artist", editors, AddArtistHandler(artists, cache))
	artistGroup.PUT("/:id", editors, UpdateArtistHandler(artists, cache))
	artistGroup.DELETE("/:id", editors, DeleteArtistHandler(artists, cache))

	// Album routes
	albumGroup := authed.Group("/albums")
	albumGroup.GET("", ListAlbumsHandler(albums, cache))
	albumGroup.GET("/:id", GetAlbumHandler(albums))
	albumGroup.POST("/add-album", editors, AddAlbumHandler(albums, cache))
	albumGroup.PUT("/:id", editors, UpdateAlbumHandler(albums, cache))
	albumGroup.DELETE("/:id", editors, DeleteAlbumHandler(albums, cache))

	// Track routes
	trackGroup := authed.Group("/tracks")
	trackGroup.GET("", ListTracksHandler(tracks, cache))
	trackGroup.GET("/:id", GetTrackHandler(tracks))
	trackGroup.POST("/add-track", editors, AddTrackHandler(tracks, cache))
	trackGroup.PUT("/:id", editors, UpdateTrackHandler(tracks, cache))
	trackGroup.DELETE("/:id", editors, DeleteTrackHandler(tracks, cache))

	// Favorite routes, always scoped to the caller
	favoriteGroup := authed.Group("/favorites")
	favoriteGroup.GET("/:category", ListFavoritesHandler(favorites, cache))
	favoriteGroup.POST("/add-favorite", AddFavoriteHandler(favorites, cache))
	favoriteGroup.DELETE("/remove-favorite/:id", RemoveFavoriteHandler(favorites, cache))

	return r, nil
}

// corsConfig allows every origin for "*", otherwise only the listed ones
func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
