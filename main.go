package main

import (
	"net/http"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/go-playground/validator.v9"
	entranslations "gopkg.in/go-playground/validator.v9/translations/en"

	"editorial-cms/config"
	"editorial-cms/handlers"
	"editorial-cms/helper"
	"editorial-cms/middleware"
	"editorial-cms/repositories"
	"editorial-cms/services"
)

func main() {
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found")
	}

	cfg := config.Load()

	// Initialize database
	db := config.InitDB(cfg)

	// Initialize repositories
	articleRepo := repositories.NewArticleRepository(db)
	userRepo := repositories.NewUserRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	sectionRepo := repositories.NewSectionRepository(db)
	tagRepo := repositories.NewTagRepository(db)

	// Initialize services
	ftpService := services.NewFTPService(&cfg.FTP)
	articleService := services.NewArticleService(articleRepo, categoryRepo, userRepo, tagRepo, ftpService)
	userService := services.NewUserService(userRepo)
	categoryService := services.NewCategoryService(categoryRepo, sectionRepo)
	sectionService := services.NewSectionService(sectionRepo)
	tagService := services.NewTagService(tagRepo)

	httpHelper := newHTTPHelper()

	// Initialize handlers
	articleHandler := handlers.NewArticleHandler(articleService, httpHelper)
	userHandler := handlers.NewUserHandler(userService, httpHelper)
	categoryHandler := handlers.NewCategoryHandler(categoryService, httpHelper)
	sectionHandler := handlers.NewSectionHandler(sectionService, httpHelper)
	tagHandler := handlers.NewTagHandler(tagService, httpHelper)
	fileHandler := handlers.NewFileHandler(ftpService, httpHelper)

	// Setup router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(log.Logger))

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	router.Use(cors.New(corsCfg))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// API routes
	v1 := router.Group("/api/v1")
	{
		articles := v1.Group("/articles")
		{
			articles.GET("", articleHandler.GetArticles)
			articles.GET("/action/random", articleHandler.GetRandomArticles)
			articles.GET("/:id", articleHandler.GetArticle)
			articles.POST("", articleHandler.CreateArticle)
			articles.PUT("/:id", articleHandler.UpdateArticle)
			articles.DELETE("/:id", articleHandler.DeleteArticle)
			articles.POST("/:id/authors/:user_id", articleHandler.AddAuthor)
			articles.DELETE("/:id/authors/:user_id", articleHandler.RemoveAuthor)
			articles.POST("/:id/tags/:tag_id", articleHandler.AddTag)
			articles.DELETE("/:id/tags/:tag_id", articleHandler.RemoveTag)
		}

		users := v1.Group("/users")
		{
			users.GET("", userHandler.GetUsers)
			users.GET("/:id", userHandler.GetUser)
			users.PATCH("/:id", userHandler.PatchUser)
			users.DELETE("/:id", userHandler.DeleteUser)
		}

		categories := v1.Group("/categories")
		{
			categories.GET("", categoryHandler.GetCategories)
			categories.GET("/:id", categoryHandler.GetCategory)
			categories.POST("", categoryHandler.CreateCategory)
			categories.PUT("/:id", categoryHandler.UpdateCategory)
			categories.DELETE("/:id", categoryHandler.DeleteCategory)
		}

		sections := v1.Group("/sections")
		{
			sections.GET("", sectionHandler.GetSections)
			sections.POST("", sectionHandler.CreateSection)
		}

		tags := v1.Group("/tags")
		{
			tags.GET("", tagHandler.GetTags)
			tags.GET("/:id", tagHandler.GetTag)
			tags.POST("", tagHandler.CreateTag)
			tags.DELETE("/:id", tagHandler.DeleteTag)
		}

		v1.GET("/files", fileHandler.ListFiles)
	}

	log.Info().Str("port", cfg.Port).Msg("server starting")
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func newHTTPHelper() *helper.HTTPHelper {
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")

	validate := validator.New()
	if err := entranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		log.Fatal().Err(err).Msg("failed to register validator translations")
	}

	return &helper.HTTPHelper{Validate: validate, Translator: trans}
}
