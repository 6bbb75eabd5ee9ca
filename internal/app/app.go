package app

import (
	"context"
	"log/slog"
	"time"

	httpapp "nativeblog/internal/app/http"
	"nativeblog/internal/config"
	"nativeblog/internal/lib/logger/sl"
	"nativeblog/internal/lib/timeutil"
	"nativeblog/internal/repository"
	accountsvc "nativeblog/internal/services/account_service"
	categorysvc "nativeblog/internal/services/category_service"
	commentsvc "nativeblog/internal/services/comment_service"
	likesvc "nativeblog/internal/services/like_service"
	postsvc "nativeblog/internal/services/post_service"
	tokensvc "nativeblog/internal/services/token_service"
	uploadsvc "nativeblog/internal/services/upload_service"
	usersvc "nativeblog/internal/services/user_service"
	"nativeblog/internal/storage/filestorage"
	"nativeblog/internal/storage/postgresql"
	redisapp "nativeblog/internal/storage/redis"
	httprouters "nativeblog/internal/transport/http"
)

const (
	driverLocal = "local"
	driverS3    = "s3"
)

type App struct {
	HTTPServer *httpapp.Server

	log     *slog.Logger
	storage *postgresql.Storage
	redis   *redisapp.Client
}

func New(ctx context.Context, log *slog.Logger, cfg *config.Config) *App {
	const op = "app.New"
	opLog := log.With(slog.String("op", op))

	storage, err := postgresql.New(ctx, cfg.DSN)
	if err != nil {
		panic(err)
	}

	if err := storage.Migrate(ctx); err != nil {
		panic(err)
	}

	repo := repository.NewRepository(storage.Pool())

	a := &App{log: log, storage: storage}

	var tokens repository.TokenRepository
	if cfg.Redis.RedisAddr != "" {
		a.redis = redisapp.NewClient(cfg.Redis.RedisAddr, cfg.Redis.RedisPassword, cfg.Redis.RedisDB)
		if err := a.redis.HealthCheck(ctx); err != nil {
			panic(err)
		}
		tokens = repository.NewRedisTokenRepo(a.redis)
		opLog.Info("refresh tokens stored in redis", slog.String("addr", cfg.Redis.RedisAddr))
	} else {
		tokens = repository.NewMemoryTokenRepo(10 * time.Minute)
		opLog.Warn("redis is not configured, refresh tokens kept in memory")
	}

	files, uploadsDir := mustFileStorage(cfg.FileStorage)

	clock := timeutil.New(cfg.Timezone)

	tokenService := tokensvc.NewTokenService(log, tokens, cfg.JWTSecret, cfg.TokenTTL, cfg.RefreshTokenTTL)
	accountService := accountsvc.NewAccountService(log, repo.Backuser, tokenService)

	if cfg.Admin.Password != "" {
		if err := accountService.EnsureAdmin(ctx, cfg.Admin.Username, cfg.Admin.Password); err != nil {
			panic(err)
		}
	} else {
		opLog.Warn("admin.password is empty, bootstrap admin not created")
	}

	routers := httprouters.NewRouter(log, httprouters.Services{
		Posts:      postsvc.NewPostService(log, repo.Post, clock, cfg.Cache.TTL),
		Categories: categorysvc.NewCategoryService(log, repo.Category, cfg.Cache.TTL),
		Comments:   commentsvc.NewCommentService(log, repo.Comment, clock),
		Likes:      likesvc.NewLikeService(log, repo.Like, clock),
		Users:      usersvc.NewUserService(log, repo.User, tokenService),
		Accounts:   accountService,
		Auth:       tokenService,
		Uploads:    uploadsvc.NewUploadService(log, files, cfg.FileStorage.MaxSize, cfg.FileStorage.MaxImageWidth),
		Health:     storage,
	})

	a.HTTPServer = httpapp.New(log, httpapp.Options{
		Host:          cfg.HTTP.Host,
		Port:          cfg.HTTP.Port,
		Timeout:       cfg.HTTP.Timeout,
		IdleTimeout:   cfg.HTTP.IdleTimeout,
		JWTSecret:     cfg.JWTSecret,
		SessionSecret: cfg.SessionSecret,
		UploadsDir:    uploadsDir,
		UploadsURL:    cfg.FileStorage.BaseURL,
		RateRPS:       cfg.RateLimit.RPS,
		RateBurst:     cfg.RateLimit.Burst,
	}, routers)

	return a
}

// mustFileStorage returns the configured driver and, for the local driver,
// the directory to serve statically.
func mustFileStorage(cfg config.FileStorageConfig) (filestorage.FileStorage, string) {
	switch cfg.Driver {
	case driverS3:
		s3, err := filestorage.NewS3FileStorage(
			cfg.S3.Endpoint,
			cfg.S3.AccessKey,
			cfg.S3.SecretKey,
			cfg.S3.Bucket,
			cfg.S3.Region,
			cfg.S3.PublicURL,
			cfg.S3.UseSSL,
		)
		if err != nil {
			panic(err)
		}
		return s3, ""
	case driverLocal, "":
		local, err := filestorage.NewLocalFileStorage(cfg.BaseDir, cfg.BaseURL)
		if err != nil {
			panic(err)
		}
		return local, local.GetBaseDir()
	default:
		panic("unknown file storage driver: " + cfg.Driver)
	}
}

func (a *App) Stop() {
	if err := a.HTTPServer.Stop(); err != nil {
		a.log.Error("failed to stop http server", sl.Err(err))
	}

	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.log.Error("failed to close redis", sl.Err(err))
		}
	}

	a.storage.Stop()
}
