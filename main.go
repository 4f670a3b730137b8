package main

import (
	"time"

	"go.uber.org/zap"

	"treadmill/auth"        // ログインゲートとトークン管理
	"treadmill/database"    // SQLiteの初期化と環境変数設定
	"treadmill/handlers"    // HTTPリクエストの処理
	"treadmill/middlewares" // トークン検証ミドルウェア
	"treadmill/store"       // セッションテーブルのCRUD
	"treadmill/utils"       // ロガーの初期化とCronジョブ

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	logger, err := utils.InitLogger() // ロガーの初期化
	if err != nil {
		panic(err) // 失敗した場合はプログラム停止
	}
	defer logger.Sync() // ロガーのクリーンアップ

	config := database.LoadConfig()

	db, err := database.InitSQLite(config, logger)
	if err != nil {
		logger.Fatal("SQLiteの初期化に失敗しました", zap.Error(err))
	}

	sessionStore := store.New(db, logger)
	gate := auth.NewGate(config.AuthUsername, config.AuthPassword, logger)

	// クーロンスケジューラのセットアップと呼び出し
	go utils.CronCleaner(gate, logger)

	router := gin.Default()
	router.Use(gin.Recovery(), utils.RequestLogger(logger))

	//CORS（Cross-Origin Resource Sharing）ポリシーを設定
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	//各HTTPリクエストのルーティング
	router.POST("/api/login", func(c *gin.Context) {
		handlers.Login(c, gate, logger)
	})
	router.GET("/api/health", handlers.Health)

	authorized := router.Group("/api", middlewares.Auth(gate, logger))
	authorized.GET("/sessions", func(c *gin.Context) {
		handlers.ListSessions(c, sessionStore, logger)
	})
	authorized.POST("/sessions", func(c *gin.Context) {
		handlers.CreateSession(c, sessionStore, logger)
	})
	authorized.DELETE("/sessions/:id", func(c *gin.Context) {
		handlers.DeleteSession(c, sessionStore, logger)
	})

	// フロントエンドの静的ファイル
	router.StaticFile("/", "./web/tracker.html")
	router.StaticFile("/tracker.js", "./web/tracker.js")

	logger.Info("treadmill tracker server starting", zap.String("port", config.Port))
	router.Run(":" + config.Port)
}
