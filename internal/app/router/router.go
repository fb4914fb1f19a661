package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	accounthandler "shop_backend/internal/feature/account/transport/handler"
	cataloghandler "shop_backend/internal/feature/catalog/transport/handler"
	"shop_backend/internal/platform/http/handler"
)

func NewRouter(account *accounthandler.AccountHandler, catalog *cataloghandler.CatalogHandler) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	// 導通確認用
	r.GET("/", handler.Root)
	r.GET("/healthz", handler.Health)

	// アカウント
	// 新規ユーザー登録
	r.POST("/signup", account.Signup)
	// ログイン
	r.POST("/login", account.Login)
	// Googleサインアップ（登録済みなら既存ユーザーを返す）
	r.POST("/google-signup", account.GoogleSignup)

	// 商品カタログ
	r.GET("/products", catalog.List)
	r.GET("/product/:id", catalog.Get)
	r.POST("/product", catalog.Create)
	r.PATCH("/product/:id", catalog.Update)
	r.DELETE("/product/:id", catalog.Delete)

	return r
}
