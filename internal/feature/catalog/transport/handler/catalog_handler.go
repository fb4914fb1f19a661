// Package handler はcatalogフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"shop_backend/internal/api"
	"shop_backend/internal/feature/catalog/domain/entity"
	"shop_backend/internal/feature/catalog/usecase"
)

// CatalogUsecase は商品カタログ操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type CatalogUsecase interface {
	// List はカテゴリと検索語でフィルタした商品一覧を返します。
	List(ctx context.Context, category, search string) ([]entity.Product, error)
	// Get はIDで商品を1件取得します。
	Get(ctx context.Context, id string) (entity.Product, error)
	// Create は商品ドキュメントを挿入し、挿入結果を返します。
	Create(ctx context.Context, doc entity.Product) (*usecase.InsertResult, error)
	// Update は部分パッチを適用し、更新結果を返します。
	Update(ctx context.Context, id string, patch entity.Product) (*usecase.UpdateResult, error)
	// Delete はIDで商品を削除し、削除結果を返します。
	Delete(ctx context.Context, id string) (*usecase.DeleteResult, error)
}

// CatalogHandler は商品カタログのHTTPリクエストを処理します。
type CatalogHandler struct {
	catalog CatalogUsecase
}

// NewCatalogHandler はCatalogHandlerの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタで、外部からCatalogUsecaseを注入します。
func NewCatalogHandler(catalog CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// List はGET /productsを処理します。
// クエリパラメータcategory（完全一致）とsearch（title部分一致）でフィルタします。
func (h *CatalogHandler) List(c *gin.Context) {
	products, err := h.catalog.List(c.Request.Context(), c.Query("category"), c.Query("search"))
	if err != nil {
		slog.Error("list products failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.Error("failed to list products"))
		return
	}
	c.JSON(http.StatusOK, products)
}

// Get はGET /product/:idを処理します。
// - 不正なID形式は400を返却
// - ドキュメント未検出は404を返却
func (h *CatalogHandler) Get(c *gin.Context) {
	id := c.Param("id")
	product, err := h.catalog.Get(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidID):
			c.JSON(http.StatusBadRequest, api.Error("invalid product id"))
		case errors.Is(err, usecase.ErrProductNotFound):
			c.JSON(http.StatusNotFound, api.Error("product not found"))
		default:
			slog.Error("get product failed", "error", err, "id", id)
			c.JSON(http.StatusInternalServerError, api.Error("failed to get product"))
		}
		return
	}
	c.JSON(http.StatusOK, product)
}

// Create はPOST /productを処理します。
// リクエストボディをそのまま新規ドキュメントとして挿入します。
func (h *CatalogHandler) Create(c *gin.Context) {
	var doc entity.Product
	if err := c.ShouldBindJSON(&doc); err != nil {
		slog.Warn("create product validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.Error("invalid product body"))
		return
	}
	res, err := h.catalog.Create(c.Request.Context(), doc)
	if err != nil {
		slog.Error("create product failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.Error("failed to create product"))
		return
	}
	slog.Info("product created", "id", res.InsertedID)
	c.JSON(http.StatusOK, res)
}

// Update はPATCH /product/:idを処理します。
// - 不正なID形式・空パッチ・不正なreleased_dateは400を返却
// - 成功時はマッチ数/更新数つきで200を返却（マッチ0件もエラーではない）
func (h *CatalogHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var patch entity.Product
	if err := c.ShouldBindJSON(&patch); err != nil {
		slog.Warn("update product validation failed", "error", err, "id", id)
		c.JSON(http.StatusBadRequest, api.Error("invalid product body"))
		return
	}

	res, err := h.catalog.Update(c.Request.Context(), id, patch)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidID):
			c.JSON(http.StatusBadRequest, api.Error("invalid product id"))
		case errors.Is(err, usecase.ErrEmptyPatch):
			c.JSON(http.StatusBadRequest, api.Error("update patch must contain at least one field"))
		case errors.Is(err, usecase.ErrInvalidReleasedDate):
			c.JSON(http.StatusBadRequest, api.Error("released_date must be a valid date"))
		default:
			slog.Error("update product failed", "error", err, "id", id)
			c.JSON(http.StatusInternalServerError, api.Error("failed to update product"))
		}
		return
	}
	c.JSON(http.StatusOK, res)
}

// Delete はDELETE /product/:idを処理します。
// マッチ0件は削除数0の結果として200を返します（404ではない）。
func (h *CatalogHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	res, err := h.catalog.Delete(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidID) {
			c.JSON(http.StatusBadRequest, api.Error("invalid product id"))
			return
		}
		slog.Error("delete product failed", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, api.Error("failed to delete product"))
		return
	}
	c.JSON(http.StatusOK, res)
}
