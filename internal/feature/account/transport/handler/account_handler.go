// Package handler はaccountフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"shop_backend/internal/api"
	"shop_backend/internal/feature/account/domain/entity"
	"shop_backend/internal/feature/account/transport/http/dto"
	"shop_backend/internal/feature/account/usecase"
)

// AccountUsecase はアカウント操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AccountUsecase interface {
	// Signup は新規ユーザーを登録し、採番されたIDを返します。
	Signup(ctx context.Context, name, email, username, password string) (string, error)
	// Login はユーザーを認証し、成功時にユーザーを返します。
	Login(ctx context.Context, email, password string) (*entity.User, error)
	// GoogleSignup はGoogleプロフィールでユーザーを作成または取得します。
	GoogleSignup(ctx context.Context, email, name, googleID string) (*entity.User, error)
}

// AccountHandler はアカウント操作のHTTPリクエストを処理します。
// AccountUsecaseインターフェースに依存し、JSONリクエスト/レスポンスを処理します。
type AccountHandler struct {
	account AccountUsecase
}

// NewAccountHandler はAccountHandlerの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタで、外部からAccountUsecaseを注入します。
func NewAccountHandler(account AccountUsecase) *AccountHandler {
	return &AccountHandler{account: account}
}

// Signup はユーザー登録APIエンドポイントを処理します。
// - リクエストJSONをSignupReqにバインド
// - バリデーションエラー時は400を返却
// - メールアドレス重複時は409を返却
// - 成功時は新規ユーザーIDつきで200を返却
func (h *AccountHandler) Signup(c *gin.Context) {
	var req dto.SignupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("signup validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.Error("name, email, username and password are required"))
		return
	}
	userID, err := h.account.Signup(c.Request.Context(), req.Name, req.Email, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrEmailAlreadyExists) {
			slog.Warn("signup conflict", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusConflict, api.Error("email already exists"))
			return
		}
		slog.Error("signup failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, api.Error("signup failed"))
		return
	}
	slog.Info("user signup successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.SignupResp{Success: true, Message: "user created", UserID: userID})
}

// Login はユーザーログインAPIエンドポイントを処理します。
// - リクエストJSONをLoginReqにバインド
// - バリデーションエラー時は400を返却
// - 認証失敗時は401を返却（ユーザー未検出とパスワード不一致は同一レスポンス）
// - 成功時は公開ユーザービューつきで200を返却
func (h *AccountHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.Error("email and password are required"))
		return
	}
	user, err := h.account.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			// ユーザー列挙攻撃を防止するため、どちらが間違っていたかは公開しない
			slog.Warn("login failed", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnauthorized, api.Error("invalid email or password"))
			return
		}
		slog.Error("login failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, api.Error("login failed"))
		return
	}
	slog.Info("user login successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.LoginResp{Success: true, User: dto.NewUserView(user)})
}

// GoogleSignup はGoogleサインアップAPIエンドポイントを処理します。
// - リクエストJSONをGoogleSignupReqにバインド
// - バリデーションエラー時は400を返却
// - 成功時はユーザードキュメントつきで200を返却（既存・新規どちらでも同じ形）
func (h *AccountHandler) GoogleSignup(c *gin.Context) {
	var req dto.GoogleSignupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("google signup validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.Error("email, name and googleId are required"))
		return
	}
	user, err := h.account.GoogleSignup(c.Request.Context(), req.Email, req.Name, req.GoogleID)
	if err != nil {
		slog.Error("google signup failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, api.Error("google signup failed"))
		return
	}
	slog.Info("google signup successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.GoogleSignupResp{Success: true, User: user})
}
