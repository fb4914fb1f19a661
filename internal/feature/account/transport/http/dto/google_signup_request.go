// Package dto はaccountフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// GoogleSignupReq は/google-signupエンドポイントのリクエストボディを表します。
// Google認証後にクライアントから渡されるプロフィール情報です。
type GoogleSignupReq struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	GoogleID string `json:"googleId" binding:"required"`
}
