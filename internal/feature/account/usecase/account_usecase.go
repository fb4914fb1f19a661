// Package usecase はaccountフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"shop_backend/internal/feature/account/domain/entity"
)

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Create は新しいユーザーをストレージに永続化し、u.IDに採番されたIDを設定します。
	// 同じメールアドレスのユーザーが既に存在する場合、ErrEmailAlreadyExistsを返します。
	Create(ctx context.Context, u *entity.User) error

	// FindByEmail は指定されたメールアドレスに一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}

// accountUsecase は認証・アカウント作成のビジネスロジックを実装します。
type accountUsecase struct {
	users UserRepository
}

// NewAccountUsecase はaccountUsecaseの新しいインスタンスを生成します。
func NewAccountUsecase(users UserRepository) *accountUsecase {
	return &accountUsecase{users: users}
}

// normalizeEmail はメールアドレスを小文字に正規化します。
// signup/login/google-signupの全パスで同じ正規化を適用します。
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Signup はハッシュ化されたパスワードで新規ユーザーを登録し、採番されたIDの16進文字列を返します。
// メールアドレスが既に使われている場合はErrEmailAlreadyExistsを返します。
func (u *accountUsecase) Signup(ctx context.Context, name, email, username, password string) (string, error) {
	email = normalizeEmail(email)

	// 既存ユーザーの事前チェック（親切な409のため）
	// 同時リクエストのレースはユニークインデックス側で最終的に防止される
	if _, err := u.users.FindByEmail(ctx, email); err == nil {
		return "", ErrEmailAlreadyExists
	} else if !errors.Is(err, ErrUserNotFound) {
		return "", err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		Name:      name,
		Email:     email,
		Username:  username,
		Password:  string(hashed),
		CreatedAt: time.Now().UTC(),
	}
	if err := u.users.Create(ctx, user); err != nil {
		return "", err
	}
	return user.ID.Hex(), nil
}

// Login はユーザーを認証し、成功時にユーザーを返します。
// タイミング攻撃を防止するため、ユーザーが存在しない場合でもbcrypt比較を実行します。
func (u *accountUsecase) Login(ctx context.Context, email, password string) (*entity.User, error) {
	user, err := u.users.FindByEmail(ctx, normalizeEmail(email))

	// ユーザーが存在しない場合のタイミング攻撃緩和用ダミーハッシュ
	// bcrypt.CompareHashAndPasswordが常に呼ばれることを保証する
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy" // ダミーハッシュ
	if err == nil {
		passwordHash = user.Password
	}

	// 第1引数はハッシュ化パスワード、第2引数は平文パスワード
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	// ユーザー未検出またはパスワード不一致の場合、汎用エラーを返す
	if err != nil || compareErr != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// GoogleSignup はGoogleアカウントでのユーザー登録を処理します。
// メールアドレスが未登録なら新規ユーザーを作成し、登録済みなら既存ユーザーをそのまま返します
// （既存アカウントへのgoogleIdのマージは行いません）。同じメールでの再呼び出しは冪等です。
func (u *accountUsecase) GoogleSignup(ctx context.Context, email, name, googleID string) (*entity.User, error) {
	email = normalizeEmail(email)

	user, err := u.users.FindByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	created := &entity.User{
		Name:      name,
		Email:     email,
		GoogleID:  googleID,
		CreatedAt: time.Now().UTC(),
	}
	if err := u.users.Create(ctx, created); err != nil {
		// 同時登録のレースで負けた場合は勝者のドキュメントを返す（冪等性の維持）
		if errors.Is(err, ErrEmailAlreadyExists) {
			return u.users.FindByEmail(ctx, email)
		}
		return nil, err
	}
	return created, nil
}
