// Package usecase はcatalogフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"shop_backend/internal/feature/catalog/domain/entity"
)

// releasedDateLayout は外部から渡されるリリース日の文字列形式です。
const releasedDateLayout = "2006-01-02"

// InsertResult is the store's insert acknowledgment.
type InsertResult struct {
	InsertedID string `json:"insertedId"`
}

// UpdateResult is the store's update acknowledgment. A zero MatchedCount
// means no document had the given ID; it is not an error.
type UpdateResult struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

// DeleteResult is the store's delete acknowledgment. A zero DeletedCount
// means nothing matched; it is not an error.
type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}

// ProductRepository は商品ドキュメントの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type ProductRepository interface {
	// Find はフィルタに一致する全ドキュメントをストア順で返します。
	Find(ctx context.Context, filter bson.M) ([]entity.Product, error)

	// FindByID はIDに一致するドキュメントを返します。
	// 存在しない場合、ErrProductNotFoundを返します。
	FindByID(ctx context.Context, id primitive.ObjectID) (entity.Product, error)

	// Insert はドキュメントをそのまま挿入します。
	Insert(ctx context.Context, doc entity.Product) (*InsertResult, error)

	// Update は指定されたフィールドのみを$setでシャローマージします。
	Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*UpdateResult, error)

	// Delete はIDに一致するドキュメントを削除します。
	Delete(ctx context.Context, id primitive.ObjectID) (*DeleteResult, error)
}

// catalogUsecase は商品カタログのビジネスロジックを実装します。
type catalogUsecase struct {
	products ProductRepository
}

// NewCatalogUsecase はcatalogUsecaseの新しいインスタンスを生成します。
func NewCatalogUsecase(products ProductRepository) *catalogUsecase {
	return &catalogUsecase{products: products}
}

// List はカテゴリと検索語でフィルタした商品一覧を返します。
// categoryは完全一致、searchはtitleに対する大文字小文字を区別しない部分一致で、
// 両方指定された場合はANDで結合します。どちらも空ならコレクション全体を返します。
func (u *catalogUsecase) List(ctx context.Context, category, search string) ([]entity.Product, error) {
	filter := bson.M{}
	if category != "" {
		filter[entity.FieldCategory] = category
	}
	if search != "" {
		// 検索語は正規表現メタ文字をエスケープして部分一致に限定する
		filter[entity.FieldTitle] = primitive.Regex{Pattern: regexp.QuoteMeta(search), Options: "i"}
	}
	return u.products.Find(ctx, filter)
}

// Get はIDで商品を1件取得します。
// 不正なID形式はErrInvalidID、ドキュメント未検出はErrProductNotFoundを返します。
func (u *catalogUsecase) Get(ctx context.Context, id string) (entity.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	return u.products.FindByID(ctx, oid)
}

// Create は商品ドキュメントをそのまま挿入し、ストアの挿入結果を返します。
// 呼び出し側は識別子フィールドを渡してはいけません（渡した場合の動作はストア依存）。
func (u *catalogUsecase) Create(ctx context.Context, doc entity.Product) (*InsertResult, error) {
	return u.products.Insert(ctx, doc)
}

// Update は指定されたフィールドのみをシャローマージで更新し、ストアの更新結果を返します。
// released_dateが文字列で渡された場合、構造化された日付値に変換してから永続化します。
// マッチ0件はエラーではなく、MatchedCount=0の結果として返します。
func (u *catalogUsecase) Update(ctx context.Context, id string, patch entity.Product) (*UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	set := bson.M{}
	for k, v := range patch {
		// 識別子は更新対象から除外する（$setで_idは変更できない）
		if k == entity.FieldID {
			continue
		}
		set[k] = v
	}
	if len(set) == 0 {
		return nil, ErrEmptyPatch
	}

	if raw, ok := set[entity.FieldReleasedDate].(string); ok {
		parsed, err := parseReleasedDate(raw)
		if err != nil {
			return nil, ErrInvalidReleasedDate
		}
		set[entity.FieldReleasedDate] = parsed
	}

	return u.products.Update(ctx, oid, set)
}

// Delete はIDで商品を削除し、ストアの削除結果を返します。
// マッチ0件はエラーではなく、DeletedCount=0の結果として返します。
func (u *catalogUsecase) Delete(ctx context.Context, id string) (*DeleteResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	return u.products.Delete(ctx, oid)
}

// parseReleasedDate は"2006-01-02"形式（フォールバックでRFC3339）の文字列をUTCの時刻に変換します。
func parseReleasedDate(s string) (time.Time, error) {
	if t, err := time.Parse(releasedDateLayout, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
