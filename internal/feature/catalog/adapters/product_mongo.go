// Package adapters はcatalogフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"shop_backend/internal/feature/catalog/domain/entity"
	"shop_backend/internal/feature/catalog/usecase"
)

// productMongo はProductRepositoryインターフェースのMongoDB実装です。
// productsコレクションに対して操作を行います。
type productMongo struct {
	coll *mongo.Collection
}

// productMongoがProductRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.ProductRepository = (*productMongo)(nil)

// NewProductMongo は指定されたデータベースでproductMongoの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタです。
func NewProductMongo(db *mongo.Database) *productMongo {
	return &productMongo{coll: db.Collection("products")}
}

// Find はフィルタに一致する全ドキュメントをストア順で返します。
// マッチ0件の場合は空スライスを返します（nilではなく）。
func (r *productMongo) Find(ctx context.Context, filter bson.M) ([]entity.Product, error) {
	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []entity.Product{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FindByID はIDに一致するドキュメントを返します。
// 存在しない場合、usecase.ErrProductNotFoundを返します。
func (r *productMongo) FindByID(ctx context.Context, id primitive.ObjectID) (entity.Product, error) {
	var doc entity.Product
	if err := r.coll.FindOne(ctx, bson.M{entity.FieldID: id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, usecase.ErrProductNotFound
		}
		return nil, err
	}
	return doc, nil
}

// Insert はドキュメントをそのまま挿入し、採番されたIDを含む挿入結果を返します。
func (r *productMongo) Insert(ctx context.Context, doc entity.Product) (*usecase.InsertResult, error) {
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}
	out := &usecase.InsertResult{}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		out.InsertedID = id.Hex()
	}
	return out, nil
}

// Update は指定されたフィールドのみを$setでシャローマージします。
func (r *productMongo) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*usecase.UpdateResult, error) {
	res, err := r.coll.UpdateOne(ctx, bson.M{entity.FieldID: id}, bson.M{"$set": set})
	if err != nil {
		return nil, err
	}
	return &usecase.UpdateResult{
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}, nil
}

// Delete はIDに一致するドキュメントを削除します。
func (r *productMongo) Delete(ctx context.Context, id primitive.ObjectID) (*usecase.DeleteResult, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{entity.FieldID: id})
	if err != nil {
		return nil, err
	}
	return &usecase.DeleteResult{DeletedCount: res.DeletedCount}, nil
}
