package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/blogsite/blog-platform/internal/core/domain"
	"github.com/blogsite/blog-platform/internal/core/ports"
)

const blogCollection = "blogs"

// BlogRepository stores published blogs in MongoDB.
type BlogRepository struct {
	coll *mongo.Collection
}

var _ ports.BlogRepository = (*BlogRepository)(nil)

func NewBlogRepository(ctx context.Context, db *mongo.Database) (*BlogRepository, error) {
	coll := db.Collection(blogCollection)
	err := ensureIndexes(ctx, coll, []mongo.IndexModel{
		{Keys: bson.D{{Key: "author_id", Value: 1}, {Key: "blog_name", Value: 1}}},
		{Keys: bson.D{{Key: "category", Value: 1}, {Key: "created_at", Value: -1}}},
	})
	if err != nil {
		return nil, err
	}
	return &BlogRepository{coll: coll}, nil
}

type blogDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	BlogName   string             `bson:"blog_name"`
	AuthorID   string             `bson:"author_id"`
	AuthorName string             `bson:"author_name"`
	Category   string             `bson:"category"`
	Article    string             `bson:"article"`
	CreatedAt  time.Time          `bson:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at"`
}

func (d blogDoc) toDomain() domain.Blog {
	return domain.Blog{
		ID:         d.ID.Hex(),
		BlogName:   d.BlogName,
		AuthorID:   d.AuthorID,
		AuthorName: d.AuthorName,
		Category:   d.Category,
		Article:    d.Article,
		CreatedAt:  d.CreatedAt.UTC(),
		UpdatedAt:  d.UpdatedAt.UTC(),
	}
}

func (r *BlogRepository) Create(ctx context.Context, blog *domain.Blog) (*domain.Blog, error) {
	doc := blogDoc{
		BlogName:   blog.BlogName,
		AuthorID:   blog.AuthorID,
		AuthorName: blog.AuthorName,
		Category:   blog.Category,
		Article:    blog.Article,
		CreatedAt:  blog.CreatedAt.UTC(),
		UpdatedAt:  blog.UpdatedAt.UTC(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert blog: %w", err)
	}

	created := *blog
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *BlogRepository) Update(ctx context.Context, blog *domain.Blog) error {
	oid, err := primitive.ObjectIDFromHex(blog.ID)
	if err != nil {
		return domain.ErrBlogNotFound
	}

	res, err := r.coll.UpdateByID(ctx, oid, blogUpdateDoc(blog))
	if err != nil {
		return fmt.Errorf("update blog: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrBlogNotFound
	}
	return nil
}

// blogUpdateDoc builds the $set document for an update. Every field the
// service may have changed must appear here, the rename included; an omitted
// field would make the response body disagree with the stored document.
func blogUpdateDoc(blog *domain.Blog) bson.M {
	return bson.M{"$set": bson.M{
		"blog_name":  blog.BlogName,
		"category":   blog.Category,
		"article":    blog.Article,
		"updated_at": blog.UpdatedAt.UTC(),
	}}
}

func (r *BlogRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrBlogNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete blog: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrBlogNotFound
	}
	return nil
}

func (r *BlogRepository) FindByID(ctx context.Context, id string) (*domain.Blog, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrBlogNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *BlogRepository) FindByName(ctx context.Context, blogName string) (*domain.Blog, error) {
	return r.findOne(ctx, bson.M{"blog_name": blogName})
}

func (r *BlogRepository) FindByAuthorAndName(ctx context.Context, authorID, blogName string) (*domain.Blog, error) {
	return r.findOne(ctx, bson.M{"author_id": authorID, "blog_name": blogName})
}

func (r *BlogRepository) FindByAuthor(ctx context.Context, authorID string) ([]domain.Blog, error) {
	return r.findMany(ctx, bson.M{"author_id": authorID})
}

func (r *BlogRepository) FindAll(ctx context.Context) ([]domain.Blog, error) {
	return r.findMany(ctx, bson.M{})
}

func (r *BlogRepository) FindByCategory(ctx context.Context, category string) ([]domain.Blog, error) {
	return r.findMany(ctx, bson.M{"category": category})
}

func (r *BlogRepository) FindByCategoryBetween(ctx context.Context, category string, from, to time.Time) ([]domain.Blog, error) {
	return r.findMany(ctx, bson.M{
		"category":   category,
		"created_at": bson.M{"$gte": from.UTC(), "$lte": to.UTC()},
	})
}

func (r *BlogRepository) findOne(ctx context.Context, filter bson.M) (*domain.Blog, error) {
	var doc blogDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBlogNotFound
		}
		return nil, fmt.Errorf("find blog: %w", err)
	}
	blog := doc.toDomain()
	return &blog, nil
}

func (r *BlogRepository) findMany(ctx context.Context, filter bson.M) ([]domain.Blog, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find blogs: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []blogDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode blogs: %w", err)
	}

	blogs := make([]domain.Blog, 0, len(docs))
	for _, doc := range docs {
		blogs = append(blogs, doc.toDomain())
	}
	return blogs, nil
}
