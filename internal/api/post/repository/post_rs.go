package postRepository

import (
	"BloggerPlatform/internal/api/post"
	"BloggerPlatform/internal/entity"
	contextPkg "BloggerPlatform/pkg/context"
	"context"
	"database/sql"
	"errors"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"time"
)

type PostDB struct {
	ID               sql.NullString `db:"id"`
	Title            sql.NullString `db:"title"`
	ShortDescription sql.NullString `db:"short_description"`
	Content          sql.NullString `db:"content"`
	BlogID           sql.NullString `db:"blog_id"`
	BlogName         sql.NullString `db:"blog_name"`
	CreatedAt        time.Time      `db:"created_at"`
}

func (r *postsRepository) CreatePost(ctx context.Context, post entity.Post) error {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(queryCreatePost, post)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreatePost")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating post")
		return err
	}

	return nil
}

func (r *postsRepository) GetPostByID(ctx context.Context, id string) (entity.Post, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var post PostDB

	query, args, err := sqlx.Named(queryGetPostByID, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetPostByID named query preparation err")
		return entity.Post{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&post); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Post{}, posts.ErrPostNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetPostByID execution err")
		return entity.Post{}, err
	}

	return r.makePost(post), nil
}

func (r *postsRepository) GetAllPosts(ctx context.Context) ([]entity.Post, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var postsList []PostDB

	if err := r.q.SelectContext(ctx, &postsList, queryGetAllPosts); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllPosts execution err")
		return nil, err
	}

	result := make([]entity.Post, 0, len(postsList))
	for _, p := range postsList {
		result = append(result, r.makePost(p))
	}

	return result, nil
}

// UpdatePost overwrites everything but id and created_at. It returns
// ErrPostNotFound when no row has the post's id.
func (r *postsRepository) UpdatePost(ctx context.Context, post entity.Post) error {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(queryUpdatePost, post)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdatePost named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	return r.execAffectingOne(ctx, "UpdatePost", post.ID, query, args...)
}

func (r *postsRepository) DeletePost(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(queryDeletePost, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeletePost named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	return r.execAffectingOne(ctx, "DeletePost", id, query, args...)
}

func (r *postsRepository) DeleteAllPosts(ctx context.Context) (int64, error) {
	result, err := r.q.ExecContext(ctx, queryDeleteAllPosts)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Error("DeleteAllPosts execution err")
		return 0, err
	}

	return result.RowsAffected()
}

func (r *postsRepository) execAffectingOne(ctx context.Context, op, id, query string, args ...interface{}) error {
	requestID := contextPkg.GetRequestID(ctx)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(op + " execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(op + " rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
		}).Warn(op + " no rows affected")
		return posts.ErrPostNotFound
	}

	return nil
}

func (r *postsRepository) makePost(post PostDB) entity.Post {
	return entity.Post{
		ID:               post.ID.String,
		Title:            post.Title.String,
		ShortDescription: post.ShortDescription.String,
		Content:          post.Content.String,
		BlogID:           post.BlogID.String,
		BlogName:         post.BlogName.String,
		CreatedAt:        post.CreatedAt,
	}
}
