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
	"strings"
)

type BlogRefDB struct {
	ID   sql.NullString `db:"id"`
	Name sql.NullString `db:"name"`
}

// GetBlogByID loads only the id and name of a blog. It returns
// posts.ErrBlogNotFound when there is no such blog.
func (r *blogRefsRepository) GetBlogByID(ctx context.Context, id string) (entity.Blog, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var ref BlogRefDB

	// Postgres text cannot hold NUL, so no stored id contains one.
	if strings.ContainsRune(id, 0) {
		return entity.Blog{}, posts.ErrBlogNotFound
	}

	query, args, err := sqlx.Named(queryGetBlogRef, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBlogByID named query preparation err")
		return entity.Blog{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&ref); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"blog_id":    id,
			}).Debug("Referenced blog does not exist")
			return entity.Blog{}, posts.ErrBlogNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBlogByID execution err")
		return entity.Blog{}, err
	}

	return entity.Blog{
		ID:   ref.ID.String,
		Name: ref.Name.String,
	}, nil
}
