package postRepository

const (
	queryCreatePost = `
		INSERT INTO posts (
			id,
			title,
			short_description,
			content,
			blog_id,
			blog_name,
			created_at
		) VALUES (
			:id,
			:title,
			:short_description,
			:content,
			:blog_id,
			:blog_name,
			:created_at
		)
	`

	queryGetPostByID = `
		SELECT
			id,
			title,
			short_description,
			content,
			blog_id,
			blog_name,
			created_at
		FROM posts
		WHERE id = :id
	`

	queryGetAllPosts = `
		SELECT
			id,
			title,
			short_description,
			content,
			blog_id,
			blog_name,
			created_at
		FROM posts
		ORDER BY created_at ASC, id ASC
	`

	queryUpdatePost = `
		UPDATE posts
		SET
			title = :title,
			short_description = :short_description,
			content = :content,
			blog_id = :blog_id,
			blog_name = :blog_name
		WHERE id = :id
	`

	queryDeletePost = `
		DELETE FROM posts
		WHERE id = :id
	`

	queryDeleteAllPosts = `
		DELETE FROM posts
	`

	queryGetBlogRef = `
		SELECT
			id,
			name
		FROM blogs
		WHERE id = :id
	`
)
