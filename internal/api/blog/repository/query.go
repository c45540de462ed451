package blogRepository

const (
	queryCreateBlog = `
		INSERT INTO blogs (
			id,
			name,
			description,
			website_url,
			is_membership,
			created_at
		) VALUES (
			:id,
			:name,
			:description,
			:website_url,
			:is_membership,
			:created_at
		)
	`

	queryGetBlogByID = `
		SELECT
			id,
			name,
			description,
			website_url,
			is_membership,
			created_at
		FROM blogs
		WHERE id = :id
	`

	queryGetAllBlogs = `
		SELECT
			id,
			name,
			description,
			website_url,
			is_membership,
			created_at
		FROM blogs
		ORDER BY created_at ASC, id ASC
	`

	queryUpdateBlog = `
		UPDATE blogs
		SET
			name = :name,
			description = :description,
			website_url = :website_url
		WHERE id = :id
	`

	queryDeleteBlog = `
		DELETE FROM blogs
		WHERE id = :id
	`

	queryDeleteAllBlogs = `
		DELETE FROM blogs
	`
)
