package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/hfujimoto/athlete-site-api/infrastructure/database/postgres"
	"github.com/hfujimoto/athlete-site-api/internal/domain"
	"github.com/lib/pq"
)

const (
	blogPostsTable   = "blog_posts bp"
	blogPostsColumns = `bp.id, bp.slug, bp.title, bp.excerpt, bp.content,
		bp.cover_image_url, bp.meta_title, bp.meta_description, bp.keywords,
		bp.category, bp.status, bp.published_at, bp.created_at, bp.updated_at`
)

type BlogPostRepository interface {
	// ListByStatus retorna os posts com o status pedido, mais recentes
	// primeiro; status vazio lista todos
	ListByStatus(status string) ([]*domain.BlogPost, error)
	GetBySlug(slug string) (*domain.BlogPost, error)
	GetByID(id int) (*domain.BlogPost, error)
	Create(post *domain.BlogPost) (*domain.BlogPost, error)
	Update(post *domain.BlogPost) error
	Delete(id int) error
}

type blogPostRepository struct {
	conn *postgres.Connection
}

func NewBlogPostRepository(conn *postgres.Connection) BlogPostRepository {
	return &blogPostRepository{
		conn: conn,
	}
}

func (r *blogPostRepository) ListByStatus(status string) ([]*domain.BlogPost, error) {
	builder := squirrel.
		Select(blogPostsColumns).
		From(blogPostsTable).
		OrderBy("bp.created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if status != "" {
		builder = builder.Where(squirrel.Eq{"bp.status": status})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	posts := make([]*domain.BlogPost, 0)
	for rows.Next() {
		post, err := r.scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear post: %w", err)
		}
		posts = append(posts, post)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return posts, nil
}

func (r *blogPostRepository) GetBySlug(slug string) (*domain.BlogPost, error) {
	return r.getOne(squirrel.Eq{"bp.slug": slug})
}

func (r *blogPostRepository) GetByID(id int) (*domain.BlogPost, error) {
	return r.getOne(squirrel.Eq{"bp.id": id})
}

func (r *blogPostRepository) getOne(where squirrel.Eq) (*domain.BlogPost, error) {
	query, args, err := squirrel.
		Select(blogPostsColumns).
		From(blogPostsTable).
		Where(where).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
		}
		return nil, nil
	}

	post, err := r.scanPost(rows)
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear post: %w", err)
	}

	return post, nil
}

func (r *blogPostRepository) Create(post *domain.BlogPost) (*domain.BlogPost, error) {
	query, args, err := squirrel.StatementBuilder.
		Insert("blog_posts").
		Columns(
			"slug", "title", "excerpt", "content", "cover_image_url",
			"meta_title", "meta_description", "keywords", "category",
			"status", "published_at",
		).
		Values(
			post.Slug,
			post.Title,
			post.Excerpt,
			post.Content,
			post.CoverImageURL,
			post.MetaTitle,
			post.MetaDescription,
			pq.Array(post.Keywords),
			post.Category,
			post.Status,
			post.PublishedAt,
		).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	if err := row.Scan(&post.ID, &post.CreatedAt, &post.UpdatedAt); err != nil {
		return nil, fmt.Errorf("erro ao criar post: %w", err)
	}

	return post, nil
}

func (r *blogPostRepository) Update(post *domain.BlogPost) error {
	query, args, err := squirrel.StatementBuilder.
		Update("blog_posts").
		Set("slug", post.Slug).
		Set("title", post.Title).
		Set("excerpt", post.Excerpt).
		Set("content", post.Content).
		Set("cover_image_url", post.CoverImageURL).
		Set("meta_title", post.MetaTitle).
		Set("meta_description", post.MetaDescription).
		Set("keywords", pq.Array(post.Keywords)).
		Set("category", post.Category).
		Set("status", post.Status).
		Set("published_at", post.PublishedAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": post.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *blogPostRepository) Delete(id int) error {
	query, args, err := squirrel.
		Delete("blog_posts").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *blogPostRepository) scanPost(rows *sql.Rows) (*domain.BlogPost, error) {
	post := &domain.BlogPost{}

	err := rows.Scan(
		&post.ID,
		&post.Slug,
		&post.Title,
		&post.Excerpt,
		&post.Content,
		&post.CoverImageURL,
		&post.MetaTitle,
		&post.MetaDescription,
		pq.Array(&post.Keywords),
		&post.Category,
		&post.Status,
		&post.PublishedAt,
		&post.CreatedAt,
		&post.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return post, nil
}
