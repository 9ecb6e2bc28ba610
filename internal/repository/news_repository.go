package repository

import (
	"database/sql"

	"github.com/Baibhabsarkar41/Stocks-Analyzer/internal/model"
)

type NewsRepository struct {
	db *sql.DB
}

func NewNewsRepository(db *sql.DB) *NewsRepository {
	return &NewsRepository{db: db}
}

func (r *NewsRepository) FindByLink(link string) (*model.TrendingNews, error) {
	var n model.TrendingNews
	err := r.db.QueryRow(`
		SELECT id, headline, link, snippet, article, fetched_at
		FROM trending_news
		WHERE link = $1
	`, link).Scan(&n.ID, &n.Headline, &n.Link, &n.Snippet, &n.Article, &n.FetchedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return &n, nil
}

func (r *NewsRepository) Create(n *model.TrendingNews) error {
	return r.db.QueryRow(`
		INSERT INTO trending_news(headline, link, snippet, article)
		VALUES($1, $2, $3, $4)
		RETURNING id, fetched_at
	`, n.Headline, n.Link, n.Snippet, n.Article).Scan(&n.ID, &n.FetchedAt)
}

func (r *NewsRepository) ListLatest(limit int) ([]model.TrendingNews, error) {
	rows, err := r.db.Query(`
		SELECT id, headline, link, snippet, article, fetched_at
		FROM trending_news
		ORDER BY fetched_at DESC
		LIMIT $1
	`, limit)

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.TrendingNews
	for rows.Next() {
		var n model.TrendingNews
		err := rows.Scan(&n.ID, &n.Headline, &n.Link, &n.Snippet, &n.Article, &n.FetchedAt)
		if err != nil {
			return nil, err
		}
		items = append(items, n)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
