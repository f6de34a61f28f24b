package repositories

import (
	"editorial-cms/models"

	"gorm.io/gorm"
)

type ArticleRepository interface {
	Create(article *models.Article) error
	GetByID(id uint) (*models.Article, error)
	GetAll() ([]models.Article, error)
	GetRandom(limit int) ([]models.Article, error)
	Update(article *models.Article) error
	Delete(id uint) error
	AddAuthor(link *models.ArticleAuthor) error
	RemoveAuthor(articleID, userID uint) error
	AddTag(link *models.ArticleTag) error
	RemoveTag(articleID, tagID uint) error
	RemoveLinks(articleID uint) error
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) Create(article *models.Article) error {
	return r.db.Create(article).Error
}

func (r *articleRepository) GetByID(id uint) (*models.Article, error) {
	var article models.Article
	err := r.db.Preload("Category").First(&article, id).Error
	return &article, err
}

func (r *articleRepository) GetAll() ([]models.Article, error) {
	var articles []models.Article
	err := r.db.Preload("Category").Find(&articles).Error
	return articles, err
}

func (r *articleRepository) GetRandom(limit int) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.Preload("Category").Order("RANDOM()").Limit(limit).Find(&articles).Error
	return articles, err
}

func (r *articleRepository) Update(article *models.Article) error {
	return r.db.Save(article).Error
}

func (r *articleRepository) Delete(id uint) error {
	return r.db.Delete(&models.Article{}, id).Error
}

func (r *articleRepository) AddAuthor(link *models.ArticleAuthor) error {
	return r.db.Create(link).Error
}

func (r *articleRepository) RemoveAuthor(articleID, userID uint) error {
	res := r.db.Where("article_id = ? AND user_id = ?", articleID, userID).
		Delete(&models.ArticleAuthor{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *articleRepository) AddTag(link *models.ArticleTag) error {
	return r.db.Create(link).Error
}

func (r *articleRepository) RemoveTag(articleID, tagID uint) error {
	res := r.db.Where("article_id = ? AND tag_id = ?", articleID, tagID).
		Delete(&models.ArticleTag{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// RemoveLinks clears the article's own author and tag link rows. The link
// tables do not cascade, so this has to happen before the row delete.
func (r *articleRepository) RemoveLinks(articleID uint) error {
	if err := r.db.Where("article_id = ?", articleID).Delete(&models.ArticleAuthor{}).Error; err != nil {
		return err
	}
	return r.db.Where("article_id = ?", articleID).Delete(&models.ArticleTag{}).Error
}
