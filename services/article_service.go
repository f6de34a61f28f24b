package services

import (
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"editorial-cms/models"
	"editorial-cms/repositories"
)

type ArticleService interface {
	GetArticles() ([]models.ArticleDTO, error)
	GetRandomArticles() ([]models.ArticleDTO, error)
	GetArticle(id uint) (*models.ArticleDTO, error)
	CreateArticle(form models.ArticleForm, localPath, originalFilename string) (*models.ArticleDTO, error)
	UpdateArticle(id uint, form models.ArticleForm, localPath, originalFilename string) (*models.ArticleDTO, error)
	DeleteArticle(id uint) error
	AddAuthor(articleID, userID uint) error
	RemoveAuthor(articleID, userID uint) error
	AddTag(articleID, tagID uint) error
	RemoveTag(articleID, tagID uint) error
}

type articleService struct {
	articleRepo  repositories.ArticleRepository
	categoryRepo repositories.CategoryRepository
	userRepo     repositories.UserRepository
	tagRepo      repositories.TagRepository
	blob         BlobClient
}

func NewArticleService(
	articleRepo repositories.ArticleRepository,
	categoryRepo repositories.CategoryRepository,
	userRepo repositories.UserRepository,
	tagRepo repositories.TagRepository,
	blob BlobClient,
) ArticleService {
	return &articleService{
		articleRepo:  articleRepo,
		categoryRepo: categoryRepo,
		userRepo:     userRepo,
		tagRepo:      tagRepo,
		blob:         blob,
	}
}

func (s *articleService) GetArticles() ([]models.ArticleDTO, error) {
	articles, err := s.articleRepo.GetAll()
	if err != nil {
		return nil, models.NewStorageError("loading articles", err)
	}

	dtos := make([]models.ArticleDTO, 0, len(articles))
	for i := range articles {
		dtos = append(dtos, toArticleDTO(&articles[i]))
	}
	return dtos, nil
}

func (s *articleService) GetRandomArticles() ([]models.ArticleDTO, error) {
	articles, err := s.articleRepo.GetRandom(3)
	if err != nil {
		return nil, models.NewStorageError("loading random articles", err)
	}

	dtos := make([]models.ArticleDTO, 0, len(articles))
	for i := range articles {
		dtos = append(dtos, toArticleDTO(&articles[i]))
	}
	return dtos, nil
}

func (s *articleService) GetArticle(id uint) (*models.ArticleDTO, error) {
	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("article not found")
		}
		return nil, models.NewStorageError("loading article", err)
	}

	dto := toArticleDTO(article)
	return &dto, nil
}

// CreateArticle uploads the image first and only persists the row on a
// successful upload, so a failed upload never leaves a partial article.
func (s *articleService) CreateArticle(form models.ArticleForm, localPath, originalFilename string) (*models.ArticleDTO, error) {
	category, err := s.categoryRepo.GetByID(form.CategoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewValidationError("the specified category does not exist")
		}
		return nil, models.NewStorageError("loading category", err)
	}

	res, err := s.blob.Upload(localPath, originalFilename)
	if err != nil {
		return nil, models.NewStorageError("uploading image", err)
	}

	article := &models.Article{
		Name:        form.Name,
		Description: form.Description,
		Content:     form.Content,
		Status:      form.Status,
		PublishedAt: time.Now(),
		CategoryID:  form.CategoryID,
		ImageURL:    res.URL,
		ImageFolder: res.Folder,
		ImageName:   res.Filename,
	}

	if err := s.articleRepo.Create(article); err != nil {
		// The blob is already stored and nothing references it now.
		log.Warn().
			Str("folder", res.Folder).
			Str("filename", res.Filename).
			Err(err).
			Msg("article insert failed after upload, blob orphaned")
		return nil, models.NewStorageError("creating article", err)
	}

	article.Category = *category
	dto := toArticleDTO(article)
	return &dto, nil
}

// UpdateArticle replaces every mutable field from the payload. When a new
// file is supplied the new blob is uploaded before the old one is removed,
// so a failed upload never loses the referenced image.
func (s *articleService) UpdateArticle(id uint, form models.ArticleForm, localPath, originalFilename string) (*models.ArticleDTO, error) {
	if id != form.ID {
		return nil, models.NewValidationError("the article ID does not match the ID provided in the URL")
	}

	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("article not found")
		}
		return nil, models.NewStorageError("loading article", err)
	}

	category, err := s.categoryRepo.GetByID(form.CategoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewValidationError("the specified category does not exist")
		}
		return nil, models.NewStorageError("loading category", err)
	}

	article.Name = form.Name
	article.Description = form.Description
	article.Content = form.Content
	article.Status = form.Status
	article.CategoryID = form.CategoryID
	article.Category = *category

	if localPath != "" {
		res, err := s.blob.Upload(localPath, originalFilename)
		if err != nil {
			return nil, models.NewStorageError("uploading image", err)
		}

		if article.ImageName != "" {
			oldPath := article.ImageFolder + article.ImageName
			if !s.blob.Delete(oldPath) {
				log.Warn().Str("path", oldPath).Msg("failed to delete replaced image")
			}
		}

		article.ImageURL = res.URL
		article.ImageFolder = res.Folder
		article.ImageName = res.Filename
	}

	if err := s.articleRepo.Update(article); err != nil {
		return nil, models.NewStorageError("updating article", err)
	}

	dto := toArticleDTO(article)
	return &dto, nil
}

// DeleteArticle removes the article's link rows, best-effort deletes its
// stored blob and then drops the row. A failed blob delete never blocks
// the row delete.
func (s *articleService) DeleteArticle(id uint) error {
	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("article not found")
		}
		return models.NewStorageError("loading article", err)
	}

	if err := s.articleRepo.RemoveLinks(id); err != nil {
		return models.NewStorageError("removing article links", err)
	}

	if article.ImageName != "" {
		path := article.ImageFolder + article.ImageName
		if !s.blob.Delete(path) {
			log.Warn().Str("path", path).Msg("failed to delete article image")
		}
	}

	if err := s.articleRepo.Delete(id); err != nil {
		return models.NewStorageError("deleting article", err)
	}
	return nil
}

func (s *articleService) AddAuthor(articleID, userID uint) error {
	if err := s.checkArticleExists(articleID); err != nil {
		return err
	}

	exists, err := s.userRepo.Exists(userID)
	if err != nil {
		return models.NewStorageError("loading user", err)
	}
	if !exists {
		return models.NewValidationError("the specified user does not exist")
	}

	link := &models.ArticleAuthor{ArticleID: articleID, UserID: userID}
	if err := s.articleRepo.AddAuthor(link); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.NewValidationError("the user is already an author of this article")
		}
		return models.NewStorageError("linking author", err)
	}
	return nil
}

func (s *articleService) RemoveAuthor(articleID, userID uint) error {
	if err := s.articleRepo.RemoveAuthor(articleID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("author link not found")
		}
		return models.NewStorageError("unlinking author", err)
	}
	return nil
}

func (s *articleService) AddTag(articleID, tagID uint) error {
	if err := s.checkArticleExists(articleID); err != nil {
		return err
	}

	if _, err := s.tagRepo.GetByID(tagID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewValidationError("the specified tag does not exist")
		}
		return models.NewStorageError("loading tag", err)
	}

	link := &models.ArticleTag{ArticleID: articleID, TagID: tagID}
	if err := s.articleRepo.AddTag(link); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.NewValidationError("the tag is already linked to this article")
		}
		return models.NewStorageError("linking tag", err)
	}
	return nil
}

func (s *articleService) RemoveTag(articleID, tagID uint) error {
	if err := s.articleRepo.RemoveTag(articleID, tagID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("tag link not found")
		}
		return models.NewStorageError("unlinking tag", err)
	}
	return nil
}

func (s *articleService) checkArticleExists(articleID uint) error {
	if _, err := s.articleRepo.GetByID(articleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("article not found")
		}
		return models.NewStorageError("loading article", err)
	}
	return nil
}

func toArticleDTO(article *models.Article) models.ArticleDTO {
	return models.ArticleDTO{
		ID:          article.ID,
		Name:        article.Name,
		Description: article.Description,
		Content:     article.Content,
		Category:    article.Category.Name,
		ImageURL:    article.ImageURL,
		PublishedAt: article.PublishedAt,
		Status:      article.Status,
	}
}
