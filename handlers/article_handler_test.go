package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"

	"editorial-cms/helper"
	"editorial-cms/models"
)

type fakeArticleService struct {
	created          *models.ArticleDTO
	createdFilename  string
	deleteErr        error
	getErr           error
	deletedArticleID uint
}

func (f *fakeArticleService) GetArticles() ([]models.ArticleDTO, error) {
	return []models.ArticleDTO{}, nil
}

func (f *fakeArticleService) GetRandomArticles() ([]models.ArticleDTO, error) {
	return []models.ArticleDTO{}, nil
}

func (f *fakeArticleService) GetArticle(id uint) (*models.ArticleDTO, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return &models.ArticleDTO{ID: id, Name: "stub", Category: "Culture"}, nil
}

func (f *fakeArticleService) CreateArticle(form models.ArticleForm, localPath, originalFilename string) (*models.ArticleDTO, error) {
	f.createdFilename = originalFilename
	dto := models.ArticleDTO{ID: 1, Name: form.Name, Category: "Culture", ImageURL: "http://cdn.test/images/x.png"}
	f.created = &dto
	return &dto, nil
}

func (f *fakeArticleService) UpdateArticle(id uint, form models.ArticleForm, localPath, originalFilename string) (*models.ArticleDTO, error) {
	return &models.ArticleDTO{ID: id, Name: form.Name}, nil
}

func (f *fakeArticleService) DeleteArticle(id uint) error {
	f.deletedArticleID = id
	return f.deleteErr
}

func (f *fakeArticleService) AddAuthor(articleID, userID uint) error    { return nil }
func (f *fakeArticleService) RemoveAuthor(articleID, userID uint) error { return nil }
func (f *fakeArticleService) AddTag(articleID, tagID uint) error        { return nil }
func (f *fakeArticleService) RemoveTag(articleID, tagID uint) error     { return nil }

type ArticleHandlerSuite struct {
	suite.Suite
	svc    *fakeArticleService
	router *gin.Engine
}

func (suite *ArticleHandlerSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.svc = &fakeArticleService{}
	h := NewArticleHandler(suite.svc, &helper.HTTPHelper{})

	router := gin.New()
	articles := router.Group("/api/v1/articles")
	{
		articles.GET("/:id", h.GetArticle)
		articles.POST("", h.CreateArticle)
		articles.DELETE("/:id", h.DeleteArticle)
	}
	suite.router = router
}

func (suite *ArticleHandlerSuite) multipartBody(withFile bool) (*bytes.Buffer, string) {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)

	w.WriteField("name", "Harbor lights")
	w.WriteField("description", "Evening photo essay")
	w.WriteField("content", "<p>body</p>")
	w.WriteField("status", "A")
	w.WriteField("category_id", "1")

	if withFile {
		fw, err := w.CreateFormFile("image", "photo.png")
		suite.Require().NoError(err)
		fw.Write([]byte("not-really-a-png"))
	}

	w.Close()
	return body, w.FormDataContentType()
}

func (suite *ArticleHandlerSuite) TestCreateWithoutFileIsRejected() {
	body, contentType := suite.multipartBody(false)

	req := httptest.NewRequest("POST", "/api/v1/articles", body)
	req.Header.Set("Content-Type", contentType)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Nil(suite.svc.created, "service never invoked")
}

func (suite *ArticleHandlerSuite) TestCreateWithFile() {
	body, contentType := suite.multipartBody(true)

	req := httptest.NewRequest("POST", "/api/v1/articles", body)
	req.Header.Set("Content-Type", contentType)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)
	suite.Equal("photo.png", suite.svc.createdFilename)
}

func (suite *ArticleHandlerSuite) TestGetArticleNotFound() {
	suite.svc.getErr = models.NewNotFoundError("article not found")

	req := httptest.NewRequest("GET", "/api/v1/articles/42", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *ArticleHandlerSuite) TestGetArticleInvalidID() {
	req := httptest.NewRequest("GET", "/api/v1/articles/not-a-number", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *ArticleHandlerSuite) TestDeleteReturnsNoContent() {
	req := httptest.NewRequest("DELETE", "/api/v1/articles/7", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.Equal(uint(7), suite.svc.deletedArticleID)
	suite.Empty(w.Body.Bytes())
}

func (suite *ArticleHandlerSuite) TestDeleteMissingArticle() {
	suite.svc.deleteErr = models.NewNotFoundError("article not found")

	req := httptest.NewRequest("DELETE", "/api/v1/articles/7", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func TestArticleHandlerSuite(t *testing.T) {
	suite.Run(t, new(ArticleHandlerSuite))
}
