package handlers

import (
	"mime/multipart"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"

	"editorial-cms/helper"
	"editorial-cms/models"
	"editorial-cms/services"
)

type ArticleHandler struct {
	articleService services.ArticleService
	Helper         *helper.HTTPHelper
}

func NewArticleHandler(articleService services.ArticleService, h *helper.HTTPHelper) *ArticleHandler {
	return &ArticleHandler{articleService: articleService, Helper: h}
}

func (h *ArticleHandler) GetArticles(c *gin.Context) {
	articles, err := h.articleService.GetArticles()
	if err != nil {
		h.Helper.SendErrorFromKind(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", articles)
}

func (h *ArticleHandler) GetRandomArticles(c *gin.Context) {
	articles, err := h.articleService.GetRandomArticles()
	if err != nil {
		h.Helper.SendErrorFromKind(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", articles)
}

func (h *ArticleHandler) GetArticle(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid article ID", h.Helper.EmptyJsonMap())
		return
	}

	article, err := h.articleService.GetArticle(uint(id))
	if err != nil {
		h.Helper.SendErrorFromKind(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", article)
}

func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	var form models.ArticleForm
	if err := c.ShouldBind(&form); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	file, err := c.FormFile("image")
	if err != nil || file.Size == 0 {
		h.Helper.SendBadRequest(c, "The 'image' field is required", h.Helper.EmptyJsonMap())
		return
	}

	localPath, cleanup, err := h.saveTempFile(c, file)
	if err != nil {
		h.Helper.SendInternalServerError(c, "Failed to store the uploaded file: "+err.Error(), h.Helper.EmptyJsonMap())
		return
	}
	defer cleanup()

	article, err := h.articleService.CreateArticle(form, localPath, file.Filename)
	if err != nil {
		h.Helper.SendErrorFromKind(c, err)
		return
	}

	h.Helper.SendCreated(c, "Article created successfully", article)
}

func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid article ID", h.Helper.EmptyJsonMap())
		return
	}

	var form models.ArticleForm
	if err := c.ShouldBind(&form); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	localPath := ""
	originalFilename := ""
	if file, err := c.FormFile("image"); err == nil && file.Size > 0 {
		path, cleanup, err := h.saveTempFile(c, file)
		if err != nil {
			h.Helper.SendInternalServerError(c, "Failed to store the uploaded file: "+err.Error(), h.Helper.EmptyJsonMap())
			return
		}
		defer cleanup()
		localPath = path
		originalFilename = file.Filename
	}

	article, err := h.articleService.UpdateArticle(uint(id), form, localPath, originalFilename)
	if err != nil {
		h.Helper.SendErrorFromKind(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Article updated successfully", article)
}

func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid article ID", h.Helper.EmptyJsonMap())
		return
	}

	if err := h.articleService.DeleteArticle(uint(id)); err != nil {
		h.Helper.SendErrorFromKind(c, err)
		return
	}

	h.Helper.SendNoContent(c)
}

func (h *ArticleHandler) AddAuthor(c *gin.Context) {
	articleID, userID, ok := h.linkIDs(c, "user_id")
	if !ok {
		return
	}

	if err := h.articleService.AddAuthor(articleID, userID); err != nil {
		h.Helper.SendErrorFromKind(c, err)
		return
	}

	h.Helper.SendCreated(c, "Author linked successfully", h.Helper.EmptyJsonMap())
}

func (h *ArticleHandler) RemoveAuthor(c *gin.Context) {
	articleID, userID, ok := h.linkIDs(c, "user_id")
	if !ok {
		return
	}

	if err := h.articleService.RemoveAuthor(articleID, userID); err != nil {
		h.Helper.SendErrorFromKind(c, err)
		return
	}

	h.Helper.SendNoContent(c)
}

func (h *ArticleHandler) AddTag(c *gin.Context) {
	articleID, tagID, ok := h.linkIDs(c, "tag_id")
	if !ok {
		return
	}

	if err := h.articleService.AddTag(articleID, tagID); err != nil {
		h.Helper.SendErrorFromKind(c, err)
		return
	}

	h.Helper.SendCreated(c, "Tag linked successfully", h.Helper.EmptyJsonMap())
}

func (h *ArticleHandler) RemoveTag(c *gin.Context) {
	articleID, tagID, ok := h.linkIDs(c, "tag_id")
	if !ok {
		return
	}

	if err := h.articleService.RemoveTag(articleID, tagID); err != nil {
		h.Helper.SendErrorFromKind(c, err)
		return
	}

	h.Helper.SendNoContent(c)
}

// saveTempFile writes the uploaded file to a scoped temp path; the caller
// must defer cleanup so the local copy is removed whatever the upload
// outcome.
func (h *ArticleHandler) saveTempFile(c *gin.Context, file *multipart.FileHeader) (string, func(), error) {
	tmp, err := os.CreateTemp("", "upload-*")
	if err != nil {
		return "", nil, err
	}
	path := tmp.Name()
	tmp.Close()

	if err := c.SaveUploadedFile(file, path); err != nil {
		os.Remove(path)
		return "", nil, err
	}

	return path, func() { os.Remove(path) }, nil
}

func (h *ArticleHandler) linkIDs(c *gin.Context, param string) (uint, uint, bool) {
	articleID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid article ID", h.Helper.EmptyJsonMap())
		return 0, 0, false
	}

	otherID, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid "+param, h.Helper.EmptyJsonMap())
		return 0, 0, false
	}

	return uint(articleID), uint(otherID), true
}
