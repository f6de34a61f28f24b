package services

import (
	"errors"
	"path/filepath"

	"gorm.io/gorm"

	"editorial-cms/models"
)

type fakeArticleRepo struct {
	articles     map[uint]*models.Article
	nextID       uint
	linksRemoved []uint
	deleted      []uint
	authorLinks  []models.ArticleAuthor
	tagLinks     []models.ArticleTag
	// stands in for the Category preload of the real repository
	hydrateCategory *models.Category
}

func newFakeArticleRepo() *fakeArticleRepo {
	return &fakeArticleRepo{articles: map[uint]*models.Article{}}
}

func (f *fakeArticleRepo) Create(a *models.Article) error {
	f.nextID++
	a.ID = f.nextID
	cp := *a
	f.articles[a.ID] = &cp
	return nil
}

func (f *fakeArticleRepo) GetByID(id uint) (*models.Article, error) {
	a, ok := f.articles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *a
	if cp.Category.Name == "" && f.hydrateCategory != nil && cp.CategoryID == f.hydrateCategory.ID {
		cp.Category = *f.hydrateCategory
	}
	return &cp, nil
}

func (f *fakeArticleRepo) GetAll() ([]models.Article, error) {
	out := make([]models.Article, 0, len(f.articles))
	for _, a := range f.articles {
		out = append(out, *a)
	}
	return out, nil
}

func (f *fakeArticleRepo) GetRandom(limit int) ([]models.Article, error) {
	out := make([]models.Article, 0, limit)
	for _, a := range f.articles {
		if len(out) == limit {
			break
		}
		out = append(out, *a)
	}
	return out, nil
}

func (f *fakeArticleRepo) Update(a *models.Article) error {
	if _, ok := f.articles[a.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *a
	f.articles[a.ID] = &cp
	return nil
}

func (f *fakeArticleRepo) Delete(id uint) error {
	delete(f.articles, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeArticleRepo) AddAuthor(link *models.ArticleAuthor) error {
	for _, l := range f.authorLinks {
		if l.ArticleID == link.ArticleID && l.UserID == link.UserID {
			return gorm.ErrDuplicatedKey
		}
	}
	f.authorLinks = append(f.authorLinks, *link)
	return nil
}

func (f *fakeArticleRepo) RemoveAuthor(articleID, userID uint) error {
	for i, l := range f.authorLinks {
		if l.ArticleID == articleID && l.UserID == userID {
			f.authorLinks = append(f.authorLinks[:i], f.authorLinks[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeArticleRepo) AddTag(link *models.ArticleTag) error {
	for _, l := range f.tagLinks {
		if l.ArticleID == link.ArticleID && l.TagID == link.TagID {
			return gorm.ErrDuplicatedKey
		}
	}
	f.tagLinks = append(f.tagLinks, *link)
	return nil
}

func (f *fakeArticleRepo) RemoveTag(articleID, tagID uint) error {
	for i, l := range f.tagLinks {
		if l.ArticleID == articleID && l.TagID == tagID {
			f.tagLinks = append(f.tagLinks[:i], f.tagLinks[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeArticleRepo) RemoveLinks(articleID uint) error {
	f.linksRemoved = append(f.linksRemoved, articleID)
	return nil
}

type fakeCategoryRepo struct {
	categories map[uint]*models.Category
}

func newFakeCategoryRepo(categories ...*models.Category) *fakeCategoryRepo {
	f := &fakeCategoryRepo{categories: map[uint]*models.Category{}}
	for _, c := range categories {
		f.categories[c.ID] = c
	}
	return f
}

func (f *fakeCategoryRepo) Create(c *models.Category) error {
	f.categories[c.ID] = c
	return nil
}

func (f *fakeCategoryRepo) GetByID(id uint) (*models.Category, error) {
	c, ok := f.categories[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCategoryRepo) GetAll() ([]models.Category, error) {
	out := make([]models.Category, 0, len(f.categories))
	for _, c := range f.categories {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeCategoryRepo) Update(c *models.Category) error { return nil }
func (f *fakeCategoryRepo) Delete(id uint) error            { return nil }

type fakeUserRepo struct {
	users     map[uint]*models.User
	updateErr error
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	f := &fakeUserRepo{users: map[uint]*models.User{}}
	for _, u := range users {
		f.users[u.ID] = u
	}
	return f
}

func (f *fakeUserRepo) GetAll() ([]models.User, error) {
	out := make([]models.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserRepo) GetByID(id uint) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) Update(u *models.User) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) Delete(id uint) error {
	delete(f.users, id)
	return nil
}

func (f *fakeUserRepo) Exists(id uint) (bool, error) {
	_, ok := f.users[id]
	return ok, nil
}

type fakeTagRepo struct {
	tags map[uint]*models.Tag
}

func newFakeTagRepo(tags ...*models.Tag) *fakeTagRepo {
	f := &fakeTagRepo{tags: map[uint]*models.Tag{}}
	for _, t := range tags {
		f.tags[t.ID] = t
	}
	return f
}

func (f *fakeTagRepo) Create(t *models.Tag) error { f.tags[t.ID] = t; return nil }

func (f *fakeTagRepo) GetByName(name string) (*models.Tag, error) {
	for _, t := range f.tags {
		if t.Name == name {
			cp := *t
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeTagRepo) GetByID(id uint) (*models.Tag, error) {
	t, ok := f.tags[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *t
	return &cp, nil
}

func (f *fakeTagRepo) GetAll() ([]models.Tag, error) {
	out := make([]models.Tag, 0, len(f.tags))
	for _, t := range f.tags {
		out = append(out, *t)
	}
	return out, nil
}

func (f *fakeTagRepo) Delete(id uint) error { delete(f.tags, id); return nil }

// fakeBlob records blob calls and reuses the real folder/name helpers so
// URLs look like production ones.
type fakeBlob struct {
	uploads    []string
	deletes    []string
	failUpload bool
	deleteOK   bool
}

func (f *fakeBlob) Upload(localPath, originalFilename string) (*UploadResult, error) {
	if f.failUpload {
		return nil, errors.New("ftp unavailable")
	}
	f.uploads = append(f.uploads, originalFilename)
	folder := folderForExtension(filepath.Ext(originalFilename))
	name := uniqueFilename(originalFilename)
	return &UploadResult{
		URL:      "http://cdn.test/" + folder + name,
		Folder:   folder,
		Filename: name,
	}, nil
}

func (f *fakeBlob) Delete(remotePath string) bool {
	f.deletes = append(f.deletes, remotePath)
	return f.deleteOK
}

func (f *fakeBlob) List() []string { return []string{} }
