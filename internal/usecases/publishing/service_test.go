package publishing

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hfujimoto/athlete-site-api/infrastructure/repository/mocks"
	"github.com/hfujimoto/athlete-site-api/internal/config"
	"github.com/hfujimoto/athlete-site-api/internal/domain"
)

func newTestService(blogRepo *mocks.MockBlogPostRepository) Publisher {
	cfg := &config.Config{
		Site: config.Site{
			Domain:      "https://henriquefujimoto.com.br",
			AthleteName: "Henrique Fujimoto",
		},
	}
	return NewService(blogRepo, nil, cfg)
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		expected string
	}{
		{name: "título simples", title: "Treino de Judô", expected: "treino-de-judo"},
		{name: "acentos removidos", title: "Competição em São Paulo", expected: "competicao-em-sao-paulo"},
		{name: "pontuação vira hífen", title: "Ouro! E agora?", expected: "ouro-e-agora"},
		{name: "espaços nas bordas são aparados", title: "  Nutrição  ", expected: "nutricao"},
		{name: "números preservados", title: "Top 5 técnicas de 2024", expected: "top-5-tecnicas-de-2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slugify(tt.title))
		})
	}
}

func TestCreatePost_GeneratesSlugFromTitle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	blogRepo := mocks.NewMockBlogPostRepository(ctrl)
	service := newTestService(blogRepo)

	blogRepo.EXPECT().GetBySlug("medalha-em-sao-paulo").Return(nil, nil)
	blogRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(post *domain.BlogPost) (*domain.BlogPost, error) {
		post.ID = 1
		return post, nil
	})

	post, err := service.CreatePost(&domain.BlogPost{Title: "Medalha em São Paulo"})

	require.NoError(t, err)
	assert.Equal(t, "medalha-em-sao-paulo", post.Slug)
	assert.Equal(t, domain.PostStatusDraft, post.Status)
	assert.Nil(t, post.PublishedAt)
}

func TestCreatePost_SlugCollisionGetsSuffix(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	blogRepo := mocks.NewMockBlogPostRepository(ctrl)
	service := newTestService(blogRepo)

	blogRepo.EXPECT().GetBySlug("treino-de-judo").Return(&domain.BlogPost{ID: 7, Slug: "treino-de-judo"}, nil)
	blogRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(post *domain.BlogPost) (*domain.BlogPost, error) {
		return post, nil
	})

	post, err := service.CreatePost(&domain.BlogPost{Title: "Treino de Judô"})

	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^treino-de-judo-[0-9a-z]{6}$`), post.Slug)
}

func TestCreatePost_PublishedStampsDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	blogRepo := mocks.NewMockBlogPostRepository(ctrl)
	service := newTestService(blogRepo)

	blogRepo.EXPECT().GetBySlug(gomock.Any()).Return(nil, nil)
	blogRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(post *domain.BlogPost) (*domain.BlogPost, error) {
		return post, nil
	})

	post, err := service.CreatePost(&domain.BlogPost{
		Title:  "Resultado do campeonato",
		Status: domain.PostStatusPublished,
	})

	require.NoError(t, err)
	require.NotNil(t, post.PublishedAt)
	assert.WithinDuration(t, time.Now(), *post.PublishedAt, time.Minute)
}

func TestCreatePost_RequiresTitle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	blogRepo := mocks.NewMockBlogPostRepository(ctrl)
	service := newTestService(blogRepo)

	_, err := service.CreatePost(&domain.BlogPost{})

	assert.ErrorIs(t, err, ErrMissingTitle)
}

func TestGetPublishedBySlug_DraftIsNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	blogRepo := mocks.NewMockBlogPostRepository(ctrl)
	service := newTestService(blogRepo)

	blogRepo.EXPECT().GetBySlug("rascunho").Return(&domain.BlogPost{
		Slug:   "rascunho",
		Status: domain.PostStatusDraft,
	}, nil)

	_, err := service.GetPublishedBySlug("rascunho")

	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestUpdatePost_FirstPublicationStampsDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	blogRepo := mocks.NewMockBlogPostRepository(ctrl)
	service := newTestService(blogRepo)

	stored := &domain.BlogPost{ID: 3, Slug: "post", Status: domain.PostStatusDraft}
	blogRepo.EXPECT().GetByID(3).Return(stored, nil)
	blogRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(post *domain.BlogPost) error {
		assert.Equal(t, domain.PostStatusPublished, post.Status)
		assert.NotNil(t, post.PublishedAt)
		return nil
	})

	status := domain.PostStatusPublished
	err := service.UpdatePost(&domain.UpdateBlogPostRequest{ID: 3, Status: &status})

	require.NoError(t, err)
}

func TestBuildSitemap(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	blogRepo := mocks.NewMockBlogPostRepository(ctrl)
	service := newTestService(blogRepo)

	updatedAt := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	blogRepo.EXPECT().ListByStatus(domain.PostStatusPublished).Return([]*domain.BlogPost{
		{Slug: "medalha-de-ouro", UpdatedAt: updatedAt},
	}, nil)

	sitemap, err := service.BuildSitemap()

	require.NoError(t, err)
	assert.Contains(t, sitemap, `<?xml version="1.0" encoding="UTF-8"?>`)
	assert.Contains(t, sitemap, `<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)
	assert.Contains(t, sitemap, "<loc>https://henriquefujimoto.com.br/</loc>")
	assert.Contains(t, sitemap, "<loc>https://henriquefujimoto.com.br/blog</loc>")
	assert.Contains(t, sitemap, "<loc>https://henriquefujimoto.com.br/blog/medalha-de-ouro</loc>")
	assert.Contains(t, sitemap, "<lastmod>2024-05-10</lastmod>")
	assert.Contains(t, sitemap, "</urlset>")
}
