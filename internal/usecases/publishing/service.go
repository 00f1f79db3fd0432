package publishing

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/pkg/errors"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/hfujimoto/athlete-site-api/infrastructure/integrator/openai"
	"github.com/hfujimoto/athlete-site-api/infrastructure/repository"
	"github.com/hfujimoto/athlete-site-api/internal/config"
	"github.com/hfujimoto/athlete-site-api/internal/domain"
	"github.com/hfujimoto/athlete-site-api/pkg/log"
	"github.com/hfujimoto/athlete-site-api/pkg/utils"

	jsoniter "github.com/json-iterator/go"
)

// Limite de texto extraído da página de referência enviado ao modelo
const referenceContentLimit = 8000

const slugSuffixAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// Publisher cobre o ciclo de vida dos posts do blog: CRUD do dashboard,
// leitura pública, geração assistida por IA e o sitemap
type Publisher interface {
	ListPublished() ([]*domain.BlogPost, error)
	GetPublishedBySlug(slug string) (*domain.BlogPost, error)
	ListAll(status string) ([]*domain.BlogPost, error)
	GetByID(id int) (*domain.BlogPost, error)
	CreatePost(post *domain.BlogPost) (*domain.BlogPost, error)
	UpdatePost(request *domain.UpdateBlogPostRequest) error
	DeletePost(id int) error
	GeneratePost(ctx context.Context, referenceURL string) (*domain.GeneratedPost, error)
	BuildSitemap() (string, error)
}

type Service struct {
	blogRepo     repository.BlogPostRepository
	openaiClient openai.Client
	cfg          *config.Config
}

func NewService(blogRepo repository.BlogPostRepository, openaiClient openai.Client, cfg *config.Config) Publisher {
	return &Service{
		blogRepo:     blogRepo,
		openaiClient: openaiClient,
		cfg:          cfg,
	}
}

var (
	ErrPostNotFound = errors.New("post não encontrado")
	ErrMissingTitle = errors.New("título é obrigatório")
	ErrMissingURL   = errors.New("URL de referência é obrigatória")
)

func (s *Service) ListPublished() ([]*domain.BlogPost, error) {
	return s.blogRepo.ListByStatus(domain.PostStatusPublished)
}

func (s *Service) GetPublishedBySlug(slug string) (*domain.BlogPost, error) {
	post, err := s.blogRepo.GetBySlug(slug)
	if err != nil {
		return nil, err
	}

	if post == nil || post.Status != domain.PostStatusPublished {
		return nil, ErrPostNotFound
	}

	return post, nil
}

func (s *Service) ListAll(status string) ([]*domain.BlogPost, error) {
	return s.blogRepo.ListByStatus(status)
}

func (s *Service) GetByID(id int) (*domain.BlogPost, error) {
	post, err := s.blogRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	return post, nil
}

// CreatePost persiste um novo post gerando o slug a partir do título quando
// não informado. Colisões de slug ganham um sufixo aleatório curto.
func (s *Service) CreatePost(post *domain.BlogPost) (*domain.BlogPost, error) {
	if post.Title == "" {
		return nil, ErrMissingTitle
	}

	if post.Status == "" {
		post.Status = domain.PostStatusDraft
	}

	if post.Slug == "" {
		post.Slug = Slugify(post.Title)
	}

	slug, err := s.resolveSlug(post.Slug)
	if err != nil {
		return nil, err
	}
	post.Slug = slug

	if post.Status == domain.PostStatusPublished && post.PublishedAt == nil {
		now := time.Now()
		post.PublishedAt = &now
	}

	return s.blogRepo.Create(post)
}

func (s *Service) UpdatePost(request *domain.UpdateBlogPostRequest) error {
	if request.ID == 0 {
		return errors.New("ID é obrigatório")
	}

	post, err := s.blogRepo.GetByID(request.ID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}

	if request.Title != nil {
		post.Title = *request.Title
	}

	if request.Excerpt != nil {
		post.Excerpt = *request.Excerpt
	}

	if request.Content != nil {
		post.Content = *request.Content
	}

	if request.CoverImageURL != nil {
		post.CoverImageURL = request.CoverImageURL
	}

	if request.MetaTitle != nil {
		post.MetaTitle = *request.MetaTitle
	}

	if request.MetaDescription != nil {
		post.MetaDescription = *request.MetaDescription
	}

	if request.Keywords != nil {
		post.Keywords = *request.Keywords
	}

	if request.Category != nil {
		post.Category = *request.Category
	}

	if request.Status != nil {
		// A primeira publicação carimba a data; despublicar não a limpa
		if *request.Status == domain.PostStatusPublished && post.PublishedAt == nil {
			now := time.Now()
			post.PublishedAt = &now
		}
		post.Status = *request.Status
	}

	return s.blogRepo.Update(post)
}

func (s *Service) DeletePost(id int) error {
	post, err := s.blogRepo.GetByID(id)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}

	return s.blogRepo.Delete(id)
}

// GeneratePost baixa a página de referência, extrai o texto e pede ao modelo
// um rascunho completo de post otimizado para SEO
func (s *Service) GeneratePost(ctx context.Context, referenceURL string) (*domain.GeneratedPost, error) {
	if referenceURL == "" {
		return nil, ErrMissingURL
	}

	pageContent := s.extractPageContent(ctx, referenceURL)

	userPrompt := fmt.Sprintf(
		"Com base no conteúdo abaixo, escreva um post de blog completo e otimizado para SEO.\n\nURL de referência: %s\n\nConteúdo extraído:\n%s\n\nGere o post em formato JSON conforme instruído.",
		referenceURL, pageContent,
	)

	raw, err := s.openaiClient.CompleteJSON(ctx, s.systemPrompt(), userPrompt)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("url", referenceURL).Error("Erro ao gerar rascunho de post")
		return nil, err
	}

	generated := &domain.GeneratedPost{}
	if err := jsoniter.Unmarshal(raw, generated); err != nil {
		return nil, errors.Wrap(err, "resposta da IA não é um rascunho válido")
	}

	return generated, nil
}

// BuildSitemap monta o sitemap.xml do site: páginas estáticas mais um
// registro por post publicado
func (s *Service) BuildSitemap() (string, error) {
	posts, err := s.blogRepo.ListByStatus(domain.PostStatusPublished)
	if err != nil {
		return "", err
	}

	domainURL := strings.TrimSuffix(s.cfg.Site.Domain, "/")
	lastMod := time.Now().Format("2006-01-02")

	var sitemap strings.Builder
	sitemap.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	sitemap.WriteString(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">` + "\n")

	writeURL := func(loc, lastmod, changefreq, priority string) {
		sitemap.WriteString("  <url>\n")
		sitemap.WriteString("    <loc>" + loc + "</loc>\n")
		sitemap.WriteString("    <lastmod>" + lastmod + "</lastmod>\n")
		sitemap.WriteString("    <changefreq>" + changefreq + "</changefreq>\n")
		sitemap.WriteString("    <priority>" + priority + "</priority>\n")
		sitemap.WriteString("  </url>\n")
	}

	writeURL(domainURL+"/", lastMod, "weekly", "1.0")
	writeURL(domainURL+"/blog", lastMod, "daily", "0.8")

	for _, post := range posts {
		writeURL(
			domainURL+"/blog/"+post.Slug,
			post.UpdatedAt.Format("2006-01-02"),
			"monthly",
			"0.6",
		)
	}

	sitemap.WriteString("</urlset>")
	return sitemap.String(), nil
}

// resolveSlug confere se o slug já existe e, em caso de colisão, anexa um
// sufixo aleatório de seis caracteres
func (s *Service) resolveSlug(slug string) (string, error) {
	existing, err := s.blogRepo.GetBySlug(slug)
	if err != nil {
		return "", err
	}
	if existing == nil {
		return slug, nil
	}

	suffix, err := gonanoid.Generate(slugSuffixAlphabet, 6)
	if err != nil {
		return "", err
	}

	return slug + "-" + suffix, nil
}

var (
	htmlScriptPattern = regexp.MustCompile(`(?is)<script.*?</script>`)
	htmlStylePattern  = regexp.MustCompile(`(?is)<style.*?</style>`)
	htmlTagPattern    = regexp.MustCompile(`<[^>]+>`)
	whitespacePattern = regexp.MustCompile(`\s+`)
	slugInvalidChars  = regexp.MustCompile(`[^a-z0-9]+`)
)

// extractPageContent baixa a página e remove a marcação, mantendo só o texto.
// Falha no download não interrompe a geração: o modelo recebe apenas a URL.
func (s *Service) extractPageContent(ctx context.Context, referenceURL string) string {
	body, err := utils.MakeRequest(referenceURL)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("url", referenceURL).Warn("Não foi possível extrair o conteúdo da página de referência")
		return fmt.Sprintf("URL: %s (não foi possível extrair o conteúdo automaticamente)", referenceURL)
	}

	text := htmlScriptPattern.ReplaceAllString(string(body), "")
	text = htmlStylePattern.ReplaceAllString(text, "")
	text = htmlTagPattern.ReplaceAllString(text, " ")
	text = whitespacePattern.ReplaceAllString(text, " ")
	text = strings.TrimSpace(text)

	if len(text) > referenceContentLimit {
		text = text[:referenceContentLimit]
	}

	return text
}

func (s *Service) systemPrompt() string {
	return fmt.Sprintf(`Você é um redator de blog profissional especializado em SEO para o atleta de judô %s.

Seu trabalho é transformar conteúdo de referência em posts de blog originais, informativos e otimizados para mecanismos de busca.

REGRAS:
- Escreva em português brasileiro
- Tom: profissional mas acessível, inspirador
- Sempre em primeira pessoa quando mencionar o atleta, ou em terceira se for notícia
- Otimize para SEO: use headers H2, parágrafos curtos, palavras-chave naturalmente distribuídas
- Inclua um parágrafo de introdução cativante
- Termine com um call-to-action (convidar a acompanhar, seguir, apoiar)
- O conteúdo deve ter pelo menos 800 palavras
- Use formatação Markdown: ## para subtítulos, **negrito** para ênfase, listas quando apropriado

RETORNE um JSON válido com exatamente esta estrutura:
{
    "title": "Título do post (máx 70 chars, SEO otimizado)",
    "excerpt": "Resumo do post (1-2 frases, 100-160 chars)",
    "content": "Conteúdo completo em Markdown",
    "meta_title": "Título SEO (30-60 chars, com keyword principal)",
    "meta_description": "Descrição para Google (120-155 chars, com CTA)",
    "keywords": ["keyword1", "keyword2", "keyword3", "keyword4", "keyword5"],
    "category": "judô|treino|competição|nutrição|vida-de-atleta|notícias|geral"
}`, s.cfg.Site.AthleteName)
}

// Slugify converte um título em slug de URL: minúsculas, sem acentos, tudo
// que não é alfanumérico vira hífen
func Slugify(title string) string {
	normalizer := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	plain, _, err := transform.String(normalizer, strings.ToLower(title))
	if err != nil {
		plain = strings.ToLower(title)
	}

	slug := slugInvalidChars.ReplaceAllString(plain, "-")
	return strings.Trim(slug, "-")
}
