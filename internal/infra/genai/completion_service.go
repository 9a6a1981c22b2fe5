// Package genai implements the completion service on the Gemini API.
package genai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"library/config"
	"library/internal/domain/entity"
	"library/internal/domain/service"

	"github.com/pkg/errors"
	"google.golang.org/genai"
)

const (
	lookupPromptFormat  = "書籍「%s」の情報を日本語で取得してください。"
	suggestPromptFormat = "司書の要望「%s」に基づき、登録すべき蔵書リストを作成してください。"
)

// generator is the part of the SDK the service needs; tests replace it.
type generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type completionService struct {
	models generator
	model  string
	logger *slog.Logger
}

// NewCompletionService creates a Gemini-backed completion service.
func NewCompletionService(ctx context.Context, cfg *config.GenAIConfig, logger *slog.Logger) (service.CompletionService, error) {
	if cfg == nil || cfg.APIKey == "" {
		return nil, errors.New("genai api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create genai client")
	}

	logger.Info("GenAI completion service initialized", slog.String("model", cfg.Model))

	return &completionService{
		models: client.Models,
		model:  cfg.Model,
		logger: logger,
	}, nil
}

// LookupBook asks for the five descriptive fields of a single title.
func (s *completionService) LookupBook(ctx context.Context, title string) (*entity.BookDetails, error) {
	text, err := s.generate(ctx, fmt.Sprintf(lookupPromptFormat, title), bookDetailsSchema())
	if err != nil {
		return nil, err
	}

	return parseBookDetails(text)
}

// SuggestBooks asks for an array of complete book entries.
func (s *completionService) SuggestBooks(ctx context.Context, request string) ([]*entity.BookDetails, error) {
	text, err := s.generate(ctx, fmt.Sprintf(suggestPromptFormat, request), bookListSchema())
	if err != nil {
		return nil, err
	}

	return parseBookList(text)
}

func (s *completionService) generate(ctx context.Context, prompt string, schema *genai.Schema) (string, error) {
	resp, err := s.models.GenerateContent(ctx, s.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	})
	if err != nil {
		return "", errors.Wrap(err, "generate content")
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", errors.Wrap(service.ErrCompletionParse, "empty completion")
	}

	s.logger.DebugContext(ctx, "GenAI completion received", slog.Int("length", len(text)))

	return text, nil
}

func bookDetailsSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"author":        {Type: genai.TypeString, Description: "著者名"},
			"publisher":     {Type: genai.TypeString, Description: "出版社名"},
			"publishedDate": {Type: genai.TypeString, Description: "出版年月日"},
			"description":   {Type: genai.TypeString, Description: "100文字程度の内容紹介"},
			"category":      {Type: genai.TypeString, Description: "書籍のジャンル"},
		},
		Required: []string{"author", "publisher", "publishedDate", "description", "category"},
	}
}

func bookListSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeArray,
		Items: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"title":         {Type: genai.TypeString},
				"author":        {Type: genai.TypeString},
				"publisher":     {Type: genai.TypeString},
				"publishedDate": {Type: genai.TypeString},
				"description":   {Type: genai.TypeString},
				"category":      {Type: genai.TypeString},
			},
			Required: []string{"title", "author", "publisher", "publishedDate", "description", "category"},
		},
	}
}

func parseBookDetails(text string) (*entity.BookDetails, error) {
	var details entity.BookDetails
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &details); err != nil {
		return nil, errors.Wrap(service.ErrCompletionParse, err.Error())
	}

	return &details, nil
}

func parseBookList(text string) ([]*entity.BookDetails, error) {
	var books []*entity.BookDetails
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &books); err != nil {
		return nil, errors.Wrap(service.ErrCompletionParse, err.Error())
	}

	// null elements carry no title and cannot be registered
	filtered := books[:0]
	for _, book := range books {
		if book != nil {
			filtered = append(filtered, book)
		}
	}

	return filtered, nil
}
