package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// Rewriter produces a rewritten title, summary and tag list for one article.
// It backs the batch rewrite endpoint that Client consumes.
type Rewriter interface {
	Rewrite(ctx context.Context, in ArticleInput) (ProcessedArticle, error)
}

// OpenAIRewriter implements Rewriter using the Chat Completions API.
type OpenAIRewriter struct {
	client *openai.Client
	model  string
}

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string // optional
}

func NewOpenAIRewriter(cfg OpenAIConfig) *OpenAIRewriter {
	var c *openai.Client
	if cfg.BaseURL != "" {
		cc := openai.DefaultConfig(cfg.APIKey)
		cc.BaseURL = cfg.BaseURL
		c = openai.NewClientWithConfig(cc)
	} else {
		c = openai.NewClient(cfg.APIKey)
	}
	if cfg.Model == "" {
		panic("OpenAI model must be specified")
	}
	return &OpenAIRewriter{client: c, model: cfg.Model}
}

const rewriteSystemPrompt = `You are an expert gaming news editor and SEO specialist.
Your task is to process gaming news articles and return a JSON object.

Follow these strict rules:
1. Summary: write a concise, factual summary between 90-110 words. Direct, answer-first, data-rich. No bullet points.
2. Title: generate a compelling headline under 60 characters. No clickbait.
3. Tags: generate 3-5 relevant tags. Always include specific game names, genres, or platforms mentioned.

Respond ONLY with valid JSON in this format:
{"title": "string", "summary": "string", "tags": ["string", "string"]}`

// rewriteResult is the JSON shape the model is asked to return.
type rewriteResult struct {
	Title   string   `json:"title"`
	Summary string   `json:"summary"`
	Tags    []string `json:"tags"`
}

// Rewrite sends one article through the model. Unparsable model output falls
// back to the original text rather than failing.
func (o *OpenAIRewriter) Rewrite(ctx context.Context, in ArticleInput) (ProcessedArticle, error) {
	ctx, cancel := context.WithTimeout(ctx, 120*time.Second)
	defer cancel()

	content := strings.TrimSpace(in.Content)
	if len([]rune(content)) > 2000 {
		content = string([]rune(content)[:2000])
	}
	user := fmt.Sprintf("Article Title: %s\nSource: %s\nContent: %s", in.Title, in.Source, content)

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: rewriteSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		Temperature: 0.4,
	})
	if err != nil {
		return ProcessedArticle{}, err
	}
	if len(resp.Choices) == 0 {
		return ProcessedArticle{}, fmt.Errorf("enrich: empty completion")
	}
	return parseRewrite(in, resp.Choices[0].Message.Content), nil
}

// parseRewrite decodes the model output, tolerating markdown code fences. On
// decode failure it degrades to the original article text.
func parseRewrite(in ArticleInput, raw string) ProcessedArticle {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var res rewriteResult
	if err := json.Unmarshal([]byte(cleaned), &res); err != nil {
		slog.Error("enrich: unparsable model output, keeping original.", "title", in.Title, "error", err)
		return ProcessedArticle{ProcessedTitle: in.Title, ProcessedSummary: in.Content}
	}
	out := ProcessedArticle{
		ProcessedTitle:   res.Title,
		ProcessedSummary: res.Summary,
		ProcessedTags:    res.Tags,
	}
	if out.ProcessedTitle == "" {
		out.ProcessedTitle = in.Title
	}
	if out.ProcessedSummary == "" {
		out.ProcessedSummary = in.Content
	}
	return out
}

// ProcessBatch rewrites a batch of articles in concurrent sub-batches. A
// failed article keeps its original text; the batch as a whole never fails.
func ProcessBatch(ctx context.Context, rw Rewriter, articles []ArticleInput, batchSize int) []ProcessedArticle {
	if batchSize <= 0 {
		batchSize = 5
	}
	out := make([]ProcessedArticle, len(articles))
	for start := 0; start < len(articles); start += batchSize {
		end := start + batchSize
		if end > len(articles) {
			end = len(articles)
		}
		var wg sync.WaitGroup
		for i := start; i < end; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				p, err := rw.Rewrite(ctx, articles[i])
				if err != nil {
					slog.Error("enrich: rewrite failed, keeping original.", "title", articles[i].Title, "error", err)
					p = ProcessedArticle{
						ProcessedTitle:   articles[i].Title,
						ProcessedSummary: articles[i].Content,
					}
				}
				out[i] = p
			}(i)
		}
		wg.Wait()
	}
	return out
}
