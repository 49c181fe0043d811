package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// OpenAIClient calls the OpenAI Chat Completions API.
type OpenAIClient struct {
	model  openai.ChatModel
	client *openai.Client
}

const (
	defaultChatTimeout     = 30 * time.Second
	defaultChatTemperature = 0.0
)

// The few-shot block anchors the 1-5 scale; the model is told to answer with
// the digit alone.
const systemPrompt = "あなたは与えられた文の抽象度を1から5のレベルで判定するアシスタントです。" +
	"数値のみで回答してください。1は最も具体的、5は最も抽象的です。"

const fewShotExamples = "文: このプレゼンテーションでは、プロジェクトの目標について説明します。\nレベル: 1\n" +
	"文: 雲は気象学において大気中の水滴や氷晶が集まったものです。\nレベル: 2\n" +
	"文: 日本経済の構造改革は複数の要因が複雑に絡み合っています。\nレベル: 3\n" +
	"文: 存在論的な議論では、存在そのものの定義が問われます。\nレベル: 4\n" +
	"文: 意識の本質は何かという問いは哲学の中でも最も抽象的な議論の一つです。\nレベル: 5\n"

// NewOpenAIClient builds a client with defaults against api.openai.com.
func NewOpenAIClient(apiKey string, model openai.ChatModel) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("api key required")
	}
	if model == "" {
		model = openai.ChatModelGPT4o
	}
	cli := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAIClient{
		model:  model,
		client: &cli,
	}, nil
}

func (c *OpenAIClient) ClassifyAbstraction(ctx context.Context, sentence string) (int, error) {
	if c == nil || c.client == nil {
		return 0, fmt.Errorf("nil openai client")
	}
	reqCtx, cancel := context.WithTimeout(ctx, defaultChatTimeout)
	defer cancel()
	messages := buildMessages(
		systemPrompt,
		fmt.Sprintf("%s文: %s\nレベル:", fewShotExamples, sentence),
	)
	resp, err := c.client.Chat.Completions.New(reqCtx, openai.ChatCompletionNewParams{
		Model:       c.model,
		Messages:    messages,
		Temperature: openai.Float(defaultChatTemperature),
	})
	if err != nil {
		return 0, err
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return 0, fmt.Errorf("openai: no choices returned")
	}
	return extractLevel(resp.Choices[0].Message.Content)
}

func buildMessages(system, user string) []openai.ChatCompletionMessageParamUnion {
	return []openai.ChatCompletionMessageParamUnion{
		{
			OfSystem: &openai.ChatCompletionSystemMessageParam{
				Content: openai.ChatCompletionSystemMessageParamContentUnion{
					OfString: openai.String(system),
				},
			},
		},
		{
			OfUser: &openai.ChatCompletionUserMessageParam{
				Content: openai.ChatCompletionUserMessageParamContentUnion{
					OfString: openai.String(user),
				},
			},
		},
	}
}

// extractLevel pulls the first digit out of a model reply. Replies like
// "レベル: 3", "３" or "3." all resolve to 3; a digit outside the scale or a
// reply with no digit at all is an error.
func extractLevel(content string) (int, error) {
	for _, r := range content {
		var level int
		switch {
		case r >= '0' && r <= '9':
			level = int(r - '0')
		case r >= '０' && r <= '９':
			level = int(r - '０')
		default:
			continue
		}
		if level < MinLevel || level > MaxLevel {
			return 0, fmt.Errorf("openai: level %d outside %d-%d scale in reply %q", level, MinLevel, MaxLevel, content)
		}
		return level, nil
	}
	return 0, fmt.Errorf("openai: no level found in reply %q", content)
}
