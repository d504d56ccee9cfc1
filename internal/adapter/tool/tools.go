package tool

import (
	"context"
	"fmt"
	"strings"

	"personal-brand-crew/internal/application/port/output"
	"personal-brand-crew/internal/domain/entity"

	"github.com/tmc/langchaingo/tools"
)

var (
	_ output.ToolPort = (*SearchInternetTool)(nil)
	_ output.ToolPort = (*GoogleTrendsTool)(nil)
	_ output.ToolPort = (*HumanTool)(nil)

	_ tools.Tool = (*SearchInternetTool)(nil)
)

type SearchInternetTool struct {
	search output.SearchPort
	logger output.LoggerPort
}

func NewSearchInternetTool(search output.SearchPort, logger output.LoggerPort) *SearchInternetTool {
	return &SearchInternetTool{search: search, logger: logger}
}

func (t *SearchInternetTool) Name() string { return entity.ToolSearchInternet.String() }
func (t *SearchInternetTool) Description() string {
	return "Searches the internet with Serpapi about a given topic and returns relevant results."
}
func (t *SearchInternetTool) Argument() entity.ToolArgument {
	return entity.ToolArgument{Name: "query", Description: "The topic to search the internet for"}
}

func (t *SearchInternetTool) Call(ctx context.Context, input string) (string, error) {
	result, err := t.search.Search(ctx, input)
	if err != nil {
		return "", err
	}
	if result == "" {
		t.logger.Info("Search produced no complete results", "query", input)
	}
	return result, nil
}

type GoogleTrendsTool struct {
	trends output.TrendsPort
	logger output.LoggerPort
}

func NewGoogleTrendsTool(trends output.TrendsPort, logger output.LoggerPort) *GoogleTrendsTool {
	return &GoogleTrendsTool{trends: trends, logger: logger}
}

func (t *GoogleTrendsTool) Name() string { return entity.ToolGoogleTrends.String() }
func (t *GoogleTrendsTool) Description() string {
	return "A wrapper around Google Trends Search. Useful for when you need to get information about " +
		"google search trends from Google Trends. Input should be a search query."
}
func (t *GoogleTrendsTool) Argument() entity.ToolArgument {
	return entity.ToolArgument{Name: "query", Description: "The search term to look up on Google Trends"}
}

func (t *GoogleTrendsTool) Call(ctx context.Context, input string) (string, error) {
	return t.trends.Trends(ctx, input)
}

type HumanTool struct {
	user   output.UserInteractionPort
	logger output.LoggerPort
}

func NewHumanTool(user output.UserInteractionPort, logger output.LoggerPort) *HumanTool {
	return &HumanTool{user: user, logger: logger}
}

func (t *HumanTool) Name() string { return entity.ToolHuman.String() }
func (t *HumanTool) Description() string {
	return "You can ask a human for guidance when you think you got stuck or you are not sure what to do next. " +
		"The input should be a question for the human."
}
func (t *HumanTool) Argument() entity.ToolArgument {
	return entity.ToolArgument{Name: "question", Description: "The question to put to the human"}
}

func (t *HumanTool) Call(ctx context.Context, input string) (string, error) {
	answer, err := t.user.AskQuestion(ctx, input)
	if err != nil {
		return "", fmt.Errorf("ask human: %w", err)
	}
	t.logger.Info("Human answered", "question", input, "answerLen", len(answer))
	if strings.TrimSpace(answer) == "" {
		return "The human gave no answer.", nil
	}
	return answer, nil
}
