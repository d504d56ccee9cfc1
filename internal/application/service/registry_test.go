package service

import (
	"context"
	"testing"

	"personal-brand-crew/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTool struct {
	name string
}

func (s stubTool) Name() string        { return s.name }
func (s stubTool) Description() string { return "desc " + s.name }
func (s stubTool) Argument() entity.ToolArgument {
	return entity.ToolArgument{Name: "query", Description: "what to look up"}
}
func (s stubTool) Call(ctx context.Context, input string) (string, error) {
	return s.name + ":" + input, nil
}

func TestToolRegistry_RegisterAndGet(t *testing.T) {
	r := NewToolRegistry()
	r.Register(stubTool{name: "human"})

	tool, ok := r.Get(entity.ToolHuman)
	require.True(t, ok)
	assert.Equal(t, "human", tool.Name())

	_, ok = r.Get(entity.ToolGoogleTrends)
	assert.False(t, ok)
}

func TestToolRegistry_AllSortedByName(t *testing.T) {
	r := NewToolRegistry()
	r.Register(stubTool{name: "search_internet"})
	r.Register(stubTool{name: "google_trends"})
	r.Register(stubTool{name: "human"})

	all := r.All()
	require.Len(t, all, 3)
	assert.Equal(t, "google_trends", all[0].Name())
	assert.Equal(t, "human", all[1].Name())
	assert.Equal(t, "search_internet", all[2].Name())
}

func TestToolRegistry_Definitions(t *testing.T) {
	r := NewToolRegistry()
	r.Register(stubTool{name: "search_internet"})

	defs := r.Definitions()
	require.Len(t, defs, 1)
	assert.Equal(t, "search_internet", defs[0].Name)
	assert.Equal(t, "desc search_internet", defs[0].Description)
	assert.Equal(t, []string{"query"}, defs[0].Parameters["required"])
}

func TestToolRegistry_Subset(t *testing.T) {
	r := NewToolRegistry()
	r.Register(stubTool{name: "search_internet"})
	r.Register(stubTool{name: "human"})

	sub, err := r.Subset([]entity.ToolName{entity.ToolHuman})
	require.NoError(t, err)
	assert.Len(t, sub.All(), 1)

	_, ok := sub.Get(entity.ToolSearchInternet)
	assert.False(t, ok)
}

func TestToolRegistry_SubsetUnknown(t *testing.T) {
	r := NewToolRegistry()

	_, err := r.Subset([]entity.ToolName{entity.ToolGoogleTrends})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "google_trends")
}
