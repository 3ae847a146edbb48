package matcher

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ats-match-go/internal/types"
)

// TestProjectHeatmapOrderAndCaps 类别顺序固定，加分类别截断到5、缺失必备截断到8
func TestProjectHeatmapOrderAndCaps(t *testing.T) {
	report := types.MatchReport{
		Strengths:        []string{"go", "python", "docker"},
		PreferredMatched: []string{"aws", "terraform"},
		PreferredMissing: []string{"kafka", "redis", "graphql", "rust", "scala", "elixir"},
		MissingRequired:  makeSkills("req", 10),
	}

	entries := ProjectHeatmap(report)

	// 3命中必备 + 2命中加分 + 5缺失加分(6截断) + 8缺失必备(10截断)
	require.Len(t, entries, 18)

	assert.Equal(t, "required_matched", entries[0].Status)
	assert.Equal(t, "preferred_matched", entries[3].Status)
	assert.Equal(t, "preferred_missing", entries[5].Status)
	assert.Equal(t, "required_missing", entries[10].Status)

	// 类别内部字母序
	assert.Equal(t, "DOCKER", entries[0].Skill)
	assert.Equal(t, "GO", entries[1].Skill)
	assert.Equal(t, "PYTHON", entries[2].Skill)

	// 缺失加分按字母序排序后才截断：scala在截断线之外
	missing := make([]string, 0)
	for _, e := range entries[5:10] {
		missing = append(missing, e.Skill)
	}
	assert.Equal(t, []string{"ELIXIR", "GRAPHQL", "KAFKA", "REDIS", "RUST"}, missing)
}

// TestProjectHeatmapEntryFields 每个类别的展示权重、颜色与类型字段固定
func TestProjectHeatmapEntryFields(t *testing.T) {
	report := types.MatchReport{
		Strengths:        []string{"go"},
		PreferredMatched: []string{"aws"},
		PreferredMissing: []string{"kafka"},
		MissingRequired:  []string{"sql"},
	}

	entries := ProjectHeatmap(report)
	require.Len(t, entries, 4)

	tests := []struct {
		entry   types.HeatmapEntry
		typ     string
		matched bool
		score   int
		color   string
	}{
		{entries[0], "required", true, HeatmapScoreRequiredMatched, "#10b981"},
		{entries[1], "preferred", true, HeatmapScorePreferredMatched, "#3b82f6"},
		{entries[2], "preferred", false, HeatmapScorePreferredMissing, "#f59e0b"},
		{entries[3], "required", false, HeatmapScoreRequiredMissing, "#ef4444"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.typ, tt.entry.Type)
		assert.Equal(t, tt.matched, tt.entry.Matched)
		assert.Equal(t, tt.score, tt.entry.Score)
		assert.Equal(t, tt.color, tt.entry.Color)
	}
}

// TestProjectHeatmapEmptyReport 空报告产生空列表而不是nil
func TestProjectHeatmapEmptyReport(t *testing.T) {
	entries := ProjectHeatmap(types.MatchReport{})
	require.NotNil(t, entries)
	assert.Empty(t, entries)
}

// TestProjectHeatmapDoesNotMutateReport 投影不得修改报告里切片的原始顺序
func TestProjectHeatmapDoesNotMutateReport(t *testing.T) {
	strengths := []string{"python", "go"}
	report := types.MatchReport{Strengths: strengths}

	ProjectHeatmap(report)

	assert.Equal(t, []string{"python", "go"}, strengths)
}

func makeSkills(prefix string, n int) []string {
	skills := make([]string, 0, n)
	for i := 0; i < n; i++ {
		skills = append(skills, fmt.Sprintf("%s%02d", prefix, i))
	}
	return skills
}
