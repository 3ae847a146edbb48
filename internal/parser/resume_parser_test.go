package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ats-match-go/internal/taxonomy"
	"ats-match-go/internal/types"
)

func newTestResumeParser(t *testing.T) *ResumeParser {
	t.Helper()
	return NewResumeParser(taxonomy.Default())
}

// TestResumeParserExperiencePatterns 验证年限提取的各模式与优先级
func TestResumeParserExperiencePatterns(t *testing.T) {
	p := newTestResumeParser(t)

	tests := []struct {
		name string
		text string
		want float64
	}{
		{"标准写法", "5 years of experience in backend development", 5},
		{"省略of", "5 years experience in backend development", 5},
		{"冒号写法", "Experience: 7 years", 7},
		{"加号写法", "3+ yrs experience with distributed systems", 3},
		{"小数年限", "2.5 years of experience", 2.5},
		{"无年限", "worked on many backend systems", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Parse(tt.text)
			assert.InDelta(t, tt.want, got.ExperienceYears, 1e-9)
		})
	}
}

// TestResumeParserExperienceFirstPatternWins 多个模式同时可命中时，只取优先级最高的
func TestResumeParserExperienceFirstPatternWins(t *testing.T) {
	p := newTestResumeParser(t)

	// 第一个模式命中"4 years of experience"，后续模式不再参与
	text := "4 years of experience. Experience: 9 years"
	got := p.Parse(text)
	assert.InDelta(t, 4.0, got.ExperienceYears, 1e-9)
}

// TestResumeParserProjects 验证项目段落的行状态机
func TestResumeParserProjects(t *testing.T) {
	p := newTestResumeParser(t)

	text := strings.Join([]string{
		"John Doe",
		"Project Highlights",
		"short line",
		"Built an e-commerce platform using Django with payment integration",
		"Developed a real-time chat application with websockets and Redis pubsub",
	}, "\n")

	got := p.Parse(text)
	require.Len(t, got.Projects, 2)
	assert.Contains(t, got.Projects[0], "e-commerce platform")
}

// TestResumeParserProjectsCappedAtFive 项目描述最多收集5条
func TestResumeParserProjectsCappedAtFive(t *testing.T) {
	p := newTestResumeParser(t)

	lines := []string{"Work Experience"}
	for i := 0; i < 8; i++ {
		lines = append(lines, "Implemented a large scale data processing pipeline for analytics workloads")
	}

	got := p.Parse(strings.Join(lines, "\n"))
	assert.Len(t, got.Projects, 5)
}

// TestResumeParserNoProjectSection 没有项目段落时返回空列表
func TestResumeParserNoProjectSection(t *testing.T) {
	p := newTestResumeParser(t)

	text := strings.Join([]string{
		"John Doe",
		"This resume line is deliberately longer than forty characters in total",
	}, "\n")

	got := p.Parse(text)
	assert.Empty(t, got.Projects)
}

// TestResumeParserLongHeaderDoesNotOpenSection 过长的标题行不触发项目段落
func TestResumeParserLongHeaderDoesNotOpenSection(t *testing.T) {
	p := newTestResumeParser(t)

	text := strings.Join([]string{
		"All my project work over the years is described below in exhaustive detail",
		"Implemented a large scale data processing pipeline for analytics workloads",
	}, "\n")

	got := p.Parse(text)
	assert.Empty(t, got.Projects, "超过50字符的行不应被当作段落标题")
}

// TestResumeParserCertifications 验证证书行按关键词捕获
func TestResumeParserCertifications(t *testing.T) {
	p := newTestResumeParser(t)

	text := strings.Join([]string{
		"AWS Certified Solutions Architect",
		"Completed Coursera specialization in ML",
		"no signal here",
	}, "\n")

	got := p.Parse(text)
	require.Len(t, got.Certifications, 2)
	assert.Equal(t, "AWS Certified Solutions Architect", got.Certifications[0])
}

// TestResumeParserEducationPriority 学历按级别优先而非出现位置
func TestResumeParserEducationPriority(t *testing.T) {
	p := newTestResumeParser(t)

	tests := []struct {
		name string
		text string
		want types.EducationLevel
	}{
		{"博士优先于硕士", "Master of Science, later earned a PhD in CS", types.EducationPhD},
		{"硕士", "M.Tech in Computer Science", types.EducationMasters},
		{"学士", "Bachelor of Engineering", types.EducationBachelors},
		{"MBA归入硕士", "MBA from a business school", types.EducationMasters},
		{"未识别", "self taught programmer", types.EducationOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Parse(tt.text)
			assert.Equal(t, tt.want, got.Education)
		})
	}
}

// TestResumeParserEmptyInput 空输入返回全部默认值而不报错
func TestResumeParserEmptyInput(t *testing.T) {
	p := newTestResumeParser(t)

	got := p.Parse("")
	assert.Empty(t, got.Skills)
	assert.Zero(t, got.ExperienceYears)
	assert.Empty(t, got.Projects)
	assert.Empty(t, got.Certifications)
	assert.Equal(t, types.EducationOther, got.Education)
}
