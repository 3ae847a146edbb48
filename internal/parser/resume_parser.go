package parser

import (
	"regexp"
	"strconv"
	"strings"

	"ats-match-go/internal/taxonomy"
	"ats-match-go/internal/types"
)

// 工作年限提取模式，按固定优先级依次尝试，第一个命中的模式即生效
// 各模式之间不做聚合
var resumeExperiencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+\.?\d*)\s*(?:\+)?\s*years?\s+(?:of\s+)?experience`),
	regexp.MustCompile(`experience\s*:?\s*(\d+\.?\d*)\s*(?:\+)?\s*years?`),
	regexp.MustCompile(`(\d+\.?\d*)\s*(?:\+)?\s*yrs?\s+(?:of\s+)?experience`),
}

// 学历提取模式，按博士>硕士>学士的优先级检查，取级别最高的命中项
var educationPatterns = []struct {
	re    *regexp.Regexp
	level types.EducationLevel
}{
	{regexp.MustCompile(`\b(phd|ph\.d|doctorate)\b`), types.EducationPhD},
	{regexp.MustCompile(`\b(master|m\.s|m\.tech|mba)\b`), types.EducationMasters},
	{regexp.MustCompile(`\b(bachelor|b\.s|b\.tech|b\.e)\b`), types.EducationBachelors},
}

// 项目段落的标题行特征："project"或"work"整词出现且行长小于50
var projectHeaderPattern = regexp.MustCompile(`\b(project|work)\b`)

// 证书关键词，行内出现任意一个即把该行原样捕获
var certKeywords = []string{
	"certified", "certification", "certificate", "credential",
	"aws certified", "google cloud", "microsoft certified",
	"coursera", "udemy", "professional certificate",
}

const (
	maxProjects          = 5
	projectHeaderMaxLen  = 50
	projectContentMinLen = 40
)

// ResumeParser 从简历纯文本中提取结构化信号
// 解析器永不失败：任何信号缺失时返回对应的默认值
type ResumeParser struct {
	taxonomy *taxonomy.Taxonomy
}

// NewResumeParser 创建简历解析器
func NewResumeParser(t *taxonomy.Taxonomy) *ResumeParser {
	return &ResumeParser{taxonomy: t}
}

// Parse 解析简历文本，返回结构化结果
func (p *ResumeParser) Parse(text string) types.ParsedResume {
	lower := strings.ToLower(text)

	return types.ParsedResume{
		Skills:          p.taxonomy.FindSkills(lower),
		ExperienceYears: extractExperienceYears(lower, resumeExperiencePatterns),
		Projects:        extractProjects(text),
		Certifications:  extractCertifications(text),
		Education:       extractEducation(lower),
	}
}

// extractExperienceYears 按优先级尝试各模式，返回第一个数值命中，无命中时为0
func extractExperienceYears(lower string, patterns []*regexp.Regexp) float64 {
	for _, re := range patterns {
		if m := re.FindStringSubmatch(lower); m != nil {
			if v, err := strconv.ParseFloat(m[1], 64); err == nil {
				return v
			}
		}
	}
	return 0.0
}

// extractProjects 按行扫描提取项目描述
// 状态机只有两个状态：遇到标题行后进入项目段，段内收集足够长的行，满5条即停
func extractProjects(text string) []string {
	var projects []string
	inProjectSection := false

	for _, line := range strings.Split(text, "\n") {
		lower := strings.ToLower(line)

		if projectHeaderPattern.MatchString(lower) && len(line) < projectHeaderMaxLen {
			inProjectSection = true
			continue
		}

		if inProjectSection {
			trimmed := strings.TrimSpace(line)
			if len(trimmed) > projectContentMinLen {
				projects = append(projects, trimmed)
				if len(projects) >= maxProjects {
					break
				}
			}
		}
	}

	return projects
}

// extractCertifications 捕获所有包含证书关键词的行
func extractCertifications(text string) []string {
	var certs []string
	for _, line := range strings.Split(text, "\n") {
		lower := strings.ToLower(line)
		for _, keyword := range certKeywords {
			if strings.Contains(lower, keyword) {
				certs = append(certs, strings.TrimSpace(line))
				break
			}
		}
	}
	return certs
}

// extractEducation 返回文本中出现的最高学历，未识别时为other
// 以级别优先而非出现位置优先
func extractEducation(lower string) types.EducationLevel {
	for _, p := range educationPatterns {
		if p.re.MatchString(lower) {
			return p.level
		}
	}
	return types.EducationOther
}
