package matcher

import (
	"sort"

	"ats-match-go/internal/parser"
	"ats-match-go/internal/scoring"
	"ats-match-go/internal/taxonomy"
	"ats-match-go/internal/types"
)

// Matcher 匹配编排器：驱动两侧解析、计算技能交差集、调用评分引擎并组装完整报告
// Match是纯函数：相同输入必然产生逐字节相同的报告，没有随机性、
// 外部调用和时间依赖，可被任意并发调用
type Matcher struct {
	resumeParser *parser.ResumeParser
	jdParser     *parser.JDParser
	engine       *scoring.Engine
}

// New 创建匹配编排器，词表与权重为进程启动时注入的只读配置
func New(t *taxonomy.Taxonomy, weights scoring.Weights) *Matcher {
	return &Matcher{
		resumeParser: parser.NewResumeParser(t),
		jdParser:     parser.NewJDParser(t),
		engine:       scoring.NewEngine(weights),
	}
}

// Match 对一份简历和一份JD执行完整匹配，返回结构化报告
func (m *Matcher) Match(resumeText, jdText string) types.MatchReport {
	resume := m.resumeParser.Parse(resumeText)
	jd := m.jdParser.Parse(jdText)

	matched := intersect(resume.Skills, jd.RequiredSkills)
	missing := subtract(jd.RequiredSkills, resume.Skills)
	preferredMatched := intersect(resume.Skills, jd.PreferredSkills)
	preferredMissing := subtract(jd.PreferredSkills, resume.Skills)

	scores := types.ScoreBreakdown{
		SkillMatch:       m.engine.SkillScore(len(matched), len(jd.RequiredSkills)),
		ExperienceFit:    m.engine.ExperienceScore(resume.ExperienceYears, jd.MinExperienceYears),
		ProjectRelevance: m.engine.ProjectScore(len(resume.Projects)),
		BonusSignals:     m.engine.BonusScore(len(resume.Certifications), resume.Education, len(preferredMatched)),
	}

	final, level, summary := m.engine.FinalScore(scores)

	return types.MatchReport{
		FinalScore:       final,
		ReadinessLevel:   level,
		Summary:          summary,
		Strengths:        matched,
		MissingRequired:  missing,
		PreferredMatched: preferredMatched,
		PreferredMissing: preferredMissing,
		Scores:           scores,
		ResumeDetails: types.ResumeDetails{
			ExperienceYears:    resume.ExperienceYears,
			ProjectCount:       len(resume.Projects),
			CertificationCount: len(resume.Certifications),
			Education:          resume.Education,
		},
		JDDetails: types.JDDetails{
			RequiredExperience: jd.MinExperienceYears,
			RoleLevel:          jd.RoleLevel,
		},
	}
}

// intersect 返回a∩b的字母序切片
// 集合运算后立即排序，保证报告的确定性
func intersect(a, b map[string]struct{}) []string {
	result := make([]string, 0)
	for k := range a {
		if _, ok := b[k]; ok {
			result = append(result, k)
		}
	}
	sort.Strings(result)
	return result
}

// subtract 返回a−b的字母序切片
func subtract(a, b map[string]struct{}) []string {
	result := make([]string, 0)
	for k := range a {
		if _, ok := b[k]; !ok {
			result = append(result, k)
		}
	}
	sort.Strings(result)
	return result
}
