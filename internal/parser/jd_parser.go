package parser

import (
	"regexp"
	"strings"

	"ats-match-go/internal/taxonomy"
	"ats-match-go/internal/types"
)

// JD中"必备"区段：从required/must have/essential标记开始，
// 惰性匹配到preferred/nice/optional标记或文本末尾
var requiredSpanPattern = regexp.MustCompile(`(?:required|must have|essential)[\s\S]*?(?:preferred|nice|optional|$)`)

// JD中"加分"区段：从preferred/nice to have/optional/bonus标记到文本末尾
var preferredSpanPattern = regexp.MustCompile(`(?:preferred|nice to have|optional|bonus)[\s\S]*`)

// JD最低年限提取模式，优先级同简历侧的处理方式
var jdExperiencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+\.?\d*)\s*(?:\+)?\s*years?\s+(?:of\s+)?experience`),
	regexp.MustCompile(`minimum\s+(\d+\.?\d*)\s*(?:\+)?\s*years?`),
}

// 岗位级别识别模式，按固定顺序检查，第一个命中的生效，默认mid
// 注意：mid模式里包含字面量"senior"，因此带"senior"字样的JD会先被归入mid，
// 只有lead/principal/architect/staff才会落到senior。此优先级沿用既有行为，
// 未经确认不做"修正"
var roleLevelPatterns = []struct {
	re    *regexp.Regexp
	level types.RoleLevel
}{
	{regexp.MustCompile(`\b(intern|internship)\b`), types.RoleIntern},
	{regexp.MustCompile(`\b(entry|junior|fresher|graduate)\b`), types.RoleJunior},
	{regexp.MustCompile(`\b(mid|intermediate|senior)\b`), types.RoleMid},
	{regexp.MustCompile(`\b(lead|principal|architect|staff)\b`), types.RoleSenior},
}

// JDParser 从JD纯文本中提取岗位要求
// 与简历解析器一样永不失败，信号缺失时返回默认值
type JDParser struct {
	taxonomy *taxonomy.Taxonomy
}

// NewJDParser 创建JD解析器
func NewJDParser(t *taxonomy.Taxonomy) *JDParser {
	return &JDParser{taxonomy: t}
}

// Parse 解析JD文本，返回结构化结果
func (p *JDParser) Parse(text string) types.ParsedJobDescription {
	lower := strings.ToLower(text)

	required, preferred := p.categorizeSkills(lower)

	return types.ParsedJobDescription{
		RequiredSkills:     required,
		PreferredSkills:    preferred,
		MinExperienceYears: extractExperienceYears(lower, jdExperiencePatterns),
		RoleLevel:          extractRoleLevel(lower),
	}
}

// categorizeSkills 把识别出的技能划分为必备和加分两类
// 先定位两个区段，再分别在区段内做技能检测；当两个区段都不存在时，
// JD被视为只列硬性要求，全文命中的技能一律归为必备（保守默认）。
// 区段可能互相重叠（例如preferred标记出现在required标记之前），
// 此时同一技能允许同时出现在两个集合中，这是已知的边界行为
func (p *JDParser) categorizeSkills(lower string) (required, preferred map[string]struct{}) {
	reqSpan := requiredSpanPattern.FindString(lower)
	prefSpan := preferredSpanPattern.FindString(lower)

	if reqSpan == "" && prefSpan == "" {
		return p.taxonomy.FindSkills(lower), make(map[string]struct{})
	}

	required = make(map[string]struct{})
	preferred = make(map[string]struct{})
	if reqSpan != "" {
		required = p.taxonomy.FindSkills(reqSpan)
	}
	if prefSpan != "" {
		preferred = p.taxonomy.FindSkills(prefSpan)
	}
	return required, preferred
}

// extractRoleLevel 按预设顺序识别岗位级别，无命中时默认mid
func extractRoleLevel(lower string) types.RoleLevel {
	for _, p := range roleLevelPatterns {
		if p.re.MatchString(lower) {
			return p.level
		}
	}
	return types.RoleMid
}
