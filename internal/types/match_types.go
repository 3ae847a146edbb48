package types

// EducationLevel 表示从简历中识别出的最高学历层级
type EducationLevel string

const (
	// EducationPhD 博士
	EducationPhD EducationLevel = "phd"
	// EducationMasters 硕士
	EducationMasters EducationLevel = "masters"
	// EducationBachelors 学士
	EducationBachelors EducationLevel = "bachelors"
	// EducationOther 其他学历或未识别
	EducationOther EducationLevel = "other"
)

// RoleLevel 表示从JD中识别出的岗位级别
type RoleLevel string

const (
	// RoleIntern 实习岗位
	RoleIntern RoleLevel = "intern"
	// RoleJunior 初级岗位
	RoleJunior RoleLevel = "junior"
	// RoleMid 中级岗位
	RoleMid RoleLevel = "mid"
	// RoleSenior 高级岗位
	RoleSenior RoleLevel = "senior"
)

// ParsedResume 简历解析结果，每次评分调用时重新计算，不做持久化
type ParsedResume struct {
	// Skills 识别出的规范技能ID集合
	Skills map[string]struct{} `json:"-"`
	// ExperienceYears 工作年限，未识别时为0
	ExperienceYears float64 `json:"experience_years"`
	// Projects 项目描述行，最多5条
	Projects []string `json:"projects"`
	// Certifications 证书相关的原始文本行
	Certifications []string `json:"certifications"`
	// Education 最高学历层级
	Education EducationLevel `json:"education"`
}

// ParsedJobDescription JD解析结果
type ParsedJobDescription struct {
	// RequiredSkills 必备技能的规范技能ID集合
	RequiredSkills map[string]struct{} `json:"-"`
	// PreferredSkills 加分技能的规范技能ID集合
	// 注意：当文本没有明确的分区标记时，同一技能可能同时出现在两个集合中
	PreferredSkills map[string]struct{} `json:"-"`
	// MinExperienceYears 最低工作年限要求，未识别时为0
	MinExperienceYears float64 `json:"min_experience_years"`
	// RoleLevel 岗位级别
	RoleLevel RoleLevel `json:"role_level"`
}

// ScoreBreakdown 四个独立子分数，每项均在[0,100]区间内
type ScoreBreakdown struct {
	SkillMatch       float64 `json:"skill_match"`
	ExperienceFit    float64 `json:"experience_fit"`
	ProjectRelevance float64 `json:"project_relevance"`
	BonusSignals     float64 `json:"bonus_signals"`
}

// ResumeDetails 报告中展示用的简历摘要信息
type ResumeDetails struct {
	ExperienceYears    float64        `json:"experience_years"`
	ProjectCount       int            `json:"project_count"`
	CertificationCount int            `json:"certification_count"`
	Education          EducationLevel `json:"education"`
}

// JDDetails 报告中展示用的JD摘要信息
type JDDetails struct {
	RequiredExperience float64   `json:"required_experience"`
	RoleLevel          RoleLevel `json:"role_level"`
}

// MatchReport 一次简历与JD匹配的完整报告
// 每次Match调用重新构造，返回后不再修改
type MatchReport struct {
	// FinalScore 加权总分，[0,100]，保留2位小数
	FinalScore float64 `json:"final_score"`
	// ReadinessLevel 准备度等级标签
	ReadinessLevel string `json:"readiness_level"`
	// Summary 等级对应的固定说明文案
	Summary string `json:"summary"`
	// Strengths 命中的必备技能，字母序
	Strengths []string `json:"strengths"`
	// MissingRequired 缺失的必备技能，字母序
	MissingRequired []string `json:"missing_required"`
	// PreferredMatched 命中的加分技能，字母序
	PreferredMatched []string `json:"preferred_matched"`
	// PreferredMissing 缺失的加分技能，字母序
	PreferredMissing []string `json:"preferred_missing"`
	// Scores 各子项分数
	Scores ScoreBreakdown `json:"scores"`
	// ResumeDetails 简历侧摘要
	ResumeDetails ResumeDetails `json:"resume_details"`
	// JDDetails JD侧摘要
	JDDetails JDDetails `json:"jd_details"`
}

// HeatmapEntry 技能热力图的单条展示记录
type HeatmapEntry struct {
	// Skill 大写的规范技能名
	Skill string `json:"skill"`
	// Type 技能类别: required 或 preferred
	Type string `json:"type"`
	// Matched 简历中是否命中
	Matched bool `json:"matched"`
	// Score 固定的展示权重: 95/75/50/20
	Score int `json:"score"`
	// Status 展示状态: required_matched / preferred_matched / preferred_missing / required_missing
	Status string `json:"status"`
	// Color 前端展示颜色
	Color string `json:"color"`
}
