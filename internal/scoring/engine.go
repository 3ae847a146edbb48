package scoring

import (
	"math"

	"ats-match-go/internal/types"
)

// Weights 四个子分数的聚合权重
// 权重编码了招聘方对各因素相对重要性的共识，是与下游消费方的契约，
// 总和必须为1.0，不允许被调整
type Weights struct {
	SkillMatch       float64 `yaml:"skill_match" json:"skill_match"`
	ExperienceFit    float64 `yaml:"experience_fit" json:"experience_fit"`
	ProjectRelevance float64 `yaml:"project_relevance" json:"project_relevance"`
	BonusSignals     float64 `yaml:"bonus_signals" json:"bonus_signals"`
}

// DefaultWeights 返回固定的默认权重配置
func DefaultWeights() Weights {
	return Weights{
		SkillMatch:       0.45,
		ExperienceFit:    0.25,
		ProjectRelevance: 0.20,
		BonusSignals:     0.10,
	}
}

// Sum 返回权重总和，用于启动期校验
func (w Weights) Sum() float64 {
	return w.SkillMatch + w.ExperienceFit + w.ProjectRelevance + w.BonusSignals
}

// 准备度等级的分数下界与固定文案，各区间对下界取闭区间
var readinessBands = []struct {
	threshold float64
	level     string
	summary   string
}{
	{85, "Highly Prepared", "Excellent alignment with this role"},
	{70, "Prepared", "Strong alignment, ready to apply"},
	{55, "Developing Readiness", "Good foundation, some skill gaps to address"},
	{40, "Preparation Stage", "Basic alignment, significant improvements needed"},
	{math.Inf(-1), "Early Stage", "Role requirements significantly exceed current profile"},
}

// Engine 匹配评分引擎
// 四个子分数相互独立、无状态，均被约束在[0,100]区间内再参与加权
type Engine struct {
	weights Weights
}

// NewEngine 创建评分引擎，权重在构造时注入，此处假定配置已通过启动期校验
func NewEngine(weights Weights) *Engine {
	return &Engine{weights: weights}
}

// SkillScore 技能匹配分：对命中比例应用离散阶梯函数
// 刻意不做线性映射——阶梯对应招聘方"强/好/弱"的直觉阈值，
// 不奖励边际的技能数量增长。无任何必备技能时给90分
func (e *Engine) SkillScore(matchedCount, requiredCount int) float64 {
	if requiredCount == 0 {
		return 90.0
	}

	ratio := float64(matchedCount) / float64(requiredCount)
	switch {
	case ratio >= 0.9:
		return 95.0
	case ratio >= 0.75:
		return 85.0
	case ratio >= 0.6:
		return 75.0
	case ratio >= 0.4:
		return 60.0
	case ratio >= 0.2:
		return 40.0
	default:
		return 20.0
	}
}

// ExperienceScore 经验契合分
// 无年限要求时默认80；超出要求时奖励有上限（超出比例截断到0.5）；
// 不足时惩罚有下限（只要有要求就不会低于30）
func (e *Engine) ExperienceScore(resumeYears, requiredYears float64) float64 {
	if requiredYears == 0 {
		return 80.0
	}

	if resumeYears >= requiredYears {
		excess := math.Min((resumeYears-requiredYears)/requiredYears, 0.5)
		return math.Min(100.0, 90.0+excess*20)
	}

	deficit := (requiredYears - resumeYears) / requiredYears
	return math.Max(30.0, 90.0-deficit*60)
}

// ProjectScore 项目相关度分：对项目数量的阶梯函数
func (e *Engine) ProjectScore(projectCount int) float64 {
	switch {
	case projectCount >= 4:
		return 90.0
	case projectCount >= 3:
		return 80.0
	case projectCount >= 2:
		return 65.0
	case projectCount >= 1:
		return 50.0
	default:
		return 25.0
	}
}

// BonusScore 附加信号分：基础40分，证书、学历、加分技能命中各自叠加，封顶100
func (e *Engine) BonusScore(certCount int, education types.EducationLevel, preferredMatchCount int) float64 {
	score := 40.0

	if certCount >= 3 {
		score += 25.0
	} else if certCount >= 1 {
		score += 15.0
	}

	switch education {
	case types.EducationPhD:
		score += 20.0
	case types.EducationMasters:
		score += 15.0
	case types.EducationBachelors:
		score += 10.0
	}

	if preferredMatchCount >= 3 {
		score += 15.0
	} else if preferredMatchCount >= 1 {
		score += 10.0
	}

	return math.Min(100.0, score)
}

// FinalScore 按固定权重加权聚合子分数，返回保留2位小数的总分、
// 对应的准备度等级与固定文案
func (e *Engine) FinalScore(scores types.ScoreBreakdown) (float64, string, string) {
	total := scores.SkillMatch*e.weights.SkillMatch +
		scores.ExperienceFit*e.weights.ExperienceFit +
		scores.ProjectRelevance*e.weights.ProjectRelevance +
		scores.BonusSignals*e.weights.BonusSignals
	total = math.Round(total*100) / 100

	for _, band := range readinessBands {
		if total >= band.threshold {
			return total, band.level, band.summary
		}
	}
	// readinessBands以-Inf收尾，不可达
	return total, "Early Stage", "Role requirements significantly exceed current profile"
}
