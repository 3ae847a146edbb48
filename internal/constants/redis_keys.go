package constants

// Redis Key 前缀和格式常量
// 使用统一的命名规范: ats:{module}:{entity}:{unique_id}
const (
	// AppPrefix 是所有Redis Key的统一应用前缀
	AppPrefix = "ats"

	// MatchModulePrefix 匹配模块
	MatchModulePrefix = "match"

	// EntityReport 匹配报告实体
	EntityReport = "report"

	// KeyMatchReport 匹配报告缓存 (STRING, JSON序列化)
	// 引擎是纯函数，报告可以安全地按输入内容寻址
	// 格式: ats:match:report:{md5(resume||jd)}
	KeyMatchReport = AppPrefix + ":" + MatchModulePrefix + ":" + EntityReport + ":%s"
)
