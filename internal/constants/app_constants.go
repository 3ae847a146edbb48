package constants

import "time"

const (
	// EngineVersion 评分引擎版本号，随权重或词表的版本化调整而递增
	EngineVersion = "1.0"

	// ReportCacheDuration 匹配报告缓存的默认过期时间
	ReportCacheDuration = 60 * time.Minute
)
